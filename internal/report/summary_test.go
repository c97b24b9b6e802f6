package report

import (
	"testing"
	"time"

	"aiguidebook/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLog(title, date, tool, purpose string) entity.DbUsageLog {
	return entity.DbUsageLog{
		AssignmentTitle: title,
		DateOfUse:       date,
		Tool:            tool,
		PurposeCategory: purpose,
	}
}

func TestApplyFiltersTimeRange(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	logs := []entity.DbUsageLog{
		makeLog("Essay", "2025-06-01", "ChatGPT", "Drafting"),
		makeLog("Essay", "2024-01-01", "Claude", "Editing & Proofreading"),
	}

	filtered := ApplyFilters(logs, FilterSpec{TimeRange: RangeLast30Days}, now)
	require.Len(t, filtered, 1)
	assert.Equal(t, "2025-06-01", filtered[0].DateOfUse)

	filtered = ApplyFilters(logs, FilterSpec{TimeRange: RangeAllTime}, now)
	assert.Len(t, filtered, 2)
}

func TestApplyFiltersCustomRange(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	logs := []entity.DbUsageLog{
		makeLog("A", "2025-01-10", "ChatGPT", "Drafting"),
		makeLog("B", "2025-03-10", "ChatGPT", "Drafting"),
		makeLog("C", "2025-05-10", "ChatGPT", "Drafting"),
	}

	tests := []struct {
		name string
		from string
		to   string
		want []string
	}{
		{"both bounds", "2025-02-01", "2025-04-01", []string{"B"}},
		{"open start", "", "2025-04-01", []string{"A", "B"}},
		{"open end", "2025-02-01", "", []string{"B", "C"}},
		{"bounds inclusive", "2025-01-10", "2025-05-10", []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := ApplyFilters(logs, FilterSpec{
				TimeRange: RangeCustom,
				FromDate:  tt.from,
				ToDate:    tt.to,
			}, now)
			titles := make([]string, 0, len(filtered))
			for _, log := range filtered {
				titles = append(titles, log.AssignmentTitle)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestApplyFiltersCourseAndTaskType(t *testing.T) {
	now := time.Now()
	logs := []entity.DbUsageLog{
		makeLog("CS101 | Essay | Climate Change", "2025-06-01", "ChatGPT", "Drafting"),
		makeLog("MA202 | Problem Set 3", "2025-06-02", "Claude", "Debugging"),
		makeLog("Untitled Reflection", "2025-06-03", "Gemini", "Brainstorming"),
	}

	// 课程过滤：匹配解析出的课程段
	filtered := ApplyFilters(logs, FilterSpec{Course: "cs101", TimeRange: RangeAllTime}, now)
	require.Len(t, filtered, 1)
	assert.Equal(t, "CS101 | Essay | Climate Change", filtered[0].AssignmentTitle)

	// 课程过滤：原始标题命中也算匹配
	filtered = ApplyFilters(logs, FilterSpec{Course: "reflection", TimeRange: RangeAllTime}, now)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Untitled Reflection", filtered[0].AssignmentTitle)

	filtered = ApplyFilters(logs, FilterSpec{TaskType: "essay", TimeRange: RangeAllTime}, now)
	require.Len(t, filtered, 1)
	assert.Equal(t, "CS101 | Essay | Climate Change", filtered[0].AssignmentTitle)
}

func TestApplyFiltersToolAndPurpose(t *testing.T) {
	now := time.Now()
	logs := []entity.DbUsageLog{
		makeLog("A", "2025-06-01", "ChatGPT", "Drafting"),
		makeLog("B", "2025-06-02", "Claude", "Drafting"),
		makeLog("C", "2025-06-03", "ChatGPT", "Debugging"),
	}

	filtered := ApplyFilters(logs, FilterSpec{Tool: "ChatGPT", TimeRange: RangeAllTime}, now)
	assert.Len(t, filtered, 2)

	// "all" 是通配值
	filtered = ApplyFilters(logs, FilterSpec{Tool: FilterAll, PurposeCategory: FilterAll, TimeRange: RangeAllTime}, now)
	assert.Len(t, filtered, 3)

	// 过滤条件按合取应用
	filtered = ApplyFilters(logs, FilterSpec{Tool: "ChatGPT", PurposeCategory: "Drafting", TimeRange: RangeAllTime}, now)
	require.Len(t, filtered, 1)
	assert.Equal(t, "A", filtered[0].AssignmentTitle)
}

func TestApplyFiltersUnparseableDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	logs := []entity.DbUsageLog{
		makeLog("A", "not-a-date", "ChatGPT", "Drafting"),
		makeLog("B", "2025-06-10", "Claude", "Drafting"),
	}

	// 激活日期过滤时排除无法解析的记录
	filtered := ApplyFilters(logs, FilterSpec{TimeRange: RangeLast30Days}, now)
	require.Len(t, filtered, 1)
	assert.Equal(t, "B", filtered[0].AssignmentTitle)

	// 不限时间时保留
	filtered = ApplyFilters(logs, FilterSpec{TimeRange: RangeAllTime}, now)
	assert.Len(t, filtered, 2)
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	logs := []entity.DbUsageLog{
		makeLog("A", "2025-06-01", "ChatGPT", "Drafting"),
		makeLog("B", "bad-date", "Claude", "Drafting"),
	}

	ApplyFilters(logs, FilterSpec{TimeRange: RangeLast7Days}, now)

	assert.Equal(t, "A", logs[0].AssignmentTitle)
	assert.Equal(t, "bad-date", logs[1].DateOfUse)
}

func TestSummarize(t *testing.T) {
	logs := []entity.DbUsageLog{
		makeLog("CS101 | Essay | Climate Change", "2025-05-01", "ChatGPT", "Drafting"),
		makeLog("CS101 | Essay | Climate Change", "2025-05-15", "Claude", "Drafting"),
		makeLog("MA202 | Problem Set 3", "2025-06-02", "ChatGPT", "Debugging"),
	}

	summary := Summarize(logs)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.UniqueTools)
	assert.Equal(t, 2, summary.UniqueAssignments)
	assert.Equal(t, "Drafting", summary.TopPurpose)

	require.Len(t, summary.Monthly, 2)
	assert.Equal(t, entity.MonthBucketItem{Period: "May 2025", Count: 2}, summary.Monthly[0])
	assert.Equal(t, entity.MonthBucketItem{Period: "Jun 2025", Count: 1}, summary.Monthly[1])

	require.Len(t, summary.TopTools, 2)
	assert.Equal(t, entity.ToolCountItem{Tool: "ChatGPT", Count: 2}, summary.TopTools[0])
	assert.Equal(t, entity.ToolCountItem{Tool: "Claude", Count: 1}, summary.TopTools[1])
}

func TestSummarizeEmptySet(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, "", summary.TopPurpose)
	assert.Empty(t, summary.Monthly)
	assert.Empty(t, summary.TopTools)
}

func TestSummarizeTieBreaks(t *testing.T) {
	logs := []entity.DbUsageLog{
		makeLog("A", "2025-06-01", "Claude", "Editing & Proofreading"),
		makeLog("B", "2025-06-02", "ChatGPT", "Drafting"),
		makeLog("C", "2025-06-03", "Gemini", "Brainstorming"),
	}

	summary := Summarize(logs)

	// 并列时取先出现者
	assert.Equal(t, "Editing & Proofreading", summary.TopPurpose)
	require.Len(t, summary.TopTools, 3)
	assert.Equal(t, "Claude", summary.TopTools[0].Tool)
	assert.Equal(t, "ChatGPT", summary.TopTools[1].Tool)
	assert.Equal(t, "Gemini", summary.TopTools[2].Tool)
}

func TestSummarizeTopToolsLimit(t *testing.T) {
	tools := []string{"ChatGPT", "Claude", "Gemini", "Copilot", "Midjourney", "DALL-E", "Grammarly AI"}
	logs := make([]entity.DbUsageLog, 0, len(tools))
	for _, tool := range tools {
		logs = append(logs, makeLog("A", "2025-06-01", tool, "Drafting"))
	}

	summary := Summarize(logs)
	assert.Len(t, summary.TopTools, TopToolsLimit)
}

func TestSummarizeDeterministic(t *testing.T) {
	logs := []entity.DbUsageLog{
		makeLog("A", "2025-03-01", "ChatGPT", "Drafting"),
		makeLog("B", "2025-04-01", "Claude", "Debugging"),
		makeLog("C", "2025-03-15", "ChatGPT", "Drafting"),
		makeLog("D", "2025-04-20", "Gemini", "Brainstorming"),
	}

	first := Summarize(logs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Summarize(logs))
	}
}
