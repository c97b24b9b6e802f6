package report

import (
	"strings"
	"testing"
	"time"

	"aiguidebook/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeclarationEmptySet(t *testing.T) {
	decl, err := GenerateDeclaration(nil, time.Now())
	assert.Nil(t, decl)
	assert.ErrorIs(t, err, ErrNoEntries)
}

func TestGenerateDeclarationFilename(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	logs := []entity.DbUsageLog{
		makeLog("Essay", "2025-06-01", "ChatGPT", "Drafting"),
	}

	decl, err := GenerateDeclaration(logs, now)
	require.NoError(t, err)
	assert.Equal(t, "ai-declaration-2025-06-15.txt", decl.Filename)
	assert.Contains(t, decl.Text, "Generated: 2025-06-15")
}

func TestGenerateDeclarationGrouping(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	logs := []entity.DbUsageLog{
		makeLog("CS101 | Essay | Climate Change", "2025-05-01", "ChatGPT", "Drafting"),
		makeLog("MA202 | Problem Set 3", "2025-05-02", "Claude", "Debugging"),
		makeLog("CS101 | Essay | Climate Change", "2025-05-03", "Gemini", "Editing & Proofreading"),
	}

	decl, err := GenerateDeclaration(logs, now)
	require.NoError(t, err)

	// 相同标题的记录在同一分组内按输入顺序编号
	assert.Equal(t, 1, strings.Count(decl.Text, "ASSIGNMENT: CS101 | Essay | Climate Change"))
	assert.Equal(t, 1, strings.Count(decl.Text, "ASSIGNMENT: MA202 | Problem Set 3"))

	firstGroup := strings.Index(decl.Text, "ASSIGNMENT: CS101 | Essay | Climate Change")
	secondGroup := strings.Index(decl.Text, "ASSIGNMENT: MA202 | Problem Set 3")
	assert.Less(t, firstGroup, secondGroup, "groups keep first-seen order")

	csSection := decl.Text[firstGroup:secondGroup]
	assert.Contains(t, csSection, "1. Date: 2025-05-01")
	assert.Contains(t, csSection, "2. Date: 2025-05-03")
}

func TestGenerateDeclarationOptionalFields(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	withDetails := makeLog("Essay", "2025-05-01", "ChatGPT", "Drafting")
	withDetails.OptionalExplanation = entity.Some("outline help")
	withDetails.PromptQueryUsed = entity.Some("write an outline")

	// 提供但为空串的字段与缺省字段一样不输出
	withEmpty := makeLog("Essay", "2025-05-02", "Claude", "Editing & Proofreading")
	withEmpty.OptionalExplanation = entity.Some("")

	decl, err := GenerateDeclaration([]entity.DbUsageLog{withDetails, withEmpty}, now)
	require.NoError(t, err)

	assert.Contains(t, decl.Text, "Purpose Details: outline help")
	assert.Contains(t, decl.Text, "Prompt: write an outline")
	assert.NotContains(t, decl.Text, "Output:")
	assert.NotContains(t, decl.Text, "Modifications:")
	assert.Equal(t, 1, strings.Count(decl.Text, "Purpose Details:"))
}

func TestGenerateDeclarationLayout(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	logs := []entity.DbUsageLog{
		makeLog("Essay", "2025-05-01", "ChatGPT", "Drafting"),
	}

	decl, err := GenerateDeclaration(logs, now)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(decl.Text, "AI USAGE DECLARATION\n"))
	assert.Contains(t, decl.Text, strings.Repeat("═", 50))
	assert.Contains(t, decl.Text, strings.Repeat("─", 40))
	assert.Contains(t, decl.Text, "I declare that the above is a complete and accurate record")
	assert.Contains(t, decl.Text, "Student Signature: ________________________")
	assert.True(t, strings.HasSuffix(decl.Text, "Date: 2025-06-15\n"))
}

func TestGenerateDeclarationDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	logs := []entity.DbUsageLog{
		makeLog("Essay", "2025-05-01", "ChatGPT", "Drafting"),
		makeLog("Report", "2025-05-02", "Claude", "Summarisation"),
	}

	first, err := GenerateDeclaration(logs, now)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := GenerateDeclaration(logs, now)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
