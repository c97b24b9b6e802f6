package report

import (
	"sort"
	"strings"
	"time"

	"aiguidebook/internal/entity"
)

// 时间范围选项
const (
	RangeLast7Days  = "7d"
	RangeLast30Days = "30d"
	RangeLast90Days = "90d"
	RangeAllTime    = "all"
	RangeCustom     = "custom"
)

// FilterAll 是工具和用途类别过滤器的通配值。
const FilterAll = "all"

// TopToolsLimit 限制工具排行的长度。
const TopToolsLimit = 5

// FilterSpec 是汇总面板的过滤条件。
type FilterSpec struct {
	Course          string
	TaskType        string
	Tool            string
	PurposeCategory string
	TimeRange       string
	FromDate        string
	ToDate          string
}

// Summary 是过滤后记录集的派生统计。
type Summary struct {
	Total             int
	UniqueTools       int
	UniqueAssignments int
	TopPurpose        string
	Monthly           []entity.MonthBucketItem
	TopTools          []entity.ToolCountItem
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseUsageDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// resolveDateBounds 将时间范围选项解析为闭区间 [from, to]，nil 表示开放端。
func (f FilterSpec) resolveDateBounds(now time.Time) (from, to *time.Time) {
	switch f.TimeRange {
	case RangeLast7Days:
		lo := now.AddDate(0, 0, -7)
		return &lo, &now
	case RangeLast30Days:
		lo := now.AddDate(0, 0, -30)
		return &lo, &now
	case RangeLast90Days:
		lo := now.AddDate(0, 0, -90)
		return &lo, &now
	case RangeCustom:
		if t, ok := parseUsageDate(f.FromDate); ok {
			from = &t
		}
		if t, ok := parseUsageDate(f.ToDate); ok {
			to = &t
		}
		return from, to
	default:
		// 空值和 "all" 都表示不限时间
		return nil, nil
	}
}

// ApplyFilters returns the subset of logs matching every active filter.
// 输入顺序保持不变，输入切片不会被修改。
func ApplyFilters(logs []entity.DbUsageLog, f FilterSpec, now time.Time) []entity.DbUsageLog {
	from, to := f.resolveDateBounds(now)

	course := strings.ToLower(strings.TrimSpace(f.Course))
	taskType := strings.ToLower(strings.TrimSpace(f.TaskType))
	tool := strings.TrimSpace(f.Tool)
	purpose := strings.TrimSpace(f.PurposeCategory)

	filtered := make([]entity.DbUsageLog, 0, len(logs))
	for _, log := range logs {
		if course != "" {
			parsed := ParseAssignmentTitle(log.AssignmentTitle)
			if !strings.Contains(strings.ToLower(parsed.Course), course) &&
				!strings.Contains(strings.ToLower(log.AssignmentTitle), course) {
				continue
			}
		}
		if taskType != "" {
			parsed := ParseAssignmentTitle(log.AssignmentTitle)
			if !strings.Contains(strings.ToLower(parsed.TaskType), taskType) &&
				!strings.Contains(strings.ToLower(log.AssignmentTitle), taskType) {
				continue
			}
		}
		if tool != "" && tool != FilterAll && log.Tool != tool {
			continue
		}
		if purpose != "" && purpose != FilterAll && log.PurposeCategory != purpose {
			continue
		}
		if from != nil || to != nil {
			date, ok := parseUsageDate(log.DateOfUse)
			if !ok {
				// 无法解析的使用日期视为不落在任何激活的日期范围内
				continue
			}
			if from != nil && date.Before(*from) {
				continue
			}
			if to != nil && date.After(*to) {
				continue
			}
		}
		filtered = append(filtered, log)
	}
	return filtered
}

// Summarize derives the dashboard statistics from an already filtered set.
// 对同一输入重复调用产生完全相同的结果。
func Summarize(logs []entity.DbUsageLog) Summary {
	summary := Summary{
		Total:   len(logs),
		Monthly: []entity.MonthBucketItem{},
	}

	tools := make(map[string]struct{})
	assignments := make(map[string]struct{})
	purposeCounts := make(map[string]int)
	purposeOrder := make([]string, 0)

	for _, log := range logs {
		tools[log.Tool] = struct{}{}
		assignments[log.AssignmentTitle] = struct{}{}
		if _, seen := purposeCounts[log.PurposeCategory]; !seen {
			purposeOrder = append(purposeOrder, log.PurposeCategory)
		}
		purposeCounts[log.PurposeCategory]++
	}
	summary.UniqueTools = len(tools)
	summary.UniqueAssignments = len(assignments)

	// 并列时取先出现的类别；空集保持空串哨兵
	best := 0
	for _, purpose := range purposeOrder {
		if purposeCounts[purpose] > best {
			best = purposeCounts[purpose]
			summary.TopPurpose = purpose
		}
	}

	summary.Monthly = monthlyBuckets(logs)
	summary.TopTools = topTools(logs)
	return summary
}

type monthBucket struct {
	sortKey time.Time
	label   string
	count   int
}

// monthlyBuckets groups logs by calendar month of the usage date.
// 日期无法解析的记录无从归桶，跳过。
func monthlyBuckets(logs []entity.DbUsageLog) []entity.MonthBucketItem {
	buckets := make(map[string]*monthBucket)
	for _, log := range logs {
		date, ok := parseUsageDate(log.DateOfUse)
		if !ok {
			continue
		}
		month := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
		label := month.Format("Jan 2006")
		if b, exists := buckets[label]; exists {
			b.count++
		} else {
			buckets[label] = &monthBucket{sortKey: month, label: label, count: 1}
		}
	}

	ordered := make([]*monthBucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].sortKey.Before(ordered[j].sortKey)
	})

	items := make([]entity.MonthBucketItem, 0, len(ordered))
	for _, b := range ordered {
		items = append(items, entity.MonthBucketItem{Period: b.label, Count: b.count})
	}
	return items
}

// topTools returns up to five tools by usage count, descending.
// 并列时保持先出现的顺序。
func topTools(logs []entity.DbUsageLog) []entity.ToolCountItem {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, log := range logs {
		if _, seen := counts[log.Tool]; !seen {
			order = append(order, log.Tool)
		}
		counts[log.Tool]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	limit := len(order)
	if limit > TopToolsLimit {
		limit = TopToolsLimit
	}

	items := make([]entity.ToolCountItem, 0, limit)
	for _, tool := range order[:limit] {
		items = append(items, entity.ToolCountItem{Tool: tool, Count: counts[tool]})
	}
	return items
}
