package report

import (
	"strings"
)

// TitleSeparator 是组合标题中课程、任务类型、作业名之间的固定分隔符。
const TitleSeparator = " | "

// TitleParts 是组合作业标题解析出的三个语义段。
type TitleParts struct {
	Course   string
	TaskType string
	Name     string
}

// ParseAssignmentTitle splits a possibly composite assignment title into its
// course, task type and assignment name segments.
//
// 按位置解析：三段为 课程|任务类型|作业名，两段为 课程|作业名，
// 其余情况整个原始标题即作业名。
func ParseAssignmentTitle(value string) TitleParts {
	parts := make([]string, 0, 3)
	for _, part := range strings.Split(value, TitleSeparator) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	switch len(parts) {
	case 3:
		return TitleParts{Course: parts[0], TaskType: parts[1], Name: parts[2]}
	case 2:
		return TitleParts{Course: parts[0], Name: parts[1]}
	default:
		return TitleParts{Name: value}
	}
}

// BuildAssignmentTitle joins the non-empty segments with the fixed separator.
func BuildAssignmentTitle(course, taskType, name string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{course, taskType, name} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, TitleSeparator)
}
