package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"aiguidebook/internal/entity"
)

// ErrNoEntries 表示没有任何记录可供生成声明。
var ErrNoEntries = errors.New("no usage logs to declare")

// Declaration 是生成的纯文本声明文档。
type Declaration struct {
	Text     string
	Filename string
}

// GenerateDeclaration renders the plain-text usage declaration.
//
// Records are grouped by the raw assignment title (first-seen group order,
// input order within a group) and numbered from 1 inside each group.
// 时间由调用方注入，相同输入和相同时间下输出完全一致。
func GenerateDeclaration(logs []entity.DbUsageLog, now time.Time) (*Declaration, error) {
	if len(logs) == 0 {
		return nil, ErrNoEntries
	}

	groupOrder := make([]string, 0)
	groups := make(map[string][]entity.DbUsageLog)
	for _, log := range logs {
		if _, seen := groups[log.AssignmentTitle]; !seen {
			groupOrder = append(groupOrder, log.AssignmentTitle)
		}
		groups[log.AssignmentTitle] = append(groups[log.AssignmentTitle], log)
	}

	generated := now.Format("2006-01-02")

	var b strings.Builder
	b.WriteString("AI USAGE DECLARATION\n")
	fmt.Fprintf(&b, "Generated: %s\n", generated)
	b.WriteString(strings.Repeat("═", 50) + "\n\n")

	for _, assignment := range groupOrder {
		fmt.Fprintf(&b, "ASSIGNMENT: %s\n", assignment)
		b.WriteString(strings.Repeat("─", 40) + "\n")
		for i, log := range groups[assignment] {
			fmt.Fprintf(&b, "\n%d. Date: %s\n", i+1, log.DateOfUse)
			fmt.Fprintf(&b, "   AI Tool: %s\n", log.Tool)
			fmt.Fprintf(&b, "   Purpose Category: %s\n", log.PurposeCategory)
			if log.OptionalExplanation.HasText() {
				fmt.Fprintf(&b, "   Purpose Details: %s\n", log.OptionalExplanation.Text)
			}
			if log.PromptQueryUsed.HasText() {
				fmt.Fprintf(&b, "   Prompt: %s\n", log.PromptQueryUsed.Text)
			}
			if log.OutputReceived.HasText() {
				fmt.Fprintf(&b, "   Output: %s\n", log.OutputReceived.Text)
			}
			if log.ModifiedOutput.HasText() {
				fmt.Fprintf(&b, "   Modifications: %s\n", log.ModifiedOutput.Text)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("═", 50) + "\n")
	b.WriteString("I declare that the above is a complete and accurate record of my AI tool usage for the listed assignments.\n\n")
	b.WriteString("Student Signature: ________________________\n")
	fmt.Fprintf(&b, "Date: %s\n", generated)

	return &Declaration{
		Text:     b.String(),
		Filename: fmt.Sprintf("ai-declaration-%s.txt", generated),
	}, nil
}
