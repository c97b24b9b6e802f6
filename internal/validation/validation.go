package validation

import (
	"fmt"
	"strings"

	"aiguidebook/internal/entity"
)

// FieldError 描述单个字段的校验失败。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CheckUsageLogInput 校验完整的记录负载并就地归一化。
//
// 四个必填字段必须非空；四个可选字段由 OptionalText 的反序列化归一化，
// 非字符串输入已在解析阶段折叠为缺省。创建与更新使用同一套规则。
// 返回所有失败字段，而不是只报告第一个。
func CheckUsageLogInput(in *entity.UsageLogInput) []FieldError {
	var errs []FieldError

	requireText := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, FieldError{Field: field, Message: "must be a non-empty string"})
		}
	}

	requireText("assignmentTitle", in.AssignmentTitle)
	requireText("dateOfUse", in.DateOfUse)
	requireText("tool", in.Tool)
	requireText("purposeCategory", in.PurposeCategory)

	return errs
}
