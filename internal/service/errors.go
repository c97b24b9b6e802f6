package service

import (
	"errors"
	"fmt"
	"strings"

	"aiguidebook/internal/validation"
)

var (
	// ErrLogNotFound 表示引用的记录 id 不存在。
	ErrLogNotFound = errors.New("usage log not found")
)

// ValidationError 携带一次校验的全部失败字段。
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// AsValidationError 判断 err 是否为校验错误。
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
