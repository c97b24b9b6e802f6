package api

import (
	"net/http"

	"aiguidebook/internal/validation"

	"github.com/gin-gonic/gin"
)

// 错误码定义
const (
	// 通用错误码
	ErrCodeInvalidRequest = "ERR_INVALID_REQUEST"
	ErrCodeInternalError  = "ERR_INTERNAL_ERROR"

	// 记录操作错误码
	ErrCodeInvalidID        = "ERR_INVALID_ID"
	ErrCodeLogNotFound      = "ERR_LOG_NOT_FOUND"
	ErrCodeValidationFailed = "ERR_VALIDATION_FAILED"
	ErrCodePartialDelete    = "ERR_PARTIAL_DELETE"

	// 声明生成错误码
	ErrCodeEmptyDeclaration = "ERR_EMPTY_DECLARATION"
)

// APIError 统一的 API 错误响应结构
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse 返回统一格式的错误响应
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// ErrorResponseWithDetails 返回带详情的错误响应
func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// 常用错误响应快捷函数

// BadRequest 400 错误请求
func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusNotFound, code, message)
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// InvalidPayload 无效的请求体
func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}

// InvalidID 非法的记录 id
func InvalidID(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidID, "invalid usage log id")
}

// ValidationFailed 返回包含全部失败字段的校验错误
func ValidationFailed(c *gin.Context, fields []validation.FieldError) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeValidationFailed,
		"one or more fields are missing or invalid", gin.H{"fields": fields})
}
