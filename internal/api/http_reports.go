package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"aiguidebook/internal/archive"
	"aiguidebook/internal/entity"
	"aiguidebook/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LogSummary 对全量记录应用过滤条件并返回汇总统计。
func (h *HTTPHandler) LogSummary(c *gin.Context) {
	var params entity.SummaryQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid query parameters")
		return
	}
	if strings.TrimSpace(params.TimeRange) == "" {
		params.TimeRange = report.RangeLast30Days
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	logs, err := h.logService.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to load usage logs for summary")
		InternalError(c, "failed to load usage logs")
		return
	}

	filtered := report.ApplyFilters(logs, report.FilterSpec{
		Course:          params.Course,
		TaskType:        params.TaskType,
		Tool:            params.Tool,
		PurposeCategory: params.PurposeCategory,
		TimeRange:       params.TimeRange,
		FromDate:        params.FromDate,
		ToDate:          params.ToDate,
	}, time.Now())
	summary := report.Summarize(filtered)

	c.JSON(http.StatusOK, entity.SummaryResponse{
		Total:             summary.Total,
		UniqueTools:       summary.UniqueTools,
		UniqueAssignments: summary.UniqueAssignments,
		TopPurpose:        summary.TopPurpose,
		Monthly:           summary.Monthly,
		TopTools:          summary.TopTools,
		Logs:              filtered,
	})
}

// Declaration 基于全部记录生成纯文本使用声明。
//
// ?download=1 时直接以附件形式返回文本；?archive=1 时额外把文档
// 写入归档后端，归档失败不影响声明本身的返回。
func (h *HTTPHandler) Declaration(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	logs, err := h.logService.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to load usage logs for declaration")
		InternalError(c, "failed to load usage logs")
		return
	}
	if len(logs) == 0 {
		ErrorResponse(c, http.StatusConflict, ErrCodeEmptyDeclaration, "no usage logs to declare")
		return
	}

	now := time.Now()
	decl, err := report.GenerateDeclaration(logs, now)
	if err != nil {
		logrus.WithError(err).Error("failed to generate declaration")
		InternalError(c, "failed to generate declaration")
		return
	}

	response := entity.DeclarationResponse{
		Filename: decl.Filename,
		Content:  decl.Text,
	}

	if parseFlagParam(c.Query("archive")) && h.archive != nil {
		baseName := strings.TrimSuffix(decl.Filename, ".txt")
		key, archiveErr := h.archive.Save(ctx, []byte(decl.Text), archive.SaveOptions{
			BaseName:  baseName,
			Extension: "txt",
		})
		if archiveErr != nil {
			logrus.WithError(archiveErr).Warn("failed to archive declaration")
			response.ArchiveError = archiveErr.Error()
		} else {
			response.ArchiveKey = key
		}
	}

	if parseFlagParam(c.Query("download")) {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", decl.Filename))
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(decl.Text))
		return
	}

	c.JSON(http.StatusOK, response)
}

// Options 返回录入表单使用的建议选项。
func (h *HTTPHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, entity.OptionsResponse{
		Tools:             entity.SuggestedTools,
		PurposeCategories: entity.SuggestedPurposeCategories,
		TitleSeparator:    report.TitleSeparator,
	})
}

func parseFlagParam(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
