package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"aiguidebook/internal/entity"
	"aiguidebook/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// parseLogID 解析路径中的记录 id，必须是正整数。
func parseLogID(c *gin.Context) (uint, bool) {
	idValue := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(idValue, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ListLogs 返回全部用量记录，最新创建的在前。
func (h *HTTPHandler) ListLogs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	logs, err := h.logService.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list usage logs")
		InternalError(c, "failed to load usage logs")
		return
	}
	if logs == nil {
		logs = []entity.DbUsageLog{}
	}

	c.JSON(http.StatusOK, logs)
}

// CreateLog 校验并持久化一条新记录。
func (h *HTTPHandler) CreateLog(c *gin.Context) {
	var input entity.UsageLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	created, err := h.logService.Create(ctx, input)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			ValidationFailed(c, ve.Fields)
			return
		}
		logrus.WithError(err).Error("failed to create usage log")
		InternalError(c, "failed to create usage log")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateLog 用完整负载替换一条记录的全部可变字段。
func (h *HTTPHandler) UpdateLog(c *gin.Context) {
	id, ok := parseLogID(c)
	if !ok {
		InvalidID(c)
		return
	}

	var input entity.UsageLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.logService.Update(ctx, id, input)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			ValidationFailed(c, ve.Fields)
			return
		}
		if errors.Is(err, service.ErrLogNotFound) {
			NotFound(c, ErrCodeLogNotFound, "usage log not found")
			return
		}
		logrus.WithError(err).WithField("id", id).Error("failed to update usage log")
		InternalError(c, "failed to update usage log")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteLog 删除一条记录。
func (h *HTTPHandler) DeleteLog(c *gin.Context) {
	id, ok := parseLogID(c)
	if !ok {
		InvalidID(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.logService.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrLogNotFound) {
			NotFound(c, ErrCodeLogNotFound, "usage log not found")
			return
		}
		logrus.WithError(err).WithField("id", id).Error("failed to delete usage log")
		InternalError(c, "failed to delete usage log")
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAllLogs 逐条删除全部记录，部分失败时返回失败明细。
func (h *HTTPHandler) DeleteAllLogs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	result, err := h.logService.DeleteAll(ctx)
	if err != nil {
		if len(result.Failed) > 0 {
			logrus.WithError(err).Error("bulk delete completed partially")
			ErrorResponseWithDetails(c, http.StatusInternalServerError, ErrCodePartialDelete,
				"some usage logs could not be deleted", result)
			return
		}
		logrus.WithError(err).Error("failed to delete usage logs")
		InternalError(c, "failed to delete usage logs")
		return
	}

	c.JSON(http.StatusOK, result)
}
