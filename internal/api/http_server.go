package api

import (
	"aiguidebook/internal/archive"
	"aiguidebook/internal/config"
	"aiguidebook/internal/model"
	"aiguidebook/internal/service"
)

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg     config.Config
	archive archive.Archive

	// 服务层
	logService *service.LogService
}

// NewHTTPHandler 创建 HTTP 处理器实例
func NewHTTPHandler(cfg config.Config, repo model.Repository, arc archive.Archive) (*HTTPHandler, error) {
	return &HTTPHandler{
		cfg:        cfg,
		archive:    arc,
		logService: service.NewLogService(repo),
	}, nil
}
