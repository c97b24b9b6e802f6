package model

import (
	"context"

	"aiguidebook/internal/entity"
)

// Repository 定义数据库操作接口
type Repository interface {
	CreateUsageLog(ctx context.Context, log *entity.DbUsageLog) error
	ListUsageLogs(ctx context.Context) ([]entity.DbUsageLog, error)
	GetUsageLog(ctx context.Context, id uint) (*entity.DbUsageLog, error)
	UpdateUsageLog(ctx context.Context, id uint, updates map[string]interface{}) error
	DeleteUsageLog(ctx context.Context, id uint) error
	ListUsageLogIDs(ctx context.Context) ([]uint, error)
	CountUsageLogs(ctx context.Context) (int64, error)
}
