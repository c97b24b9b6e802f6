package sql

import (
	"context"
	"fmt"

	"aiguidebook/internal/entity"

	"gorm.io/gorm"
)

// CreateUsageLog inserts a new usage log into the database.
// created_at 由 GORM 在插入时设置，之后不再变更。
func (r *GormRepository) CreateUsageLog(ctx context.Context, log *entity.DbUsageLog) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if log == nil {
		return fmt.Errorf("log is nil")
	}
	return r.db.WithContext(ctx).Create(log).Error
}

// ListUsageLogs retrieves all usage logs, most recent first.
func (r *GormRepository) ListUsageLogs(ctx context.Context) ([]entity.DbUsageLog, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	var logs []entity.DbUsageLog
	if err := r.db.WithContext(ctx).
		Model(&entity.DbUsageLog{}).
		Order("created_at DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// GetUsageLog retrieves a single usage log by ID.
func (r *GormRepository) GetUsageLog(ctx context.Context, id uint) (*entity.DbUsageLog, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid usage log id")
	}

	var log entity.DbUsageLog
	if err := r.db.WithContext(ctx).First(&log, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load usage log: %w", err)
	}
	return &log, nil
}

// UpdateUsageLog updates a usage log with the provided fields.
// 更新 map 不得包含 created_at。
func (r *GormRepository) UpdateUsageLog(ctx context.Context, id uint, updates map[string]interface{}) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid usage log id")
	}
	if len(updates) == 0 {
		return fmt.Errorf("no updates provided")
	}
	return r.db.WithContext(ctx).Model(&entity.DbUsageLog{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteUsageLog removes a usage log by ID.
func (r *GormRepository) DeleteUsageLog(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid usage log id")
	}

	result := r.db.WithContext(ctx).Delete(&entity.DbUsageLog{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListUsageLogIDs returns the ids of all usage logs, most recent first.
func (r *GormRepository) ListUsageLogIDs(ctx context.Context) ([]uint, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&entity.DbUsageLog{}).
		Order("created_at DESC, id DESC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// CountUsageLogs returns the total number of usage logs.
func (r *GormRepository) CountUsageLogs(ctx context.Context) (int64, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("repository not initialised")
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.DbUsageLog{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
