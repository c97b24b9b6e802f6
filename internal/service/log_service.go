package service

import (
	"context"
	"errors"
	"fmt"

	"aiguidebook/internal/entity"
	"aiguidebook/internal/model"
	"aiguidebook/internal/validation"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LogService 封装用量记录的读写业务逻辑。
type LogService struct {
	repo model.Repository
}

// NewLogService 创建记录服务实例
func NewLogService(repo model.Repository) *LogService {
	return &LogService{repo: repo}
}

// List returns all usage logs ordered by creation time descending.
func (s *LogService) List(ctx context.Context) ([]entity.DbUsageLog, error) {
	return s.repo.ListUsageLogs(ctx)
}

// Get returns a single usage log by id.
func (s *LogService) Get(ctx context.Context, id uint) (*entity.DbUsageLog, error) {
	log, err := s.repo.GetUsageLog(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	return log, nil
}

// Create validates the payload, persists it and returns the stored record
// with id and createdAt assigned.
func (s *LogService) Create(ctx context.Context, in entity.UsageLogInput) (*entity.DbUsageLog, error) {
	if fieldErrs := validation.CheckUsageLogInput(&in); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	log := entity.DbUsageLog{
		AssignmentTitle:     in.AssignmentTitle,
		DateOfUse:           in.DateOfUse,
		Tool:                in.Tool,
		PurposeCategory:     in.PurposeCategory,
		OptionalExplanation: in.OptionalExplanation,
		PromptQueryUsed:     in.PromptQueryUsed,
		OutputReceived:      in.OutputReceived,
		ModifiedOutput:      in.ModifiedOutput,
	}
	if err := s.repo.CreateUsageLog(ctx, &log); err != nil {
		return nil, fmt.Errorf("create usage log: %w", err)
	}
	return &log, nil
}

// Update validates the payload and replaces all mutable fields of the record.
// id 和 created_at 不可变。
func (s *LogService) Update(ctx context.Context, id uint, in entity.UsageLogInput) (*entity.DbUsageLog, error) {
	if fieldErrs := validation.CheckUsageLogInput(&in); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	if _, err := s.repo.GetUsageLog(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"assignment_title":     in.AssignmentTitle,
		"date_of_use":          in.DateOfUse,
		"tool":                 in.Tool,
		"purpose_category":     in.PurposeCategory,
		"optional_explanation": in.OptionalExplanation,
		"prompt_query_used":    in.PromptQueryUsed,
		"output_received":      in.OutputReceived,
		"modified_output":      in.ModifiedOutput,
	}
	if err := s.repo.UpdateUsageLog(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("update usage log: %w", err)
	}

	updated, err := s.repo.GetUsageLog(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload usage log: %w", err)
	}
	return updated, nil
}

// Delete removes a single usage log.
func (s *LogService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.DeleteUsageLog(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLogNotFound
		}
		return err
	}
	return nil
}

// DeleteAll removes every usage log as a sequence of independent per-record
// deletes. 部分失败不会中断剩余删除；失败明细逐条返回。
func (s *LogService) DeleteAll(ctx context.Context) (entity.BulkDeleteResponse, error) {
	result := entity.BulkDeleteResponse{}

	ids, err := s.repo.ListUsageLogIDs(ctx)
	if err != nil {
		return result, fmt.Errorf("list usage log ids: %w", err)
	}

	var merr *multierror.Error
	for _, id := range ids {
		if err := s.repo.DeleteUsageLog(ctx, id); err != nil {
			// 并发窗口里已消失的记录按已删除处理
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			logrus.WithError(err).WithField("id", id).Error("failed to delete usage log")
			result.Failed = append(result.Failed, entity.BulkDeleteFailure{ID: id, Error: err.Error()})
			merr = multierror.Append(merr, fmt.Errorf("delete usage log %d: %w", id, err))
			continue
		}
		result.Deleted++
	}

	return result, merr.ErrorOrNil()
}
