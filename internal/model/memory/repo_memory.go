package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"aiguidebook/internal/entity"

	"gorm.io/gorm"
)

// Repository 是 Repository 接口的内存实现，用于测试和无持久化的运行模式。
// id 单调递增，进程生命周期内不复用。
type Repository struct {
	mu     sync.Mutex
	logs   map[uint]entity.DbUsageLog
	nextID uint
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{
		logs:   make(map[uint]entity.DbUsageLog),
		nextID: 1,
	}
}

// CreateUsageLog assigns id and createdAt and stores the record.
func (r *Repository) CreateUsageLog(ctx context.Context, log *entity.DbUsageLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.ID = r.nextID
	r.nextID++
	log.CreatedAt = time.Now()
	r.logs[log.ID] = *log
	return nil
}

// ListUsageLogs returns all records, most recently created first.
func (r *Repository) ListUsageLogs(ctx context.Context) ([]entity.DbUsageLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	logs := make([]entity.DbUsageLog, 0, len(r.logs))
	for _, log := range r.logs {
		logs = append(logs, log)
	}
	sort.Slice(logs, func(i, j int) bool {
		if !logs[i].CreatedAt.Equal(logs[j].CreatedAt) {
			return logs[i].CreatedAt.After(logs[j].CreatedAt)
		}
		return logs[i].ID > logs[j].ID
	})
	return logs, nil
}

// GetUsageLog returns a single record by id.
func (r *Repository) GetUsageLog(ctx context.Context, id uint) (*entity.DbUsageLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log, ok := r.logs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &log, nil
}

// UpdateUsageLog applies column updates to an existing record.
// created_at 不在可更新列之内。
func (r *Repository) UpdateUsageLog(ctx context.Context, id uint, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log, ok := r.logs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	for column, value := range updates {
		switch column {
		case "assignment_title":
			log.AssignmentTitle = value.(string)
		case "date_of_use":
			log.DateOfUse = value.(string)
		case "tool":
			log.Tool = value.(string)
		case "purpose_category":
			log.PurposeCategory = value.(string)
		case "optional_explanation":
			log.OptionalExplanation = value.(entity.OptionalText)
		case "prompt_query_used":
			log.PromptQueryUsed = value.(entity.OptionalText)
		case "output_received":
			log.OutputReceived = value.(entity.OptionalText)
		case "modified_output":
			log.ModifiedOutput = value.(entity.OptionalText)
		}
	}

	r.logs[id] = log
	return nil
}

// DeleteUsageLog removes a record by id.
func (r *Repository) DeleteUsageLog(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.logs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.logs, id)
	return nil
}

// ListUsageLogIDs returns the ids of all records, most recently created first.
func (r *Repository) ListUsageLogIDs(ctx context.Context) ([]uint, error) {
	logs, err := r.ListUsageLogs(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(logs))
	for _, log := range logs {
		ids = append(ids, log.ID)
	}
	return ids, nil
}

// CountUsageLogs returns the number of stored records.
func (r *Repository) CountUsageLogs(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.logs)), nil
}
