package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/talentlink/api/internal/model"
)

// ErrRecordNotFound is returned by FindByID lookups when no row matches.
var ErrRecordNotFound = errors.New("record not found")

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepository) Save(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*model.Job, error) {
	var job model.Job
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// FindAll returns every job regardless of status; callers filter as needed.
func (r *JobRepository) FindAll(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) FindByStatus(ctx context.Context, status model.JobStatus) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).Where("status = ?", status).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id string, status model.JobStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Job{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// CountByStatus returns job counts grouped by status.
func (r *JobRepository) CountByStatus(ctx context.Context) (map[model.JobStatus]int64, error) {
	var rows []struct {
		Status model.JobStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&model.Job{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[model.JobStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
