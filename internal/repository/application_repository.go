package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/talentlink/api/internal/model"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) FindByJob(ctx context.Context, jobID string) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).Where("job_id = ?", jobID).Order("created_at desc").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) FindByTalent(ctx context.Context, talentID string) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).Where("talent_id = ?", talentID).Order("created_at desc").Find(&apps).Error
	return apps, err
}

// ExistsForJobAndTalent reports whether the talent already applied to the job.
func (r *ApplicationRepository) ExistsForJobAndTalent(ctx context.Context, jobID, talentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("job_id = ? AND talent_id = ?", jobID, talentID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Application{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// CountByStatus returns application counts grouped by status.
func (r *ApplicationRepository) CountByStatus(ctx context.Context) (map[model.ApplicationStatus]int64, error) {
	var rows []struct {
		Status model.ApplicationStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&model.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[model.ApplicationStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
