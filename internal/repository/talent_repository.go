package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/talentlink/api/internal/model"
)

type TalentRepository struct {
	db *gorm.DB
}

func NewTalentRepository(db *gorm.DB) *TalentRepository {
	return &TalentRepository{db: db}
}

func (r *TalentRepository) Create(ctx context.Context, talent *model.Talent) error {
	return r.db.WithContext(ctx).Create(talent).Error
}

func (r *TalentRepository) Save(ctx context.Context, talent *model.Talent) error {
	return r.db.WithContext(ctx).Save(talent).Error
}

func (r *TalentRepository) FindByID(ctx context.Context, id string) (*model.Talent, error) {
	var talent model.Talent
	err := r.db.WithContext(ctx).First(&talent, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &talent, nil
}

// FindAll returns every talent regardless of status; callers filter as needed.
func (r *TalentRepository) FindAll(ctx context.Context) ([]model.Talent, error) {
	var talents []model.Talent
	err := r.db.WithContext(ctx).Find(&talents).Error
	return talents, err
}

func (r *TalentRepository) UpdateStatus(ctx context.Context, id string, status model.TalentStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Talent{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// CountByStatus returns talent counts grouped by status.
func (r *TalentRepository) CountByStatus(ctx context.Context) (map[model.TalentStatus]int64, error) {
	var rows []struct {
		Status model.TalentStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&model.Talent{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[model.TalentStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
