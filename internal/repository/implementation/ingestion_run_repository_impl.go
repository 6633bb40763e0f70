package implementation

import (
	"context"

	"github.com/LucasRomanSaad/stoicChatBOT/internal/entity"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/mapper"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/model"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/repository/contract"

	"gorm.io/gorm"
)

type IngestionRunRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.IngestionRunMapper
}

func NewIngestionRunRepository(db *gorm.DB) contract.IngestionRunRepository {
	return &IngestionRunRepositoryImpl{
		db:     db,
		mapper: mapper.NewIngestionRunMapper(),
	}
}

func (r *IngestionRunRepositoryImpl) Create(ctx context.Context, run *entity.IngestionRun) error {
	m := r.mapper.ToModel(run)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*run = *r.mapper.ToEntity(m)
	return nil
}

func (r *IngestionRunRepositoryImpl) FindRecent(ctx context.Context, limit int) ([]*entity.IngestionRun, error) {
	if limit <= 0 {
		limit = 10
	}

	var models []*model.IngestionRun
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	runs := make([]*entity.IngestionRun, len(models))
	for i, m := range models {
		runs[i] = r.mapper.ToEntity(m)
	}
	return runs, nil
}
