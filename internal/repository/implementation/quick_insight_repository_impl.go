package implementation

import (
	"context"
	"errors"

	"zorva-be/internal/entity"
	"zorva-be/internal/mapper"
	"zorva-be/internal/model"
	"zorva-be/internal/repository/contract"
	"zorva-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuickInsightRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InsightMapper
}

func NewQuickInsightRepository(db *gorm.DB) contract.QuickInsightRepository {
	return &QuickInsightRepositoryImpl{
		db:     db,
		mapper: mapper.NewInsightMapper(),
	}
}

func (r *QuickInsightRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QuickInsightRepositoryImpl) Create(ctx context.Context, insight *entity.QuickInsight) error {
	m := r.mapper.QuickInsightToModel(insight)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*insight = *r.mapper.QuickInsightToEntity(m)
	return nil
}

func (r *QuickInsightRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.QuickInsight{}, id).Error
}

func (r *QuickInsightRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QuickInsight, error) {
	var m model.QuickInsight
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.QuickInsightToEntity(&m), nil
}

func (r *QuickInsightRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuickInsight, error) {
	var models []*model.QuickInsight
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.QuickInsightsToEntities(models), nil
}
