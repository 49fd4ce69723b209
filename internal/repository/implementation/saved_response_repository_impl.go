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

type SavedResponseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InsightMapper
}

func NewSavedResponseRepository(db *gorm.DB) contract.SavedResponseRepository {
	return &SavedResponseRepositoryImpl{
		db:     db,
		mapper: mapper.NewInsightMapper(),
	}
}

func (r *SavedResponseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SavedResponseRepositoryImpl) Create(ctx context.Context, saved *entity.SavedResponse) error {
	m := r.mapper.SavedResponseToModel(saved)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*saved = *r.mapper.SavedResponseToEntity(m)
	return nil
}

func (r *SavedResponseRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SavedResponse{}, id).Error
}

func (r *SavedResponseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedResponse, error) {
	var m model.SavedResponse
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SavedResponseToEntity(&m), nil
}

func (r *SavedResponseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedResponse, error) {
	var models []*model.SavedResponse
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SavedResponsesToEntities(models), nil
}
