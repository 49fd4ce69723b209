package mapper

import (
	"time"

	"zorva-be/internal/entity"
	"zorva-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InsightMapper struct{}

func NewInsightMapper() *InsightMapper {
	return &InsightMapper{}
}

func (m *InsightMapper) ToEntity(i *model.Insight) *entity.Insight {
	if i == nil {
		return nil
	}

	var deletedAt *time.Time
	if i.DeletedAt.Valid {
		t := i.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.Insight{
		Id:             i.Id,
		ConversationId: i.ConversationId,
		SeqId:          i.SeqId,
		Text:           i.Text,
		Data:           []byte(i.Data),
		FileReferences: fromJSONStrings(i.FileReferences),
		CreatedAt:      i.CreatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      i.DeletedAt.Valid,
	}
}

func (m *InsightMapper) ToModel(i *entity.Insight) *model.Insight {
	if i == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if i.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *i.DeletedAt, Valid: true}
	} else if i.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	return &model.Insight{
		Id:             i.Id,
		ConversationId: i.ConversationId,
		SeqId:          i.SeqId,
		Text:           i.Text,
		Data:           datatypes.JSON(i.Data),
		FileReferences: toJSONStrings(i.FileReferences),
		CreatedAt:      i.CreatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *InsightMapper) ToEntities(insights []*model.Insight) []*entity.Insight {
	entities := make([]*entity.Insight, len(insights))
	for i, ins := range insights {
		entities[i] = m.ToEntity(ins)
	}
	return entities
}

func (m *InsightMapper) QuickInsightToEntity(q *model.QuickInsight) *entity.QuickInsight {
	if q == nil {
		return nil
	}

	return &entity.QuickInsight{
		Id:              q.Id,
		AccountId:       q.AccountId,
		Title:           q.Title,
		Text:            q.Text,
		SourceDocuments: fromJSONStrings(q.SourceDocuments),
		CreatedAt:       q.CreatedAt,
	}
}

func (m *InsightMapper) QuickInsightToModel(q *entity.QuickInsight) *model.QuickInsight {
	if q == nil {
		return nil
	}

	return &model.QuickInsight{
		Id:              q.Id,
		AccountId:       q.AccountId,
		Title:           q.Title,
		Text:            q.Text,
		SourceDocuments: toJSONStrings(q.SourceDocuments),
		CreatedAt:       q.CreatedAt,
	}
}

func (m *InsightMapper) QuickInsightsToEntities(items []*model.QuickInsight) []*entity.QuickInsight {
	entities := make([]*entity.QuickInsight, len(items))
	for i, q := range items {
		entities[i] = m.QuickInsightToEntity(q)
	}
	return entities
}

func (m *InsightMapper) SavedResponseToEntity(s *model.SavedResponse) *entity.SavedResponse {
	if s == nil {
		return nil
	}

	return &entity.SavedResponse{
		Id:             s.Id,
		ConversationId: s.ConversationId,
		QuickInsightId: s.QuickInsightId,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *InsightMapper) SavedResponseToModel(s *entity.SavedResponse) *model.SavedResponse {
	if s == nil {
		return nil
	}

	return &model.SavedResponse{
		Id:             s.Id,
		ConversationId: s.ConversationId,
		QuickInsightId: s.QuickInsightId,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *InsightMapper) SavedResponsesToEntities(items []*model.SavedResponse) []*entity.SavedResponse {
	entities := make([]*entity.SavedResponse, len(items))
	for i, s := range items {
		entities[i] = m.SavedResponseToEntity(s)
	}
	return entities
}
