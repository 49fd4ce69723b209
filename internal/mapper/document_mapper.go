package mapper

import (
	"zorva-be/internal/entity"
	"zorva-be/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}

	return &entity.Document{
		Id:               d.Id,
		DocumentId:       d.DocumentId,
		AccountId:        d.AccountId,
		DisplayName:      d.DisplayName,
		SheetName:        d.SheetName,
		SheetDocumentIds: fromJSONStrings(d.SheetDocumentIds),
		ContentType:      d.ContentType,
		SizeBytes:        d.SizeBytes,
		RecordCount:      d.RecordCount,
		CreatedAt:        d.CreatedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}

	return &model.Document{
		Id:               d.Id,
		DocumentId:       d.DocumentId,
		AccountId:        d.AccountId,
		DisplayName:      d.DisplayName,
		SheetName:        d.SheetName,
		SheetDocumentIds: toJSONStrings(d.SheetDocumentIds),
		ContentType:      d.ContentType,
		SizeBytes:        d.SizeBytes,
		RecordCount:      d.RecordCount,
		CreatedAt:        d.CreatedAt,
	}
}

func (m *DocumentMapper) ToEntities(docs []*model.Document) []*entity.Document {
	entities := make([]*entity.Document, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
