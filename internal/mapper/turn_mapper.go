package mapper

import (
	"zorva-be/internal/entity"
	"zorva-be/internal/model"
)

type TurnMapper struct{}

func NewTurnMapper() *TurnMapper {
	return &TurnMapper{}
}

func (m *TurnMapper) ToEntity(t *model.Turn) *entity.Turn {
	if t == nil {
		return nil
	}

	return &entity.Turn{
		Id:             t.Id,
		ConversationId: t.ConversationId,
		Role:           t.Role,
		DisplayText:    t.DisplayText,
		FullPromptText: t.FullPromptText,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *TurnMapper) ToModel(t *entity.Turn) *model.Turn {
	if t == nil {
		return nil
	}

	return &model.Turn{
		Id:             t.Id,
		ConversationId: t.ConversationId,
		Role:           t.Role,
		DisplayText:    t.DisplayText,
		FullPromptText: t.FullPromptText,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *TurnMapper) ToEntities(turns []*model.Turn) []*entity.Turn {
	entities := make([]*entity.Turn, len(turns))
	for i, t := range turns {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func (m *TurnMapper) CitationToEntity(c *model.TurnCitation) *entity.TurnCitation {
	if c == nil {
		return nil
	}

	return &entity.TurnCitation{
		Id:         c.Id,
		TurnId:     c.TurnId,
		DocumentId: c.DocumentId,
		CreatedAt:  c.CreatedAt,
	}
}

func (m *TurnMapper) CitationToModel(c *entity.TurnCitation) *model.TurnCitation {
	if c == nil {
		return nil
	}

	return &model.TurnCitation{
		Id:         c.Id,
		TurnId:     c.TurnId,
		DocumentId: c.DocumentId,
		CreatedAt:  c.CreatedAt,
	}
}

func (m *TurnMapper) CitationsToEntities(citations []*model.TurnCitation) []*entity.TurnCitation {
	entities := make([]*entity.TurnCitation, len(citations))
	for i, c := range citations {
		entities[i] = m.CitationToEntity(c)
	}
	return entities
}
