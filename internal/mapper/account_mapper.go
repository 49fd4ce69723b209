package mapper

import (
	"time"

	"zorva-be/internal/entity"
	"zorva-be/internal/model"
)

type AccountMapper struct{}

func NewAccountMapper() *AccountMapper {
	return &AccountMapper{}
}

func (m *AccountMapper) ToEntity(a *model.Account) *entity.Account {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Account{
		Id:                   a.Id,
		ExternalUid:          a.ExternalUid,
		Email:                a.Email,
		RetrievalHandle:      a.RetrievalHandle,
		AnalysisHandle:       a.AnalysisHandle,
		CorpusId:             a.CorpusId,
		QuickInsightThreadId: a.QuickInsightThreadId,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            updatedAt,
	}
}

func (m *AccountMapper) ToModel(a *entity.Account) *model.Account {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Account{
		Id:                   a.Id,
		ExternalUid:          a.ExternalUid,
		Email:                a.Email,
		RetrievalHandle:      a.RetrievalHandle,
		AnalysisHandle:       a.AnalysisHandle,
		CorpusId:             a.CorpusId,
		QuickInsightThreadId: a.QuickInsightThreadId,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            updatedAt,
	}
}
