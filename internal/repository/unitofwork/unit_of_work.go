package unitofwork

import (
	"context"

	"zorva-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AccountRepository() contract.AccountRepository
	DocumentRepository() contract.DocumentRepository
	ConversationRepository() contract.ConversationRepository
	TurnRepository() contract.TurnRepository
	TurnCitationRepository() contract.TurnCitationRepository
	InsightRepository() contract.InsightRepository
	QuickInsightRepository() contract.QuickInsightRepository
	SavedResponseRepository() contract.SavedResponseRepository
}
