package service

import (
	"context"
	"errors"

	"zorva-be/internal/dto"
	"zorva-be/internal/entity"
	"zorva-be/internal/repository/contract"
	"zorva-be/internal/repository/specification"
	"zorva-be/internal/repository/unitofwork"
	"zorva-be/pkg/assistant"

	"github.com/google/uuid"
)

// In-memory substitutes for the repository and generation layers. The repo
// fakes interpret the specification structs they know about and ignore the
// rest; tests only combine them in ways the services actually use.

type fakeGenerator struct {
	runResult *assistant.RunResult
	runErr    error
	messages  []string
}

func (g *fakeGenerator) CreateThread(ctx context.Context) (string, error) {
	return "thread-test", nil
}

func (g *fakeGenerator) DeleteThread(ctx context.Context, threadId string) error {
	return nil
}

func (g *fakeGenerator) AddMessage(ctx context.Context, threadId, content string) error {
	g.messages = append(g.messages, content)
	return nil
}

func (g *fakeGenerator) StreamRun(ctx context.Context, threadId, assistantId string) (*assistant.RunResult, error) {
	if g.runErr != nil {
		return nil, g.runErr
	}
	return g.runResult, nil
}

func (g *fakeGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	return "", nil
}

type fakeAccountService struct {
	account *entity.Account
}

func (s *fakeAccountService) AddAccount(ctx context.Context, req *dto.AddAccountRequest) (*dto.AccountResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeAccountService) GetAccount(ctx context.Context, externalUid string) (*dto.AccountResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeAccountService) ResolveAccount(ctx context.Context, externalUid string) (*entity.Account, error) {
	return s.account, nil
}

type fakeConversationRepo struct {
	rows    []*entity.Conversation
	findOne *entity.Conversation
}

func (r *fakeConversationRepo) Create(ctx context.Context, conversation *entity.Conversation) error {
	r.rows = append(r.rows, conversation)
	return nil
}

func (r *fakeConversationRepo) Update(ctx context.Context, conversation *entity.Conversation) error {
	return nil
}

func (r *fakeConversationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (r *fakeConversationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	return r.findOne, nil
}

func (r *fakeConversationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	return r.rows, nil
}

type fakeTurnRepo struct {
	rows      []*entity.Turn
	createErr error
}

func (r *fakeTurnRepo) Create(ctx context.Context, turn *entity.Turn) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.rows = append(r.rows, turn)
	return nil
}

func (r *fakeTurnRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Turn, error) {
	return r.rows, nil
}

func (r *fakeTurnRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

type fakeCitationRepo struct {
	rows []*entity.TurnCitation
}

func (r *fakeCitationRepo) Create(ctx context.Context, citation *entity.TurnCitation) error {
	r.rows = append(r.rows, citation)
	return nil
}

func (r *fakeCitationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TurnCitation, error) {
	return r.rows, nil
}

type fakeDocumentRepo struct {
	rows []*entity.Document
}

func (r *fakeDocumentRepo) Create(ctx context.Context, document *entity.Document) error {
	r.rows = append(r.rows, document)
	return nil
}

func (r *fakeDocumentRepo) DeleteByDocumentId(ctx context.Context, documentId string) error {
	return nil
}

func (r *fakeDocumentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	if len(r.rows) == 0 {
		return nil, nil
	}
	return r.rows[0], nil
}

func (r *fakeDocumentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error) {
	return r.rows, nil
}

func (r *fakeDocumentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

type fakeInsightRepo struct {
	rows []*entity.Insight
}

func (r *fakeInsightRepo) Create(ctx context.Context, insight *entity.Insight) error {
	r.rows = append(r.rows, insight)
	return nil
}

func (r *fakeInsightRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (r *fakeInsightRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Insight, error) {
	return nil, nil
}

func (r *fakeInsightRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Insight, error) {
	return r.rows, nil
}

func (r *fakeInsightRepo) MaxSeqId(ctx context.Context, conversationId uuid.UUID) (int, error) {
	return len(r.rows), nil
}

type fakeQuickInsightRepo struct {
	rows []*entity.QuickInsight
}

func (r *fakeQuickInsightRepo) Create(ctx context.Context, insight *entity.QuickInsight) error {
	r.rows = append(r.rows, insight)
	return nil
}

func (r *fakeQuickInsightRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (r *fakeQuickInsightRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QuickInsight, error) {
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			for _, row := range r.rows {
				if row.Id == byId.ID {
					return row, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeQuickInsightRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuickInsight, error) {
	return r.rows, nil
}

type fakeSavedResponseRepo struct {
	rows []*entity.SavedResponse
}

func (r *fakeSavedResponseRepo) Create(ctx context.Context, saved *entity.SavedResponse) error {
	r.rows = append(r.rows, saved)
	return nil
}

func (r *fakeSavedResponseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (r *fakeSavedResponseRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedResponse, error) {
	for _, row := range r.rows {
		if savedMatches(row, specs) {
			return row, nil
		}
	}
	return nil, nil
}

func (r *fakeSavedResponseRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedResponse, error) {
	var matched []*entity.SavedResponse
	for _, row := range r.rows {
		if savedMatches(row, specs) {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

func savedMatches(row *entity.SavedResponse, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByConversationID:
			if row.ConversationId != s.ConversationID {
				return false
			}
		case specification.ByQuickInsightID:
			if row.QuickInsightId != s.QuickInsightID {
				return false
			}
		}
	}
	return true
}

type fakeUnitOfWork struct {
	conversations  *fakeConversationRepo
	turns          *fakeTurnRepo
	citations      *fakeCitationRepo
	documents      *fakeDocumentRepo
	insights       *fakeInsightRepo
	quickInsights  *fakeQuickInsightRepo
	savedResponses *fakeSavedResponseRepo

	begun, committed, rolledBack bool
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		conversations:  &fakeConversationRepo{},
		turns:          &fakeTurnRepo{},
		citations:      &fakeCitationRepo{},
		documents:      &fakeDocumentRepo{},
		insights:       &fakeInsightRepo{},
		quickInsights:  &fakeQuickInsightRepo{},
		savedResponses: &fakeSavedResponseRepo{},
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { u.begun = true; return nil }
func (u *fakeUnitOfWork) Commit() error                   { u.committed = true; return nil }
func (u *fakeUnitOfWork) Rollback() error                 { u.rolledBack = true; return nil }

func (u *fakeUnitOfWork) AccountRepository() contract.AccountRepository { return nil }
func (u *fakeUnitOfWork) DocumentRepository() contract.DocumentRepository {
	return u.documents
}
func (u *fakeUnitOfWork) ConversationRepository() contract.ConversationRepository {
	return u.conversations
}
func (u *fakeUnitOfWork) TurnRepository() contract.TurnRepository { return u.turns }
func (u *fakeUnitOfWork) TurnCitationRepository() contract.TurnCitationRepository {
	return u.citations
}
func (u *fakeUnitOfWork) InsightRepository() contract.InsightRepository { return u.insights }
func (u *fakeUnitOfWork) QuickInsightRepository() contract.QuickInsightRepository {
	return u.quickInsights
}
func (u *fakeUnitOfWork) SavedResponseRepository() contract.SavedResponseRepository {
	return u.savedResponses
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}
