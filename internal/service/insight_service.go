package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"zorva-be/internal/dto"
	"zorva-be/internal/entity"
	"zorva-be/internal/pkg/serverutils"
	"zorva-be/internal/repository/specification"
	"zorva-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IInsightService interface {
	SaveInsight(ctx context.Context, req *dto.SaveInsightRequest) (*dto.InsightResponse, error)
	DeleteInsight(ctx context.Context, req *dto.DeleteInsightRequest) error
	ListInsights(ctx context.Context, req *dto.ListInsightsRequest) ([]*dto.InsightResponse, error)
	ListQuickInsights(ctx context.Context, req *dto.ListQuickInsightsRequest) ([]*dto.QuickInsightResponse, error)
	PromoteQuickInsight(ctx context.Context, req *dto.PromoteQuickInsightRequest) (*dto.QuickInsightResponse, error)
	ListSavedResponses(ctx context.Context, req *dto.ListSavedResponsesRequest) ([]*dto.QuickInsightResponse, error)
}

type insightService struct {
	uowFactory     unitofwork.RepositoryFactory
	accountService IAccountService
}

func NewInsightService(uowFactory unitofwork.RepositoryFactory, accountService IAccountService) IInsightService {
	return &insightService{
		uowFactory:     uowFactory,
		accountService: accountService,
	}
}

// SaveInsight appends an insight under the next per-conversation seq id.
// Seq ids are max+1 over all rows ever written, so a deleted id is never
// reissued and gaps are expected.
func (s *insightService) SaveInsight(ctx context.Context, req *dto.SaveInsightRequest) (*dto.InsightResponse, error) {
	conversation, err := s.resolveConversation(ctx, req.ExternalUid, req.ThreadId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	maxSeq, err := uow.InsightRepository().MaxSeqId(ctx, conversation.Id)
	if err != nil {
		return nil, err
	}

	insight := entity.Insight{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		SeqId:          maxSeq + 1,
		Text:           req.Text,
		Data:           req.Data,
		FileReferences: req.FileReferences,
		CreatedAt:      time.Now(),
	}
	if err := uow.InsightRepository().Create(ctx, &insight); err != nil {
		return nil, err
	}

	return s.toResponse(&insight), nil
}

func (s *insightService) DeleteInsight(ctx context.Context, req *dto.DeleteInsightRequest) error {
	conversation, err := s.resolveConversation(ctx, req.ExternalUid, req.ThreadId)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	insight, err := uow.InsightRepository().FindOne(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
		specification.BySeqID{SeqID: req.SeqId},
	)
	if err != nil {
		return err
	}
	if insight == nil {
		return serverutils.NewNotFoundError("insight not found")
	}

	return uow.InsightRepository().Delete(ctx, insight.Id)
}

func (s *insightService) ListInsights(ctx context.Context, req *dto.ListInsightsRequest) ([]*dto.InsightResponse, error) {
	conversation, err := s.resolveConversation(ctx, req.ExternalUid, req.ThreadId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	insights, err := uow.InsightRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
		specification.OrderBy{Field: "seq_id", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.InsightResponse, 0, len(insights))
	for _, insight := range insights {
		responses = append(responses, s.toResponse(insight))
	}
	return responses, nil
}

func (s *insightService) ListQuickInsights(ctx context.Context, req *dto.ListQuickInsightsRequest) ([]*dto.QuickInsightResponse, error) {
	account, err := s.accountService.ResolveAccount(ctx, req.ExternalUid)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	insights, err := uow.QuickInsightRepository().FindAll(ctx,
		specification.ByAccountID{AccountID: account.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.QuickInsightResponse, 0, len(insights))
	for _, q := range insights {
		responses = append(responses, toQuickResponse(q))
	}
	return responses, nil
}

// PromoteQuickInsight pins a quick insight to a conversation by reference.
// Only the join row is written; the insight body stays in quick_insights and
// readers resolve it through the join. Promoting twice is a no-op.
func (s *insightService) PromoteQuickInsight(ctx context.Context, req *dto.PromoteQuickInsightRequest) (*dto.QuickInsightResponse, error) {
	conversation, err := s.resolveConversation(ctx, req.ExternalUid, req.ThreadId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	quick, err := uow.QuickInsightRepository().FindOne(ctx,
		specification.ByID{ID: req.QuickInsightId},
	)
	if err != nil {
		return nil, err
	}
	if quick == nil {
		return nil, serverutils.NewNotFoundError("quick insight not found")
	}

	existing, err := uow.SavedResponseRepository().FindOne(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
		specification.ByQuickInsightID{QuickInsightID: quick.Id},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Printf("[INFO] Quick insight %s already promoted into conversation %s", quick.Id, conversation.Id)
		return toQuickResponse(quick), nil
	}

	saved := entity.SavedResponse{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		QuickInsightId: quick.Id,
		CreatedAt:      time.Now(),
	}
	if err := uow.SavedResponseRepository().Create(ctx, &saved); err != nil {
		return nil, err
	}

	return toQuickResponse(quick), nil
}

// ListSavedResponses resolves a conversation's promoted quick insights
// through the join table, in promotion order. A join row whose quick insight
// has since been removed is skipped.
func (s *insightService) ListSavedResponses(ctx context.Context, req *dto.ListSavedResponsesRequest) ([]*dto.QuickInsightResponse, error) {
	conversation, err := s.resolveConversation(ctx, req.ExternalUid, req.ThreadId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	saved, err := uow.SavedResponseRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.QuickInsightResponse, 0, len(saved))
	for _, row := range saved {
		quick, err := uow.QuickInsightRepository().FindOne(ctx,
			specification.ByID{ID: row.QuickInsightId},
		)
		if err != nil {
			return nil, err
		}
		if quick == nil {
			log.Printf("[WARN] Saved response %s points at a removed quick insight %s", row.Id, row.QuickInsightId)
			continue
		}
		responses = append(responses, toQuickResponse(quick))
	}
	return responses, nil
}

func (s *insightService) resolveConversation(ctx context.Context, externalUid, threadId string) (*entity.Conversation, error) {
	account, err := s.accountService.ResolveAccount(ctx, externalUid)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByThreadID{ThreadID: threadId},
		specification.FilterBy{Field: "account_id", Value: account.Id},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, serverutils.NewNotFoundError("conversation not found")
	}
	return conversation, nil
}

func (s *insightService) toResponse(i *entity.Insight) *dto.InsightResponse {
	return &dto.InsightResponse{
		Id:             i.Id,
		SeqId:          i.SeqId,
		Text:           i.Text,
		Data:           json.RawMessage(i.Data),
		FileReferences: i.FileReferences,
		CreatedAt:      i.CreatedAt,
	}
}

func toQuickResponse(q *entity.QuickInsight) *dto.QuickInsightResponse {
	return &dto.QuickInsightResponse{
		Id:              q.Id,
		Title:           q.Title,
		Text:            q.Text,
		SourceDocuments: q.SourceDocuments,
		CreatedAt:       q.CreatedAt,
	}
}
