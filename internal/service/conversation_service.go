package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"zorva-be/internal/constant"
	"zorva-be/internal/dto"
	"zorva-be/internal/entity"
	"zorva-be/internal/pkg/serverutils"
	"zorva-be/internal/repository/specification"
	"zorva-be/internal/repository/unitofwork"
	"zorva-be/pkg/assistant"
)

type IConversationService interface {
	ListConversations(ctx context.Context, req *dto.ListConversationsRequest) ([]*dto.ConversationResponse, error)
	DeleteConversation(ctx context.Context, req *dto.DeleteConversationRequest) error
	SaveTitle(ctx context.Context, req *dto.SaveTitleRequest) (*dto.TitleResponse, error)
	GenerateTitle(ctx context.Context, req *dto.GenerateTitleRequest) (*dto.TitleResponse, error)
}

type conversationService struct {
	uowFactory     unitofwork.RepositoryFactory
	accountService IAccountService
	assistant      assistant.Generator
}

func NewConversationService(
	uowFactory unitofwork.RepositoryFactory,
	accountService IAccountService,
	assistantClient assistant.Generator,
) IConversationService {
	return &conversationService{
		uowFactory:     uowFactory,
		accountService: accountService,
		assistant:      assistantClient,
	}
}

func (s *conversationService) ListConversations(ctx context.Context, req *dto.ListConversationsRequest) ([]*dto.ConversationResponse, error) {
	account, err := s.accountService.ResolveAccount(ctx, req.ExternalUid)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.FilterBy{Field: "account_id", Value: account.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ConversationResponse, 0, len(conversations))
	for _, c := range conversations {
		responses = append(responses, &dto.ConversationResponse{
			Id:        c.Id,
			ThreadId:  c.ThreadId,
			Title:     c.Title,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return responses, nil
}

// DeleteConversation closes the conversation: the local record is removed
// and the generation backend is asked to discard the underlying thread.
// A backend refusal is logged, not surfaced; the record removal wins.
func (s *conversationService) DeleteConversation(ctx context.Context, req *dto.DeleteConversationRequest) error {
	conversation, err := s.resolveConversation(ctx, req.ExternalUid, req.ThreadId)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ConversationRepository().Delete(ctx, conversation.Id); err != nil {
		return err
	}

	if err := s.assistant.DeleteThread(ctx, conversation.ThreadId); err != nil {
		log.Printf("[WARN] Failed to discard thread %s: %v", conversation.ThreadId, err)
	}
	return nil
}

func (s *conversationService) SaveTitle(ctx context.Context, req *dto.SaveTitleRequest) (*dto.TitleResponse, error) {
	conversation, err := s.resolveConversation(ctx, req.ExternalUid, req.ThreadId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversation.Title = req.Title
	now := time.Now()
	conversation.UpdatedAt = &now
	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		return nil, err
	}

	return &dto.TitleResponse{ThreadId: conversation.ThreadId, Title: conversation.Title}, nil
}

// GenerateTitle derives a short title from the conversation opener via the
// plain completion endpoint and persists it.
func (s *conversationService) GenerateTitle(ctx context.Context, req *dto.GenerateTitleRequest) (*dto.TitleResponse, error) {
	conversation, err := s.resolveConversation(ctx, req.ExternalUid, req.ThreadId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	turns, err := uow.TurnRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
		specification.Pagination{Limit: 2, Offset: 0},
	)
	if err != nil {
		return nil, err
	}
	if len(turns) == 0 {
		return nil, serverutils.NewValidationError("conversation has no messages yet")
	}

	var opener strings.Builder
	for _, turn := range turns {
		opener.WriteString(turn.Role)
		opener.WriteString(": ")
		opener.WriteString(turn.DisplayText)
		opener.WriteString("\n")
	}

	title, err := s.assistant.Complete(ctx, fmt.Sprintf(constant.TitlePrompt, opener.String()))
	if err != nil {
		return nil, serverutils.NewUpstreamError("title generation failed", err)
	}
	title = strings.TrimSpace(strings.Trim(strings.TrimSpace(title), `"`))

	conversation.Title = title
	now := time.Now()
	conversation.UpdatedAt = &now
	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		return nil, err
	}

	return &dto.TitleResponse{ThreadId: conversation.ThreadId, Title: title}, nil
}

func (s *conversationService) resolveConversation(ctx context.Context, externalUid, threadId string) (*entity.Conversation, error) {
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
