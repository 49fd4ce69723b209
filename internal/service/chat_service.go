package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"zorva-be/internal/constant"
	"zorva-be/internal/dto"
	"zorva-be/internal/entity"
	"zorva-be/internal/pkg/serverutils"
	"zorva-be/internal/repository/specification"
	"zorva-be/internal/repository/unitofwork"
	"zorva-be/pkg/answer"
	"zorva-be/pkg/assistant"

	"github.com/google/uuid"
)

type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error)
	ListMessages(ctx context.Context, req *dto.ListMessagesRequest) (*dto.ListMessagesResponse, error)
	GenerateQuickInsights(ctx context.Context, req *dto.GenerateQuickInsightsRequest) ([]*dto.QuickInsightResponse, error)
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	accountService IAccountService
	assistant      assistant.Generator
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	accountService IAccountService,
	assistantClient assistant.Generator,
) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		accountService: accountService,
		assistant:      assistantClient,
	}
}

// Chat runs one query turn against the account's retrieval handle.
// The user turn is persisted before generation so a failed run still
// leaves a record of what was asked; readers of the transcript must
// tolerate a trailing unanswered user turn.
func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	account, err := s.accountService.ResolveAccount(ctx, req.ExternalUid)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Resolve or start the conversation.
	var conversation *entity.Conversation
	started := false
	if req.ThreadId != "" {
		conversation, err = uow.ConversationRepository().FindOne(ctx,
			specification.ByThreadID{ThreadID: req.ThreadId},
			specification.FilterBy{Field: "account_id", Value: account.Id},
		)
		if err != nil {
			return nil, err
		}
		if conversation == nil {
			return nil, serverutils.NewNotFoundError("conversation not found")
		}
	} else {
		threadId, err := s.assistant.CreateThread(ctx)
		if err != nil {
			return nil, serverutils.NewUpstreamError("failed to create thread", err)
		}
		conversation = &entity.Conversation{
			Id:        uuid.New(),
			ThreadId:  threadId,
			AccountId: account.Id,
			Title:     "New conversation",
			CreatedAt: time.Now(),
		}
		started = true
	}

	// 2. Compose the full prompt. What the model sees differs from what
	// the end user typed.
	fullPrompt := composePrompt(req.Query, req.Filenames)

	// 3. Persist the conversation (when new) and the user turn in one
	// transaction, before invoking generation. A turn insert failure must
	// not leave an empty conversation behind.
	userTurn := entity.Turn{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           entity.TurnRoleUser,
		DisplayText:    req.Query,
		FullPromptText: &fullPrompt,
		CreatedAt:      time.Now(),
	}
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	if started {
		if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
			uow.Rollback()
			return nil, err
		}
	}
	if err := uow.TurnRepository().Create(ctx, &userTurn); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// 4. Stream the run and block until the answer is fully assembled.
	if err := s.assistant.AddMessage(ctx, conversation.ThreadId, fullPrompt); err != nil {
		return nil, serverutils.NewUpstreamError("failed to append message", err)
	}
	run, err := s.assistant.StreamRun(ctx, conversation.ThreadId, account.RetrievalHandle)
	if err != nil {
		return nil, serverutils.NewUpstreamError("generation failed", err)
	}

	// 5. Post-process: follow-up extraction, then sanitation.
	parsed := answer.Parse(run.Text)
	visible := answer.Sanitize(parsed.Content)

	// 6. Caller-supplied file ids win over model citations, verbatim.
	citedFileIds := run.CitedFileIds
	if len(req.FileIds) > 0 {
		citedFileIds = req.FileIds
	}

	// 7. Persist the assistant turn with its citations.
	assistantTurn := entity.Turn{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           entity.TurnRoleAssistant,
		DisplayText:    visible,
		CreatedAt:      time.Now(),
	}
	if err := uow.TurnRepository().Create(ctx, &assistantTurn); err != nil {
		return nil, err
	}
	for _, fileId := range citedFileIds {
		citation := entity.TurnCitation{
			Id:         uuid.New(),
			TurnId:     assistantTurn.Id,
			DocumentId: fileId,
			CreatedAt:  time.Now(),
		}
		if err := uow.TurnCitationRepository().Create(ctx, &citation); err != nil {
			return nil, err
		}
	}

	followUps := make([]dto.FollowUpQuestionDTO, 0, len(parsed.FollowUpQuestions))
	for _, q := range parsed.FollowUpQuestions {
		followUps = append(followUps, dto.FollowUpQuestionDTO{Question: q.Question})
	}

	return &dto.ChatResponse{
		Answer:            visible,
		ThreadId:          conversation.ThreadId,
		FollowUpQuestions: followUps,
		CitedFileIds:      citedFileIds,
	}, nil
}

// Search is a retrieval-only probe: an ephemeral thread is created, run once
// and discarded, and only the citation set is kept.
func (s *chatService) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	account, err := s.accountService.ResolveAccount(ctx, req.ExternalUid)
	if err != nil {
		return nil, err
	}

	threadId, err := s.assistant.CreateThread(ctx)
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to create thread", err)
	}
	defer func() {
		if err := s.assistant.DeleteThread(ctx, threadId); err != nil {
			log.Printf("[WARN] Failed to discard search thread %s: %v", threadId, err)
		}
	}()

	if err := s.assistant.AddMessage(ctx, threadId, req.Query); err != nil {
		return nil, serverutils.NewUpstreamError("failed to append message", err)
	}
	run, err := s.assistant.StreamRun(ctx, threadId, account.RetrievalHandle)
	if err != nil {
		return nil, serverutils.NewUpstreamError("search generation failed", err)
	}

	return &dto.SearchResponse{CitedFileIds: run.CitedFileIds}, nil
}

// ListMessages reconstructs the transcript in creation order, resolving
// per-turn citations to display names where the documents still exist.
func (s *chatService) ListMessages(ctx context.Context, req *dto.ListMessagesRequest) (*dto.ListMessagesResponse, error) {
	account, err := s.accountService.ResolveAccount(ctx, req.ExternalUid)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByThreadID{ThreadID: req.ThreadId},
		specification.FilterBy{Field: "account_id", Value: account.Id},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, serverutils.NewNotFoundError("conversation not found")
	}

	turns, err := uow.TurnRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	messages := make([]*dto.MessageResponse, 0, len(turns))
	for _, turn := range turns {
		msg := &dto.MessageResponse{
			Id:        turn.Id,
			Role:      turn.Role,
			Text:      turn.DisplayText,
			CreatedAt: turn.CreatedAt,
		}
		if turn.Role == entity.TurnRoleAssistant {
			citations, err := uow.TurnCitationRepository().FindAll(ctx,
				specification.ByTurnID{TurnID: turn.Id},
			)
			if err != nil {
				return nil, err
			}
			for _, citation := range citations {
				msg.CitedFileIds = append(msg.CitedFileIds, citation.DocumentId)
				doc, err := uow.DocumentRepository().FindOne(ctx,
					specification.ByDocumentID{DocumentID: citation.DocumentId},
				)
				if err != nil {
					return nil, err
				}
				if doc != nil {
					msg.CitedFiles = append(msg.CitedFiles, doc.DisplayName)
				}
			}
		}
		messages = append(messages, msg)
	}

	return &dto.ListMessagesResponse{
		ThreadId: conversation.ThreadId,
		Messages: messages,
	}, nil
}

// GenerateQuickInsights asks the analysis handle, in one call, for a batch
// of structured insights over the named documents. The dedicated insight
// thread is created once per account and reused afterwards.
func (s *chatService) GenerateQuickInsights(ctx context.Context, req *dto.GenerateQuickInsightsRequest) ([]*dto.QuickInsightResponse, error) {
	account, err := s.accountService.ResolveAccount(ctx, req.ExternalUid)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Resolve the target document names.
	var specs []specification.Specification
	specs = append(specs, specification.ByAccountID{AccountID: account.Id})
	if len(req.FileIds) > 0 {
		specs = append(specs, specification.ByDocumentIDs{DocumentIDs: req.FileIds})
	}
	documents, err := uow.DocumentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(documents) == 0 {
		return nil, serverutils.NewNotFoundError("no documents to analyze")
	}

	names := make([]string, 0, len(documents))
	for _, doc := range documents {
		names = append(names, doc.DisplayName)
	}

	// Lazily provision the per-account insight thread.
	threadId, err := s.quickInsightThread(ctx, uow, account)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(constant.QuickInsightPrompt, strings.Join(names, ", "))
	if err := s.assistant.AddMessage(ctx, threadId, prompt); err != nil {
		return nil, serverutils.NewUpstreamError("failed to append message", err)
	}
	run, err := s.assistant.StreamRun(ctx, threadId, account.AnalysisHandle)
	if err != nil {
		return nil, serverutils.NewUpstreamError("insight generation failed", err)
	}

	items, err := answer.ExtractQuickInsights(run.Text)
	if err != nil {
		return nil, serverutils.NewUpstreamError("insight output unparsable", err)
	}

	responses := make([]*dto.QuickInsightResponse, 0, len(items))
	for _, item := range items {
		insight := entity.QuickInsight{
			Id:              uuid.New(),
			AccountId:       account.Id,
			Title:           item.Title,
			Text:            item.Description,
			SourceDocuments: names,
			CreatedAt:       time.Now(),
		}
		if err := uow.QuickInsightRepository().Create(ctx, &insight); err != nil {
			return nil, err
		}
		responses = append(responses, &dto.QuickInsightResponse{
			Id:              insight.Id,
			Title:           insight.Title,
			Text:            insight.Text,
			SourceDocuments: insight.SourceDocuments,
			CreatedAt:       insight.CreatedAt,
		})
	}

	log.Printf("[INFO] Generated %d quick insights for account %s", len(responses), account.Id)
	return responses, nil
}

func (s *chatService) quickInsightThread(ctx context.Context, uow unitofwork.UnitOfWork, account *entity.Account) (string, error) {
	if account.QuickInsightThreadId != nil && *account.QuickInsightThreadId != "" {
		return *account.QuickInsightThreadId, nil
	}

	threadId, err := s.assistant.CreateThread(ctx)
	if err != nil {
		return "", serverutils.NewUpstreamError("failed to create insight thread", err)
	}
	account.QuickInsightThreadId = &threadId
	if err := uow.AccountRepository().Update(ctx, account); err != nil {
		return "", err
	}
	return threadId, nil
}

// composePrompt prepends a normalized file-name list when one is supplied
// and always appends the follow-up instruction suffix.
func composePrompt(query string, filenames []string) string {
	if len(filenames) == 0 {
		return query + constant.FollowUpSuffix
	}

	normalized := make([]string, 0, len(filenames))
	for _, name := range filenames {
		normalized = append(normalized, strings.TrimSuffix(name, filepath.Ext(name)))
	}
	prefix := fmt.Sprintf(constant.FilenamesContextPrefix, strings.Join(normalized, ", "))
	return prefix + query + constant.FollowUpSuffix
}
