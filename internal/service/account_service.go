package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"zorva-be/internal/constant"
	"zorva-be/internal/dto"
	"zorva-be/internal/entity"
	"zorva-be/internal/pkg/serverutils"
	"zorva-be/internal/repository/specification"
	"zorva-be/internal/repository/unitofwork"
	"zorva-be/pkg/assistant"

	"github.com/google/uuid"
)

type IAccountService interface {
	AddAccount(ctx context.Context, req *dto.AddAccountRequest) (*dto.AccountResponse, error)
	GetAccount(ctx context.Context, externalUid string) (*dto.AccountResponse, error)
	// ResolveAccount is the internal lookup used by the other services.
	ResolveAccount(ctx context.Context, externalUid string) (*entity.Account, error)
}

type accountService struct {
	uowFactory unitofwork.RepositoryFactory
	assistant  *assistant.Client
}

func NewAccountService(uowFactory unitofwork.RepositoryFactory, assistantClient *assistant.Client) IAccountService {
	return &accountService{
		uowFactory: uowFactory,
		assistant:  assistantClient,
	}
}

// AddAccount provisions the per-account index binding: one corpus plus a
// retrieval handle and an analysis handle bound to it. The binding is
// created once; a repeated call for the same external uid returns the
// existing record without touching the upstream service.
func (s *accountService) AddAccount(ctx context.Context, req *dto.AddAccountRequest) (*dto.AccountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.AccountRepository().FindOne(ctx, specification.ByExternalUid{ExternalUid: req.ExternalUid})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Printf("[INFO] Account already provisioned for uid %s", req.ExternalUid)
		return s.toResponse(existing), nil
	}

	// 1. Create the corpus first; both handles bind to it.
	corpusId, err := s.assistant.CreateVectorStore(ctx, fmt.Sprintf("corpus-%s", req.ExternalUid))
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to create corpus", err)
	}

	// 2. Retrieval handle serves chat and search.
	retrievalHandle, err := s.assistant.CreateAssistant(ctx,
		fmt.Sprintf("retrieval-%s", req.ExternalUid),
		constant.AssistantInstructions,
		"file_search",
		corpusId,
	)
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to create retrieval handle", err)
	}

	// 3. Analysis handle serves the batch insight mode.
	analysisHandle, err := s.assistant.CreateAssistant(ctx,
		fmt.Sprintf("analysis-%s", req.ExternalUid),
		constant.AssistantInstructions,
		"file_search",
		corpusId,
	)
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to create analysis handle", err)
	}

	account := entity.Account{
		Id:              uuid.New(),
		ExternalUid:     req.ExternalUid,
		Email:           req.Email,
		RetrievalHandle: retrievalHandle,
		AnalysisHandle:  analysisHandle,
		CorpusId:        corpusId,
		CreatedAt:       time.Now(),
	}
	if err := uow.AccountRepository().Create(ctx, &account); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Provisioned account %s (corpus %s)", account.Id, corpusId)
	return s.toResponse(&account), nil
}

func (s *accountService) GetAccount(ctx context.Context, externalUid string) (*dto.AccountResponse, error) {
	account, err := s.ResolveAccount(ctx, externalUid)
	if err != nil {
		return nil, err
	}
	return s.toResponse(account), nil
}

func (s *accountService) ResolveAccount(ctx context.Context, externalUid string) (*entity.Account, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	account, err := uow.AccountRepository().FindOne(ctx, specification.ByExternalUid{ExternalUid: externalUid})
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, serverutils.NewNotFoundError("account not found")
	}
	return account, nil
}

func (s *accountService) toResponse(a *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		Id:          a.Id,
		ExternalUid: a.ExternalUid,
		Email:       a.Email,
		CreatedAt:   a.CreatedAt,
	}
}
