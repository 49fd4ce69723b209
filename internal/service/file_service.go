package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"time"

	"zorva-be/internal/dto"
	"zorva-be/internal/entity"
	"zorva-be/internal/pkg/serverutils"
	"zorva-be/internal/repository/specification"
	"zorva-be/internal/repository/unitofwork"
	"zorva-be/pkg/blobstore"
	"zorva-be/pkg/convert"
	"zorva-be/pkg/corpus"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type UploadInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

type IFileService interface {
	UploadFiles(ctx context.Context, externalUid string, files []*UploadInput) (*dto.UploadFilesResponse, error)
	ListFiles(ctx context.Context, req *dto.ListFilesRequest) (*dto.ListFilesResponse, error)
	GetFilesById(ctx context.Context, req *dto.GetFilesByIdRequest) (*dto.GetFilesByIdResponse, error)
	DeleteFile(ctx context.Context, req *dto.DeleteFileRequest) error
}

type fileService struct {
	uowFactory       unitofwork.RepositoryFactory
	accountService   IAccountService
	corpus           *corpus.Adapter
	blobs            blobstore.Store
	signer           *blobstore.CachedSigner
	publisherService IPublisherService
}

func NewFileService(
	uowFactory unitofwork.RepositoryFactory,
	accountService IAccountService,
	corpusAdapter *corpus.Adapter,
	blobs blobstore.Store,
	signer *blobstore.CachedSigner,
	publisherService IPublisherService,
) IFileService {
	return &fileService{
		uowFactory:       uowFactory,
		accountService:   accountService,
		corpus:           corpusAdapter,
		blobs:            blobs,
		signer:           signer,
		publisherService: publisherService,
	}
}

// ReadMultipartFile pulls the bytes out of a multipart part once, so the
// service layer never touches the request object.
func ReadMultipartFile(fh *multipart.FileHeader) (*UploadInput, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &UploadInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// UploadFiles runs the ingest pipeline per file: convert, index, persist
// blobs and rows. Files fan out concurrently under a join barrier; one
// failing file aborts the barrier, but files already fully committed are
// not rolled back.
func (s *fileService) UploadFiles(ctx context.Context, externalUid string, files []*UploadInput) (*dto.UploadFilesResponse, error) {
	if len(files) == 0 {
		return nil, serverutils.NewValidationError("no files supplied")
	}

	account, err := s.accountService.ResolveAccount(ctx, externalUid)
	if err != nil {
		return nil, err
	}

	results := make([][]*dto.FileSummaryResponse, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			summaries, err := s.ingestFile(gctx, account, file)
			if err != nil {
				return err
			}
			results[i] = summaries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*dto.FileSummaryResponse
	for _, summaries := range results {
		all = append(all, summaries...)
	}

	return &dto.UploadFilesResponse{
		Message: fmt.Sprintf("indexed %d document(s)", len(all)),
		Files:   all,
	}, nil
}

func (s *fileService) ingestFile(ctx context.Context, account *entity.Account, file *UploadInput) ([]*dto.FileSummaryResponse, error) {
	// 1. Convert to per-sheet intermediate documents.
	sheets, err := convert.Convert(file.Filename, file.ContentType, file.Data)
	if err != nil {
		return nil, serverutils.NewValidationError(err.Error())
	}

	uploadedAt := time.Now()
	docs := make([]corpus.Document, 0, len(sheets))
	payloads := make([][]byte, 0, len(sheets))
	for _, sheet := range sheets {
		intermediate := convert.NewIntermediateDocument(file.Filename, sheet.Name, sheet.Records, uploadedAt)
		payload, err := intermediate.Marshal()
		if err != nil {
			return nil, err
		}
		docs = append(docs, corpus.Document{
			Filename: fmt.Sprintf("%s_%s.json", sheet.Name, uploadedAt.Format("20060102150405")),
			Data:     payload,
		})
		payloads = append(payloads, payload)
	}

	// 2. Index all derived documents, all-or-nothing for this file.
	documentIds, err := s.corpus.AddDocuments(ctx, account.CorpusId, docs)
	if err != nil {
		return nil, serverutils.NewUpstreamError("indexing failed", err)
	}

	// 3. Store the indexed unit itself (the intermediate JSON) as the blob.
	for i, documentId := range documentIds {
		if err := s.blobs.Put(ctx, blobstore.DocumentKey(documentId), payloads[i], "application/json"); err != nil {
			return nil, serverutils.NewPartialStateError(
				fmt.Sprintf("document %s indexed but blob write failed", documentId), err)
		}
	}

	// 4. One row per issued id; siblings share the full id list.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	summaries := make([]*dto.FileSummaryResponse, 0, len(documentIds))
	for i, documentId := range documentIds {
		sheetName := sheets[i].Name
		document := entity.Document{
			Id:               uuid.New(),
			DocumentId:       documentId,
			AccountId:        account.Id,
			DisplayName:      file.Filename,
			SheetName:        &sheetName,
			SheetDocumentIds: documentIds,
			ContentType:      "application/json",
			SizeBytes:        int64(len(payloads[i])),
			RecordCount:      len(sheets[i].Records),
			CreatedAt:        uploadedAt,
		}
		if err := uow.DocumentRepository().Create(ctx, &document); err != nil {
			return nil, serverutils.NewPartialStateError(
				fmt.Sprintf("document %s indexed but record write failed", documentId), err)
		}
		summaries = append(summaries, &dto.FileSummaryResponse{
			Id:        documentId,
			Filename:  file.Filename,
			SizeBytes: document.SizeBytes,
			CreatedAt: uploadedAt,
		})
	}

	s.publishFileEvent(ctx, dto.FileEventIngested, account.Id, documentIds)
	log.Printf("[INFO] Ingested %s as %d document(s) for account %s", file.Filename, len(documentIds), account.Id)
	return summaries, nil
}

// ListFiles reconciles the local records against live corpus membership:
// only documents the index still knows about are returned.
func (s *fileService) ListFiles(ctx context.Context, req *dto.ListFilesRequest) (*dto.ListFilesResponse, error) {
	account, err := s.accountService.ResolveAccount(ctx, req.ExternalUid)
	if err != nil {
		return nil, err
	}

	memberIds, err := s.corpus.ListDocuments(ctx, account.CorpusId)
	if err != nil {
		return nil, serverutils.NewUpstreamError("failed to list corpus documents", err)
	}
	members := make(map[string]bool, len(memberIds))
	for _, id := range memberIds {
		members[id] = true
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.ByAccountID{AccountID: account.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	files := make([]*dto.FileSummaryResponse, 0, len(documents))
	for _, doc := range documents {
		if !members[doc.DocumentId] {
			log.Printf("[WARN] Document %s missing from corpus, hiding from listing", doc.DocumentId)
			continue
		}
		files = append(files, &dto.FileSummaryResponse{
			Id:        doc.DocumentId,
			Filename:  doc.DisplayName,
			SizeBytes: doc.SizeBytes,
			CreatedAt: doc.CreatedAt,
		})
	}

	return &dto.ListFilesResponse{Files: files}, nil
}

func (s *fileService) GetFilesById(ctx context.Context, req *dto.GetFilesByIdRequest) (*dto.GetFilesByIdResponse, error) {
	account, err := s.accountService.ResolveAccount(ctx, req.ExternalUid)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	files := make([]*dto.FileDetailResponse, 0, len(req.FileIds))
	for _, fileId := range req.FileIds {
		doc, err := uow.DocumentRepository().FindOne(ctx,
			specification.ByDocumentID{DocumentID: fileId},
			specification.ByAccountID{AccountID: account.Id},
		)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, serverutils.NewNotFoundError(fmt.Sprintf("file %s not found", fileId))
		}

		url, err := s.signer.SignedURL(ctx, blobstore.DocumentKey(fileId))
		if err != nil {
			return nil, serverutils.NewUpstreamError("failed to sign url", err)
		}

		files = append(files, &dto.FileDetailResponse{
			Id:            doc.DocumentId,
			Filename:      doc.DisplayName,
			ContentType:   doc.ContentType,
			ContentLength: doc.SizeBytes,
			Url:           url,
		})
	}

	return &dto.GetFilesByIdResponse{Files: files}, nil
}

// DeleteFile removes the index entry, the blob and the local record in that
// order. The removals are independently fallible: a failure after the first
// committed step surfaces as a partial-state error instead of silently
// succeeding, and the published event lets the reconciler repair the rest.
func (s *fileService) DeleteFile(ctx context.Context, req *dto.DeleteFileRequest) error {
	account, err := s.accountService.ResolveAccount(ctx, req.ExternalUid)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByDocumentID{DocumentID: req.FileId},
		specification.ByAccountID{AccountID: account.Id},
	)
	if err != nil {
		return err
	}
	if doc == nil {
		return serverutils.NewNotFoundError("file not found")
	}

	if err := s.corpus.RemoveDocument(ctx, account.CorpusId, req.FileId); err != nil {
		return serverutils.NewUpstreamError("failed to remove document from corpus", err)
	}

	if err := s.blobs.Delete(ctx, blobstore.DocumentKey(req.FileId)); err != nil {
		s.publishFileEvent(ctx, dto.FileEventDeleted, account.Id, []string{req.FileId})
		return serverutils.NewPartialStateError("index entry removed but blob delete failed", err)
	}

	if err := uow.DocumentRepository().DeleteByDocumentId(ctx, req.FileId); err != nil {
		s.publishFileEvent(ctx, dto.FileEventDeleted, account.Id, []string{req.FileId})
		return serverutils.NewPartialStateError("document removed but record delete failed", err)
	}

	s.publishFileEvent(ctx, dto.FileEventDeleted, account.Id, []string{req.FileId})
	log.Printf("[INFO] Deleted document %s for account %s", req.FileId, account.Id)
	return nil
}

func (s *fileService) publishFileEvent(ctx context.Context, eventType string, accountId uuid.UUID, documentIds []string) {
	payload, err := json.Marshal(dto.FileEventMessage{
		Type:        eventType,
		AccountId:   accountId,
		DocumentIds: documentIds,
	})
	if err != nil {
		log.Printf("[ERROR] Failed to marshal file event: %v", err)
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		log.Printf("[ERROR] Failed to publish file event: %v", err)
	}
}
