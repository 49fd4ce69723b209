package service

import (
	"context"
	"encoding/json"
	"log"

	"zorva-be/internal/dto"
	"zorva-be/internal/repository/specification"
	"zorva-be/internal/repository/unitofwork"
	"zorva-be/pkg/blobstore"
	"zorva-be/pkg/corpus"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IReconcilerService repairs drift between the three stores a document
// lives in: the corpus index, blob storage and the local records. A failed
// multi-step delete or ingest can commit some steps and not others; the
// sweep detects the mismatch and removes the leftovers.
type IReconcilerService interface {
	Consume(ctx context.Context) error
	Sweep(ctx context.Context, accountId uuid.UUID) error
}

type reconcilerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	corpus     *corpus.Adapter
	blobs      blobstore.Store
}

func NewReconcilerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	corpusAdapter *corpus.Adapter,
	blobs blobstore.Store,
) IReconcilerService {
	return &reconcilerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		corpus:     corpusAdapter,
		blobs:      blobs,
	}
}

func (rs *reconcilerService) Consume(ctx context.Context) error {
	messages, err := rs.pubSub.Subscribe(ctx, rs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			rs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (rs *reconcilerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.FileEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal file event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Sweeping account %s after %s event", payload.AccountId, payload.Type)
	if err := rs.Sweep(ctx, payload.AccountId); err != nil {
		log.Printf("[ERROR] Sweep failed for account %s: %v", payload.AccountId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	msg.Ack()
}

// Sweep compares corpus membership, blob keys and local records for one
// account and removes whatever only part of the trio knows about.
func (rs *reconcilerService) Sweep(ctx context.Context, accountId uuid.UUID) error {
	uow := rs.uowFactory.NewUnitOfWork(ctx)

	account, err := uow.AccountRepository().FindOne(ctx, specification.ByID{ID: accountId})
	if err != nil {
		return err
	}
	if account == nil {
		log.Printf("[WARN] Sweep skipped, account %s not found", accountId)
		return nil
	}

	memberIds, err := rs.corpus.ListDocuments(ctx, account.CorpusId)
	if err != nil {
		return err
	}
	members := make(map[string]bool, len(memberIds))
	for _, id := range memberIds {
		members[id] = true
	}

	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.ByAccountID{AccountID: account.Id},
	)
	if err != nil {
		return err
	}
	recorded := make(map[string]bool, len(documents))
	for _, doc := range documents {
		recorded[doc.DocumentId] = true
	}

	// 1. Records the index no longer knows about: drop the row and its blob.
	for _, doc := range documents {
		if members[doc.DocumentId] {
			continue
		}
		log.Printf("[WARN] Document %s recorded but absent from corpus, removing leftovers", doc.DocumentId)
		if exists, err := rs.blobs.Exists(ctx, blobstore.DocumentKey(doc.DocumentId)); err == nil && exists {
			if err := rs.blobs.Delete(ctx, blobstore.DocumentKey(doc.DocumentId)); err != nil {
				log.Printf("[ERROR] Failed to delete orphaned blob %s: %v", doc.DocumentId, err)
				continue
			}
		}
		if err := uow.DocumentRepository().DeleteByDocumentId(ctx, doc.DocumentId); err != nil {
			log.Printf("[ERROR] Failed to delete orphaned record %s: %v", doc.DocumentId, err)
		}
	}

	// 2. Index members with no record: detach them, they are unreachable.
	for _, memberId := range memberIds {
		if recorded[memberId] {
			continue
		}
		log.Printf("[WARN] Corpus member %s has no record, detaching", memberId)
		if err := rs.corpus.RemoveDocument(ctx, account.CorpusId, memberId); err != nil {
			log.Printf("[ERROR] Failed to detach unrecorded member %s: %v", memberId, err)
		}
	}

	// 3. Records whose blob vanished: restore is impossible, drop the pair.
	for _, doc := range documents {
		if !members[doc.DocumentId] {
			continue // already handled above
		}
		exists, err := rs.blobs.Exists(ctx, blobstore.DocumentKey(doc.DocumentId))
		if err != nil {
			log.Printf("[ERROR] Blob check failed for %s: %v", doc.DocumentId, err)
			continue
		}
		if exists {
			continue
		}
		log.Printf("[WARN] Document %s has no blob, removing from corpus and records", doc.DocumentId)
		if err := rs.corpus.RemoveDocument(ctx, account.CorpusId, doc.DocumentId); err != nil {
			log.Printf("[ERROR] Failed to detach blobless document %s: %v", doc.DocumentId, err)
			continue
		}
		if err := uow.DocumentRepository().DeleteByDocumentId(ctx, doc.DocumentId); err != nil {
			log.Printf("[ERROR] Failed to delete blobless record %s: %v", doc.DocumentId, err)
		}
	}

	return nil
}
