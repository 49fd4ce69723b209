package service

import (
	"context"
	"testing"
	"time"

	"zorva-be/internal/dto"
	"zorva-be/internal/entity"

	"github.com/google/uuid"
)

func newInsightFixture() (*fakeUnitOfWork, *entity.Conversation, IInsightService) {
	uow := newFakeUnitOfWork()
	account := &entity.Account{
		Id:          uuid.New(),
		ExternalUid: "uid-1",
		CorpusId:    "vs-1",
	}
	conversation := &entity.Conversation{
		Id:        uuid.New(),
		ThreadId:  "thread-1",
		AccountId: account.Id,
		CreatedAt: time.Now(),
	}
	uow.conversations.findOne = conversation
	svc := NewInsightService(&fakeFactory{uow: uow}, &fakeAccountService{account: account})
	return uow, conversation, svc
}

// Promotion writes the join row only. The quick insight body stays in its
// own table and no conversation insight row is created.
func TestPromoteQuickInsightWritesReferenceOnly(t *testing.T) {
	uow, conversation, svc := newInsightFixture()
	quick := &entity.QuickInsight{
		Id:        uuid.New(),
		Title:     "Growth",
		Text:      "Revenue grew.",
		CreatedAt: time.Now(),
	}
	uow.quickInsights.rows = append(uow.quickInsights.rows, quick)

	resp, err := svc.PromoteQuickInsight(context.Background(), &dto.PromoteQuickInsightRequest{
		ExternalUid:    "uid-1",
		ThreadId:       "thread-1",
		QuickInsightId: quick.Id,
	})
	if err != nil {
		t.Fatalf("PromoteQuickInsight failed: %v", err)
	}
	if resp.Text != quick.Text {
		t.Errorf("response text = %q, want %q", resp.Text, quick.Text)
	}

	if len(uow.savedResponses.rows) != 1 {
		t.Fatalf("join rows = %d, want 1", len(uow.savedResponses.rows))
	}
	saved := uow.savedResponses.rows[0]
	if saved.ConversationId != conversation.Id || saved.QuickInsightId != quick.Id {
		t.Errorf("join row = %+v", saved)
	}
	if len(uow.insights.rows) != 0 {
		t.Errorf("insight rows = %d, promotion must not copy the body", len(uow.insights.rows))
	}
}

func TestPromoteQuickInsightIsIdempotent(t *testing.T) {
	uow, _, svc := newInsightFixture()
	quick := &entity.QuickInsight{Id: uuid.New(), Title: "Churn", Text: "Churn fell."}
	uow.quickInsights.rows = append(uow.quickInsights.rows, quick)

	req := &dto.PromoteQuickInsightRequest{
		ExternalUid:    "uid-1",
		ThreadId:       "thread-1",
		QuickInsightId: quick.Id,
	}
	if _, err := svc.PromoteQuickInsight(context.Background(), req); err != nil {
		t.Fatalf("first promotion failed: %v", err)
	}
	resp, err := svc.PromoteQuickInsight(context.Background(), req)
	if err != nil {
		t.Fatalf("second promotion failed: %v", err)
	}
	if resp.Text != quick.Text {
		t.Errorf("response text = %q, want %q", resp.Text, quick.Text)
	}

	if len(uow.savedResponses.rows) != 1 {
		t.Errorf("join rows = %d, repeated promotion must not add rows", len(uow.savedResponses.rows))
	}
	if len(uow.insights.rows) != 0 {
		t.Errorf("insight rows = %d, want 0", len(uow.insights.rows))
	}
}

func TestPromoteQuickInsightUnknownId(t *testing.T) {
	_, _, svc := newInsightFixture()

	_, err := svc.PromoteQuickInsight(context.Background(), &dto.PromoteQuickInsightRequest{
		ExternalUid:    "uid-1",
		ThreadId:       "thread-1",
		QuickInsightId: uuid.New(),
	})
	if err == nil {
		t.Fatal("expected an error for an unknown quick insight id")
	}
}

// The saved-responses list resolves bodies through the join in promotion
// order; a join row whose quick insight vanished is skipped.
func TestListSavedResponsesResolvesThroughJoin(t *testing.T) {
	uow, conversation, svc := newInsightFixture()
	first := &entity.QuickInsight{Id: uuid.New(), Title: "Growth", Text: "Revenue grew."}
	second := &entity.QuickInsight{Id: uuid.New(), Title: "Churn", Text: "Churn fell."}
	uow.quickInsights.rows = append(uow.quickInsights.rows, first, second)

	for _, quick := range []*entity.QuickInsight{first, second} {
		if _, err := svc.PromoteQuickInsight(context.Background(), &dto.PromoteQuickInsightRequest{
			ExternalUid:    "uid-1",
			ThreadId:       "thread-1",
			QuickInsightId: quick.Id,
		}); err != nil {
			t.Fatalf("promotion failed: %v", err)
		}
	}
	// Join row pointing at a quick insight that no longer exists.
	uow.savedResponses.rows = append(uow.savedResponses.rows, &entity.SavedResponse{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		QuickInsightId: uuid.New(),
		CreatedAt:      time.Now(),
	})

	resp, err := svc.ListSavedResponses(context.Background(), &dto.ListSavedResponsesRequest{
		ExternalUid: "uid-1",
		ThreadId:    "thread-1",
	})
	if err != nil {
		t.Fatalf("ListSavedResponses failed: %v", err)
	}

	if len(resp) != 2 {
		t.Fatalf("saved responses = %d, want 2", len(resp))
	}
	if resp[0].Title != "Growth" || resp[1].Title != "Churn" {
		t.Errorf("titles = %q, %q, want promotion order", resp[0].Title, resp[1].Title)
	}
}
