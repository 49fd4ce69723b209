package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"zorva-be/internal/constant"
	"zorva-be/internal/dto"
	"zorva-be/internal/entity"
	"zorva-be/pkg/assistant"

	"github.com/google/uuid"
)

func newChatFixture() (*fakeUnitOfWork, *fakeGenerator, *entity.Account, IChatService) {
	uow := newFakeUnitOfWork()
	gen := &fakeGenerator{
		runResult: &assistant.RunResult{
			Text:         "The average was 40000.",
			CitedFileIds: []string{"file-model"},
		},
	}
	account := &entity.Account{
		Id:              uuid.New(),
		ExternalUid:     "uid-1",
		RetrievalHandle: "asst-retrieval",
		AnalysisHandle:  "asst-analysis",
		CorpusId:        "vs-1",
	}
	svc := NewChatService(&fakeFactory{uow: uow}, &fakeAccountService{account: account}, gen)
	return uow, gen, account, svc
}

func TestChatCallerFileIdsWinCitations(t *testing.T) {
	uow, _, _, svc := newChatFixture()

	resp, err := svc.Chat(context.Background(), &dto.ChatRequest{
		ExternalUid: "uid-1",
		Query:       "what was the average?",
		FileIds:     []string{"doc-1", "doc-2"},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	want := []string{"doc-1", "doc-2"}
	if len(resp.CitedFileIds) != len(want) {
		t.Fatalf("cited ids = %v, want %v", resp.CitedFileIds, want)
	}
	for i, id := range want {
		if resp.CitedFileIds[i] != id {
			t.Errorf("cited id[%d] = %q, want %q", i, resp.CitedFileIds[i], id)
		}
	}

	if len(uow.citations.rows) != 2 {
		t.Fatalf("citation rows = %d, want 2", len(uow.citations.rows))
	}
	for i, id := range want {
		if uow.citations.rows[i].DocumentId != id {
			t.Errorf("persisted citation[%d] = %q, want %q", i, uow.citations.rows[i].DocumentId, id)
		}
	}
}

func TestChatUsesModelCitationsWithoutCallerFileIds(t *testing.T) {
	uow, _, _, svc := newChatFixture()

	resp, err := svc.Chat(context.Background(), &dto.ChatRequest{
		ExternalUid: "uid-1",
		Query:       "what was the average?",
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	if len(resp.CitedFileIds) != 1 || resp.CitedFileIds[0] != "file-model" {
		t.Errorf("cited ids = %v, want the model citation", resp.CitedFileIds)
	}
	if len(uow.citations.rows) != 1 || uow.citations.rows[0].DocumentId != "file-model" {
		t.Errorf("persisted citations = %v", uow.citations.rows)
	}
}

// A failed turn insert on a brand new conversation must roll the transaction
// back so no empty conversation row survives.
func TestChatTurnInsertFailureRollsBackConversation(t *testing.T) {
	uow, _, _, svc := newChatFixture()
	uow.turns.createErr = errors.New("insert failed")

	_, err := svc.Chat(context.Background(), &dto.ChatRequest{
		ExternalUid: "uid-1",
		Query:       "hello",
	})
	if err == nil {
		t.Fatal("expected the turn insert failure to surface")
	}

	if !uow.begun {
		t.Error("conversation and turn were written outside a transaction")
	}
	if !uow.rolledBack {
		t.Error("transaction was not rolled back")
	}
	if uow.committed {
		t.Error("transaction committed despite the failed turn insert")
	}
}

// A generation failure after the user turn committed keeps the turn: the
// transcript records what was asked even when no answer arrived.
func TestChatGenerationFailureKeepsUserTurn(t *testing.T) {
	uow, gen, _, svc := newChatFixture()
	gen.runErr = errors.New("upstream unavailable")

	_, err := svc.Chat(context.Background(), &dto.ChatRequest{
		ExternalUid: "uid-1",
		Query:       "hello",
	})
	if err == nil {
		t.Fatal("expected the generation failure to surface")
	}

	if !uow.committed {
		t.Error("user turn was not committed before generation")
	}
	if len(uow.turns.rows) != 1 {
		t.Fatalf("turn rows = %d, want the single user turn", len(uow.turns.rows))
	}
	if uow.turns.rows[0].Role != entity.TurnRoleUser {
		t.Errorf("persisted turn role = %q, want %q", uow.turns.rows[0].Role, entity.TurnRoleUser)
	}
}

func TestGenerateQuickInsightsStoresDisplayNames(t *testing.T) {
	uow, gen, account, svc := newChatFixture()
	threadId := "thread-insights"
	account.QuickInsightThreadId = &threadId
	gen.runResult = &assistant.RunResult{
		Text: `[{"title":"Growth","description":"Revenue grew."}]`,
	}
	uow.documents.rows = []*entity.Document{
		{Id: uuid.New(), DocumentId: "doc-1", AccountId: account.Id, DisplayName: "sales.csv"},
		{Id: uuid.New(), DocumentId: "doc-2", AccountId: account.Id, DisplayName: "budget.xlsx"},
	}

	resp, err := svc.GenerateQuickInsights(context.Background(), &dto.GenerateQuickInsightsRequest{
		ExternalUid: "uid-1",
	})
	if err != nil {
		t.Fatalf("GenerateQuickInsights failed: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("insight count = %d, want 1", len(resp))
	}

	if len(uow.quickInsights.rows) != 1 {
		t.Fatalf("stored rows = %d, want 1", len(uow.quickInsights.rows))
	}
	got := uow.quickInsights.rows[0].SourceDocuments
	want := []string{"sales.csv", "budget.xlsx"}
	if len(got) != len(want) {
		t.Fatalf("source documents = %v, want display names %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("source document[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestComposePrompt(t *testing.T) {
	t.Run("raw query gets suffix only", func(t *testing.T) {
		got := composePrompt("what was the total revenue?", nil)

		if !strings.HasPrefix(got, "what was the total revenue?") {
			t.Errorf("prompt does not start with the query: %q", got)
		}
		if !strings.HasSuffix(got, constant.FollowUpSuffix) {
			t.Error("prompt missing follow-up suffix")
		}
	})

	t.Run("filenames are normalized and prepended", func(t *testing.T) {
		got := composePrompt("summarize", []string{"sales_2024.csv", "budget.xlsx"})

		if !strings.Contains(got, "sales_2024") {
			t.Errorf("normalized filename missing: %q", got)
		}
		if strings.Contains(got, ".csv") || strings.Contains(got, ".xlsx") {
			t.Errorf("extensions not stripped: %q", got)
		}
		if !strings.Contains(got, "summarize") {
			t.Errorf("query missing: %q", got)
		}
		if !strings.HasSuffix(got, constant.FollowUpSuffix) {
			t.Error("prompt missing follow-up suffix")
		}

		// File context must come before the query
		if strings.Index(got, "sales_2024") > strings.Index(got, "summarize") {
			t.Error("file list should precede the query")
		}
	})
}
