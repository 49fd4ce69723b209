package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"zorva-be/internal/entity"
	"zorva-be/internal/model"
	"zorva-be/internal/repository/specification"
	"zorva-be/internal/repository/unitofwork"
	"zorva-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func connect(t *testing.T) *gorm.DB {
	t.Helper()

	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	return gormDB
}

func TestGormConnection(t *testing.T) {
	gormDB := connect(t)

	err := gormDB.AutoMigrate(
		&model.Account{},
		&model.Document{},
		&model.Conversation{},
		&model.Turn{},
		&model.TurnCitation{},
		&model.Insight{},
		&model.QuickInsight{},
		&model.SavedResponse{},
	)
	assert.NoError(t, err)

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.AccountRepository())
	assert.NotNil(t, uow.DocumentRepository())
	assert.NotNil(t, uow.ConversationRepository())
	assert.NotNil(t, uow.TurnRepository())
	assert.NotNil(t, uow.InsightRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")
}

// Saving three insights yields seq ids 1, 2, 3; deleting 2 and saving again
// yields 4. Deleted seq ids are never reissued.
func TestInsightSeqIdAssignment(t *testing.T) {
	gormDB := connect(t)
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())
	ctx := context.Background()

	conversationId := uuid.New()
	repo := uow.InsightRepository()

	save := func() *entity.Insight {
		maxSeq, err := repo.MaxSeqId(ctx, conversationId)
		assert.NoError(t, err)
		insight := &entity.Insight{
			Id:             uuid.New(),
			ConversationId: conversationId,
			SeqId:          maxSeq + 1,
			Text:           "insight",
			CreatedAt:      time.Now(),
		}
		assert.NoError(t, repo.Create(ctx, insight))
		return insight
	}

	first := save()
	second := save()
	third := save()
	assert.Equal(t, 1, first.SeqId)
	assert.Equal(t, 2, second.SeqId)
	assert.Equal(t, 3, third.SeqId)

	assert.NoError(t, repo.Delete(ctx, second.Id))

	fourth := save()
	assert.Equal(t, 4, fourth.SeqId, "deleted seq id must not be reused")
}

// N appended exchanges read back as 2N turns in creation order.
func TestTurnOrdering(t *testing.T) {
	gormDB := connect(t)
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())
	ctx := context.Background()

	conversationId := uuid.New()
	repo := uow.TurnRepository()

	const n = 3
	for i := 0; i < n; i++ {
		user := &entity.Turn{
			Id:             uuid.New(),
			ConversationId: conversationId,
			Role:           entity.TurnRoleUser,
			DisplayText:    "question",
			CreatedAt:      time.Now(),
		}
		assert.NoError(t, repo.Create(ctx, user))
		reply := &entity.Turn{
			Id:             uuid.New(),
			ConversationId: conversationId,
			Role:           entity.TurnRoleAssistant,
			DisplayText:    "answer",
			CreatedAt:      time.Now(),
		}
		assert.NoError(t, repo.Create(ctx, reply))
	}

	turns, err := repo.FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	assert.NoError(t, err)
	assert.Len(t, turns, 2*n)

	for i, turn := range turns {
		if i%2 == 0 {
			assert.Equal(t, entity.TurnRoleUser, turn.Role)
		} else {
			assert.Equal(t, entity.TurnRoleAssistant, turn.Role)
		}
	}
}
