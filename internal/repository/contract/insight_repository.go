package contract

import (
	"context"

	"zorva-be/internal/entity"
	"zorva-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InsightRepository interface {
	Create(ctx context.Context, insight *entity.Insight) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Insight, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Insight, error)
	// MaxSeqId returns the highest seq_id ever issued for the conversation,
	// 0 when none. Deleted insights still count so seq ids are never reused.
	MaxSeqId(ctx context.Context, conversationId uuid.UUID) (int, error)
}

type QuickInsightRepository interface {
	Create(ctx context.Context, insight *entity.QuickInsight) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QuickInsight, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuickInsight, error)
}

type SavedResponseRepository interface {
	Create(ctx context.Context, saved *entity.SavedResponse) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedResponse, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedResponse, error)
}
