package contract

import (
	"context"

	"zorva-be/internal/entity"
	"zorva-be/internal/repository/specification"
)

type TurnRepository interface {
	Create(ctx context.Context, turn *entity.Turn) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Turn, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type TurnCitationRepository interface {
	Create(ctx context.Context, citation *entity.TurnCitation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TurnCitation, error)
}
