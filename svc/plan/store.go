package plan

import (
	"context"

	"github.com/fitstack/memberd/pkg/apperr"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a plan ID does not exist.
var ErrNotFound = apperr.NotFound("plan not found")

// Store is the persistence interface for the plan catalog.
type Store interface {
	// List returns all plans ordered by monthly cost.
	List(ctx context.Context) ([]Plan, error)

	// FindByID returns ErrNotFound when the plan does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*Plan, error)

	// Exists reports whether the plan ID references a plan.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Upsert inserts the plan or updates it by name, used by seeding.
	Upsert(ctx context.Context, p Plan) error
}
