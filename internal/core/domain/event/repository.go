package event

import (
	"context"
	c "eventcal/internal/core/domain/common"
	"time"
)

type CreateInput struct {
	ID        ID
	Title     string
	Date      Date
	StartTime time.Time
	EndTime   time.Time
	Note      string
	CreatedAt time.Time
}

type ReadOptions struct {
	DateEquals c.Optional[Date]
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Event, error)
	GetByID(ctx context.Context, id ID) (Event, error)
	Read(ctx context.Context, options ReadOptions) ([]Event, error)
}

// Publisher delivers the full current event set to subscribers whenever it
// changes. Delivery is at-least-once and may redeliver an unchanged set, so
// consumers must treat every delivery as idempotent.
type Publisher interface {
	PublishEvents(ctx context.Context, events []Event) error
}
