package event

import (
	"context"
	"errors"
	"time"

	domain "eventcal/internal/core/domain/event"
	e "eventcal/internal/core/domain/errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const uniqueViolationCode = "23505"

type PgxEventRepository struct {
	db *pgxpool.Pool
}

func NewPgxEventRepository(db *pgxpool.Pool) *PgxEventRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxEventRepository{db: db}
}

const createEventQuery = `
INSERT INTO event (id, title, date, start_time, end_time, note, created_at)
VALUES ($1, $2, $3::date, $4, $5, $6, $7)
`

func (r *PgxEventRepository) Create(
	ctx context.Context,
	input domain.CreateInput,
) (ev domain.Event, err error) {
	_, err = r.db.Exec(
		ctx,
		createEventQuery,
		string(input.ID),
		input.Title,
		input.Date.String(),
		input.StartTime,
		input.EndTime,
		input.Note,
		input.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ev, domain.ErrEventAlreadyExists
		}
		return ev, err
	}
	return domain.Event{
		ID:        input.ID,
		Title:     input.Title,
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Note:      input.Note,
		CreatedAt: input.CreatedAt,
	}, nil
}

const getEventByIDQuery = `
SELECT id, title, date, start_time, end_time, note, created_at
FROM event
WHERE id = $1
`

func (r *PgxEventRepository) GetByID(ctx context.Context, id domain.ID) (ev domain.Event, err error) {
	row := r.db.QueryRow(ctx, getEventByIDQuery, string(id))
	ev, err = decodeEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return ev, domain.ErrEventDoesNotExist
	}
	return ev, err
}

const readEventsQuery = `
SELECT id, title, date, start_time, end_time, note, created_at
FROM event
WHERE ($1 OR date = $2::date)
ORDER BY start_time, id
`

func (r *PgxEventRepository) Read(
	ctx context.Context,
	options domain.ReadOptions,
) (events []domain.Event, err error) {
	rows, err := r.db.Query(
		ctx,
		readEventsQuery,
		!options.DateEquals.IsPresent,
		nullableDate(options.DateEquals.Value, options.DateEquals.IsPresent),
	)
	if err != nil {
		return events, err
	}
	defer rows.Close()

	events = make([]domain.Event, 0)
	for rows.Next() {
		ev, err := decodeEvent(rows)
		if err != nil {
			return events, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// nullableDate keeps the unused date parameter NULL, the query short-circuits
// on the $1 flag before comparing.
func nullableDate(date domain.Date, isPresent bool) interface{} {
	if !isPresent {
		return nil
	}
	return date.String()
}

func decodeEvent(row pgx.Row) (ev domain.Event, err error) {
	var (
		id        string
		date      pgtype.Date
		startTime time.Time
		endTime   time.Time
		createdAt time.Time
	)
	err = row.Scan(&id, &ev.Title, &date, &startTime, &endTime, &ev.Note, &createdAt)
	if err != nil {
		return ev, err
	}
	ev.ID = domain.ID(id)
	ev.Date, err = domain.ParseDate(date.Time.Format("2006-01-02"))
	if err != nil {
		return ev, err
	}
	ev.StartTime = startTime
	ev.EndTime = endTime
	ev.CreatedAt = createdAt
	return ev, nil
}
