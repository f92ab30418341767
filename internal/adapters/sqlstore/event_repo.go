package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/melynxis/solace/internal/db"
	"github.com/melynxis/solace/internal/models"
	"github.com/melynxis/solace/internal/ports/secondary"
)

// EventRepository implements secondary.EventLog with SQL storage.
// Appends are internal to this package: they only ever happen through
// appendEvent, inside the transaction of the mutation they document.
type EventRepository struct {
	db *db.DB
}

// NewEventRepository creates a new SQL event repository.
func NewEventRepository(database *db.DB) *EventRepository {
	return &EventRepository{db: database}
}

// appendEvent inserts one audit row using the caller's Querier, which
// is the open transaction of the entity mutation.
func appendEvent(ctx context.Context, database *db.DB, q db.Querier, event *models.SpiritEvent) error {
	var prev, next, note sql.NullString
	if event.PrevState != nil {
		prev = sql.NullString{String: string(*event.PrevState), Valid: true}
	}
	if event.NewState != nil {
		next = sql.NullString{String: string(*event.NewState), Valid: true}
	}
	if event.Note != nil {
		note = sql.NullString{String: *event.Note, Valid: true}
	}

	_, err := q.ExecContext(ctx, database.Rebind(
		"INSERT INTO spirit_events (spirit_id, event_type, prev_state, new_state, note, meta) VALUES (?, ?, ?, ?, ?, ?)"),
		event.SpiritID, event.EventType, prev, next, note, event.Meta,
	)
	if err != nil {
		return fmt.Errorf("failed to append spirit event: %w", err)
	}
	return nil
}

// ListBySpirit returns a spirit's events in chronological order.
func (r *EventRepository) ListBySpirit(ctx context.Context, spiritID int64) ([]*models.SpiritEvent, error) {
	rows, err := r.db.QueryContext(ctx, r.db.Rebind(
		"SELECT id, spirit_id, event_type, prev_state, new_state, note, meta, created_at FROM spirit_events WHERE spirit_id = ? ORDER BY created_at ASC, id ASC"),
		spiritID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list spirit events: %w", err)
	}
	defer rows.Close()

	var events []*models.SpiritEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate spirit events: %w", err)
	}
	return events, nil
}

func scanEvent(rows *sql.Rows) (*models.SpiritEvent, error) {
	var (
		event            models.SpiritEvent
		prev, next, note sql.NullString
	)
	if err := rows.Scan(&event.ID, &event.SpiritID, &event.EventType, &prev, &next, &note, &event.Meta, &event.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan spirit event: %w", err)
	}
	if prev.Valid {
		s := models.SpiritState(prev.String)
		event.PrevState = &s
	}
	if next.Valid {
		s := models.SpiritState(next.String)
		event.NewState = &s
	}
	if note.Valid {
		event.Note = &note.String
	}
	return &event, nil
}

// Ensure EventRepository implements the interface
var _ secondary.EventLog = (*EventRepository)(nil)
