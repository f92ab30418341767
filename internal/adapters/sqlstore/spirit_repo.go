// Package sqlstore contains the SQL implementations of the registry's
// repository interfaces. Every mutation on a spirit and its audit
// event commit in one transaction.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/melynxis/solace/internal/apperr"
	corespirit "github.com/melynxis/solace/internal/core/spirit"
	"github.com/melynxis/solace/internal/db"
	"github.com/melynxis/solace/internal/models"
	"github.com/melynxis/solace/internal/ports/secondary"
)

// SpiritRepository implements secondary.SpiritRepository with SQL.
type SpiritRepository struct {
	db *db.DB
}

// NewSpiritRepository creates a new SQL spirit repository.
func NewSpiritRepository(database *db.DB) *SpiritRepository {
	return &SpiritRepository{db: database}
}

const spiritColumns = "id, name, role, state, meta, created_at, updated_at"

// Create inserts a spirit in state pending, immediately advances it to
// created and appends the create event, all in one transaction. The
// pending state is never externally observable, but the create event
// records the pending->created pair.
func (r *SpiritRepository) Create(ctx context.Context, name, role string, meta models.Document) (*models.Spirit, error) {
	var created *models.Spirit
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		id, err := r.insert(ctx, tx, name, role, meta)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, r.db.Rebind(
			"UPDATE spirits SET state = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"),
			models.StateCreated, id,
		); err != nil {
			return fmt.Errorf("failed to advance spirit state: %w", err)
		}

		prev, next := models.StatePending, models.StateCreated
		if err := appendEvent(ctx, r.db, tx, &models.SpiritEvent{
			SpiritID:  id,
			EventType: models.EventCreate,
			PrevState: &prev,
			NewState:  &next,
			Meta:      meta,
		}); err != nil {
			return err
		}

		created, err = r.fetch(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *SpiritRepository) insert(ctx context.Context, tx *sql.Tx, name, role string, meta models.Document) (int64, error) {
	if r.db.Dialect() == db.DialectPostgres {
		var id int64
		err := tx.QueryRowContext(ctx, r.db.Rebind(
			"INSERT INTO spirits (name, role, state, meta) VALUES (?, ?, ?, ?) RETURNING id"),
			name, role, corespirit.InitialState(), meta,
		).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("failed to create spirit: %w", err)
		}
		return id, nil
	}

	result, err := tx.ExecContext(ctx,
		"INSERT INTO spirits (name, role, state, meta) VALUES (?, ?, ?, ?)",
		name, role, corespirit.InitialState(), meta,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create spirit: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to resolve spirit id: %w", err)
	}
	return id, nil
}

// GetByID retrieves a spirit by its ID.
func (r *SpiritRepository) GetByID(ctx context.Context, id int64) (*models.Spirit, error) {
	return r.fetch(ctx, r.db, id)
}

func (r *SpiritRepository) fetch(ctx context.Context, q db.Querier, id int64) (*models.Spirit, error) {
	row := q.QueryRowContext(ctx, r.db.Rebind(
		"SELECT "+spiritColumns+" FROM spirits WHERE id = ?"), id)
	spirit, err := scanSpirit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.CodeNotFound, "spirit %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return spirit, nil
}

// Transition loads the current state, evaluates the lifecycle table and
// applies the move with its state_change event in one transaction.
// Rejections carry the attempted pair and leave the row untouched.
func (r *SpiritRepository) Transition(ctx context.Context, id int64, newState models.SpiritState, note *string) (*models.Spirit, error) {
	var updated *models.Spirit
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		current, err := r.fetch(ctx, tx, id)
		if err != nil {
			return err
		}

		if result := corespirit.CanTransition(current.State, newState); !result.Allowed {
			return apperr.New(apperr.CodeConflict, "%s", result.Reason)
		}

		if _, err := tx.ExecContext(ctx, r.db.Rebind(
			"UPDATE spirits SET state = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"),
			newState, id,
		); err != nil {
			return fmt.Errorf("failed to update spirit state: %w", err)
		}

		prev := current.State
		next := newState
		if err := appendEvent(ctx, r.db, tx, &models.SpiritEvent{
			SpiritID:  id,
			EventType: models.EventStateChange,
			PrevState: &prev,
			NewState:  &next,
			Note:      note,
		}); err != nil {
			return err
		}

		updated, err = r.fetch(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Patch applies the provided fields and appends one event per field
// category actually given. Unprovided fields are left untouched.
func (r *SpiritRepository) Patch(ctx context.Context, id int64, name *string, meta models.Document, note *string) (*models.Spirit, error) {
	var updated *models.Spirit
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.fetch(ctx, tx, id); err != nil {
			return err
		}

		query := "UPDATE spirits SET updated_at = CURRENT_TIMESTAMP"
		args := []any{}
		if name != nil {
			query += ", name = ?"
			args = append(args, *name)
		}
		if meta != nil {
			query += ", meta = ?"
			args = append(args, meta)
		}
		query += " WHERE id = ?"
		args = append(args, id)

		if _, err := tx.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
			return fmt.Errorf("failed to patch spirit: %w", err)
		}

		if name != nil {
			if err := appendEvent(ctx, r.db, tx, &models.SpiritEvent{
				SpiritID:  id,
				EventType: models.EventNameUpdate,
				Note:      note,
			}); err != nil {
				return err
			}
		}
		if meta != nil {
			if err := appendEvent(ctx, r.db, tx, &models.SpiritEvent{
				SpiritID:  id,
				EventType: models.EventMetaUpdate,
				Note:      note,
				Meta:      meta,
			}); err != nil {
				return err
			}
		}

		var err error
		updated, err = r.fetch(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// List retrieves spirits matching the given filters.
func (r *SpiritRepository) List(ctx context.Context, filters secondary.SpiritFilters) ([]*models.Spirit, error) {
	query := "SELECT " + spiritColumns + " FROM spirits"
	args := []any{}
	where := []string{}

	if filters.State != "" {
		where = append(where, "state = ?")
		args = append(args, filters.State)
	}
	if filters.Role != "" {
		where = append(where, "role = ?")
		args = append(args, filters.Role)
	}
	if filters.NameContains != "" {
		where = append(where, "name LIKE ?")
		args = append(args, "%"+filters.NameContains+"%")
	}
	query += whereClause(where)
	query += " ORDER BY " + orderClause(filters.Sort, spiritSortFields)
	query += " LIMIT ? OFFSET ?"
	args = append(args, filters.Limit, filters.Offset)

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list spirits: %w", err)
	}
	defer rows.Close()

	var spirits []*models.Spirit
	for rows.Next() {
		spirit, err := scanSpirit(rows)
		if err != nil {
			return nil, err
		}
		spirits = append(spirits, spirit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate spirits: %w", err)
	}
	return spirits, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSpirit(row rowScanner) (*models.Spirit, error) {
	var spirit models.Spirit
	err := row.Scan(&spirit.ID, &spirit.Name, &spirit.Role, &spirit.State, &spirit.Meta, &spirit.CreatedAt, &spirit.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan spirit: %w", err)
	}
	return &spirit, nil
}

// Ensure SpiritRepository implements the interface
var _ secondary.SpiritRepository = (*SpiritRepository)(nil)
