package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/melynxis/solace/internal/apperr"
	"github.com/melynxis/solace/internal/db"
	"github.com/melynxis/solace/internal/models"
	"github.com/melynxis/solace/internal/ports/secondary"
)

// RegistryRepository implements secondary.RegistryRepository with SQL.
// Registry services are caller-asserted records: no state machine, no
// audit events, hard deletes.
type RegistryRepository struct {
	db *db.DB
}

// NewRegistryRepository creates a new SQL registry repository.
func NewRegistryRepository(database *db.DB) *RegistryRepository {
	return &RegistryRepository{db: database}
}

const registryColumns = "id, name, type, config, auth_mode, status, last_checkin, created_at, updated_at"

// Create persists a new registry service. The record must have its ID
// pre-populated by the service layer.
func (r *RegistryRepository) Create(ctx context.Context, svc *models.RegistryService) error {
	if svc.ID == "" {
		return fmt.Errorf("registry service ID must be pre-populated by service layer")
	}
	_, err := r.db.ExecContext(ctx, r.db.Rebind(
		"INSERT INTO registry_services (id, name, type, config, auth_mode, status) VALUES (?, ?, ?, ?, ?, ?)"),
		svc.ID, svc.Name, svc.Type, svc.Config, svc.AuthMode, svc.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create registry service: %w", err)
	}
	return nil
}

// GetByID retrieves a registry service by its ID.
func (r *RegistryRepository) GetByID(ctx context.Context, id string) (*models.RegistryService, error) {
	return r.fetch(ctx, r.db, id)
}

func (r *RegistryRepository) fetch(ctx context.Context, q db.Querier, id string) (*models.RegistryService, error) {
	row := q.QueryRowContext(ctx, r.db.Rebind(
		"SELECT "+registryColumns+" FROM registry_services WHERE id = ?"), id)
	svc, err := scanRegistryService(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.CodeNotFound, "registry service %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// Patch applies the provided fields and bumps updated_at.
func (r *RegistryRepository) Patch(ctx context.Context, id string, patch secondary.RegistryPatch) (*models.RegistryService, error) {
	var updated *models.RegistryService
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.fetch(ctx, tx, id); err != nil {
			return err
		}

		query := "UPDATE registry_services SET updated_at = CURRENT_TIMESTAMP"
		args := []any{}
		if patch.Name != nil {
			query += ", name = ?"
			args = append(args, *patch.Name)
		}
		if patch.Config != nil {
			query += ", config = ?"
			args = append(args, patch.Config)
		}
		if patch.AuthMode != nil {
			query += ", auth_mode = ?"
			args = append(args, *patch.AuthMode)
		}
		if patch.Status != nil {
			query += ", status = ?"
			args = append(args, *patch.Status)
		}
		query += " WHERE id = ?"
		args = append(args, id)

		if _, err := tx.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
			return fmt.Errorf("failed to patch registry service: %w", err)
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

// Delete removes a registry service. Hard delete, irreversible.
func (r *RegistryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(
		"DELETE FROM registry_services WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("failed to delete registry service: %w", err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return apperr.New(apperr.CodeNotFound, "registry service %s not found", id)
	}
	return nil
}

// List retrieves registry services matching the given filters.
func (r *RegistryRepository) List(ctx context.Context, filters secondary.RegistryFilters) ([]*models.RegistryService, error) {
	query := "SELECT " + registryColumns + " FROM registry_services"
	args := []any{}
	where := []string{}

	if filters.Type != "" {
		where = append(where, "type = ?")
		args = append(args, filters.Type)
	}
	if filters.Status != "" {
		where = append(where, "status = ?")
		args = append(args, filters.Status)
	}
	query += whereClause(where)
	query += " ORDER BY " + orderClause(filters.Sort, registrySortFields)
	query += " LIMIT ? OFFSET ?"
	args = append(args, filters.Limit, filters.Offset)

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list registry services: %w", err)
	}
	defer rows.Close()

	var services []*models.RegistryService
	for rows.Next() {
		svc, err := scanRegistryService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate registry services: %w", err)
	}
	return services, nil
}

// Checkin upserts a registry service by name. First checkin creates the
// record with newID; later checkins mark it online and stamp
// last_checkin.
func (r *RegistryRepository) Checkin(ctx context.Context, newID, name, svcType string, config models.Document) (*models.RegistryService, error) {
	var checked *models.RegistryService
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var existingID string
		err := tx.QueryRowContext(ctx, r.db.Rebind(
			"SELECT id FROM registry_services WHERE name = ? ORDER BY created_at LIMIT 1"), name,
		).Scan(&existingID)

		switch {
		case errors.Is(err, sql.ErrNoRows):
			if _, err := tx.ExecContext(ctx, r.db.Rebind(
				"INSERT INTO registry_services (id, name, type, config, auth_mode, status, last_checkin) VALUES (?, ?, ?, ?, 'none', 'online', CURRENT_TIMESTAMP)"),
				newID, name, svcType, config,
			); err != nil {
				return fmt.Errorf("failed to register service checkin: %w", err)
			}
			existingID = newID
		case err != nil:
			return fmt.Errorf("failed to resolve service checkin: %w", err)
		default:
			query := "UPDATE registry_services SET status = 'online', last_checkin = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP"
			args := []any{}
			if config != nil {
				query += ", config = ?"
				args = append(args, config)
			}
			query += " WHERE id = ?"
			args = append(args, existingID)
			if _, err := tx.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
				return fmt.Errorf("failed to update service checkin: %w", err)
			}
		}

		checked, err = r.fetch(ctx, tx, existingID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return checked, nil
}

func scanRegistryService(row rowScanner) (*models.RegistryService, error) {
	var (
		svc         models.RegistryService
		lastCheckin sql.NullTime
	)
	err := row.Scan(&svc.ID, &svc.Name, &svc.Type, &svc.Config, &svc.AuthMode, &svc.Status, &lastCheckin, &svc.CreatedAt, &svc.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan registry service: %w", err)
	}
	if lastCheckin.Valid {
		svc.LastCheckin = &lastCheckin.Time
	}
	return &svc, nil
}

// Ensure RegistryRepository implements the interface
var _ secondary.RegistryRepository = (*RegistryRepository)(nil)
