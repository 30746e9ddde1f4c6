package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
	"github.com/medlocate/medlocate-backend/internal/domain/repositories"
	"github.com/medlocate/medlocate-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/medlocate/medlocate-backend/pkg/errors"
)

// UserRoleAdapter implements the UserRoleRepository interface
type UserRoleAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewUserRoleAdapter creates a new user role adapter
func NewUserRoleAdapter(client *postgres.Client) repositories.UserRoleRepository {
	return &UserRoleAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a role-assignment row
func (a *UserRoleAdapter) Create(ctx context.Context, role *entities.UserRole) error {
	if role.CreatedAt.IsZero() {
		role.CreatedAt = time.Now()
	}

	record := goqu.Record{
		"id":      role.ID,
		"user_id": role.UserID,
		"role":    string(role.Role),
		"hospital_id": sql.NullString{
			String: func() string {
				if role.HospitalID != nil {
					return *role.HospitalID
				}
				return ""
			}(),
			Valid: role.HospitalID != nil,
		},
		"created_at": role.CreatedAt,
	}

	query, args, err := a.db.Insert("user_roles").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create user role", err)
	}

	return nil
}

// ListByUser retrieves all role-assignment rows for a user, oldest first
func (a *UserRoleAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.UserRole, error) {
	query, args, err := a.db.Select("id", "user_id", "role", "hospital_id", "created_at").
		From("user_roles").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("created_at").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build select query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list user roles", err)
	}
	defer rows.Close()

	roles := []*entities.UserRole{}
	for rows.Next() {
		role := &entities.UserRole{}
		var hospitalID sql.NullString
		if err := rows.Scan(&role.ID, &role.UserID, &role.Role, &hospitalID, &role.CreatedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan user role", err)
		}
		if hospitalID.Valid {
			role.HospitalID = &hospitalID.String
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating user roles", err)
	}

	return roles, nil
}
