package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
	"github.com/kalbaitzer/taskboard/internal/infrastructure/persistence/db"
)

const (
	insertUserSQL = `INSERT INTO users (id, name, email, role, created_at) VALUES ($1, $2, $3, $4, $5)`
	getUserSQL    = `SELECT id, name, email, role, created_at FROM users WHERE id = $1`
	listUsersSQL  = `SELECT id, name, email, role, created_at FROM users ORDER BY created_at`
	deleteUserSQL = `DELETE FROM users WHERE id = $1`
)

type UserRepository struct {
	dbtx db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{dbtx: dbtx}
}

func (r *UserRepository) Add(ctx context.Context, user *domain.User) error {
	_, err := r.dbtx.Exec(ctx, insertUserSQL,
		user.ID.UUID, user.Name, user.Email, user.Role, user.CreatedAt)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	var u db.User
	err := r.dbtx.QueryRow(ctx, getUserSQL, userID.UUID).
		Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return dbUserToDomain(u), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.dbtx.Query(ctx, listUsersSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*domain.User
	for rows.Next() {
		var u db.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, dbUserToDomain(u))
	}
	return list, rows.Err()
}

func (r *UserRepository) Delete(ctx context.Context, user *domain.User) error {
	_, err := r.dbtx.Exec(ctx, deleteUserSQL, user.ID.UUID)
	return err
}

func dbUserToDomain(u db.User) *domain.User {
	return &domain.User{
		ID:        domain.NewUserID(u.ID),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// Ensure UserRepository implements ports.UserRepository.
var _ ports.UserRepository = (*UserRepository)(nil)
