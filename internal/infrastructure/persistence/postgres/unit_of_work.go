package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/infrastructure/persistence/db"
)

// UnitOfWork runs each operation inside one database transaction. The
// RepoSet handed to fn is bound to the transaction, so every write made
// through it commits together or not at all.
type UnitOfWork struct {
	pool *pgxpool.Pool
}

func NewUnitOfWork(pool *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{pool: pool}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(ports.RepoSet) error) error {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	if err := fn(NewRepoSet(tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// NewRepoSet binds all repositories to dbtx, which may be a pool for
// read-only callers or a transaction inside the unit of work.
func NewRepoSet(dbtx db.DBTX) ports.RepoSet {
	return ports.RepoSet{
		Users:    NewUserRepository(dbtx),
		Projects: NewProjectRepository(dbtx),
		Tasks:    NewTaskRepository(dbtx),
		History:  NewTaskHistoryRepository(dbtx),
	}
}

// Ensure UnitOfWork implements ports.UnitOfWork.
var _ ports.UnitOfWork = (*UnitOfWork)(nil)
