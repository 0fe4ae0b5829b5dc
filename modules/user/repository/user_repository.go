package repository

import (
	"context"
	"database/sql"

	"meetsync/core/database"
	"meetsync/core/logger"
	"meetsync/modules/user/entity"
)

// UserRepository handles user database operations
type UserRepository struct {
	DB database.IDatabase
}

// NewUserRepository creates a new repository instance
func NewUserRepository(db database.IDatabase) *UserRepository {
	return &UserRepository{DB: db}
}

// UserRepositoryInterface defines the repository contract
type UserRepositoryInterface interface {
	FindByName(ctx context.Context, name string) (*entity.User, error)
	Create(ctx context.Context, name string) (*entity.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

func (r *UserRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	query := `SELECT id, name FROM users WHERE name = ?`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:FindByName", err)
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, name string) (*entity.User, error) {
	query := `INSERT INTO users (name) VALUES (?) RETURNING id, name`

	var created entity.User
	err := r.DB.GetContext(ctx, &created, query, name)
	if err != nil {
		logger.Error("UserRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT id FROM users WHERE id = ?`

	var found int64
	err := r.DB.GetContext(ctx, &found, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		logger.Error("UserRepository:ExistsByID", err)
		return false, err
	}

	return true, nil
}
