package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"tasklight/internal/models"
)

// defines methods for user db operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// GetByLogin matches username or email, case-insensitively.
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	// FindTaken returns an existing user whose username or email collides
	// (case-insensitively) with the given values, or sql.ErrNoRows.
	FindTaken(ctx context.Context, username, email string) (*models.User, error)
}

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, password_hash, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (` + userColumns + `)
	 VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(
		ctx, query, user.ID, user.Username, user.Email, user.PasswordHash,
		user.CreatedAt, user.UpdatedAt)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
	 WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($1)`
	return scanUser(r.db.QueryRowContext(ctx, query, login))
}

func (r *UserRepository) FindTaken(ctx context.Context, username, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
	 WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($2)`
	return scanUser(r.db.QueryRowContext(ctx, query, username, email))
}

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
