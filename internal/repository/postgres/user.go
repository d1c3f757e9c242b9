package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"borrowbuddy-backend/internal/domain"
	"borrowbuddy-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, name, password_hash, created_on)
	          VALUES ($1, $2, $3, $4, $5)`
	id := uuid.NewString()
	now := time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query, id, user.Email, user.Name, user.PasswordHash, now)
	if err != nil {
		return mapError(err)
	}
	user.ID = id
	user.CreatedOn = now
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, COALESCE(name, ''), password_hash, created_on FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, COALESCE(name, ''), password_hash, created_on FROM users WHERE email = $1`
	var user domain.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, email, COALESCE(name, ''), password_hash, created_on FROM users`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedOn); err != nil {
			return nil, mapError(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return users, nil
}
