package repository

import (
	"context"

	"github.com/PlanetPuffer/Large-Lifting-Model/internal/models"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_new, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, user.Email, user.PasswordHash, user.FirstName, user.LastName).
		Scan(&user.ID, &user.IsNew, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, is_new, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
			&user.IsNew, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, is_new, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
			&user.IsNew, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UpdateUserInput struct {
	FirstName *string
	LastName  *string
}

// UpdateProfile updates the user-held profile fields and clears the
// first-login flag.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, req UpdateUserInput) (*models.User, error) {
	query := `
		UPDATE users
		SET first_name = COALESCE($1, first_name),
			last_name = COALESCE($2, last_name),
			is_new = FALSE,
			updated_at = NOW()
		WHERE id = $3
		RETURNING id, email, password_hash, first_name, last_name, is_new, created_at, updated_at
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, req.FirstName, req.LastName, userID).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
			&user.IsNew, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
