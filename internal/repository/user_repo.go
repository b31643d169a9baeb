package repository

import (
	"context"
	"errors"
	"time"

	"FashionStoreAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

// Create inserts a new user and returns the stored row. The unique index on
// email is the authoritative duplicate guard; a 23505 maps to ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash, role string) (*model.User, error) {
	u := model.User{Name: name, Email: email, PasswordHash: passwordHash, Role: role}
	query := `INSERT INTO users (name, email, password, role, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at`
	if err := r.DB.QueryRow(ctx, query, name, email, passwordHash, role, time.Now()).Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	query := `SELECT id, name, email, password, role, created_at
			FROM users
			WHERE email=$1`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmailAndRole backs login: the claimed role must match the stored one,
// and a miss is indistinguishable from an unknown email.
func (r *UserRepository) GetByEmailAndRole(ctx context.Context, email, role string) (*model.User, error) {
	var u model.User
	query := `SELECT id, name, email, password, role, created_at
			FROM users
			WHERE email=$1 AND role=$2`
	if err := r.DB.QueryRow(ctx, query, email, role).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	query := `SELECT id, name, email, role, created_at FROM users WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// UpdateProfile lets a user change name and email. Email keeps its unique
// index, so a clash surfaces as ErrDuplicate here too.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, name, email string) error {
	query := `UPDATE users SET name=$1, email=$2 WHERE id=$3`
	tag, err := r.DB.Exec(ctx, query, name, email, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
