package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookden/internal/domains/user/model"
)

// UserRepository defines data access for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id int64, nickname, avatar, introduction string) error
	SavePreference(ctx context.Context, id int64, blob string) error
}

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) UserRepository {
	return &sqliteRepository{db: db}
}

const userColumns = `id, username, nickname, avatar, email, introduction, roles, preference, password_hash, created_at`

func (r *sqliteRepository) Create(ctx context.Context, user *model.User) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, nickname, avatar, email, introduction, roles, password_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.Username, user.Nickname, user.Avatar, user.Email,
		user.Introduction, model.RolesToColumn(user.Roles), user.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	user.ID = id

	return nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getOne(ctx, fmt.Sprintf("SELECT %s FROM users WHERE id = ?", userColumns), id)
}

func (r *sqliteRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getOne(ctx, fmt.Sprintf("SELECT %s FROM users WHERE username = ?", userColumns), username)
}

func (r *sqliteRepository) getOne(ctx context.Context, query string, arg interface{}) (*model.User, error) {
	user := &model.User{}
	var roles string

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Nickname, &user.Avatar, &user.Email,
		&user.Introduction, &roles, &user.Preference, &user.PasswordHash, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.Roles = model.RolesFromColumn(roles)
	return user, nil
}

func (r *sqliteRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)", username)
}

func (r *sqliteRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)", email)
}

func (r *sqliteRepository) exists(ctx context.Context, query string, arg interface{}) (bool, error) {
	var exists int
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		return false, fmt.Errorf("existence check failed: %w", err)
	}
	return exists == 1, nil
}

func (r *sqliteRepository) UpdateProfile(ctx context.Context, id int64, nickname, avatar, introduction string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE users SET nickname = ?, avatar = ?, introduction = ? WHERE id = ?",
		nickname, avatar, introduction, id)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (r *sqliteRepository) SavePreference(ctx context.Context, id int64, blob string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE users SET preference = ? WHERE id = ?", blob, id)
	if err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
