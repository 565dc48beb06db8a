package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/zulian026/TaskNest/internal/core/domain"
	"github.com/zulian026/TaskNest/internal/core/ports"
)

const userSelectColumns = "id, name, email, password, avatar, provider, github_id, created_at, updated_at"

type UserRepository struct {
	db *sqlx.DB
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	ID        uint64         `db:"id"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	Password  sql.NullString `db:"password"`
	Avatar    sql.NullString `db:"avatar"`
	Provider  sql.NullString `db:"provider"`
	GitHubID  sql.NullString `db:"github_id"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint64) (domain.User, error) {
	return r.getBy(ctx, "id = ?", userID)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *UserRepository) GetByGitHubID(ctx context.Context, githubID string) (domain.User, error) {
	return r.getBy(ctx, "github_id = ?", githubID)
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg any) (domain.User, error) {
	var row userRow
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s", userSelectColumns, where)
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if err == sql.ErrNoRows {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRow(row), nil
}

func (r *UserRepository) Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	result, err := r.db.ExecContext(ctx, `
INSERT INTO users (name, email, password, avatar, provider, github_id)
VALUES (?, ?, ?, ?, ?, ?)`,
		input.Name,
		input.Email,
		nullableString(input.PasswordHash),
		nullableString(input.Avatar),
		string(input.Provider),
		nullableString(input.GitHubID),
	)
	if err != nil {
		return domain.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	return r.GetByID(ctx, uint64(id))
}

func (r *UserRepository) Update(ctx context.Context, userID uint64, input domain.UpdateUserInput) (domain.User, error) {
	if _, err := r.GetByID(ctx, userID); err != nil {
		return domain.User{}, err
	}

	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}
	if input.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *input.Email)
	}
	if input.PasswordHash != nil {
		sets = append(sets, "password = ?")
		args = append(args, *input.PasswordHash)
	}
	if input.AvatarSet {
		sets = append(sets, "avatar = ?")
		args = append(args, nullableString(input.Avatar))
	}

	if len(sets) > 0 {
		query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(sets, ", "))
		args = append(args, userID)
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return domain.User{}, err
		}
	}

	return r.GetByID(ctx, userID)
}

func (r *UserRepository) LinkGitHub(ctx context.Context, userID uint64, githubID string, avatar *string) (domain.User, error) {
	if _, err := r.GetByID(ctx, userID); err != nil {
		return domain.User{}, err
	}

	sets := "github_id = ?, provider = ?"
	args := []any{githubID, string(domain.ProviderGitHub)}
	if avatar != nil {
		sets += ", avatar = ?"
		args = append(args, *avatar)
	}
	args = append(args, userID)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", sets)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.User{}, err
	}

	return r.GetByID(ctx, userID)
}

func (r *UserRepository) UnlinkGitHub(ctx context.Context, userID uint64) (domain.User, error) {
	if _, err := r.GetByID(ctx, userID); err != nil {
		return domain.User{}, err
	}

	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET github_id = NULL, provider = ? WHERE id = ?",
		string(domain.ProviderEmail), userID,
	)
	if err != nil {
		return domain.User{}, err
	}

	return r.GetByID(ctx, userID)
}

func mapUserRow(row userRow) domain.User {
	user := domain.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Provider:  domain.ProviderEmail,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Password.Valid && row.Password.String != "" {
		value := row.Password.String
		user.PasswordHash = &value
	}
	if row.Avatar.Valid {
		value := row.Avatar.String
		user.Avatar = &value
	}
	if row.Provider.Valid && row.Provider.String != "" {
		user.Provider = domain.AuthProvider(row.Provider.String)
	}
	if row.GitHubID.Valid {
		value := row.GitHubID.String
		user.GitHubID = &value
	}

	return user
}
