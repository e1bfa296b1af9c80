// Package user implements the admin user repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/regional-site-backend/internal/adapter/postgres"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

const entity = "user"

var columns = []string{
	"id", "username", "email", "name", "password_hash", "role",
	"assigned_regions", "is_active", "last_login_at", "created_at", "updated_at",
}

const returning = `RETURNING id, username, email, name, password_hash, role,
    assigned_regions, is_active, last_login_at, created_at, updated_at`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new user repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id}, id)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"username": username}, username)
}

func (r *Repo) getBy(ctx context.Context, pred squirrel.Eq, id any) (*domain.User, error) {
	sql, args, err := postgres.Builder().Select(columns...).From("users").Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &u, nil
}

// List returns users ordered by username.
func (r *Repo) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	q := postgres.Builder().Select(columns...).From("users").OrderBy("username ASC")
	if f.Role != nil {
		q = q.Where(squirrel.Eq{"role": string(*f.Role)})
	}
	if f.ActiveOnly {
		q = q.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// CountActiveSuperAdmins returns how many active super admins exist.
func (r *Repo) CountActiveSuperAdmins(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From("users").
		Where(squirrel.Eq{"role": string(domain.UserRoleSuperAdmin), "is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count super admins: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO users (id, username, email, name, password_hash, role, assigned_regions, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
` + returning

// Create inserts a new user. A duplicate username yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		u.ID, u.Username, u.Email, u.Name, u.PasswordHash, string(u.Role), regionsOrEmpty(u.AssignedRegions), u.IsActive,
	)
	out, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, u.Username)
	}
	return &out, nil
}

const updateSQL = `
UPDATE users SET email = $2, name = $3, role = $4, assigned_regions = $5, is_active = $6, updated_at = now()
WHERE id = $1
` + returning

// Update overwrites profile, role, region assignments and active flag.
func (r *Repo) Update(ctx context.Context, u domain.User) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateSQL,
		u.ID, u.Email, u.Name, string(u.Role), regionsOrEmpty(u.AssignedRegions), u.IsActive,
	)
	out, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, u.ID)
	}
	return &out, nil
}

const setPasswordSQL = `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`

// SetPassword replaces the stored bcrypt hash.
func (r *Repo) SetPassword(ctx context.Context, id uuid.UUID, hash string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, setPasswordSQL, id, hash)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

const touchLoginSQL = `UPDATE users SET last_login_at = now() WHERE id = $1`

// TouchLastLogin stamps last_login_at.
func (r *Repo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, touchLoginSQL, id); err != nil {
		return postgres.MapError(err, entity, id)
	}
	return nil
}

const deleteSQL = `DELETE FROM users WHERE id = $1`

// Delete removes a user. Activity rows keep their history with a NULL actor.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.Name, &u.PasswordHash, &role,
		&u.AssignedRegions, &u.IsActive, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.Role = domain.UserRole(role)
	return u, nil
}

func regionsOrEmpty(r []string) []string {
	if r == nil {
		return []string{}
	}
	return r
}
