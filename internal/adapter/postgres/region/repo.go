// Package region implements the region repository using PostgreSQL.
package region

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/regional-site-backend/internal/adapter/postgres"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

const entity = "region"

var columns = []string{"code", "name", "domain", "route", "is_active", "is_default", "created_at", "updated_at"}

const returning = `RETURNING code, name, domain, route, is_active, is_default, created_at, updated_at`

// Repo provides region persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new region repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// List returns regions ordered with the default first, then by code.
func (r *Repo) List(ctx context.Context, f domain.RegionFilter) ([]domain.Region, error) {
	q := postgres.Builder().
		Select(columns...).
		From("regions").
		OrderBy("is_default DESC", "code ASC")

	if f.Codes != nil {
		q = q.Where(squirrel.Eq{"code": f.Codes})
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
		return nil, fmt.Errorf("list regions: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Region, 0)
	for rows.Next() {
		reg, err := scanRegion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

// Get returns a region by code, active or not.
func (r *Repo) Get(ctx context.Context, code string) (*domain.Region, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("regions").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	reg, err := scanRegion(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, code)
	}
	return &reg, nil
}

// GetDefault returns the default region.
func (r *Repo) GetDefault(ctx context.Context) (*domain.Region, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("regions").
		Where(squirrel.Eq{"is_default": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	reg, err := scanRegion(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, "default")
	}
	return &reg, nil
}

const createSQL = `
INSERT INTO regions (code, name, domain, route, is_active, is_default)
VALUES ($1, $2, $3, $4, $5, $6)
` + returning

// Create inserts a region. A duplicate code, domain or route yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, reg domain.Region) (*domain.Region, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		reg.Code, reg.Name, nullable(reg.Domain), nullable(reg.Route), reg.IsActive, reg.IsDefault,
	)
	out, err := scanRegion(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, reg.Code)
	}
	return &out, nil
}

const updateSQL = `
UPDATE regions SET name = $2, domain = $3, route = $4, is_active = $5, updated_at = now()
WHERE code = $1
` + returning

// Update overwrites name, domain, route and is_active. The default flag is
// changed only through SetDefault.
func (r *Repo) Update(ctx context.Context, reg domain.Region) (*domain.Region, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateSQL,
		reg.Code, reg.Name, nullable(reg.Domain), nullable(reg.Route), reg.IsActive,
	)
	out, err := scanRegion(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, reg.Code)
	}
	return &out, nil
}

const (
	clearDefaultSQL = `UPDATE regions SET is_default = FALSE, updated_at = now() WHERE is_default AND code <> $1`
	setDefaultSQL   = `UPDATE regions SET is_default = TRUE, is_active = TRUE, updated_at = now() WHERE code = $1 ` + returning
)

// SetDefault moves the default flag to code. Must run inside a transaction.
func (r *Repo) SetDefault(ctx context.Context, code string) (*domain.Region, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, clearDefaultSQL, code); err != nil {
		return nil, postgres.MapError(err, entity, code)
	}
	out, err := scanRegion(q.QueryRow(ctx, setDefaultSQL, code))
	if err != nil {
		return nil, postgres.MapError(err, entity, code)
	}
	return &out, nil
}

const deactivateSQL = `UPDATE regions SET is_active = FALSE, updated_at = now() WHERE code = $1 ` + returning

// Deactivate marks a region inactive. Content rows are kept.
func (r *Repo) Deactivate(ctx context.Context, code string) (*domain.Region, error) {
	out, err := scanRegion(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, deactivateSQL, code))
	if err != nil {
		return nil, postgres.MapError(err, entity, code)
	}
	return &out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRegion(row scanner) (domain.Region, error) {
	var (
		reg               domain.Region
		domainName, route *string
	)
	if err := row.Scan(&reg.Code, &reg.Name, &domainName, &route, &reg.IsActive, &reg.IsDefault, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
		return domain.Region{}, err
	}
	if domainName != nil {
		reg.Domain = *domainName
	}
	if route != nil {
		reg.Route = *route
	}
	return reg, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
