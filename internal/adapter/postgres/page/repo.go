// Package page implements the page section repository using PostgreSQL.
package page

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/regional-site-backend/internal/adapter/postgres"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

const entity = "page_section"

var columns = []string{"region_code", "key", "title", "body_markdown", "body_html", "updated_by", "updated_at"}

// Repo provides page section persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new page section repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// List returns every section of a region ordered by key.
func (r *Repo) List(ctx context.Context, region string) ([]domain.PageSection, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("page_sections").
		Where(squirrel.Eq{"region_code": region}).
		OrderBy("key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list page sections: %w", err)
	}
	defer rows.Close()

	out := make([]domain.PageSection, 0)
	for rows.Next() {
		var p domain.PageSection
		if err := rows.Scan(&p.RegionCode, &p.Key, &p.Title, &p.BodyMarkdown, &p.BodyHTML, &p.UpdatedBy, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan page section: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get returns one section.
func (r *Repo) Get(ctx context.Context, region, key string) (*domain.PageSection, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("page_sections").
		Where(squirrel.Eq{"region_code": region, "key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var p domain.PageSection
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).
		Scan(&p.RegionCode, &p.Key, &p.Title, &p.BodyMarkdown, &p.BodyHTML, &p.UpdatedBy, &p.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, entity, region+"/"+key)
	}
	return &p, nil
}

const upsertSQL = `
INSERT INTO page_sections (region_code, key, title, body_markdown, body_html, updated_by, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
ON CONFLICT (region_code, key) DO UPDATE SET
    title = EXCLUDED.title,
    body_markdown = EXCLUDED.body_markdown,
    body_html = EXCLUDED.body_html,
    updated_by = EXCLUDED.updated_by,
    updated_at = now()
RETURNING region_code, key, title, body_markdown, body_html, updated_by, updated_at`

// Upsert creates or replaces a section.
func (r *Repo) Upsert(ctx context.Context, p domain.PageSection) (*domain.PageSection, error) {
	var out domain.PageSection
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, upsertSQL,
		p.RegionCode, p.Key, p.Title, p.BodyMarkdown, p.BodyHTML, p.UpdatedBy,
	).Scan(&out.RegionCode, &out.Key, &out.Title, &out.BodyMarkdown, &out.BodyHTML, &out.UpdatedBy, &out.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, entity, p.RegionCode+"/"+p.Key)
	}
	return &out, nil
}

const deleteSQL = `DELETE FROM page_sections WHERE region_code = $1 AND key = $2`

// Delete removes a section.
func (r *Repo) Delete(ctx context.Context, region, key string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, region, key)
	if err != nil {
		return postgres.MapError(err, entity, region+"/"+key)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s/%s: %w", entity, region, key, domain.ErrNotFound)
	}
	return nil
}
