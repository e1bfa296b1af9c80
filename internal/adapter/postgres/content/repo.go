// Package content implements the content item repository using PostgreSQL.
// Slider images, gallery images and client logos share one table partitioned
// by (region_code, content_type); every operation is scoped to a partition.
package content

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/regional-site-backend/internal/adapter/postgres"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

const entity = "content_item"

var columns = []string{
	"id", "region_code", "content_type", "storage_key", "cdn_url", "cdn_url_mobile",
	"filename", "alt_text", "object_position", "link_url", "display_order",
	"mobile_visible", "is_active", "created_at", "updated_at",
}

const returning = `RETURNING id, region_code, content_type, storage_key, cdn_url, cdn_url_mobile,
    filename, alt_text, object_position, link_url, display_order,
    mobile_visible, is_active, created_at, updated_at`

// Repo provides content item persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new content repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the partition ordered by display_order ascending.
func (r *Repo) List(ctx context.Context, region string, kind domain.Kind, opts domain.ContentFilter) ([]domain.ContentItem, error) {
	q := postgres.Builder().
		Select(columns...).
		From("content_items").
		Where(squirrel.Eq{"region_code": region, "content_type": string(kind)}).
		OrderBy("display_order ASC", "id ASC")

	if opts.ActiveOnly {
		q = q.Where(squirrel.Eq{"is_active": true})
	}
	if opts.NonEmptyOnly {
		q = q.Where(squirrel.NotEq{"storage_key": nil})
	}
	if opts.MobileOnly {
		q = q.Where(squirrel.Eq{"mobile_visible": true})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s items: %w", kind, err)
	}
	defer rows.Close()

	items := make([]domain.ContentItem, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s item: %w", kind, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s items: %w", kind, err)
	}
	return items, nil
}

// GetByID returns one item of the partition.
// Returns domain.ErrNotFound if the id belongs to another partition.
func (r *Repo) GetByID(ctx context.Context, region string, kind domain.Kind, id int64) (*domain.ContentItem, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("content_items").
		Where(squirrel.Eq{"id": id, "region_code": region, "content_type": string(kind)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	it, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &it, nil
}

// Count returns the number of rows in the partition.
func (r *Repo) Count(ctx context.Context, region string, kind domain.Kind) (int, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From("content_items").
		Where(squirrel.Eq{"region_code": region, "content_type": string(kind)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s items: %w", kind, err)
	}
	return n, nil
}

// CountMobileVisible counts non-empty mobile-visible rows, ignoring excludeID.
func (r *Repo) CountMobileVisible(ctx context.Context, region string, kind domain.Kind, excludeID int64) (int, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From("content_items").
		Where(squirrel.Eq{"region_code": region, "content_type": string(kind), "mobile_visible": true}).
		Where(squirrel.NotEq{"storage_key": nil, "id": excludeID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count mobile %s items: %w", kind, err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const lockPartitionSQL = `SELECT pg_advisory_xact_lock(hashtext($1::text || ':' || $2::text))`

// LockPartition serializes writers of one partition until the surrounding
// transaction ends. It must be called inside TxManager.RunInTx.
func (r *Repo) LockPartition(ctx context.Context, region string, kind domain.Kind) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, lockPartitionSQL, region, string(kind)); err != nil {
		return fmt.Errorf("lock %s/%s: %w", region, kind, err)
	}
	return nil
}

const createSQL = `
INSERT INTO content_items (
    region_code, content_type, storage_key, cdn_url, cdn_url_mobile, filename,
    alt_text, object_position, link_url, display_order, mobile_visible, is_active
)
VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9,
    (SELECT COALESCE(MAX(display_order) + 1, 0) FROM content_items WHERE region_code = $1 AND content_type = $2),
    $10, $11
)
` + returning

// Create appends item to the end of its partition.
// DisplayOrder on the input is ignored; the stored value is returned.
func (r *Repo) Create(ctx context.Context, item domain.ContentItem) (*domain.ContentItem, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		item.RegionCode, string(item.Kind),
		nullable(item.StorageKey), nullable(item.CDNURL), nullable(item.CDNURLMobile), nullable(item.Filename),
		item.AltText, defaultPosition(item.ObjectPosition), nullable(item.LinkURL),
		item.MobileVisible, item.IsActive,
	)

	it, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, item.RegionCode+"/"+string(item.Kind))
	}
	return &it, nil
}

const updateSQL = `
UPDATE content_items SET
    storage_key = $4, cdn_url = $5, cdn_url_mobile = $6, filename = $7,
    alt_text = $8, object_position = $9, link_url = $10,
    mobile_visible = $11, is_active = $12, updated_at = now()
WHERE id = $1 AND region_code = $2 AND content_type = $3
` + returning

// Update overwrites the mutable fields of an item. Order is not touched.
func (r *Repo) Update(ctx context.Context, item domain.ContentItem) (*domain.ContentItem, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateSQL,
		item.ID, item.RegionCode, string(item.Kind),
		nullable(item.StorageKey), nullable(item.CDNURL), nullable(item.CDNURLMobile), nullable(item.Filename),
		item.AltText, defaultPosition(item.ObjectPosition), nullable(item.LinkURL),
		item.MobileVisible, item.IsActive,
	)

	it, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, item.ID)
	}
	return &it, nil
}

const clearSQL = `
UPDATE content_items SET
    storage_key = NULL, cdn_url = NULL, cdn_url_mobile = NULL, filename = NULL,
    alt_text = '', mobile_visible = false, updated_at = now()
WHERE id = $1 AND region_code = $2 AND content_type = $3
` + returning

// Clear empties the image fields of a slot and keeps its position. The slot
// leaves the mobile subset, so refilling it never bypasses the mobile cap.
func (r *Repo) Clear(ctx context.Context, region string, kind domain.Kind, id int64) (*domain.ContentItem, error) {
	it, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, clearSQL, id, region, string(kind)))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &it, nil
}

const setActiveSQL = `
UPDATE content_items SET is_active = $4, updated_at = now()
WHERE id = $1 AND region_code = $2 AND content_type = $3
` + returning

// SetActive toggles is_active and returns the updated row.
func (r *Repo) SetActive(ctx context.Context, region string, kind domain.Kind, id int64, active bool) (*domain.ContentItem, error) {
	it, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, setActiveSQL, id, region, string(kind), active))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &it, nil
}

const setMobileVisibleSQL = `
UPDATE content_items SET mobile_visible = $4, updated_at = now()
WHERE id = $1 AND region_code = $2 AND content_type = $3
` + returning

// SetMobileVisible toggles mobile_visible and returns the updated row.
func (r *Repo) SetMobileVisible(ctx context.Context, region string, kind domain.Kind, id int64, visible bool) (*domain.ContentItem, error) {
	it, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, setMobileVisibleSQL, id, region, string(kind), visible))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &it, nil
}

const deleteSQL = `DELETE FROM content_items WHERE id = $1 AND region_code = $2 AND content_type = $3`

// Delete removes the row. Callers compact the partition afterwards.
func (r *Repo) Delete(ctx context.Context, region string, kind domain.Kind, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id, region, string(kind))
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

const compactSQL = `
UPDATE content_items c
SET display_order = o.pos, updated_at = now()
FROM (
    SELECT id, (row_number() OVER (ORDER BY display_order, id) - 1)::int AS pos
    FROM content_items
    WHERE region_code = $1 AND content_type = $2
) o
WHERE c.id = o.id AND c.display_order <> o.pos`

// Compact renumbers the partition to 0..N-1 preserving relative order.
func (r *Repo) Compact(ctx context.Context, region string, kind domain.Kind) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, compactSQL, region, string(kind)); err != nil {
		return fmt.Errorf("compact %s/%s: %w", region, kind, err)
	}
	return nil
}

const reorderSQL = `
UPDATE content_items SET display_order = $1, updated_at = now()
WHERE id = $2 AND region_code = $3 AND content_type = $4`

// Reorder sets display_order to the index of each id in ids.
// It issues one statement per id and must run inside TxManager.RunInTx so that
// a failure part-way leaves the partition untouched. The unique order constraint
// is deferred, so transient duplicates between statements are allowed.
func (r *Repo) Reorder(ctx context.Context, region string, kind domain.Kind, ids []int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	for i, id := range ids {
		tag, err := q.Exec(ctx, reorderSQL, i, id, region, string(kind))
		if err != nil {
			return postgres.MapError(err, entity, id)
		}
		if tag.RowsAffected() != 1 {
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (domain.ContentItem, error) {
	var (
		it                                         domain.ContentItem
		kind                                       string
		storageKey, cdnURL, cdnMobile, fname, link *string
		createdAt, updatedAt                       time.Time
	)
	err := row.Scan(
		&it.ID, &it.RegionCode, &kind, &storageKey, &cdnURL, &cdnMobile,
		&fname, &it.AltText, &it.ObjectPosition, &link, &it.DisplayOrder,
		&it.MobileVisible, &it.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return domain.ContentItem{}, err
	}
	it.Kind = domain.Kind(kind)
	it.StorageKey = deref(storageKey)
	it.CDNURL = deref(cdnURL)
	it.CDNURLMobile = deref(cdnMobile)
	it.Filename = deref(fname)
	it.LinkURL = deref(link)
	it.CreatedAt = createdAt
	it.UpdatedAt = updatedAt
	return it, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func defaultPosition(p string) string {
	if p == "" {
		return "center"
	}
	return p
}
