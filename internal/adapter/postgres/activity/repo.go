// Package activity implements the append-only activity log repository using PostgreSQL.
// There are no update or delete operations; the table rejects them with a trigger.
package activity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/regional-site-backend/internal/adapter/postgres"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

const entity = "activity_log"

var columns = []string{
	"id", "action_type", "entity_type", "entity_id", "old_values", "new_values",
	"actor_id", "ip_address", "user_agent", "created_at",
}

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new activity repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO activity_logs (id, action_type, entity_type, entity_id, old_values, new_values, actor_id, ip_address, user_agent, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// Create inserts a new activity entry.
func (r *Repo) Create(ctx context.Context, e domain.ActivityEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	oldJSON, err := marshalValues(e.OldValues)
	if err != nil {
		return fmt.Errorf("activity_log marshal old_values: %w", err)
	}
	newJSON, err := marshalValues(e.NewValues)
	if err != nil {
		return fmt.Errorf("activity_log marshal new_values: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, createSQL,
		e.ID, string(e.ActionType), string(e.EntityType), e.EntityID,
		oldJSON, newJSON, e.ActorID, e.IPAddress, e.UserAgent, e.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, entity, e.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns a newest-first page of entries matching f together with the
// total number of matches. f must already be normalized.
func (r *Repo) List(ctx context.Context, f domain.ActivityFilter) ([]domain.ActivityEntry, int, error) {
	where := predicates(f)
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("activity_logs").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count activity logs: %w", err)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns...).
		From("activity_logs").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ActivityEntry, 0, f.Limit)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan activity log: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list activity logs: %w", err)
	}
	return out, total, nil
}

// GetByID returns a single entry.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ActivityEntry, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("activity_logs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	e, err := scanEntry(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &e, nil
}

func predicates(f domain.ActivityFilter) squirrel.And {
	where := squirrel.And{}
	if f.ActionType != nil {
		where = append(where, squirrel.Eq{"action_type": string(*f.ActionType)})
	}
	if f.EntityType != nil {
		where = append(where, squirrel.Eq{"entity_type": string(*f.EntityType)})
	}
	if f.ActorID != nil {
		where = append(where, squirrel.Eq{"actor_id": *f.ActorID})
	}
	if f.StartDate != nil {
		where = append(where, squirrel.GtOrEq{"created_at": *f.StartDate})
	}
	if f.EndDate != nil {
		where = append(where, squirrel.LtOrEq{"created_at": *f.EndDate})
	}
	return where
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (domain.ActivityEntry, error) {
	var (
		e                domain.ActivityEntry
		action, kind     string
		oldJSON, newJSON []byte
	)
	err := row.Scan(
		&e.ID, &action, &kind, &e.EntityID, &oldJSON, &newJSON,
		&e.ActorID, &e.IPAddress, &e.UserAgent, &e.CreatedAt,
	)
	if err != nil {
		return domain.ActivityEntry{}, err
	}
	e.ActionType = domain.ActionType(action)
	e.EntityType = domain.EntityType(kind)

	if e.OldValues, err = unmarshalValues(oldJSON); err != nil {
		return domain.ActivityEntry{}, fmt.Errorf("unmarshal old_values: %w", err)
	}
	if e.NewValues, err = unmarshalValues(newJSON); err != nil {
		return domain.ActivityEntry{}, fmt.Errorf("unmarshal new_values: %w", err)
	}
	return e, nil
}

func marshalValues(v map[string]any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func unmarshalValues(b []byte) (map[string]any, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
