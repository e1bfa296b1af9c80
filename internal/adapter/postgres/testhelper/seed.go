package testhelper

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

var regionSeq atomic.Int32

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NextRegionCode returns a two-letter code not yet handed out in this test binary.
// Codes start at "QA" to stay clear of hand-written fixtures such as "US".
func NextRegionCode() string {
	n := int(regionSeq.Add(1)) + 16*26
	return string([]byte{byte('A' + (n/26)%26), byte('A' + n%26)})
}

// SeedRegion inserts an active, non-default region reachable by route.
func SeedRegion(t *testing.T, pool *pgxpool.Pool) domain.Region {
	t.Helper()

	code := NextRegionCode()
	now := time.Now().UTC().Truncate(time.Microsecond)
	r := domain.Region{
		Code:      code,
		Name:      "Region " + code,
		Route:     "/" + uniqueSuffix(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO regions (code, name, route, is_active, is_default, created_at, updated_at)
		 VALUES ($1, $2, $3, TRUE, FALSE, $4, $5)`,
		r.Code, r.Name, r.Route, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRegion: %v", err)
	}
	return r
}

// SeedUser inserts an active admin assigned to the given regions.
func SeedUser(t *testing.T, pool *pgxpool.Pool, regions ...string) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	if regions == nil {
		regions = []string{}
	}
	u := domain.User{
		ID:              uuid.New(),
		Username:        "admin-" + suffix,
		Email:           "admin-" + suffix + "@example.com",
		Name:            "Admin " + suffix,
		PasswordHash:    "$2a$04$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva",
		Role:            domain.UserRoleAdmin,
		AssignedRegions: regions,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, name, password_hash, role, assigned_regions, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, $8, $9)`,
		u.ID, u.Username, u.Email, u.Name, u.PasswordHash, string(u.Role), u.AssignedRegions, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedContent appends n items of kind to the region's partition with orders 0..n-1.
func SeedContent(t *testing.T, pool *pgxpool.Pool, region string, kind domain.Kind, n int) []domain.ContentItem {
	t.Helper()
	ctx := context.Background()

	items := make([]domain.ContentItem, 0, n)
	for i := range n {
		it := domain.ContentItem{
			RegionCode:     region,
			Kind:           kind,
			StorageKey:     fmt.Sprintf("%s/test/%s.jpg", kind, uniqueSuffix()),
			Filename:       fmt.Sprintf("image-%d.jpg", i),
			AltText:        fmt.Sprintf("image %d", i),
			ObjectPosition: "center",
			DisplayOrder:   i,
			MobileVisible:  true,
			IsActive:       true,
		}
		it.CDNURL = "https://cdn.example.com/" + it.StorageKey

		err := pool.QueryRow(ctx,
			`INSERT INTO content_items (region_code, content_type, storage_key, cdn_url, filename, alt_text, object_position, display_order)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING id, created_at, updated_at`,
			it.RegionCode, string(it.Kind), it.StorageKey, it.CDNURL, it.Filename, it.AltText, it.ObjectPosition, it.DisplayOrder,
		).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
		if err != nil {
			t.Fatalf("testhelper: SeedContent: %v", err)
		}
		items = append(items, it)
	}
	return items
}
