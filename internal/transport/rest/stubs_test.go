package rest

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
	"github.com/heartmarshall/regional-site-backend/internal/service/auth"
	"github.com/heartmarshall/regional-site-backend/internal/service/content"
	"github.com/heartmarshall/regional-site-backend/internal/service/page"
	"github.com/heartmarshall/regional-site-backend/internal/service/public"
	"github.com/heartmarshall/regional-site-backend/internal/service/region"
	"github.com/heartmarshall/regional-site-backend/internal/service/user"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Stubs below return zero values for any function left nil.

type authStub struct {
	login func(ctx context.Context, in auth.LoginInput) (*auth.LoginResult, error)
	me    func(ctx context.Context) (*domain.User, error)
}

func (s *authStub) Login(ctx context.Context, in auth.LoginInput) (*auth.LoginResult, error) {
	return s.login(ctx, in)
}
func (s *authStub) Logout(context.Context) error { return nil }
func (s *authStub) Me(ctx context.Context) (*domain.User, error) {
	return s.me(ctx)
}

type contentStub struct {
	list       func(ctx context.Context, region string, kind domain.Kind) ([]domain.ContentItem, error)
	create     func(ctx context.Context, in content.CreateInput) (*domain.ContentItem, error)
	update     func(ctx context.Context, in content.UpdateInput) (*domain.ContentItem, error)
	del        func(ctx context.Context, region string, kind domain.Kind, id int64) error
	reorder    func(ctx context.Context, in content.ReorderInput) ([]domain.ContentItem, error)
	visibility func(ctx context.Context, in content.MobileVisibilityInput) (*domain.ContentItem, error)
	open       func(ctx context.Context, key string) (io.ReadCloser, error)
}

func (s *contentStub) List(ctx context.Context, region string, kind domain.Kind) ([]domain.ContentItem, error) {
	return s.list(ctx, region, kind)
}
func (s *contentStub) Get(ctx context.Context, region string, kind domain.Kind, id int64) (*domain.ContentItem, error) {
	return &domain.ContentItem{ID: id, RegionCode: region, Kind: kind}, nil
}
func (s *contentStub) Create(ctx context.Context, in content.CreateInput) (*domain.ContentItem, error) {
	return s.create(ctx, in)
}
func (s *contentStub) Update(ctx context.Context, in content.UpdateInput) (*domain.ContentItem, error) {
	return s.update(ctx, in)
}
func (s *contentStub) Delete(ctx context.Context, region string, kind domain.Kind, id int64) error {
	return s.del(ctx, region, kind, id)
}
func (s *contentStub) Reorder(ctx context.Context, in content.ReorderInput) ([]domain.ContentItem, error) {
	return s.reorder(ctx, in)
}
func (s *contentStub) SetMobileVisibility(ctx context.Context, in content.MobileVisibilityInput) (*domain.ContentItem, error) {
	return s.visibility(ctx, in)
}
func (s *contentStub) OpenImage(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.open(ctx, key)
}

type regionStub struct {
	regions []domain.Region
	err     error
	created region.CreateInput
	updated region.UpdateInput
}

func (s *regionStub) List(context.Context) ([]domain.Region, error) { return s.regions, s.err }
func (s *regionStub) Get(_ context.Context, code string) (*domain.Region, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Region{Code: code}, nil
}
func (s *regionStub) Create(_ context.Context, in region.CreateInput) (*domain.Region, error) {
	s.created = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Region{Code: in.Code, Name: in.Name, IsActive: true}, nil
}
func (s *regionStub) Update(_ context.Context, in region.UpdateInput) (*domain.Region, error) {
	s.updated = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Region{Code: in.Code}, nil
}
func (s *regionStub) Delete(_ context.Context, code string) (*domain.Region, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Region{Code: code, IsActive: false}, nil
}

type userStub struct {
	filter  domain.UserFilter
	created user.CreateInput
	updated user.UpdateInput
	deleted uuid.UUID
	err     error
}

func (s *userStub) List(_ context.Context, f domain.UserFilter) ([]domain.User, error) {
	s.filter = f
	return []domain.User{{ID: uuid.New(), Username: "ed", Role: domain.UserRoleAdmin}}, s.err
}
func (s *userStub) Get(_ context.Context, id uuid.UUID) (*domain.User, error) {
	return &domain.User{ID: id}, s.err
}
func (s *userStub) Create(_ context.Context, in user.CreateInput) (*domain.User, error) {
	s.created = in
	return &domain.User{ID: uuid.New(), Username: in.Username, Role: in.Role}, s.err
}
func (s *userStub) Update(_ context.Context, in user.UpdateInput) (*domain.User, error) {
	s.updated = in
	return &domain.User{ID: in.ID}, s.err
}
func (s *userStub) Delete(_ context.Context, id uuid.UUID) error {
	s.deleted = id
	return s.err
}

type activityStub struct {
	filter domain.ActivityFilter
	page   *domain.ActivityPage
	err    error
}

func (s *activityStub) List(_ context.Context, f domain.ActivityFilter) (*domain.ActivityPage, error) {
	s.filter = f
	return s.page, s.err
}
func (s *activityStub) Get(_ context.Context, id uuid.UUID) (*domain.ActivityEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.ActivityEntry{ID: id, ActionType: domain.ActionLogout}, nil
}

type pageStub struct {
	upserted page.UpsertInput
	deleted  [2]string
	err      error
}

func (s *pageStub) List(_ context.Context, region string) ([]domain.PageSection, error) {
	return []domain.PageSection{{RegionCode: region, Key: "about", BodyMarkdown: "**hi**", BodyHTML: "<p><strong>hi</strong></p>"}}, s.err
}
func (s *pageStub) Get(_ context.Context, region, key string) (*domain.PageSection, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.PageSection{RegionCode: region, Key: key}, nil
}
func (s *pageStub) Upsert(_ context.Context, in page.UpsertInput) (*domain.PageSection, error) {
	s.upserted = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.PageSection{RegionCode: in.Region, Key: in.Key, Title: in.Title, BodyMarkdown: in.Body}, nil
}
func (s *pageStub) Delete(_ context.Context, region, key string) error {
	s.deleted = [2]string{region, key}
	return s.err
}

type publicStub struct {
	mobile bool
	kind   domain.Kind
	host   string
	err    error
}

func (s *publicStub) Regions(context.Context) ([]domain.Region, error) {
	return []domain.Region{{Code: "US", IsActive: true, IsDefault: true}}, s.err
}
func (s *publicStub) Resolve(_ context.Context, host, path string) (*domain.Region, error) {
	s.host = host
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Region{Code: "AE", Route: path}, nil
}
func (s *publicStub) Items(_ context.Context, region string, kind domain.Kind, mobileOnly bool) ([]domain.ContentItem, error) {
	s.kind, s.mobile = kind, mobileOnly
	return []domain.ContentItem{{ID: 1, RegionCode: region, Kind: kind}}, s.err
}
func (s *publicStub) Pages(_ context.Context, region string) ([]domain.PageSection, error) {
	return []domain.PageSection{{RegionCode: region, Key: "about", BodyMarkdown: "secret source", BodyHTML: "<p>x</p>"}}, s.err
}
func (s *publicStub) Home(_ context.Context, region string, mobileOnly bool) (*public.Home, error) {
	s.mobile = mobileOnly
	if s.err != nil {
		return nil, s.err
	}
	return &public.Home{
		Region: domain.Region{Code: region},
		Slider: []domain.ContentItem{{ID: 1, Kind: domain.KindSlider}},
		Pages:  []domain.PageSection{{Key: "about", BodyHTML: "<p>x</p>"}},
	}, nil
}
