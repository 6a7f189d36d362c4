package service

import (
	"context"
	"fmt"
	"time"

	"upsc_portal/internal/common"
	"upsc_portal/internal/common/timerange"
	"upsc_portal/internal/domain/model"
)

// In-memory stand-ins for the Postgres repositories and the Redis token
// store, shared by the service tests.

type fakeUserRepo struct {
	users map[string]*model.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, hashedPassword string) error {
	u, ok := f.users[id]
	if !ok {
		return common.ErrNotFound
	}
	u.HashedPassword = hashedPassword
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeAdminRepo struct {
	admins map[string]*model.Admin // by id
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*model.Admin{}}
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *model.Admin) error {
	for _, a := range f.admins {
		if a.Email == admin.Email {
			return fmt.Errorf("admin with given email already exists: %w", common.ErrConflict)
		}
	}
	cp := *admin
	f.admins[admin.ID] = &cp
	return nil
}

func (f *fakeAdminRepo) FindByID(_ context.Context, id string) (*model.Admin, error) {
	a, ok := f.admins[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*model.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

type fakeTokenStore struct {
	issued map[string]string // token -> principal id
	seq    int
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{issued: map[string]string{}}
}

func (f *fakeTokenStore) Issue(_ context.Context, principalID string) (string, error) {
	f.seq++
	token := fmt.Sprintf("tok-%d-%s", f.seq, principalID)
	f.issued[token] = principalID
	return token, nil
}

func (f *fakeTokenStore) IsValid(_ context.Context, token string) (bool, error) {
	_, ok := f.issued[token]
	return ok, nil
}

func (f *fakeTokenStore) Revoke(_ context.Context, token string) error {
	if _, ok := f.issued[token]; !ok {
		return common.ErrNotFound
	}
	delete(f.issued, token)
	return nil
}

type fakeArticleRepo struct {
	articles map[string]*model.Article       // by id
	parents  map[string]*model.ParentArticle // by slug
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		articles: map[string]*model.Article{},
		parents:  map[string]*model.ParentArticle{},
	}
}

func (f *fakeArticleRepo) CreateArticle(_ context.Context, a *model.Article) error {
	for _, ex := range f.articles {
		if ex.Slug == a.Slug {
			return fmt.Errorf("article with this slug already exists: %w", common.ErrConflict)
		}
	}
	cp := *a
	f.articles[a.ID] = &cp
	return nil
}

func (f *fakeArticleRepo) FindArticleByID(_ context.Context, id string) (*model.Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeArticleRepo) FindArticleBySlug(_ context.Context, slug string) (*model.Article, error) {
	for _, a := range f.articles {
		if a.Slug == slug {
			cp := *a
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeArticleRepo) ListByParentSlug(_ context.Context, parentSlug string) ([]model.ArticleSummary, error) {
	summaries := []model.ArticleSummary{}
	for _, a := range f.articles {
		if a.ParentSlug == parentSlug {
			summaries = append(summaries, model.ArticleSummary{
				Title: a.Title, Tags: a.Tags, Slug: a.Slug, UpdatedAt: a.UpdatedAt,
			})
		}
	}
	return summaries, nil
}

func (f *fakeArticleRepo) UpdateArticle(_ context.Context, a *model.Article) error {
	if _, ok := f.articles[a.ID]; !ok {
		return common.ErrNotFound
	}
	cp := *a
	f.articles[a.ID] = &cp
	return nil
}

func (f *fakeArticleRepo) UpdateParentSlug(_ context.Context, slug, parentSlug string) error {
	for _, a := range f.articles {
		if a.Slug == slug {
			a.ParentSlug = parentSlug
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeArticleRepo) DeleteArticle(_ context.Context, id string) error {
	if _, ok := f.articles[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.articles, id)
	return nil
}

func (f *fakeArticleRepo) CreateParent(_ context.Context, p *model.ParentArticle) error {
	if _, ok := f.parents[p.Slug]; ok {
		return fmt.Errorf("parent article with this slug already exists: %w", common.ErrConflict)
	}
	cp := *p
	f.parents[p.Slug] = &cp
	return nil
}

func (f *fakeArticleRepo) FindParentBySlug(_ context.Context, slug string) (*model.ParentArticle, error) {
	p, ok := f.parents[slug]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeArticleRepo) UpdateParent(_ context.Context, p *model.ParentArticle) error {
	for slug, ex := range f.parents {
		if ex.ID == p.ID {
			delete(f.parents, slug)
			cp := *p
			f.parents[p.Slug] = &cp
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeArticleRepo) DeleteParent(_ context.Context, slug string) error {
	if _, ok := f.parents[slug]; !ok {
		return common.ErrNotFound
	}
	delete(f.parents, slug)
	return nil
}

type fakeDatedRepo struct {
	items map[string]*model.DatedArticle

	lastType  timerange.Granularity
	lastStart time.Time
	lastEnd   time.Time
}

func newFakeDatedRepo() *fakeDatedRepo {
	return &fakeDatedRepo{items: map[string]*model.DatedArticle{}}
}

func (f *fakeDatedRepo) Create(_ context.Context, a *model.DatedArticle) error {
	cp := *a
	f.items[a.ID] = &cp
	return nil
}

func (f *fakeDatedRepo) FindByID(_ context.Context, id string) (*model.DatedArticle, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeDatedRepo) ListInRange(_ context.Context, typ timerange.Granularity, start, end time.Time) ([]model.DatedArticle, error) {
	f.lastType, f.lastStart, f.lastEnd = typ, start, end

	matches := []model.DatedArticle{}
	for _, a := range f.items {
		if a.Type == typ && !a.Date.Before(start) && a.Date.Before(end) {
			matches = append(matches, *a)
		}
	}
	return matches, nil
}

func (f *fakeDatedRepo) Update(_ context.Context, a *model.DatedArticle) error {
	if _, ok := f.items[a.ID]; !ok {
		return common.ErrNotFound
	}
	cp := *a
	f.items[a.ID] = &cp
	return nil
}

func (f *fakeDatedRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.items, id)
	return nil
}
