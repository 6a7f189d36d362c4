package api

import (
	"context"
	"fmt"
	"time"

	"upsc_portal/internal/common"
	"upsc_portal/internal/common/security"
	"upsc_portal/internal/common/timerange"
	"upsc_portal/internal/domain/model"
)

// In-memory repositories and stores backing the full router in tests. The
// token store signs with a real issuer so the verifier middleware accepts
// what it mints.

type memTokenStore struct {
	issuer *security.TokenIssuer
	valid  map[string]string
}

func newMemTokenStore(issuer *security.TokenIssuer) *memTokenStore {
	return &memTokenStore{issuer: issuer, valid: map[string]string{}}
}

func (s *memTokenStore) Issue(_ context.Context, principalID string) (string, error) {
	token, err := s.issuer.Sign(principalID)
	if err != nil {
		return "", err
	}
	s.valid[token] = principalID
	return token, nil
}

func (s *memTokenStore) IsValid(_ context.Context, token string) (bool, error) {
	_, ok := s.valid[token]
	return ok, nil
}

func (s *memTokenStore) Revoke(_ context.Context, token string) error {
	if _, ok := s.valid[token]; !ok {
		return common.ErrNotFound
	}
	delete(s.valid, token)
	return nil
}

type memResetStore struct {
	tokens map[string]string // token -> user id
	seq    int
}

func newMemResetStore() *memResetStore {
	return &memResetStore{tokens: map[string]string{}}
}

func (s *memResetStore) Create(_ context.Context, userID string) (string, error) {
	s.seq++
	token := fmt.Sprintf("reset-%d", s.seq)
	s.tokens[token] = userID
	return token, nil
}

func (s *memResetStore) Consume(_ context.Context, token string) (string, error) {
	userID, ok := s.tokens[token]
	if !ok {
		return "", common.ErrNotFound
	}
	delete(s.tokens, token)
	return userID, nil
}

type memUserRepo struct {
	users map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*model.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("email already registered: %w", common.ErrConflict)
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memUserRepo) UpdatePassword(_ context.Context, id, hashedPassword string) error {
	u, ok := r.users[id]
	if !ok {
		return common.ErrNotFound
	}
	u.HashedPassword = hashedPassword
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type memAdminRepo struct {
	admins map[string]*model.Admin
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{admins: map[string]*model.Admin{}}
}

func (r *memAdminRepo) Create(_ context.Context, admin *model.Admin) error {
	for _, a := range r.admins {
		if a.Email == admin.Email {
			return fmt.Errorf("email already registered: %w", common.ErrConflict)
		}
	}
	cp := *admin
	r.admins[admin.ID] = &cp
	return nil
}

func (r *memAdminRepo) FindByID(_ context.Context, id string) (*model.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memAdminRepo) FindByEmail(_ context.Context, email string) (*model.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

type memArticleRepo struct {
	articles map[string]*model.Article
	parents  map[string]*model.ParentArticle
}

func newMemArticleRepo() *memArticleRepo {
	return &memArticleRepo{
		articles: map[string]*model.Article{},
		parents:  map[string]*model.ParentArticle{},
	}
}

func (r *memArticleRepo) CreateArticle(_ context.Context, a *model.Article) error {
	cp := *a
	r.articles[a.ID] = &cp
	return nil
}

func (r *memArticleRepo) FindArticleByID(_ context.Context, id string) (*model.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memArticleRepo) FindArticleBySlug(_ context.Context, slug string) (*model.Article, error) {
	for _, a := range r.articles {
		if a.Slug == slug {
			cp := *a
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memArticleRepo) ListByParentSlug(_ context.Context, parentSlug string) ([]model.ArticleSummary, error) {
	summaries := []model.ArticleSummary{}
	for _, a := range r.articles {
		if a.ParentSlug == parentSlug {
			summaries = append(summaries, model.ArticleSummary{
				Title: a.Title, Tags: a.Tags, Slug: a.Slug, UpdatedAt: a.UpdatedAt,
			})
		}
	}
	return summaries, nil
}

func (r *memArticleRepo) UpdateArticle(_ context.Context, a *model.Article) error {
	if _, ok := r.articles[a.ID]; !ok {
		return common.ErrNotFound
	}
	cp := *a
	r.articles[a.ID] = &cp
	return nil
}

func (r *memArticleRepo) UpdateParentSlug(_ context.Context, slug, parentSlug string) error {
	for _, a := range r.articles {
		if a.Slug == slug {
			a.ParentSlug = parentSlug
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *memArticleRepo) DeleteArticle(_ context.Context, id string) error {
	if _, ok := r.articles[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.articles, id)
	return nil
}

func (r *memArticleRepo) CreateParent(_ context.Context, p *model.ParentArticle) error {
	if _, ok := r.parents[p.Slug]; ok {
		return fmt.Errorf("slug already taken: %w", common.ErrConflict)
	}
	cp := *p
	r.parents[p.Slug] = &cp
	return nil
}

func (r *memArticleRepo) FindParentBySlug(_ context.Context, slug string) (*model.ParentArticle, error) {
	p, ok := r.parents[slug]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memArticleRepo) UpdateParent(_ context.Context, p *model.ParentArticle) error {
	for slug, ex := range r.parents {
		if ex.ID == p.ID {
			delete(r.parents, slug)
			cp := *p
			r.parents[p.Slug] = &cp
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *memArticleRepo) DeleteParent(_ context.Context, slug string) error {
	if _, ok := r.parents[slug]; !ok {
		return common.ErrNotFound
	}
	delete(r.parents, slug)
	return nil
}

type memDatedRepo struct {
	items map[string]*model.DatedArticle
}

func newMemDatedRepo() *memDatedRepo {
	return &memDatedRepo{items: map[string]*model.DatedArticle{}}
}

func (r *memDatedRepo) Create(_ context.Context, a *model.DatedArticle) error {
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *memDatedRepo) FindByID(_ context.Context, id string) (*model.DatedArticle, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memDatedRepo) ListInRange(_ context.Context, typ timerange.Granularity, start, end time.Time) ([]model.DatedArticle, error) {
	matches := []model.DatedArticle{}
	for _, a := range r.items {
		if a.Type == typ && !a.Date.Before(start) && a.Date.Before(end) {
			matches = append(matches, *a)
		}
	}
	return matches, nil
}

func (r *memDatedRepo) Update(_ context.Context, a *model.DatedArticle) error {
	if _, ok := r.items[a.ID]; !ok {
		return common.ErrNotFound
	}
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *memDatedRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type memContactRepo struct {
	messages []*model.ContactMessage
}

func (r *memContactRepo) Create(_ context.Context, m *model.ContactMessage) error {
	cp := *m
	r.messages = append(r.messages, &cp)
	return nil
}
