package service

import (
	"context"
	"testing"

	"upsc_portal/internal/common"
	"upsc_portal/internal/common/security"
	"upsc_portal/internal/domain/model"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserService(users *fakeUserRepo, tokens *fakeTokenStore) *UserService {
	return NewUserService(users, tokens, validator.New(), zap.NewNop())
}

func validSignup() SignupRequest {
	return SignupRequest{
		FirstName: "Asha",
		LastName:  "Verma",
		Email:     "asha@example.com",
		Phone:     "9876543210",
		Password:  "correct-horse",
	}
}

func TestUserRegisterHashesPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := newUserService(users, newFakeTokenStore())

	user, err := svc.Register(context.Background(), validSignup())
	require.NoError(t, err)
	assert.Empty(t, user.HashedPassword)

	stored := users.users[user.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse", stored.HashedPassword)
	assert.True(t, security.CheckPasswordHash("correct-horse", stored.HashedPassword))
}

func TestUserRegisterValidation(t *testing.T) {
	svc := newUserService(newFakeUserRepo(), newFakeTokenStore())

	cases := map[string]func(*SignupRequest){
		"missing first name": func(r *SignupRequest) { r.FirstName = "" },
		"short first name":   func(r *SignupRequest) { r.FirstName = "A" },
		"bad email":          func(r *SignupRequest) { r.Email = "not-an-email" },
		"short phone":        func(r *SignupRequest) { r.Phone = "12345" },
		"alpha phone":        func(r *SignupRequest) { r.Phone = "98765fourg" },
		"short password":     func(r *SignupRequest) { r.Password = "short" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validSignup()
			mutate(&req)
			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	svc := newUserService(newFakeUserRepo(), newFakeTokenStore())

	_, err := svc.Register(context.Background(), validSignup())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validSignup())
	assert.ErrorIs(t, err, common.ErrConflict)
}

func seedUser(t *testing.T, users *fakeUserRepo, email, password string) *model.User {
	t.Helper()
	hash, err := security.HashPassword(password)
	require.NoError(t, err)
	user := &model.User{
		ID:             "user-1",
		FirstName:      "Asha",
		LastName:       "Verma",
		Email:          email,
		Phone:          "9876543210",
		HashedPassword: hash,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestUserLoginIssuesBearerToken(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newFakeTokenStore()
	svc := newUserService(users, tokens)
	seedUser(t, users, "asha@example.com", "correct-horse")

	token, err := svc.Login(context.Background(), LoginRequest{Email: "asha@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	assert.Regexp(t, "^Bearer ", token)
	// The raw token is recorded in the store for the right principal.
	assert.Equal(t, "user-1", tokens.issued[token[len("Bearer "):]])
}

func TestUserLoginWrongPassword(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newFakeTokenStore()
	svc := newUserService(users, tokens)
	seedUser(t, users, "asha@example.com", "correct-horse")

	_, err := svc.Login(context.Background(), LoginRequest{Email: "asha@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	// No token may be issued on a failed login.
	assert.Empty(t, tokens.issued)
}

func TestUserLoginUnknownEmail(t *testing.T) {
	svc := newUserService(newFakeUserRepo(), newFakeTokenStore())

	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever-password"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUserUpdatePassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := newUserService(users, newFakeTokenStore())
	seedUser(t, users, "asha@example.com", "correct-horse")

	err := svc.UpdatePassword(context.Background(), "user-1", UpdatePasswordRequest{Password: "new-password-1"})
	require.NoError(t, err)

	stored := users.users["user-1"]
	assert.True(t, security.CheckPasswordHash("new-password-1", stored.HashedPassword))
	assert.False(t, security.CheckPasswordHash("correct-horse", stored.HashedPassword))
}

func TestUserDelete(t *testing.T) {
	users := newFakeUserRepo()
	svc := newUserService(users, newFakeTokenStore())
	seedUser(t, users, "asha@example.com", "correct-horse")

	require.NoError(t, svc.Delete(context.Background(), "user-1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "user-1"), common.ErrNotFound)
}
