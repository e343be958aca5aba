package services_test

import (
	"context"
	"testing"

	"agrodoc/models"
	"agrodoc/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	usersByEmail map[string]*models.User
	usersByToken map[string]*models.User
	created      []*models.User
	updated      []*models.User
	createErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		usersByEmail: map[string]*models.User{},
		usersByToken: map[string]*models.User{},
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, user)
	f.usersByEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := f.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByConfirmToken(ctx context.Context, token string) (*models.User, error) {
	if u, ok := f.usersByToken[token]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	f.updated = append(f.updated, user)
	return nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	repo.usersByEmail["ops@agrodoc.com"] = &models.User{
		Email:          "ops@agrodoc.com",
		PasswordHash:   mustHash(t, "correct horse"),
		EmailConfirmed: true,
	}
	svc := services.NewAuthService(repo, zap.NewNop())

	user, serr := svc.Login(context.Background(), "  Ops@Agrodoc.com ", "correct horse")

	assert.Nil(t, serr)
	assert.Equal(t, "ops@agrodoc.com", user.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	repo.usersByEmail["ops@agrodoc.com"] = &models.User{
		Email:        "ops@agrodoc.com",
		PasswordHash: mustHash(t, "correct horse"),
	}
	svc := services.NewAuthService(repo, zap.NewNop())

	_, serr := svc.Login(context.Background(), "ops@agrodoc.com", "battery staple")

	assert.NotNil(t, serr)
	assert.Equal(t, 401, serr.StatusCode)
}

func TestLogin_UnknownEmailSameMessage(t *testing.T) {
	repo := newFakeUserRepo()
	repo.usersByEmail["ops@agrodoc.com"] = &models.User{
		Email:        "ops@agrodoc.com",
		PasswordHash: mustHash(t, "correct horse"),
	}
	svc := services.NewAuthService(repo, zap.NewNop())

	_, unknownErr := svc.Login(context.Background(), "nobody@agrodoc.com", "whatever")
	_, wrongErr := svc.Login(context.Background(), "ops@agrodoc.com", "wrong")

	assert.Equal(t, 401, unknownErr.StatusCode)
	// Unknown email and wrong password must be indistinguishable.
	assert.Equal(t, wrongErr.Message, unknownErr.Message)
}

func TestLogin_MissingFields(t *testing.T) {
	svc := services.NewAuthService(newFakeUserRepo(), zap.NewNop())

	_, serr := svc.Login(context.Background(), "", "")

	assert.Equal(t, 400, serr.StatusCode)
}

func TestSignup_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := services.NewAuthService(repo, zap.NewNop())

	user, serr := svc.Signup(context.Background(), "New@Agrodoc.com", "long enough")

	assert.Nil(t, serr)
	assert.Equal(t, "new@agrodoc.com", user.Email)
	assert.False(t, user.EmailConfirmed)
	assert.NotEmpty(t, user.ConfirmToken)
	assert.NotEqual(t, "long enough", user.PasswordHash)
	assert.Len(t, repo.created, 1)
}

func TestSignup_ShortPassword(t *testing.T) {
	svc := services.NewAuthService(newFakeUserRepo(), zap.NewNop())

	_, serr := svc.Signup(context.Background(), "new@agrodoc.com", "short")

	assert.Equal(t, 400, serr.StatusCode)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.usersByEmail["taken@agrodoc.com"] = &models.User{Email: "taken@agrodoc.com"}
	svc := services.NewAuthService(repo, zap.NewNop())

	_, serr := svc.Signup(context.Background(), "taken@agrodoc.com", "long enough")

	assert.Equal(t, 409, serr.StatusCode)
}

func TestConfirm(t *testing.T) {
	repo := newFakeUserRepo()
	repo.usersByToken["tok-123"] = &models.User{
		Email:        "new@agrodoc.com",
		ConfirmToken: "tok-123",
	}
	svc := services.NewAuthService(repo, zap.NewNop())

	serr := svc.Confirm(context.Background(), "tok-123")

	assert.Nil(t, serr)
	assert.Len(t, repo.updated, 1)
	assert.True(t, repo.updated[0].EmailConfirmed)
	assert.Empty(t, repo.updated[0].ConfirmToken)
}

func TestConfirm_UnknownToken(t *testing.T) {
	svc := services.NewAuthService(newFakeUserRepo(), zap.NewNop())

	serr := svc.Confirm(context.Background(), "nope")

	assert.Equal(t, 404, serr.StatusCode)
}
