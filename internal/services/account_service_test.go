package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/pkg/utils"
)

type stubAccountRepo struct {
	byEmail map[string]*db_models.Account
	byID    map[string]*db_models.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{
		byEmail: make(map[string]*db_models.Account),
		byID:    make(map[string]*db_models.Account),
	}
}

func (s *stubAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if err := account.BeforeCreate(nil); err != nil {
		return err
	}
	s.byEmail[account.Email] = account
	s.byID[account.ID.String()] = account
	return nil
}

func (s *stubAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	return s.byID[id], nil
}

func (s *stubAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return s.byEmail[email], nil
}

func newTestAccountService() (AccountServiceInterface, *stubAccountRepo) {
	repo := newStubAccountRepo()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	return NewAccountService(repo, jwtManager), repo
}

func TestCreateAccountAndLogin(t *testing.T) {
	svc, _ := newTestAccountService()
	ctx := context.Background()

	err := svc.CreateAccount(ctx, request_models.SignUpRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "s3cret99",
	})
	require.NoError(t, err)

	login, err := svc.Login(ctx, request_models.LoginRequest{
		Email:    "asha@example.com",
		Password: "s3cret99",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "Asha", login.Account.Name)
	assert.Equal(t, "user", login.Account.Role)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	svc, _ := newTestAccountService()
	ctx := context.Background()

	req := request_models.SignUpRequest{Name: "Asha", Email: "asha@example.com", Password: "s3cret99"}
	require.NoError(t, svc.CreateAccount(ctx, req))

	err := svc.CreateAccount(ctx, req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestAccountService()
	ctx := context.Background()

	require.NoError(t, svc.CreateAccount(ctx, request_models.SignUpRequest{
		Name: "Asha", Email: "asha@example.com", Password: "s3cret99",
	}))

	_, err := svc.Login(ctx, request_models.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: "s3cret99"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestGetProfileUnknownAccount(t *testing.T) {
	svc, _ := newTestAccountService()

	_, err := svc.GetProfile(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
