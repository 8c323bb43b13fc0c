package identity_test

import (
	"context"
	"testing"

	"github.com/Slawuu/Company-manager/internal/authz"
	"github.com/Slawuu/Company-manager/internal/identity"
	identityerrors "github.com/Slawuu/Company-manager/internal/identity/errors"
	identityMock "github.com/Slawuu/Company-manager/internal/identity/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type serviceDeps struct {
	service identity.Service
	repo    *identityMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	repo := identityMock.NewMockRepository(ctrl)
	svc := identity.NewService(repo)

	return &serviceDeps{service: svc, repo: repo}
}

func accountWithPassword(t *testing.T, password string) *identity.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &identity.Account{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: string(hash),
		Role:         "EMPLOYEE",
		IsActive:     true,
	}
}

func TestIdentityService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials yield both tokens and the linked employee", func(t *testing.T) {
		deps := setupServiceTest(t)

		account := accountWithPassword(t, "s3cret-pass")
		employeeID := uuid.New()

		deps.repo.EXPECT().GetByEmail(ctx, account.Email).Return(account, nil)
		deps.repo.EXPECT().EmployeeIDByAccount(ctx, account.ID).Return(&employeeID, nil)

		access, refresh, resp, err := deps.service.Login(ctx, account.Email, "s3cret-pass")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, account.ID.String(), resp.ID)
		assert.Equal(t, employeeID.String(), *resp.EmployeeID)
	})

	t.Run("wrong password reads the same as an unknown email", func(t *testing.T) {
		deps := setupServiceTest(t)

		account := accountWithPassword(t, "s3cret-pass")
		deps.repo.EXPECT().GetByEmail(ctx, account.Email).Return(account, nil)

		_, _, _, err := deps.service.Login(ctx, account.Email, "wrong")

		assert.ErrorIs(t, err, identityerrors.ErrInvalidCredentials)
	})

	t.Run("inactive account cannot log in", func(t *testing.T) {
		deps := setupServiceTest(t)

		account := accountWithPassword(t, "s3cret-pass")
		account.IsActive = false
		deps.repo.EXPECT().GetByEmail(ctx, account.Email).Return(account, nil)

		_, _, _, err := deps.service.Login(ctx, account.Email, "s3cret-pass")

		assert.ErrorIs(t, err, identityerrors.ErrAccountInactive)
	})
}

func TestIdentityService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("a fresh pair is minted from a valid refresh token", func(t *testing.T) {
		deps := setupServiceTest(t)

		account := accountWithPassword(t, "s3cret-pass")
		deps.repo.EXPECT().GetByEmail(ctx, account.Email).Return(account, nil)
		deps.repo.EXPECT().EmployeeIDByAccount(ctx, account.ID).Return(nil, nil)

		_, refresh, _, err := deps.service.Login(ctx, account.Email, "s3cret-pass")
		require.NoError(t, err)

		deps.repo.EXPECT().GetByID(ctx, account.ID).Return(account, nil)
		deps.repo.EXPECT().EmployeeIDByAccount(ctx, account.ID).Return(nil, nil)

		newAccess, newRefresh, resp, err := deps.service.RefreshToken(ctx, refresh)

		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, account.ID.String(), resp.ID)
	})

	t.Run("garbage tokens are rejected", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, _, _, err := deps.service.RefreshToken(ctx, "not-a-jwt")

		assert.ErrorIs(t, err, identityerrors.ErrInvalidRefreshToken)
	})
}

func TestIdentityService_CreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a bcrypt hash, never the password", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, account *identity.Account) error {
				assert.NotEqual(t, "s3cret-pass", account.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(account.PasswordHash), []byte("s3cret-pass")))
				assert.True(t, account.IsActive)
				assert.Equal(t, "MANAGER", account.Role)
				return nil
			})

		id, err := deps.service.CreateAccount(ctx, "ada@example.com", "s3cret-pass", authz.RoleManager)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("duplicate email maps to a conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_accounts_email"})

		_, err := deps.service.CreateAccount(ctx, "ada@example.com", "s3cret-pass", authz.RoleEmployee)

		assert.ErrorIs(t, err, identityerrors.ErrEmailTaken)
	})
}

func TestIdentityService_RolesByAccountIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown roles are skipped, not fatal", func(t *testing.T) {
		deps := setupServiceTest(t)

		good := uuid.New()
		bad := uuid.New()
		ids := []uuid.UUID{good, bad}

		deps.repo.EXPECT().
			RolesByIDs(ctx, ids).
			Return(map[uuid.UUID]string{good: "HR", bad: "SUPERUSER"}, nil)

		roles, err := deps.service.RolesByAccountIDs(ctx, ids)

		assert.NoError(t, err)
		assert.Equal(t, map[uuid.UUID]authz.Role{good: authz.RoleHR}, roles)
	})
}
