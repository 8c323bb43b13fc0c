package identity

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/Slawuu/Company-manager/internal/authz"
	identityerrors "github.com/Slawuu/Company-manager/internal/identity/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=identity_service.go -destination=mock/identity_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AccountResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AccountResponse, err error)
	Me(ctx context.Context, accountID string) (*AccountResponse, error)

	// CreateAccount is consumed by the employee module during paired
	// employee creation.
	CreateAccount(ctx context.Context, email, password string, role authz.Role) (uuid.UUID, error)
	UpdateEmail(ctx context.Context, accountID uuid.UUID, email string) error
	RolesByAccountIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]authz.Role, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("identity.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("identity.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AccountResponse, error) {
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", AccountResponse{}, identityerrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", "", AccountResponse{}, identityerrors.ErrInvalidCredentials
	}

	if !account.IsActive {
		return "", "", AccountResponse{}, identityerrors.ErrAccountInactive
	}

	employeeID, err := s.repo.EmployeeIDByAccount(ctx, account.ID)
	if err != nil {
		s.logger.Error("login resolve linked employee failed",
			zap.String("account_id", account.ID.String()),
			zap.Error(err),
		)
		return "", "", AccountResponse{}, err
	}

	accessToken, err := s.generateToken(account, employeeID, 15*time.Minute)
	if err != nil {
		return "", "", AccountResponse{}, identityerrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(account, employeeID, 7*24*time.Hour)
	if err != nil {
		return "", "", AccountResponse{}, identityerrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("account_id", account.ID.String()))

	return accessToken, refreshToken, mapToResponse(account, employeeID), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AccountResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, identityerrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", AccountResponse{}, identityerrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AccountResponse{}, identityerrors.ErrInvalidToken
	}

	accountIDStr, ok := claims["account_id"].(string)
	if !ok {
		return "", "", AccountResponse{}, identityerrors.ErrInvalidToken
	}
	accountID, err := uuid.Parse(accountIDStr)
	if err != nil {
		return "", "", AccountResponse{}, identityerrors.ErrInvalidToken
	}

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return "", "", AccountResponse{}, identityerrors.ErrAccountNotFound
	}

	employeeID, err := s.repo.EmployeeIDByAccount(ctx, account.ID)
	if err != nil {
		return "", "", AccountResponse{}, err
	}

	newAccessToken, err := s.generateToken(account, employeeID, 15*time.Minute)
	if err != nil {
		return "", "", AccountResponse{}, identityerrors.ErrTokenGenerationFailed
	}
	newRefreshToken, err := s.generateToken(account, employeeID, 7*24*time.Hour)
	if err != nil {
		return "", "", AccountResponse{}, identityerrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, mapToResponse(account, employeeID), nil
}

func (s *service) Me(ctx context.Context, accountID string) (*AccountResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, identityerrors.ErrInvalidToken
	}

	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, identityerrors.ErrAccountNotFound
		}
		return nil, err
	}

	employeeID, err := s.repo.EmployeeIDByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	resp := mapToResponse(account, employeeID)
	return &resp, nil
}

func (s *service) CreateAccount(ctx context.Context, email, password string, role authz.Role) (uuid.UUID, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, err
	}

	account := &Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         string(role),
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		s.logger.Warn("create account failed", zap.String("email", email), zap.Error(err))
		return uuid.Nil, mapRepositoryError(err)
	}

	s.logger.Info("account created",
		zap.String("account_id", account.ID.String()),
		zap.String("role", string(role)),
	)
	return account.ID, nil
}

func (s *service) UpdateEmail(ctx context.Context, accountID uuid.UUID, email string) error {
	if err := s.repo.UpdateEmail(ctx, accountID, email); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func (s *service) RolesByAccountIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]authz.Role, error) {
	raw, err := s.repo.RolesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	roles := make(map[uuid.UUID]authz.Role, len(raw))
	for id, name := range raw {
		role, err := authz.ParseRole(name)
		if err != nil {
			s.logger.Warn("skipping account with unknown role",
				zap.String("account_id", id.String()),
				zap.String("role", name),
			)
			continue
		}
		roles[id] = role
	}
	return roles, nil
}

func (s *service) generateToken(account *Account, employeeID *uuid.UUID, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"account_id": account.ID.String(),
		"role":       account.Role,
		"exp":        time.Now().Add(ttl).Unix(),
	}
	if employeeID != nil {
		claims["employee_id"] = employeeID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return identityerrors.ErrAccountNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return identityerrors.ErrEmailTaken
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return identityerrors.ErrEmailTaken
	}

	return err
}

func mapToResponse(account *Account, employeeID *uuid.UUID) AccountResponse {
	resp := AccountResponse{
		ID:    account.ID.String(),
		Email: account.Email,
		Role:  account.Role,
	}
	if employeeID != nil {
		v := employeeID.String()
		resp.EmployeeID = &v
	}
	return resp
}
