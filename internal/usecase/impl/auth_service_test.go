package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAuthService(txManager, hasher, tokenService, logger)

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_RegisterConsumer_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterConsumerInput{
		Name:     "Aigerim",
		Email:    "aigerim@example.com",
		Phone:    "+77011234567",
		Password: "secret123",
	}

	fx.hasher.EXPECT().Hash("secret123").Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterConsumer(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.Equal(t, entity.RoleConsumer, output.User.Role)
	assert.Equal(t, "hashed-password", output.User.PasswordHash)
	assert.True(t, output.User.Active)
	assert.Nil(t, output.User.SupplierID)
	assert.Nil(t, output.Supplier)
}

func TestAuthService_RegisterConsumer_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterConsumerInput{Email: "taken@example.com", Password: "secret123"}

	fx.hasher.EXPECT().Hash("secret123").Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterConsumer(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserAlreadyExists.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_RegisterSupplier_CreatesCompanyAndOwner(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterSupplierInput{
		OwnerName:   "Dastan",
		Email:       "owner@aqbota.kz",
		Password:    "secret123",
		CompanyName: "Aqbota Trade",
		BIN:         "123456789012",
		City:        "Almaty",
	}

	fx.hasher.EXPECT().Hash("secret123").Return("hashed-password", nil)

	supplierID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSupplierRepo := mockRepo.NewMockSupplierRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewSupplierRepository().Return(mockSupplierRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
			mockSupplierRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Supplier")).
				Run(func(ctx context.Context, supplier *entity.Supplier) {
					supplier.ID = supplierID
				}).
				Return(nil)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterSupplier(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output.Supplier)
	assert.Equal(t, "Aqbota Trade", output.Supplier.CompanyName)
	assert.Equal(t, "123456789012", output.Supplier.BIN)
	require.NotNil(t, output.User)
	assert.Equal(t, entity.RoleOwner, output.User.Role)
	require.NotNil(t, output.User.SupplierID)
	assert.Equal(t, supplierID, *output.User.SupplierID)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "aigerim@example.com",
		PasswordHash: "hashed-password",
		Role:         entity.RoleConsumer,
		Active:       true,
	}

	fx.hasher.EXPECT().Check("secret123", "hashed-password").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"consumer"}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockTokenRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
			mockTokenRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*repository.RefreshToken")).
				Run(func(ctx context.Context, token *repository.RefreshToken) {
					assert.Equal(t, userID, token.UserID)
					assert.Equal(t, hashToken("refresh-token"), token.TokenHash)
					assert.True(t, token.ExpiresAt.After(time.Now()))
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "aigerim@example.com",
		PasswordHash: "hashed-password",
		Role:         entity.RoleConsumer,
		Active:       true,
	}

	fx.hasher.EXPECT().Check("wrong", "hashed-password").Return(false)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockTokenRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "blocked@example.com",
		PasswordHash: "hashed-password",
		Role:         entity.RoleSales,
		Active:       false,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockTokenRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret123"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserInactive.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	recordID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RoleConsumer, Active: true}
	record := &repository.RefreshToken{
		ID:        recordID,
		UserID:    userID,
		TokenHash: hashToken("old-refresh"),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"consumer"}).
		Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockTokenRepo)

			mockTokenRepo.EXPECT().FindByHash(ctx, hashToken("old-refresh")).Return(record, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockTokenRepo.EXPECT().Revoke(ctx, recordID).Return(nil)
			mockTokenRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*repository.RefreshToken")).
				Run(func(ctx context.Context, token *repository.RefreshToken) {
					assert.Equal(t, hashToken("new-refresh"), token.TokenHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old-refresh"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_Refresh_RevokedToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	record := &repository.RefreshToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TokenHash: hashToken("revoked-refresh"),
		ExpiresAt: time.Now().Add(time.Hour),
		Revoked:   true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockTokenRepo)

			mockTokenRepo.EXPECT().FindByHash(ctx, hashToken("revoked-refresh")).Return(record, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "revoked-refresh"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrRefreshTokenInvalid.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	recordID := uuid.New()
	record := &repository.RefreshToken{ID: recordID, TokenHash: hashToken("refresh-token")}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockTokenRepo)

			mockTokenRepo.EXPECT().FindByHash(ctx, hashToken("refresh-token")).Return(record, nil)
			mockTokenRepo.EXPECT().Revoke(ctx, recordID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Logout(ctx, "refresh-token")
	require.NoError(t, err)
}
