// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// RegisterConsumer orchestrates the consumer registration process.
func (srv *authService) RegisterConsumer(ctx context.Context, input *usecase.RegisterConsumerInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting consumer registration", "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("consumer registration failed")
	}

	var registeredUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// The email must be free.
		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("consumer registration failed")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			Phone:        input.Phone,
			Role:         entity.RoleConsumer,
			Active:       true,
			PasswordHash: hashedPassword,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute consumer registration transaction", "error", err, "email", input.Email)

		return nil, err
	}
	srv.logger.Debug("Consumer registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// RegisterSupplier creates a supplier company and its owner account in one
// transaction.
func (srv *authService) RegisterSupplier(ctx context.Context, input *usecase.RegisterSupplierInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting supplier registration", "email", input.Email, "company", input.CompanyName)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("supplier registration failed")
	}

	var (
		registeredUser *entity.User
		newSupplier    *entity.Supplier
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		supplierRepo := repoFactory.NewSupplierRepository()

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("supplier registration failed")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		newSupplier = &entity.Supplier{
			CompanyName: input.CompanyName,
			BIN:         input.BIN,
			Address:     input.Address,
			City:        input.City,
			Description: input.Description,
			Active:      true,
		}
		if err := supplierRepo.Create(ctx, newSupplier); err != nil {
			return errors.WithStack(err)
		}

		registeredUser = &entity.User{
			Name:         input.OwnerName,
			Email:        input.Email,
			Phone:        input.Phone,
			Role:         entity.RoleOwner,
			SupplierID:   &newSupplier.ID,
			CompanyName:  newSupplier.CompanyName,
			Active:       true,
			PasswordHash: hashedPassword,
		}
		if err := userRepo.Create(ctx, registeredUser); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute supplier registration transaction", "error", err, "email", input.Email)

		return nil, err
	}
	srv.logger.Debug("Supplier registered successfully", "userID", registeredUser.ID, "supplierID", newSupplier.ID)

	return &usecase.RegisterOutput{User: registeredUser, Supplier: newSupplier}, nil
}

// Login verifies credentials and opens a session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	var output *usecase.LoginOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		tokenRepo := repoFactory.NewRefreshTokenRepository()

		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		if !user.Active {
			return domainerrors.ErrUserInactive.WrapMessage("login failed")
		}
		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		if err := tokenRepo.Create(ctx, &repository.RefreshToken{
			UserID:    user.ID,
			TokenHash: hashToken(refreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}); err != nil {
			return errors.WithStack(err)
		}

		output = &usecase.LoginOutput{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			User:         user,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("User logged in", "userID", output.User.ID, "role", output.User.Role)

	return output, nil
}

// Refresh rotates a refresh token and issues a fresh token pair.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.LoginOutput, error) {
	var output *usecase.LoginOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		tokenRepo := repoFactory.NewRefreshTokenRepository()

		record, err := tokenRepo.FindByHash(ctx, hashToken(input.RefreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh failed")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if record.Revoked || time.Now().After(record.ExpiresAt) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh failed")
		}

		user, err := userRepo.FindByID(ctx, record.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for refresh token")
		}
		if !user.Active {
			return domainerrors.ErrUserInactive.WrapMessage("refresh failed")
		}

		// Rotate: the presented token is single-use.
		if err := tokenRepo.Revoke(ctx, record.ID); err != nil {
			return errors.WithStack(err)
		}

		accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		if err := tokenRepo.Create(ctx, &repository.RefreshToken{
			UserID:    user.ID,
			TokenHash: hashToken(refreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}); err != nil {
			return errors.WithStack(err)
		}

		output = &usecase.LoginOutput{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			User:         user,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// Logout revokes the presented refresh token.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewRefreshTokenRepository()

		record, err := tokenRepo.FindByHash(ctx, hashToken(refreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid.WrapMessage("logout failed")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		return errors.WithStack(tokenRepo.Revoke(ctx, record.ID))
	})
}

// hashToken derives the storage key for a refresh token. The raw token never
// touches the database.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
