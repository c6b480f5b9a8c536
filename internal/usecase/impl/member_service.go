package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// memberService implements the MemberUsecase interface.
type memberService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewMemberService is the constructor for memberService.
func NewMemberService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.MemberUsecase {
	return &memberService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// AddStaff creates an admin or sales account inside the actor's company.
// Owner accounts come only from supplier registration.
func (srv *memberService) AddStaff(ctx context.Context, actor *entity.User, input *usecase.AddStaffInput) (*entity.User, error) {
	scope, err := srv.memberScope(actor)
	if err != nil {
		return nil, err
	}

	if input.Role != entity.RoleAdmin && input.Role != entity.RoleSales {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("staff role must be admin or sales")
	}
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email and password must not be empty")
	}

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("staff creation failed")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	supplierID := scope.SupplierID
	staff := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         input.Role,
		SupplierID:   &supplierID,
		Active:       true,
	}
	if err := srv.userRepo.Create(ctx, staff); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.logger.Info("Staff account created", "staffID", staff.ID, "role", staff.Role, "supplierID", supplierID)

	return staff, nil
}

// ListStaff returns the actor's company staff.
func (srv *memberService) ListStaff(ctx context.Context, actor *entity.User) ([]*entity.User, error) {
	scope, err := srv.memberScope(actor)
	if err != nil {
		return nil, err
	}

	return srv.userRepo.ListBySupplier(ctx, scope.SupplierID)
}

// DeactivateStaff disables a staff account without deleting it. An actor
// cannot deactivate themselves, and the owner account cannot be deactivated.
func (srv *memberService) DeactivateStaff(ctx context.Context, actor *entity.User, staffID uuid.UUID) error {
	scope, err := srv.memberScope(actor)
	if err != nil {
		return err
	}
	if staffID == actor.ID {
		return domainerrors.ErrValidationFailed.WrapMessage("cannot deactivate your own account")
	}

	staff, err := srv.userRepo.FindByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("staff deactivation failed")
		}

		return errors.Wrap(err, "failed to find staff user")
	}
	// Cross-company IDs read as absent, not forbidden.
	if staff.SupplierID == nil || *staff.SupplierID != scope.SupplierID {
		return domainerrors.ErrUserNotFound.WrapMessage("staff deactivation failed")
	}
	if staff.Role == entity.RoleOwner {
		return domainerrors.ErrForbidden.WrapMessage("the owner account cannot be deactivated")
	}

	staff.Active = false
	if err := srv.userRepo.Update(ctx, staff); err != nil {
		return errors.WithStack(err)
	}

	srv.logger.Info("Staff account deactivated", "staffID", staff.ID, "actorID", actor.ID)

	return nil
}

// memberScope resolves the actor's company and checks canManageUsers.
func (srv *memberService) memberScope(actor *entity.User) (entity.Scope, error) {
	if !actor.Permissions().CanManageUsers {
		return entity.Scope{}, domainerrors.ErrForbidden.WrapMessage("staff management requires canManageUsers")
	}

	scope, err := entity.ScopeFor(actor)
	if err != nil {
		return entity.Scope{}, domainerrors.ErrForbidden.WrapMessage("staff management failed")
	}

	return scope, nil
}
