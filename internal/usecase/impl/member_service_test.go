package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

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

// memberServiceFixtures holds all test dependencies for member service tests.
type memberServiceFixtures struct {
	service  usecase.MemberUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestMemberService(t *testing.T) memberServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewMemberService(userRepo, hasher, logger)

	return memberServiceFixtures{service: svc, userRepo: userRepo, hasher: hasher}
}

func TestMemberService_AddStaff_Success(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	owner := supplierStaff(entity.RoleOwner, supplierID)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "sales@aqbota.kz").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret123").Return("hashed-password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	staff, err := fx.service.AddStaff(ctx, owner, &usecase.AddStaffInput{
		Name:     "Bolat",
		Email:    "sales@aqbota.kz",
		Password: "secret123",
		Role:     entity.RoleSales,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSales, staff.Role)
	require.NotNil(t, staff.SupplierID)
	assert.Equal(t, supplierID, *staff.SupplierID)
	assert.True(t, staff.Active)
}

func TestMemberService_AddStaff_OwnerRoleRejected(t *testing.T) {
	fx := createTestMemberService(t)

	owner := supplierStaff(entity.RoleOwner, uuid.New())

	_, err := fx.service.AddStaff(context.Background(), owner, &usecase.AddStaffInput{
		Email:    "second-owner@aqbota.kz",
		Password: "secret123",
		Role:     entity.RoleOwner,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestMemberService_AddStaff_SalesForbidden(t *testing.T) {
	fx := createTestMemberService(t)

	sales := supplierStaff(entity.RoleSales, uuid.New())

	_, err := fx.service.AddStaff(context.Background(), sales, &usecase.AddStaffInput{
		Email:    "new@aqbota.kz",
		Password: "secret123",
		Role:     entity.RoleSales,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}

func TestMemberService_AddStaff_EmailTaken(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	owner := supplierStaff(entity.RoleOwner, uuid.New())

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "taken@aqbota.kz").
		Return(&entity.User{}, nil)

	_, err := fx.service.AddStaff(ctx, owner, &usecase.AddStaffInput{
		Email:    "taken@aqbota.kz",
		Password: "secret123",
		Role:     entity.RoleAdmin,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserAlreadyExists.ErrorCode(), appErr.ErrorCode())
}

func TestMemberService_DeactivateStaff_Success(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	owner := supplierStaff(entity.RoleOwner, supplierID)
	sales := supplierStaff(entity.RoleSales, supplierID)

	fx.userRepo.EXPECT().FindByID(ctx, sales.ID).Return(sales, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			assert.False(t, updated.Active)
		}).
		Return(nil)

	err := fx.service.DeactivateStaff(ctx, owner, sales.ID)
	require.NoError(t, err)
}

func TestMemberService_DeactivateStaff_Self(t *testing.T) {
	fx := createTestMemberService(t)

	owner := supplierStaff(entity.RoleOwner, uuid.New())

	err := fx.service.DeactivateStaff(context.Background(), owner, owner.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestMemberService_DeactivateStaff_Owner(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	admin := supplierStaff(entity.RoleAdmin, supplierID)
	owner := supplierStaff(entity.RoleOwner, supplierID)

	fx.userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)

	err := fx.service.DeactivateStaff(ctx, admin, owner.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}

func TestMemberService_DeactivateStaff_OtherCompanyReadsAsNotFound(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	owner := supplierStaff(entity.RoleOwner, uuid.New())
	outsider := supplierStaff(entity.RoleSales, uuid.New())

	fx.userRepo.EXPECT().FindByID(ctx, outsider.ID).Return(outsider, nil)

	err := fx.service.DeactivateStaff(ctx, owner, outsider.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestMemberService_ListStaff(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	owner := supplierStaff(entity.RoleOwner, supplierID)
	staff := []*entity.User{owner, supplierStaff(entity.RoleSales, supplierID)}

	fx.userRepo.EXPECT().ListBySupplier(ctx, supplierID).Return(staff, nil)

	got, err := fx.service.ListStaff(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
