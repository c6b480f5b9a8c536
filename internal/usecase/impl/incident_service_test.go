package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestIncidentService(t *testing.T) (usecase.IncidentUsecase, *mockRepo.MockIncidentRepository) {
	incidentRepo := mockRepo.NewMockIncidentRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewIncidentService(incidentRepo, logger), incidentRepo
}

func TestIncidentService_Create_Success(t *testing.T) {
	svc, incidentRepo := createTestIncidentService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	admin := supplierStaff(entity.RoleAdmin, supplierID)

	incidentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Incident")).
		Return(nil)

	incident, err := svc.Create(ctx, admin, &usecase.CreateIncidentInput{
		Title:    "warehouse freezer down",
		Priority: entity.PriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.IncidentOpen, incident.Status)
	assert.Equal(t, supplierID, incident.SupplierID)
	assert.Equal(t, admin.ID, incident.OwnerID)
}

func TestIncidentService_Create_SalesForbidden(t *testing.T) {
	svc, _ := createTestIncidentService(t)

	sales := supplierStaff(entity.RoleSales, uuid.New())

	_, err := svc.Create(context.Background(), sales, &usecase.CreateIncidentInput{
		Title:    "x",
		Priority: entity.PriorityLow,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}

func TestIncidentService_Create_UnknownPriority(t *testing.T) {
	svc, _ := createTestIncidentService(t)

	admin := supplierStaff(entity.RoleAdmin, uuid.New())

	_, err := svc.Create(context.Background(), admin, &usecase.CreateIncidentInput{
		Title:    "x",
		Priority: "urgent-ish",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestIncidentService_Resolve_FromOpen(t *testing.T) {
	svc, incidentRepo := createTestIncidentService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	owner := supplierStaff(entity.RoleOwner, supplierID)
	incident := &entity.Incident{
		ID:         uuid.New(),
		SupplierID: supplierID,
		Status:     entity.IncidentOpen,
	}

	incidentRepo.EXPECT().FindByID(ctx, incident.ID).Return(incident, nil)
	incidentRepo.EXPECT().Update(ctx, incident).Return(nil)

	resolved, err := svc.Resolve(ctx, owner, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.IncidentResolved, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)
	assert.WithinDuration(t, time.Now(), *resolved.ResolvedAt, time.Second)
}

func TestIncidentService_Resolve_AlreadyResolved(t *testing.T) {
	svc, incidentRepo := createTestIncidentService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	owner := supplierStaff(entity.RoleOwner, supplierID)
	incident := &entity.Incident{
		ID:         uuid.New(),
		SupplierID: supplierID,
		Status:     entity.IncidentResolved,
	}

	incidentRepo.EXPECT().FindByID(ctx, incident.ID).Return(incident, nil)

	_, err := svc.Resolve(ctx, owner, incident.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrIllegalTransition.ErrorCode(), appErr.ErrorCode())
}

func TestIncidentService_Start_OtherCompanyReadsAsNotFound(t *testing.T) {
	svc, incidentRepo := createTestIncidentService(t)

	ctx := context.Background()
	owner := supplierStaff(entity.RoleOwner, uuid.New())
	incident := &entity.Incident{
		ID:         uuid.New(),
		SupplierID: uuid.New(), // a different company
		Status:     entity.IncidentOpen,
	}

	incidentRepo.EXPECT().FindByID(ctx, incident.ID).Return(incident, nil)

	_, err := svc.Start(ctx, owner, incident.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrIncidentNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestIncidentService_List_CompanyScope(t *testing.T) {
	svc, incidentRepo := createTestIncidentService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	admin := supplierStaff(entity.RoleAdmin, supplierID)
	incidents := []*entity.Incident{{ID: uuid.New(), SupplierID: supplierID}}

	incidentRepo.EXPECT().ListBySupplier(ctx, supplierID).Return(incidents, nil)

	got, err := svc.List(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, incidents, got)
}
