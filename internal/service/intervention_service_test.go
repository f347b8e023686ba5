package service

import (
	"testing"

	"github.com/sacofrina/gmao-api/internal/domain"
	"github.com/sacofrina/gmao-api/internal/repository"
	"github.com/sacofrina/gmao-api/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newInterventionService(t *testing.T) (*InterventionService, *ClientService) {
	t.Helper()
	baseDir := t.TempDir()
	clientRepo := repository.NewClientRepository(baseDir)
	interventionRepo := repository.NewInterventionRepository(baseDir)
	tax := taxonomy.NewManager(baseDir)

	clientSvc := NewClientService(clientRepo, tax, testPassword, zap.NewNop())
	_, err := clientSvc.Create(createRequest("Acme", "Morocco"))
	require.NoError(t, err)

	return NewInterventionService(interventionRepo, clientRepo, zap.NewNop()), clientSvc
}

func planRequest(start, end string) *domain.PlanInterventionRequest {
	return &domain.PlanInterventionRequest{
		ClientName: "Acme",
		Payee:      "Morocco",
		StartDate:  start,
		EndDate:    end,
		Type:       domain.InterventionPreventive,
		Technician: domain.Technicians[0],
		Status:     domain.StatusPlan,
	}
}

func TestInterventionService_Plan(t *testing.T) {
	svc, _ := newInterventionService(t)

	dto, err := svc.Plan(planRequest("2024-05-01", "2024-05-03"))
	require.NoError(t, err)
	assert.Equal(t, "Acme", dto.Client)
	assert.Equal(t, 3, dto.Days)
	assert.Equal(t, domain.StatusPlan, dto.Status)
}

func TestInterventionService_Plan_SingleDay(t *testing.T) {
	svc, _ := newInterventionService(t)

	// Start equal to end counts as one day
	dto, err := svc.Plan(planRequest("2024-05-01", "2024-05-01"))
	require.NoError(t, err)
	assert.Equal(t, 1, dto.Days)
}

func TestInterventionService_Plan_EndBeforeStart(t *testing.T) {
	svc, _ := newInterventionService(t)

	_, err := svc.Plan(planRequest("2024-05-03", "2024-05-01"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	list, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestInterventionService_Plan_BadDateFormat(t *testing.T) {
	svc, _ := newInterventionService(t)

	_, err := svc.Plan(planRequest("01/05/2024", "2024-05-03"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInterventionService_Plan_PayeeMismatch(t *testing.T) {
	svc, _ := newInterventionService(t)

	req := planRequest("2024-05-01", "2024-05-03")
	req.Payee = "Tunisia"
	_, err := svc.Plan(req)

	var mismatch *PayeeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Morocco", mismatch.Stored)
}

func TestInterventionService_Plan_UnknownClient(t *testing.T) {
	svc, _ := newInterventionService(t)

	req := planRequest("2024-05-01", "2024-05-03")
	req.ClientName = "Ghost"
	_, err := svc.Plan(req)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestInterventionService_List_AppendOnlyOrder(t *testing.T) {
	svc, _ := newInterventionService(t)

	_, err := svc.Plan(planRequest("2024-05-01", "2024-05-03"))
	require.NoError(t, err)
	_, err = svc.Plan(planRequest("2024-02-10", "2024-02-12"))
	require.NoError(t, err)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2024-05-01", list[0].StartDate)
	assert.Equal(t, "2024-02-10", list[1].StartDate)
}

func TestInterventionService_List_SkipsDeletedClients(t *testing.T) {
	svc, clientSvc := newInterventionService(t)

	_, err := svc.Plan(planRequest("2024-05-01", "2024-05-03"))
	require.NoError(t, err)

	require.NoError(t, clientSvc.Delete("Acme", testPassword))

	list, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}
