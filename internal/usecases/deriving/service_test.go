package deriving

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/consultor-dashboard-api/infrastructure/entitysource"
	"github.com/vfg2006/consultor-dashboard-api/infrastructure/entitysource/mocks"
	"github.com/vfg2006/consultor-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func snapshotFixture(version string) *entitysource.Snapshot {
	return &entitysource.Snapshot{
		Version: version,
		Clients: []*domain.Client{
			{ID: 1, Name: "Maria"},
			{ID: 2, Name: "João"},
		},
		Contracts: []*domain.Contract{
			{ID: 10, ClientID: 1, ConsultantID: 1, Value: 10000, CurrentProgress: 10, StartDate: "10/01/2024", EndDate: "10/01/2025", Status: domain.StatusValorizando},
			{ID: 11, ClientID: 2, ConsultantID: 2, Value: 20000, CurrentProgress: 5, StartDate: "05/02/2024", EndDate: "05/02/2025", Status: domain.StatusValorizando},
		},
		ConsultantWithdrawals: []*domain.ConsultantWithdrawal{
			{ID: 1, Value: 500, Date: "20/02/2024"},
		},
		Consultants: []*domain.Consultant{
			{ID: 1, Name: "Paulo"},
			{ID: 2, Name: "Rita"},
		},
		LoggedConsultantID: 1,
	}
}

func TestService_ClientStats_Memoization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSource(ctrl)
	mockSource.EXPECT().Snapshot().Return(snapshotFixture("v1")).Times(2)

	service := NewService(mockSource, 0.10, 0.10)

	first := service.ClientStats()
	second := service.ClientStats()

	// Mesma versão de snapshot devolve o mesmo resultado memoizado
	assert.Len(t, first, 2)
	assert.Same(t, first[0], second[0])
}

func TestService_ClientStats_NewVersionRecomputes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSource(ctrl)
	gomock.InOrder(
		mockSource.EXPECT().Snapshot().Return(snapshotFixture("v1")),
		mockSource.EXPECT().Snapshot().Return(snapshotFixture("v2")),
	)

	service := NewService(mockSource, 0.10, 0.10)

	first := service.ClientStats()
	second := service.ClientStats()

	// Nova versão nunca serve resultado da versão anterior
	assert.NotSame(t, first[0], second[0])
}

func TestService_DashboardSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSource(ctrl)
	mockSource.EXPECT().Snapshot().Return(snapshotFixture("v1")).AnyTimes()

	service := NewService(mockSource, 0.10, 0.10)

	reference := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	summary := service.DashboardSummary(reference)

	assert.Equal(t, 2, summary.TotalClients)
	assert.Equal(t, 2, summary.ActiveContracts)

	// Fevereiro: crédito do contrato 11 (20000 × 0,10)
	assert.Equal(t, 2000.0, summary.ActualMonthIncome)
	// Janeiro: crédito do contrato 10 (10000 × 0,10)
	assert.Equal(t, 1000.0, summary.PreviousMonthIncome)

	assert.Len(t, summary.BestClients, 2)
	assert.Equal(t, "João", summary.BestClients[0].Name)
	assert.Equal(t, 20000.0, summary.TopClientGoal)

	assert.Len(t, summary.TopConsultants, 2)
	assert.Equal(t, "Rita", summary.TopConsultants[0].Name)
	assert.Equal(t, 1, summary.TopConsultants[0].Rank)

	// Consultor logado (Paulo) está no top 5
	assert.NotNil(t, summary.LoggedConsultant)
	assert.Equal(t, "Paulo", summary.LoggedConsultant.Name)
	assert.Equal(t, 2, summary.LoggedConsultant.Rank)
	assert.True(t, summary.LoggedConsultantInTopN)
}

func TestService_DashboardSummary_EmptySnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSource(ctrl)
	mockSource.EXPECT().Snapshot().Return(&entitysource.Snapshot{Version: "v1"}).AnyTimes()

	service := NewService(mockSource, 0.10, 0.10)

	summary := service.DashboardSummary(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 0, summary.TotalClients)
	assert.Empty(t, summary.BestClients)
	// Meta mínima evita divisão por zero na apresentação
	assert.Equal(t, 1.0, summary.TopClientGoal)
	assert.Nil(t, summary.LoggedConsultant)
	assert.False(t, summary.LoggedConsultantInTopN)
}
