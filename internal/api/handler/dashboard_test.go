package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/consultor-dashboard-api/internal/domain"
	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/deriving/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summary := &domain.DashboardSummary{
		TotalClients:      6,
		ActiveContracts:   4,
		ActualMonthIncome: 3200,
		BestClients: []*domain.BestClient{
			{ID: 1, Name: "Maria", TotalInvested: 20000},
		},
		TopClientGoal: 20000,
	}

	t.Run("Período explícito é repassado como referência", func(t *testing.T) {
		mockDeriver := mocks.NewMockDeriver(ctrl)
		mockDeriver.EXPECT().
			DashboardSummary(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)).
			Return(summary)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/dashboard?month=2&year=2024", nil)

		GetDashboard(mockDeriver).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response domain.DashboardSummary
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
		assert.Equal(t, 6, response.TotalClients)
		assert.Equal(t, 3200.0, response.ActualMonthIncome)
		assert.Len(t, response.BestClients, 1)
	})

	t.Run("Mês inválido retorna 400", func(t *testing.T) {
		mockDeriver := mocks.NewMockDeriver(ctrl)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/dashboard?month=0&year=2024", nil)

		GetDashboard(mockDeriver).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
