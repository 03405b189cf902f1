package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/consultor-dashboard-api/infrastructure/entitysource/mocks"
	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/statement"
	"go.uber.org/mock/gomock"
)

func TestGetWithdrawalBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSource(ctrl)
	mockSource.EXPECT().Snapshot().Return(statementSnapshot()).AnyTimes()

	service := statement.NewService(mockSource, 0.10)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/withdrawals/balance", nil)

	GetWithdrawalBalance(service).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response balanceResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, 2600.0, response.AvailableBalance)
	assert.Equal(t, "R$ 2.600,00", response.Formatted)
}

func TestRequestWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSource(ctrl)
	mockSource.EXPECT().Snapshot().Return(statementSnapshot()).AnyTimes()

	service := statement.NewService(mockSource, 0.10)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		validate       func(t *testing.T, body []byte)
	}{
		{
			name:           "Pedido válido retorna protocolo",
			body:           `{"amount": "500"}`,
			expectedStatus: http.StatusCreated,
			validate: func(t *testing.T, body []byte) {
				var receipt statement.WithdrawalReceipt
				require.NoError(t, json.Unmarshal(body, &receipt))
				assert.NotEmpty(t, receipt.Protocol)
				assert.Equal(t, 500.0, receipt.Amount)
			},
		},
		{
			name:           "Valor acima do saldo é rejeitado",
			body:           `{"amount": "99999"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Valor não numérico é rejeitado",
			body:           `{"amount": "abc"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Corpo malformado é rejeitado",
			body:           `{amount`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, "/v1/withdrawals", strings.NewReader(tt.body))

			RequestWithdrawal(service).ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			if tt.validate != nil {
				tt.validate(t, recorder.Body.Bytes())
			}
		})
	}
}
