package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/authenticating/mocks"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		path           string
		authHeader     string
		setup          func(auth *mocks.MockAuthenticator)
		expectedStatus int
	}{
		{
			name:           "Healthcheck dispensa token",
			path:           "/healthcheck",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Redefinição de senha dispensa token",
			path:           "/v1/auth/forgot-password",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Rota protegida sem header retorna 401",
			path:           "/v1/dashboard",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Header sem prefixo Bearer retorna 401",
			path:           "/v1/dashboard",
			authHeader:     "token-cru",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "Token inválido retorna 401",
			path:       "/v1/dashboard",
			authHeader: "Bearer invalido",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("invalido").Return(nil, errors.New("token expirado"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "Token válido segue para o handler",
			path:       "/v1/dashboard",
			authHeader: "Bearer valido",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("valido").Return(&authenticating.Claims{ConsultantID: 1}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := mocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(mockAuth)
			}

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				request.Header.Set("Authorization", tt.authHeader)
			}

			AuthMiddleware(mockAuth)(next).ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
		})
	}
}

func TestConsultantFromContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthenticator(ctrl)
	mockAuth.EXPECT().ValidateToken("valido").Return(&authenticating.Claims{ConsultantID: 7, Email: "paulo@exemplo.com"}, nil)

	var claims *authenticating.Claims
	var found bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, found = ConsultantFromContext(r.Context())
	})

	request := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	request.Header.Set("Authorization", "Bearer valido")

	AuthMiddleware(mockAuth)(next).ServeHTTP(httptest.NewRecorder(), request)

	assert.True(t, found)
	assert.Equal(t, 7, claims.ConsultantID)
	assert.Equal(t, "paulo@exemplo.com", claims.Email)
}
