package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/consultor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/consultor-dashboard-api/pkg/log"
)

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// ForgotPassword repassa a solicitação de redefinição de senha ao serviço de
// autenticação. A resposta nunca revela se o e-mail existe.
func ForgotPassword(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request forgotPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Email == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o e-mail cadastrado", nil)
			return
		}

		message, err := service.RequestPasswordReset(request.Email)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(messageResponse{Message: message}); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta de redefinição de senha")
		}
	})
}

// ResetPassword confirma a redefinição de senha com o código recebido por
// e-mail.
func ResetPassword(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request resetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Code == "" || request.NewPassword == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o código e a nova senha", nil)
			return
		}

		message, err := service.ConfirmPasswordReset(request.Code, request.NewPassword)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(messageResponse{Message: message}); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta de redefinição de senha")
		}
	})
}
