package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/statement"
	"github.com/vfg2006/consultor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/consultor-dashboard-api/pkg/log"
	"github.com/vfg2006/consultor-dashboard-api/pkg/utils"
)

type balanceResponse struct {
	AvailableBalance float64 `json:"availableBalance"`
	Formatted        string  `json:"formatted"`
}

// withdrawalRequest carrega o valor bruto digitado pelo usuário. O valor
// chega como texto e é validado no caso de uso, nunca aqui.
type withdrawalRequest struct {
	Amount string `json:"amount"`
}

// GetWithdrawalBalance retorna o saldo disponível do consultor para saque.
func GetWithdrawalBalance(service statement.Builder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		balance := service.AvailableBalance()

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(balanceResponse{
			AvailableBalance: balance,
			Formatted:        utils.FormatCurrency(&balance),
		})
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar saldo disponível")
		}
	})
}

// RequestWithdrawal valida um pedido de saque contra o saldo corrente e
// responde com o protocolo gerado. Pedidos rejeitados devolvem a mensagem de
// validação sem alterar nenhum saldo.
func RequestWithdrawal(service statement.Builder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request withdrawalRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		receipt, err := service.RequestWithdrawal(request.Amount)
		if err != nil {
			switch {
			case errors.Is(err, statement.ErrInvalidAmount), errors.Is(err, statement.ErrInsufficientFunds):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				logger.WithError(err).Error("Erro ao processar pedido de saque")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			}
			return
		}

		logger.WithField("protocol", receipt.Protocol).Info("Pedido de saque registrado")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(receipt); err != nil {
			logger.WithError(err).Error("Erro ao enviar comprovante de saque")
		}
	})
}
