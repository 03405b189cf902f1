package statement

import (
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultor-dashboard-api/pkg/utils"
)

// WithdrawalReceipt é a confirmação de um pedido de saque válido. O pedido
// não movimenta o saldo: a liquidação acontece fora da plataforma.
type WithdrawalReceipt struct {
	Protocol string  `json:"protocol"`
	Amount   float64 `json:"amount"`
	Message  string  `json:"message"`
}

// ValidateWithdrawal valida o valor bruto informado pelo usuário contra o
// saldo disponível. Valores não numéricos ou não positivos e valores acima
// do saldo são rejeitados com mensagem de validação; nada é alterado na
// rejeição.
func ValidateWithdrawal(rawAmount string, available float64) (float64, error) {
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil || amount <= 0 {
		return 0, ErrInvalidAmount
	}

	if amount > available {
		return 0, ErrInsufficientFunds
	}

	return amount, nil
}

// RequestWithdrawal valida o pedido contra o saldo corrente e gera um
// protocolo de confirmação.
func (s *Service) RequestWithdrawal(rawAmount string) (*WithdrawalReceipt, error) {
	available := s.AvailableBalance()

	amount, err := ValidateWithdrawal(rawAmount, available)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"raw_amount": rawAmount,
			"available":  available,
		}).Warn("Pedido de saque rejeitado na validação")
		return nil, err
	}

	protocol, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar protocolo de saque")
		return nil, ErrReceiptGeneration
	}

	return &WithdrawalReceipt{
		Protocol: protocol,
		Amount:   amount,
		Message:  "Saque de " + utils.FormatCurrency(&amount) + " solicitado com sucesso!",
	}, nil
}
