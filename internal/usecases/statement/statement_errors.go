package statement

import "errors"

// Erros de validação do pedido de saque. São mensagens voltadas ao usuário:
// o saldo subjacente nunca é alterado quando o pedido é rejeitado.
var (
	ErrInvalidAmount     = errors.New("por favor, insira um valor válido")
	ErrInsufficientFunds = errors.New("o valor do saque não pode ser maior que o saldo disponível")
	ErrReceiptGeneration = errors.New("erro ao gerar protocolo do saque")
)
