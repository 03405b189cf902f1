package domain

// Withdrawal é um saque solicitado por um cliente. Todas as situações de
// saque contam no total sacado do cliente.
type Withdrawal struct {
	ID       int     `json:"id"`
	ClientID int     `json:"clientId"`
	Value    float64 `json:"value"`
	Date     string  `json:"date"`
	Status   string  `json:"status"`
}

// ConsultantWithdrawal é um saque do próprio consultor, debitado do extrato
// de comissões. Não possui cliente associado.
type ConsultantWithdrawal struct {
	ID    int     `json:"id"`
	Value float64 `json:"value"`
	Date  string  `json:"date"`
}
