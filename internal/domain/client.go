// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Client representa um cliente da carteira do consultor. Dados de referência
// imutáveis vindos da fonte de entidades.
type Client struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ClientStats é a visão derivada de um cliente. Nunca é armazenada: é sempre
// recalculada a partir do snapshot da fonte de entidades.
type ClientStats struct {
	Client

	Contracts   []*Contract   `json:"contracts"`
	Withdrawals []*Withdrawal `json:"withdrawals"`

	TotalInvested          float64 `json:"totalInvested"`
	Commission             float64 `json:"commission"`
	AvailableForWithdrawal float64 `json:"availableForWithdrawal"`
	Rank                   int     `json:"rank"`
}
