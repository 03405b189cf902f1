package domain

import "github.com/vfg2006/consultor-dashboard-api/pkg/utils"

// Status possíveis de um contrato. Apenas StatusValorizando entra nas somas
// de valor investido, comissão e vendas; os demais permanecem visíveis nas
// listagens.
const (
	StatusValorizando = "Valorizando"
	StatusFinalizado  = "Finalizado"
	StatusCancelado   = "Cancelado"
)

// Contract representa um contrato de investimento. Pertence a exatamente um
// cliente e um consultor. As datas são mantidas no formato de origem
// (dd/mm/aaaa) e convertidas sob demanda.
type Contract struct {
	ID                          int     `json:"id"`
	ClientID                    int     `json:"clientId"`
	ConsultantID                int     `json:"consultantId"`
	Value                       float64 `json:"value"`
	CurrentProgress             float64 `json:"currentProgress"`
	FinalValorizationPercentage float64 `json:"finalValorizationPercentage"`
	StartDate                   string  `json:"startDate"`
	EndDate                     string  `json:"endDate"`
	Status                      string  `json:"status"`
}

// IsActive indica se o contrato está em valorização.
func (c *Contract) IsActive() bool {
	return c.Status == StatusValorizando
}

// Profit retorna o lucro gerado até agora: valor × progresso/100.
func (c *Contract) Profit() float64 {
	return c.Value * (c.CurrentProgress / 100)
}

// MonthlyValorization retorna o percentual de valorização por mês do
// contrato. Contratos cujo período não cobre um mês completo reportam zero
// em vez de dividir por zero.
func (c *Contract) MonthlyValorization() float64 {
	totalMonths := utils.MonthsBetween(utils.ParseBRDate(c.StartDate), utils.ParseBRDate(c.EndDate))
	if totalMonths <= 0 {
		return 0
	}

	return c.CurrentProgress / float64(totalMonths)
}
