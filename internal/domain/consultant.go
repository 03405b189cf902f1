package domain

// Consultant representa um consultor de vendas referenciado pelos contratos.
type Consultant struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// ConsultantStats é a visão derivada de um consultor para o ranking anual.
type ConsultantStats struct {
	Consultant

	TotalSales float64 `json:"totalSales"`
	Rank       int     `json:"rank"`
}

// ConsultantProfile é o registro de perfil do consultor logado.
type ConsultantProfile struct {
	Name                 string  `json:"name"`
	Role                 string  `json:"role"`
	Email                string  `json:"email"`
	CPF                  string  `json:"cpf"`
	CommissionPercentage float64 `json:"commissionPercentage"`
	IndicationLink       string  `json:"indicationLink"`
}
