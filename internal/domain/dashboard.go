package domain

// BestClient é a entrada da lista de melhores clientes do dashboard.
type BestClient struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	TotalInvested float64 `json:"totalInvested"`
}

// DashboardSummary agrega os indicadores exibidos na tela inicial.
type DashboardSummary struct {
	TotalClients        int     `json:"totalClients"`
	ActiveContracts     int     `json:"activeContracts"`
	ActualMonthIncome   float64 `json:"actualMonthIncome"`
	PreviousMonthIncome float64 `json:"previousMonthIncome"`

	BestClients   []*BestClient `json:"bestClients"`
	TopClientGoal float64       `json:"topClientGoal"`

	TopConsultants         []*ConsultantStats `json:"topConsultants"`
	LoggedConsultant       *ConsultantStats   `json:"loggedConsultant,omitempty"`
	LoggedConsultantInTopN bool               `json:"loggedConsultantInTopN"`
}
