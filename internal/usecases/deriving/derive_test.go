package deriving

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/consultor-dashboard-api/internal/domain"
)

func TestDeriveClientStats(t *testing.T) {
	clients := []*domain.Client{
		{ID: 1, Name: "Maria"},
		{ID: 2, Name: "João"},
		{ID: 3, Name: "Sem Contratos"},
	}

	contracts := []*domain.Contract{
		{ID: 10, ClientID: 1, Value: 10000, CurrentProgress: 10, Status: domain.StatusValorizando},
		{ID: 11, ClientID: 1, Value: 5000, CurrentProgress: 20, Status: domain.StatusCancelado},
		{ID: 12, ClientID: 2, Value: 20000, CurrentProgress: 5, Status: domain.StatusValorizando},
	}

	withdrawals := []*domain.Withdrawal{
		{ID: 20, ClientID: 1, Value: 400},
		{ID: 21, ClientID: 2, Value: 1500},
	}

	stats := DeriveClientStats(clients, contracts, withdrawals, 0.10)

	assert.Len(t, stats, 3)

	// Ordenado por valor investido decrescente: João, Maria, Sem Contratos
	joao := stats[0]
	assert.Equal(t, 2, joao.ID)
	assert.Equal(t, 1, joao.Rank)
	assert.Equal(t, 20000.0, joao.TotalInvested)
	assert.Equal(t, 2000.0, joao.Commission)
	// Lucro 1000 − sacado 1500: saldo do cliente nunca fica negativo
	assert.Equal(t, 0.0, joao.AvailableForWithdrawal)

	maria := stats[1]
	assert.Equal(t, 1, maria.ID)
	assert.Equal(t, 2, maria.Rank)
	// Contrato cancelado fica fora das somas mas aparece na listagem
	assert.Equal(t, 10000.0, maria.TotalInvested)
	assert.Len(t, maria.Contracts, 2)
	// Lucro 1000 − sacado 400
	assert.Equal(t, 600.0, maria.AvailableForWithdrawal)

	vazio := stats[2]
	assert.Equal(t, 3, vazio.ID)
	assert.Equal(t, 3, vazio.Rank)
	assert.Equal(t, 0.0, vazio.TotalInvested)
	assert.Empty(t, vazio.Contracts)
}

func TestDeriveConsultantStats(t *testing.T) {
	consultants := []*domain.Consultant{
		{ID: 1, Name: "Paulo"},
		{ID: 2, Name: "Rita"},
		{ID: 3, Name: "Novato"},
	}

	contracts := []*domain.Contract{
		{ID: 10, ConsultantID: 1, Value: 10000, StartDate: "10/03/2024", Status: domain.StatusValorizando},
		{ID: 11, ConsultantID: 1, Value: 4000, StartDate: "05/06/2024", Status: domain.StatusCancelado},
		{ID: 12, ConsultantID: 2, Value: 30000, StartDate: "15/01/2024", Status: domain.StatusValorizando},
		{ID: 13, ConsultantID: 2, Value: 9000, StartDate: "20/02/2023", Status: domain.StatusValorizando},
	}

	stats := DeriveConsultantStats(consultants, contracts, 2024)

	assert.Len(t, stats, 3)

	// Vendas contam qualquer situação de contrato, filtradas pelo ano de início
	rita := stats[0]
	assert.Equal(t, "Rita", rita.Name)
	assert.Equal(t, 1, rita.Rank)
	assert.Equal(t, 30000.0, rita.TotalSales)

	paulo := stats[1]
	assert.Equal(t, "Paulo", paulo.Name)
	assert.Equal(t, 2, paulo.Rank)
	assert.Equal(t, 14000.0, paulo.TotalSales)

	// Consultor sem vendas no ano permanece no ranking com vendas zeradas
	novato := stats[2]
	assert.Equal(t, "Novato", novato.Name)
	assert.Equal(t, 3, novato.Rank)
	assert.Equal(t, 0.0, novato.TotalSales)
}
