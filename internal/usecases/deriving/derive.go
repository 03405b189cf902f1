package deriving

import (
	"github.com/vfg2006/consultor-dashboard-api/internal/domain"
	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/consultor-dashboard-api/pkg/utils"
)

// DeriveClientStats calcula as estatísticas de cada cliente a partir das
// coleções brutas, sem modificá-las. Apenas contratos em valorização entram
// em TotalInvested, Commission e no lucro; contratos com outras situações
// continuam visíveis na listagem do cliente. O resultado vem ordenado por
// valor investido decrescente, com posições densas atribuídas.
func DeriveClientStats(
	clients []*domain.Client,
	contracts []*domain.Contract,
	withdrawals []*domain.Withdrawal,
	commissionRate float64,
) []*domain.ClientStats {
	stats := make([]*domain.ClientStats, 0, len(clients))

	for _, client := range clients {
		clientStats := &domain.ClientStats{
			Client:      *client,
			Contracts:   make([]*domain.Contract, 0),
			Withdrawals: make([]*domain.Withdrawal, 0),
		}

		totalProfit := 0.0
		for _, contract := range contracts {
			if contract.ClientID != client.ID {
				continue
			}

			clientStats.Contracts = append(clientStats.Contracts, contract)

			if contract.IsActive() {
				clientStats.TotalInvested += contract.Value
				totalProfit += contract.Profit()
			}
		}

		totalWithdrawn := 0.0
		for _, withdrawal := range withdrawals {
			if withdrawal.ClientID != client.ID {
				continue
			}

			clientStats.Withdrawals = append(clientStats.Withdrawals, withdrawal)
			totalWithdrawn += withdrawal.Value
		}

		clientStats.Commission = utils.RoundWithTwoDecimalPlace(clientStats.TotalInvested * commissionRate)

		// Saques acima do lucro não produzem saldo negativo para o cliente.
		clientStats.AvailableForWithdrawal = totalProfit - totalWithdrawn
		if clientStats.AvailableForWithdrawal < 0 {
			clientStats.AvailableForWithdrawal = 0
		}

		stats = append(stats, clientStats)
	}

	ranked := ranking.Rank(stats, func(c *domain.ClientStats) float64 { return c.TotalInvested })

	ordered := make([]*domain.ClientStats, len(ranked))
	for i, r := range ranked {
		r.Item.Rank = r.Rank
		ordered[i] = r.Item
	}

	return ordered
}

// DeriveConsultantStats calcula as vendas anuais de cada consultor: soma do
// valor dos contratos do consultor iniciados no ano informado,
// independentemente da situação. Consultores sem contratos no ano aparecem
// com vendas zeradas, nunca são omitidos. O resultado vem ordenado por
// vendas decrescentes com posições atribuídas.
func DeriveConsultantStats(
	consultants []*domain.Consultant,
	contracts []*domain.Contract,
	year int,
) []*domain.ConsultantStats {
	stats := make([]*domain.ConsultantStats, 0, len(consultants))

	for _, consultant := range consultants {
		consultantStats := &domain.ConsultantStats{Consultant: *consultant}

		for _, contract := range contracts {
			if contract.ConsultantID != consultant.ID {
				continue
			}

			if utils.ParseBRDate(contract.StartDate).Year() == year {
				consultantStats.TotalSales += contract.Value
			}
		}

		stats = append(stats, consultantStats)
	}

	ranked := ranking.Rank(stats, func(c *domain.ConsultantStats) float64 { return c.TotalSales })

	ordered := make([]*domain.ConsultantStats, len(ranked))
	for i, r := range ranked {
		r.Item.Rank = r.Rank
		ordered[i] = r.Item
	}

	return ordered
}
