// Package deriving é a fonte única de verdade para todos os agregados
// derivados da plataforma: estatísticas por cliente, ranking anual de
// consultores e o resumo do dashboard. Nenhuma outra camada recalcula somas
// ou percentuais por conta própria.
package deriving

import (
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/consultor-dashboard-api/infrastructure/entitysource"
	"github.com/vfg2006/consultor-dashboard-api/internal/domain"
	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/statement"
)

// Quantidade de posições exibidas no dashboard.
const (
	bestClientsCount   = 4
	topConsultantCount = 5
)

// Deriver expõe os agregados derivados do snapshot corrente.
type Deriver interface {
	ClientStats() []*domain.ClientStats
	ConsultantStats(year int) []*domain.ConsultantStats
	DashboardSummary(reference time.Time) *domain.DashboardSummary
}

// Service implementa Deriver com memoização por versão de snapshot: cada
// resultado é calculado uma única vez por (versão, operação, parâmetros) e
// descartado naturalmente quando uma nova versão é publicada. Contrato de
// desempenho apenas; a correção nunca depende do cache.
type Service struct {
	source                   entitysource.Source
	clientCommissionRate     float64
	consultantCommissionRate float64

	mu    sync.Mutex
	cache map[string]any
}

// NewService cria o serviço de derivação. As duas taxas de comissão são
// configuráveis de forma independente, ainda que iguais por padrão.
func NewService(source entitysource.Source, clientRate, consultantRate float64) *Service {
	return &Service{
		source:                   source,
		clientCommissionRate:     clientRate,
		consultantCommissionRate: consultantRate,
		cache:                    make(map[string]any),
	}
}

// ClientStats deriva as estatísticas de todos os clientes, já ordenadas por
// valor investido com posições atribuídas.
func (s *Service) ClientStats() []*domain.ClientStats {
	snapshot := s.source.Snapshot()
	key := fmt.Sprintf("%s|clients|%.4f", snapshot.Version, s.clientCommissionRate)

	if cached, ok := s.lookup(key); ok {
		return cached.([]*domain.ClientStats)
	}

	stats := DeriveClientStats(snapshot.Clients, snapshot.Contracts, snapshot.Withdrawals, s.clientCommissionRate)
	s.store(key, stats)

	return stats
}

// ConsultantStats deriva o ranking de consultores por vendas no ano
// informado.
func (s *Service) ConsultantStats(year int) []*domain.ConsultantStats {
	snapshot := s.source.Snapshot()
	key := fmt.Sprintf("%s|consultants|%d", snapshot.Version, year)

	if cached, ok := s.lookup(key); ok {
		return cached.([]*domain.ConsultantStats)
	}

	stats := DeriveConsultantStats(snapshot.Consultants, snapshot.Contracts, year)
	s.store(key, stats)

	return stats
}

// DashboardSummary agrega os indicadores da tela inicial para a data de
// referência informada. A data é um parâmetro explícito para que o
// agrupamento mensal seja determinístico e testável.
func (s *Service) DashboardSummary(reference time.Time) *domain.DashboardSummary {
	snapshot := s.source.Snapshot()
	key := fmt.Sprintf("%s|dashboard|%s", snapshot.Version, reference.Format("01-2006"))

	if cached, ok := s.lookup(key); ok {
		return cached.(*domain.DashboardSummary)
	}

	summary := s.buildSummary(snapshot, reference)
	s.store(key, summary)

	return summary
}

func (s *Service) buildSummary(snapshot *entitysource.Snapshot, reference time.Time) *domain.DashboardSummary {
	clientStats := s.ClientStats()

	activeContracts := 0
	for _, contract := range snapshot.Contracts {
		if contract.IsActive() {
			activeContracts++
		}
	}

	// Receita mensal derivada do extrato de comissões, mesma fonte usada
	// pela tela de extrato, nunca recalculada com outra taxa.
	ledger := statement.BuildLedger(snapshot.Contracts, snapshot.ConsultantWithdrawals, s.consultantCommissionRate)
	previous := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)

	bestClients := make([]*domain.BestClient, 0, bestClientsCount)
	for _, stats := range clientStats {
		if len(bestClients) == bestClientsCount {
			break
		}
		bestClients = append(bestClients, &domain.BestClient{
			ID:            stats.ID,
			Name:          stats.Name,
			TotalInvested: stats.TotalInvested,
		})
	}

	// Meta da barra de progresso dos melhores clientes; 1 evita divisão por
	// zero na apresentação quando não há investimentos.
	topClientGoal := 1.0
	if len(bestClients) > 0 && bestClients[0].TotalInvested > 0 {
		topClientGoal = bestClients[0].TotalInvested
	}

	consultantStats := s.ConsultantStats(reference.Year())
	ranked := ranking.Rank(consultantStats, func(c *domain.ConsultantStats) float64 { return c.TotalSales })

	topConsultants := make([]*domain.ConsultantStats, 0, topConsultantCount)
	for _, r := range ranking.TopN(ranked, topConsultantCount) {
		topConsultants = append(topConsultants, r.Item)
	}

	loggedID := snapshot.LoggedConsultantID
	matchLogged := func(c *domain.ConsultantStats) bool { return c.Consultant.ID == loggedID }

	var loggedConsultant *domain.ConsultantStats
	if r, found := ranking.FindRank(ranked, matchLogged); found {
		loggedConsultant = r.Item
	}

	return &domain.DashboardSummary{
		TotalClients:           len(snapshot.Clients),
		ActiveContracts:        activeContracts,
		ActualMonthIncome:      statement.MonthlyTotal(ledger, domain.EntryTypeCredit, reference.Month(), reference.Year()),
		PreviousMonthIncome:    statement.MonthlyTotal(ledger, domain.EntryTypeCredit, previous.Month(), previous.Year()),
		BestClients:            bestClients,
		TopClientGoal:          topClientGoal,
		TopConsultants:         topConsultants,
		LoggedConsultant:       loggedConsultant,
		LoggedConsultantInTopN: ranking.IsInTopN(ranked, matchLogged, topConsultantCount),
	}
}

func (s *Service) lookup(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cached, ok := s.cache[key]
	return cached, ok
}

func (s *Service) store(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[key] = value
}
