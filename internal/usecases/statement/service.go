// Package statement monta o extrato derivado do consultor: créditos de
// comissão gerados pelos contratos ativos e débitos dos saques do próprio
// consultor, mesclados em um livro único.
package statement

import (
	"fmt"
	"time"

	"github.com/vfg2006/consultor-dashboard-api/infrastructure/entitysource"
	"github.com/vfg2006/consultor-dashboard-api/internal/domain"
	"github.com/vfg2006/consultor-dashboard-api/pkg/utils"
)

// Statement agrega o extrato completo com os totais exibidos nos cards.
type Statement struct {
	Entries          []*domain.LedgerEntry `json:"entries"`
	IncomeThisMonth  float64               `json:"incomeThisMonth"`
	OutcomeThisMonth float64               `json:"outcomeThisMonth"`
	AvailableBalance float64               `json:"availableBalance"`
}

// BuildLedger gera o extrato a partir dos contratos e saques do consultor.
// Cada contrato ativo produz exatamente um crédito sintético datado no
// início do contrato, com valor = valor do contrato × taxa de comissão; cada
// saque do consultor produz um débito na própria data. Os dois conjuntos são
// concatenados: são disjuntos por construção, não há deduplicação.
func BuildLedger(contracts []*domain.Contract, withdrawals []*domain.ConsultantWithdrawal, commissionRate float64) []*domain.LedgerEntry {
	entries := make([]*domain.LedgerEntry, 0, len(contracts)+len(withdrawals))

	for _, contract := range contracts {
		if !contract.IsActive() {
			continue
		}

		entries = append(entries, &domain.LedgerEntry{
			ID:          fmt.Sprintf("c-%d", contract.ID),
			Type:        domain.EntryTypeCredit,
			Description: fmt.Sprintf("Comissão - Contrato #%d", contract.ID),
			Date:        contract.StartDate,
			Value:       utils.RoundWithTwoDecimalPlace(contract.Value * commissionRate),
		})
	}

	for _, withdrawal := range withdrawals {
		entries = append(entries, &domain.LedgerEntry{
			ID:          fmt.Sprintf("w-%d", withdrawal.ID),
			Type:        domain.EntryTypeDebit,
			Description: "Saque realizado",
			Date:        withdrawal.Date,
			Value:       withdrawal.Value,
		})
	}

	return entries
}

// MonthlyTotal soma os lançamentos do tipo informado cuja data cai no
// mês/ano de referência.
func MonthlyTotal(entries []*domain.LedgerEntry, entryType string, month time.Month, year int) float64 {
	total := 0.0
	for _, entry := range entries {
		if entry.Type != entryType {
			continue
		}

		if utils.SameMonthYear(utils.ParseBRDate(entry.Date), month, year) {
			total += entry.Value
		}
	}

	return total
}

// AvailableBalance retorna Σ créditos − Σ débitos. Diferente do saldo
// disponível por cliente, este valor NÃO é limitado em zero: um saldo
// negativo é um estado válido e reportável do extrato.
func AvailableBalance(entries []*domain.LedgerEntry) float64 {
	balance := 0.0
	for _, entry := range entries {
		switch entry.Type {
		case domain.EntryTypeCredit:
			balance += entry.Value
		case domain.EntryTypeDebit:
			balance -= entry.Value
		}
	}

	return balance
}

// Builder produz extratos a partir do snapshot corrente da fonte de
// entidades.
type Builder interface {
	Statement(reference time.Time) *Statement
	AvailableBalance() float64
	RequestWithdrawal(rawAmount string) (*WithdrawalReceipt, error)
}

// Service implementa Builder sobre a fonte de entidades.
type Service struct {
	source         entitysource.Source
	commissionRate float64
}

// NewService cria o serviço de extrato com a taxa de comissão do consultor.
func NewService(source entitysource.Source, commissionRate float64) *Service {
	return &Service{
		source:         source,
		commissionRate: commissionRate,
	}
}

// Statement monta o extrato completo com os totais do mês de referência.
func (s *Service) Statement(reference time.Time) *Statement {
	snapshot := s.source.Snapshot()
	entries := BuildLedger(snapshot.Contracts, snapshot.ConsultantWithdrawals, s.commissionRate)

	return &Statement{
		Entries:          entries,
		IncomeThisMonth:  MonthlyTotal(entries, domain.EntryTypeCredit, reference.Month(), reference.Year()),
		OutcomeThisMonth: MonthlyTotal(entries, domain.EntryTypeDebit, reference.Month(), reference.Year()),
		AvailableBalance: AvailableBalance(entries),
	}
}

// AvailableBalance retorna o saldo disponível do consultor.
func (s *Service) AvailableBalance() float64 {
	snapshot := s.source.Snapshot()
	return AvailableBalance(BuildLedger(snapshot.Contracts, snapshot.ConsultantWithdrawals, s.commissionRate))
}
