package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/consultor-dashboard-api/infrastructure/entitysource"
	"github.com/vfg2006/consultor-dashboard-api/infrastructure/entitysource/mocks"
	"github.com/vfg2006/consultor-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestBuildLedger(t *testing.T) {
	contracts := []*domain.Contract{
		{ID: 1, Value: 10000, StartDate: "10/01/2024", Status: domain.StatusValorizando},
		{ID: 2, Value: 5000, StartDate: "15/02/2024", Status: domain.StatusCancelado},
		{ID: 3, Value: 8000, StartDate: "20/03/2024", Status: domain.StatusValorizando},
	}
	withdrawals := []*domain.ConsultantWithdrawal{
		{ID: 1, Value: 300, Date: "05/04/2024"},
	}

	entries := BuildLedger(contracts, withdrawals, 0.10)

	// Contratos cancelados não geram crédito
	assert.Len(t, entries, 3)

	assert.Equal(t, "c-1", entries[0].ID)
	assert.Equal(t, domain.EntryTypeCredit, entries[0].Type)
	assert.Equal(t, "Comissão - Contrato #1", entries[0].Description)
	assert.Equal(t, "10/01/2024", entries[0].Date)
	assert.Equal(t, 1000.0, entries[0].Value)

	assert.Equal(t, "c-3", entries[1].ID)
	assert.Equal(t, 800.0, entries[1].Value)

	assert.Equal(t, "w-1", entries[2].ID)
	assert.Equal(t, domain.EntryTypeDebit, entries[2].Type)
	assert.Equal(t, "Saque realizado", entries[2].Description)
	assert.Equal(t, 300.0, entries[2].Value)
}

func TestMonthlyTotal(t *testing.T) {
	entries := []*domain.LedgerEntry{
		{Type: domain.EntryTypeCredit, Date: "10/01/2024", Value: 1000},
		{Type: domain.EntryTypeCredit, Date: "25/01/2024", Value: 500},
		{Type: domain.EntryTypeCredit, Date: "10/02/2024", Value: 700},
		{Type: domain.EntryTypeDebit, Date: "12/01/2024", Value: 200},
	}

	tests := []struct {
		name      string
		entryType string
		month     time.Month
		year      int
		expected  float64
	}{
		{
			name:      "Créditos de janeiro",
			entryType: domain.EntryTypeCredit,
			month:     time.January,
			year:      2024,
			expected:  1500,
		},
		{
			name:      "Débitos de janeiro",
			entryType: domain.EntryTypeDebit,
			month:     time.January,
			year:      2024,
			expected:  200,
		},
		{
			name:      "Mês sem lançamentos",
			entryType: domain.EntryTypeCredit,
			month:     time.March,
			year:      2024,
			expected:  0,
		},
		{
			name:      "Mesmo mês de outro ano não conta",
			entryType: domain.EntryTypeCredit,
			month:     time.January,
			year:      2023,
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthlyTotal(entries, tt.entryType, tt.month, tt.year))
		})
	}
}

func TestAvailableBalance(t *testing.T) {
	tests := []struct {
		name     string
		entries  []*domain.LedgerEntry
		expected float64
	}{
		{
			name: "Créditos menos débitos",
			entries: []*domain.LedgerEntry{
				{Type: domain.EntryTypeCredit, Value: 1000},
				{Type: domain.EntryTypeCredit, Value: 500},
				{Type: domain.EntryTypeDebit, Value: 300},
			},
			expected: 1200,
		},
		{
			name: "Saldo negativo é reportado sem ajuste",
			entries: []*domain.LedgerEntry{
				{Type: domain.EntryTypeCredit, Value: 100},
				{Type: domain.EntryTypeDebit, Value: 400},
			},
			expected: -300,
		},
		{
			name:     "Extrato vazio tem saldo zero",
			entries:  nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AvailableBalance(tt.entries))
		})
	}
}

func TestService_Statement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSource(ctrl)
	mockSource.EXPECT().Snapshot().Return(&entitysource.Snapshot{
		Version: "v1",
		Contracts: []*domain.Contract{
			{ID: 1, Value: 10000, StartDate: "10/01/2024", Status: domain.StatusValorizando},
			{ID: 2, Value: 6000, StartDate: "05/02/2024", Status: domain.StatusValorizando},
		},
		ConsultantWithdrawals: []*domain.ConsultantWithdrawal{
			{ID: 1, Value: 250, Date: "20/01/2024"},
		},
	})

	service := NewService(mockSource, 0.10)

	result := service.Statement(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.Len(t, result.Entries, 3)
	assert.Equal(t, 1000.0, result.IncomeThisMonth)
	assert.Equal(t, 250.0, result.OutcomeThisMonth)
	// Saldo cobre o extrato inteiro, não apenas o mês de referência
	assert.Equal(t, 1350.0, result.AvailableBalance)
}
