package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultor-dashboard-api/internal/domain"
	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/statement"
	"github.com/vfg2006/consultor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/consultor-dashboard-api/pkg/query"
	"github.com/vfg2006/consultor-dashboard-api/pkg/utils"
)

// Abas do extrato: créditos de comissão ou saques do consultor.
const (
	statementTabCommissions = "comissoes"
	statementTabWithdrawals = "saques"
)

// StatementResponse é uma página do extrato com os totais dos cards.
type StatementResponse struct {
	Tab              string                `json:"tab"`
	Entries          []*domain.LedgerEntry `json:"entries"`
	Page             int                   `json:"page"`
	TotalPages       int                   `json:"totalPages"`
	IncomeThisMonth  float64               `json:"incomeThisMonth"`
	OutcomeThisMonth float64               `json:"outcomeThisMonth"`
	AvailableBalance float64               `json:"availableBalance"`
}

// GetStatement retorna o extrato do consultor. A aba (tab=comissoes|saques)
// seleciona o tipo de lançamento; busca, ordenação (sort=date|value,
// dir=asc|desc) e página atuam dentro da aba. Os totais dos cards cobrem o
// mês de referência (month/year opcionais) e não mudam com filtro ou página.
func GetStatement(service statement.Builder, pageSize int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		reference := time.Now()
		if monthStr, yearStr := params.Get("month"), params.Get("year"); monthStr != "" && yearStr != "" {
			month, errMonth := strconv.Atoi(monthStr)
			year, errYear := strconv.Atoi(yearStr)
			if errMonth != nil || errYear != nil || month < 1 || month > 12 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido. Use month (1-12) e year (4 dígitos)", nil)
				return
			}
			reference = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		}

		full := service.Statement(reference)

		entryType := domain.EntryTypeCredit
		tab := params.Get("tab")
		if tab == "" {
			tab = statementTabCommissions
		}
		if tab == statementTabWithdrawals {
			entryType = domain.EntryTypeDebit
		}

		tabEntries := make([]*domain.LedgerEntry, 0, len(full.Entries))
		for _, entry := range full.Entries {
			if entry.Type == entryType {
				tabEntries = append(tabEntries, entry)
			}
		}

		page := parsePage(params.Get("page"))

		result := query.Run(tabEntries, query.Options[*domain.LedgerEntry]{
			SearchTerm: params.Get("search"),
			Searchable: []func(*domain.LedgerEntry) string{
				func(e *domain.LedgerEntry) string { return e.Description },
				func(e *domain.LedgerEntry) string { return e.Date },
				func(e *domain.LedgerEntry) string { return strconv.FormatFloat(e.Value, 'f', -1, 64) },
			},
			SortKeys: map[string]query.SortKey[*domain.LedgerEntry]{
				"date":  {Date: func(e *domain.LedgerEntry) time.Time { return utils.ParseBRDate(e.Date) }},
				"value": {Numeric: func(e *domain.LedgerEntry) float64 { return e.Value }},
			},
			Sort: query.SortSpec{
				Key:       params.Get("sort"),
				Direction: params.Get("dir"),
			},
			Page:     page,
			PageSize: pageSize,
		})

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(StatementResponse{
			Tab:              tab,
			Entries:          result.PageItems,
			Page:             page,
			TotalPages:       result.TotalPages,
			IncomeThisMonth:  full.IncomeThisMonth,
			OutcomeThisMonth: full.OutcomeThisMonth,
			AvailableBalance: full.AvailableBalance,
		})
		if err != nil {
			logrus.WithError(err).Error("Erro ao enviar extrato")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
