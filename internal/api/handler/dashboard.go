package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/deriving"
	"github.com/vfg2006/consultor-dashboard-api/pkg/log"
)

// GetDashboard retorna o resumo da tela inicial: indicadores, melhores
// clientes e o ranking anual de consultores. A data de referência pode ser
// informada via query params (month/year) para consultas determinísticas;
// sem parâmetros usa a data corrente.
func GetDashboard(service deriving.Deriver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		reference := time.Now()
		monthStr := r.URL.Query().Get("month")
		yearStr := r.URL.Query().Get("year")

		if monthStr != "" && yearStr != "" {
			month, errMonth := strconv.Atoi(monthStr)
			year, errYear := strconv.Atoi(yearStr)
			if errMonth != nil || errYear != nil || month < 1 || month > 12 {
				http.Error(w, "Período inválido. Use month (1-12) e year (4 dígitos)", http.StatusBadRequest)
				return
			}

			reference = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		}

		summary := service.DashboardSummary(reference)

		logger.WithFields(log.Fields{
			"reference":        reference.Format("01-2006"),
			"total_clients":    summary.TotalClients,
			"active_contracts": summary.ActiveContracts,
		}).Info("dashboard: resumo gerado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
