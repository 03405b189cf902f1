package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultor-dashboard-api/internal/scheduler"
)

// CronJobServices agrupa os serviços agendados expostos pela API.
type CronJobServices struct {
	RankingWarmupService *scheduler.RankingWarmupService
}

// GetCronStatus retorna o status dos jobs agendados.
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"ranking_warmup": services.RankingWarmupService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("Erro ao enviar status dos jobs agendados")
		}
	})
}

// TriggerRankingWarmup dispara manualmente o aquecimento do cache de
// ranking. O aquecimento roda em segundo plano; a resposta confirma apenas o
// disparo.
func TriggerRankingWarmup(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		services.RankingWarmupService.TriggerManualWarmup()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"message": "Aquecimento do cache de ranking iniciado",
		}); err != nil {
			logrus.WithError(err).Error("Erro ao enviar confirmação do aquecimento")
		}
	})
}
