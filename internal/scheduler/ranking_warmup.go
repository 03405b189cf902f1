// Package scheduler contém o agendamento do aquecimento do cache de
// derivação. O job apenas antecipa cálculos memoizados; a correção das
// respostas nunca depende dele.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultor-dashboard-api/internal/config"
	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/deriving"
)

type RankingWarmupConfig struct {
	CronSchedule string
	Enabled      bool
}

// RankingWarmupService recalcula periodicamente o ranking anual de
// consultores e o resumo do dashboard, deixando o cache de derivação quente
// para as primeiras requisições do dia.
type RankingWarmupService struct {
	scheduler *gocron.Scheduler
	deriver   deriving.Deriver
	config    RankingWarmupConfig

	warmupRunning         bool
	warmupMutex           sync.Mutex
	lastWarmupStartedAt   time.Time
	lastWarmupCompletedAt time.Time
}

func NewRankingWarmupService(deriver deriving.Deriver, cfg *config.Config) *RankingWarmupService {
	warmupConfig := RankingWarmupConfig{
		CronSchedule: cfg.RankingWarmup.CronSchedule, // Default: 6h da manhã todos os dias
		Enabled:      cfg.RankingWarmup.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
	}).Info("Configuração do agendador de aquecimento de ranking carregada")

	return &RankingWarmupService{
		scheduler: gocron.NewScheduler(time.Local),
		deriver:   deriver,
		config:    warmupConfig,
	}
}

func (s *RankingWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de aquecimento de ranking desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de aquecimento de ranking")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.WarmupRankings(); err != nil {
			logrus.WithError(err).Error("Erro no aquecimento do cache de ranking")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de ranking: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de aquecimento de ranking")
		s.scheduler.Stop()
	}()

	return nil
}

// WarmupRankings executa o aquecimento: deriva o ranking do ano corrente e o
// resumo do dashboard, populando o cache memoizado da versão atual do
// snapshot.
func (s *RankingWarmupService) WarmupRankings() error {
	s.warmupMutex.Lock()
	defer s.warmupMutex.Unlock()

	if s.warmupRunning {
		logrus.Warn("Aquecimento de ranking já está em execução")
		return nil
	}

	s.warmupRunning = true
	s.lastWarmupStartedAt = time.Now()
	defer func() {
		s.warmupRunning = false
		s.lastWarmupCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando aquecimento do cache de ranking")

	reference := time.Now()
	consultants := s.deriver.ConsultantStats(reference.Year())
	clients := s.deriver.ClientStats()
	s.deriver.DashboardSummary(reference)

	logrus.WithFields(logrus.Fields{
		"consultants": len(consultants),
		"clients":     len(clients),
		"year":        reference.Year(),
	}).Info("Aquecimento do cache de ranking concluído")

	return nil
}

// TriggerManualWarmup inicia manualmente um aquecimento do cache.
func (s *RankingWarmupService) TriggerManualWarmup() {
	s.warmupMutex.Lock()
	if s.warmupRunning {
		s.warmupMutex.Unlock()
		logrus.Info("Aquecimento de ranking já em andamento, ignorando solicitação manual")
		return
	}
	s.warmupMutex.Unlock()

	logrus.Info("Iniciando aquecimento manual do cache de ranking")
	go s.WarmupRankings()
}

// GetStatus retorna o status atual do agendador.
func (s *RankingWarmupService) GetStatus() map[string]any {
	return map[string]any{
		"warmup_enabled":           s.config.Enabled,
		"warmup_cron":              s.config.CronSchedule,
		"last_warmup_started_at":   s.lastWarmupStartedAt,
		"last_warmup_completed_at": s.lastWarmupCompletedAt,
	}
}
