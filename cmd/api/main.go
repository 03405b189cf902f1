package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultor-dashboard-api/infrastructure/entitysource"
	"github.com/vfg2006/consultor-dashboard-api/infrastructure/integrator/authservice"
	"github.com/vfg2006/consultor-dashboard-api/internal/api"
	"github.com/vfg2006/consultor-dashboard-api/internal/config"
	"github.com/vfg2006/consultor-dashboard-api/internal/scheduler"
	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/deriving"
	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/statement"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, err := entitysource.NewFileSource(cfg.EntitySource.DatasetPath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar a fonte de entidades")
	}

	derivingService := deriving.NewService(source, cfg.Commission.ClientRate, cfg.Commission.ConsultantRate)
	statementService := statement.NewService(source, cfg.Commission.ConsultantRate)

	authClient := authservice.NewClient(cfg)
	authenticator := authenticating.NewService(cfg, authClient)

	rankingWarmupService := scheduler.NewRankingWarmupService(derivingService, cfg)
	if err := rankingWarmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento de ranking")
	} else {
		logrus.Info("Agendador de aquecimento de ranking iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		source,
		derivingService,
		statementService,
		authenticator,
		rankingWarmupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
