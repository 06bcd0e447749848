package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/link-analytics-api/infrastructure/cache"
	"github.com/vfg2006/link-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/link-analytics-api/infrastructure/integrator/shortener"
	"github.com/vfg2006/link-analytics-api/infrastructure/integrator/shortener/shortenerclient"
	"github.com/vfg2006/link-analytics-api/infrastructure/repository"
	"github.com/vfg2006/link-analytics-api/internal/api"
	"github.com/vfg2006/link-analytics-api/internal/config"
	"github.com/vfg2006/link-analytics-api/internal/scheduler"
	"github.com/vfg2006/link-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/link-analytics-api/internal/usecases/authenticating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	linkRepo := repository.NewTrackedLinkRepository(pgConn)
	clickLogRepo := repository.NewClickLogRepository(pgConn)
	snapshotRepo := repository.NewAnalyticsSnapshotRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	shortenerClient := shortenerclient.NewClient(cfg)
	shortenerIntegrator := shortener.New(cfg, shortenerClient)

	// Inicializa o motor de analytics, com cache opcional de respostas
	analyticsService := analyzing.NewService(cfg, linkRepo, clickLogRepo, shortenerIntegrator)

	var responseCache cache.ResponseCache
	if cfg.Cache.Enabled {
		responseCache, err = cache.NewRedisCache(cfg.Cache)
		if err != nil {
			logrus.WithError(err).Warn("Cache de respostas indisponível, seguindo sem cache")
		} else {
			analyticsService = analyticsService.WithCache(responseCache)
			logrus.Info("Cache de respostas de analytics habilitado")
		}
	}

	// Inicializa o agendador de snapshots diários
	snapshotSyncService := scheduler.NewAnalyticsSnapshotSyncService(
		linkRepo,
		snapshotRepo,
		analyticsService,
		cfg,
	)
	if responseCache != nil {
		// Snapshots novos tornam as respostas em cache obsoletas
		snapshotSyncService = snapshotSyncService.WithCache(responseCache)
	}

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de analytics")
	} else {
		logrus.Info("Agendador de snapshots de analytics iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		authenticator,
		snapshotSyncService,
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

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
