package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/autosales-dashboard/infrastructure/database"
	"github.com/vfg2006/autosales-dashboard/infrastructure/database/migrations"
	"github.com/vfg2006/autosales-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/autosales-dashboard/infrastructure/database/sqlite"
	"github.com/vfg2006/autosales-dashboard/infrastructure/dataset"
	"github.com/vfg2006/autosales-dashboard/infrastructure/repository"
	"github.com/vfg2006/autosales-dashboard/internal/api"
	"github.com/vfg2006/autosales-dashboard/internal/api/handler"
	"github.com/vfg2006/autosales-dashboard/internal/config"
	"github.com/vfg2006/autosales-dashboard/internal/render"
	"github.com/vfg2006/autosales-dashboard/internal/scheduler"
	"github.com/vfg2006/autosales-dashboard/internal/usecases/exporting"
	"github.com/vfg2006/autosales-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/autosales-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var salesRepo repository.SalesRecordRepository
	if cfg.Dataset.Source == config.SourcePostgres || cfg.Dataset.Source == config.SourceSQLite {
		conn := dbconn(ctx, cfg)
		defer conn.Close()

		salesRepo = repository.NewSalesRecordRepository(conn)
	}

	loader, err := dataset.NewLoader(cfg.Dataset, salesRepo)
	if err != nil {
		logrus.WithError(err).Fatal("Origem de dataset inválida")
	}

	ds, err := dataset.Load(ctx, loader)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar dataset")
	}

	reportService := reporting.NewService(cfg, ds)
	renderer := render.NewRenderer(cfg.Chart)
	exportService := exporting.NewService()

	warmUpService := scheduler.NewReportWarmUpService(reportService, cfg)
	if err := warmUpService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento de relatórios")
	} else {
		logrus.Info("Agendador de aquecimento de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		renderer,
		exportService,
		handler.NewCronJobServices(warmUpService),
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dbconn aplica as migrations e abre a conexão da origem configurada
func dbconn(ctx context.Context, cfg *config.Config) *database.Connection {
	var (
		conn *database.Connection
		err  error
	)

	switch cfg.Dataset.Source {
	case config.SourcePostgres:
		if err := migrations.Run(database.DriverPostgres, cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrations no PostgreSQL")
		}
		conn, err = postgres.NewConnection(ctx, cfg.Database)
	case config.SourceSQLite:
		if err := migrations.Run(database.DriverSQLite, cfg.Database.SQLitePath); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrations no SQLite")
		}
		conn, err = sqlite.NewConnection(ctx, cfg.Database.SQLitePath)
	}
	if err != nil {
		logrus.WithError(err).Fatalf("Erro ao conectar ao banco %s", cfg.Dataset.Source)
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatalf("Erro ao testar conexão com o banco %s", cfg.Dataset.Source)
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco estabelecida com sucesso")
	return conn
}
