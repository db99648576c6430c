package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/autosales-dashboard/infrastructure/database"
	"github.com/vfg2006/autosales-dashboard/infrastructure/database/migrations"
	"github.com/vfg2006/autosales-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/autosales-dashboard/infrastructure/database/sqlite"
	"github.com/vfg2006/autosales-dashboard/infrastructure/dataset"
	"github.com/vfg2006/autosales-dashboard/infrastructure/repository"
	"github.com/vfg2006/autosales-dashboard/internal/config"
	"github.com/vfg2006/autosales-dashboard/pkg/log"
)

var (
	driver = flag.String("driver", "", "banco de destino: postgres ou sqlite (padrão DATABASE_DRIVER)")
	file   = flag.String("file", "", "arquivo csv ou xlsx com o histórico (padrão DATASET_PATH)")
	format = flag.String("format", "", "formato do arquivo: csv ou xlsx (padrão DATASET_SOURCE)")
	sheet  = flag.String("sheet", "", "aba do xlsx (padrão: primeira aba)")
	force  = flag.Bool("force", false, "substitui os registros existentes pelo conteúdo do arquivo")
)

func main() {
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	input := cfg.Dataset
	if *file != "" {
		input.Path = *file
	}
	if *format != "" {
		input.Source = *format
	}
	if *sheet != "" {
		input.Sheet = *sheet
	}
	if input.Source != config.SourceCSV && input.Source != config.SourceXLSX {
		logrus.Fatalf("Formato de entrada inválido: %q (use csv ou xlsx)", input.Source)
	}

	target := cfg.Database.Driver
	if *driver != "" {
		target = *driver
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn := connect(ctx, cfg, target)
	defer conn.Close()

	repo := repository.NewSalesRecordRepository(conn)

	existing, err := repo.CountSalesRecords(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao contar registros existentes")
	}
	if existing > 0 && !*force {
		logrus.WithField("records", existing).Info("Tabela sales_records já populada, nada a fazer")
		return
	}

	loader, err := dataset.NewLoader(input, nil)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar loader")
	}

	start := time.Now()
	records, err := loader.Load(ctx)
	if err != nil {
		logrus.WithError(err).Fatalf("Erro ao ler %s", loader.Source())
	}

	var inserted int
	if *force {
		inserted, err = repo.ReplaceSalesRecords(ctx, records)
	} else {
		inserted, err = repo.InsertSalesRecords(ctx, records)
	}
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inserir registros")
	}

	logrus.WithFields(logrus.Fields{
		"source":      loader.Source(),
		"driver":      target,
		"inserted":    inserted,
		"replaced":    *force,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Carga de registros concluída")
}

func connect(ctx context.Context, cfg *config.Config, driver string) *database.Connection {
	var (
		conn *database.Connection
		err  error
	)

	switch driver {
	case database.DriverPostgres:
		if err := migrations.Run(driver, cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrations")
		}
		conn, err = postgres.NewConnection(ctx, cfg.Database)
	case database.DriverSQLite:
		if err := migrations.Run(driver, cfg.Database.SQLitePath); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrations")
		}
		conn, err = sqlite.NewConnection(ctx, cfg.Database.SQLitePath)
	default:
		logrus.Fatalf("Driver de destino inválido: %q", driver)
	}
	if err != nil {
		logrus.WithError(err).Fatalf("Erro ao conectar ao banco %s", driver)
	}

	return conn
}
