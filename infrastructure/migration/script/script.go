package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/f-engage-api/infrastructure/database/postgres"
	"github.com/vfg2006/f-engage-api/infrastructure/integrator/whatsapp"
	"github.com/vfg2006/f-engage-api/infrastructure/repository"
	"github.com/vfg2006/f-engage-api/internal/config"
)

const createLeadsTable = `
	CREATE TABLE IF NOT EXISTS leads (
		id               VARCHAR(64) PRIMARY KEY,
		wa_phone         VARCHAR(32) NOT NULL,
		first_message    TEXT NOT NULL DEFAULT '',
		referral         JSONB,
		ctwa_clid        VARCHAR(128),
		campaign_id      VARCHAR(64),
		adset_id         VARCHAR(64),
		ad_id            VARCHAR(64),
		score            INTEGER NOT NULL DEFAULT 0 CHECK (score BETWEEN 0 AND 100),
		status           VARCHAR(8) NOT NULL DEFAULT 'new' CHECK (status IN ('new', 'open', 'won')),
		owner            VARCHAR(128),
		created_time     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		conversion_value NUMERIC(12, 2)
	)
`

var indexes = map[string]string{
	"leads_status_idx":   "CREATE INDEX leads_status_idx ON leads (status)",
	"leads_adset_id_idx": "CREATE INDEX leads_adset_id_idx ON leads (adset_id)",
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func ensureIndex(ctx context.Context, tx *sql.Tx, name, statement string) error {
	var indexExists bool
	err := tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pg_indexes
			WHERE tablename = 'leads'
			AND indexname = $1
		)
	`, name).Scan(&indexExists)
	if err != nil {
		return err
	}

	if indexExists {
		logrus.WithField("index", name).Info("Índice já existe")
		return nil
	}

	if _, err := tx.ExecContext(ctx, statement); err != nil {
		return err
	}

	logrus.WithField("index", name).Info("Índice criado com sucesso")
	return nil
}

func migrate(ctx context.Context, tx *sql.Tx, seed bool) error {
	logrus.Info("Criando tabela leads...")
	if _, err := tx.ExecContext(ctx, createLeadsTable); err != nil {
		return err
	}

	for name, statement := range indexes {
		if err := ensureIndex(ctx, tx, name, statement); err != nil {
			return err
		}
	}

	if !seed {
		return nil
	}

	leads := whatsapp.FixtureLeads()
	logrus.Infof("Inserindo %d leads de demonstração...", len(leads))
	startTime := time.Now()

	if err := repository.NewLeadRepository(tx).SaveLeads(ctx, leads); err != nil {
		return err
	}

	logrus.Infof("Inserção de leads concluída em %v", time.Since(startTime))
	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	seed := os.Getenv("SEED_FIXTURE_LEADS") != "false"

	if err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return migrate(ctx, tx, seed)
	}); err != nil {
		logrus.Errorf("ERRO na migração: %v", err)
		os.Exit(1)
	}

	logrus.Info("Migração concluída com sucesso")
}
