package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/f-engage-api/infrastructure/database/postgres"
	"github.com/vfg2006/f-engage-api/infrastructure/integrator/meta"
	"github.com/vfg2006/f-engage-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/f-engage-api/infrastructure/integrator/whatsapp"
	"github.com/vfg2006/f-engage-api/infrastructure/repository"
	"github.com/vfg2006/f-engage-api/internal/api"
	"github.com/vfg2006/f-engage-api/internal/api/handler"
	"github.com/vfg2006/f-engage-api/internal/config"
	"github.com/vfg2006/f-engage-api/internal/metrics"
	"github.com/vfg2006/f-engage-api/internal/scheduler"
	"github.com/vfg2006/f-engage-api/internal/usecases/authenticating"
	"github.com/vfg2006/f-engage-api/internal/usecases/configuring"
	"github.com/vfg2006/f-engage-api/internal/usecases/insighting"
	"github.com/vfg2006/f-engage-api/internal/usecases/leading"
	"github.com/vfg2006/f-engage-api/internal/usecases/reporting"
	"github.com/vfg2006/f-engage-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New("engage")

	insightsProvider := newInsightsProvider(cfg)

	leadsProvider, closeLeads := newLeadsProvider(ctx, cfg)
	defer closeLeads()

	insightStore := insighting.NewStore(cfg, insightsProvider, insighting.WithMetrics(m))
	leadStore := leading.NewStore(leadsProvider, leading.WithMetrics(m))

	insightsRefresh := scheduler.NewInsightsRefreshService(insightStore, cfg, m)
	leadsRefresh := scheduler.NewLeadsRefreshService(leadStore, cfg, m)

	// Inicia os agendadores em background
	for _, job := range []*scheduler.StoreRefreshService{insightsRefresh, leadsRefresh} {
		if err := job.Start(ctx); err != nil {
			logrus.WithError(err).WithField("store", job.Name()).Error("Erro ao iniciar o agendador de atualização")
		}
	}
	defer insightsRefresh.Stop()
	defer leadsRefresh.Stop()

	server, err := api.New(cfg, api.Services{
		Insights:      insightStore,
		Leads:         leadStore,
		Reports:       reporting.NewService(insightStore, leadStore),
		Settings:      configuring.NewService(cfg),
		Authenticator: authenticating.NewService(cfg),
		CronJobs: handler.CronJobServices{
			InsightsRefresh: insightsRefresh,
			LeadsRefresh:    leadsRefresh,
		},
		Metrics: m.Handler(),
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newInsightsProvider escolhe entre o simulador e a Graph API
func newInsightsProvider(cfg *config.Config) insighting.InsightsProvider {
	if cfg.Providers.Insights == config.ProviderMeta {
		logrus.WithField("url", cfg.Meta.URL).Info("Insights servidos pela Meta Graph API")
		return meta.New(cfg, metaclient.NewClient(cfg))
	}

	logrus.Info("Insights servidos pelo simulador")
	return meta.NewSimulator(cfg)
}

// newLeadsProvider escolhe entre os leads de demonstração e o PostgreSQL
func newLeadsProvider(ctx context.Context, cfg *config.Config) (leading.LeadsProvider, func()) {
	if cfg.Providers.Leads != config.ProviderPostgres {
		logrus.Info("Leads servidos pelo provedor de demonstração")
		return whatsapp.NewMockProvider(cfg), func() {}
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Leads servidos pelo PostgreSQL")
	return repository.NewLeadRepository(conn), func() {
		if err := conn.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
		}
	}
}
