package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/f-engage-api/internal/config"
	"github.com/vfg2006/f-engage-api/internal/metrics"
	"github.com/vfg2006/f-engage-api/internal/usecases/insighting"
	"github.com/vfg2006/f-engage-api/internal/usecases/leading"
)

const (
	StoreInsights = "insights"
	StoreLeads    = "leads"

	TriggerCron   = "cron"
	TriggerManual = "manual"

	refreshTimeout = 2 * time.Minute
)

// ErrSyncRunning indica que já existe uma atualização em andamento para o store
var ErrSyncRunning = errors.New("atualização já em andamento")

// RefreshFunc recarrega um store a partir do seu provedor
type RefreshFunc func(ctx context.Context) error

// StoreRefreshConfig representa a configuração do agendador de um store
type StoreRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// StoreRefreshService agenda e executa a atualização periódica de um store
type StoreRefreshService struct {
	name      string
	scheduler *gocron.Scheduler
	config    StoreRefreshConfig
	refresh   RefreshFunc
	metrics   *metrics.Metrics

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	runs                int
}

func NewStoreRefreshService(name string, refreshConfig StoreRefreshConfig, refresh RefreshFunc, m *metrics.Metrics) *StoreRefreshService {
	logrus.WithFields(logrus.Fields{
		"store":         name,
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização carregada")

	return &StoreRefreshService{
		name:      name,
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		refresh:   refresh,
		metrics:   m,
	}
}

// NewInsightsRefreshService refaz a busca de insights com os filtros atuais do store
func NewInsightsRefreshService(store insighting.Insighter, cfg *config.Config, m *metrics.Metrics) *StoreRefreshService {
	return NewStoreRefreshService(StoreInsights, StoreRefreshConfig{
		CronSchedule: cfg.InsightsSync.CronSchedule,
		SyncEnabled:  cfg.InsightsSync.Enabled,
	}, store.FetchInsights, m)
}

// NewLeadsRefreshService recarrega a lista completa de leads
func NewLeadsRefreshService(store leading.Leader, cfg *config.Config, m *metrics.Metrics) *StoreRefreshService {
	return NewStoreRefreshService(StoreLeads, StoreRefreshConfig{
		CronSchedule: cfg.LeadsSync.CronSchedule,
		SyncEnabled:  cfg.LeadsSync.Enabled,
	}, func(ctx context.Context) error {
		return store.FetchAll(ctx, nil)
	}, m)
}

func (s *StoreRefreshService) Name() string {
	return s.name
}

// Start inicia o agendador
func (s *StoreRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.WithField("store", s.name).Info("Atualização agendada desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"store": s.name,
		"cron":  s.config.CronSchedule,
	}).Info("Iniciando agendador de atualização")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunNow(ctx, TriggerCron); err != nil {
			logrus.WithError(err).WithField("store", s.name).Warn("Atualização agendada não executada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de %s: %w", s.name, err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *StoreRefreshService) Stop() {
	if s.scheduler.IsRunning() {
		logrus.WithField("store", s.name).Info("Parando agendador de atualização")
		s.scheduler.Stop()
	}
}

// RunNow executa a atualização de forma síncrona. Execuções concorrentes são descartadas.
func (s *StoreRefreshService) RunNow(ctx context.Context, trigger string) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("store", s.name).Info("Atualização já em andamento, ignorando")
		return ErrSyncRunning
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	err := s.refresh(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.runs++
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	s.metrics.ObserveRefresh(s.name, trigger)

	fields := logrus.Fields{
		"store":    s.name,
		"trigger":  trigger,
		"duration": time.Since(startTime).String(),
	}
	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Erro na atualização do store")
		return err
	}

	logrus.WithFields(fields).Info("Atualização do store concluída")
	return nil
}

// TriggerManualSync dispara a atualização em segundo plano. Retorna false se já houver uma em andamento.
func (s *StoreRefreshService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.WithField("store", s.name).Info("Atualização já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.WithField("store", s.name).Info("Iniciando atualização manual")
	go func() {
		_ = s.RunNow(context.Background(), TriggerManual)
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *StoreRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"runs":                   s.runs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
