package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/link-analytics-api/infrastructure/cache"
	"github.com/vfg2006/link-analytics-api/infrastructure/repository"
	"github.com/vfg2006/link-analytics-api/internal/config"
	"github.com/vfg2006/link-analytics-api/internal/domain"
	"github.com/vfg2006/link-analytics-api/internal/usecases/analyzing"
)

// AnalyticsSnapshotSyncConfig representa a configuração do agendador de snapshots
type AnalyticsSnapshotSyncConfig struct {
	CronSchedule      string
	LookbackDays      int
	RetentionDays     int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// AnalyticsSnapshotSyncService consolida diariamente o registro reconciliado
// de cada link em snapshots persistidos, preservando histórico mesmo quando o
// provedor externo deixa de responder pelo período
type AnalyticsSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              AnalyticsSnapshotSyncConfig
	appConfig           *config.Config
	linkRepo            repository.TrackedLinkRepository
	snapshotRepo        repository.AnalyticsSnapshotRepository
	analyzer            analyzing.Analyzer
	responseCache       cache.ResponseCache
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAnalyticsSnapshotSyncService cria uma nova instância do serviço de snapshots
func NewAnalyticsSnapshotSyncService(
	linkRepo repository.TrackedLinkRepository,
	snapshotRepo repository.AnalyticsSnapshotRepository,
	analyzer analyzing.Analyzer,
	appConfig *config.Config,
) *AnalyticsSnapshotSyncService {
	// Criar a configuração com base na config global
	syncConfig := AnalyticsSnapshotSyncConfig{
		CronSchedule:      appConfig.SnapshotSync.CronSchedule,
		LookbackDays:      appConfig.SnapshotSync.LookbackDays,
		RetentionDays:     appConfig.SnapshotSync.RetentionDays,
		MaxConcurrentJobs: appConfig.SnapshotSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"lookback_days":       syncConfig.LookbackDays,
		"retention_days":      syncConfig.RetentionDays,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de analytics carregada")

	return &AnalyticsSnapshotSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		linkRepo:     linkRepo,
		snapshotRepo: snapshotRepo,
		analyzer:     analyzer,
		syncRunning:  false,
	}
}

// WithCache habilita a invalidação do cache de respostas após cada sincronização
func (s *AnalyticsSnapshotSyncService) WithCache(responseCache cache.ResponseCache) *AnalyticsSnapshotSyncService {
	s.responseCache = responseCache
	return s
}

// Start inicia o agendador
func (s *AnalyticsSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots de analytics desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de analytics")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots de analytics: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de analytics")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllSnapshots consolida os snapshots de todos os links cadastrados
func (s *AnalyticsSnapshotSyncService) syncAllSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de snapshots de analytics para todos os links")

	links, err := s.linkRepo.ListAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de links para sincronização de snapshots")
		return
	}

	if len(links) == 0 {
		logrus.Info("Nenhum link encontrado para sincronização de snapshots")
		return
	}

	dates := s.getDatesToProcess()
	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": dates[0].Format(time.DateOnly),
		"end_date":   dates[len(dates)-1].Format(time.DateOnly),
	}).Info("Período para sincronização de snapshots de analytics")

	s.processSnapshotsForDates(links, dates)

	s.applyRetention()

	s.invalidateResponseCache()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"links":    len(links),
		"days":     s.config.LookbackDays,
	}).Info("Sincronização de snapshots de analytics concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getDatesToProcess cria o conjunto de datas a consolidar, da mais antiga para
// a mais recente, começando de ontem
func (s *AnalyticsSnapshotSyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i-1)
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	return dates
}

// processSnapshotsForDates processa os snapshots de cada link para todas as datas
func (s *AnalyticsSnapshotSyncService) processSnapshotsForDates(links []*domain.TrackedLink, dates []time.Time) {
	// Criar um canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, link := range links {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(link *domain.TrackedLink) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			existing := s.snapshottedDays(link.ID, dates)

			logrus.WithFields(logrus.Fields{
				"link_id":     link.ID,
				"campaign":    link.CampaignCode,
				"total_dates": len(dates),
				"existing":    len(existing),
			}).Info("Processando snapshots de analytics para link")

			for _, date := range dates {
				if existing[date.Format(time.DateOnly)] {
					continue
				}
				s.processLinkSnapshot(link, date)
			}
		}(link)
	}

	wg.Wait()
}

// snapshottedDays retorna o conjunto de dias do período que já possuem snapshot
// persistido para o link. Falha na consulta reprocessa o período inteiro
func (s *AnalyticsSnapshotSyncService) snapshottedDays(linkID string, dates []time.Time) map[string]bool {
	snapshots, err := s.snapshotRepo.GetByDateRange(linkID, dates[0], dates[len(dates)-1])
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"link_id": linkID,
			"error":   err.Error(),
		}).Warn("Erro ao consultar snapshots existentes, reprocessando o período inteiro")
		return map[string]bool{}
	}

	days := make(map[string]bool, len(snapshots))
	for _, snapshot := range snapshots {
		days[snapshot.Date.Format(time.DateOnly)] = true
	}

	return days
}

// processLinkSnapshot consolida o registro reconciliado de um link em uma data
func (s *AnalyticsSnapshotSyncService) processLinkSnapshot(link *domain.TrackedLink, date time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	filters := &domain.AnalyticsFilters{
		StartDate:    &day,
		EndDate:      &day,
		WithProvider: true,
	}

	record, err := s.analyzer.GetLinkAnalytics(context.Background(), link.ID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"link_id": link.ID,
			"date":    day.Format(time.DateOnly),
			"error":   err.Error(),
		}).Error("Erro ao obter analytics do link para snapshot")
		return
	}

	// Snapshots guardam apenas dados reais ou parciais; simulação não vira histórico
	if record.Origin == domain.OriginSimulated {
		logrus.WithFields(logrus.Fields{
			"link_id": link.ID,
			"date":    day.Format(time.DateOnly),
		}).Warn("Analytics simulados não são persistidos em snapshot")
		return
	}

	snapshot := &domain.LinkAnalyticsSnapshot{
		LinkID:    link.ID,
		Date:      day,
		Analytics: record,
	}

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		logrus.WithFields(logrus.Fields{
			"link_id": link.ID,
			"date":    day.Format(time.DateOnly),
			"error":   err.Error(),
		}).Error("Erro ao salvar snapshot de analytics no banco de dados")
		return
	}

	logrus.WithFields(logrus.Fields{
		"link_id": link.ID,
		"date":    day.Format(time.DateOnly),
	}).Info("Snapshot de analytics salvo com sucesso")
}

// applyRetention remove snapshots mais antigos que a janela de retenção
func (s *AnalyticsSnapshotSyncService) applyRetention() {
	if s.config.RetentionDays <= 0 {
		return
	}

	removed, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao aplicar retenção de snapshots de analytics")
		return
	}

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":        removed,
			"retention_days": s.config.RetentionDays,
		}).Info("Snapshots antigos removidos pela política de retenção")
	}
}

// invalidateResponseCache descarta as respostas de analytics em cache após a
// atualização dos snapshots, para as próximas consultas refletirem os dados novos
func (s *AnalyticsSnapshotSyncService) invalidateResponseCache() {
	if s.responseCache == nil {
		return
	}

	if err := s.responseCache.Invalidate(context.Background(), "analytics:*"); err != nil {
		logrus.WithError(err).Warn("Erro ao invalidar cache de respostas de analytics")
		return
	}

	logrus.Info("Cache de respostas de analytics invalidado após sincronização")
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots
func (s *AnalyticsSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots de analytics")
	go s.syncAllSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *AnalyticsSnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
