package analyzing

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/link-analytics-api/infrastructure/cache"
	"github.com/vfg2006/link-analytics-api/infrastructure/repository"
	"github.com/vfg2006/link-analytics-api/internal/config"
	"github.com/vfg2006/link-analytics-api/internal/domain"
)

const (
	defaultMaxConcurrentLinks = 5
	defaultLinkTimeout        = 20 * time.Second
)

// Service implementa o motor de analytics: fan-out por link com as duas
// fontes consultadas em paralelo, reconciliação, anotação de métricas e
// fan-in nas agregações cruzadas
type Service struct {
	cfg                *config.Config
	linkRepository     repository.TrackedLinkRepository
	clickLogRepository repository.ClickLogRepository
	providerService    ProviderStatser
	responseCache      cache.ResponseCache
	policy             ScorePolicy
	useCache           bool
}

// NewService cria uma nova instância do motor de analytics
func NewService(
	cfg *config.Config,
	linkRepo repository.TrackedLinkRepository,
	clickLogRepo repository.ClickLogRepository,
	providerService ProviderStatser,
) *Service {
	return &Service{
		cfg:                cfg,
		linkRepository:     linkRepo,
		clickLogRepository: clickLogRepo,
		providerService:    providerService,
		policy:             policyFromConfig(cfg),
		useCache:           false, // Inicialmente não usa cache
	}
}

// WithCache habilita o cache de respostas no Redis
func (s *Service) WithCache(responseCache cache.ResponseCache) *Service {
	s.responseCache = responseCache
	s.useCache = responseCache != nil
	return s
}

// policyFromConfig traduz a seção Analytics da configuração para a política
// de score, caindo nos valores de referência quando os pesos não foram setados
func policyFromConfig(cfg *config.Config) ScorePolicy {
	policy := DefaultScorePolicy()
	if cfg == nil {
		return policy
	}

	analytics := cfg.Analytics
	if analytics.VolumeWeight > 0 {
		policy.VolumeWeight = analytics.VolumeWeight
	}
	if analytics.UniqueWeight > 0 {
		policy.UniqueWeight = analytics.UniqueWeight
	}
	if analytics.ConsistencyWeight > 0 {
		policy.ConsistencyWeight = analytics.ConsistencyWeight
	}
	if analytics.VolumeTarget > 0 {
		policy.VolumeTarget = analytics.VolumeTarget
	}
	if analytics.TrendThreshold > 0 {
		policy.TrendThreshold = analytics.TrendThreshold
	}

	return policy
}

// GetAnalytics processa todos os links do escopo. Apenas período inválido ou
// indisponibilidade do cadastro de links derrubam a requisição; falha em um
// link degrada somente aquele link para a forma zerada.
func (s *Service) GetAnalytics(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.AnalyticsResponse, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, domain.ErrInvalidRange
	}

	axis, err := BuildDateAxis(*filters.StartDate, *filters.EndDate)
	if err != nil {
		return nil, err
	}

	cacheKey := analyticsCacheKey(filters)
	if s.useCache {
		cached, cacheErr := s.responseCache.GetAnalyticsResponse(ctx, cacheKey)
		if cacheErr == nil {
			logrus.WithField("cache_key", cacheKey).Debug("Resposta de analytics servida do cache")
			return cached, nil
		}
		if !errors.Is(cacheErr, cache.ErrCacheMiss) {
			logrus.WithError(cacheErr).Warn("Erro ao consultar o cache de analytics, seguindo sem cache")
		}
	}

	links, err := s.linkRepository.ListByScope(filters)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar os links do escopo")
	}

	records := s.analyzeLinks(links, filters)

	builder := NewHeatmapBuilder(axis)
	for _, record := range records {
		builder.AddLink(record)
	}

	// O heatmap horário sai de uma única consulta sobre todos os links do
	// escopo; falha aqui degrada a matriz para zeros em vez de derrubar tudo
	if len(links) > 0 {
		linkIDs := make([]string, 0, len(links))
		for _, link := range links {
			linkIDs = append(linkIDs, link.ID)
		}

		hourly, hourlyErr := s.clickLogRepository.GetHourlyClicks(linkIDs, *filters.StartDate, *filters.EndDate)
		if hourlyErr != nil {
			logrus.WithError(hourlyErr).Warn("Erro ao consultar o agregado horário, heatmap de horas ficará zerado")
		} else {
			builder.AddHourlyCounts(hourly)
		}
	}

	medium, source, hour := builder.Build()
	days := axis.Days()

	// O eixo final já absorveu qualquer dia extra vindo das fontes; completar
	// as séries por link para que toda matriz datada cubra o eixo inteiro
	for _, record := range records {
		record.DailyBreakdown = fillDailySeries(record.DailyBreakdown, days)
	}

	response := &domain.AnalyticsResponse{
		Links:         records,
		MediumHeatmap: medium,
		SourceHeatmap: source,
		HourHeatmap:   hour,
		Insights:      RollupInsights(records),
		DateAxis:      days,
		Filters:       filters,
	}

	if s.useCache {
		if cacheErr := s.responseCache.SetAnalyticsResponse(ctx, cacheKey, response); cacheErr != nil {
			logrus.WithError(cacheErr).Warn("Erro ao gravar resposta de analytics no cache")
		}
	}

	return response, nil
}

// GetLinkAnalytics processa um único link pelo mesmo pipeline da consulta em lote
func (s *Service) GetLinkAnalytics(ctx context.Context, linkID string, filters *domain.AnalyticsFilters) (*domain.PerLinkAnalytics, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, domain.ErrInvalidRange
	}

	axis, err := BuildDateAxis(*filters.StartDate, *filters.EndDate)
	if err != nil {
		return nil, err
	}

	link, err := s.linkRepository.GetByID(linkID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar o link")
	}
	if link == nil {
		return nil, domain.ErrLinkNotFound
	}

	record := s.analyzeLink(link, filters, s.linkTimeout())

	for _, entry := range record.DailyBreakdown {
		axis.Ensure(entry.Date)
	}
	record.DailyBreakdown = fillDailySeries(record.DailyBreakdown, axis.Days())

	return record, nil
}

// analyzeLinks faz o fan-out por link com concorrência limitada e devolve os
// registros ordenados por ID para tornar a resposta determinística
func (s *Service) analyzeLinks(links []*domain.TrackedLink, filters *domain.AnalyticsFilters) []*domain.PerLinkAnalytics {
	maxConcurrent := s.cfg.Analytics.MaxConcurrentLinks
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentLinks
	}
	timeout := s.linkTimeout()

	records := make([]*domain.PerLinkAnalytics, 0, len(links))

	wg := sync.WaitGroup{}
	mutex := sync.Mutex{}
	semaphore := make(chan struct{}, maxConcurrent)

	for _, link := range links {
		wg.Add(1)

		go func(link *domain.TrackedLink) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			record := s.analyzeLink(link, filters, timeout)

			mutex.Lock()
			records = append(records, record)
			mutex.Unlock()
		}(link)
	}

	wg.Wait()

	sort.Slice(records, func(i, j int) bool {
		return records[i].LinkID < records[j].LinkID
	})

	return records
}

// analyzeLink processa um link com tempo limitado. Estouro do prazo rende o
// registro na forma zerada, nunca um erro propagado para a requisição.
func (s *Service) analyzeLink(link *domain.TrackedLink, filters *domain.AnalyticsFilters, timeout time.Duration) *domain.PerLinkAnalytics {
	done := make(chan *domain.PerLinkAnalytics, 1)

	go func() {
		done <- s.buildLinkRecord(link, filters)
	}()

	select {
	case record := <-done:
		return record
	case <-time.After(timeout):
		logrus.WithFields(logrus.Fields{
			"link_id": link.ID,
			"timeout": timeout.String(),
		}).Warn("Tempo excedido ao processar o link, devolvendo registro zerado")

		record := Reconcile(link, domain.ZeroLinkClickStats(), nil)
		s.annotate(record)
		return record
	}
}

// buildLinkRecord consulta as duas fontes em paralelo, reconcilia e anota.
// As fontes são independentes: a falha de uma não atrasa nem anula a outra.
func (s *Service) buildLinkRecord(link *domain.TrackedLink, filters *domain.AnalyticsFilters) *domain.PerLinkAnalytics {
	var (
		internal *domain.LinkClickStats
		external *domain.ProviderStats
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()

		stats, err := s.clickLogRepository.GetLinkClickStats(link.ID, *filters.StartDate, *filters.EndDate)
		if err != nil {
			logrus.WithError(err).WithField("link_id", link.ID).Warn("Erro ao consultar o log interno de cliques, usando forma zerada")
			internal = domain.ZeroLinkClickStats()
			return
		}
		internal = stats
	}()

	go func() {
		defer wg.Done()

		if !filters.WithProvider {
			return
		}

		stats, err := s.providerService.GetLinkStats(link, filters)
		if err != nil {
			logrus.WithError(err).WithField("link_id", link.ID).Warn("Erro ao consultar o provedor externo, seguindo só com o log interno")
			return
		}
		external = stats
	}()

	wg.Wait()

	record := Reconcile(link, internal, external)
	s.annotate(record)

	return record
}

// annotate calcula as métricas derivadas sobre o registro já reconciliado.
// As métricas usam a série merged antes do preenchimento com zeros, para que
// dias sem dado não diluam média, pico e tendência.
func (s *Service) annotate(record *domain.PerLinkAnalytics) {
	record.EffectivenessScore = EffectivenessScore(record.TotalClicks, record.UniqueClicks, record.DailyBreakdown, s.policy)
	record.ConversionRate = ConversionRate(record.TotalClicks, record.UniqueClicks)
	record.AvgDailyClicks = AvgDailyClicks(record.TotalClicks, record.DailyBreakdown)
	record.PeakDay = PeakDay(record.DailyBreakdown)
	record.TrendDirection = TrendDirection(record.DailyBreakdown, s.policy.TrendThreshold)
}

func (s *Service) linkTimeout() time.Duration {
	if s.cfg.Analytics.LinkTimeoutSeconds > 0 {
		return time.Duration(s.cfg.Analytics.LinkTimeoutSeconds) * time.Second
	}
	return defaultLinkTimeout
}

// fillDailySeries expande a série para cobrir todos os dias do eixo final,
// com zero nos dias sem registro, mantendo a ordem cronológica
func fillDailySeries(series []domain.DailyClickRecord, days []string) []domain.DailyClickRecord {
	byDate := make(map[string]domain.DailyClickRecord, len(series))
	for _, record := range series {
		byDate[record.Date] = record
	}

	filled := make([]domain.DailyClickRecord, 0, len(days))
	for _, day := range days {
		if record, present := byDate[day]; present {
			filled = append(filled, record)
			continue
		}
		filled = append(filled, domain.DailyClickRecord{Date: day})
	}

	return filled
}

// analyticsCacheKey deriva a chave de cache dos filtros da requisição
func analyticsCacheKey(filters *domain.AnalyticsFilters) string {
	return fmt.Sprintf("analytics:%s:%s:%s:%s:%s:%s:%s:%s:%t",
		filters.StartDate.Format(time.DateOnly),
		filters.EndDate.Format(time.DateOnly),
		stringOrAll(filters.EntityID),
		stringOrAll(filters.CampaignID),
		stringOrAll(filters.SourceID),
		stringOrAll(filters.MediumID),
		stringOrAll(filters.FormID),
		strings.Join(filters.LinkIDs, ","),
		filters.WithProvider,
	)
}

func stringOrAll(value *string) string {
	if value == nil || *value == "" {
		return "all"
	}
	return *value
}
