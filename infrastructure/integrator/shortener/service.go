package shortener

import (
	"regexp"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	shortenerdomain "github.com/vfg2006/link-analytics-api/infrastructure/integrator/shortener/domain"
	"github.com/vfg2006/link-analytics-api/infrastructure/integrator/shortener/shortenerclient"
	"github.com/vfg2006/link-analytics-api/internal/config"
	"github.com/vfg2006/link-analytics-api/internal/domain"
	"github.com/vfg2006/link-analytics-api/pkg/normalize"
)

// ShortenerIntegrator consulta o provedor de links curtos e mapeia as
// respostas heterogêneas para o modelo interno. Tolerante a falha parcial:
// cada uma das quatro facetas (resumo, diária, geo, referrer) é buscada de
// forma independente e pode faltar sem derrubar as demais.
type ShortenerIntegrator struct {
	cfg    *config.Config
	Client shortenerclient.Client
}

func New(cfg *config.Config, client shortenerclient.Client) *ShortenerIntegrator {
	return &ShortenerIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// shortCodePattern extrai o último segmento do caminho de uma URL curta,
// usado quando a expansão via API falha
var shortCodePattern = regexp.MustCompile(`([A-Za-z0-9_-]+)/?$`)

// GetLinkStats busca as estatísticas de um link no provedor. Sem credencial
// configurada, ou com o provedor totalmente fora do ar, devolve o conjunto
// simulado marcado com origem "simulated" para que o chamador nunca confunda
// ilustração com dado real.
func (s *ShortenerIntegrator) GetLinkStats(link *domain.TrackedLink, filters *domain.AnalyticsFilters) (*domain.ProviderStats, error) {
	if !s.Client.IsConfigured() {
		logrus.WithField("link_id", link.ID).Debug("Provedor de links curtos não configurado, usando dados simulados")
		return s.SimulatedStats(link, filters), nil
	}

	shortLinkID := s.resolveShortLinkID(link)
	if shortLinkID == "" {
		logrus.WithField("link_id", link.ID).Warn("Não foi possível resolver o identificador do link curto, usando dados simulados")
		return s.SimulatedStats(link, filters), nil
	}

	var (
		summary  *shortenerdomain.SummaryStats
		daily    *shortenerdomain.DailyStats
		geo      *shortenerdomain.GeoStats
		referrer *shortenerdomain.ReferrerStats
	)

	// As quatro chamadas são independentes: nenhuma espera o resultado da
	// outra e a falha de uma anula apenas a própria faceta
	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		result, err := s.Client.GetSummaryStats(shortLinkID, filters)
		if err != nil {
			logrus.WithError(err).WithField("link_id", link.ID).Warn("Falha na faceta de resumo do provedor")
			return
		}
		summary = result
	}()

	go func() {
		defer wg.Done()
		result, err := s.Client.GetDailyStats(shortLinkID, filters)
		if err != nil {
			logrus.WithError(err).WithField("link_id", link.ID).Warn("Falha na faceta diária do provedor")
			return
		}
		daily = result
	}()

	go func() {
		defer wg.Done()
		result, err := s.Client.GetGeoStats(shortLinkID, filters)
		if err != nil {
			logrus.WithError(err).WithField("link_id", link.ID).Warn("Falha na faceta geográfica do provedor")
			return
		}
		geo = result
	}()

	go func() {
		defer wg.Done()
		result, err := s.Client.GetReferrerStats(shortLinkID, filters)
		if err != nil {
			logrus.WithError(err).WithField("link_id", link.ID).Warn("Falha na faceta de referrer do provedor")
			return
		}
		referrer = result
	}()

	wg.Wait()

	if summary == nil && daily == nil && geo == nil && referrer == nil {
		logrus.WithError(domain.ErrProviderUnavailable).WithField("link_id", link.ID).Warn("Todas as facetas do provedor falharam, usando dados simulados")
		return s.SimulatedStats(link, filters), nil
	}

	return s.mapProviderStats(link, filters, summary, daily, geo, referrer), nil
}

// resolveShortLinkID resolve o identificador do provedor: primeiro o ID já
// conhecido, depois a expansão via API e por fim o segmento final da URL curta
func (s *ShortenerIntegrator) resolveShortLinkID(link *domain.TrackedLink) string {
	if link.ShortLinkID != nil && *link.ShortLinkID != "" {
		return *link.ShortLinkID
	}

	if link.ShortURL == nil || *link.ShortURL == "" {
		return ""
	}

	expanded, err := s.Client.ExpandShortURL(*link.ShortURL)
	if err == nil && expanded.ID != "" {
		return expanded.ID
	}

	logrus.WithError(err).WithFields(logrus.Fields{
		"link_id":   link.ID,
		"short_url": *link.ShortURL,
	}).Warn("Expansão da URL curta falhou, extraindo código do caminho")

	match := shortCodePattern.FindStringSubmatch(*link.ShortURL)
	if len(match) > 1 {
		return match[1]
	}

	return ""
}

func (s *ShortenerIntegrator) mapProviderStats(
	link *domain.TrackedLink,
	filters *domain.AnalyticsFilters,
	summary *shortenerdomain.SummaryStats,
	daily *shortenerdomain.DailyStats,
	geo *shortenerdomain.GeoStats,
	referrer *shortenerdomain.ReferrerStats,
) *domain.ProviderStats {
	stats := &domain.ProviderStats{
		Origin:     domain.OriginReal,
		ByCountry:  map[string]int{},
		ByReferrer: map[string]int{},
		ByDevice:   map[string]int{},
	}

	missing := make([]string, 0, 4)
	if summary == nil {
		missing = append(missing, domain.FacetSummary)
	}
	if daily == nil {
		missing = append(missing, domain.FacetDaily)
	}
	if geo == nil {
		missing = append(missing, domain.FacetGeo)
	}
	if referrer == nil {
		missing = append(missing, domain.FacetReferrer)
	}

	if len(missing) > 0 {
		stats.Origin = domain.OriginPartial
		stats.MissingFacets = missing
	}

	stats.TotalClicks = totalFromSummary(summary)
	stats.UniqueClicks = uniqueFromSummary(summary, stats.TotalClicks)

	series := dailySeries(summary, daily)
	if len(series) == 0 && stats.TotalClicks > 0 && filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		// Último recurso: sintetizar a distribuição diária a partir do total
		series = GenerateDailyClicks(link.ID, *filters.StartDate, *filters.EndDate, stats.TotalClicks)
	}
	stats.Daily = filterSeriesToRange(series, filters)

	if geo != nil {
		for _, count := range geo.Data {
			stats.ByCountry[count.Country] += count.Clicks
		}
	}

	if referrer != nil {
		for _, count := range referrer.Data {
			stats.ByReferrer[count.Referrer] += count.Clicks
		}
	}

	return stats
}

// totalFromSummary aplica a ordem de preferência dos campos de total:
// total_clicks, clicks, human_clicks e por fim o total do detalhe do link
func totalFromSummary(summary *shortenerdomain.SummaryStats) int {
	if summary == nil {
		return 0
	}

	candidates := []*int{summary.TotalClicks, summary.Clicks, summary.HumanClicks}
	if summary.Link != nil {
		candidates = append(candidates, summary.Link.TotalClicks)
	}

	for _, candidate := range candidates {
		if candidate != nil && *candidate >= 0 {
			return *candidate
		}
	}

	return 0
}

// uniqueFromSummary prefere os campos explícitos de únicos e, na ausência de
// todos, assume 70% do total
func uniqueFromSummary(summary *shortenerdomain.SummaryStats, total int) int {
	if summary != nil {
		candidates := []*int{summary.UniqueClicks, summary.UniqueVisitors}
		for _, candidate := range candidates {
			if candidate != nil && *candidate >= 0 {
				return *candidate
			}
		}
	}

	return int(float64(total) * 0.7)
}

// dailySeries tenta os formatos de série em ordem de prioridade: data[] do
// endpoint diário, items[] do endpoint diário e a série embutida no resumo
func dailySeries(summary *shortenerdomain.SummaryStats, daily *shortenerdomain.DailyStats) []domain.DailyClickRecord {
	aliases := normalize.DefaultFieldAliases()

	matchers := [][]map[string]any{}
	if daily != nil {
		matchers = append(matchers, daily.Data, daily.Items)
	}
	if summary != nil {
		matchers = append(matchers, summary.Daily)
	}

	for _, raw := range matchers {
		if len(raw) == 0 {
			continue
		}

		series := normalize.DailySeries(raw, aliases)
		if len(series) > 0 {
			return series
		}
	}

	return nil
}

// filterSeriesToRange descarta entradas fora do período pedido antes da
// reconciliação, conforme o contrato do adaptador
func filterSeriesToRange(series []domain.DailyClickRecord, filters *domain.AnalyticsFilters) []domain.DailyClickRecord {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return series
	}

	startDay := filters.StartDate.Format(time.DateOnly)
	endDay := filters.EndDate.Format(time.DateOnly)

	filtered := make([]domain.DailyClickRecord, 0, len(series))
	for _, record := range series {
		if record.Date < startDay || record.Date > endDay {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered
}
