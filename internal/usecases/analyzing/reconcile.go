package analyzing

import (
	"sort"
	"time"

	"github.com/vfg2006/link-analytics-api/internal/domain"
)

// Reconcile combina o agregado do log interno com as estatísticas do provedor
// externo em um único registro canônico por link. As duas fontes se sobrepõem
// em vez de somar, então totais usam "a fonte mais completa vence" (máximo).
//
// Regra de desempate da série diária, aplicada uniformemente: o log interno é
// a verdade quando tem valor não-zero para a data; o valor externo só entra
// quando o interno está ausente ou explicitamente zerado (compensação de
// lacunas do log). Nenhuma data presente em qualquer fonte é descartada.
func Reconcile(link *domain.TrackedLink, internal *domain.LinkClickStats, external *domain.ProviderStats) *domain.PerLinkAnalytics {
	if internal == nil {
		internal = domain.ZeroLinkClickStats()
	}

	record := &domain.PerLinkAnalytics{
		LinkID:        link.ID,
		MediumCode:    link.MediumCode,
		MediumLabel:   link.MediumLabel,
		SourceCode:    link.SourceCode,
		SourceLabel:   link.SourceLabel,
		CampaignCode:  link.CampaignCode,
		CampaignLabel: link.CampaignLabel,
		Origin:        domain.OriginReal,
	}

	internalDaily := internalDailySeries(internal)

	if external == nil {
		record.TotalClicks = internal.TotalClicks
		record.UniqueClicks = internal.UniqueClicks
		record.DailyBreakdown = internalDaily
		record.ByCountry = breakdownToMap(internal.ByCountry)
		record.ByReferrer = breakdownToMap(internal.ByReferrer)
		record.ByDevice = breakdownToMap(internal.ByDevice)
		return record
	}

	record.TotalClicks = max(internal.TotalClicks, external.TotalClicks)
	record.UniqueClicks = max(internal.UniqueClicks, external.UniqueClicks)
	record.DailyBreakdown = mergeDailySeries(internalDaily, external.Daily)

	// Aberturas secundárias: o provedor tem taxonomia mais rica quando responde
	record.ByCountry = preferNonEmpty(external.ByCountry, breakdownToMap(internal.ByCountry))
	record.ByReferrer = preferNonEmpty(external.ByReferrer, breakdownToMap(internal.ByReferrer))
	record.ByDevice = preferNonEmpty(external.ByDevice, breakdownToMap(internal.ByDevice))

	record.Origin = external.Origin
	record.MissingFacets = external.MissingFacets

	return record
}

// internalDailySeries converte o agregado diário do log (datas time.Time) para
// a série canônica em dias de calendário locais
func internalDailySeries(internal *domain.LinkClickStats) []domain.DailyClickRecord {
	series := make([]domain.DailyClickRecord, 0, len(internal.Daily))

	for _, count := range internal.Daily {
		series = append(series, domain.DailyClickRecord{
			Date:         count.Date.Format(time.DateOnly),
			Clicks:       count.Clicks,
			UniqueClicks: count.UniqueClicks,
		})
	}

	return series
}

func mergeDailySeries(internal, external []domain.DailyClickRecord) []domain.DailyClickRecord {
	merged := make(map[string]domain.DailyClickRecord, len(internal)+len(external))

	for _, record := range internal {
		merged[record.Date] = record
	}

	for _, record := range external {
		existing, present := merged[record.Date]
		if !present {
			merged[record.Date] = domain.DailyClickRecord{Date: record.Date, Clicks: record.Clicks}
			continue
		}

		// Interno zerado com externo não-zero indica lacuna no log
		if existing.Clicks == 0 && record.Clicks > 0 {
			existing.Clicks = record.Clicks
			merged[record.Date] = existing
		}
	}

	series := make([]domain.DailyClickRecord, 0, len(merged))
	for _, record := range merged {
		series = append(series, record)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	return series
}

func breakdownToMap(counts []domain.BreakdownCount) map[string]int {
	result := make(map[string]int, len(counts))
	for _, count := range counts {
		result[count.Label] += count.Count
	}
	return result
}

func preferNonEmpty(external, internal map[string]int) map[string]int {
	if len(external) > 0 {
		return external
	}
	if internal == nil {
		return map[string]int{}
	}
	return internal
}
