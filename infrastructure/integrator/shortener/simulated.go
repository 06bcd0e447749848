package shortener

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/vfg2006/link-analytics-api/internal/domain"
)

// Conjunto de dados simulado usado quando o provedor não está configurado ou
// está totalmente indisponível. Determinístico por link e período, para que
// ambientes sem credencial mostrem números estáveis — e sempre marcado com
// origem "simulated", nunca misturado silenciosamente a dados reais.

// SimulatedStats gera o conjunto completo de estatísticas ilustrativas de um
// link: total pseudo-aleatório entre 10 e 109, únicos em torno de 70% do
// total, série diária via GenerateDailyClicks e aberturas fixas ilustrativas.
func (s *ShortenerIntegrator) SimulatedStats(link *domain.TrackedLink, filters *domain.AnalyticsFilters) *domain.ProviderStats {
	rng := seededRand(link.ID)

	total := 10 + rng.Intn(100)
	unique := int(float64(total) * 0.7)

	stats := &domain.ProviderStats{
		TotalClicks:  total,
		UniqueClicks: unique,
		Origin:       domain.OriginSimulated,
	}

	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		stats.Daily = GenerateDailyClicks(link.ID, *filters.StartDate, *filters.EndDate, total)
	}

	// Aberturas ilustrativas com proporções fixas
	stats.ByCountry = map[string]int{
		"BR": int(float64(total) * 0.8),
		"PT": int(float64(total) * 0.12),
		"US": int(float64(total) * 0.08),
	}
	stats.ByReferrer = map[string]int{
		"Instagram": int(float64(total) * 0.45),
		"WhatsApp":  int(float64(total) * 0.3),
		"Direct":    int(float64(total) * 0.25),
	}
	stats.ByDevice = map[string]int{
		"mobile":  int(float64(total) * 0.7),
		"desktop": int(float64(total) * 0.25),
		"tablet":  int(float64(total) * 0.05),
	}

	return stats
}

// GenerateDailyClicks sintetiza uma entrada por dia do período, distribuindo
// o total de forma pseudo-aleatória determinística. A soma das entradas não
// precisa bater exatamente com o total: é apenas simulação de último recurso.
func GenerateDailyClicks(linkID string, startDate, endDate time.Time, total int) []domain.DailyClickRecord {
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, endDate.Location())

	if start.After(end) {
		return []domain.DailyClickRecord{}
	}

	// Dias contados pelo calendário, não por intervalos de 24h: em fusos com
	// horário de verão um dia pode ter 23 horas e a divisão por horas erraria
	days := 0
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		days++
	}

	perDay := total / days
	if perDay < 1 {
		perDay = 1
	}

	rng := seededRand(linkID + start.Format(time.DateOnly))

	series := make([]domain.DailyClickRecord, 0, days)
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		series = append(series, domain.DailyClickRecord{
			Date:   current.Format(time.DateOnly),
			Clicks: rng.Intn(perDay*2 + 1),
		})
	}

	return series
}

func seededRand(seed string) *rand.Rand {
	hasher := fnv.New64a()
	hasher.Write([]byte(seed))
	return rand.New(rand.NewSource(int64(hasher.Sum64())))
}
