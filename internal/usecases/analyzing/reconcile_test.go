package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/link-analytics-api/internal/domain"
)

func testLink() *domain.TrackedLink {
	return &domain.TrackedLink{
		ID:            "LNK001",
		MediumCode:    "social",
		MediumLabel:   "Redes Sociais",
		SourceCode:    "instagram",
		SourceLabel:   "Instagram",
		CampaignCode:  "voluntarios-2025",
		CampaignLabel: "Voluntários 2025",
	}
}

func internalStats() *domain.LinkClickStats {
	return &domain.LinkClickStats{
		TotalClicks:  50,
		UniqueClicks: 30,
		Daily: []domain.DailyCount{
			{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), Clicks: 20, UniqueClicks: 12},
			{Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.Local), Clicks: 0},
			{Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.Local), Clicks: 30, UniqueClicks: 18},
		},
		ByCountry:  []domain.BreakdownCount{{Label: "BR", Count: 50}},
		ByReferrer: []domain.BreakdownCount{{Label: "Direct", Count: 50}},
		ByDevice:   []domain.BreakdownCount{{Label: "mobile", Count: 50}},
	}
}

func TestReconcile_InternalOnly(t *testing.T) {
	record := Reconcile(testLink(), internalStats(), nil)

	assert.Equal(t, "LNK001", record.LinkID)
	assert.Equal(t, "voluntarios-2025", record.CampaignCode)
	assert.Equal(t, 50, record.TotalClicks)
	assert.Equal(t, 30, record.UniqueClicks)
	assert.Equal(t, domain.OriginReal, record.Origin)
	assert.Empty(t, record.MissingFacets)

	assert.Equal(t, []domain.DailyClickRecord{
		{Date: "2025-03-01", Clicks: 20, UniqueClicks: 12},
		{Date: "2025-03-02"},
		{Date: "2025-03-03", Clicks: 30, UniqueClicks: 18},
	}, record.DailyBreakdown)

	assert.Equal(t, map[string]int{"BR": 50}, record.ByCountry)
	assert.Equal(t, map[string]int{"Direct": 50}, record.ByReferrer)
	assert.Equal(t, map[string]int{"mobile": 50}, record.ByDevice)
}

func TestReconcile_NilInternalDegradesToZeroShape(t *testing.T) {
	record := Reconcile(testLink(), nil, nil)

	assert.Equal(t, 0, record.TotalClicks)
	assert.Equal(t, 0, record.UniqueClicks)
	assert.Empty(t, record.DailyBreakdown)
	assert.Equal(t, domain.OriginReal, record.Origin)
}

func TestReconcile_TotalsUseMostCompleteSource(t *testing.T) {
	external := &domain.ProviderStats{
		TotalClicks:  80,
		UniqueClicks: 20,
		Origin:       domain.OriginReal,
	}

	record := Reconcile(testLink(), internalStats(), external)

	// Cada total vem da fonte mais completa, de forma independente
	assert.Equal(t, 80, record.TotalClicks)
	assert.Equal(t, 30, record.UniqueClicks)
}

func TestReconcile_DailyTieBreak(t *testing.T) {
	external := &domain.ProviderStats{
		TotalClicks: 60,
		Origin:      domain.OriginReal,
		Daily: []domain.DailyClickRecord{
			{Date: "2025-03-01", Clicks: 99}, // interno não-zero vence
			{Date: "2025-03-02", Clicks: 15}, // interno zerado: lacuna compensada
			{Date: "2025-03-04", Clicks: 7},  // só existe no externo: entra
		},
	}

	record := Reconcile(testLink(), internalStats(), external)

	assert.Equal(t, []domain.DailyClickRecord{
		{Date: "2025-03-01", Clicks: 20, UniqueClicks: 12},
		{Date: "2025-03-02", Clicks: 15},
		{Date: "2025-03-03", Clicks: 30, UniqueClicks: 18},
		{Date: "2025-03-04", Clicks: 7},
	}, record.DailyBreakdown)
}

func TestReconcile_BreakdownsPreferProvider(t *testing.T) {
	external := &domain.ProviderStats{
		Origin:     domain.OriginReal,
		ByCountry:  map[string]int{"BR": 40, "PT": 10},
		ByReferrer: map[string]int{},
		ByDevice:   nil,
	}

	record := Reconcile(testLink(), internalStats(), external)

	// Provedor respondeu: taxonomia dele vence
	assert.Equal(t, map[string]int{"BR": 40, "PT": 10}, record.ByCountry)
	// Provedor vazio: cai no interno
	assert.Equal(t, map[string]int{"Direct": 50}, record.ByReferrer)
	assert.Equal(t, map[string]int{"mobile": 50}, record.ByDevice)
}

func TestReconcile_PropagatesOriginAndMissingFacets(t *testing.T) {
	external := &domain.ProviderStats{
		Origin:        domain.OriginPartial,
		MissingFacets: []string{domain.FacetGeo, domain.FacetReferrer},
	}

	record := Reconcile(testLink(), internalStats(), external)

	assert.Equal(t, domain.OriginPartial, record.Origin)
	assert.Equal(t, []string{domain.FacetGeo, domain.FacetReferrer}, record.MissingFacets)
}

func TestReconcile_InflatedProviderUniquesKeepScoreBounded(t *testing.T) {
	internal := internalStats()
	internal.TotalClicks = 50
	internal.UniqueClicks = 10

	external := &domain.ProviderStats{
		TotalClicks:  10,
		UniqueClicks: 100,
		Origin:       domain.OriginReal,
	}

	record := Reconcile(testLink(), internal, external)

	// O merge por máximo pode produzir únicos acima do total quando o provedor
	// reporta dados inconsistentes; as métricas derivadas continuam dentro do teto
	assert.Equal(t, 50, record.TotalClicks)
	assert.Equal(t, 100, record.UniqueClicks)

	score := EffectivenessScore(record.TotalClicks, record.UniqueClicks, record.DailyBreakdown, DefaultScorePolicy())
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)

	rate := ConversionRate(record.TotalClicks, record.UniqueClicks)
	assert.LessOrEqual(t, rate, 100.0)
}

func TestReconcile_SimulatedOriginSurvivesMerge(t *testing.T) {
	external := &domain.ProviderStats{
		TotalClicks:  42,
		UniqueClicks: 29,
		Origin:       domain.OriginSimulated,
	}

	record := Reconcile(testLink(), domain.ZeroLinkClickStats(), external)

	assert.Equal(t, domain.OriginSimulated, record.Origin)
	assert.Equal(t, 42, record.TotalClicks)
}
