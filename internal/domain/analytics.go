package domain

import (
	"time"
)

// DataOrigin indica a procedência dos números de um link: reais, simulados ou
// parcialmente reais (alguma faceta do provedor externo falhou)
type DataOrigin string

const (
	OriginReal      DataOrigin = "real"
	OriginSimulated DataOrigin = "simulated"
	OriginPartial   DataOrigin = "partial"
)

// Direções de tendência da série diária
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// Facetas do provedor externo que podem falhar de forma independente
const (
	FacetSummary  = "summary"
	FacetDaily    = "daily"
	FacetGeo      = "geo"
	FacetReferrer = "referrer"
)

// DailyClickRecord é um ponto da série diária. Date é sempre o dia de
// calendário local no formato YYYY-MM-DD, sem componente de fuso horário.
type DailyClickRecord struct {
	Date         string `json:"date"`
	Clicks       int    `json:"clicks"`
	UniqueClicks int    `json:"unique_clicks,omitempty"`
}

// PerLinkAnalytics é o registro canônico de um link após a reconciliação das
// duas fontes e a anotação das métricas derivadas. Construído por requisição,
// nunca persistido diretamente.
type PerLinkAnalytics struct {
	LinkID        string `json:"link_id"`
	MediumCode    string `json:"medium_code"`
	MediumLabel   string `json:"medium_label"`
	SourceCode    string `json:"source_code"`
	SourceLabel   string `json:"source_label"`
	CampaignCode  string `json:"campaign_code"`
	CampaignLabel string `json:"campaign_label"`

	TotalClicks    int                `json:"total_clicks"`
	UniqueClicks   int                `json:"unique_clicks"`
	DailyBreakdown []DailyClickRecord `json:"daily_breakdown"`
	ByCountry      map[string]int     `json:"by_country"`
	ByReferrer     map[string]int     `json:"by_referrer"`
	ByDevice       map[string]int     `json:"by_device"`

	EffectivenessScore float64 `json:"effectiveness_score"`
	ConversionRate     float64 `json:"conversion_rate"`
	AvgDailyClicks     float64 `json:"avg_daily_clicks"`
	PeakDay            string  `json:"peak_day"`
	TrendDirection     string  `json:"trend_direction"`

	Origin        DataOrigin `json:"origin"`
	MissingFacets []string   `json:"missing_facets,omitempty"`
}

// AggregationRow é uma linha das matrizes de heatmap (medium, source ou hora).
// Invariante: Totals == soma de ByDate e ByDate cobre exatamente o eixo de
// datas final da resposta.
type AggregationRow struct {
	Key    string         `json:"key"`
	Label  string         `json:"label"`
	Totals int            `json:"totals"`
	ByDate map[string]int `json:"by_date"`
}

// InsightGroup agrega os links de uma mesma dimensão (medium, source ou campanha)
type InsightGroup struct {
	Key               string `json:"key"`
	Label             string `json:"label"`
	TotalClicks       int    `json:"total_clicks"`
	TotalUniqueClicks int    `json:"total_unique_clicks"`
	LinkCount         int    `json:"link_count"`
}

// InsightsSummary é o rollup agrupado por dimensão, ordenado por cliques
type InsightsSummary struct {
	MediumPerformance   []*InsightGroup `json:"medium_performance"`
	SourcePerformance   []*InsightGroup `json:"source_performance"`
	CampaignPerformance []*InsightGroup `json:"campaign_performance"`
	TotalLinks          int             `json:"total_links"`
	TotalClicks         int             `json:"total_clicks"`
	TotalUniqueClicks   int             `json:"total_unique_clicks"`
}

// AnalyticsResponse é a resposta completa do motor: um registro por link, as
// três matrizes, o rollup e o eixo de datas efetivamente usado (que pode ser
// mais largo que o período pedido)
type AnalyticsResponse struct {
	Links         []*PerLinkAnalytics `json:"links"`
	MediumHeatmap []*AggregationRow   `json:"medium_heatmap"`
	SourceHeatmap []*AggregationRow   `json:"source_heatmap"`
	HourHeatmap   []*AggregationRow   `json:"hour_heatmap"`
	Insights      *InsightsSummary    `json:"insights"`
	DateAxis      []string            `json:"date_axis"`
	Filters       *AnalyticsFilters   `json:"filters"`
}

// DailyCount é a linha crua do agregado diário vindo do log de cliques
type DailyCount struct {
	Date         time.Time
	Clicks       int
	UniqueClicks int
}

// BreakdownCount é um par rótulo/contagem dos agregados secundários
type BreakdownCount struct {
	Label string
	Count int
}

// HourlyCount é a linha crua da consulta (data, hora) usada pelo heatmap horário
type HourlyCount struct {
	Date   time.Time
	Hour   int
	Clicks int
}

// LinkClickStats é a forma que o log interno devolve para um link: totais,
// série diária e aberturas secundárias. Dias sem cliques não aparecem na
// série; o preenchimento com zeros é responsabilidade das agregações.
type LinkClickStats struct {
	TotalClicks  int
	UniqueClicks int
	Daily        []DailyCount
	ByCountry    []BreakdownCount
	ByReferrer   []BreakdownCount
	ByDevice     []BreakdownCount
}

// ProviderStats é a forma que o adaptador do provedor externo devolve para um
// link, já mapeada dos formatos de resposta do provedor para o modelo interno
type ProviderStats struct {
	TotalClicks   int
	UniqueClicks  int
	Daily         []DailyClickRecord
	ByCountry     map[string]int
	ByReferrer    map[string]int
	ByDevice      map[string]int
	Origin        DataOrigin
	MissingFacets []string
}

// ZeroLinkClickStats é a forma degradada usada quando a consulta ao log falha
func ZeroLinkClickStats() *LinkClickStats {
	return &LinkClickStats{
		Daily:      []DailyCount{},
		ByCountry:  []BreakdownCount{},
		ByReferrer: []BreakdownCount{},
		ByDevice:   []BreakdownCount{},
	}
}
