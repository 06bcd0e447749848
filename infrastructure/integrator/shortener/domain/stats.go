package shortenerdomain

// Tipos de resposta do provedor de links curtos. O provedor não é confiável:
// campos mudam de nome entre versões, então os numéricos são ponteiros e as
// séries diárias chegam como registros crus a serem normalizados.

// SummaryStats é a resposta do endpoint de estatísticas resumidas
type SummaryStats struct {
	TotalClicks    *int             `json:"total_clicks"`
	Clicks         *int             `json:"clicks"`
	HumanClicks    *int             `json:"human_clicks"`
	UniqueClicks   *int             `json:"unique_clicks"`
	UniqueVisitors *int             `json:"unique_visitors"`
	Link           *LinkDetail      `json:"link"`
	Daily          []map[string]any `json:"daily"`
}

// LinkDetail é o detalhamento do link embutido em algumas respostas de resumo
type LinkDetail struct {
	TotalClicks *int `json:"total_clicks"`
}

// DailyStats é a resposta do endpoint de estatísticas agrupadas por dia.
// Dependendo da versão do provedor a série vem em "data" ou em "items".
type DailyStats struct {
	Data  []map[string]any `json:"data"`
	Items []map[string]any `json:"items"`
}

// GeoStats é a resposta do endpoint de estatísticas geográficas
type GeoStats struct {
	Data []CountryCount `json:"data"`
}

type CountryCount struct {
	Country string `json:"country"`
	Clicks  int    `json:"clicks"`
}

// ReferrerStats é a resposta do endpoint de estatísticas de referrer
type ReferrerStats struct {
	Data []ReferrerCount `json:"data"`
}

type ReferrerCount struct {
	Referrer string `json:"referrer"`
	Clicks   int    `json:"clicks"`
}

// ExpandResponse é a resposta da expansão de uma URL curta para o
// identificador interno do provedor
type ExpandResponse struct {
	ID string `json:"id"`
}
