package domain

import (
	"time"
)

// TrackedLink representa uma combinação UTM rastreável pertencente a uma campanha
// de recrutamento. Os códigos e rótulos de medium/source/campaign já chegam
// resolvidos do repositório de links.
type TrackedLink struct {
	ID            string  `json:"id"`
	EntityID      string  `json:"entity_id"`
	CampaignID    string  `json:"campaign_id"`
	SourceID      string  `json:"source_id"`
	MediumID      string  `json:"medium_id"`
	FormID        *string `json:"form_id,omitempty"`
	ShortLinkID   *string `json:"short_link_id,omitempty"`
	ShortURL      *string `json:"short_url,omitempty"`
	MediumCode    string  `json:"medium_code"`
	MediumLabel   string  `json:"medium_label"`
	SourceCode    string  `json:"source_code"`
	SourceLabel   string  `json:"source_label"`
	CampaignCode  string  `json:"campaign_code"`
	CampaignLabel string  `json:"campaign_label"`
}

// AnalyticsFilters define o período e o escopo de uma requisição de analytics
type AnalyticsFilters struct {
	StartDate    *time.Time
	EndDate      *time.Time
	EntityID     *string
	CampaignID   *string
	SourceID     *string
	MediumID     *string
	FormID       *string
	LinkIDs      []string
	WithProvider bool
}
