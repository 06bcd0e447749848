package domain

import (
	"time"
)

// LinkAnalyticsSnapshot representa uma entrada diária de analytics de um link
// pré-calculada pelo agendador e armazenada no banco
type LinkAnalyticsSnapshot struct {
	ID        int64             `json:"id"`
	LinkID    string            `json:"link_id"`
	Date      time.Time         `json:"date"`
	Analytics *PerLinkAnalytics `json:"analytics"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
