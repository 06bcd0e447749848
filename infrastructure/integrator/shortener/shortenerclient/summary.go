package shortenerclient

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	shortenerdomain "github.com/vfg2006/link-analytics-api/infrastructure/integrator/shortener/domain"
	"github.com/vfg2006/link-analytics-api/internal/domain"
)

// GetSummaryStats busca as estatísticas resumidas de um link curto
func (c *ShortenerClient) GetSummaryStats(shortLinkID string, filters *domain.AnalyticsFilters) (*shortenerdomain.SummaryStats, error) {
	endpoint := fmt.Sprintf("%s/links/%s/stats", c.cfg.Shortener.URL, shortLinkID)

	body, err := c.doGet(endpoint, rangeParams(filters))
	if err != nil {
		return nil, err
	}

	var stats shortenerdomain.SummaryStats
	if err := json.Unmarshal(body, &stats); err != nil {
		logrus.WithError(err).WithField("short_link_id", shortLinkID).Error("Erro ao decodificar JSON do resumo de estatísticas")
		return nil, err
	}

	return &stats, nil
}
