package shortenerclient

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	shortenerdomain "github.com/vfg2006/link-analytics-api/infrastructure/integrator/shortener/domain"
	"github.com/vfg2006/link-analytics-api/internal/domain"
)

// GetReferrerStats busca a abertura de cliques por referrer de um link curto
func (c *ShortenerClient) GetReferrerStats(shortLinkID string, filters *domain.AnalyticsFilters) (*shortenerdomain.ReferrerStats, error) {
	endpoint := fmt.Sprintf("%s/links/%s/stats/referrers", c.cfg.Shortener.URL, shortLinkID)

	body, err := c.doGet(endpoint, rangeParams(filters))
	if err != nil {
		return nil, err
	}

	var stats shortenerdomain.ReferrerStats
	if err := json.Unmarshal(body, &stats); err != nil {
		logrus.WithError(err).WithField("short_link_id", shortLinkID).Error("Erro ao decodificar JSON da abertura por referrer")
		return nil, err
	}

	return &stats, nil
}
