package shortenerclient

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	shortenerdomain "github.com/vfg2006/link-analytics-api/infrastructure/integrator/shortener/domain"
	"github.com/vfg2006/link-analytics-api/internal/domain"
)

// GetGeoStats busca a abertura geográfica de cliques de um link curto
func (c *ShortenerClient) GetGeoStats(shortLinkID string, filters *domain.AnalyticsFilters) (*shortenerdomain.GeoStats, error) {
	endpoint := fmt.Sprintf("%s/links/%s/stats/countries", c.cfg.Shortener.URL, shortLinkID)

	body, err := c.doGet(endpoint, rangeParams(filters))
	if err != nil {
		return nil, err
	}

	var stats shortenerdomain.GeoStats
	if err := json.Unmarshal(body, &stats); err != nil {
		logrus.WithError(err).WithField("short_link_id", shortLinkID).Error("Erro ao decodificar JSON da abertura geográfica")
		return nil, err
	}

	return &stats, nil
}
