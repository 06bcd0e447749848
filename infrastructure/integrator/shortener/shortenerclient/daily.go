package shortenerclient

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	shortenerdomain "github.com/vfg2006/link-analytics-api/infrastructure/integrator/shortener/domain"
	"github.com/vfg2006/link-analytics-api/internal/domain"
)

// GetDailyStats busca a série de cliques agrupada por dia de um link curto
func (c *ShortenerClient) GetDailyStats(shortLinkID string, filters *domain.AnalyticsFilters) (*shortenerdomain.DailyStats, error) {
	endpoint := fmt.Sprintf("%s/links/%s/stats/daily", c.cfg.Shortener.URL, shortLinkID)

	params := rangeParams(filters)
	params.Add("group_by", "day")

	body, err := c.doGet(endpoint, params)
	if err != nil {
		return nil, err
	}

	var stats shortenerdomain.DailyStats
	if err := json.Unmarshal(body, &stats); err != nil {
		logrus.WithError(err).WithField("short_link_id", shortLinkID).Error("Erro ao decodificar JSON da série diária")
		return nil, err
	}

	return &stats, nil
}
