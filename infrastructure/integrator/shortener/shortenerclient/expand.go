package shortenerclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	shortenerdomain "github.com/vfg2006/link-analytics-api/infrastructure/integrator/shortener/domain"
)

// ExpandShortURL resolve uma URL curta para o identificador interno do
// provedor, necessário para consultar os endpoints de estatísticas
func (c *ShortenerClient) ExpandShortURL(shortURL string) (*shortenerdomain.ExpandResponse, error) {
	endpoint := fmt.Sprintf("%s/expand", c.cfg.Shortener.URL)

	params := url.Values{}
	params.Add("short_url", shortURL)

	body, err := c.doGet(endpoint, params)
	if err != nil {
		return nil, err
	}

	var response shortenerdomain.ExpandResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).WithField("short_url", shortURL).Error("Erro ao decodificar JSON da expansão de URL")
		return nil, err
	}

	if response.ID == "" {
		return nil, fmt.Errorf("expansão não retornou identificador para %s", shortURL)
	}

	return &response, nil
}
