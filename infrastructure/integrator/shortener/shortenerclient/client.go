package shortenerclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	shortenerdomain "github.com/vfg2006/link-analytics-api/infrastructure/integrator/shortener/domain"
	"github.com/vfg2006/link-analytics-api/internal/config"
	"github.com/vfg2006/link-analytics-api/internal/domain"
)

type Client interface {
	GetSummaryStats(shortLinkID string, filters *domain.AnalyticsFilters) (*shortenerdomain.SummaryStats, error)
	GetDailyStats(shortLinkID string, filters *domain.AnalyticsFilters) (*shortenerdomain.DailyStats, error)
	GetGeoStats(shortLinkID string, filters *domain.AnalyticsFilters) (*shortenerdomain.GeoStats, error)
	GetReferrerStats(shortLinkID string, filters *domain.AnalyticsFilters) (*shortenerdomain.ReferrerStats, error)
	ExpandShortURL(shortURL string) (*shortenerdomain.ExpandResponse, error)
	IsConfigured() bool
}

type ShortenerClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ShortenerClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg: cfg,
	}
}

// IsConfigured informa se existe credencial para o provedor. Sem credencial o
// integrador cai no conjunto de dados simulado.
func (c *ShortenerClient) IsConfigured() bool {
	return c.cfg.Shortener.URL != "" && c.cfg.Shortener.APIKey != ""
}

// doGet executa uma chamada GET autenticada contra o provedor e devolve o
// corpo. Qualquer status fora de 2xx é erro: quem chama decide degradar.
func (c *ShortenerClient) doGet(endpoint string, params url.Values) ([]byte, error) {
	requestURL := endpoint
	if len(params) > 0 {
		requestURL = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição para o provedor de links curtos")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.Shortener.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição para o provedor de links curtos")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Wrapf(domain.ErrProviderUnavailable, "status %d em %s", resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta do provedor: %w", err)
	}

	return body, nil
}

// rangeParams monta os parâmetros de período aceitos pelo provedor
func rangeParams(filters *domain.AnalyticsFilters) url.Values {
	params := url.Values{}

	if filters != nil && filters.StartDate != nil {
		params.Add("since", filters.StartDate.Format(time.DateOnly))
	}
	if filters != nil && filters.EndDate != nil {
		params.Add("until", filters.EndDate.Format(time.DateOnly))
	}

	return params
}
