package analyzing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/link-analytics-api/infrastructure/cache"
	"github.com/vfg2006/link-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/link-analytics-api/internal/config"
	"github.com/vfg2006/link-analytics-api/internal/domain"
	analyzingmocks "github.com/vfg2006/link-analytics-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	linkRepo     *mocks.MockTrackedLinkRepository
	clickLogRepo *mocks.MockClickLogRepository
	provider     *analyzingmocks.MockProviderStatser
}

func newTestService(t *testing.T) (*Service, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		linkRepo:     mocks.NewMockTrackedLinkRepository(ctrl),
		clickLogRepo: mocks.NewMockClickLogRepository(ctrl),
		provider:     analyzingmocks.NewMockProviderStatser(ctrl),
	}

	cfg := &config.Config{
		Analytics: config.Analytics{
			MaxConcurrentLinks: 2,
			LinkTimeoutSeconds: 5,
		},
	}

	return NewService(cfg, m.linkRepo, m.clickLogRepo, m.provider), m
}

func rangeFilters(start, end string) *domain.AnalyticsFilters {
	startDate, _ := time.ParseInLocation(time.DateOnly, start, time.Local)
	endDate, _ := time.ParseInLocation(time.DateOnly, end, time.Local)

	return &domain.AnalyticsFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	}
}

func scopedLink(id, medium, source, campaign string) *domain.TrackedLink {
	return &domain.TrackedLink{
		ID:            id,
		MediumCode:    medium,
		MediumLabel:   medium,
		SourceCode:    source,
		SourceLabel:   source,
		CampaignCode:  campaign,
		CampaignLabel: campaign,
	}
}

func TestService_GetAnalytics_InvalidRange(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.GetAnalytics(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	_, err = service.GetAnalytics(ctx, &domain.AnalyticsFilters{})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	_, err = service.GetAnalytics(ctx, rangeFilters("2025-03-05", "2025-03-01"))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestService_GetAnalytics_LinkRepositoryFailureFailsRequest(t *testing.T) {
	service, m := newTestService(t)

	m.linkRepo.EXPECT().
		ListByScope(gomock.Any()).
		Return(nil, errors.New("banco indisponível"))

	_, err := service.GetAnalytics(context.Background(), rangeFilters("2025-03-01", "2025-03-03"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao listar os links do escopo")
}

func TestService_GetAnalytics_InternalOnly(t *testing.T) {
	service, m := newTestService(t)
	filters := rangeFilters("2025-03-01", "2025-03-03")

	links := []*domain.TrackedLink{
		scopedLink("LNK002", "social", "whatsapp", "voluntarios-2025"),
		scopedLink("LNK001", "social", "instagram", "voluntarios-2025"),
	}

	m.linkRepo.EXPECT().ListByScope(filters).Return(links, nil)

	m.clickLogRepo.EXPECT().
		GetLinkClickStats("LNK001", gomock.Any(), gomock.Any()).
		Return(&domain.LinkClickStats{
			TotalClicks:  30,
			UniqueClicks: 20,
			Daily: []domain.DailyCount{
				{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), Clicks: 10, UniqueClicks: 7},
				{Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.Local), Clicks: 20, UniqueClicks: 13},
			},
		}, nil)

	m.clickLogRepo.EXPECT().
		GetLinkClickStats("LNK002", gomock.Any(), gomock.Any()).
		Return(&domain.LinkClickStats{
			TotalClicks:  5,
			UniqueClicks: 5,
			Daily: []domain.DailyCount{
				{Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.Local), Clicks: 5, UniqueClicks: 5},
			},
		}, nil)

	m.clickLogRepo.EXPECT().
		GetHourlyClicks(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.HourlyCount{
			{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), Hour: 12, Clicks: 8},
		}, nil)

	response, err := service.GetAnalytics(context.Background(), filters)
	assert.NoError(t, err)

	// Resposta determinística: registros ordenados por ID do link
	assert.Len(t, response.Links, 2)
	assert.Equal(t, "LNK001", response.Links[0].LinkID)
	assert.Equal(t, "LNK002", response.Links[1].LinkID)

	assert.Equal(t, []string{"2025-03-01", "2025-03-02", "2025-03-03"}, response.DateAxis)

	// Séries por link preenchidas sobre o eixo inteiro
	for _, record := range response.Links {
		assert.Len(t, record.DailyBreakdown, 3)
		for i, day := range response.DateAxis {
			assert.Equal(t, day, record.DailyBreakdown[i].Date)
		}
	}
	assert.Equal(t, 0, response.Links[0].DailyBreakdown[2].Clicks)
	assert.Equal(t, 5, response.Links[1].DailyBreakdown[2].Clicks)

	// Métricas anotadas sobre a série antes do preenchimento com zeros
	assert.Equal(t, 15.0, response.Links[0].AvgDailyClicks)
	assert.Equal(t, "2025-03-02", response.Links[0].PeakDay)

	// Matrizes e rollup montados sobre todos os links
	assert.Len(t, response.MediumHeatmap, 1)
	assert.Equal(t, 35, response.MediumHeatmap[0].Totals)
	assert.Len(t, response.SourceHeatmap, 2)
	assert.Len(t, response.HourHeatmap, 24)
	assert.Equal(t, 8, response.HourHeatmap[12].Totals)

	assert.Equal(t, 2, response.Insights.TotalLinks)
	assert.Equal(t, 35, response.Insights.TotalClicks)
	assert.Equal(t, 25, response.Insights.TotalUniqueClicks)
}

func TestService_GetAnalytics_InternalFailureDegradesLink(t *testing.T) {
	service, m := newTestService(t)
	filters := rangeFilters("2025-03-01", "2025-03-02")

	links := []*domain.TrackedLink{scopedLink("LNK001", "social", "instagram", "voluntarios-2025")}

	m.linkRepo.EXPECT().ListByScope(filters).Return(links, nil)

	m.clickLogRepo.EXPECT().
		GetLinkClickStats("LNK001", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("consulta falhou"))

	m.clickLogRepo.EXPECT().
		GetHourlyClicks(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	response, err := service.GetAnalytics(context.Background(), filters)
	assert.NoError(t, err)

	// A falha degrada apenas o link, com a forma zerada no lugar
	assert.Len(t, response.Links, 1)
	assert.Equal(t, 0, response.Links[0].TotalClicks)
	assert.Equal(t, 0.0, response.Links[0].EffectivenessScore)
	assert.Equal(t, domain.TrendStable, response.Links[0].TrendDirection)
	assert.Len(t, response.Links[0].DailyBreakdown, 2)
}

func TestService_GetAnalytics_ProviderFailureKeepsInternal(t *testing.T) {
	service, m := newTestService(t)
	filters := rangeFilters("2025-03-01", "2025-03-02")
	filters.WithProvider = true

	links := []*domain.TrackedLink{scopedLink("LNK001", "social", "instagram", "voluntarios-2025")}

	m.linkRepo.EXPECT().ListByScope(filters).Return(links, nil)

	m.clickLogRepo.EXPECT().
		GetLinkClickStats("LNK001", gomock.Any(), gomock.Any()).
		Return(&domain.LinkClickStats{
			TotalClicks:  12,
			UniqueClicks: 9,
			Daily: []domain.DailyCount{
				{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), Clicks: 12, UniqueClicks: 9},
			},
		}, nil)

	m.provider.EXPECT().
		GetLinkStats(links[0], filters).
		Return(nil, errors.New("provedor fora do ar"))

	m.clickLogRepo.EXPECT().
		GetHourlyClicks(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	response, err := service.GetAnalytics(context.Background(), filters)
	assert.NoError(t, err)

	assert.Equal(t, 12, response.Links[0].TotalClicks)
	assert.Equal(t, domain.OriginReal, response.Links[0].Origin)
}

func TestService_GetAnalytics_HourlyFailureZeroesHourMatrix(t *testing.T) {
	service, m := newTestService(t)
	filters := rangeFilters("2025-03-01", "2025-03-01")

	links := []*domain.TrackedLink{scopedLink("LNK001", "social", "instagram", "voluntarios-2025")}

	m.linkRepo.EXPECT().ListByScope(filters).Return(links, nil)

	m.clickLogRepo.EXPECT().
		GetLinkClickStats("LNK001", gomock.Any(), gomock.Any()).
		Return(&domain.LinkClickStats{TotalClicks: 3}, nil)

	m.clickLogRepo.EXPECT().
		GetHourlyClicks(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("agregado horário indisponível"))

	response, err := service.GetAnalytics(context.Background(), filters)
	assert.NoError(t, err)

	assert.Len(t, response.HourHeatmap, 24)
	for _, row := range response.HourHeatmap {
		assert.Equal(t, 0, row.Totals)
	}
}

func TestService_GetAnalytics_EmptyScope(t *testing.T) {
	service, m := newTestService(t)
	filters := rangeFilters("2025-03-01", "2025-03-02")

	m.linkRepo.EXPECT().ListByScope(filters).Return(nil, nil)

	response, err := service.GetAnalytics(context.Background(), filters)
	assert.NoError(t, err)

	assert.Empty(t, response.Links)
	assert.Empty(t, response.MediumHeatmap)
	assert.Len(t, response.HourHeatmap, 24)
	assert.Equal(t, 0, response.Insights.TotalLinks)
	assert.Equal(t, []string{"2025-03-01", "2025-03-02"}, response.DateAxis)
}

// stubResponseCache implementa cache.ResponseCache em memória para os testes
type stubResponseCache struct {
	stored   map[string]*domain.AnalyticsResponse
	setCalls int
}

func newStubResponseCache() *stubResponseCache {
	return &stubResponseCache{stored: map[string]*domain.AnalyticsResponse{}}
}

func (c *stubResponseCache) GetAnalyticsResponse(_ context.Context, key string) (*domain.AnalyticsResponse, error) {
	if response, exists := c.stored[key]; exists {
		return response, nil
	}
	return nil, cache.ErrCacheMiss
}

func (c *stubResponseCache) SetAnalyticsResponse(_ context.Context, key string, response *domain.AnalyticsResponse) error {
	c.stored[key] = response
	c.setCalls++
	return nil
}

func (c *stubResponseCache) Invalidate(context.Context, string) error {
	return nil
}

func TestService_GetAnalytics_CacheHitSkipsPipeline(t *testing.T) {
	service, _ := newTestService(t)
	filters := rangeFilters("2025-03-01", "2025-03-02")

	cached := &domain.AnalyticsResponse{DateAxis: []string{"2025-03-01", "2025-03-02"}}

	responseCache := newStubResponseCache()
	responseCache.stored[analyticsCacheKey(filters)] = cached

	service.WithCache(responseCache)

	// Nenhuma expectativa nos repositórios: o cache responde sozinho
	response, err := service.GetAnalytics(context.Background(), filters)
	assert.NoError(t, err)
	assert.Same(t, cached, response)
}

func TestService_GetAnalytics_CacheMissComputesAndStores(t *testing.T) {
	service, m := newTestService(t)
	filters := rangeFilters("2025-03-01", "2025-03-01")

	responseCache := newStubResponseCache()
	service.WithCache(responseCache)

	m.linkRepo.EXPECT().ListByScope(filters).Return(nil, nil)

	response, err := service.GetAnalytics(context.Background(), filters)
	assert.NoError(t, err)

	assert.Equal(t, 1, responseCache.setCalls)
	assert.Equal(t, response, responseCache.stored[analyticsCacheKey(filters)])
}

func TestService_GetLinkAnalytics(t *testing.T) {
	service, m := newTestService(t)
	filters := rangeFilters("2025-03-01", "2025-03-03")

	link := scopedLink("LNK001", "social", "instagram", "voluntarios-2025")

	m.linkRepo.EXPECT().GetByID("LNK001").Return(link, nil)

	m.clickLogRepo.EXPECT().
		GetLinkClickStats("LNK001", gomock.Any(), gomock.Any()).
		Return(&domain.LinkClickStats{
			TotalClicks:  10,
			UniqueClicks: 6,
			Daily: []domain.DailyCount{
				{Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.Local), Clicks: 10, UniqueClicks: 6},
			},
		}, nil)

	record, err := service.GetLinkAnalytics(context.Background(), "LNK001", filters)
	assert.NoError(t, err)

	assert.Equal(t, "LNK001", record.LinkID)
	assert.Equal(t, 10, record.TotalClicks)
	assert.Equal(t, 60.0, record.ConversionRate)
	assert.Equal(t, "2025-03-02", record.PeakDay)

	// Série preenchida sobre o eixo do período
	assert.Len(t, record.DailyBreakdown, 3)
	assert.Equal(t, "2025-03-01", record.DailyBreakdown[0].Date)
	assert.Equal(t, 0, record.DailyBreakdown[0].Clicks)
	assert.Equal(t, 10, record.DailyBreakdown[1].Clicks)
}

func TestService_GetLinkAnalytics_NotFound(t *testing.T) {
	service, m := newTestService(t)

	m.linkRepo.EXPECT().GetByID("LNK404").Return(nil, nil)

	_, err := service.GetLinkAnalytics(context.Background(), "LNK404", rangeFilters("2025-03-01", "2025-03-02"))
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}

func TestService_GetLinkAnalytics_InvalidRange(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.GetLinkAnalytics(context.Background(), "LNK001", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestPolicyFromConfig(t *testing.T) {
	// Sem configuração: valores de referência
	policy := policyFromConfig(nil)
	assert.Equal(t, DefaultScorePolicy(), policy)

	policy = policyFromConfig(&config.Config{})
	assert.Equal(t, DefaultScorePolicy(), policy)

	// Pesos configurados substituem os de referência campo a campo
	policy = policyFromConfig(&config.Config{
		Analytics: config.Analytics{
			VolumeWeight:   0.6,
			VolumeTarget:   200,
			TrendThreshold: 0.25,
		},
	})
	assert.Equal(t, 0.6, policy.VolumeWeight)
	assert.Equal(t, 0.4, policy.UniqueWeight)
	assert.Equal(t, 200.0, policy.VolumeTarget)
	assert.Equal(t, 0.25, policy.TrendThreshold)
}
