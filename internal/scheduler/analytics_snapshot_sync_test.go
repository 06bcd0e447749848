package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/link-analytics-api/infrastructure/cache"
	"github.com/vfg2006/link-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/link-analytics-api/internal/domain"
	analyzingmocks "github.com/vfg2006/link-analytics-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func TestAnalyticsSnapshotSyncService_processLinkSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockLinkRepo := mocks.NewMockTrackedLinkRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockAnalyticsSnapshotRepository(ctrl)
	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	// Service
	service := &AnalyticsSnapshotSyncService{
		config: AnalyticsSnapshotSyncConfig{
			LookbackDays:      2,
			RetentionDays:     180,
			MaxConcurrentJobs: 1,
			SyncEnabled:       true,
		},
		linkRepo:     mockLinkRepo,
		snapshotRepo: mockSnapshotRepo,
		analyzer:     mockAnalyzer,
	}

	link := &domain.TrackedLink{
		ID:           "LNK001",
		CampaignCode: "voluntarios-2025",
	}
	date := time.Date(2025, 3, 10, 15, 30, 0, 0, time.Local)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		setup func()
	}{
		{
			name: "Registro real - snapshot salvo com a data truncada para o dia",
			setup: func() {
				record := &domain.PerLinkAnalytics{
					LinkID:      "LNK001",
					TotalClicks: 42,
					Origin:      domain.OriginReal,
				}

				mockAnalyzer.EXPECT().
					GetLinkAnalytics(gomock.Any(), "LNK001", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, filters *domain.AnalyticsFilters) (*domain.PerLinkAnalytics, error) {
						// O snapshot consolida exatamente um dia, com o provedor habilitado
						assert.Equal(t, day, *filters.StartDate)
						assert.Equal(t, day, *filters.EndDate)
						assert.True(t, filters.WithProvider)
						return record, nil
					})

				mockSnapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(snapshot *domain.LinkAnalyticsSnapshot) error {
						assert.Equal(t, "LNK001", snapshot.LinkID)
						assert.Equal(t, day, snapshot.Date)
						assert.Same(t, record, snapshot.Analytics)
						return nil
					})
			},
		},
		{
			name: "Registro parcial - também vira histórico",
			setup: func() {
				mockAnalyzer.EXPECT().
					GetLinkAnalytics(gomock.Any(), "LNK001", gomock.Any()).
					Return(&domain.PerLinkAnalytics{
						LinkID:        "LNK001",
						Origin:        domain.OriginPartial,
						MissingFacets: []string{domain.FacetGeo},
					}, nil)

				mockSnapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "Registro simulado - nunca persistido",
			setup: func() {
				mockAnalyzer.EXPECT().
					GetLinkAnalytics(gomock.Any(), "LNK001", gomock.Any()).
					Return(&domain.PerLinkAnalytics{
						LinkID: "LNK001",
						Origin: domain.OriginSimulated,
					}, nil)

				// Nenhuma expectativa de SaveOrUpdate: simulação não vira histórico
			},
		},
		{
			name: "Erro no analyzer - snapshot daquele dia é pulado",
			setup: func() {
				mockAnalyzer.EXPECT().
					GetLinkAnalytics(gomock.Any(), "LNK001", gomock.Any()).
					Return(nil, errors.New("link não encontrado"))
			},
		},
		{
			name: "Erro ao salvar - não propaga, apenas loga",
			setup: func() {
				mockAnalyzer.EXPECT().
					GetLinkAnalytics(gomock.Any(), "LNK001", gomock.Any()).
					Return(&domain.PerLinkAnalytics{LinkID: "LNK001", Origin: domain.OriginReal}, nil)

				mockSnapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(errors.New("banco indisponível"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			service.processLinkSnapshot(link, date)
		})
	}
}

func TestAnalyticsSnapshotSyncService_syncAllSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinkRepo := mocks.NewMockTrackedLinkRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockAnalyticsSnapshotRepository(ctrl)
	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	service := &AnalyticsSnapshotSyncService{
		config: AnalyticsSnapshotSyncConfig{
			LookbackDays:      2,
			RetentionDays:     180,
			MaxConcurrentJobs: 1,
			SyncEnabled:       true,
		},
		linkRepo:     mockLinkRepo,
		snapshotRepo: mockSnapshotRepo,
		analyzer:     mockAnalyzer,
	}

	links := []*domain.TrackedLink{
		{ID: "LNK001", CampaignCode: "voluntarios-2025"},
		{ID: "LNK002", CampaignCode: "mutirao-visao"},
	}

	mockLinkRepo.EXPECT().ListAll().Return(links, nil)

	// Nenhum snapshot existente: o período inteiro é consolidado
	mockSnapshotRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(2)

	// 2 links x 2 dias de lookback = 4 consolidações
	mockAnalyzer.EXPECT().
		GetLinkAnalytics(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.PerLinkAnalytics{Origin: domain.OriginReal}, nil).
		Times(4)

	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(nil).
		Times(4)

	mockSnapshotRepo.EXPECT().
		DeleteOlderThan(180).
		Return(int64(3), nil)

	service.syncAllSnapshots()

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestAnalyticsSnapshotSyncService_syncSkipsDaysAlreadySnapshotted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinkRepo := mocks.NewMockTrackedLinkRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockAnalyticsSnapshotRepository(ctrl)
	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	service := &AnalyticsSnapshotSyncService{
		config: AnalyticsSnapshotSyncConfig{
			LookbackDays:      2,
			MaxConcurrentJobs: 1,
			SyncEnabled:       true,
		},
		linkRepo:     mockLinkRepo,
		snapshotRepo: mockSnapshotRepo,
		analyzer:     mockAnalyzer,
	}

	link := &domain.TrackedLink{ID: "LNK001", CampaignCode: "voluntarios-2025"}
	mockLinkRepo.EXPECT().ListAll().Return([]*domain.TrackedLink{link}, nil)

	// Anteontem já tem snapshot persistido; apenas ontem deve ser consolidado
	dayBeforeYesterday := time.Now().AddDate(0, 0, -2)
	yesterday := time.Now().AddDate(0, 0, -1)

	mockSnapshotRepo.EXPECT().
		GetByDateRange("LNK001", gomock.Any(), gomock.Any()).
		Return([]*domain.LinkAnalyticsSnapshot{
			{LinkID: "LNK001", Date: dayBeforeYesterday},
		}, nil)

	mockAnalyzer.EXPECT().
		GetLinkAnalytics(gomock.Any(), "LNK001", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, filters *domain.AnalyticsFilters) (*domain.PerLinkAnalytics, error) {
			assert.Equal(t, yesterday.Format(time.DateOnly), filters.StartDate.Format(time.DateOnly))
			return &domain.PerLinkAnalytics{LinkID: "LNK001", Origin: domain.OriginReal}, nil
		})

	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(nil)

	mockSnapshotRepo.EXPECT().DeleteOlderThan(gomock.Any()).Return(int64(0), nil).AnyTimes()

	service.syncAllSnapshots()
}

func TestAnalyticsSnapshotSyncService_snapshotQueryErrorReprocessesAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockAnalyticsSnapshotRepository(ctrl)

	service := &AnalyticsSnapshotSyncService{
		snapshotRepo: mockSnapshotRepo,
	}

	mockSnapshotRepo.EXPECT().
		GetByDateRange("LNK001", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("banco indisponível"))

	// Falha na consulta não bloqueia a sincronização: todos os dias reprocessam
	dates := []time.Time{time.Now().AddDate(0, 0, -2), time.Now().AddDate(0, 0, -1)}
	assert.Empty(t, service.snapshottedDays("LNK001", dates))
}

// stubResponseCache registra os padrões de invalidação solicitados pelo agendador
type stubResponseCache struct {
	patterns []string
}

func (c *stubResponseCache) GetAnalyticsResponse(context.Context, string) (*domain.AnalyticsResponse, error) {
	return nil, cache.ErrCacheMiss
}

func (c *stubResponseCache) SetAnalyticsResponse(context.Context, string, *domain.AnalyticsResponse) error {
	return nil
}

func (c *stubResponseCache) Invalidate(_ context.Context, pattern string) error {
	c.patterns = append(c.patterns, pattern)
	return nil
}

func TestAnalyticsSnapshotSyncService_syncInvalidatesResponseCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinkRepo := mocks.NewMockTrackedLinkRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockAnalyticsSnapshotRepository(ctrl)
	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	responseCache := &stubResponseCache{}

	service := (&AnalyticsSnapshotSyncService{
		config: AnalyticsSnapshotSyncConfig{
			LookbackDays:      1,
			MaxConcurrentJobs: 1,
			SyncEnabled:       true,
		},
		linkRepo:     mockLinkRepo,
		snapshotRepo: mockSnapshotRepo,
		analyzer:     mockAnalyzer,
	}).WithCache(responseCache)

	link := &domain.TrackedLink{ID: "LNK001", CampaignCode: "voluntarios-2025"}
	mockLinkRepo.EXPECT().ListAll().Return([]*domain.TrackedLink{link}, nil)

	// Ontem já consolidado: nada a recalcular, mas o cache ainda é invalidado
	mockSnapshotRepo.EXPECT().
		GetByDateRange("LNK001", gomock.Any(), gomock.Any()).
		Return([]*domain.LinkAnalyticsSnapshot{
			{LinkID: "LNK001", Date: time.Now().AddDate(0, 0, -1)},
		}, nil)

	service.syncAllSnapshots()

	assert.Equal(t, []string{"analytics:*"}, responseCache.patterns)
}

func TestAnalyticsSnapshotSyncService_syncAllSnapshots_ListAllError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinkRepo := mocks.NewMockTrackedLinkRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockAnalyticsSnapshotRepository(ctrl)
	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	service := &AnalyticsSnapshotSyncService{
		config: AnalyticsSnapshotSyncConfig{
			LookbackDays:      2,
			RetentionDays:     180,
			MaxConcurrentJobs: 1,
		},
		linkRepo:     mockLinkRepo,
		snapshotRepo: mockSnapshotRepo,
		analyzer:     mockAnalyzer,
	}

	// Falha na listagem interrompe a sincronização sem tocar nos snapshots
	mockLinkRepo.EXPECT().ListAll().Return(nil, errors.New("banco indisponível"))

	service.syncAllSnapshots()
}

func TestAnalyticsSnapshotSyncService_getDatesToProcess(t *testing.T) {
	service := &AnalyticsSnapshotSyncService{
		config: AnalyticsSnapshotSyncConfig{LookbackDays: 3},
	}

	dates := service.getDatesToProcess()

	assert.Len(t, dates, 3)

	// Da mais antiga para a mais recente, terminando em ontem
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i-1].Before(dates[i]))
	}

	yesterday := time.Now().AddDate(0, 0, -1)
	assert.Equal(t, yesterday.Format(time.DateOnly), dates[len(dates)-1].Format(time.DateOnly))
}

func TestAnalyticsSnapshotSyncService_applyRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockAnalyticsSnapshotRepository(ctrl)

	// Retenção desabilitada: nenhuma chamada ao repositório
	service := &AnalyticsSnapshotSyncService{
		config:       AnalyticsSnapshotSyncConfig{RetentionDays: 0},
		snapshotRepo: mockSnapshotRepo,
	}
	service.applyRetention()

	// Habilitada: remove com a janela configurada
	service.config.RetentionDays = 90
	mockSnapshotRepo.EXPECT().DeleteOlderThan(90).Return(int64(0), nil)
	service.applyRetention()
}
