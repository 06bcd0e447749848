package analyzing

import (
	"context"

	"github.com/vfg2006/link-analytics-api/internal/domain"
)

// Analyzer é a interface do motor de reconciliação e scoring de cliques
type Analyzer interface {
	// GetAnalytics monta a resposta completa (registros por link, heatmaps e
	// rollup) para todos os links do escopo definido pelos filtros
	GetAnalytics(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.AnalyticsResponse, error)

	// GetLinkAnalytics monta o registro reconciliado de um único link
	GetLinkAnalytics(ctx context.Context, linkID string, filters *domain.AnalyticsFilters) (*domain.PerLinkAnalytics, error)
}

// ProviderStatser abstrai o integrador do provedor de links curtos
type ProviderStatser interface {
	GetLinkStats(link *domain.TrackedLink, filters *domain.AnalyticsFilters) (*domain.ProviderStats, error)
}
