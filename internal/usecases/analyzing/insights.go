package analyzing

import (
	"sort"

	"github.com/vfg2006/link-analytics-api/internal/domain"
)

// RollupInsights agrupa os registros por medium, source e campanha, somando
// cliques, cliques únicos e contagem de links, com cada lista ordenada por
// total de cliques decrescente. Cada link contribui exatamente uma vez por
// dimensão, então os totais agregados são somas diretas sem dupla contagem.
func RollupInsights(records []*domain.PerLinkAnalytics) *domain.InsightsSummary {
	summary := &domain.InsightsSummary{
		TotalLinks: len(records),
	}

	mediumGroups := make(map[string]*domain.InsightGroup)
	sourceGroups := make(map[string]*domain.InsightGroup)
	campaignGroups := make(map[string]*domain.InsightGroup)

	for _, record := range records {
		summary.TotalClicks += record.TotalClicks
		summary.TotalUniqueClicks += record.UniqueClicks

		accumulate(mediumGroups, record.MediumCode, record.MediumLabel, record)
		accumulate(sourceGroups, record.SourceCode, record.SourceLabel, record)
		accumulate(campaignGroups, record.CampaignCode, record.CampaignLabel, record)
	}

	summary.MediumPerformance = sortedGroups(mediumGroups)
	summary.SourcePerformance = sortedGroups(sourceGroups)
	summary.CampaignPerformance = sortedGroups(campaignGroups)

	return summary
}

func accumulate(groups map[string]*domain.InsightGroup, key, label string, record *domain.PerLinkAnalytics) {
	group, exists := groups[key]
	if !exists {
		group = &domain.InsightGroup{Key: key, Label: label}
		groups[key] = group
	}

	group.TotalClicks += record.TotalClicks
	group.TotalUniqueClicks += record.UniqueClicks
	group.LinkCount++
}

func sortedGroups(groups map[string]*domain.InsightGroup) []*domain.InsightGroup {
	result := make([]*domain.InsightGroup, 0, len(groups))
	for _, group := range groups {
		result = append(result, group)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].TotalClicks != result[j].TotalClicks {
			return result[i].TotalClicks > result[j].TotalClicks
		}
		return result[i].Key < result[j].Key
	})

	return result
}
