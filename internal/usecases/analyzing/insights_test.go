package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/link-analytics-api/internal/domain"
)

func TestRollupInsights(t *testing.T) {
	records := []*domain.PerLinkAnalytics{
		{
			LinkID:        "LNK001",
			MediumCode:    "social",
			MediumLabel:   "Redes Sociais",
			SourceCode:    "instagram",
			SourceLabel:   "Instagram",
			CampaignCode:  "voluntarios-2025",
			CampaignLabel: "Voluntários 2025",
			TotalClicks:   100,
			UniqueClicks:  70,
		},
		{
			LinkID:        "LNK002",
			MediumCode:    "social",
			MediumLabel:   "Redes Sociais",
			SourceCode:    "whatsapp",
			SourceLabel:   "WhatsApp",
			CampaignCode:  "voluntarios-2025",
			CampaignLabel: "Voluntários 2025",
			TotalClicks:   40,
			UniqueClicks:  25,
		},
		{
			LinkID:        "LNK003",
			MediumCode:    "email",
			MediumLabel:   "E-mail",
			SourceCode:    "newsletter",
			SourceLabel:   "Newsletter",
			CampaignCode:  "mutirao-visao",
			CampaignLabel: "Mutirão da Visão",
			TotalClicks:   60,
			UniqueClicks:  50,
		},
	}

	summary := RollupInsights(records)

	assert.Equal(t, 3, summary.TotalLinks)
	assert.Equal(t, 200, summary.TotalClicks)
	assert.Equal(t, 145, summary.TotalUniqueClicks)

	// Medium: social (140) antes de email (60), cada link contado uma vez
	assert.Len(t, summary.MediumPerformance, 2)
	assert.Equal(t, "social", summary.MediumPerformance[0].Key)
	assert.Equal(t, "Redes Sociais", summary.MediumPerformance[0].Label)
	assert.Equal(t, 140, summary.MediumPerformance[0].TotalClicks)
	assert.Equal(t, 95, summary.MediumPerformance[0].TotalUniqueClicks)
	assert.Equal(t, 2, summary.MediumPerformance[0].LinkCount)
	assert.Equal(t, "email", summary.MediumPerformance[1].Key)
	assert.Equal(t, 1, summary.MediumPerformance[1].LinkCount)

	// Source: três fontes distintas, ordenadas por cliques
	assert.Len(t, summary.SourcePerformance, 3)
	assert.Equal(t, "instagram", summary.SourcePerformance[0].Key)
	assert.Equal(t, "newsletter", summary.SourcePerformance[1].Key)
	assert.Equal(t, "whatsapp", summary.SourcePerformance[2].Key)

	// Campanha: a soma dos grupos bate com o total geral (sem dupla contagem)
	assert.Len(t, summary.CampaignPerformance, 2)
	groupSum := 0
	for _, group := range summary.CampaignPerformance {
		groupSum += group.TotalClicks
	}
	assert.Equal(t, summary.TotalClicks, groupSum)
}

func TestRollupInsights_Empty(t *testing.T) {
	summary := RollupInsights(nil)

	assert.Equal(t, 0, summary.TotalLinks)
	assert.Equal(t, 0, summary.TotalClicks)
	assert.Empty(t, summary.MediumPerformance)
	assert.Empty(t, summary.SourcePerformance)
	assert.Empty(t, summary.CampaignPerformance)
}

func TestRollupInsights_TieBreakByKey(t *testing.T) {
	records := []*domain.PerLinkAnalytics{
		{LinkID: "LNK001", MediumCode: "social", SourceCode: "whatsapp", CampaignCode: "a", TotalClicks: 10},
		{LinkID: "LNK002", MediumCode: "social", SourceCode: "instagram", CampaignCode: "b", TotalClicks: 10},
	}

	summary := RollupInsights(records)

	// Empate em cliques resolve pela chave, para ordenação determinística
	assert.Equal(t, "instagram", summary.SourcePerformance[0].Key)
	assert.Equal(t, "whatsapp", summary.SourcePerformance[1].Key)
	assert.Equal(t, "a", summary.CampaignPerformance[0].Key)
	assert.Equal(t, "b", summary.CampaignPerformance[1].Key)
}
