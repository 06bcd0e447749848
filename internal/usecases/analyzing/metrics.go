package analyzing

import (
	"math"

	"github.com/vfg2006/link-analytics-api/internal/domain"
	"github.com/vfg2006/link-analytics-api/pkg/utils"
)

// ScorePolicy parametriza o cálculo do score de efetividade e da tendência.
// Os pesos e o limiar são política configurável, não constantes do motor.
type ScorePolicy struct {
	VolumeWeight      float64
	UniqueWeight      float64
	ConsistencyWeight float64
	VolumeTarget      float64
	TrendThreshold    float64
}

// DefaultScorePolicy retorna os pesos de referência: 0.4 volume, 0.4 taxa de
// únicos, 0.2 consistência, com 100 cliques valendo fator de volume máximo e
// ±10% de limiar de tendência
func DefaultScorePolicy() ScorePolicy {
	return ScorePolicy{
		VolumeWeight:      0.4,
		UniqueWeight:      0.4,
		ConsistencyWeight: 0.2,
		VolumeTarget:      100,
		TrendThreshold:    0.10,
	}
}

// EffectivenessScore calcula o score composto 0-100 de um link, combinando
// fator de volume, proporção de cliques únicos e consistência dia a dia.
// Arredondado para 1 casa decimal; total zero implica score zero.
func EffectivenessScore(total, unique int, daily []domain.DailyClickRecord, policy ScorePolicy) float64 {
	if total <= 0 {
		return 0
	}

	volumeFactor := math.Min(float64(total)/policy.VolumeTarget, 1)
	// Fontes externas podem reportar mais únicos do que o total; a proporção
	// satura em 1 para manter o score dentro de 0-100
	uniqueRatio := math.Min(float64(unique)/float64(total), 1)
	consistency := dailyConsistency(daily)

	score := (policy.VolumeWeight*volumeFactor +
		policy.UniqueWeight*uniqueRatio +
		policy.ConsistencyWeight*consistency) * 100

	return utils.RoundWithOneDecimalPlace(score)
}

// dailyConsistency mede a regularidade da série como 1 menos o coeficiente de
// variação (desvio padrão sobre média), limitado a zero por baixo. Com menos
// de 2 pontos a consistência é indefinida e vale 1 por convenção.
func dailyConsistency(daily []domain.DailyClickRecord) float64 {
	if len(daily) < 2 {
		return 1
	}

	mean := 0.0
	for _, record := range daily {
		mean += float64(record.Clicks)
	}
	mean /= float64(len(daily))

	if mean == 0 {
		return 1
	}

	variance := 0.0
	for _, record := range daily {
		diff := float64(record.Clicks) - mean
		variance += diff * diff
	}
	variance /= float64(len(daily))

	coefficientOfVariation := math.Sqrt(variance) / mean

	return math.Max(0, 1-coefficientOfVariation)
}

// ConversionRate calcula a taxa de cliques únicos sobre o total, em percentual
// com 2 casas decimais. Zero quando não há cliques; satura em 100 quando a
// fonte reporta mais únicos do que o total.
func ConversionRate(total, unique int) float64 {
	if total <= 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(math.Min(float64(unique)/float64(total), 1) * 100)
}

// AvgDailyClicks calcula a média de cliques por dia da série, com 1 casa decimal
func AvgDailyClicks(total int, daily []domain.DailyClickRecord) float64 {
	if len(daily) == 0 {
		return 0
	}

	return utils.RoundWithOneDecimalPlace(float64(total) / float64(len(daily)))
}

// PeakDay retorna a data com o maior número de cliques, ou vazio para série
// vazia. Empates resolvem para o primeiro máximo na ordem de entrada.
func PeakDay(daily []domain.DailyClickRecord) string {
	if len(daily) == 0 {
		return ""
	}

	peak := daily[0]
	for _, record := range daily[1:] {
		if record.Clicks > peak.Clicks {
			peak = record
		}
	}

	return peak.Date
}

// TrendDirection compara a média da segunda metade da série (ordenada
// cronologicamente) com a da primeira. Variação relativa acima do limiar é
// "up", abaixo do limiar negativo é "down", o resto é "stable". Séries com
// menos de 3 pontos não têm sinal suficiente e são sempre "stable".
func TrendDirection(daily []domain.DailyClickRecord, threshold float64) string {
	if len(daily) < 3 {
		return domain.TrendStable
	}

	half := len(daily) / 2
	boundary := len(daily) - half

	firstAvg := averageClicks(daily[:boundary])
	secondAvg := averageClicks(daily[boundary:])

	// Primeira metade zerada não permite variação relativa; tratar como estável
	if firstAvg == 0 {
		return domain.TrendStable
	}

	change := (secondAvg - firstAvg) / firstAvg

	switch {
	case change > threshold:
		return domain.TrendUp
	case change < -threshold:
		return domain.TrendDown
	default:
		return domain.TrendStable
	}
}

func averageClicks(daily []domain.DailyClickRecord) float64 {
	if len(daily) == 0 {
		return 0
	}

	sum := 0.0
	for _, record := range daily {
		sum += float64(record.Clicks)
	}

	return sum / float64(len(daily))
}
