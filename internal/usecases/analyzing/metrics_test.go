package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/link-analytics-api/internal/domain"
)

func dailySeriesOf(clicks ...int) []domain.DailyClickRecord {
	series := make([]domain.DailyClickRecord, 0, len(clicks))
	for i, c := range clicks {
		series = append(series, domain.DailyClickRecord{
			Date:   time3March(i),
			Clicks: c,
		})
	}
	return series
}

// time3March gera datas sequenciais a partir de 2025-03-01 para as séries de teste
func time3March(offset int) string {
	days := []string{
		"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04", "2025-03-05",
		"2025-03-06", "2025-03-07", "2025-03-08", "2025-03-09", "2025-03-10",
	}
	return days[offset]
}

func TestEffectivenessScore(t *testing.T) {
	policy := DefaultScorePolicy()

	tests := []struct {
		name   string
		total  int
		unique int
		daily  []domain.DailyClickRecord
		want   float64
	}{
		{
			name:   "Total zero - score zero independente do resto",
			total:  0,
			unique: 0,
			daily:  dailySeriesOf(0, 0, 0),
			want:   0,
		},
		{
			name:   "Série perfeitamente regular com todos os cliques únicos - score máximo",
			total:  100,
			unique: 100,
			daily:  dailySeriesOf(25, 25, 25, 25),
			// volume 1.0*0.4 + únicos 1.0*0.4 + consistência 1.0*0.2 = 100
			want: 100,
		},
		{
			name:   "Volume acima da meta satura em 1",
			total:  500,
			unique: 500,
			daily:  dailySeriesOf(125, 125, 125, 125),
			want:   100,
		},
		{
			name:   "Volume abaixo da meta entra proporcional",
			total:  50,
			unique: 50,
			daily:  dailySeriesOf(25, 25),
			// volume 0.5*0.4 + únicos 1.0*0.4 + consistência 1.0*0.2 = 80
			want: 80,
		},
		{
			name:   "Menos de 2 pontos diários - consistência vale 1 por convenção",
			total:  100,
			unique: 50,
			daily:  dailySeriesOf(100),
			// volume 1.0*0.4 + únicos 0.5*0.4 + consistência 1.0*0.2 = 80
			want: 80,
		},
		{
			name:   "Únicos acima do total saturam a proporção em 1",
			total:  50,
			unique: 100,
			daily:  dailySeriesOf(25, 25),
			// volume 0.5*0.4 + únicos saturados 1.0*0.4 + consistência 1.0*0.2 = 80
			want: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectivenessScore(tt.total, tt.unique, tt.daily, policy)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEffectivenessScore_Bounds(t *testing.T) {
	policy := DefaultScorePolicy()

	// Série muito irregular derruba a consistência mas nunca o score abaixo de zero
	score := EffectivenessScore(10, 1, dailySeriesOf(10, 0, 0, 0, 0), policy)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)

	// Provedor reportando mais únicos do que o total nunca estoura o teto
	score = EffectivenessScore(50, 100, dailySeriesOf(25, 25), policy)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestConversionRate(t *testing.T) {
	assert.Equal(t, 0.0, ConversionRate(0, 0))
	assert.Equal(t, 0.0, ConversionRate(-1, 5))
	assert.Equal(t, 50.0, ConversionRate(10, 5))
	assert.Equal(t, 33.33, ConversionRate(3, 1))
	assert.Equal(t, 100.0, ConversionRate(7, 7))
	// Mais únicos do que o total satura em 100%
	assert.Equal(t, 100.0, ConversionRate(50, 100))
}

func TestAvgDailyClicks(t *testing.T) {
	assert.Equal(t, 0.0, AvgDailyClicks(100, nil))
	assert.Equal(t, 25.0, AvgDailyClicks(100, dailySeriesOf(25, 25, 25, 25)))
	assert.Equal(t, 33.3, AvgDailyClicks(100, dailySeriesOf(40, 30, 30)))
}

func TestPeakDay(t *testing.T) {
	assert.Equal(t, "", PeakDay(nil))

	series := dailySeriesOf(5, 20, 20, 3)
	// Empate resolve para a primeira ocorrência do máximo
	assert.Equal(t, "2025-03-02", PeakDay(series))
}

func TestTrendDirection(t *testing.T) {
	threshold := 0.10

	tests := []struct {
		name  string
		daily []domain.DailyClickRecord
		want  string
	}{
		{
			name:  "Menos de 3 pontos - sem sinal suficiente, estável",
			daily: dailySeriesOf(1, 100),
			want:  domain.TrendStable,
		},
		{
			name:  "Segunda metade maior que a primeira acima do limiar - subindo",
			daily: dailySeriesOf(10, 10, 20),
			want:  domain.TrendUp,
		},
		{
			name:  "Segunda metade menor que a primeira abaixo do limiar - caindo",
			daily: dailySeriesOf(20, 10, 10),
			want:  domain.TrendDown,
		},
		{
			name:  "Variação dentro do limiar - estável",
			daily: dailySeriesOf(10, 10, 10, 11),
			want:  domain.TrendStable,
		},
		{
			name:  "Primeira metade zerada - variação relativa indefinida, estável",
			daily: dailySeriesOf(0, 0, 50, 50),
			want:  domain.TrendStable,
		},
		{
			name:  "Série ímpar - o ponto do meio fica na primeira metade",
			daily: dailySeriesOf(10, 10, 10, 30, 30),
			want:  domain.TrendUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrendDirection(tt.daily, threshold))
		})
	}
}

func TestTrendDirection_ThresholdBoundary(t *testing.T) {
	// Variação exatamente no limiar não é "up": o contrato exige estritamente maior
	series := dailySeriesOf(10, 10, 11)
	assert.Equal(t, domain.TrendStable, TrendDirection(series, 0.10))
	assert.Equal(t, domain.TrendUp, TrendDirection(series, 0.09))
}
