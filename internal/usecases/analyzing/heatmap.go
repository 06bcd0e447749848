package analyzing

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/vfg2006/link-analytics-api/internal/domain"
	"github.com/vfg2006/link-analytics-api/pkg/normalize"
)

// HeatmapBuilder acumula as matrizes de agregação (por medium, por source e
// por hora do dia) sobre o eixo de datas global da resposta. Não é seguro para
// uso concorrente: todo o fold acontece na goroutine coordenadora, depois que
// o fan-in dos links terminou, para que o crescimento do eixo nunca perca
// atualizações.
type HeatmapBuilder struct {
	axis   *DateAxis
	medium map[string]*domain.AggregationRow
	source map[string]*domain.AggregationRow
	hour   [24]*domain.AggregationRow
}

func NewHeatmapBuilder(axis *DateAxis) *HeatmapBuilder {
	builder := &HeatmapBuilder{
		axis:   axis,
		medium: make(map[string]*domain.AggregationRow),
		source: make(map[string]*domain.AggregationRow),
	}

	// As 24 linhas de hora são fixas, independentes dos dados
	for h := 0; h < 24; h++ {
		builder.hour[h] = &domain.AggregationRow{
			Key:    strconv.Itoa(h),
			Label:  fmt.Sprintf("%02dh", h),
			ByDate: make(map[string]int),
		}
	}

	return builder
}

// AddLink dobra a série diária de um link nas linhas de medium e source
// correspondentes. Datas fora do eixo atual ampliam o eixo para todas as
// linhas, não apenas a contribuinte.
func (b *HeatmapBuilder) AddLink(record *domain.PerLinkAnalytics) {
	mediumRow := b.rowFor(b.medium, record.MediumCode, record.MediumLabel)
	sourceRow := b.rowFor(b.source, record.SourceCode, record.SourceLabel)

	for _, entry := range record.DailyBreakdown {
		day, err := normalize.ToCalendarDay(entry.Date)
		if err != nil {
			continue
		}

		b.axis.Ensure(day)

		mediumRow.ByDate[day] += entry.Clicks
		mediumRow.Totals += entry.Clicks
		sourceRow.ByDate[day] += entry.Clicks
		sourceRow.Totals += entry.Clicks
	}
}

// AddHourlyCounts dobra o agregado (data, hora) consultado em uma única
// passada sobre todos os links do escopo
func (b *HeatmapBuilder) AddHourlyCounts(counts []domain.HourlyCount) {
	for _, count := range counts {
		if count.Hour < 0 || count.Hour > 23 {
			continue
		}

		day, err := normalize.ToCalendarDay(count.Date)
		if err != nil {
			continue
		}

		b.axis.Ensure(day)

		row := b.hour[count.Hour]
		row.ByDate[day] += count.Clicks
		row.Totals += count.Clicks
	}
}

// Build preenche com zero toda célula (linha, data) não populada, cobrindo o
// eixo final, e devolve as três matrizes: medium e source ordenadas por total
// decrescente, horas em ordem natural 0-23.
func (b *HeatmapBuilder) Build() (medium, source, hour []*domain.AggregationRow) {
	days := b.axis.Days()

	medium = sortedByTotals(zeroFilled(b.medium, days))
	source = sortedByTotals(zeroFilled(b.source, days))

	hour = make([]*domain.AggregationRow, 0, len(b.hour))
	for _, row := range b.hour {
		fillRow(row, days)
		hour = append(hour, row)
	}

	return medium, source, hour
}

func (b *HeatmapBuilder) rowFor(rows map[string]*domain.AggregationRow, key, label string) *domain.AggregationRow {
	if row, exists := rows[key]; exists {
		return row
	}

	row := &domain.AggregationRow{
		Key:    key,
		Label:  label,
		ByDate: make(map[string]int),
	}
	rows[key] = row

	return row
}

func zeroFilled(rows map[string]*domain.AggregationRow, days []string) []*domain.AggregationRow {
	result := make([]*domain.AggregationRow, 0, len(rows))
	for _, row := range rows {
		fillRow(row, days)
		result = append(result, row)
	}
	return result
}

func fillRow(row *domain.AggregationRow, days []string) {
	for _, day := range days {
		if _, present := row.ByDate[day]; !present {
			row.ByDate[day] = 0
		}
	}
}

func sortedByTotals(rows []*domain.AggregationRow) []*domain.AggregationRow {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Totals != rows[j].Totals {
			return rows[i].Totals > rows[j].Totals
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}
