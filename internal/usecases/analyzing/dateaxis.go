package analyzing

import (
	"sort"
	"time"

	"github.com/vfg2006/link-analytics-api/internal/domain"
)

// DateAxis é a sequência ordenada e sem duplicatas de dias de calendário
// (YYYY-MM-DD) que cobre a janela da requisição. Cresce monotonicamente quando
// os dados das fontes trazem dias fora da janela original; nunca encolhe.
type DateAxis struct {
	days    []string
	present map[string]bool
}

// BuildDateAxis enumera todos os dias de calendário entre start e end
// (inclusive), usando aritmética de calendário local e não offsets UTC.
// Retorna ErrInvalidRange se start for posterior a end.
func BuildDateAxis(start, end time.Time) (*DateAxis, error) {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	if startDay.After(endDay) {
		return nil, domain.ErrInvalidRange
	}

	axis := &DateAxis{present: make(map[string]bool)}
	for current := startDay; !current.After(endDay); current = current.AddDate(0, 0, 1) {
		day := current.Format(time.DateOnly)
		axis.days = append(axis.days, day)
		axis.present[day] = true
	}

	return axis, nil
}

// Ensure inclui um dia no eixo caso ainda não esteja presente, reordenando.
// Idempotente; aplicar um conjunto de dias em qualquer ordem produz o mesmo
// eixo final.
func (a *DateAxis) Ensure(day string) {
	if a.present[day] {
		return
	}

	a.present[day] = true
	a.days = append(a.days, day)
	sort.Strings(a.days)
}

// Contains informa se o dia já faz parte do eixo
func (a *DateAxis) Contains(day string) bool {
	return a.present[day]
}

// Days retorna uma cópia dos dias do eixo em ordem ascendente
func (a *DateAxis) Days() []string {
	days := make([]string, len(a.days))
	copy(days, a.days)
	return days
}

// Len retorna o tamanho atual do eixo
func (a *DateAxis) Len() int {
	return len(a.days)
}
