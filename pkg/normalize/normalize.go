package normalize

import (
	"encoding/json"
	"time"

	"github.com/vfg2006/link-analytics-api/internal/domain"
)

// FieldAliases lista os nomes de campo aceitos para data e cliques ao
// normalizar séries vindas de provedores com formatos inconsistentes
type FieldAliases struct {
	Date   []string
	Clicks []string
}

// DefaultFieldAliases cobre as variações observadas nas respostas do provedor
func DefaultFieldAliases() FieldAliases {
	return FieldAliases{
		Date:   []string{"date", "day", "timestamp"},
		Clicks: []string{"clicks", "count", "value"},
	}
}

// layouts tentados quando a string não começa com YYYY-MM-DD
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
	"01-02-2006",
}

// ToCalendarDay converte qualquer valor de data em um dia de calendário
// canônico YYYY-MM-DD. Strings que já começam com YYYY-MM-DD são fatiadas
// diretamente, sem reparse, para não sofrer deslocamento de fuso horário.
// Retorna ErrUnparseableDate quando nenhuma interpretação produz um dia
// válido; quem chama deve descartar o ponto de dado, nunca abortar.
func ToCalendarDay(value any) (string, error) {
	switch v := value.(type) {
	case time.Time:
		return v.Format(time.DateOnly), nil
	case *time.Time:
		if v == nil {
			return "", domain.ErrUnparseableDate
		}
		return v.Format(time.DateOnly), nil
	case string:
		return stringToCalendarDay(v)
	case json.Number:
		millis, err := v.Int64()
		if err != nil {
			return "", domain.ErrUnparseableDate
		}
		return millisToCalendarDay(millis), nil
	case float64:
		return millisToCalendarDay(int64(v)), nil
	case int64:
		return millisToCalendarDay(v), nil
	case int:
		return millisToCalendarDay(int64(v)), nil
	default:
		return "", domain.ErrUnparseableDate
	}
}

func millisToCalendarDay(millis int64) string {
	// Dia de calendário local do instante do clique, não UTC
	return time.UnixMilli(millis).Local().Format(time.DateOnly)
}

func stringToCalendarDay(value string) (string, error) {
	if hasCalendarDayPrefix(value) {
		return value[:10], nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed.Format(time.DateOnly), nil
		}
	}

	return "", domain.ErrUnparseableDate
}

// hasCalendarDayPrefix verifica se a string começa com YYYY-MM-DD
func hasCalendarDayPrefix(value string) bool {
	if len(value) < 10 {
		return false
	}

	for i, r := range value[:10] {
		if i == 4 || i == 7 {
			if r != '-' {
				return false
			}
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}

	// Rejeita prefixos numericamente impossíveis como mês 13 ou dia 32
	if _, err := time.Parse(time.DateOnly, value[:10]); err != nil {
		return false
	}

	return true
}

// DailySeries converte um array heterogêneo de registros do provedor
// em uma série diária uniforme. Registros sem data interpretável ou sem campo
// de cliques numérico são descartados silenciosamente.
func DailySeries(raw []map[string]any, aliases FieldAliases) []domain.DailyClickRecord {
	series := make([]domain.DailyClickRecord, 0, len(raw))

	for _, record := range raw {
		day, ok := extractDay(record, aliases.Date)
		if !ok {
			continue
		}

		clicks, ok := extractClicks(record, aliases.Clicks)
		if !ok {
			continue
		}

		series = append(series, domain.DailyClickRecord{Date: day, Clicks: clicks})
	}

	return series
}

func extractDay(record map[string]any, aliases []string) (string, bool) {
	for _, alias := range aliases {
		value, exists := record[alias]
		if !exists {
			continue
		}

		day, err := ToCalendarDay(value)
		if err != nil {
			continue
		}

		return day, true
	}

	return "", false
}

func extractClicks(record map[string]any, aliases []string) (int, bool) {
	for _, alias := range aliases {
		value, exists := record[alias]
		if !exists {
			continue
		}

		switch v := value.(type) {
		case float64:
			if v < 0 {
				continue
			}
			return int(v), true
		case int:
			if v < 0 {
				continue
			}
			return v, true
		case int64:
			if v < 0 {
				continue
			}
			return int(v), true
		case json.Number:
			n, err := v.Int64()
			if err != nil || n < 0 {
				continue
			}
			return int(n), true
		}
	}

	return 0, false
}
