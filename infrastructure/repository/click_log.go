package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/link-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/link-analytics-api/internal/domain"
)

const (
	clickEventsTable = "click_events ce"

	// Limite das aberturas secundárias (país, referrer, dispositivo)
	breakdownLimit = 10
)

// ClickLogRepository é a superfície de leitura do log interno de cliques.
// Apenas leitura: as escritas pertencem ao subsistema de redirecionamento.
type ClickLogRepository interface {
	GetLinkClickStats(linkID string, startDate, endDate time.Time) (*domain.LinkClickStats, error)
	GetHourlyClicks(linkIDs []string, startDate, endDate time.Time) ([]domain.HourlyCount, error)
}

type clickLogRepository struct {
	conn *postgres.Connection
}

func NewClickLogRepository(conn *postgres.Connection) ClickLogRepository {
	return &clickLogRepository{
		conn: conn,
	}
}

// GetLinkClickStats agrega o log de um link no período: totais, série diária
// (apenas dias com ao menos um clique) e aberturas secundárias. O
// preenchimento com zeros fica a cargo das agregações de nível superior.
func (r *clickLogRepository) GetLinkClickStats(linkID string, startDate, endDate time.Time) (*domain.LinkClickStats, error) {
	stats := &domain.LinkClickStats{}

	total, unique, err := r.getTotals(linkID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	stats.TotalClicks = total
	stats.UniqueClicks = unique

	stats.Daily, err = r.getDailyBreakdown(linkID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	stats.ByCountry, err = r.getGroupedCounts(linkID, startDate, endDate, "COALESCE(ce.country, 'Desconhecido')")
	if err != nil {
		return nil, err
	}

	rawReferrers, err := r.getGroupedCounts(linkID, startDate, endDate, "COALESCE(ce.referrer, '')")
	if err != nil {
		return nil, err
	}
	stats.ByReferrer = normalizeReferrers(rawReferrers)

	stats.ByDevice, err = r.getGroupedCounts(linkID, startDate, endDate, "COALESCE(ce.device_type, 'Desconhecido')")
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *clickLogRepository) getTotals(linkID string, startDate, endDate time.Time) (int, int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)", "COUNT(DISTINCT ce.session_id)").
		From(clickEventsTable).
		Where(squirrel.Eq{"ce.link_id": linkID}).
		Where(squirrel.GtOrEq{"DATE(ce.clicked_at)": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"DATE(ce.clicked_at)": endDate.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total, unique int
	if err := r.conn.QueryRow(query, args...).Scan(&total, &unique); err != nil {
		return 0, 0, fmt.Errorf("erro ao consultar totais de cliques: %w", err)
	}

	return total, unique, nil
}

func (r *clickLogRepository) getDailyBreakdown(linkID string, startDate, endDate time.Time) ([]domain.DailyCount, error) {
	query, args, err := squirrel.
		Select("DATE(ce.clicked_at) AS day", "COUNT(*)", "COUNT(DISTINCT ce.session_id)").
		From(clickEventsTable).
		Where(squirrel.Eq{"ce.link_id": linkID}).
		Where(squirrel.GtOrEq{"DATE(ce.clicked_at)": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"DATE(ce.clicked_at)": endDate.Format("2006-01-02")}).
		GroupBy("1").
		OrderBy("1 ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.DailyCount{}, nil
		}
		return nil, fmt.Errorf("erro ao consultar série diária: %w", err)
	}
	defer rows.Close()

	daily := make([]domain.DailyCount, 0)
	for rows.Next() {
		var count domain.DailyCount
		if err := rows.Scan(&count.Date, &count.Clicks, &count.UniqueClicks); err != nil {
			return nil, fmt.Errorf("erro ao escanear série diária: %w", err)
		}
		daily = append(daily, count)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return daily, nil
}

func (r *clickLogRepository) getGroupedCounts(linkID string, startDate, endDate time.Time, expr string) ([]domain.BreakdownCount, error) {
	query, args, err := squirrel.
		Select(expr+" AS grp", "COUNT(*)").
		From(clickEventsTable).
		Where(squirrel.Eq{"ce.link_id": linkID}).
		Where(squirrel.GtOrEq{"DATE(ce.clicked_at)": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"DATE(ce.clicked_at)": endDate.Format("2006-01-02")}).
		GroupBy("1").
		OrderBy("2 DESC").
		Limit(breakdownLimit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.BreakdownCount{}, nil
		}
		return nil, fmt.Errorf("erro ao consultar agrupamento: %w", err)
	}
	defer rows.Close()

	counts := make([]domain.BreakdownCount, 0)
	for rows.Next() {
		var count domain.BreakdownCount
		if err := rows.Scan(&count.Label, &count.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear agrupamento: %w", err)
		}
		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

// GetHourlyClicks agrega (data, hora) para todos os links do escopo em uma
// única consulta, evitando 24 consultas por link
func (r *clickLogRepository) GetHourlyClicks(linkIDs []string, startDate, endDate time.Time) ([]domain.HourlyCount, error) {
	if len(linkIDs) == 0 {
		return []domain.HourlyCount{}, nil
	}

	query, args, err := squirrel.
		Select("DATE(ce.clicked_at) AS day", "EXTRACT(HOUR FROM ce.clicked_at)::int AS hour", "COUNT(*)").
		From(clickEventsTable).
		Where(squirrel.Eq{"ce.link_id": linkIDs}).
		Where(squirrel.GtOrEq{"DATE(ce.clicked_at)": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"DATE(ce.clicked_at)": endDate.Format("2006-01-02")}).
		GroupBy("1", "2").
		OrderBy("1 ASC", "2 ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.HourlyCount{}, nil
		}
		return nil, fmt.Errorf("erro ao consultar cliques por hora: %w", err)
	}
	defer rows.Close()

	counts := make([]domain.HourlyCount, 0)
	for rows.Next() {
		var count domain.HourlyCount
		if err := rows.Scan(&count.Date, &count.Hour, &count.Clicks); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliques por hora: %w", err)
		}
		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

// Plataformas conhecidas reconhecidas pelo hostname do referrer, testadas em
// ordem para que a normalização seja determinística
var referrerPlatforms = []struct {
	fragment string
	platform string
}{
	{"instagram", "Instagram"},
	{"facebook", "Facebook"},
	{"fb.com", "Facebook"},
	{"whatsapp", "WhatsApp"},
	{"wa.me", "WhatsApp"},
	{"twitter", "Twitter/X"},
	{"x.com", "Twitter/X"},
	{"t.co", "Twitter/X"},
	{"linkedin", "LinkedIn"},
	{"youtube", "YouTube"},
	{"youtu.be", "YouTube"},
	{"tiktok", "TikTok"},
	{"telegram", "Telegram"},
	{"t.me", "Telegram"},
	{"google", "Google"},
}

// normalizeReferrers reduz os referrers crus a uma taxonomia pequena:
// "Direct" para vazio, nome da plataforma quando o hostname é conhecido,
// senão o hostname extraído da URL. Rótulos iguais após a normalização
// são somados.
func normalizeReferrers(raw []domain.BreakdownCount) []domain.BreakdownCount {
	merged := make(map[string]int, len(raw))
	order := make([]string, 0, len(raw))

	for _, count := range raw {
		label := normalizeReferrer(count.Label)
		if _, seen := merged[label]; !seen {
			order = append(order, label)
		}
		merged[label] += count.Count
	}

	result := make([]domain.BreakdownCount, 0, len(merged))
	for _, label := range order {
		result = append(result, domain.BreakdownCount{Label: label, Count: merged[label]})
	}

	return result
}

func normalizeReferrer(referrer string) string {
	referrer = strings.TrimSpace(referrer)
	if referrer == "" {
		return "Direct"
	}

	host := referrerHost(referrer)
	lowered := strings.ToLower(host)

	for _, entry := range referrerPlatforms {
		if strings.Contains(lowered, entry.fragment) {
			return entry.platform
		}
	}

	if host != "" {
		return host
	}

	return referrer
}

// referrerHost extrai o hostname de uma URL de referrer sem exigir que ela
// seja bem formada (o segundo segmento após o esquema)
func referrerHost(referrer string) string {
	segments := strings.Split(referrer, "/")
	if len(segments) >= 3 && strings.HasSuffix(segments[0], ":") {
		return segments[2]
	}

	return segments[0]
}
