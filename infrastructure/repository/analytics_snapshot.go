package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/link-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/link-analytics-api/internal/domain"
)

const (
	analyticsSnapshotsTable = "analytics_snapshots asn"
)

// AnalyticsSnapshotRepository persiste o cache diário de analytics por link
// pré-calculado pelo agendador
type AnalyticsSnapshotRepository interface {
	GetByDateRange(linkID string, startDate, endDate time.Time) ([]*domain.LinkAnalyticsSnapshot, error)
	SaveOrUpdate(snapshot *domain.LinkAnalyticsSnapshot) error
	DeleteOlderThan(days int) (int64, error)
}

type analyticsSnapshotRepository struct {
	conn *postgres.Connection
}

func NewAnalyticsSnapshotRepository(conn *postgres.Connection) AnalyticsSnapshotRepository {
	return &analyticsSnapshotRepository{
		conn: conn,
	}
}

func (r *analyticsSnapshotRepository) GetByDateRange(linkID string, startDate, endDate time.Time) ([]*domain.LinkAnalyticsSnapshot, error) {
	query, args, err := squirrel.
		Select("asn.id, asn.link_id, asn.date, asn.analytics, asn.created_at, asn.updated_at").
		From(analyticsSnapshotsTable).
		Where(squirrel.Eq{"asn.link_id": linkID}).
		Where(squirrel.GtOrEq{"asn.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"asn.date": endDate.Format("2006-01-02")}).
		OrderBy("asn.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.LinkAnalyticsSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *analyticsSnapshotRepository) SaveOrUpdate(snapshot *domain.LinkAnalyticsSnapshot) error {
	var analyticsJSON []byte
	var err error

	if snapshot.Analytics != nil {
		analyticsJSON, err = json.Marshal(snapshot.Analytics)
		if err != nil {
			return fmt.Errorf("erro ao serializar analytics para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("analytics_snapshots").
		Columns("link_id", "date", "analytics").
		Values(
			snapshot.LinkID,
			snapshot.Date.Format("2006-01-02"),
			analyticsJSON,
		).
		Suffix(`
			ON CONFLICT (link_id, date) DO UPDATE SET
				analytics = EXCLUDED.analytics,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *analyticsSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("analytics_snapshots").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *analyticsSnapshotRepository) scanSnapshotRows(rows *sql.Rows) (*domain.LinkAnalyticsSnapshot, error) {
	snapshot := &domain.LinkAnalyticsSnapshot{}
	var analyticsJSON []byte

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.LinkID,
		&snapshot.Date,
		&analyticsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalSnapshotAnalytics(snapshot, analyticsJSON); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func unmarshalSnapshotAnalytics(snapshot *domain.LinkAnalyticsSnapshot, analyticsJSON []byte) error {
	if analyticsJSON == nil {
		return nil
	}

	analytics := &domain.PerLinkAnalytics{}
	if err := json.Unmarshal(analyticsJSON, analytics); err != nil {
		return fmt.Errorf("erro ao deserializar JSON de analytics: %w", err)
	}
	snapshot.Analytics = analytics

	return nil
}
