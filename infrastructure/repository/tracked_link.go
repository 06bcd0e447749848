package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/link-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/link-analytics-api/internal/domain"
)

const (
	trackedLinksTable = "tracked_links tl"

	trackedLinkColumns = `tl.id, tl.entity_id, tl.campaign_id, tl.source_id, tl.medium_id,
		tl.form_id, tl.short_link_id, tl.short_url,
		m.code, m.label, s.code, s.label, c.code, c.label`
)

// TrackedLinkRepository resolve os links rastreados dentro do escopo de uma
// requisição de analytics. O ciclo de vida dos links pertence ao subsistema
// de gestão de links; aqui é apenas leitura.
type TrackedLinkRepository interface {
	ListByScope(filters *domain.AnalyticsFilters) ([]*domain.TrackedLink, error)
	GetByID(linkID string) (*domain.TrackedLink, error)
	ListAll() ([]*domain.TrackedLink, error)
}

type trackedLinkRepository struct {
	conn *postgres.Connection
}

func NewTrackedLinkRepository(conn *postgres.Connection) TrackedLinkRepository {
	return &trackedLinkRepository{
		conn: conn,
	}
}

func (r *trackedLinkRepository) baseQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(trackedLinkColumns).
		From(trackedLinksTable).
		Join("mediums m ON m.id = tl.medium_id").
		Join("sources s ON s.id = tl.source_id").
		Join("campaigns c ON c.id = tl.campaign_id").
		PlaceholderFormat(squirrel.Dollar)
}

// ListByScope aplica o filtro de escopo (entidade, campanha, source, medium,
// formulário ou lista explícita de IDs) sobre os links rastreados
func (r *trackedLinkRepository) ListByScope(filters *domain.AnalyticsFilters) ([]*domain.TrackedLink, error) {
	queryBuilder := r.baseQuery()

	if filters != nil {
		if filters.EntityID != nil && *filters.EntityID != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"tl.entity_id": *filters.EntityID})
		}
		if filters.CampaignID != nil && *filters.CampaignID != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"tl.campaign_id": *filters.CampaignID})
		}
		if filters.SourceID != nil && *filters.SourceID != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"tl.source_id": *filters.SourceID})
		}
		if filters.MediumID != nil && *filters.MediumID != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"tl.medium_id": *filters.MediumID})
		}
		if filters.FormID != nil && *filters.FormID != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"tl.form_id": *filters.FormID})
		}
		if len(filters.LinkIDs) > 0 {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"tl.id": filters.LinkIDs})
		}
	}

	query, args, err := queryBuilder.OrderBy("tl.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryLinks(query, args)
}

func (r *trackedLinkRepository) GetByID(linkID string) (*domain.TrackedLink, error) {
	query, args, err := r.baseQuery().
		Where(squirrel.Eq{"tl.id": linkID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	link, err := scanTrackedLink(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear link rastreado: %w", err)
	}

	return link, nil
}

func (r *trackedLinkRepository) ListAll() ([]*domain.TrackedLink, error) {
	query, args, err := r.baseQuery().OrderBy("tl.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryLinks(query, args)
}

func (r *trackedLinkRepository) queryLinks(query string, args []interface{}) ([]*domain.TrackedLink, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.TrackedLink{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	links := make([]*domain.TrackedLink, 0)
	for rows.Next() {
		link, err := scanTrackedLink(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear link rastreado: %w", err)
		}
		links = append(links, link)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return links, nil
}

func scanTrackedLink(scan func(dest ...interface{}) error) (*domain.TrackedLink, error) {
	link := &domain.TrackedLink{}

	err := scan(
		&link.ID,
		&link.EntityID,
		&link.CampaignID,
		&link.SourceID,
		&link.MediumID,
		&link.FormID,
		&link.ShortLinkID,
		&link.ShortURL,
		&link.MediumCode,
		&link.MediumLabel,
		&link.SourceCode,
		&link.SourceLabel,
		&link.CampaignCode,
		&link.CampaignLabel,
	)
	if err != nil {
		return nil, err
	}

	return link, nil
}
