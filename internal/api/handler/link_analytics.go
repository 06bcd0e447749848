package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/link-analytics-api/internal/domain"
	"github.com/vfg2006/link-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/link-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/link-analytics-api/pkg/log"
	"github.com/vfg2006/link-analytics-api/pkg/utils"
)

// GetAnalytics monta a resposta completa de analytics para todos os links do
// escopo definido pelos parâmetros de query
func GetAnalytics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseAnalyticsFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("analytics: parâmetros de período inválidos")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"start_date":    filters.StartDate.Format(time.DateOnly),
			"end_date":      filters.EndDate.Format(time.DateOnly),
			"with_provider": filters.WithProvider,
		}).Debug("analytics: processando requisição com filtros")

		response, err := service.GetAnalytics(r.Context(), filters)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidRange) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
				return
			}

			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("analytics: erro ao processar requisição")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar analytics", nil)
			return
		}

		logger.WithFields(log.Fields{
			"links":     len(response.Links),
			"axis_days": len(response.DateAxis),
		}).Info("analytics: resposta montada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("analytics: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetLinkAnalytics monta o registro reconciliado de um único link
func GetLinkAnalytics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		linkID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("link_id", linkID).Info("analytics: processando link individual")

		filters, err := parseAnalyticsFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"link_id": linkID,
				"error":   err.Error(),
			}).Warn("analytics: parâmetros de período inválidos")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		record, err := service.GetLinkAnalytics(r.Context(), linkID, filters)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidRange):
				apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			case errors.Is(err, domain.ErrLinkNotFound):
				apiErrors.WriteError(w, apiErrors.ErrLinkNotFound, "Link não encontrado", nil)
			default:
				logger.WithFields(log.Fields{
					"link_id": linkID,
					"error":   err.Error(),
				}).Error("analytics: erro ao processar link")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar analytics do link", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(record); err != nil {
			logger.WithFields(log.Fields{
				"link_id": linkID,
				"error":   err.Error(),
			}).Error("analytics: erro ao codificar resposta")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// parseAnalyticsFilters extrai período e escopo dos parâmetros de query.
// start_date e end_date são obrigatórios; o restante restringe o escopo.
func parseAnalyticsFilters(r *http.Request) (*domain.AnalyticsFilters, error) {
	query := r.URL.Query()

	if query.Get("start_date") == "" || query.Get("end_date") == "" {
		return nil, domain.ErrInvalidRange
	}

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return nil, err
	}

	if startDate.After(*endDate) {
		return nil, domain.ErrInvalidRange
	}

	filters := &domain.AnalyticsFilters{
		StartDate:    startDate,
		EndDate:      endDate,
		WithProvider: query.Get("with_provider") == "true",
	}

	if value := query.Get("entity_id"); value != "" {
		filters.EntityID = &value
	}
	if value := query.Get("campaign_id"); value != "" {
		filters.CampaignID = &value
	}
	if value := query.Get("source_id"); value != "" {
		filters.SourceID = &value
	}
	if value := query.Get("medium_id"); value != "" {
		filters.MediumID = &value
	}
	if value := query.Get("form_id"); value != "" {
		filters.FormID = &value
	}
	if value := query.Get("link_ids"); value != "" {
		filters.LinkIDs = strings.Split(value, ",")
	}

	return filters, nil
}
