package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/PradeepKumarReddy-098/pioneer/internal/middleware"
	"github.com/PradeepKumarReddy-098/pioneer/internal/model"
	"github.com/PradeepKumarReddy-098/pioneer/internal/service"
	"github.com/PradeepKumarReddy-098/pioneer/internal/upstream"
)

// DataHandler serves the filtered entry collection.
type DataHandler struct {
	entries *service.EntryService
	logger  *slog.Logger
}

// NewDataHandler creates a new DataHandler.
func NewDataHandler(entries *service.EntryService, logger *slog.Logger) *DataHandler {
	return &DataHandler{
		entries: entries,
		logger:  logger,
	}
}

// Data fetches the entry collection and filters it by the optional
// category and limit query parameters. Presence is what selects the
// filter branch, so an empty "?category=" still counts as provided.
//
// GET /data?category=...&limit=...
func (h *DataHandler) Data(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := service.FilterQuery{
		Category:    params.Get("category"),
		HasCategory: params.Has("category"),
		Limit:       params.Get("limit"),
		HasLimit:    params.Has("limit"),
	}

	result, err := h.entries.Entries(r.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoEntriesForCategory):
			writeMessage(w, http.StatusNotFound, "No entries found for this category")
		case errors.Is(err, upstream.ErrFetchFailed):
			h.logger.Error("upstream fetch failed",
				slog.String("error", err.Error()),
				slog.String("request_id", middleware.GetRequestID(r.Context())),
			)
			writeMessage(w, http.StatusInternalServerError, "Failed to retrieve data")
		default:
			h.logger.Error("data request failed",
				slog.String("error", err.Error()),
				slog.String("request_id", middleware.GetRequestID(r.Context())),
			)
			writeMessage(w, http.StatusInternalServerError, "Failed to retrieve data")
		}
		return
	}

	if result == nil {
		result = []model.Entry{}
	}
	writeJSON(w, http.StatusOK, result)
}
