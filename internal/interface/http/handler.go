package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/astrarium/natalchart/internal/domain/chart"
	apperrors "github.com/astrarium/natalchart/pkg/errors"
)

// Handler wires the HTTP transport to the chart domain.
type Handler struct {
	chartSvc chart.Service
	logger   *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(chartSvc chart.Service, logger *slog.Logger) *Handler {
	return &Handler{
		chartSvc: chartSvc,
		logger:   logger.With("component", "http.handler"),
	}
}

// Health answers the GET probe with a usage hint.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":   true,
		"hint": `POST {"date":"YYYY-MM-DD","time":"HH:MM","lat":..,"lon":..} or {"date":..,"place":"City, Country"}`,
	})
}

// Compute handles the natal chart endpoint.
func (h *Handler) Compute(c *gin.Context) {
	var req chart.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, errMessage(err), err))
		return
	}

	resp, err := h.chartSvc.Compute(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case apperrors.IsCode(err, apperrors.CodeInvalidInput),
			apperrors.IsCode(err, apperrors.CodeLocationError),
			apperrors.IsCode(err, apperrors.CodeGeocodingError):
			status = http.StatusBadRequest
		}
		abortWithError(c, NewHTTPError(status, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Recent lists the newest computed charts.
func (h *Handler) Recent(c *gin.Context) {
	records, err := h.chartSvc.Recent(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "could not list recent charts", err))
		return
	}

	entries := make([]recentEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, recentEntry{
			ID:            rec.ID.String(),
			ComputedAt:    rec.CreatedAt.Format(time.RFC3339),
			Date:          rec.BirthDate,
			TimeKnown:     rec.TimeKnown,
			Tz:            rec.Tz,
			SunSign:       rec.SunSign,
			MoonSign:      rec.MoonSign,
			AscendantSign: rec.AscendantSign,
		})
	}
	c.JSON(http.StatusOK, gin.H{"charts": entries})
}

type recentEntry struct {
	ID            string  `json:"id"`
	ComputedAt    string  `json:"computedAt"`
	Date          string  `json:"date"`
	TimeKnown     bool    `json:"timeKnown"`
	Tz            string  `json:"tz"`
	SunSign       string  `json:"sunSign"`
	MoonSign      *string `json:"moonSign"`
	AscendantSign *string `json:"ascendantSign"`
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
