package http

import (
	"net/http"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/analytics"
	"github.com/nimbushr/nimbus-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &AnalyticsHandlerImpl{analyticsService: analyticsService}
}

// Get implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	data, err := h.analyticsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, data)
}
