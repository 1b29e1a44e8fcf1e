package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/kalbaitzer/taskboard/internal/application/report"
	"github.com/kalbaitzer/taskboard/internal/infrastructure/http/middleware"
)

// ReportsHandler handles /api/reports/*. Manager-only.
type ReportsHandler struct {
	performance *report.Performance
	log         zerolog.Logger
}

func NewReportsHandler(performance *report.Performance, log zerolog.Logger) *ReportsHandler {
	return &ReportsHandler{performance: performance, log: log}
}

// Performance handles GET /api/reports/performance.
func (h *ReportsHandler) Performance(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorFromContext(r.Context())
	rep, err := h.performance.Execute(r.Context(), actorID)
	if err != nil {
		AuditLog(h.log, r, "report.performance", actorID.String(), false, err.Error())
		writeDomainErr(w, err)
		return
	}
	AuditLog(h.log, r, "report.performance", actorID.String(), true, "")
	writeJSON(w, http.StatusOK, rep)
}
