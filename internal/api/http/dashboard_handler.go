package http

import (
	"net/http"

	"borrowbuddy-backend/internal/service"
	"borrowbuddy-backend/internal/session"
)

// DashboardHandler serves the aggregated balances plus recent activity
// view the home screen renders.
type DashboardHandler struct {
	ledger service.LedgerService
}

func NewDashboardHandler(ledgerSvc service.LedgerService) *DashboardHandler {
	return &DashboardHandler{ledger: ledgerSvc}
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing session"})
		return
	}

	summary, err := h.ledger.GetDashboard(r.Context(), sess.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
