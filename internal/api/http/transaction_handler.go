package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"borrowbuddy-backend/internal/ledger"
	"borrowbuddy-backend/internal/service"
	"borrowbuddy-backend/internal/session"
)

// TransactionHandler exposes the loan record CRUD endpoints. Every
// route runs behind the auth middleware, so a session is always
// present.
type TransactionHandler struct {
	ledger service.LedgerService
}

func NewTransactionHandler(ledgerSvc service.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledger: ledgerSvc}
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing session"})
		return
	}

	category, err := ledger.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	txns, err := h.ledger.ListTransactions(r.Context(), sess.UserID, category)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txns)
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing session"})
		return
	}

	var input ledger.NewTransactionInput
	if err := decodeBody(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	txn, err := h.ledger.AddTransaction(r.Context(), sess.UserID, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, txn)
}

func (h *TransactionHandler) Settle(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing session"})
		return
	}

	txn, err := h.ledger.SettleTransaction(r.Context(), sess.UserID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txn)
}

func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing session"})
		return
	}

	if err := h.ledger.DeleteTransaction(r.Context(), sess.UserID, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
