package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"borrowbuddy-backend/internal/security"
	"borrowbuddy-backend/internal/service"
)

// NewRouter wires every API route. Auth endpoints that establish a
// session are public; everything else sits behind the bearer-token
// middleware.
func NewRouter(ledgerSvc service.LedgerService, authSvc service.AuthService, tokens security.TokenManager) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	txnHandler := NewTransactionHandler(ledgerSvc)
	dashHandler := NewDashboardHandler(ledgerSvc)

	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", authHandler.SignUp).Methods("POST")
	api.HandleFunc("/auth/signin", authHandler.SignIn).Methods("POST")
	api.HandleFunc("/auth/google", authHandler.SignInWithGoogle).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokens))

	protected.HandleFunc("/auth/signout", authHandler.SignOut).Methods("POST")
	protected.HandleFunc("/transactions", txnHandler.List).Methods("GET")
	protected.HandleFunc("/transactions", txnHandler.Create).Methods("POST")
	protected.HandleFunc("/transactions/{id}/settle", txnHandler.Settle).Methods("POST")
	protected.HandleFunc("/transactions/{id}", txnHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/dashboard", dashHandler.Get).Methods("GET")

	return router
}
