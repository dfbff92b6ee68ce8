package api

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/erazemk/najdeno/internal/catalog"
	"github.com/erazemk/najdeno/internal/model"
	"github.com/erazemk/najdeno/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	st := store.New(db)
	engine := catalog.NewEngine(st)

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{Store: st, Engine: engine}
	claimsHandler := &ClaimsHandler{Store: st, Engine: engine}
	usersHandler := &UsersHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)
	requireAdmin := RequireRole(model.RoleAdmin)
	requireModerator := RequireRole(model.RoleModerator)

	mux := http.NewServeMux()

	// Public: browsing, reporting, claiming.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("POST /api/claims", claimsHandler.Submit)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated account routes.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))

	// Moderation (moderator+).
	mux.Handle("GET /api/admin/items", authMW(requireModerator(http.HandlerFunc(itemsHandler.AdminList))))
	mux.Handle("PUT /api/admin/items/{id}/status", authMW(requireModerator(http.HandlerFunc(itemsHandler.SetStatus))))
	mux.Handle("DELETE /api/admin/items/{id}", authMW(requireModerator(http.HandlerFunc(itemsHandler.Delete))))
	mux.Handle("GET /api/admin/claims", authMW(requireModerator(http.HandlerFunc(claimsHandler.AdminList))))
	mux.Handle("POST /api/admin/claims/{id}/approve", authMW(requireModerator(http.HandlerFunc(claimsHandler.Approve))))
	mux.Handle("POST /api/admin/claims/{id}/reject", authMW(requireModerator(http.HandlerFunc(claimsHandler.Reject))))
	mux.Handle("DELETE /api/admin/claims/{id}", authMW(requireModerator(http.HandlerFunc(claimsHandler.Delete))))

	// User management (admin only).
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("POST /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.Create))))
	mux.Handle("GET /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Get))))
	mux.Handle("PUT /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Update))))
	mux.Handle("PUT /api/users/{id}/password", authMW(requireAdmin(http.HandlerFunc(usersHandler.ResetPassword))))
	mux.Handle("DELETE /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Delete))))

	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
