package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/api/middleware"
)

const (
	msgRouteNotFound    = "маршрут не найден"
	msgMethodNotAllowed = "метод не поддерживается"
)

// apiHandlers обработчики маршрутов /api/v1
type apiHandlers struct {
	ListHalls           http.HandlerFunc
	GetHall             http.HandlerFunc
	GetHallAvailability http.HandlerFunc
	CalculatePrice      http.HandlerFunc
	GetCoupon           http.HandlerFunc

	CreateRecord http.HandlerFunc
	GetRecord    http.HandlerFunc
	CancelRecord http.HandlerFunc

	CreateHall       http.HandlerFunc
	UpdateHallPrices http.HandlerFunc
	GetSetting       http.HandlerFunc
	UpdateSetting    http.HandlerFunc
	CreateCoupon     http.HandlerFunc
}

// registerAPIRoutes регистрирует маршруты /api/v1 на одном subrouter.
// Аутентификация навешивается на каждый маршрут отдельно, чтобы mux видел
// все методы пути и отвечал 405 на неподдерживаемый метод.
func registerAPIRoutes(r *mux.Router, h apiHandlers, jwtSecret string) {
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondNotFound(w, msgRouteNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	auth := middleware.Auth(jwtSecret)
	protected := func(next http.HandlerFunc) http.Handler {
		return auth(next)
	}
	admin := func(next http.HandlerFunc) http.Handler {
		return auth(middleware.AdminOnly(next))
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Залы ---
	api.Handle("/halls", h.ListHalls).Methods(http.MethodGet)
	api.Handle("/halls/{hallId:[0-9]+}", h.GetHall).Methods(http.MethodGet)

	// Доступность зала на ISO неделю
	api.Handle("/halls/{hallId:[0-9]+}/availability", h.GetHallAvailability).Methods(http.MethodGet)

	// Расчет стоимости без создания записи
	api.Handle("/halls/{hallId:[0-9]+}/price", h.CalculatePrice).Methods(http.MethodPost)

	// --- Купоны ---
	api.Handle("/coupons/{code}", h.GetCoupon).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	// --- Записи ---
	api.Handle("/records", protected(h.CreateRecord)).Methods(http.MethodPost)
	api.Handle("/records/{recordId}", protected(h.GetRecord)).Methods(http.MethodGet)
	api.Handle("/records/{recordId}/cancel", protected(h.CancelRecord)).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (role=admin)
	// ============================================================

	api.Handle("/halls", admin(h.CreateHall)).Methods(http.MethodPost)
	api.Handle("/halls/{hallId:[0-9]+}/prices", admin(h.UpdateHallPrices)).Methods(http.MethodPut)
	api.Handle("/settings/{key}", admin(h.GetSetting)).Methods(http.MethodGet)
	api.Handle("/settings/{key}", admin(h.UpdateSetting)).Methods(http.MethodPut)
	api.Handle("/coupons", admin(h.CreateCoupon)).Methods(http.MethodPost)
}
