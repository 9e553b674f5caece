package main

import (
	"net/http"

	"github.com/gorilla/mux"
)

// routeHandler общий вид всех обработчиков API
type routeHandler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// apiHandlers обработчики всех маршрутов /api
type apiHandlers struct {
	createTableBooking routeHandler
	listTableBookings  routeHandler
	getTableBooking    routeHandler
	cancelTableBooking routeHandler

	createOrder       routeHandler
	listOrders        routeHandler
	listPendingOrders routeHandler
	getOrder          routeHandler
	updateOrderStatus routeHandler
	deleteOrder       routeHandler

	salesReport routeHandler

	listMenu       routeHandler
	createMenuItem routeHandler
	getMenuImage   routeHandler
	deleteMenuItem routeHandler

	createUser routeHandler
	listUsers  routeHandler
	deleteUser routeHandler
	login      routeHandler
}

const apiPrefix = "/api"

// registerAPI регистрирует маршруты /api.
// Статические пути (/orders/pending, /users/login) объявлены до шаблонных с {id}.
// Маршруты висят на корневом роутере с полным путём: у mux.Subrouter
// несовпадение метода отдаёт 404 вместо 405.
func registerAPI(r *mux.Router, h apiHandlers) {
	api := apiRoutes{r}

	// --- Бронирования столов ---
	api.HandleFunc("/table-booking", h.createTableBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/table-booking", h.listTableBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/table-booking/{id:[0-9]+}", h.getTableBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/table-booking/{id:[0-9]+}", h.cancelTableBooking.Handle).Methods(http.MethodDelete)

	// --- Заказы ---
	api.HandleFunc("/orders", h.createOrder.Handle).Methods(http.MethodPost)
	api.HandleFunc("/orders", h.listOrders.Handle).Methods(http.MethodGet)
	api.HandleFunc("/orders/pending", h.listPendingOrders.Handle).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id:[0-9]+}", h.getOrder.Handle).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id:[0-9]+}", h.deleteOrder.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/orders/{id:[0-9]+}/{action}", h.updateOrderStatus.Handle).Methods(http.MethodPatch)

	// --- Отчёты ---
	api.HandleFunc("/sales", h.salesReport.Handle).Methods(http.MethodGet)

	// --- Меню ---
	api.HandleFunc("/menu", h.listMenu.Handle).Methods(http.MethodGet)
	api.HandleFunc("/menu", h.createMenuItem.Handle).Methods(http.MethodPost)
	api.HandleFunc("/menu/{id:[0-9]+}/image", h.getMenuImage.Handle).Methods(http.MethodGet)
	api.HandleFunc("/menu/{id:[0-9]+}", h.deleteMenuItem.Handle).Methods(http.MethodDelete)

	// --- Пользователи ---
	api.HandleFunc("/users/login", h.login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/users", h.createUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/users", h.listUsers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{id:[0-9]+}", h.deleteUser.Handle).Methods(http.MethodDelete)
}

// apiRoutes добавляет apiPrefix к путям маршрутов
type apiRoutes struct {
	r *mux.Router
}

func (a apiRoutes) HandleFunc(path string, f func(http.ResponseWriter, *http.Request)) *mux.Route {
	return a.r.HandleFunc(apiPrefix+path, f)
}
