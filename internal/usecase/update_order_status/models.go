package update_order_status

import "github.com/m04kA/SMC-POSService/internal/domain"

// Request модель запроса на смену статуса
type Request struct {
	OrderID int64
	Action  domain.OrderAction // prepare, approve, reject
}

// Response модель ответа с обновлённым заказом
type Response struct {
	Order *domain.Order
}
