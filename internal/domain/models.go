package domain

import "strings"

// OrderStatus тип статуса заказа. Значения хранятся как есть в локальном хранилище.
type OrderStatus string

const (
	OrderStatusNew                 OrderStatus = "جديد"
	OrderStatusInPreparation       OrderStatus = "قيد التحضير"
	OrderStatusReadyForDelivery    OrderStatus = "جاهز للتوصيل"
	OrderStatusWithDeliveryCompany OrderStatus = "مع شركة التوصيل"
	OrderStatusDelivered           OrderStatus = "تم التوصيل"
	OrderStatusCancelled           OrderStatus = "ملغي"
)

var allStatuses = []OrderStatus{
	OrderStatusNew,
	OrderStatusInPreparation,
	OrderStatusReadyForDelivery,
	OrderStatusWithDeliveryCompany,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

var statusBadges = map[OrderStatus]string{
	OrderStatusNew:                 "badge-new",
	OrderStatusInPreparation:       "badge-prep",
	OrderStatusReadyForDelivery:    "badge-ready",
	OrderStatusWithDeliveryCompany: "badge-shipping",
	OrderStatusDelivered:           "badge-delivered",
	OrderStatusCancelled:           "badge-cancelled",
}

// AllStatuses возвращает статусы в порядке обычного workflow продавца
func AllStatuses() []OrderStatus {
	out := make([]OrderStatus, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	_, ok := statusBadges[s]
	return ok
}

// IsTerminal true для доставленных и отменённых заказов
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// BadgeClass css-класс бейджа; неизвестный статус рисуется как новый
func (s OrderStatus) BadgeClass() string {
	if c, ok := statusBadges[s]; ok {
		return c
	}
	return "badge-new"
}

// ParseStatus принимает значение статуса с обрезкой пробелов
func ParseStatus(raw string) (OrderStatus, bool) {
	s := OrderStatus(strings.TrimSpace(raw))
	return s, s.IsValid()
}

// Order сущность заказа
type Order struct {
	ID              string             `json:"id"`
	CustomerName    string             `json:"customerName"`
	Phone           string             `json:"phone"`
	Address         string             `json:"address"`
	Items           string             `json:"items"`
	TotalAmount     float64            `json:"totalAmount"`
	Status          OrderStatus        `json:"status"`
	DeliveryCompany *DeliveryCompanyID `json:"deliveryCompany"`
	CreatedAt       Timestamp          `json:"createdAt"`
	Notes           string             `json:"notes,omitempty"`
}

// Clone returns a copy that shares no pointers with o.
func (o Order) Clone() Order {
	cp := o
	if o.DeliveryCompany != nil {
		id := *o.DeliveryCompany
		cp.DeliveryCompany = &id
	}
	return cp
}

// AwaitingDispatch заказ готов, но ещё не передан в службу доставки
func (o Order) AwaitingDispatch() bool {
	return o.Status == OrderStatusReadyForDelivery && o.DeliveryCompany == nil
}

// NewOrder входные данные для создания заказа
type NewOrder struct {
	CustomerName    string
	Phone           string
	Address         string
	Items           string
	TotalAmount     float64
	Notes           string
	DeliveryCompany *DeliveryCompanyID
}
