package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"superstar/internal/domain"
)

// OrderService граница, через которую представления работают со стором:
// проверяет и нормализует ввод, переходы статусов не ограничивает
type OrderService struct {
	store *OrderStore
}

func NewOrderService(store *OrderStore) *OrderService {
	return &OrderService{store: store}
}

var ErrInvalidInput = errors.New("invalid input")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// CreateOrder обрезает пробелы, проверяет обязательные поля и сумму, затем создаёт заказ
func (s *OrderService) CreateOrder(ctx context.Context, in domain.NewOrder) (*domain.Order, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.Items = strings.TrimSpace(in.Items)
	in.Notes = strings.TrimSpace(in.Notes)

	switch {
	case in.CustomerName == "":
		return nil, invalid("customer name is required")
	case in.Phone == "":
		return nil, invalid("phone is required")
	case in.Address == "":
		return nil, invalid("address is required")
	case in.Items == "":
		return nil, invalid("items are required")
	}
	if math.IsNaN(in.TotalAmount) || math.IsInf(in.TotalAmount, 0) || in.TotalAmount <= 0 {
		return nil, invalid("total amount must be a positive number")
	}
	if in.DeliveryCompany != nil && !in.DeliveryCompany.IsValid() {
		return nil, invalid("unknown delivery company %q", *in.DeliveryCompany)
	}

	o := s.store.CreateOrder(ctx, in)
	return &o, nil
}

// ListOrders возвращает снимок коллекции, новые сверху
func (s *OrderService) ListOrders(_ context.Context) []domain.Order {
	return s.store.ListOrders()
}

// GetOrder возвращает заказ по id
func (s *OrderService) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	o, err := s.store.Order(id)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatus принимает любой известный статус, в том числе "назад" по workflow
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	if !status.IsValid() {
		return nil, invalid("unknown status %q", status)
	}
	if err := s.store.UpdateOrderStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.GetOrder(ctx, id)
}

// AssignDelivery передаёт заказ службе доставки
func (s *OrderService) AssignDelivery(ctx context.Context, id string, company domain.DeliveryCompanyID) (*domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	if !company.IsValid() {
		return nil, invalid("unknown delivery company %q", company)
	}
	if err := s.store.AssignDeliveryCompany(ctx, id, company); err != nil {
		return nil, err
	}
	return s.GetOrder(ctx, id)
}

// Subscribe proxies to the store.
func (s *OrderService) Subscribe(fn func()) func() {
	return s.store.Subscribe(fn)
}
