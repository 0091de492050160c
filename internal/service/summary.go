package service

import (
	"context"
	"time"

	"superstar/internal/domain"
)

// SellerSummary карточки панели продавца
type SellerSummary struct {
	Total            int `json:"total"`
	Pending          int `json:"pending"`
	ReadyToShip      int `json:"readyToShip"`
	Today            int `json:"today"`
	AwaitingDispatch int `json:"awaitingDispatch"`
}

// AdminSummary карточки панели администратора
type AdminSummary struct {
	TotalOrders      int                  `json:"totalOrders"`
	TotalRevenue     float64              `json:"totalRevenue"`
	DeliveredRevenue float64              `json:"deliveredRevenue"`
	Companies        int                  `json:"companies"`
	Delivery         []domain.CompanyStat `json:"delivery"`
}

// SellerSummary counts orders relative to now; "today" is the same calendar day in now's location.
func (s *OrderService) SellerSummary(_ context.Context, now time.Time) SellerSummary {
	orders := s.store.ListOrders()
	sum := SellerSummary{Total: len(orders)}
	y, m, d := now.Date()
	for _, o := range orders {
		if !o.Status.IsTerminal() {
			sum.Pending++
		}
		if o.Status == domain.OrderStatusReadyForDelivery {
			sum.ReadyToShip++
		}
		if o.AwaitingDispatch() {
			sum.AwaitingDispatch++
		}
		if o.CreatedAt.IsZero() {
			continue
		}
		oy, om, od := o.CreatedAt.Time().In(now.Location()).Date()
		if oy == y && om == m && od == d {
			sum.Today++
		}
	}
	return sum
}

func (s *OrderService) AdminSummary(_ context.Context) AdminSummary {
	orders := s.store.ListOrders()
	stats := deliveryStatistics(orders)
	return AdminSummary{
		TotalOrders:  len(orders),
		TotalRevenue: sumAmounts(orders, nil),
		DeliveredRevenue: sumAmounts(orders, func(o domain.Order) bool {
			return o.Status == domain.OrderStatusDelivered
		}),
		Companies: len(stats),
		Delivery:  stats,
	}
}
