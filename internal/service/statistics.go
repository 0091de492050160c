package service

import (
	"github.com/shopspring/decimal"

	"superstar/internal/domain"
)

// DeliveryStatistics считает агрегаты по каждой службе доставки за один проход.
// Всегда четыре записи в порядке справочника, даже если заказов у службы нет.
func (s *OrderStore) DeliveryStatistics() []domain.CompanyStat {
	return deliveryStatistics(s.ListOrders())
}

func deliveryStatistics(orders []domain.Order) []domain.CompanyStat {
	companies := domain.DeliveryCompanies()

	type acc struct {
		orders    int
		delivered int
		revenue   decimal.Decimal
	}
	byID := make(map[domain.DeliveryCompanyID]*acc, len(companies))
	for _, c := range companies {
		byID[c.ID] = &acc{}
	}

	for _, o := range orders {
		if o.DeliveryCompany == nil {
			continue
		}
		a, ok := byID[*o.DeliveryCompany]
		if !ok {
			// unknown ids only come from hand-edited storage
			continue
		}
		a.orders++
		a.revenue = a.revenue.Add(decimal.NewFromFloat(o.TotalAmount))
		if o.Status == domain.OrderStatusDelivered {
			a.delivered++
		}
	}

	out := make([]domain.CompanyStat, 0, len(companies))
	for _, c := range companies {
		a := byID[c.ID]
		out = append(out, domain.CompanyStat{
			ID:        c.ID,
			Name:      c.Name,
			Orders:    a.orders,
			Delivered: a.delivered,
			Revenue:   a.revenue.InexactFloat64(),
		})
	}
	return out
}

// sumAmounts adds order totals without float drift.
func sumAmounts(orders []domain.Order, keep func(domain.Order) bool) float64 {
	total := decimal.Zero
	for _, o := range orders {
		if keep == nil || keep(o) {
			total = total.Add(decimal.NewFromFloat(o.TotalAmount))
		}
	}
	return total.InexactFloat64()
}
