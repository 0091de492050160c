package domain

// SeedOrders демонстрационные заказы для пустого или повреждённого хранилища
func SeedOrders() []Order {
	return []Order{
		{
			ID:              "ORD-1001",
			CustomerName:    "أحمد محمد",
			Phone:           "0599123456",
			Address:         "جنين - حي الرازي",
			Items:           "2 فستان، 1 جاكيت",
			TotalAmount:     450,
			Status:          OrderStatusDelivered,
			DeliveryCompany: DeliveryAramex.Ptr(),
			CreatedAt:       MustParseTimestamp("2026-02-01T10:00:00"),
		},
		{
			ID:              "ORD-1002",
			CustomerName:    "سارة علي",
			Phone:           "0598765432",
			Address:         "جنين - وسط البلد",
			Items:           "1 عباية، 2 حجاب",
			TotalAmount:     320,
			Status:          OrderStatusWithDeliveryCompany,
			DeliveryCompany: DeliveryFaster.Ptr(),
			CreatedAt:       MustParseTimestamp("2026-02-02T14:30:00"),
		},
		{
			ID:           "ORD-1003",
			CustomerName: "فاطمة حسن",
			Phone:        "0598111222",
			Address:      "يعبد",
			Items:        "3 بلوزات",
			TotalAmount:  180,
			Status:       OrderStatusReadyForDelivery,
			CreatedAt:    MustParseTimestamp("2026-02-03T09:15:00"),
		},
		{
			ID:           "ORD-1004",
			CustomerName: "مريم خالد",
			Phone:        "0598333444",
			Address:      "جنين - شارع الناصرة",
			Items:        "1 معطف",
			TotalAmount:  520,
			Status:       OrderStatusInPreparation,
			CreatedAt:    MustParseTimestamp("2026-02-03T11:00:00"),
		},
	}
}
