package repository

import (
	"context"
	"errors"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// DefaultOrdersKey слот, в котором лежит вся коллекция заказов
const DefaultOrdersKey = "superstar-orders"

// Storage интерфейс локального хранилища ключ-значение, аналог localStorage.
// Значение слота: непрозрачные байты, сериализацией занимается вызывающий.
type Storage interface {
	// GetItem returns ok=false when the key was never written.
	GetItem(ctx context.Context, key string) (value []byte, ok bool, err error)
	SetItem(ctx context.Context, key string, value []byte) error
	RemoveItem(ctx context.Context, key string) error
}
