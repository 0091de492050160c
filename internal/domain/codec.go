package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedOrders возвращается, если содержимое хранилища не массив заказов
var ErrMalformedOrders = errors.New("malformed orders payload")

// EncodeOrders serializes the collection the way the browser did: a compact
// JSON array with non-ASCII and HTML characters left as is.
func EncodeOrders(orders []Order) ([]byte, error) {
	if orders == nil {
		orders = []Order{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(orders); err != nil {
		return nil, fmt.Errorf("encode orders: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// DecodeOrders parses a persisted collection. Only a JSON array is accepted.
func DecodeOrders(data []byte) ([]Order, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrMalformedOrders
	}
	var orders []Order
	if err := json.Unmarshal(trimmed, &orders); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOrders, err)
	}
	return orders, nil
}
