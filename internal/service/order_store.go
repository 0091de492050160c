package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"superstar/internal/domain"
	"superstar/internal/logging"
	"superstar/internal/metrics"
	"superstar/internal/repository"
)

// firstOrderNumber + len(orders) + 1 gives the next id.
const firstOrderNumber = 1000

// OrderStore единственный владелец коллекции заказов: держит её в памяти,
// сохраняет целиком в слот хранилища после каждой мутации и уведомляет подписчиков.
type OrderStore struct {
	mu     sync.Mutex
	orders []domain.Order // newest first

	subsMu    sync.Mutex
	subs      []subscriber
	nextSubID uint64

	storage repository.Storage
	key     string
	now     func() time.Time
	log     zerolog.Logger
	metrics *metrics.Metrics
}

type subscriber struct {
	id uint64
	fn func()
}

// StoreOption настраивает OrderStore
type StoreOption func(*OrderStore)

// WithClock overrides time.Now for createdAt.
func WithClock(now func() time.Time) StoreOption {
	return func(s *OrderStore) { s.now = now }
}

func WithLogger(l zerolog.Logger) StoreOption {
	return func(s *OrderStore) { s.log = logging.ForPackage(l, "service") }
}

func WithMetrics(m *metrics.Metrics) StoreOption {
	return func(s *OrderStore) { s.metrics = m }
}

// WithStorageKey changes the slot the collection lives in.
func WithStorageKey(key string) StoreOption {
	return func(s *OrderStore) {
		if key != "" {
			s.key = key
		}
	}
}

// NewOrderStore загружает коллекцию из хранилища. Отсутствующий слот, ошибка чтения
// или повреждённые данные не возвращаются как ошибка: стор стартует с демо-заказами.
func NewOrderStore(ctx context.Context, storage repository.Storage, opts ...StoreOption) *OrderStore {
	s := &OrderStore{
		storage: storage,
		key:     repository.DefaultOrdersKey,
		now:     time.Now,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.orders = s.load(ctx)
	s.metrics.SetOrders(len(s.orders))
	return s
}

func (s *OrderStore) load(ctx context.Context) []domain.Order {
	raw, ok, err := s.storage.GetItem(ctx, s.key)
	if err != nil {
		s.log.Warn().Err(err).Str(logging.KEY, s.key).Str(logging.EVENT, "seed").Msg("orders slot unreadable, using sample orders")
		return domain.SeedOrders()
	}
	if !ok {
		s.log.Info().Str(logging.KEY, s.key).Str(logging.EVENT, "seed").Msg("orders slot empty, using sample orders")
		return domain.SeedOrders()
	}
	orders, err := domain.DecodeOrders(raw)
	if err != nil {
		s.log.Warn().Err(err).Str(logging.KEY, s.key).Str(logging.EVENT, "seed").Msg("orders slot malformed, using sample orders")
		return domain.SeedOrders()
	}
	s.log.Info().Str(logging.KEY, s.key).Int("orders", len(orders)).Msg("orders loaded")
	return orders
}

// ListOrders returns a copy of the collection, newest first.
func (s *OrderStore) ListOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOrders(s.orders)
}

// Order returns the order with the given id or repository.ErrNotFound.
func (s *OrderStore) Order(id string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx == -1 {
		return domain.Order{}, repository.ErrNotFound
	}
	return s.orders[idx].Clone(), nil
}

// CreateOrder присваивает id и статус, добавляет заказ в начало коллекции.
// Вход не валидируется: это задача вызывающего (см. OrderService).
func (s *OrderStore) CreateOrder(ctx context.Context, in domain.NewOrder) domain.Order {
	s.mu.Lock()
	o := domain.Order{
		ID:           fmt.Sprintf("ORD-%d", firstOrderNumber+len(s.orders)+1),
		CustomerName: in.CustomerName,
		Phone:        in.Phone,
		Address:      in.Address,
		Items:        in.Items,
		TotalAmount:  in.TotalAmount,
		Status:       domain.OrderStatusNew,
		CreatedAt:    domain.NewTimestamp(s.now()),
		Notes:        in.Notes,
	}
	if in.DeliveryCompany != nil {
		id := *in.DeliveryCompany
		o.DeliveryCompany = &id
		o.Status = domain.OrderStatusWithDeliveryCompany
	}

	orders := make([]domain.Order, 0, len(s.orders)+1)
	orders = append(orders, o)
	s.orders = append(orders, s.orders...)
	s.commit(ctx, metrics.MutationCreate)
	s.mu.Unlock()

	s.log.Info().Str(logging.ID, o.ID).Str(logging.STATUS, o.Status.String()).Msg("order created")
	s.emit()
	return o.Clone()
}

// UpdateOrderStatus меняет статус без проверки допустимости перехода.
// Для неизвестного id коллекция не меняется и возвращается repository.ErrNotFound.
func (s *OrderStore) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx == -1 {
		s.mu.Unlock()
		s.metrics.Mutation(metrics.MutationNotFound)
		return fmt.Errorf("update status of %s: %w", id, repository.ErrNotFound)
	}
	prev := s.orders[idx].Status
	s.orders[idx].Status = status
	s.commit(ctx, metrics.MutationStatus)
	s.mu.Unlock()

	s.log.Info().Str(logging.ID, id).Str("from", prev.String()).Str(logging.STATUS, status.String()).Msg("order status updated")
	s.emit()
	return nil
}

// AssignDeliveryCompany безусловно перезаписывает службу доставки и ставит
// статус "с службой доставки", даже для доставленных и отменённых заказов.
func (s *OrderStore) AssignDeliveryCompany(ctx context.Context, id string, company domain.DeliveryCompanyID) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx == -1 {
		s.mu.Unlock()
		s.metrics.Mutation(metrics.MutationNotFound)
		return fmt.Errorf("assign delivery to %s: %w", id, repository.ErrNotFound)
	}
	c := company
	s.orders[idx].DeliveryCompany = &c
	s.orders[idx].Status = domain.OrderStatusWithDeliveryCompany
	s.commit(ctx, metrics.MutationAssign)
	s.mu.Unlock()

	s.log.Info().Str(logging.ID, id).Str(logging.COMPANY, string(company)).Msg("order handed to delivery company")
	s.emit()
	return nil
}

// Subscribe registers fn to be called after every successful mutation.
// Callbacks run in registration order on the mutating goroutine, outside the
// store lock. The returned func removes fn; calling it twice is harmless.
func (s *OrderStore) Subscribe(fn func()) (unsubscribe func()) {
	s.subsMu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.metrics.SetSubscribers(len(s.subs))
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *OrderStore) unsubscribe(id uint64) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			// copy-on-write so an in-flight emit keeps its snapshot intact
			next := make([]subscriber, 0, len(s.subs)-1)
			next = append(next, s.subs[:i]...)
			s.subs = append(next, s.subs[i+1:]...)
			break
		}
	}
	s.metrics.SetSubscribers(len(s.subs))
}

// emit calls a snapshot of the subscribers; must be called without s.mu held.
func (s *OrderStore) emit() {
	s.subsMu.Lock()
	snapshot := make([]subscriber, len(s.subs))
	copy(snapshot, s.subs)
	s.subsMu.Unlock()

	for _, sub := range snapshot {
		sub.fn()
	}
}

// commit persists the whole collection; caller holds s.mu.
func (s *OrderStore) commit(ctx context.Context, kind string) {
	s.metrics.Mutation(kind)
	s.metrics.SetOrders(len(s.orders))

	data, err := domain.EncodeOrders(s.orders)
	if err == nil {
		err = s.storage.SetItem(ctx, s.key, data)
	}
	if err != nil {
		// in-memory state stays authoritative; the next mutation rewrites the slot
		s.metrics.Mutation(metrics.MutationPersistError)
		s.log.Error().Err(err).Str(logging.KEY, s.key).Str(logging.EVENT, kind).Msg("persist orders")
	}
}

func (s *OrderStore) indexOf(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneOrders(in []domain.Order) []domain.Order {
	out := make([]domain.Order, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
