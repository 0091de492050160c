package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superstar/internal/domain"
	"superstar/internal/metrics"
	"superstar/internal/repository"
)

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// emptyStore returns a store whose slot already holds an empty collection.
func emptyStore(t *testing.T) (*OrderStore, *repository.MemoryStorage) {
	t.Helper()
	storage := repository.NewMemoryStorage()
	require.NoError(t, storage.SetItem(context.Background(), repository.DefaultOrdersKey, []byte("[]")))
	return NewOrderStore(context.Background(), storage, WithClock(fixedClock)), storage
}

func seededStore(t *testing.T) (*OrderStore, *repository.MemoryStorage) {
	t.Helper()
	storage := repository.NewMemoryStorage()
	return NewOrderStore(context.Background(), storage, WithClock(fixedClock)), storage
}

func sampleInput() domain.NewOrder {
	return domain.NewOrder{
		CustomerName: "نور",
		Phone:        "0599000000",
		Address:      "جنين",
		Items:        "1 فستان",
		TotalAmount:  180,
	}
}

// failingStorage fails reads and/or writes on demand.
type failingStorage struct {
	*repository.MemoryStorage
	failGet bool
	failSet bool
}

var errBoom = errors.New("boom")

func (f *failingStorage) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	if f.failGet {
		return nil, false, errBoom
	}
	return f.MemoryStorage.GetItem(ctx, key)
}

func (f *failingStorage) SetItem(ctx context.Context, key string, value []byte) error {
	if f.failSet {
		return errBoom
	}
	return f.MemoryStorage.SetItem(ctx, key, value)
}

func TestNewOrderStore_SeedsWhenSlotMissing(t *testing.T) {
	store, storage := seededStore(t)
	orders := store.ListOrders()
	require.Len(t, orders, 4)
	assert.Equal(t, "ORD-1001", orders[0].ID)
	assert.Equal(t, "ORD-1004", orders[3].ID)

	// seeding alone does not write the slot
	_, ok, err := storage.GetItem(context.Background(), repository.DefaultOrdersKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewOrderStore_SeedsOnMalformedOrUnreadableSlot(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"not json", "{}", "null", `[{"createdAt":42}]`} {
		storage := repository.NewMemoryStorage()
		require.NoError(t, storage.SetItem(ctx, repository.DefaultOrdersKey, []byte(raw)))
		store := NewOrderStore(ctx, storage)
		assert.Len(t, store.ListOrders(), 4, raw)
	}

	store := NewOrderStore(ctx, &failingStorage{MemoryStorage: repository.NewMemoryStorage(), failGet: true})
	assert.Len(t, store.ListOrders(), 4)
}

func TestNewOrderStore_LoadsPersistedCollection(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemoryStorage()
	first := NewOrderStore(ctx, storage, WithClock(fixedClock))
	created := first.CreateOrder(ctx, sampleInput())

	second := NewOrderStore(ctx, storage)
	orders := second.ListOrders()
	require.Len(t, orders, 5)
	assert.Equal(t, created.ID, orders[0].ID)

	want, err := domain.EncodeOrders(first.ListOrders())
	require.NoError(t, err)
	got, err := domain.EncodeOrders(orders)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestNewOrderStore_KeepsOrdersWithUnreadableCreatedAt(t *testing.T) {
	ctx := context.Background()
	for _, createdAt := range []string{`null`, `"2026-02-01"`} {
		storage := repository.NewMemoryStorage()
		raw := `[{"id":"ORD-1001","customerName":"a","phone":"1","address":"x","items":"i","totalAmount":5,` +
			`"status":"جديد","deliveryCompany":null,"createdAt":` + createdAt + `}]`
		require.NoError(t, storage.SetItem(ctx, repository.DefaultOrdersKey, []byte(raw)))

		store := NewOrderStore(ctx, storage, WithClock(fixedClock))
		require.Len(t, store.ListOrders(), 1, createdAt)
		store.CreateOrder(ctx, sampleInput())

		data, ok, err := storage.GetItem(ctx, repository.DefaultOrdersKey)
		require.NoError(t, err)
		require.True(t, ok)
		orders, err := domain.DecodeOrders(data)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "ORD-1002", orders[0].ID)
		assert.Equal(t, "a", orders[1].CustomerName)
		assert.Contains(t, string(data), `"createdAt":`+createdAt)
	}
}

func TestNewOrderStore_CustomKey(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemoryStorage()
	store := NewOrderStore(ctx, storage, WithStorageKey("tab-2"))
	store.CreateOrder(ctx, sampleInput())

	_, ok, _ := storage.GetItem(ctx, repository.DefaultOrdersKey)
	assert.False(t, ok)
	_, ok, _ = storage.GetItem(ctx, "tab-2")
	assert.True(t, ok)
}

func TestCreateOrder_OnEmptyStore(t *testing.T) {
	store, _ := emptyStore(t)
	in := sampleInput()
	in.Notes = "بعد الظهر"

	o := store.CreateOrder(context.Background(), in)
	assert.Equal(t, "ORD-1001", o.ID)
	assert.Equal(t, domain.OrderStatusNew, o.Status)
	assert.Nil(t, o.DeliveryCompany)
	assert.Equal(t, 180.0, o.TotalAmount)
	assert.Equal(t, "بعد الظهر", o.Notes)
	assert.Equal(t, "2026-10-15T12:00:00.000Z", o.CreatedAt.String())
}

func TestCreateOrder_WithDeliveryCompany(t *testing.T) {
	store, _ := emptyStore(t)
	in := sampleInput()
	in.DeliveryCompany = domain.DeliveryPartner.Ptr()

	o := store.CreateOrder(context.Background(), in)
	assert.Equal(t, domain.OrderStatusWithDeliveryCompany, o.Status)
	require.NotNil(t, o.DeliveryCompany)
	assert.Equal(t, domain.DeliveryPartner, *o.DeliveryCompany)

	// the caller's pointer is not retained
	*in.DeliveryCompany = domain.DeliveryOther
	got, err := store.Order(o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryPartner, *got.DeliveryCompany)
}

func TestCreateOrder_PrependsAndKeepsIDsUnique(t *testing.T) {
	ctx := context.Background()
	store, _ := seededStore(t)

	seen := map[string]bool{}
	for _, o := range store.ListOrders() {
		seen[o.ID] = true
	}
	for i := 0; i < 10; i++ {
		o := store.CreateOrder(ctx, sampleInput())
		assert.False(t, seen[o.ID], o.ID)
		seen[o.ID] = true
		assert.Equal(t, o.ID, store.ListOrders()[0].ID)
	}
	assert.Equal(t, "ORD-1014", store.ListOrders()[0].ID)
	assert.Len(t, store.ListOrders(), 14)
}

func TestCreateOrder_PersistsCollection(t *testing.T) {
	ctx := context.Background()
	store, storage := emptyStore(t)
	store.CreateOrder(ctx, sampleInput())

	raw, ok, err := storage.GetItem(ctx, repository.DefaultOrdersKey)
	require.NoError(t, err)
	require.True(t, ok)
	want, err := domain.EncodeOrders(store.ListOrders())
	require.NoError(t, err)
	assert.Equal(t, string(want), string(raw))
}

func TestCreateOrder_DoesNotValidate(t *testing.T) {
	store, _ := emptyStore(t)
	o := store.CreateOrder(context.Background(), domain.NewOrder{TotalAmount: -5})
	assert.Equal(t, "ORD-1001", o.ID)
	assert.Equal(t, -5.0, o.TotalAmount)
}

func TestListOrders_ReturnsCopy(t *testing.T) {
	store, _ := seededStore(t)
	list := store.ListOrders()
	list[0].Status = domain.OrderStatusCancelled
	*list[0].DeliveryCompany = domain.DeliveryOther
	_ = append(list[:1], list[2:]...)

	fresh := store.ListOrders()
	require.Len(t, fresh, 4)
	assert.Equal(t, domain.OrderStatusDelivered, fresh[0].Status)
	assert.Equal(t, domain.DeliveryAramex, *fresh[0].DeliveryCompany)
}

func TestUpdateOrderStatus_AnyTransition(t *testing.T) {
	ctx := context.Background()
	store, storage := seededStore(t)

	// Delivered straight back to New is accepted
	require.NoError(t, store.UpdateOrderStatus(ctx, "ORD-1001", domain.OrderStatusNew))
	o, err := store.Order("ORD-1001")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusNew, o.Status)
	assert.Equal(t, domain.DeliveryAramex, *o.DeliveryCompany)

	_, ok, _ := storage.GetItem(ctx, repository.DefaultOrdersKey)
	assert.True(t, ok)

	require.NoError(t, store.UpdateOrderStatus(ctx, "ORD-1004", domain.OrderStatusCancelled))
	o, _ = store.Order("ORD-1004")
	assert.Equal(t, domain.OrderStatusCancelled, o.Status)
}

func TestAssignDeliveryCompany_OverridesUnconditionally(t *testing.T) {
	ctx := context.Background()
	store, _ := seededStore(t)

	for _, prior := range []domain.OrderStatus{domain.OrderStatusDelivered, domain.OrderStatusCancelled, domain.OrderStatusNew} {
		require.NoError(t, store.UpdateOrderStatus(ctx, "ORD-1001", prior))
		require.NoError(t, store.AssignDeliveryCompany(ctx, "ORD-1001", domain.DeliveryOther))

		o, err := store.Order("ORD-1001")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusWithDeliveryCompany, o.Status, prior)
		assert.Equal(t, domain.DeliveryOther, *o.DeliveryCompany)
	}

	// order without a company gets one
	require.NoError(t, store.AssignDeliveryCompany(ctx, "ORD-1003", domain.DeliveryFaster))
	o, _ := store.Order("ORD-1003")
	assert.Equal(t, domain.DeliveryFaster, *o.DeliveryCompany)
	assert.Equal(t, domain.OrderStatusWithDeliveryCompany, o.Status)
}

func TestMutations_UnknownIDAreNoOps(t *testing.T) {
	ctx := context.Background()
	store, storage := seededStore(t)
	before := store.ListOrders()

	calls := 0
	store.Subscribe(func() { calls++ })

	err := store.UpdateOrderStatus(ctx, "ORD-9999", domain.OrderStatusDelivered)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	err = store.AssignDeliveryCompany(ctx, "ORD-9999", domain.DeliveryAramex)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = store.Order("ORD-9999")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.Equal(t, before, store.ListOrders())
	assert.Zero(t, calls)
	_, ok, _ := storage.GetItem(ctx, repository.DefaultOrdersKey)
	assert.False(t, ok, "nothing persisted")
}

func TestSubscribe_RegistrationOrderAndUnsubscribe(t *testing.T) {
	ctx := context.Background()
	store, _ := emptyStore(t)

	var calls []string
	unsubA := store.Subscribe(func() { calls = append(calls, "a") })
	store.Subscribe(func() { calls = append(calls, "b") })

	store.CreateOrder(ctx, sampleInput())
	assert.Equal(t, []string{"a", "b"}, calls)

	calls = nil
	require.NoError(t, store.UpdateOrderStatus(ctx, "ORD-1001", domain.OrderStatusInPreparation))
	require.NoError(t, store.AssignDeliveryCompany(ctx, "ORD-1001", domain.DeliveryAramex))
	assert.Equal(t, []string{"a", "b", "a", "b"}, calls)

	calls = nil
	unsubA()
	unsubA()
	store.CreateOrder(ctx, sampleInput())
	assert.Equal(t, []string{"b"}, calls)
}

func TestSubscribe_SameCallbackTwiceIsCalledTwice(t *testing.T) {
	store, _ := emptyStore(t)
	calls := 0
	fn := func() { calls++ }
	store.Subscribe(fn)
	unsub := store.Subscribe(fn)

	store.CreateOrder(context.Background(), sampleInput())
	assert.Equal(t, 2, calls)

	unsub()
	store.CreateOrder(context.Background(), sampleInput())
	assert.Equal(t, 3, calls)
}

func TestSubscribe_CallbackMayReadMutateAndUnsubscribe(t *testing.T) {
	ctx := context.Background()
	store, _ := emptyStore(t)

	var seen []int
	var unsubFirst func()
	unsubFirst = store.Subscribe(func() {
		seen = append(seen, len(store.ListOrders()))
		unsubFirst()
	})
	laterCalls := 0
	store.Subscribe(func() { laterCalls++ })

	// nested mutation from inside a callback
	nested := false
	store.Subscribe(func() {
		if !nested {
			nested = true
			require.NoError(t, store.UpdateOrderStatus(ctx, "ORD-1001", domain.OrderStatusInPreparation))
		}
	})

	store.CreateOrder(ctx, sampleInput())
	assert.Equal(t, []int{1}, seen)
	// outer emit plus the nested one; the first subscriber left after its first call
	assert.Equal(t, 2, laterCalls)

	o, err := store.Order("ORD-1001")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusInPreparation, o.Status)
}

func TestPersistFailure_MutationStandsAndIsLogged(t *testing.T) {
	ctx := context.Background()
	var logs bytes.Buffer
	reg := prometheus.NewRegistry()
	storage := &failingStorage{MemoryStorage: repository.NewMemoryStorage(), failSet: true}
	store := NewOrderStore(ctx, storage,
		WithLogger(zerolog.New(&logs)),
		WithMetrics(metrics.New(reg, "test")),
	)

	notified := false
	store.Subscribe(func() { notified = true })
	o := store.CreateOrder(ctx, sampleInput())

	assert.Equal(t, "ORD-1005", o.ID)
	assert.True(t, notified)
	assert.Len(t, store.ListOrders(), 5)
	assert.Contains(t, logs.String(), "persist orders")
	assert.Contains(t, logs.String(), "boom")
}

func TestOrderStore_ConcurrentMutations(t *testing.T) {
	ctx := context.Background()
	store, _ := emptyStore(t)

	var mu sync.Mutex
	notifications := 0
	store.Subscribe(func() {
		mu.Lock()
		notifications++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o := store.CreateOrder(ctx, sampleInput())
			_ = store.UpdateOrderStatus(ctx, o.ID, domain.OrderStatusInPreparation)
			_ = store.DeliveryStatistics()
		}()
	}
	wg.Wait()

	orders := store.ListOrders()
	require.Len(t, orders, 20)
	ids := map[string]bool{}
	for _, o := range orders {
		ids[o.ID] = true
	}
	assert.Len(t, ids, 20)
	assert.Equal(t, 40, notifications)
}
