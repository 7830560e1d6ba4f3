package printer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/danie1204clmm-ctrl/diegao/internal/catalog"
	"github.com/danie1204clmm-ctrl/diegao/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDriver is a mock implementation of the Driver interface
type MockDriver struct {
	mock.Mock
}

func (m *MockDriver) ListPaired(ctx context.Context) ([]Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Device), args.Error(1)
}

func (m *MockDriver) Connect(ctx context.Context, address string) Result {
	args := m.Called(ctx, address)
	return args.Get(0).(Result)
}

func (m *MockDriver) IsConnected(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockDriver) SendFormatted(ctx context.Context, ins []Instruction) Result {
	args := m.Called(ctx, ins)
	return args.Get(0).(Result)
}

// memStore is an in-memory kv.Store for service tests.
type memStore struct {
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	v, found := m.data[key]
	return v, found, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memStore) Remove(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func printableOrder() *order.Order {
	return &order.Order{
		ID:       "100",
		PlacedAt: "01/06/2025 12:00:00",
		Items: []catalog.Product{
			{ID: "carne", Name: "Pastel de Carne", Price: 10, Colors: []string{"#D32F2F"}},
		},
		Quantities: map[string]int{"carne": 1},
		Total:      10,
	}
}

func TestService_PrintOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - already connected", func(t *testing.T) {
		driver := new(MockDriver)
		svc := NewService(driver, newMemStore())

		driver.On("IsConnected", ctx).Return(true).Once()
		driver.On("SendFormatted", ctx, mock.Anything).Return(Result{OK: true}).Once()

		res := svc.PrintOrder(ctx, printableOrder())

		assert.True(t, res.OK)
		driver.AssertExpectations(t)
	})

	t.Run("Success - reconnects via saved address", func(t *testing.T) {
		driver := new(MockDriver)
		store := newMemStore()
		store.data[savedDeviceKey] = "00:11:22:33:44:55"
		svc := NewService(driver, store)

		driver.On("IsConnected", ctx).Return(false).Once()
		driver.On("Connect", ctx, "00:11:22:33:44:55").Return(Result{OK: true}).Once()
		driver.On("SendFormatted", ctx, mock.Anything).Return(Result{OK: true}).Once()

		res := svc.PrintOrder(ctx, printableOrder())

		assert.True(t, res.OK)
		driver.AssertExpectations(t)
	})

	t.Run("Success - falls back to paired name heuristic", func(t *testing.T) {
		driver := new(MockDriver)
		svc := NewService(driver, newMemStore())

		driver.On("IsConnected", ctx).Return(false).Once()
		driver.On("ListPaired", ctx).Return([]Device{
			{Name: "JBL Speaker", Address: "aa"},
			{Name: "RPP02N Thermal Printer", Address: "bb"},
		}, nil).Once()
		driver.On("Connect", ctx, "bb").Return(Result{OK: true}).Once()
		driver.On("SendFormatted", ctx, mock.Anything).Return(Result{OK: true}).Once()

		res := svc.PrintOrder(ctx, printableOrder())

		assert.True(t, res.OK)
		driver.AssertExpectations(t)
	})

	t.Run("Failure - no paired printer", func(t *testing.T) {
		driver := new(MockDriver)
		svc := NewService(driver, newMemStore())

		driver.On("IsConnected", ctx).Return(false).Once()
		driver.On("ListPaired", ctx).Return([]Device{{Name: "JBL Speaker", Address: "aa"}}, nil).Once()

		res := svc.PrintOrder(ctx, printableOrder())

		assert.False(t, res.OK)
		assert.Equal(t, "no paired printer found", res.Reason)
	})

	t.Run("Failure - discovery error surfaces reason", func(t *testing.T) {
		driver := new(MockDriver)
		svc := NewService(driver, newMemStore())

		driver.On("IsConnected", ctx).Return(false).Once()
		driver.On("ListPaired", ctx).Return(nil, errors.New("bluetooth off")).Once()

		res := svc.PrintOrder(ctx, printableOrder())

		assert.False(t, res.OK)
		assert.Contains(t, res.Reason, "bluetooth off")
	})

	t.Run("Failure - transmission reason passed through", func(t *testing.T) {
		driver := new(MockDriver)
		svc := NewService(driver, newMemStore())

		driver.On("IsConnected", ctx).Return(true).Once()
		driver.On("SendFormatted", ctx, mock.Anything).
			Return(Result{OK: false, Reason: "paper jam"}).Once()

		res := svc.PrintOrder(ctx, printableOrder())

		assert.False(t, res.OK)
		assert.Equal(t, "paper jam", res.Reason)
	})
}

// blockingDriver parks SendFormatted until released, to exercise the
// one-attempt-per-order guard.
type blockingDriver struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (d *blockingDriver) ListPaired(context.Context) ([]Device, error) { return nil, nil }
func (d *blockingDriver) Connect(context.Context, string) Result       { return Result{OK: true} }
func (d *blockingDriver) IsConnected(context.Context) bool             { return true }

func (d *blockingDriver) SendFormatted(context.Context, []Instruction) Result {
	d.once.Do(func() { close(d.started) })
	<-d.release
	return Result{OK: true}
}

func TestService_PrintOrder_SingleInFlight(t *testing.T) {
	ctx := context.Background()
	driver := &blockingDriver{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewService(driver, newMemStore())
	o := printableOrder()

	first := make(chan Result, 1)
	go func() { first <- svc.PrintOrder(ctx, o) }()
	<-driver.started

	// second attempt for the same order is rejected, not queued
	res := svc.PrintOrder(ctx, o)
	assert.False(t, res.OK)
	assert.Contains(t, res.Reason, "already running")

	close(driver.release)
	assert.True(t, (<-first).OK)

	// a fresh attempt after completion is allowed again
	assert.True(t, svc.PrintOrder(ctx, o).OK)
}

func TestService_Connect(t *testing.T) {
	ctx := context.Background()

	t.Run("Success persists the address", func(t *testing.T) {
		driver := new(MockDriver)
		store := newMemStore()
		svc := NewService(driver, store)

		driver.On("Connect", ctx, "00:11:22:33:44:55").Return(Result{OK: true}).Once()

		res := svc.Connect(ctx, "00:11:22:33:44:55")

		require.True(t, res.OK)
		assert.Equal(t, "00:11:22:33:44:55", store.data[savedDeviceKey])

		address, found := svc.SavedDevice(ctx)
		assert.True(t, found)
		assert.Equal(t, "00:11:22:33:44:55", address)
	})

	t.Run("Failure does not persist", func(t *testing.T) {
		driver := new(MockDriver)
		store := newMemStore()
		svc := NewService(driver, store)

		driver.On("Connect", ctx, "bad").Return(Result{OK: false, Reason: "unreachable"}).Once()

		res := svc.Connect(ctx, "bad")

		assert.False(t, res.OK)
		_, found := store.data[savedDeviceKey]
		assert.False(t, found)
	})

	t.Run("Forget drops the saved address", func(t *testing.T) {
		driver := new(MockDriver)
		store := newMemStore()
		store.data[savedDeviceKey] = "aa"
		svc := NewService(driver, store)

		require.NoError(t, svc.Forget(ctx))
		_, found := svc.SavedDevice(ctx)
		assert.False(t, found)
	})
}

func TestService_PrintTest(t *testing.T) {
	ctx := context.Background()
	driver := new(MockDriver)
	svc := NewService(driver, newMemStore())

	driver.On("IsConnected", ctx).Return(true).Once()
	driver.On("SendFormatted", ctx, mock.Anything).Return(Result{OK: true}).Once()

	assert.True(t, svc.PrintTest(ctx).OK)
	driver.AssertExpectations(t)
}
