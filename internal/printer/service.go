package printer

import (
	"context"
	"strings"
	"sync"

	"github.com/danie1204clmm-ctrl/diegao/internal/kv"
	"github.com/danie1204clmm-ctrl/diegao/internal/logger"
	"github.com/danie1204clmm-ctrl/diegao/internal/order"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// savedDeviceKey holds the address of the chosen printer for
// auto-reconnect across restarts.
const savedDeviceKey = "impressora_mac"

// autoConnectHints match the names thermal printers usually pair under.
var autoConnectHints = []string{"printer", "thermal", "rpp", "bluetooth"}

// Service drives receipt printing: formatting, auto-reconnect and the
// one-attempt-per-order guard. It never retries on its own; a retry is
// a fresh user-initiated call.
type Service struct {
	driver Driver
	store  kv.Store

	mu       sync.Mutex
	inflight map[string]string // order id -> print job id
}

func NewService(driver Driver, store kv.Store) *Service {
	return &Service{
		driver:   driver,
		store:    store,
		inflight: map[string]string{},
	}
}

// Devices lists the paired devices known to the driver.
func (s *Service) Devices(ctx context.Context) ([]Device, error) {
	return s.driver.ListPaired(ctx)
}

// Connect connects to the given address and, on success, remembers it
// for later auto-reconnect. A failing save does not fail the connect.
func (s *Service) Connect(ctx context.Context, address string) Result {
	res := s.driver.Connect(ctx, address)
	if !res.OK {
		return res
	}

	if err := s.store.Set(ctx, savedDeviceKey, address); err != nil {
		logger.FromCtx(ctx).Warn("could not save printer address",
			zap.String("address", address),
			zap.Error(err),
		)
	}
	return res
}

// SavedDevice returns the remembered printer address, if any.
func (s *Service) SavedDevice(ctx context.Context) (string, bool) {
	address, found, err := s.store.Get(ctx, savedDeviceKey)
	if err != nil {
		logger.FromCtx(ctx).Warn("could not read saved printer address", zap.Error(err))
		return "", false
	}
	return address, found
}

// Forget drops the remembered printer address.
func (s *Service) Forget(ctx context.Context) error {
	return s.store.Remove(ctx, savedDeviceKey)
}

// PrintOrder formats and transmits the receipt for one order. Only one
// attempt per order may be in flight; a second call while printing is
// rejected with a reason instead of queueing.
func (s *Service) PrintOrder(ctx context.Context, o *order.Order) Result {
	jobID := uuid.NewString()

	s.mu.Lock()
	if _, busy := s.inflight[o.ID]; busy {
		s.mu.Unlock()
		return fail("a print attempt for this order is already running")
	}
	s.inflight[o.ID] = jobID
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, o.ID)
		s.mu.Unlock()
	}()

	log := logger.FromCtx(ctx).With(
		zap.String("job_id", jobID),
		zap.String("order_id", o.ID),
	)

	if res := s.ensureConnected(ctx); !res.OK {
		log.Warn("printer unavailable", zap.String("reason", res.Reason))
		return res
	}

	res := s.driver.SendFormatted(ctx, FormatReceipt(o))
	if !res.OK {
		log.Warn("print failed", zap.String("reason", res.Reason))
		return res
	}

	log.Info("receipt printed")
	return res
}

// PrintTest sends the test page.
func (s *Service) PrintTest(ctx context.Context) Result {
	if res := s.ensureConnected(ctx); !res.OK {
		return res
	}
	return s.driver.SendFormatted(ctx, FormatTestPage())
}

// ensureConnected reconnects when needed: saved address first, then
// the first paired device whose name looks like a printer.
func (s *Service) ensureConnected(ctx context.Context) Result {
	if s.driver.IsConnected(ctx) {
		return ok()
	}

	if address, found := s.SavedDevice(ctx); found {
		if res := s.driver.Connect(ctx, address); res.OK {
			return res
		}
	}

	devices, err := s.driver.ListPaired(ctx)
	if err != nil {
		return fail("could not list paired devices: " + err.Error())
	}

	for _, dev := range devices {
		name := strings.ToLower(dev.Name)
		for _, hint := range autoConnectHints {
			if strings.Contains(name, hint) {
				return s.driver.Connect(ctx, dev.Address)
			}
		}
	}

	return fail("no paired printer found")
}
