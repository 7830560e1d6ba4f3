package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/danie1204clmm-ctrl/diegao/internal/cart"
	"github.com/danie1204clmm-ctrl/diegao/internal/catalog"
	"github.com/danie1204clmm-ctrl/diegao/internal/config"
	"github.com/danie1204clmm-ctrl/diegao/internal/middleware"
	"github.com/danie1204clmm-ctrl/diegao/internal/order"
	"github.com/danie1204clmm-ctrl/diegao/internal/printer"
)

// Server wires the till's surfaces onto HTTP: catalog browsing, the
// cart, the order list, statistics and printer configuration.
type Server struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	cart    *cart.Cart
	orders  order.Service
	printer *printer.Service

	// now stamps placed orders. Session expiry stays on the wall
	// clock so tokens remain valid whatever this is pinned to.
	now func() time.Time
}

func NewServer(
	cfg *config.Config,
	cat *catalog.Catalog,
	c *cart.Cart,
	orders order.Service,
	p *printer.Service,
) *Server {
	return &Server{
		cfg:     cfg,
		catalog: cat,
		cart:    c,
		orders:  orders,
		printer: p,
		now:     time.Now,
	}
}

// Routes builds the handler tree. Mutations require an operator
// session; reads are open.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	guard := middleware.RequireOperator([]byte(s.cfg.JWTSecret))

	mux.HandleFunc("POST /login", s.handleLogin)

	mux.HandleFunc("GET /catalog", s.handleCatalog)

	mux.HandleFunc("GET /cart", s.handleCartView)
	mux.Handle("POST /cart/increase", guard(http.HandlerFunc(s.handleCartIncrease)))
	mux.Handle("POST /cart/decrease", guard(http.HandlerFunc(s.handleCartDecrease)))

	mux.Handle("POST /orders", guard(http.HandlerFunc(s.handleOrderCreate)))
	mux.HandleFunc("GET /orders", s.handleOrderList)
	mux.Handle("DELETE /orders", guard(http.HandlerFunc(s.handleOrderClear)))
	mux.Handle("DELETE /orders/{id}", guard(http.HandlerFunc(s.handleOrderDelete)))
	mux.Handle("POST /orders/{id}/print", guard(http.HandlerFunc(s.handleOrderPrint)))

	mux.HandleFunc("GET /stats", s.handleStats)

	mux.HandleFunc("GET /printer/devices", s.handlePrinterDevices)
	mux.Handle("POST /printer/connect", guard(http.HandlerFunc(s.handlePrinterConnect)))
	mux.Handle("DELETE /printer/device", guard(http.HandlerFunc(s.handlePrinterForget)))
	mux.Handle("POST /printer/test", guard(http.HandlerFunc(s.handlePrinterTest)))

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}
