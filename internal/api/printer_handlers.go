package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleOrderPrint(w http.ResponseWriter, r *http.Request) {
	o, found := s.orders.Get(r.Context(), r.PathValue("id"))
	if !found {
		writeError(w, "order not found", http.StatusNotFound)
		return
	}

	// hardware failure is a result, not an HTTP error; the client
	// shows the reason and offers a retry
	writeJSON(w, http.StatusOK, s.printer.PrintOrder(r.Context(), o))
}

func (s *Server) handlePrinterDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := s.printer.Devices(r.Context())
	if err != nil {
		writeError(w, "could not list paired devices: "+err.Error(), http.StatusServiceUnavailable)
		return
	}

	saved, _ := s.printer.SavedDevice(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"devices": devices,
		"saved":   saved,
	})
}

type connectRequest struct {
	Address string `json:"address"`
}

func (s *Server) handlePrinterConnect(w http.ResponseWriter, r *http.Request) {
	var req connectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Address == "" {
		writeError(w, "address is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, s.printer.Connect(r.Context(), req.Address))
}

func (s *Server) handlePrinterForget(w http.ResponseWriter, r *http.Request) {
	if err := s.printer.Forget(r.Context()); err != nil {
		writeError(w, "could not forget printer", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePrinterTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.printer.PrintTest(r.Context()))
}
