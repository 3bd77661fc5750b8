package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/oboratav/yk-proxy/internal/api/handlers"
	"github.com/oboratav/yk-proxy/internal/ports"
	"github.com/oboratav/yk-proxy/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters). The shipment route runs behind the full
// middleware chain: auth, then shape toggle, then environment selection,
// mirroring the order the values depend on each other.
func NewRouter(
	test ports.CarrierClient,
	prod ports.CarrierClient,
	labels *services.LabelGenerator,
	log *zap.Logger,
) http.Handler {
	mux := http.NewServeMux()

	shipments := &handlers.ShipmentHandler{
		Test:   test,
		Prod:   prod,
		Labels: labels,
	}

	mux.HandleFunc("/health", handlers.Health)

	var yk http.Handler = http.HandlerFunc(shipments.Handle)
	yk = environmentMiddleware(yk)
	yk = formatMiddleware(yk)
	yk = basicAuthMiddleware(yk)
	mux.Handle("/yk/shipments", yk)

	return loggingMiddleware(log)(mux)
}
