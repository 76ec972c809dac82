package mainboilerplate

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// InitMetrics serves the registered prometheus collectors at path on addr
// (e.g. ":2112", "/metrics"). Serving happens on a background goroutine;
// InitMetrics does not block.
func InitMetrics(addr, path string) {
	var mux = http.NewServeMux()
	mux.Handle(path, promhttp.Handler())

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.WithFields(log.Fields{"addr": addr, "err": err}).Fatal("metrics server failed")
		}
	}()
}
