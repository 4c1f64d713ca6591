package http

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Spok95/materials-catalog/internal/domain/catalog"
	"github.com/Spok95/materials-catalog/internal/report"
)

// MaterialLister — источник строк для выгрузки.
type MaterialLister interface {
	ListMaterialsForDisplay(ctx context.Context) ([]catalog.DisplayRow, error)
}

type Server struct {
	srv *http.Server
}

func New(addr string, exposeMetrics bool, materials MaterialLister, log *slog.Logger) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if exposeMetrics {
		mux.Handle("/metrics", promhttp.Handler())
	}

	mux.HandleFunc("GET /reports/materials.xlsx", func(w http.ResponseWriter, r *http.Request) {
		rows, err := materials.ListMaterialsForDisplay(r.Context())
		if err != nil {
			log.Error("materials report failed", "err", err)
			http.Error(w, "failed to load materials", http.StatusInternalServerError)
			return
		}
		buf := &bytes.Buffer{}
		if err := report.WriteMaterials(buf, rows); err != nil {
			log.Error("materials report failed", "err", err)
			http.Error(w, "failed to build report", http.StatusInternalServerError)
			return
		}
		name := fmt.Sprintf("materials_%s.xlsx", time.Now().Format("20060102_150405"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		_, _ = w.Write(buf.Bytes())
	})

	return &Server{srv: &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}}
}

func (s *Server) Handler() http.Handler { return s.srv.Handler }

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
