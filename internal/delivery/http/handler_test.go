package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalogwatch/backend/config"
	"github.com/catalogwatch/backend/internal/domain"
)

// stubWatcher returns canned pipeline results.
type stubWatcher struct {
	summary  *domain.RunSummary
	products []domain.ProductRecord
	err      error
}

func (s *stubWatcher) Run(ctx context.Context) (*domain.RunSummary, error) {
	return s.summary, s.err
}

func (s *stubWatcher) Snapshot(ctx context.Context, availableOnly bool) ([]domain.ProductRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	if !availableOnly {
		return s.products, nil
	}
	var out []domain.ProductRecord
	for _, p := range s.products {
		if p.InStock() {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestRouter(watcher WatchRunner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Server.Environment = "test"
	cfg.Server.AllowedOrigins = []string{"*"}
	return SetupRouter(cfg, NewHandler(watcher))
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(&stubWatcher{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestRunWatch_Success(t *testing.T) {
	sale := int64(5000000)
	router := newTestRouter(&stubWatcher{summary: &domain.RunSummary{
		OK:       true,
		Category: 53,
		Scraped:  2,
		Notif:    1,
		Notifications: []domain.ChangeEvent{{
			Kind:    domain.EventNew,
			Product: domain.ProductRecord{Name: "Vivo Y100", SalePrice: &sale, StockLabel: domain.StockAvailable},
		}},
	}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/watch/run", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var summary domain.RunSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.True(t, summary.OK)
	assert.Equal(t, 2, summary.Scraped)
	require.Len(t, summary.Notifications, 1)
	assert.Equal(t, domain.EventNew, summary.Notifications[0].Kind)
}

func TestRunWatch_StoreUnavailable(t *testing.T) {
	router := newTestRouter(&stubWatcher{err: domain.ErrStoreUnavailable})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/watch/run", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "baseline store unavailable")
}

func TestRunWatch_NoProducts(t *testing.T) {
	router := newTestRouter(&stubWatcher{err: domain.ErrNoProducts})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/watch/run", nil))

	// Distinct from the store fault status.
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetSnapshot_Modes(t *testing.T) {
	products := []domain.ProductRecord{
		{Name: "Vivo Y100", StockLabel: domain.StockAvailable},
		{Name: "Vivo V30", StockLabel: domain.StockOut},
	}
	router := newTestRouter(&stubWatcher{products: products})

	tests := []struct {
		name      string
		url       string
		wantCode  int
		wantCount float64
	}{
		{"default is complete snapshot", "/api/v1/watch/snapshot", http.StatusOK, 2},
		{"explicit all", "/api/v1/watch/snapshot?mode=all", http.StatusOK, 2},
		{"available only", "/api/v1/watch/snapshot?mode=available", http.StatusOK, 1},
		{"unknown mode rejected", "/api/v1/watch/snapshot?mode=cheapest", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				return
			}
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCount, body["count"])
		})
	}
}
