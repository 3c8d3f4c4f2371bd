package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/pkg/metrics"
)

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.NewWithRegistry("hotel_test", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil))
	}

	var out dto.Metric
	require.NoError(t, m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/bookings/{bookingId}", "404").Write(&out))
	assert.Equal(t, float64(3), out.GetCounter().GetValue())
}
