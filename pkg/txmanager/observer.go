package txmanager

import "github.com/m04kA/SMC-HotelService/pkg/metrics"

// MetricsObserver пишет повторы и конфликты транзакций в prometheus
type MetricsObserver struct {
	m *metrics.Metrics
}

// NewMetricsObserver создает наблюдателя поверх метрик сервиса
func NewMetricsObserver(m *metrics.Metrics) *MetricsObserver {
	return &MetricsObserver{m: m}
}

func (o *MetricsObserver) OnRetry(isolation string) {
	o.m.TxRetriesTotal.WithLabelValues(isolation).Inc()
}

func (o *MetricsObserver) OnConflict(isolation string) {
	o.m.TxConflictsTotal.WithLabelValues(isolation).Inc()
}
