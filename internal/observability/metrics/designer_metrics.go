package metrics

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DesignerMetrics tracks the designer's two write-heavy operations: preview
// renders and template saves.
type DesignerMetrics struct {
	previewDuration *prometheus.HistogramVec
	previewTotal    *prometheus.CounterVec
	saveTotal       *prometheus.CounterVec
	bindWarnings    prometheus.Counter
}

var (
	designerMetricsOnce sync.Once
	designerMetrics     *DesignerMetrics
)

// Designer returns the process-wide designer metrics.
func Designer() *DesignerMetrics {
	return DesignerWithConfig(Config{})
}

// DesignerWithConfig returns the process-wide designer metrics, registering
// them on first use.
func DesignerWithConfig(cfg Config) *DesignerMetrics {
	designerMetricsOnce.Do(func() {
		designerMetrics = newDesignerMetrics(prometheus.DefaultRegisterer, cfg)
	})
	return designerMetrics
}

// ResetDesignerMetricsForTest clears the singleton between tests.
func ResetDesignerMetricsForTest() {
	designerMetricsOnce = sync.Once{}
	designerMetrics = nil
}

func newDesignerMetrics(registerer prometheus.Registerer, cfg Config) *DesignerMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "billcanvas"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}

	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	previewDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "billcanvas_preview_render_duration_seconds",
			Help:        "Time spent rendering a layout preview.",
			Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			ConstLabels: constLabels,
		},
		[]string{"status"},
	)
	previewTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "billcanvas_preview_render_total",
			Help:        "Preview renders by outcome.",
			ConstLabels: constLabels,
		},
		[]string{"status"},
	)
	saveTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "billcanvas_template_save_total",
			Help:        "Template create/update operations by outcome.",
			ConstLabels: constLabels,
		},
		[]string{"status"},
	)
	bindWarnings := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "billcanvas_bind_validation_warnings_total",
			Help:        "Advisory binding validation failures surfaced to users.",
			ConstLabels: constLabels,
		},
	)

	for _, collector := range []prometheus.Collector{previewDuration, previewTotal, saveTotal, bindWarnings} {
		if err := registerer.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				panic(err)
			}
		}
	}

	return &DesignerMetrics{
		previewDuration: previewDuration,
		previewTotal:    previewTotal,
		saveTotal:       saveTotal,
		bindWarnings:    bindWarnings,
	}
}

// ObservePreview records one preview render.
func (m *DesignerMetrics) ObservePreview(status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.previewTotal.WithLabelValues(status).Inc()
	m.previewDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// ObserveSave records one template save.
func (m *DesignerMetrics) ObserveSave(status string) {
	if m == nil {
		return
	}
	m.saveTotal.WithLabelValues(status).Inc()
}

// ObserveBindWarning records one advisory validation failure.
func (m *DesignerMetrics) ObserveBindWarning() {
	if m == nil {
		return
	}
	m.bindWarnings.Inc()
}
