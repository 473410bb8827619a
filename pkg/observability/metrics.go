package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/traits/internal/logging"
	"github.com/aretw0/traits/pkg/domain"
	"github.com/aretw0/traits/pkg/trait"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors updated by instrumented traits.
type Metrics struct {
	Samples  *prometheus.CounterVec
	Occupied *prometheus.CounterVec
	Errors   *prometheus.CounterVec
	Values   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered (useful in tests).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Samples: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traits_samples_total",
				Help: "Total number of Sample calls",
			},
			[]string{"trait"},
		),
		Occupied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traits_occupied_slots_total",
				Help: "Total number of occupied slots that received a draw",
			},
			[]string{"trait"},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traits_sample_errors_total",
				Help: "Total number of failed Sample calls",
			},
			[]string{"trait"},
		),
		Values: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "traits_sampled_value",
				Help:    "Distribution of values assigned to occupied slots",
				Buckets: prometheus.ExponentialBuckets(0.125, 2, 10),
			},
			[]string{"trait"},
		),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Samples, m.Occupied, m.Errors, m.Values} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Instrument wraps t so every Sample call updates m and is logged.
// Either m or logger may be nil.
func Instrument(t domain.Trait, m *Metrics, logger *slog.Logger) domain.Trait {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &instrumented{
		Trait:   t,
		metrics: m,
		logger:  logger.With("trait", t.Name()),
	}
}

type instrumented struct {
	domain.Trait
	metrics *Metrics
	logger  *slog.Logger
}

// Unwrap returns the decorated trait.
func (i *instrumented) Unwrap() domain.Trait { return i.Trait }

func (i *instrumented) Sample(occupancy []float64) ([]float64, error) {
	name := i.Name()
	out, err := i.Trait.Sample(occupancy)
	if i.metrics != nil {
		i.metrics.Samples.WithLabelValues(name).Inc()
	}
	if err != nil {
		if i.metrics != nil {
			i.metrics.Errors.WithLabelValues(name).Inc()
		}
		i.logger.Warn("sample failed", "error", err)
		return nil, err
	}

	occupied := trait.Occupied(occupancy)
	if i.metrics != nil {
		i.metrics.Occupied.WithLabelValues(name).Add(float64(occupied))
		hist := i.metrics.Values.WithLabelValues(name)
		for j, v := range occupancy {
			if v != 0 {
				hist.Observe(out[j])
			}
		}
	}

	i.logger.Debug("sampled", "slots", len(occupancy), "occupied", occupied)
	i.logger.Log(context.Background(), logging.LevelTrace, "sampled values", "values", out)
	return out, nil
}
