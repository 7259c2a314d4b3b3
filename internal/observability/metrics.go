package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/signalsfoundry/concentrator-simulator/model"
)

// PowerCollector bundles Prometheus metrics for the simulation surface
// and provides helpers to record engine results and serve /metrics.
type PowerCollector struct {
	gatherer prometheus.Gatherer

	Evaluations    *prometheus.CounterVec
	SweepDurations *prometheus.HistogramVec

	ScenarioInstallations prometheus.Gauge
	ScenarioLenses        prometheus.Gauge

	OutputPowerWatts *prometheus.GaugeVec
	SystemEfficiency *prometheus.GaugeVec
	SunZenithDegrees *prometheus.GaugeVec
}

// NewPowerCollector registers simulation Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry when nil.
func NewPowerCollector(reg prometheus.Registerer) (*PowerCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "power_evaluations_total",
		Help: "Total number of power-engine evaluations, labeled by installation and validity.",
	}, []string{"installation", "valid"})
	evaluations, err := registerCounterVec(reg, evaluations, "power_evaluations_total")
	if err != nil {
		return nil, err
	}

	sweeps := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "angle_sweep_duration_seconds",
		Help:    "Angle-sweep evaluation latency in seconds.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"installation"})
	sweeps, err = registerHistogramVec(reg, sweeps, "angle_sweep_duration_seconds")
	if err != nil {
		return nil, err
	}

	installations, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scenario_installations",
		Help: "Current number of installations in the knowledge base.",
	}), "scenario_installations")
	if err != nil {
		return nil, err
	}
	lenses, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scenario_lenses",
		Help: "Current number of lenses across all installations.",
	}), "scenario_lenses")
	if err != nil {
		return nil, err
	}

	outputPower := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "output_power_watts",
		Help: "Latest electrical output power per installation.",
	}, []string{"installation"})
	outputPower, err = registerGaugeVec(reg, outputPower, "output_power_watts")
	if err != nil {
		return nil, err
	}

	efficiency := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "system_efficiency",
		Help: "Latest end-to-end system efficiency per installation.",
	}, []string{"installation"})
	efficiency, err = registerGaugeVec(reg, efficiency, "system_efficiency")
	if err != nil {
		return nil, err
	}

	zenith := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sun_zenith_degrees",
		Help: "Latest sun zenith angle per installation site.",
	}, []string{"installation"})
	zenith, err = registerGaugeVec(reg, zenith, "sun_zenith_degrees")
	if err != nil {
		return nil, err
	}

	return &PowerCollector{
		gatherer:              gatherer,
		Evaluations:           evaluations,
		SweepDurations:        sweeps,
		ScenarioInstallations: installations,
		ScenarioLenses:        lenses,
		OutputPowerWatts:      outputPower,
		SystemEfficiency:      efficiency,
		SunZenithDegrees:      zenith,
	}, nil
}

// RecordEvaluation folds one power-engine result into the collector.
func (c *PowerCollector) RecordEvaluation(installationID string, result model.PowerCalculationResult) {
	if c == nil {
		return
	}
	valid := "false"
	if result.IsValid {
		valid = "true"
	}
	if c.Evaluations != nil {
		c.Evaluations.WithLabelValues(installationID, valid).Inc()
	}
	if !result.IsValid {
		return
	}
	if c.OutputPowerWatts != nil {
		c.OutputPowerWatts.WithLabelValues(installationID).Set(result.OutputPower)
	}
	if c.SystemEfficiency != nil {
		c.SystemEfficiency.WithLabelValues(installationID).Set(result.SystemEfficiency)
	}
}

// RecordSunZenith publishes the zenith angle driving an installation.
func (c *PowerCollector) RecordSunZenith(installationID string, zenithDeg float64) {
	if c == nil || c.SunZenithDegrees == nil {
		return
	}
	c.SunZenithDegrees.WithLabelValues(installationID).Set(zenithDeg)
}

// ObserveSweep records the duration of one angle sweep.
func (c *PowerCollector) ObserveSweep(installationID string, seconds float64) {
	if c == nil || c.SweepDurations == nil {
		return
	}
	c.SweepDurations.WithLabelValues(installationID).Observe(seconds)
}

// SetScenarioCounts drives the scenario gauges from the loader/KB.
func (c *PowerCollector) SetScenarioCounts(installations, lenses int) {
	if c == nil {
		return
	}
	if c.ScenarioInstallations != nil {
		c.ScenarioInstallations.Set(float64(installations))
	}
	if c.ScenarioLenses != nil {
		c.ScenarioLenses.Set(float64(lenses))
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *PowerCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
