// Package observability wires Prometheus instrumentation for the
// geometry library: how often eccentricities are validated or rejected,
// and which constructor produced each ellipse.
package observability

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Constructor labels recorded by RecordEllipseConstruction.
const (
	ConstructorDirect            = "direct"
	ConstructorPeriapsisApoapsis = "periapsis_apoapsis"
	ConstructorFocalRadii        = "focal_radii"
)

// GeometryCollector bundles Prometheus metrics for the quantity and
// ellipse constructors and provides a ready-to-use /metrics handler for
// embedding applications.
type GeometryCollector struct {
	gatherer prometheus.Gatherer

	EccentricityValidations *prometheus.CounterVec
	EllipseConstructions    *prometheus.CounterVec
}

// NewGeometryCollector registers geometry Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry when
// nil. Re-registration returns the existing collectors rather than
// failing.
func NewGeometryCollector(reg prometheus.Registerer) (*GeometryCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	validations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "eccentricity_validations_total",
		Help: "Total number of eccentricity constructions, labeled by validation outcome.",
	}, []string{"outcome"})
	validations, err := registerCounterVec(reg, validations, "eccentricity_validations_total")
	if err != nil {
		return nil, err
	}

	constructions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ellipse_constructions_total",
		Help: "Total number of ellipse constructions, labeled by constructor.",
	}, []string{"constructor"})
	constructions, err = registerCounterVec(reg, constructions, "ellipse_constructions_total")
	if err != nil {
		return nil, err
	}

	return &GeometryCollector{
		gatherer:                gatherer,
		EccentricityValidations: validations,
		EllipseConstructions:    constructions,
	}, nil
}

var (
	defaultOnce      sync.Once
	defaultCollector *GeometryCollector
)

// Default returns the collector registered against the global Prometheus
// registry. Registration happens lazily on first use; if it fails the
// returned collector is nil, and all record methods tolerate that.
func Default() *GeometryCollector {
	defaultOnce.Do(func() {
		defaultCollector, _ = NewGeometryCollector(nil)
	})
	return defaultCollector
}

// RecordEccentricityValidation counts one eccentricity construction
// attempt by outcome.
func (c *GeometryCollector) RecordEccentricityValidation(accepted bool) {
	if c == nil || c.EccentricityValidations == nil {
		return
	}
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	c.EccentricityValidations.WithLabelValues(outcome).Inc()
}

// RecordEllipseConstruction counts one ellipse construction by the
// constructor that produced it.
func (c *GeometryCollector) RecordEllipseConstruction(constructor string) {
	if c == nil || c.EllipseConstructions == nil {
		return
	}
	c.EllipseConstructions.WithLabelValues(constructor).Inc()
}

// Handler exposes a ready-to-use /metrics handler.
func (c *GeometryCollector) Handler() http.Handler {
	var gatherer prometheus.Gatherer
	if c != nil {
		gatherer = c.gatherer
	}
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
