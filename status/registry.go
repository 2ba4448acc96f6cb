package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the match session and the scheduler
const (
	KeyTicks      = "engine.ticks"
	KeyOverruns   = "engine.overruns"
	KeyMatchTicks = "match.ticks"
	KeyHits       = "match.hits"
	KeyRally      = "match.rally"
	KeyLongest    = "match.rally_max"
	KeyPoints     = "match.points"
	KeyBallSpeed  = "ball.speed"
	KeyFrames     = "render.frames"
)

// Registry groups integer and float metrics
// Writers cache the pointer returned by Get once and update the atomic directly
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Int returns the current value of an integer metric, 0 if never written
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// Float returns the current value of a float metric, 0 if never written
func (r *Registry) Float(key string) float64 {
	if !r.Floats.Has(key) {
		return 0
	}
	return r.Floats.Get(key).Get()
}

// Summary formats every metric as "key=value", ints first, each group in key order
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.2f", key, v.Get()))
	})
	return strings.Join(parts, " ")
}
