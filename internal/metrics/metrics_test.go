package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	if m.ConstraintsIndexedTotal == nil {
		t.Error("ConstraintsIndexedTotal not initialized")
	}
	if m.EventsClassifiedTotal == nil {
		t.Error("EventsClassifiedTotal not initialized")
	}
	if m.ConflictsTotal == nil {
		t.Error("ConflictsTotal not initialized")
	}
	if m.BuildDuration == nil {
		t.Error("BuildDuration not initialized")
	}
	if m.ClassifyDuration == nil {
		t.Error("ClassifyDuration not initialized")
	}
}

func TestObserveBuildAndClassify(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveBuild(0.05, 10)
	m.ObserveClassify(0.02, 4, 1)

	if got := testutil.ToFloat64(m.ConstraintsIndexedTotal); got != 10 {
		t.Errorf("ConstraintsIndexedTotal = %v, want 10", got)
	}
	if got := testutil.ToFloat64(m.EventsClassifiedTotal); got != 4 {
		t.Errorf("EventsClassifiedTotal = %v, want 4", got)
	}
	if got := testutil.ToFloat64(m.ConflictsTotal); got != 1 {
		t.Errorf("ConflictsTotal = %v, want 1", got)
	}

	gathered, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	found := false
	for _, mf := range gathered {
		if mf.GetName() == "accord_build_duration_seconds" {
			found = true
		}
	}
	if !found {
		t.Error("accord_build_duration_seconds histogram not found in gathered metrics")
	}
}
