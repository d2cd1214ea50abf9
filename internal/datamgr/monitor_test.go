package datamgr

import "testing"

func TestMonitor_RunningAverage(t *testing.T) {
	m := NewMonitor(3, 0, 100, BasisRunningAverage)

	obs := m.Observe(1, 10)
	if obs.Average != 10 {
		t.Fatalf("average = %v, want 10", obs.Average)
	}

	obs = m.Observe(1, 20)
	if obs.Average != 15 {
		t.Fatalf("average = %v, want 15", obs.Average)
	}

	obs = m.Observe(1, 30)
	if obs.Average != 20 {
		t.Fatalf("average = %v, want 20", obs.Average)
	}

	// Window size 3: the 4th reading evicts the 1st (10).
	obs = m.Observe(1, 60)
	want := (20.0 + 30.0 + 60.0) / 3
	if obs.Average != want {
		t.Fatalf("average = %v, want %v", obs.Average, want)
	}
}

func TestMonitor_RoomsAreIndependent(t *testing.T) {
	m := NewMonitor(2, 0, 100, BasisRunningAverage)
	m.Observe(1, 10)
	obs := m.Observe(2, 90)
	if obs.Average != 90 {
		t.Fatalf("room 2 average = %v, want 90 (unaffected by room 1)", obs.Average)
	}
}

func TestMonitor_AnomalyBasisReading(t *testing.T) {
	m := NewMonitor(5, 0, 50, BasisReading)
	obs := m.Observe(1, 10)
	if obs.Anomalous {
		t.Fatal("10 within [0,50] should not be anomalous")
	}
	obs = m.Observe(1, 999)
	if !obs.Anomalous {
		t.Fatal("999 outside [0,50] should be anomalous under BasisReading")
	}
}

func TestMonitor_AnomalyBasisRunningAverage(t *testing.T) {
	m := NewMonitor(2, 0, 50, BasisRunningAverage)
	m.Observe(1, 10)
	obs := m.Observe(1, 999) // average = 504.5, reading alone would also trip
	if !obs.Anomalous {
		t.Fatal("running average should be anomalous")
	}

	m2 := NewMonitor(2, 0, 1000, BasisRunningAverage)
	m2.Observe(1, 10)
	obs2 := m2.Observe(1, 999) // average = 504.5, within [0,1000]
	if obs2.Anomalous {
		t.Fatal("running average within bounds should not be anomalous even though the raw reading is near the edge")
	}
}
