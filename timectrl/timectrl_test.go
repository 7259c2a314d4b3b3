package timectrl

import (
	"testing"
	"time"
)

func TestTimeControllerSetTime(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	tc := NewTimeController(start, time.Second, RealTime)

	newNow := start.Add(42 * time.Second)
	tc.SetTime(newNow)

	if got := tc.Now(); !got.Equal(newNow) {
		t.Fatalf("Now() = %v, want %v", got, newNow)
	}
}

func TestTimeControllerStartUpdatesNow(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	tc := NewTimeController(start, 5*time.Millisecond, Accelerated)

	done := tc.Start(15 * time.Millisecond)
	<-done

	expected := start.Add(15 * time.Millisecond)
	if got := tc.Now(); !got.Equal(expected) {
		t.Fatalf("Now() = %v, want %v", got, expected)
	}
}

func TestTimeControllerNotifiesListeners(t *testing.T) {
	start := time.Date(2025, time.June, 21, 6, 0, 0, 0, time.UTC)
	tc := NewTimeController(start, time.Hour, Accelerated)

	var seen []time.Time
	tc.AddListener(func(simTime time.Time) {
		seen = append(seen, simTime)
	})

	<-tc.Start(4 * time.Hour)

	if len(seen) != 4 {
		t.Fatalf("listener called %d times, want 4", len(seen))
	}
	for i, got := range seen {
		want := start.Add(time.Duration(i+1) * time.Hour)
		if !got.Equal(want) {
			t.Errorf("tick %d at %v, want %v", i, got, want)
		}
	}
}

func TestTimeControllerAcceleratedIgnoresWallClock(t *testing.T) {
	start := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)
	tc := NewTimeController(start, time.Minute, Accelerated)

	before := time.Now()
	<-tc.Start(24 * time.Hour)
	if elapsed := time.Since(before); elapsed > 5*time.Second {
		t.Fatalf("accelerated day took %v of wall time", elapsed)
	}

	if got := tc.Now(); !got.Equal(start.Add(24 * time.Hour)) {
		t.Fatalf("Now() = %v, want %v", got, start.Add(24*time.Hour))
	}
}
