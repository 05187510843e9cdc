package sensor

import (
	"math"
	"testing"

	"microbot/internal/core/model"
)

func TestSimulatorNoiseBounds(t *testing.T) {
	sim := NewSimulator(42)
	actual := model.GeoPosition{Latitude: -22.7145, Longitude: -47.6489, HeadingDeg: 90}

	for i := 0; i < 200; i++ {
		reading := sim.Read(actual, 80, 24.5)

		if d := math.Abs(reading.Position.Latitude - actual.Latitude); d > gpsNoiseDeg {
			t.Fatalf("latitude noise = %g deg on read %d, want <= %g", d, i, gpsNoiseDeg)
		}
		if d := math.Abs(reading.Position.Longitude - actual.Longitude); d > gpsNoiseDeg {
			t.Fatalf("longitude noise = %g deg on read %d, want <= %g", d, i, gpsNoiseDeg)
		}
		if reading.Position.HeadingDeg != actual.HeadingDeg {
			t.Fatalf("heading = %f, want %f carried through unchanged", reading.Position.HeadingDeg, actual.HeadingDeg)
		}
		if err := reading.Position.Validate(); err != nil {
			t.Fatalf("noisy position invalid on read %d: %v", i, err)
		}
		if d := math.Abs(reading.BatteryVoltage - 24.5); d > 0.1 {
			t.Fatalf("battery jitter = %g V on read %d, want <= 0.1", d, i)
		}
		if reading.FuelLevelPercent != 80 {
			t.Fatalf("fuel = %f, want gauge value passed through", reading.FuelLevelPercent)
		}
		if reading.Satellites < 10 || reading.Satellites > 14 {
			t.Fatalf("satellites = %d, want [10, 14]", reading.Satellites)
		}
	}
}

func TestSimulatorSeededReproducibility(t *testing.T) {
	actual := model.GeoPosition{Latitude: -22.7145, Longitude: -47.6489}

	a := NewSimulator(7)
	b := NewSimulator(7)
	for i := 0; i < 20; i++ {
		ra := a.Read(actual, 80, 24.5)
		rb := b.Read(actual, 80, 24.5)
		if ra.Position != rb.Position || ra.BatteryVoltage != rb.BatteryVoltage || ra.Satellites != rb.Satellites {
			t.Fatalf("read %d diverged between identically seeded simulators", i)
		}
	}
}
