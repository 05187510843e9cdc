package geo

import (
	"math"
	"testing"

	"microbot/internal/core/model"
)

func TestDistanceKnownFixture(t *testing.T) {
	// One degree of longitude on the equator.
	a := model.GeoPosition{Latitude: 0, Longitude: 0}
	b := model.GeoPosition{Latitude: 0, Longitude: 1}

	got := Distance(a, b)
	want := 111195.0
	if math.Abs(got-want)/want > 0.01 {
		t.Errorf("Distance(0,0 -> 0,1) = %.1f m, want %.1f m +-1%%", got, want)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := []struct {
		name string
		a, b model.GeoPosition
	}{
		{"equator", model.GeoPosition{Latitude: 0, Longitude: 0}, model.GeoPosition{Latitude: 0, Longitude: 1}},
		{"field segment", model.GeoPosition{Latitude: -22.7145, Longitude: -47.6489}, model.GeoPosition{Latitude: -22.7150, Longitude: -47.6480}},
		{"across hemispheres", model.GeoPosition{Latitude: 51.5, Longitude: -0.12}, model.GeoPosition{Latitude: -33.86, Longitude: 151.2}},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			ab := Distance(tt.a, tt.b)
			ba := Distance(tt.b, tt.a)
			if math.Abs(ab-ba) > 1e-6 {
				t.Errorf("Distance not symmetric: %.9f vs %.9f", ab, ba)
			}
		})
	}
}

func TestDistanceIdenticalPoints(t *testing.T) {
	p := model.GeoPosition{Latitude: -22.7145, Longitude: -47.6489}
	if d := Distance(p, p); d != 0 {
		t.Errorf("Distance(p, p) = %f, want 0", d)
	}
}

func TestBearing(t *testing.T) {
	tests := []struct {
		name string
		a, b model.GeoPosition
		want float64
	}{
		{"due east", model.GeoPosition{Latitude: 0, Longitude: 0}, model.GeoPosition{Latitude: 0, Longitude: 1}, 90},
		{"due north", model.GeoPosition{Latitude: 0, Longitude: 0}, model.GeoPosition{Latitude: 1, Longitude: 0}, 0},
		{"due west", model.GeoPosition{Latitude: 0, Longitude: 0}, model.GeoPosition{Latitude: 0, Longitude: -1}, 270},
		{"due south", model.GeoPosition{Latitude: 1, Longitude: 0}, model.GeoPosition{Latitude: 0, Longitude: 0}, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bearing(tt.a, tt.b)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Bearing = %.4f, want %.4f", got, tt.want)
			}
		})
	}
}

func TestBearingRange(t *testing.T) {
	a := model.GeoPosition{Latitude: 10, Longitude: 10}
	b := model.GeoPosition{Latitude: 9, Longitude: 9}
	got := Bearing(a, b)
	if got < 0 || got >= 360 {
		t.Errorf("Bearing = %f, want value in [0, 360)", got)
	}
}

func TestBearingIdenticalPointsDeterministic(t *testing.T) {
	p := model.GeoPosition{Latitude: 45, Longitude: 45}
	first := Bearing(p, p)
	if first != 0 {
		t.Errorf("Bearing(p, p) = %f, want 0", first)
	}
	for i := 0; i < 10; i++ {
		if got := Bearing(p, p); got != first {
			t.Fatalf("Bearing(p, p) not deterministic: %f then %f", first, got)
		}
	}
}
