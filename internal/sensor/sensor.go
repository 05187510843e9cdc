// Package sensor supplies position and resource readings to the mission
// engine. A production deployment feeds real GPS and gauge data through the
// Reading type; the Simulator stands in for hardware during development. The
// engine itself never draws randomness from here.
package sensor

import (
	"math/rand"
	"time"

	"microbot/internal/core/model"
)

// Reading is one set of sensor values reported by a robot.
type Reading struct {
	Position         model.GeoPosition `json:"position"`
	FuelLevelPercent float64           `json:"fuel_level_percent"`
	BatteryVoltage   float64           `json:"battery_voltage_v"`
	Satellites       int               `json:"satellites"`
	Timestamp        time.Time         `json:"timestamp"`
}

// Source produces readings around a known actual position.
type Source interface {
	Read(actual model.GeoPosition, fuelPercent, batteryVoltage float64) Reading
}

// Simulator generates readings with bounded GPS noise (~0.5 m) and battery
// jitter, seeded for reproducible runs.
type Simulator struct {
	rnd *rand.Rand
}

func NewSimulator(seed int64) *Simulator {
	return &Simulator{rnd: rand.New(rand.NewSource(seed))}
}

const gpsNoiseDeg = 0.000005 // ~0.5 m at the equator

func (s *Simulator) Read(actual model.GeoPosition, fuelPercent, batteryVoltage float64) Reading {
	return Reading{
		Position: model.GeoPosition{
			Latitude:   actual.Latitude + s.rnd.Float64()*2*gpsNoiseDeg - gpsNoiseDeg,
			Longitude:  actual.Longitude + s.rnd.Float64()*2*gpsNoiseDeg - gpsNoiseDeg,
			HeadingDeg: actual.HeadingDeg,
		},
		FuelLevelPercent: fuelPercent,
		BatteryVoltage:   batteryVoltage + s.rnd.Float64()*0.2 - 0.1,
		Satellites:       10 + s.rnd.Intn(5),
		Timestamp:        time.Now(),
	}
}
