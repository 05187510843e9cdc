package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// RobotStatus is the mission-execution state of a robot.
type RobotStatus string

const (
	StatusIdle             RobotStatus = "idle"
	StatusNavigating       RobotStatus = "navigating"
	StatusMissionCompleted RobotStatus = "mission_completed"
	StatusAborted          RobotStatus = "aborted"
)

// RobotState is the mutable execution state of one robot. It is exclusively
// owned by that robot's mission executor; nothing else writes to it.
type RobotState struct {
	RobotID             string       `json:"robotId" bson:"robotId"`
	Status              RobotStatus  `json:"status" bson:"status"`
	FuelLevelPercent    float64      `json:"fuelLevelPercent" bson:"fuelLevelPercent"`
	BatteryVoltage      float64      `json:"batteryVoltageV" bson:"batteryVoltageV"`
	HopperFillPercent   float64      `json:"hopperFillPercent" bson:"hopperFillPercent"`
	HarvestRateKgMin    float64      `json:"harvestRateKgMin" bson:"harvestRateKgMin"`
	CurrentPosition     *GeoPosition `json:"currentPosition,omitempty" bson:"currentPosition,omitempty"`
	TotalDistanceMeters float64      `json:"totalDistanceMeters" bson:"totalDistanceMeters"`
}

// NewRobotState returns the state of a freshly commissioned robot: idle, full
// tank, empty hopper, no GPS fix yet.
func NewRobotState(robotID string) *RobotState {
	return &RobotState{
		RobotID:          robotID,
		Status:           StatusIdle,
		FuelLevelPercent: 100,
		BatteryVoltage:   24.5,
	}
}

// Robot is the fleet registry entry for one machine. API credentials
// authenticate the machine itself when it reports sensor readings.
type Robot struct {
	ID         string      `json:"id" bson:"id"`
	Name       string      `json:"name" bson:"name"`
	Status     RobotStatus `json:"status" bson:"status"`
	ZoneID     string      `json:"zoneId,omitempty" bson:"zoneId,omitempty"`
	LastUpdate time.Time   `json:"lastUpdate" bson:"lastUpdate"`
	CreatedAt  time.Time   `json:"createdAt" bson:"createdAt"`
	ApiKey     string      `json:"apiKey,omitempty" bson:"apiKey"`
	ApiSecret  string      `json:"-" bson:"apiSecret"`
}

func NewRobot(name string) *Robot {
	apiKey, _ := generateRandomKey(32)
	apiSecret, _ := generateRandomKey(32)

	return &Robot{
		ID:         uuid.NewString(),
		Name:       name,
		Status:     StatusIdle,
		LastUpdate: time.Now(),
		CreatedAt:  time.Now(),
		ApiKey:     apiKey,
		ApiSecret:  apiSecret,
	}
}

func generateRandomKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

func (r *Robot) ValidateCredentials(apiKey, apiSecret string) bool {
	return r.ApiKey == apiKey && r.ApiSecret == apiSecret
}
