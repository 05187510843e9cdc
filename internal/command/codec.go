// Package command decodes and validates mission command documents produced by
// the fleet planning service.
package command

import (
	"encoding/json"
	"errors"
	"fmt"

	"microbot/internal/core/model"
)

var (
	ErrInvalidDocument   = errors.New("malformed mission command document")
	ErrMissingRobotID    = errors.New("missing robot_id")
	ErrMissingMissionID  = errors.New("missing mission_id")
	ErrMissingCommandID  = errors.New("missing command_id")
	ErrEmptyPlan         = errors.New("navigation plan has no waypoints")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidVelocity   = errors.New("negative waypoint velocity")
	ErrInvalidAction     = errors.New("unknown waypoint action")
)

// Decode parses a JSON mission command document and validates it. The returned
// command is safe to hand to a mission executor: IDs present, coordinates in
// range, velocities non-negative, actions known.
func Decode(data []byte) (*model.MissionCommand, error) {
	var cmd model.MissionCommand
	if err := json.Unmarshal(data, &cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := Validate(&cmd); err != nil {
		return nil, err
	}
	return &cmd, nil
}

// Validate checks a decoded command against the document rules.
func Validate(cmd *model.MissionCommand) error {
	if cmd.RobotID == "" {
		return ErrMissingRobotID
	}
	if cmd.MissionID == "" {
		return ErrMissingMissionID
	}
	if cmd.CommandID == "" {
		return ErrMissingCommandID
	}
	if len(cmd.Plan.Waypoints) == 0 {
		return ErrEmptyPlan
	}
	if err := cmd.Plan.StartPosition.Validate(); err != nil {
		return fmt.Errorf("%w: start position: %v", ErrInvalidCoordinate, err)
	}
	for _, wp := range cmd.Plan.Waypoints {
		if err := wp.Position().Validate(); err != nil {
			return fmt.Errorf("%w: waypoint %s: %v", ErrInvalidCoordinate, wp.ID, err)
		}
		if wp.VelocityMS < 0 {
			return fmt.Errorf("%w: waypoint %s: %f", ErrInvalidVelocity, wp.ID, wp.VelocityMS)
		}
		if !wp.Action.IsValid() {
			return fmt.Errorf("%w: waypoint %s: %q", ErrInvalidAction, wp.ID, wp.Action)
		}
	}
	return nil
}
