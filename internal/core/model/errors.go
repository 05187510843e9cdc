package model

import "errors"

var (
	// ErrRobotMismatch means a command's robot_id does not match the executing robot.
	ErrRobotMismatch = errors.New("command addressed to a different robot")
	// ErrNoMissionLoaded means execution was requested before a successful command load.
	ErrNoMissionLoaded = errors.New("no mission command loaded")
	// ErrMissingPosition means navigation was requested with no current position.
	ErrMissingPosition = errors.New("current position unknown")
	// ErrMissionInProgress means a new command was loaded while one is executing.
	ErrMissionInProgress = errors.New("mission already in progress")
)
