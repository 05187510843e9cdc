package service

import (
	"context"
	"errors"
	"time"

	"microbot/internal/cache"
	"microbot/internal/core/model"
	"microbot/internal/core/repository"
	"microbot/internal/utils"
)

type RobotService interface {
	RegisterRobot(name string) (*model.Robot, error)
	DeregisterRobot(id string) error
	GetRobot(id string) (*model.Robot, error)
	GetAllRobots() ([]*model.Robot, error)
	UpdateStatus(id string, status model.RobotStatus) error
	ValidateRobotCredentials(id, apiKey, apiSecret string) (*model.Robot, error)
}

type robotService struct {
	robotRepo repository.RobotRepository
}

func NewRobotService(robotRepo repository.RobotRepository) RobotService {
	return &robotService{
		robotRepo: robotRepo,
	}
}

func (s *robotService) RegisterRobot(name string) (*model.Robot, error) {
	if name == "" {
		return nil, errors.New("invalid robot name")
	}

	robot := model.NewRobot(name)
	if err := s.robotRepo.Create(robot); err != nil {
		return nil, err
	}
	return robot, nil
}

// DeregisterRobot removes a robot from the registry and drops its cached
// telemetry. Persisted telemetry records are kept; they belong to the
// mission history, not the machine.
func (s *robotService) DeregisterRobot(id string) error {
	if id == "" {
		return errors.New("invalid robot ID")
	}

	robot, err := s.robotRepo.FindByID(id)
	if err != nil {
		return err
	}
	if robot == nil {
		return errors.New("robot not found")
	}

	if err := s.robotRepo.Delete(id); err != nil {
		return err
	}
	if err := cache.DeleteLatestTelemetry(context.Background(), id); err != nil {
		utils.Logger.Warnf("telemetry cache cleanup failed for %s: %v", id, err)
	}
	return nil
}

func (s *robotService) GetRobot(id string) (*model.Robot, error) {
	if id == "" {
		return nil, errors.New("invalid robot ID")
	}
	return s.robotRepo.FindByID(id)
}

func (s *robotService) GetAllRobots() ([]*model.Robot, error) {
	return s.robotRepo.FindAll()
}

func (s *robotService) UpdateStatus(id string, status model.RobotStatus) error {
	robot, err := s.robotRepo.FindByID(id)
	if err != nil {
		return err
	}
	if robot == nil {
		return errors.New("robot not found")
	}

	robot.Status = status
	robot.LastUpdate = time.Now()
	return s.robotRepo.Update(robot)
}

func (s *robotService) ValidateRobotCredentials(id, apiKey, apiSecret string) (*model.Robot, error) {
	robot, err := s.robotRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if robot == nil {
		return nil, errors.New("robot not found")
	}
	if !robot.ValidateCredentials(apiKey, apiSecret) {
		return nil, errors.New("invalid robot credentials")
	}
	return robot, nil
}
