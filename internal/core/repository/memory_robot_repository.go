package repository

import (
	"sync"

	"microbot/internal/core/model"
)

type inMemoryRobotRepository struct {
	robots map[string]*model.Robot
	mutex  sync.RWMutex
}

func NewInMemoryRobotRepository() RobotRepository {
	return &inMemoryRobotRepository{
		robots: make(map[string]*model.Robot),
	}
}

func (r *inMemoryRobotRepository) Create(robot *model.Robot) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.robots[robot.ID] = robot
	return nil
}

func (r *inMemoryRobotRepository) Update(robot *model.Robot) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.robots[robot.ID] = robot
	return nil
}

func (r *inMemoryRobotRepository) Delete(id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.robots, id)
	return nil
}

func (r *inMemoryRobotRepository) FindByID(id string) (*model.Robot, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if robot, exists := r.robots[id]; exists {
		return robot, nil
	}
	return nil, nil
}

func (r *inMemoryRobotRepository) FindAll() ([]*model.Robot, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.Robot
	for _, robot := range r.robots {
		result = append(result, robot)
	}
	return result, nil
}
