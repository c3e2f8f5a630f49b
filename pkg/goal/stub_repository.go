package goal

import (
	"context"

	"github.com/shopspring/decimal"
)

type StubRepository struct {
	nextID int64
	goals  []Goal
}

func NewStubRepository() *StubRepository {
	return &StubRepository{nextID: 1}
}

func (s *StubRepository) FindAll(ctx context.Context) ([]Goal, error) {
	goals := make([]Goal, len(s.goals))
	copy(goals, s.goals)
	return goals, nil
}

func (s *StubRepository) FindByID(ctx context.Context, id int64) (Goal, bool, error) {
	for _, goal := range s.goals {
		if goal.ID == id {
			return goal, true, nil
		}
	}
	return Goal{}, false, nil
}

func (s *StubRepository) Store(ctx context.Context, goal Goal) (int64, error) {
	goal.ID = s.nextID
	s.nextID++
	s.goals = append(s.goals, goal)
	return goal.ID, nil
}

func (s *StubRepository) UpdateSaved(ctx context.Context, id int64, saved decimal.Decimal) (bool, error) {
	for i, goal := range s.goals {
		if goal.ID == id {
			s.goals[i].Saved = saved
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Delete(ctx context.Context, id int64) (bool, error) {
	for i, goal := range s.goals {
		if goal.ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Reset() {
	s.goals = nil
	s.nextID = 1
}
