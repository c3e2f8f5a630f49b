package expense

import "context"

type StubRepository struct {
	nextID   int64
	expenses []Expense
}

func NewStubRepository() *StubRepository {
	return &StubRepository{nextID: 1}
}

func (s *StubRepository) FindAll(ctx context.Context) ([]Expense, error) {
	expenses := make([]Expense, len(s.expenses))
	copy(expenses, s.expenses)
	return expenses, nil
}

func (s *StubRepository) Store(ctx context.Context, expense Expense) (int64, error) {
	expense.ID = s.nextID
	s.nextID++
	s.expenses = append(s.expenses, expense)
	return expense.ID, nil
}

func (s *StubRepository) Delete(ctx context.Context, id int64) (bool, error) {
	for i, expense := range s.expenses {
		if expense.ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Reset() {
	s.expenses = nil
	s.nextID = 1
}
