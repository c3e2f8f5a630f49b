package bill

import "context"

type StubRepository struct {
	nextID int64
	bills  []Bill
}

func NewStubRepository() *StubRepository {
	return &StubRepository{nextID: 1}
}

func (s *StubRepository) FindAll(ctx context.Context) ([]Bill, error) {
	bills := make([]Bill, len(s.bills))
	copy(bills, s.bills)
	return bills, nil
}

func (s *StubRepository) Store(ctx context.Context, bill Bill) (int64, error) {
	bill.ID = s.nextID
	s.nextID++
	s.bills = append(s.bills, bill)
	return bill.ID, nil
}

func (s *StubRepository) Delete(ctx context.Context, id int64) (bool, error) {
	for i, bill := range s.bills {
		if bill.ID == id {
			s.bills = append(s.bills[:i], s.bills[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Reset() {
	s.bills = nil
	s.nextID = 1
}
