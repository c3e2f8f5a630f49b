package subscription

import "context"

type StubRepository struct {
	nextID        int64
	subscriptions []Subscription
}

func NewStubRepository() *StubRepository {
	return &StubRepository{nextID: 1}
}

func (s *StubRepository) FindAll(ctx context.Context) ([]Subscription, error) {
	subscriptions := make([]Subscription, len(s.subscriptions))
	copy(subscriptions, s.subscriptions)
	return subscriptions, nil
}

func (s *StubRepository) Store(ctx context.Context, subscription Subscription) (int64, error) {
	subscription.ID = s.nextID
	s.nextID++
	s.subscriptions = append(s.subscriptions, subscription)
	return subscription.ID, nil
}

func (s *StubRepository) Delete(ctx context.Context, id int64) (bool, error) {
	for i, subscription := range s.subscriptions {
		if subscription.ID == id {
			s.subscriptions = append(s.subscriptions[:i], s.subscriptions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Reset() {
	s.subscriptions = nil
	s.nextID = 1
}
