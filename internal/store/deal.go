package store

import (
	"fmt"
	"time"

	"simplecrm/internal/domain"
	"simplecrm/internal/storage"
)

func (s *Store) AddDeal(d domain.Deal) (domain.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	d.ID = domain.NewID()
	d.CreatedAt = now
	d.UpdatedAt = now
	s.deals = append([]domain.Deal{d}, s.deals...)
	if err := s.persist(storage.KeyDeals, s.deals); err != nil {
		return domain.Deal{}, err
	}
	return d, nil
}

func (s *Store) UpdateDeal(d domain.Deal) (domain.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	updated := make([]domain.Deal, len(s.deals))
	for i, cur := range s.deals {
		if cur.ID == d.ID {
			d.CreatedAt = cur.CreatedAt
			d.UpdatedAt = time.Now()
			updated[i] = d
			found = true
		} else {
			updated[i] = cur
		}
	}
	if !found {
		return domain.Deal{}, ErrNotFound
	}
	s.deals = updated
	if err := s.persist(storage.KeyDeals, s.deals); err != nil {
		return domain.Deal{}, err
	}
	return d, nil
}

// UpdateDealStage moves a deal through the pipeline. "Won" forces
// probability to 100 and stamps actualClose; "Lost" forces probability
// to 0 and leaves actualClose untouched. Stage values are not validated
// against the configured list.
func (s *Store) UpdateDealStage(actor domain.SessionUser, id, stage string) (domain.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	var old string
	var result domain.Deal
	updated := make([]domain.Deal, len(s.deals))
	for i, d := range s.deals {
		if d.ID == id {
			old = d.Stage
			d.Stage = stage
			d.UpdatedAt = time.Now()
			switch stage {
			case domain.StageWon:
				now := time.Now()
				d.ActualClose = &now
				d.Probability = 100
			case domain.StageLost:
				d.Probability = 0
			}
			result = d
			found = true
		}
		updated[i] = d
	}
	if !found {
		return domain.Deal{}, ErrNotFound
	}
	s.deals = updated
	if err := s.persist(storage.KeyDeals, s.deals); err != nil {
		return domain.Deal{}, err
	}

	s.addActivityLocked(actor, domain.Activity{
		EntityID:   id,
		EntityType: domain.EntityDeal,
		Type:       domain.ActivityDealEvent,
		Content:    fmt.Sprintf("Stage moved to %s", stage),
		OldValue:   old,
		NewValue:   stage,
	})

	return result, nil
}

func (s *Store) DeleteDeal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]domain.Deal, 0, len(s.deals))
	for _, d := range s.deals {
		if d.ID != id {
			updated = append(updated, d)
		}
	}
	s.deals = updated
	return s.persist(storage.KeyDeals, s.deals)
}

func (s *Store) DealByID(id string) (domain.Deal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.deals {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Deal{}, false
}
