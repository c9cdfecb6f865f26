package store

import (
	"time"

	"simplecrm/internal/domain"
	"simplecrm/internal/storage"
)

// AddCustomer inserts a customer. Customer IDs carry a cust- prefix so
// they are distinguishable from lead and deal IDs in links.
func (s *Store) AddCustomer(c domain.Customer) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = "cust-" + domain.NewID()
	if c.CustomerSince.IsZero() {
		c.CustomerSince = time.Now()
	}
	s.customers = append([]domain.Customer{c}, s.customers...)
	if err := s.persist(storage.KeyCustomers, s.customers); err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

func (s *Store) UpdateCustomer(c domain.Customer) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	updated := make([]domain.Customer, len(s.customers))
	for i, cur := range s.customers {
		if cur.ID == c.ID {
			c.CustomerSince = cur.CustomerSince
			c.LeadID = cur.LeadID
			updated[i] = c
			found = true
		} else {
			updated[i] = cur
		}
	}
	if !found {
		return domain.Customer{}, ErrNotFound
	}
	s.customers = updated
	if err := s.persist(storage.KeyCustomers, s.customers); err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

func (s *Store) DeleteCustomer(actor domain.SessionUser, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if actor.Role == domain.RoleSales {
		return ErrPermissionDenied
	}

	updated := make([]domain.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		if c.ID != id {
			updated = append(updated, c)
		}
	}
	s.customers = updated
	return s.persist(storage.KeyCustomers, s.customers)
}

func (s *Store) CustomerByID(id string) (domain.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Customer{}, false
}
