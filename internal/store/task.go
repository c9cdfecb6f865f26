package store

import (
	"time"

	"simplecrm/internal/domain"
	"simplecrm/internal/storage"
)

func (s *Store) AddTask(t domain.Task) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = domain.NewID()
	t.CreatedAt = time.Now()
	t.IsCompleted = false
	s.tasks = append([]domain.Task{t}, s.tasks...)
	if err := s.persist(storage.KeyTasks, s.tasks); err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

func (s *Store) UpdateTask(t domain.Task) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	updated := make([]domain.Task, len(s.tasks))
	for i, cur := range s.tasks {
		if cur.ID == t.ID {
			t.CreatedAt = cur.CreatedAt
			updated[i] = t
			found = true
		} else {
			updated[i] = cur
		}
	}
	if !found {
		return domain.Task{}, ErrNotFound
	}
	s.tasks = updated
	if err := s.persist(storage.KeyTasks, s.tasks); err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			updated = append(updated, t)
		}
	}
	s.tasks = updated
	return s.persist(storage.KeyTasks, s.tasks)
}

func (s *Store) ToggleTask(id string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	var result domain.Task
	updated := make([]domain.Task, len(s.tasks))
	for i, t := range s.tasks {
		if t.ID == id {
			t.IsCompleted = !t.IsCompleted
			result = t
			found = true
		}
		updated[i] = t
	}
	if !found {
		return domain.Task{}, ErrNotFound
	}
	s.tasks = updated
	if err := s.persist(storage.KeyTasks, s.tasks); err != nil {
		return domain.Task{}, err
	}
	return result, nil
}
