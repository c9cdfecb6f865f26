// Package store is the single owner of all CRM collections. Every
// mutation happens here: compute a new collection value, persist the
// whole snapshot through the storage backend, then run cascades
// (activity log, notification, audit trail). HTTP handlers never touch
// the backend directly.
package store

import (
	"sync"

	"simplecrm/internal/domain"
	"simplecrm/internal/storage"
)

const (
	maxNotifications = 50
	maxAuditLogs     = 500
)

// Store holds every collection in memory and writes complete snapshots
// on each mutation. A single mutex serializes mutations; reads return
// copies so callers can never alias internal state.
type Store struct {
	mu      sync.RWMutex
	backend storage.Backend

	leads         []domain.Lead
	customers     []domain.Customer
	deals         []domain.Deal
	activities    []domain.Activity
	notifications []domain.Notification
	reminders     []domain.Reminder
	tasks         []domain.Task
	events        []domain.Event
	auditLogs     []domain.AuditLog
	users         []domain.User

	profile       domain.UserProfile
	business      domain.BusinessInfo
	notifSettings domain.NotificationSettings
	leadSources   []string
	dealStages    []string
	language      string

	// notified on every new notification, outside the mutator itself
	// (websocket hub push); may be nil
	onNotification func(domain.Notification)
}

type Option func(*Store)

// WithNotificationObserver registers a callback invoked after a
// notification is created and persisted.
func WithNotificationObserver(fn func(domain.Notification)) Option {
	return func(s *Store) { s.onNotification = fn }
}

// New loads every collection from the backend. Missing or corrupt
// snapshots fall back to empty collections; settings objects fall back
// to the documented defaults.
func New(backend storage.Backend, opts ...Option) *Store {
	s := &Store{backend: backend}

	s.leads = storage.Load(backend, storage.KeyLeads, []domain.Lead{})
	s.customers = storage.Load(backend, storage.KeyCustomers, []domain.Customer{})
	s.deals = storage.Load(backend, storage.KeyDeals, []domain.Deal{})
	s.activities = storage.Load(backend, storage.KeyActivities, []domain.Activity{})
	s.notifications = storage.Load(backend, storage.KeyNotifications, []domain.Notification{})
	s.reminders = storage.Load(backend, storage.KeyReminders, []domain.Reminder{})
	s.tasks = storage.Load(backend, storage.KeyTasks, []domain.Task{})
	s.events = storage.Load(backend, storage.KeyEvents, []domain.Event{})
	s.auditLogs = storage.Load(backend, storage.KeyAuditLogs, []domain.AuditLog{})
	s.users = storage.Load(backend, storage.KeyUsers, []domain.User{})

	s.profile = storage.Load(backend, storage.KeyProfile, domain.UserProfile{})
	s.business = storage.Load(backend, storage.KeyBusiness, domain.BusinessInfo{})
	s.notifSettings = storage.Load(backend, storage.KeyNotifSettings, domain.DefaultNotificationSettings())
	s.leadSources = storage.Load(backend, storage.KeyLeadSources, domain.DefaultLeadSources)
	s.dealStages = storage.Load(backend, storage.KeyDealStages, domain.DefaultDealStages)
	s.language = storage.Load(backend, storage.KeyLanguage, "en")

	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) persist(key string, v any) error {
	return storage.Save(s.backend, key, v)
}

// Snapshot getters. Each returns a copy of the collection.

func (s *Store) Leads() []domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Lead(nil), s.leads...)
}

func (s *Store) Customers() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Customer(nil), s.customers...)
}

func (s *Store) Deals() []domain.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Deal(nil), s.deals...)
}

func (s *Store) Activities() []domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Activity(nil), s.activities...)
}

func (s *Store) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Notification(nil), s.notifications...)
}

func (s *Store) Reminders() []domain.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Reminder(nil), s.reminders...)
}

func (s *Store) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Task(nil), s.tasks...)
}

func (s *Store) Events() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Event(nil), s.events...)
}

func (s *Store) AuditLogs() []domain.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.AuditLog(nil), s.auditLogs...)
}

func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User(nil), s.users...)
}

func (s *Store) Profile() domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *Store) Business() domain.BusinessInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.business
}

func (s *Store) NotificationSettings() domain.NotificationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notifSettings
}

func (s *Store) LeadSources() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.leadSources...)
}

func (s *Store) DealStages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.dealStages...)
}

func (s *Store) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

func (s *Store) SetLanguage(lang string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
	return s.persist(storage.KeyLanguage, lang)
}

// Reset wipes every snapshot. Used by the delete-account flow.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := []string{
		storage.KeyLeads, storage.KeyCustomers, storage.KeyDeals,
		storage.KeyActivities, storage.KeyNotifications, storage.KeyReminders,
		storage.KeyTasks, storage.KeyEvents, storage.KeyAuditLogs,
		storage.KeyUsers, storage.KeyProfile, storage.KeyBusiness,
		storage.KeyNotifSettings, storage.KeyLeadSources, storage.KeyDealStages,
		storage.KeyLanguage, storage.KeyLockUntil,
	}
	for _, k := range keys {
		if err := s.backend.Delete(k); err != nil {
			return err
		}
	}

	s.leads = nil
	s.customers = nil
	s.deals = nil
	s.activities = nil
	s.notifications = nil
	s.reminders = nil
	s.tasks = nil
	s.events = nil
	s.auditLogs = nil
	s.users = nil
	s.profile = domain.UserProfile{}
	s.business = domain.BusinessInfo{}
	s.notifSettings = domain.DefaultNotificationSettings()
	s.leadSources = append([]string(nil), domain.DefaultLeadSources...)
	s.dealStages = append([]string(nil), domain.DefaultDealStages...)
	s.language = "en"
	return nil
}
