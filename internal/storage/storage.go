// Package storage persists whole-collection JSON snapshots under fixed
// string keys. Every write replaces the full snapshot; there is no
// schema versioning and no partial update.
package storage

import (
	"encoding/json"
	"log"
	"strings"
)

// Snapshot keys. Each key holds one JSON-serialized collection or
// settings object.
const (
	KeyLeads         = "crm_leads"
	KeyCustomers     = "crm_customers"
	KeyDeals         = "crm_deals"
	KeyActivities    = "crm_activities"
	KeyNotifications = "crm_notifications"
	KeyReminders     = "crm_reminders"
	KeyTasks         = "crm_tasks"
	KeyEvents        = "crm_events"
	KeyAuditLogs     = "crm_audit_logs"
	KeyUsers         = "crm_users"
	KeyProfile       = "crm_profile"
	KeyBusiness      = "crm_business"
	KeyNotifSettings = "crm_notif_settings"
	KeyLeadSources   = "crm_lead_sources"
	KeyDealStages    = "crm_deal_stages"
	KeyLanguage      = "crm_lang"
	KeyLockUntil     = "crm_lock_until"
)

// Backend is the raw byte-level port. Get returns (nil, nil) for a
// missing key so callers can distinguish absence from failure.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Load reads the snapshot under key into a value of type T. A missing
// key, the literal string "undefined", or an unparsable payload all
// yield the fallback — corrupt data is repaired on the next Save, never
// surfaced as an error.
func Load[T any](b Backend, key string, fallback T) T {
	raw, err := b.Get(key)
	if err != nil {
		log.Printf("storage: load %s: %v", key, err)
		return fallback
	}
	if raw == nil {
		return fallback
	}
	if s := strings.TrimSpace(string(raw)); s == "" || s == "undefined" {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Printf("storage: corrupt snapshot %s replaced by fallback: %v", key, err)
		return fallback
	}
	return v
}

// Save serializes v and writes it under key as a complete snapshot.
func Save(b Backend, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Set(key, raw)
}
