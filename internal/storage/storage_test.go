package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	require.NoError(t, Save(m, KeyLeads, snapshot{Name: "leads", Count: 3}))

	got := Load(m, KeyLeads, snapshot{})
	assert.Equal(t, "leads", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestLoadMissingKeyReturnsFallback(t *testing.T) {
	m := NewMemory()

	got := Load(m, KeyCustomers, snapshot{Name: "fallback"})
	assert.Equal(t, "fallback", got.Name)
}

func TestLoadUndefinedLiteralReturnsFallback(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set(KeyDeals, []byte("undefined")))

	got := Load(m, KeyDeals, snapshot{Name: "fallback"})
	assert.Equal(t, "fallback", got.Name)
}

func TestLoadCorruptPayloadReturnsFallback(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set(KeyTasks, []byte("{not json")))

	got := Load(m, KeyTasks, snapshot{Name: "fallback", Count: 7})
	assert.Equal(t, "fallback", got.Name)
	assert.Equal(t, 7, got.Count)
}

func TestLoadEmptyPayloadReturnsFallback(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set(KeyEvents, []byte("  ")))

	got := Load(m, KeyEvents, snapshot{Count: 1})
	assert.Equal(t, 1, got.Count)
}

func TestCorruptSnapshotRepairedByNextSave(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set(KeyLeads, []byte("garbage")))

	require.NoError(t, Save(m, KeyLeads, snapshot{Name: "clean"}))

	got := Load(m, KeyLeads, snapshot{})
	assert.Equal(t, "clean", got.Name)
}

func TestDeleteRemovesKey(t *testing.T) {
	m := NewMemory()
	require.NoError(t, Save(m, KeyLanguage, "hi"))
	require.NoError(t, m.Delete(KeyLanguage))

	got := Load(m, KeyLanguage, "en")
	assert.Equal(t, "en", got)
}
