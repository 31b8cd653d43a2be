package mux

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTranslateKeyHumanForm(t *testing.T) {
	assert.Equal(t, "C-g", TranslateKey("ctrl+g"))
	assert.Equal(t, "M-x", TranslateKey("Alt+x"))
	assert.Equal(t, "S-Tab", TranslateKey("shift+Tab"))
}

func TestTranslateKeyNativeFormPassesThrough(t *testing.T) {
	assert.Equal(t, "C-g", TranslateKey("C-g"))
	assert.Equal(t, "M-x", TranslateKey("M-x"))
}

func TestTranslateKeyNamedKeyPassesThrough(t *testing.T) {
	assert.Equal(t, "Enter", TranslateKey("Enter"))
	assert.Equal(t, "Escape", TranslateKey("Escape"))
}

func TestEscapeSemicolon(t *testing.T) {
	assert.Equal(t, `foo \; bar`, EscapeSemicolon("foo ; bar"))
}

func TestSessionNameEncoding(t *testing.T) {
	assert.Equal(t, "agentdeck_rs_abc123", SessionName("abc123"))
}

func TestCacheStaleReturnsNotOK(t *testing.T) {
	a := New()
	a.cache.activity = map[string]int64{"agentdeck_rs_x": 100}
	a.cache.updatedAt = time.Now().Add(-3 * time.Second)

	_, ok := a.Exists("agentdeck_rs_x")
	assert.False(t, ok)

	_, ok = a.Activity("agentdeck_rs_x")
	assert.False(t, ok)
}

func TestCacheFreshReturnsOK(t *testing.T) {
	a := New()
	a.cache.activity = map[string]int64{"agentdeck_rs_x": 100}
	a.cache.updatedAt = time.Now()

	exists, ok := a.Exists("agentdeck_rs_x")
	assert.True(t, ok)
	assert.True(t, exists)

	activity, ok := a.Activity("agentdeck_rs_x")
	assert.True(t, ok)
	assert.Equal(t, int64(100), activity)
}

func TestCacheNilIsStale(t *testing.T) {
	a := New()
	_, ok := a.Exists("anything")
	assert.False(t, ok)
}

func TestInsertCachedIsImmediatelyFresh(t *testing.T) {
	a := New()
	a.insertCached("agentdeck_rs_new")

	exists, ok := a.Exists("agentdeck_rs_new")
	assert.True(t, ok)
	assert.True(t, exists)
}
