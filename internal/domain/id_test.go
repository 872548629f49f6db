package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID_CarriesPrefix(t *testing.T) {
	id := NewID(PrefixProfessor)
	assert.True(t, HasPrefix(id, PrefixProfessor))
	assert.False(t, HasPrefix(id, PrefixGroup))
}

func TestNewID_UniqueInTightLoop(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID(PrefixGroup)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
