package impl

import (
	"strconv"
	"testing"

	"timeclock/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierAllocator_EmptyDevice(t *testing.T) {
	a := newIdentifierAllocator(nil)

	assert.Equal(t, 1, a.NextUID())
	assert.Equal(t, "1", a.NextUserID())
	assert.Equal(t, 2, a.NextUID())
	assert.Equal(t, "2", a.NextUserID())
}

func TestIdentifierAllocator_ContinuesFromLargest(t *testing.T) {
	existing := []entity.DeviceUser{
		{UID: 3, UserID: "9"},
		{UID: 7, UserID: "10"},
		{UID: 5, UserID: "4"},
	}

	a := newIdentifierAllocator(existing)

	assert.Equal(t, 8, a.NextUID())
	// "9" is the lexicographic largest; its increment "10" is taken, so the
	// allocator skips to "11".
	assert.Equal(t, "11", a.NextUserID())
}

func TestIdentifierAllocator_SkipsTakenCandidates(t *testing.T) {
	existing := []entity.DeviceUser{
		{UID: 1, UserID: "8"},
		{UID: 2, UserID: "9"},
		{UID: 3, UserID: "10"},
		{UID: 4, UserID: "11"},
	}

	a := newIdentifierAllocator(existing)

	// Largest is "9"; 10 and 11 are taken, so the first free id is 12.
	assert.Equal(t, "12", a.NextUserID())
	assert.Equal(t, "13", a.NextUserID())
}

func TestIdentifierAllocator_EmbeddedNumericSuffix(t *testing.T) {
	existing := []entity.DeviceUser{
		{UID: 1, UserID: "emp008"},
		{UID: 2, UserID: "emp009"},
	}

	a := newIdentifierAllocator(existing)

	assert.Equal(t, "emp010", a.NextUserID())
}

func TestIdentifierAllocator_NoTrailingDigits(t *testing.T) {
	existing := []entity.DeviceUser{
		{UID: 1, UserID: "badge"},
	}

	a := newIdentifierAllocator(existing)

	got := a.NextUserID()
	assert.Equal(t, "badge1", got)
	assert.Equal(t, "badge2", a.NextUserID())
}

func TestIdentifierAllocator_NeverEmitsUsedIdentifier(t *testing.T) {
	var existing []entity.DeviceUser
	seen := make(map[string]struct{})
	for i := 1; i <= 50; i += 2 {
		id := strconv.Itoa(i)
		existing = append(existing, entity.DeviceUser{UID: i, UserID: id})
		seen[id] = struct{}{}
	}

	a := newIdentifierAllocator(existing)

	for range 100 {
		id := a.NextUserID()
		_, dup := seen[id]
		assert.False(t, dup, "allocator emitted used id %q", id)
		seen[id] = struct{}{}

		uid := a.NextUID()
		assert.Greater(t, uid, 50)
	}
}
