package impl

import (
	"strconv"
	"strings"

	"timeclock/internal/domain/entity"
)

// identifierAllocator hands out device-side identifiers that are guaranteed
// not to collide with existing registrations: numeric storage slots (uid) and
// textual user ids. Textual ids advance by incrementing the trailing decimal
// run of the largest id seen so far, skipping candidates that are already
// taken.
type identifierAllocator struct {
	nextUID int
	usedIDs map[string]struct{}
	lastID  string
}

// newIdentifierAllocator seeds an allocator from the device's current user
// table. An empty table starts at uid 1 and user id "1".
func newIdentifierAllocator(existing []entity.DeviceUser) *identifierAllocator {
	a := &identifierAllocator{
		nextUID: 1,
		usedIDs: make(map[string]struct{}, len(existing)),
	}

	for _, user := range existing {
		if user.UID >= a.nextUID {
			a.nextUID = user.UID + 1
		}
		if user.UserID == "" {
			continue
		}
		a.usedIDs[user.UserID] = struct{}{}
		// Lexicographic largest, the same ordering the devices report their
		// user table in. "9" beats "10" here, which is why the skip loop
		// below exists.
		if user.UserID > a.lastID {
			a.lastID = user.UserID
		}
	}

	return a
}

// NextUID returns the next unused numeric slot.
func (a *identifierAllocator) NextUID() int {
	uid := a.nextUID
	a.nextUID++

	return uid
}

// NextUserID returns the next unused textual user id and reserves it.
func (a *identifierAllocator) NextUserID() string {
	candidate := a.lastID
	if candidate == "" {
		candidate = "0"
	}

	for {
		candidate = incrementTrailingDigits(candidate)
		if _, taken := a.usedIDs[candidate]; !taken {
			break
		}
	}

	a.usedIDs[candidate] = struct{}{}
	a.lastID = candidate

	return candidate
}

// incrementTrailingDigits increments the trailing decimal run of id,
// preserving zero padding ("emp009" -> "emp010"). Ids without a trailing run
// get "1" appended so the next increment has something to work with.
func incrementTrailingDigits(id string) string {
	end := len(id)
	start := end
	for start > 0 && id[start-1] >= '0' && id[start-1] <= '9' {
		start--
	}

	if start == end {
		return id + "1"
	}

	digits := id[start:end]
	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		// Run too long to parse; treat it as opaque and extend it instead.
		return id + "1"
	}

	incremented := strconv.FormatUint(value+1, 10)
	if pad := len(digits) - len(incremented); pad > 0 {
		incremented = strings.Repeat("0", pad) + incremented
	}

	return id[:start] + incremented
}
