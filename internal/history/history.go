package history

import "time"

// Entry records one change to a device
type Entry struct {
	DeviceID string    `json:"deviceId"`
	Action   string    `json:"action"`
	At       time.Time `json:"at"`
}

// Log is a bounded, oldest-first list of entries
type Log struct {
	entries []Entry
	limit   int
}

// New creates a log keeping at most limit entries
func New(limit int) *Log {
	if limit < 1 {
		limit = 1
	}
	return &Log{limit: limit}
}

// Restore replaces the entries, keeping the newest ones that fit
func (l *Log) Restore(entries []Entry) {
	l.entries = nil
	for _, e := range entries {
		l.Record(e)
	}
}

// Record appends an entry, dropping the oldest when full
func (l *Log) Record(e Entry) {
	l.entries = append(l.entries, e)
	if over := len(l.entries) - l.limit; over > 0 {
		l.entries = append([]Entry(nil), l.entries[over:]...)
	}
}

// Entries returns a copy of the entries, oldest first
func (l *Log) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Len returns the number of entries
func (l *Log) Len() int {
	return len(l.entries)
}

// LastFor returns the newest entry for deviceID
func (l *Log) LastFor(deviceID string) (Entry, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].DeviceID == deviceID {
			return l.entries[i], true
		}
	}
	return Entry{}, false
}
