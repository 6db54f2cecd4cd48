package recommend

import "sync"

// Role tags a transcript entry with its author.
type Role int

const (
	RoleUser Role = iota
	RoleAssistant
)

func (r Role) String() string {
	if r == RoleUser {
		return "user"
	}
	return "assistant"
}

// Entry is one chat transcript line. A Typing entry is the transient
// placeholder shown while a response is awaited; it is removed by
// reference once the real response (or the error text) arrives.
type Entry struct {
	ID     uint64
	Role   Role
	Text   string
	Typing bool
}

// Transcript is the ordered chat history for one session.
type Transcript struct {
	mu      sync.Mutex
	entries []Entry
	nextID  uint64
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds an entry to the end of the transcript and returns its
// handle.
func (t *Transcript) Append(text string, role Role) Entry {
	return t.append(text, role, false)
}

// AppendTyping adds an assistant typing placeholder.
func (t *Transcript) AppendTyping() Entry {
	return t.append("", RoleAssistant, true)
}

func (t *Transcript) append(text string, role Role, typing bool) Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	entry := Entry{ID: t.nextID, Role: role, Text: text, Typing: typing}
	t.entries = append(t.entries, entry)
	return entry
}

// Remove deletes the referenced entry, leaving the order of all other
// entries untouched. Removing an already-removed entry is a no-op.
func (t *Transcript) Remove(entry Entry) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.entries {
		if t.entries[i].ID == entry.ID {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns a snapshot of the transcript in order.
func (t *Transcript) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Clear empties the transcript.
func (t *Transcript) Clear() {
	t.mu.Lock()
	t.entries = nil
	t.mu.Unlock()
}
