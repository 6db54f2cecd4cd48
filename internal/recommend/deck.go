// Package recommend turns recommendation payloads and free-text
// queries into updates of the four fixed display card slots, and
// keeps the chat transcript.
package recommend

import (
	"sync"

	"careerpilot/internal/types"
)

// Kind identifies one of the four fixed card slots.
type Kind int

const (
	KindCourse Kind = iota
	KindJob
	KindEvent
	KindWorkshop

	// NumSlots is the fixed size of the display surface.
	NumSlots = 4
)

func (k Kind) String() string {
	switch k {
	case KindCourse:
		return "course"
	case KindJob:
		return "job"
	case KindEvent:
		return "event"
	case KindWorkshop:
		return "workshop"
	}
	return "unknown"
}

// Card is the projection of one recommended item into a display slot.
type Card struct {
	Kind        Kind
	Title       string
	Description string
	DisplayType string
	IconToken   string
	Details     [3]string
	ActionLabel string
	ActionLink  string
}

// Icon tokens and action labels per slot, fixed by the display surface.
const (
	iconCourse   = "graduation-cap"
	iconJob      = "briefcase"
	iconEvent    = "calendar"
	iconWorkshop = "tools"

	actionCourse   = "Learn More on LinkedIn"
	actionJob      = "Apply on LinkedIn"
	actionEvent    = "Register on LinkedIn"
	actionWorkshop = "Join on LinkedIn"
)

// Deck is the four-slot display surface. Slots update independently;
// an empty category in a payload leaves its slot untouched.
type Deck struct {
	mu       sync.Mutex
	slots    [NumSlots]*Card
	versions [NumSlots]uint64
	visible  bool
}

// NewDeck creates an empty deck with all slots unset and hidden.
func NewDeck() *Deck {
	return &Deck{}
}

// Set projects a card into its slot, bumping the slot version.
func (d *Deck) Set(card Card) {
	if card.Kind < 0 || card.Kind >= NumSlots {
		return
	}

	d.mu.Lock()
	c := card
	d.slots[card.Kind] = &c
	d.versions[card.Kind]++
	d.mu.Unlock()
}

// Card returns a copy of the slot's current card, if any.
func (d *Deck) Card(kind Kind) (Card, bool) {
	if kind < 0 || kind >= NumSlots {
		return Card{}, false
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.slots[kind] == nil {
		return Card{}, false
	}
	return *d.slots[kind], true
}

// Version returns how many times the slot has been assigned. Used to
// observe which slots a render call touched.
func (d *Deck) Version(kind Kind) uint64 {
	if kind < 0 || kind >= NumSlots {
		return 0
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.versions[kind]
}

// SetVisible toggles the recommendations surface.
func (d *Deck) SetVisible(visible bool) {
	d.mu.Lock()
	d.visible = visible
	d.mu.Unlock()
}

// Visible reports whether the recommendations surface is shown.
func (d *Deck) Visible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.visible
}

// ApplyPayload projects a structured recommendation payload into the
// deck: the first element of each non-empty category lands in the
// matching slot. Absence of data is not a signal to blank a slot, so
// empty categories change nothing.
func (d *Deck) ApplyPayload(set types.RecommendationSet) {
	if len(set.Courses) > 0 {
		course := set.Courses[0]
		d.Set(Card{
			Kind:        KindCourse,
			Title:       course.Title,
			Description: course.Description,
			DisplayType: course.Type,
			IconToken:   iconCourse,
			Details:     [3]string{course.Duration, course.Price, course.Format},
			ActionLabel: actionCourse,
			ActionLink:  course.Link,
		})
	}

	if len(set.Jobs) > 0 {
		job := set.Jobs[0]
		d.Set(Card{
			Kind:        KindJob,
			Title:       job.Title,
			Description: job.Description,
			DisplayType: job.Type,
			IconToken:   iconJob,
			Details:     [3]string{job.Location, job.Salary, job.Company},
			ActionLabel: actionJob,
			ActionLink:  job.Link,
		})
	}

	if len(set.Events) > 0 {
		event := set.Events[0]
		d.Set(Card{
			Kind:        KindEvent,
			Title:       event.Title,
			Description: event.Description,
			DisplayType: event.Type,
			IconToken:   iconEvent,
			Details:     [3]string{event.Date, event.Location, event.Price},
			ActionLabel: actionEvent,
			ActionLink:  event.Link,
		})
	}

	if len(set.Workshops) > 0 {
		workshop := set.Workshops[0]
		d.Set(Card{
			Kind:        KindWorkshop,
			Title:       workshop.Title,
			Description: workshop.Description,
			DisplayType: workshop.Type,
			IconToken:   iconWorkshop,
			Details:     [3]string{workshop.Duration, workshop.Price, workshop.Spots},
			ActionLabel: actionWorkshop,
			ActionLink:  workshop.Link,
		})
	}
}
