// Package prefs holds the user's filter state for career
// recommendations. The store is the single source of truth for the
// session: UI events mutate it, the recommendation reload and outgoing
// requests read it. Invalid input is silently ignored rather than
// surfaced, so a bad selection can never block the session.
package prefs

import (
	"slices"
	"strings"
	"sync"
)

// Goal is the user's primary career objective.
type Goal string

const (
	GoalAdvancement Goal = "advancement"
	GoalSkill       Goal = "skill"
	GoalJob         Goal = "job"
	GoalRetirement  Goal = "retirement"
)

// ParseGoal validates a raw goal value. ok is false for anything
// outside the four known values.
func ParseGoal(value string) (Goal, bool) {
	switch Goal(value) {
	case GoalAdvancement, GoalSkill, GoalJob, GoalRetirement:
		return Goal(value), true
	}
	return "", false
}

// DisplayName returns the human-readable label shown on filter chips.
func (g Goal) DisplayName() string {
	switch g {
	case GoalAdvancement:
		return "Career Advancement"
	case GoalSkill:
		return "Skill Development"
	case GoalJob:
		return "Job Search"
	case GoalRetirement:
		return "Retirement Planning"
	}
	return ""
}

// Sentinel values meaning "no filter applied".
const (
	AllIndustries     = "All Industries"
	DefaultLocation   = "Remote"
	DefaultExperience = "3-5 years"
	DefaultLevel      = "Entry Level"
)

// Preferences is the user's current filter selection state.
type Preferences struct {
	Interests         []string
	CareerLevel       string
	Goal              Goal
	Industry          string
	Location          string
	Experience        string
	LinkedInConnected bool
}

// Defaults returns the preference state every session starts from.
func Defaults() Preferences {
	return Preferences{
		Interests:   []string{"Technology", "Leadership"},
		CareerLevel: DefaultLevel,
		Goal:        GoalAdvancement,
		Industry:    AllIndustries,
		Location:    DefaultLocation,
		Experience:  DefaultExperience,
	}
}

// clone returns a deep copy so snapshots never alias the live slice.
func (p Preferences) clone() Preferences {
	out := p
	out.Interests = slices.Clone(p.Interests)
	return out
}

// ChipKind tags an active-filter chip with the preference it came
// from, so removal dispatches on the tag instead of re-deriving the
// kind from the rendered text.
type ChipKind string

const (
	ChipInterest    ChipKind = "interest"
	ChipCareerLevel ChipKind = "career_level"
	ChipGoal        ChipKind = "goal"
)

// Chip is one removable active-filter tag.
type Chip struct {
	Kind  ChipKind
	Value string
	Label string
}

// Profile carries preference updates derived from a connected
// LinkedIn profile. Empty fields leave the current value untouched.
type Profile struct {
	Interests   []string
	CareerLevel string
	Goal        string
	Industry    string
	Location    string
	Experience  string
}

// Store owns the preference record for one session. All mutations go
// through it; observers are notified after every effective change.
type Store struct {
	mu       sync.Mutex
	prefs    Preferences
	onChange func(Preferences)
}

// NewStore creates a store populated with the session defaults.
func NewStore() *Store {
	return &Store{prefs: Defaults()}
}

// OnChange registers the single change observer. The observer runs
// synchronously after each mutation that actually changed state, with
// a snapshot of the new preferences.
func (s *Store) OnChange(fn func(Preferences)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Snapshot returns a copy of the current preferences.
func (s *Store) Snapshot() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.clone()
}

// notify must be called without the lock held.
func (s *Store) notify() {
	s.mu.Lock()
	fn := s.onChange
	snap := s.prefs.clone()
	s.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}

// AddInterest appends a free-text interest. Whitespace-only input and
// case-sensitive duplicates are ignored. Reports whether the set
// changed.
func (s *Store) AddInterest(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	s.mu.Lock()
	if slices.Contains(s.prefs.Interests, trimmed) {
		s.mu.Unlock()
		return false
	}
	s.prefs.Interests = append(s.prefs.Interests, trimmed)
	s.mu.Unlock()

	s.notify()
	return true
}

// RemoveInterest removes the first exact match; absent values are a
// no-op. Reports whether the set changed.
func (s *Store) RemoveInterest(text string) bool {
	s.mu.Lock()
	idx := slices.Index(s.prefs.Interests, text)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.prefs.Interests = slices.Delete(s.prefs.Interests, idx, idx+1)
	s.mu.Unlock()

	s.notify()
	return true
}

// SetCareerLevel joins the reported selections with ", " in control
// order. An empty selection clears the field.
func (s *Store) SetCareerLevel(selections []string) {
	joined := strings.Join(selections, ", ")

	s.mu.Lock()
	if s.prefs.CareerLevel == joined {
		s.mu.Unlock()
		return
	}
	s.prefs.CareerLevel = joined
	s.mu.Unlock()

	s.notify()
}

// SetGoal stores a goal selection. Values outside the enumeration are
// rejected silently and the prior goal stands.
func (s *Store) SetGoal(value string) bool {
	goal, ok := ParseGoal(value)
	if !ok {
		return false
	}

	s.mu.Lock()
	if s.prefs.Goal == goal {
		s.mu.Unlock()
		return true
	}
	s.prefs.Goal = goal
	s.mu.Unlock()

	s.notify()
	return true
}

// SetIndustry applies an industry selection. Empty input is ignored;
// the placeholder-row gate belongs to the control adapter, which must
// not call through for a "no selection" row.
func (s *Store) SetIndustry(value string) {
	s.setField(&s.prefs.Industry, value)
}

// SetLocation applies a location selection, same contract as
// SetIndustry.
func (s *Store) SetLocation(value string) {
	s.setField(&s.prefs.Location, value)
}

// SetExperience applies an experience-range selection.
func (s *Store) SetExperience(value string) {
	s.setField(&s.prefs.Experience, value)
}

func (s *Store) setField(field *string, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}

	s.mu.Lock()
	if *field == value {
		s.mu.Unlock()
		return
	}
	*field = value
	s.mu.Unlock()

	s.notify()
}

// ActiveChips returns the tagged chips for the active-filters row:
// one per interest in insertion order, the career level when set, and
// the goal.
func (s *Store) ActiveChips() []Chip {
	s.mu.Lock()
	p := s.prefs.clone()
	s.mu.Unlock()

	chips := make([]Chip, 0, len(p.Interests)+2)
	for _, interest := range p.Interests {
		chips = append(chips, Chip{Kind: ChipInterest, Value: interest, Label: interest})
	}
	if p.CareerLevel != "" {
		chips = append(chips, Chip{Kind: ChipCareerLevel, Value: p.CareerLevel, Label: p.CareerLevel})
	}
	if label := p.Goal.DisplayName(); label != "" {
		chips = append(chips, Chip{Kind: ChipGoal, Value: string(p.Goal), Label: label})
	}
	return chips
}

// RemoveChip removes the preference behind an active-filter chip,
// dispatching on the chip's tag. Goal chips are not removable; the
// goal always has a value.
func (s *Store) RemoveChip(chip Chip) {
	switch chip.Kind {
	case ChipInterest:
		s.RemoveInterest(chip.Value)
	case ChipCareerLevel:
		s.SetCareerLevel(nil)
	}
}

// RemoveFilter resolves a chip by its displayed text and removes it.
// Unknown text is a no-op.
func (s *Store) RemoveFilter(displayText string) {
	for _, chip := range s.ActiveChips() {
		if chip.Label == displayText {
			s.RemoveChip(chip)
			return
		}
	}
}

// Reset restores the initial defaults with the interest list cleared.
func (s *Store) Reset() {
	s.mu.Lock()
	s.prefs = Defaults()
	s.prefs.Interests = []string{}
	s.mu.Unlock()

	s.notify()
}

// IsDefault reports whether the current preferences still match the
// session defaults, with ordered comparison of the interest list.
func (s *Store) IsDefault() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	def := Defaults()
	return slices.Equal(s.prefs.Interests, def.Interests) &&
		s.prefs.CareerLevel == def.CareerLevel &&
		s.prefs.Goal == def.Goal &&
		s.prefs.Industry == def.Industry &&
		s.prefs.Location == def.Location &&
		s.prefs.Experience == def.Experience
}

// ApplyProfile merges preference updates from a connected profile.
// Only non-empty fields win; the connected flag is set and never
// cleared afterwards.
func (s *Store) ApplyProfile(p Profile) {
	s.mu.Lock()
	if len(p.Interests) > 0 {
		s.prefs.Interests = slices.Clone(p.Interests)
	}
	if p.CareerLevel != "" {
		s.prefs.CareerLevel = p.CareerLevel
	}
	if goal, ok := ParseGoal(p.Goal); ok {
		s.prefs.Goal = goal
	}
	if p.Industry != "" {
		s.prefs.Industry = p.Industry
	}
	if p.Location != "" {
		s.prefs.Location = p.Location
	}
	if p.Experience != "" {
		s.prefs.Experience = p.Experience
	}
	s.prefs.LinkedInConnected = true
	s.mu.Unlock()

	s.notify()
}
