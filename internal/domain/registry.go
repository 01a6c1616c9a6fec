package domain

import "slices"

// AchievementEntry is an unlockable tip. Milestone, when set, unlocks the entry
// as part of that milestone's batch.
type AchievementEntry struct {
	ID          string
	Title       string
	Description string
	Milestone   *int
	Unlocked    bool
}

// Registry tracks which tips are unlocked and which milestones are complete.
// Entries keep their definition order.
type Registry struct {
	entries   []AchievementEntry
	index     map[string]int
	unlocked  []string
	completed []int
}

// NewRegistry copies the definitions and starts every entry locked. When ids
// repeat, the first definition wins; Content.Validate reports the repeats.
func NewRegistry(definitions []AchievementEntry) *Registry {
	r := &Registry{
		entries: make([]AchievementEntry, 0, len(definitions)),
		index:   make(map[string]int, len(definitions)),
	}

	for _, def := range definitions {
		if _, ok := r.index[def.ID]; ok {
			continue
		}
		def.Unlocked = false
		if def.Milestone != nil {
			milestone := *def.Milestone
			def.Milestone = &milestone
		}
		r.index[def.ID] = len(r.entries)
		r.entries = append(r.entries, def)
	}

	return r
}

// Unlock marks the entry unlocked. It reports whether this call changed
// anything; unknown ids and already unlocked entries are no-ops.
func (r *Registry) Unlock(id string) bool {
	i, ok := r.index[id]
	if !ok || r.entries[i].Unlocked {
		return false
	}

	r.entries[i].Unlocked = true
	if !slices.Contains(r.unlocked, id) {
		r.unlocked = append(r.unlocked, id)
	}
	return true
}

// CompleteMilestone unlocks every entry triggered by milestone n, in registry
// order, and returns the newly unlocked entries. The boolean is false when the
// milestone had already been completed.
func (r *Registry) CompleteMilestone(n int) ([]AchievementEntry, bool) {
	if slices.Contains(r.completed, n) {
		return nil, false
	}
	r.completed = append(r.completed, n)

	var unlocked []AchievementEntry
	for _, entry := range r.entries {
		if entry.Milestone == nil || *entry.Milestone != n {
			continue
		}
		if r.Unlock(entry.ID) {
			unlocked = append(unlocked, r.entries[r.index[entry.ID]])
		}
	}

	return unlocked, true
}

func (r *Registry) Lookup(id string) (AchievementEntry, bool) {
	i, ok := r.index[id]
	if !ok {
		return AchievementEntry{}, false
	}
	return r.entries[i], true
}

func (r *Registry) Entries() []AchievementEntry {
	return slices.Clone(r.entries)
}

// UnlockedIDs returns ids in the order they were unlocked.
func (r *Registry) UnlockedIDs() []string {
	return slices.Clone(r.unlocked)
}

func (r *Registry) CompletedMilestones() []int {
	return slices.Clone(r.completed)
}
