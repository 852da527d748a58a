package main

import "github.com/samber/lo"

type poolCategory string

const (
	poolMale   poolCategory = "male"
	poolFemale poolCategory = "female"
	poolGroup  poolCategory = "group"
)

// waitingPools keeps the seekers that could not be matched yet, one ordered
// queue per category. Couple seekers are enqueued under their own gender so
// that the pairing engine can find them by scanning the pool named after the
// seeker's preference.
type waitingPools struct {
	entries map[poolCategory][]string
}

func newWaitingPools() *waitingPools {
	return &waitingPools{entries: map[poolCategory][]string{
		poolMale:   {},
		poolFemale: {},
		poolGroup:  {},
	}}
}

func (p *waitingPools) Enqueue(category poolCategory, handle string) {
	p.entries[category] = append(p.entries[category], handle)
}

func (p *waitingPools) Handles(category poolCategory) []string {
	return p.entries[category]
}

// Remove purges the handle from every category.
func (p *waitingPools) Remove(handle string) {
	for category, handles := range p.entries {
		p.entries[category] = lo.Filter(handles, func(h string, _ int) bool {
			return h != handle
		})
	}
}

func (p *waitingPools) Contains(handle string) bool {
	for _, handles := range p.entries {
		if lo.Contains(handles, handle) {
			return true
		}
	}
	return false
}
