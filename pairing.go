package main

import "github.com/samber/lo"

// findMatchLocked searches the pool named after the seeker's preference for a
// candidate whose gender satisfies it. The reverse check (candidate's
// preference against the seeker's gender) is intentionally not made, so
// matches can be one-sided. Picks are uniform random, not FIFO.
func (e *Engine) findMatchLocked(u *User) {
	if u.Preference == PreferenceGroup {
		// Group seekers are routed to the group registry upstream; one
		// arriving here means the client sent roomType couple with a group
		// preference, which the pairing engine cannot serve.
		LogUnservablePreference(u.Handle, string(u.Preference))
		e.emitLocked(u.Handle, NoMatchFoundMessage{Type: "no_match_found"})
		return
	}

	candidates := lo.Filter(e.pools.Handles(poolCategory(u.Preference)), func(handle string, _ int) bool {
		candidate, ok := e.users[handle]
		return ok && handle != u.Handle && candidate.Gender == Gender(u.Preference)
	})

	if len(candidates) == 0 {
		category := poolCategory(u.Gender)
		e.pools.Enqueue(category, u.Handle)
		u.status = statusWaiting
		u.pool = category
		LogWaitingForMatch(u.Handle, string(category))
		e.emitLocked(u.Handle, WaitingForMatchMessage{Type: "waiting_for_match"})
		return
	}

	partner := e.users[candidates[e.rand.Intn(len(candidates))]]
	e.pairLocked(u, partner)
}

// pairLocked forms the session: both handles leave every pool and both
// partner back-references are set before either side is notified, so no
// half-paired state is ever observable.
func (e *Engine) pairLocked(a, b *User) {
	e.pools.Remove(a.Handle)
	e.pools.Remove(b.Handle)
	a.status, b.status = statusPaired, statusPaired
	a.pool, b.pool = "", ""
	a.partner, b.partner = b.Handle, a.Handle
	LogMatched(a.Handle, b.Handle)
	e.emitLocked(a.Handle, ChatStartedMessage{Type: "chat_started"})
	e.emitLocked(b.Handle, ChatStartedMessage{Type: "chat_started"})
}
