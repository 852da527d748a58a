package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindMatch_NoCandidate_SeekerWaits(t *testing.T) {
	req := require.New(t)
	e := NewEngine()

	// Given an empty server, when a seeker joins
	sink := joinCouple(e, "a", GenderFemale, PreferenceMale)

	// Then she waits in the pool under her own gender
	req.Equal([]any{WaitingForMatchMessage{Type: "waiting_for_match"}}, sink.events)
	req.True(e.pools.Contains("a"))
	req.Equal(statusWaiting, e.users["a"].status)
	req.Equal(poolFemale, e.users["a"].pool)
}

func TestFindMatch_ReciprocalSeekersArePaired(t *testing.T) {
	req := require.New(t)
	e := NewEngine()

	// Given a waiting female seeking males
	sinkA := joinCouple(e, "a", GenderFemale, PreferenceMale)

	// When a male seeking females joins
	sinkB := joinCouple(e, "b", GenderMale, PreferenceFemale)

	// Then both receive chat_started
	req.Contains(sinkA.events, ChatStartedMessage{Type: "chat_started"})
	req.Contains(sinkB.events, ChatStartedMessage{Type: "chat_started"})

	// And the session is symmetric with no residual pool membership
	req.Equal("b", e.users["a"].partner)
	req.Equal("a", e.users["b"].partner)
	req.Equal(statusPaired, e.users["a"].status)
	req.Equal(statusPaired, e.users["b"].status)
	req.False(e.pools.Contains("a"))
	req.False(e.pools.Contains("b"))
}

func TestFindMatch_NeverMatchesSelf(t *testing.T) {
	req := require.New(t)
	e := NewEngine()

	// A male seeking males is his own pool's perfect candidate
	sink := joinCouple(e, "a", GenderMale, PreferenceMale)

	req.NotContains(sink.events, ChatStartedMessage{Type: "chat_started"})
	req.Equal(statusWaiting, e.users["a"].status)
}

func TestFindMatch_SameGenderSeekersPair(t *testing.T) {
	req := require.New(t)
	e := NewEngine()

	joinCouple(e, "a", GenderMale, PreferenceMale)
	sinkB := joinCouple(e, "b", GenderMale, PreferenceMale)

	req.Contains(sinkB.events, ChatStartedMessage{Type: "chat_started"})
	req.Equal("a", e.users["b"].partner)
}

// The pairing rule only checks that the candidate's gender satisfies the
// seeker's preference; the candidate's own preference is not consulted. This
// test documents that one-sided behavior.
func TestFindMatch_CandidatePreferenceIsNotConsulted(t *testing.T) {
	req := require.New(t)
	e := NewEngine()

	// Given a waiting female whose own preference is other females
	joinCouple(e, "a", GenderFemale, PreferenceFemale)

	// When a male seeking females joins
	sinkB := joinCouple(e, "b", GenderMale, PreferenceFemale)

	// Then they are paired even though her preference excludes him
	req.Contains(sinkB.events, ChatStartedMessage{Type: "chat_started"})
	req.Equal("a", e.users["b"].partner)
	req.Equal("b", e.users["a"].partner)
}

func TestFindMatch_GroupPreferenceCannotBeServed(t *testing.T) {
	req := require.New(t)
	e := NewEngine()

	// roomType couple with a group preference never reaches the group
	// registry; the pairing engine answers with no_match_found
	sink := joinCouple(e, "a", GenderFemale, PreferenceGroup)

	req.Equal([]any{NoMatchFoundMessage{Type: "no_match_found"}}, sink.events)
	req.False(e.pools.Contains("a"))
	req.Equal(statusIdle, e.users["a"].status)
}

func TestFindMatch_OnlyEligibleCandidatesAreConsidered(t *testing.T) {
	req := require.New(t)
	e := NewEngine()

	// Two seekers wait in different pools
	joinCouple(e, "a", GenderFemale, PreferenceMale)
	joinCouple(e, "c", GenderMale, PreferenceMale)

	// c got matched with nobody: a sits in the female pool
	req.Equal(statusWaiting, e.users["c"].status)

	// A male seeking females must land on the female, never on c
	sinkB := joinCouple(e, "b", GenderMale, PreferenceFemale)

	req.Contains(sinkB.events, ChatStartedMessage{Type: "chat_started"})
	req.Equal("a", e.users["b"].partner)
	req.Equal(statusWaiting, e.users["c"].status)
}
