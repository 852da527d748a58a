package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendMessage_CoupleDeliversToPartnerOnly(t *testing.T) {
	req := require.New(t)
	e := NewEngine()
	sinkA := joinCouple(e, "a", GenderFemale, PreferenceMale)
	sinkB := joinCouple(e, "b", GenderMale, PreferenceFemale)

	e.SendMessage("a", SendMessageEvent{Message: "hello"})

	req.Contains(sinkB.events, ChatMessage{Type: "chat_message", Message: "hello", Sender: "a"})
	req.Empty(eventsOf[ChatMessage](sinkA))
}

func TestSendMessage_WithoutPartnerIsDropped(t *testing.T) {
	req := require.New(t)
	e := NewEngine()
	sink := joinCouple(e, "a", GenderFemale, PreferenceMale)

	e.SendMessage("a", SendMessageEvent{Message: "anyone there"})

	req.Empty(eventsOf[ChatMessage](sink))
}

func TestSendMessage_UnknownHandleIsDropped(t *testing.T) {
	e := NewEngine()
	e.SendMessage("ghost", SendMessageEvent{Message: "boo"})
}

func TestSendMessage_GroupFansOutExceptSender(t *testing.T) {
	req := require.New(t)
	e := NewEngine()
	sinkA := joinGroup(e, "a", "create", "")
	code := createdGroupCode(t, sinkA)
	sinkB := joinGroup(e, "b", "join", code)
	sinkC := joinGroup(e, "c", "join", code)

	e.SendMessage("b", SendMessageEvent{Message: "hi all", IsGroupChat: true, GroupCode: code})

	want := ChatMessage{Type: "chat_message", Message: "hi all", Sender: "b"}
	req.Contains(sinkA.events, want)
	req.Contains(sinkC.events, want)
	req.NotContains(sinkB.events, want)
}

func TestSendMessage_GroupFallsBackToSendersGroup(t *testing.T) {
	req := require.New(t)
	e := NewEngine()
	sinkA := joinGroup(e, "a", "create", "")
	code := createdGroupCode(t, sinkA)
	joinGroup(e, "b", "join", code)

	// No code in the event: the sender's own group is used
	e.SendMessage("b", SendMessageEvent{Message: "ping", IsGroupChat: true})

	req.Contains(sinkA.events, ChatMessage{Type: "chat_message", Message: "ping", Sender: "b"})
}

func TestSendMessage_UnknownGroupIsDropped(t *testing.T) {
	req := require.New(t)
	e := NewEngine()
	sink := joinCouple(e, "a", GenderFemale, PreferenceMale)

	e.SendMessage("a", SendMessageEvent{Message: "lost", IsGroupChat: true, GroupCode: "ZZZZZZ"})

	req.Empty(eventsOf[ChatMessage](sink))
}

func TestTyping_CoupleOmitsName(t *testing.T) {
	req := require.New(t)
	e := NewEngine()
	sinkA := joinCouple(e, "a", GenderFemale, PreferenceMale)
	joinCouple(e, "b", GenderMale, PreferenceFemale)

	e.TypingStart("b", TypingStartEvent{})
	e.TypingStop("b", TypingStopEvent{})

	req.Contains(sinkA.events, TypingStartedMessage{Type: "typing_started"})
	req.Contains(sinkA.events, TypingStoppedMessage{Type: "typing_stopped"})
}

func TestTyping_GroupCarriesName(t *testing.T) {
	req := require.New(t)
	e := NewEngine()
	sinkA := joinGroup(e, "a", "create", "")
	code := createdGroupCode(t, sinkA)
	sinkB := joinGroup(e, "b", "join", code)

	e.TypingStart("b", TypingStartEvent{IsGroupChat: true, GroupCode: code})

	req.Contains(sinkA.events, TypingStartedMessage{Type: "typing_started", Username: "b"})
	req.Empty(eventsOf[TypingStartedMessage](sinkB))
}
