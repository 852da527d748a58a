package main

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

func UnmarshalJSON[T any](data []byte) T {
	var parsed T
	json.Unmarshal(data, &parsed)
	return parsed
}

var validate = validator.New()

var (
	ErrUndefinedType  = errors.New("incorrect type")
	ErrInvalidPayload = errors.New("invalid payload")
)

// Inbound events. Each websocket text frame is one envelope whose "type"
// field selects the struct below.

type JoinChatEvent struct {
	UserID          string     `json:"userId" validate:"required"`
	Username        string     `json:"username"`
	Gender          Gender     `json:"gender" validate:"required,oneof=male female"`
	Preference      Preference `json:"preference" validate:"required,oneof=male female group"`
	RoomType        RoomType   `json:"roomType" validate:"omitempty,oneof=couple group"`
	GroupCode       string     `json:"groupCode" validate:"omitempty,alphanum"`
	GroupJoinMethod string     `json:"groupJoinMethod" validate:"omitempty,oneof=create join random"`
}

type SendMessageEvent struct {
	Message     string `json:"message"`
	IsGroupChat bool   `json:"isGroupChat"`
	GroupCode   string `json:"groupCode"`
}

type TypingStartEvent struct {
	IsGroupChat bool   `json:"isGroupChat"`
	GroupCode   string `json:"groupCode"`
}

type TypingStopEvent struct {
	IsGroupChat bool   `json:"isGroupChat"`
	GroupCode   string `json:"groupCode"`
}

type DisconnectChatEvent struct{}

// Outbound events.

type ChatStartedMessage struct {
	Type      string `json:"type"`
	GroupCode string `json:"groupCode,omitempty"`
}

type WaitingForMatchMessage struct {
	Type string `json:"type"`
}

type NoMatchFoundMessage struct {
	Type string `json:"type"`
}

type ChatMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Sender  string `json:"sender"`
}

// Username is set on the group variants only; in a couple chat there is a
// single possible sender, so the indicator carries no attribution.
type TypingStartedMessage struct {
	Type     string `json:"type"`
	Username string `json:"username,omitempty"`
}

type TypingStoppedMessage struct {
	Type     string `json:"type"`
	Username string `json:"username,omitempty"`
}

type PartnerDisconnectedMessage struct {
	Type string `json:"type"`
}

type GroupMembersUpdateMessage struct {
	Type    string   `json:"type"`
	Members []string `json:"members"`
}

type UserJoinedGroupMessage struct {
	Type     string `json:"type"`
	Username string `json:"username"`
}

type UserLeftGroupMessage struct {
	Type     string `json:"type"`
	Username string `json:"username"`
}

type GroupNotFoundMessage struct {
	Type string `json:"type"`
}
