package main

import (
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/gobwas/ws/wsutil"
)

// ClientConn wraps one live websocket connection. Reads happen from the
// connection's own handler goroutine; writes can come from any handler doing
// fan-out, so they are serialized by a mutex. Delivery is fire-and-forget: a
// failed write is the caller's signal that the recipient is unreachable,
// nothing is queued or retried.
type ClientConn struct {
	conn net.Conn
	mu   sync.Mutex
}

func NewClientConn(conn net.Conn) *ClientConn {
	return &ClientConn{conn: conn}
}

func (c *ClientConn) Send(event any) error {
	encoded, _ := json.Marshal(event)
	c.mu.Lock()
	defer c.mu.Unlock()
	return wsutil.WriteServerText(c.conn, encoded)
}

// ReadEvent returns one of the inbound event structs from events.go.
func (c *ClientConn) ReadEvent() (any, error) {
	msg, err := wsutil.ReadClientText(c.conn)
	if err != nil {
		return nil, err
	}
	envelope := UnmarshalJSON[struct {
		Type string `json:"type"`
	}](msg)
	switch envelope.Type {
	case "join_chat":
		join := UnmarshalJSON[JoinChatEvent](msg)
		if err := validate.Struct(join); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
		}
		return join, nil
	case "send_message":
		return UnmarshalJSON[SendMessageEvent](msg), nil
	case "typing_start":
		return UnmarshalJSON[TypingStartEvent](msg), nil
	case "typing_stop":
		return UnmarshalJSON[TypingStopEvent](msg), nil
	case "disconnect_chat":
		return DisconnectChatEvent{}, nil
	default:
		return nil, ErrUndefinedType
	}
}
