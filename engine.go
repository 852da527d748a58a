package main

import (
	"math/rand"
	"sync"
	"time"
)

// EventSink is the outbound half of a connection as the engine sees it.
// *ClientConn implements it in production; tests substitute a recorder.
type EventSink interface {
	Send(event any) error
}

// Engine owns the connection registry, the waiting pools and the group
// registry. Every inbound event runs as one critical section under mu, so no
// handler ever observes a registry mid-update: in particular "remove from
// pool" and "create session" happen atomically and two concurrent seekers
// cannot claim the same waiting candidate.
type Engine struct {
	mu     sync.Mutex
	rand   *rand.Rand
	users  map[string]*User
	sinks  map[string]EventSink
	pools  *waitingPools
	groups map[string]*Group
}

func NewEngine() *Engine {
	return &Engine{
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		users:  make(map[string]*User),
		sinks:  make(map[string]EventSink),
		pools:  newWaitingPools(),
		groups: make(map[string]*Group),
	}
}

// Connect registers the outbound sink for a fresh connection. The User record
// only exists once the client sends join_chat.
func (e *Engine) Connect(handle string, sink EventSink) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sinks[handle] = sink
}

// JoinChat registers (or overwrites) the User for the handle and routes it to
// the pairing engine or the group registry based on roomType.
func (e *Engine) JoinChat(handle string, join JoinChatEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// A rejoining handle must not keep stale pool, session or group
	// membership behind its overwritten record.
	if prev, ok := e.users[handle]; ok {
		e.disconnectLocked(prev)
		e.pools.Remove(handle)
	}

	name := join.Username
	if name == "" {
		name = DefaultDisplayName(join.UserID)
	}
	roomType := join.RoomType
	if roomType == "" {
		roomType = RoomTypeCouple
	}
	u := &User{
		UserID:     join.UserID,
		Handle:     handle,
		Name:       name,
		Gender:     join.Gender,
		Preference: join.Preference,
		RoomType:   roomType,
		status:     statusIdle,
	}
	e.users[handle] = u
	LogJoinedChat(handle, string(roomType), string(join.Preference))

	if roomType == RoomTypeGroup {
		e.joinGroupLocked(u, join.GroupJoinMethod, join.GroupCode)
		return
	}
	e.findMatchLocked(u)
}

// emitLocked delivers one event to one handle, dropping it with a log line
// when the recipient is gone or the transport write fails.
func (e *Engine) emitLocked(handle string, event any) {
	sink, ok := e.sinks[handle]
	if !ok {
		LogRecipientUnreachable(handle, nil)
		return
	}
	if err := sink.Send(event); err != nil {
		LogRecipientUnreachable(handle, err)
	}
}

// GroupInfo is a read-only snapshot of one live group.
type GroupInfo struct {
	Code    string
	Members []string
}

// GroupCensus snapshots the group registry for the periodic monitor.
func (e *Engine) GroupCensus() []GroupInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	census := make([]GroupInfo, 0, len(e.groups))
	for _, g := range e.groups {
		census = append(census, GroupInfo{Code: g.Code, Members: g.memberNames()})
	}
	return census
}
