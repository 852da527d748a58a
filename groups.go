package main

import (
	"slices"

	"github.com/samber/lo"
)

// Group is a code-addressed chat room. Members and Names are parallel lists:
// every insertion and removal touches both at the same index.
type Group struct {
	Code    string
	Members []string
	Names   []string
}

func (g *Group) add(handle, name string) {
	g.Members = append(g.Members, handle)
	g.Names = append(g.Names, name)
}

func (g *Group) removeHandle(handle string) bool {
	idx := lo.IndexOf(g.Members, handle)
	if idx < 0 {
		return false
	}
	g.Members = slices.Delete(g.Members, idx, idx+1)
	g.Names = slices.Delete(g.Names, idx, idx+1)
	return true
}

func (g *Group) memberNames() []string {
	return slices.Clone(g.Names)
}

func (e *Engine) joinGroupLocked(u *User, method, code string) {
	switch method {
	case "create":
		e.createGroupLocked(u)
	case "join":
		e.joinGroupByCodeLocked(u, code)
	case "random":
		e.joinRandomGroupLocked(u)
	default:
		LogInvalidJoinMethod(u.Handle, method)
	}
}

func (e *Engine) createGroupLocked(u *User) {
	var code string
	for {
		code = GenerateGroupCode()
		if _, exists := e.groups[code]; !exists {
			break
		}
	}
	g := &Group{Code: code, Members: []string{u.Handle}, Names: []string{u.Name}}
	e.groups[code] = g
	u.status = statusInGroup
	u.group = code
	LogCreatedGroup(code, u.Handle)
	e.emitLocked(u.Handle, ChatStartedMessage{Type: "chat_started", GroupCode: code})
	e.emitLocked(u.Handle, GroupMembersUpdateMessage{Type: "group_members_update", Members: g.memberNames()})
}

func (e *Engine) joinGroupByCodeLocked(u *User, rawCode string) {
	code := NormalizeGroupCode(rawCode)
	g, ok := e.groups[code]
	if !ok {
		// The requester is left without a room on purpose; the client decides
		// whether to retry with another code.
		LogGroupNotFound(code, u.Handle)
		e.emitLocked(u.Handle, GroupNotFoundMessage{Type: "group_not_found"})
		return
	}
	g.add(u.Handle, u.Name)
	u.status = statusInGroup
	u.group = code
	LogJoinedGroup(code, u.Handle)
	e.emitLocked(u.Handle, ChatStartedMessage{Type: "chat_started", GroupCode: code})
	names := g.memberNames()
	for _, member := range g.Members {
		e.emitLocked(member, GroupMembersUpdateMessage{Type: "group_members_update", Members: names})
		if member != u.Handle {
			e.emitLocked(member, UserJoinedGroupMessage{Type: "user_joined_group", Username: u.Name})
		}
	}
}

func (e *Engine) joinRandomGroupLocked(u *User) {
	available := lo.Filter(lo.Values(e.groups), func(g *Group, _ int) bool {
		return len(g.Members) > 0
	})
	if len(available) == 0 {
		e.createGroupLocked(u)
		return
	}
	g := available[e.rand.Intn(len(available))]
	e.joinGroupByCodeLocked(u, g.Code)
}
