package main

// DisconnectChat handles an explicit leave. The connection stays open and the
// User record stays registered, so the client may join again. Calling it
// twice is harmless: the first call clears the session or group membership
// the second call would act on.
func (e *Engine) DisconnectChat(handle string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	u, ok := e.users[handle]
	if !ok {
		LogUserNotFound("disconnect_chat", handle)
		return
	}
	e.disconnectLocked(u)
}

// RemoveConnection handles a transport close: leave sequence first (it reads
// the User record to decide what to clean), then pool purge, then registry
// removal last.
func (e *Engine) RemoveConnection(handle string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if u, ok := e.users[handle]; ok {
		e.disconnectLocked(u)
	}
	e.pools.Remove(handle)
	delete(e.users, handle)
	delete(e.sinks, handle)
}

func (e *Engine) disconnectLocked(u *User) {
	if u.RoomType == RoomTypeGroup {
		if _, ok := u.GroupCode(); ok {
			e.leaveGroupLocked(u)
		}
		return
	}
	partnerHandle, ok := u.PartnerHandle()
	if !ok {
		return
	}
	u.status = statusIdle
	u.partner = ""
	if partner, exists := e.users[partnerHandle]; exists {
		partner.status = statusIdle
		partner.partner = ""
		e.emitLocked(partnerHandle, PartnerDisconnectedMessage{Type: "partner_disconnected"})
	}
	LogSessionClosed(u.Handle, partnerHandle)
}

func (e *Engine) leaveGroupLocked(u *User) {
	code := u.group
	u.status = statusIdle
	u.group = ""
	g, ok := e.groups[code]
	if !ok {
		LogGroupNotFound(code, u.Handle)
		return
	}
	if !g.removeHandle(u.Handle) {
		return
	}
	LogLeftGroup(code, u.Handle)
	if len(g.Members) == 0 {
		delete(e.groups, code)
		LogEmptyGroupRemoved(code)
		return
	}
	names := g.memberNames()
	for _, member := range g.Members {
		e.emitLocked(member, UserLeftGroupMessage{Type: "user_left_group", Username: u.Name})
		e.emitLocked(member, GroupMembersUpdateMessage{Type: "group_members_update", Members: names})
	}
}
