package main

// SendMessage relays one chat message to the sender's partner or group.
// Messages to absent partners or unknown groups are dropped with a warning;
// nothing is ever queued for later delivery.
func (e *Engine) SendMessage(handle string, msg SendMessageEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	u, ok := e.users[handle]
	if !ok {
		LogUserNotFound("send_message", handle)
		return
	}
	if msg.IsGroupChat {
		g, ok := e.resolveGroupLocked(u, msg.GroupCode)
		if !ok {
			return
		}
		e.broadcastGroupLocked(g, handle, ChatMessage{Type: "chat_message", Message: msg.Message, Sender: u.Name})
		return
	}
	partner, ok := u.PartnerHandle()
	if !ok {
		LogPartnerMissing(handle)
		return
	}
	e.emitLocked(partner, ChatMessage{Type: "chat_message", Message: msg.Message, Sender: u.Name})
}

func (e *Engine) TypingStart(handle string, evt TypingStartEvent) {
	e.typing(handle, evt.IsGroupChat, evt.GroupCode, true)
}

func (e *Engine) TypingStop(handle string, evt TypingStopEvent) {
	e.typing(handle, evt.IsGroupChat, evt.GroupCode, false)
}

// typing follows the same resolution rules as SendMessage but carries no
// content. The group variant names the typist so the UI can attribute the
// indicator; the couple variant leaves it out.
func (e *Engine) typing(handle string, isGroup bool, groupCode string, started bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	u, ok := e.users[handle]
	if !ok {
		return
	}
	if isGroup {
		g, ok := e.resolveGroupLocked(u, groupCode)
		if !ok {
			return
		}
		e.broadcastGroupLocked(g, handle, typingMessage(started, u.Name))
		return
	}
	partner, ok := u.PartnerHandle()
	if !ok {
		return
	}
	e.emitLocked(partner, typingMessage(started, ""))
}

func typingMessage(started bool, username string) any {
	if started {
		return TypingStartedMessage{Type: "typing_started", Username: username}
	}
	return TypingStoppedMessage{Type: "typing_stopped", Username: username}
}

// resolveGroupLocked prefers the explicit code from the event and falls back
// to the sender's current group.
func (e *Engine) resolveGroupLocked(u *User, rawCode string) (*Group, bool) {
	code := rawCode
	if code == "" {
		code = u.group
	}
	g, ok := e.groups[NormalizeGroupCode(code)]
	if !ok {
		LogGroupNotFound(code, u.Handle)
		return nil, false
	}
	return g, true
}

func (e *Engine) broadcastGroupLocked(g *Group, except string, event any) {
	for _, member := range g.Members {
		if member == except {
			continue
		}
		e.emitLocked(member, event)
	}
}
