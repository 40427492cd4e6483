package domain

// Visibility rules: the admin observes every collection in full, a member
// observes only records addressed to or owned by them. Filtering never
// reorders; it subsets in the store's existing order.

// VisibleWorkLogs returns the subset of logs the given user may observe.
func VisibleWorkLogs(logs []WorkLogEntry, u User) []WorkLogEntry {
	if u.IsAdmin() {
		return logs
	}
	visible := make([]WorkLogEntry, 0, len(logs))
	for _, l := range logs {
		if l.TeamMemberID == u.UserID {
			visible = append(visible, l)
		}
	}
	return visible
}

// VisibleDirectives returns the subset of directives the given user may
// observe: all of them for the admin, only those targeting the user otherwise.
func VisibleDirectives(directives []Directive, u User) []Directive {
	if u.IsAdmin() {
		return directives
	}
	visible := make([]Directive, 0, len(directives))
	for _, d := range directives {
		if d.TargetUserID == u.UserID {
			visible = append(visible, d)
		}
	}
	return visible
}

// VisibleChatMessages applies no filtering: every authenticated user sees the
// full (bounded) channel history.
func VisibleChatMessages(messages []ChatMessage, _ User) []ChatMessage {
	return messages
}
