package entity

// SessionState is the tri-state snapshot of the session store that the access
// gate consumes: exactly one of resolving, principal-present or
// principal-absent holds at a time. While Resolving is true the Principal
// field is not authoritative and must be ignored.
type SessionState struct {
	Resolving bool
	Principal *Principal
}

// ResolvingSession returns the state observed while the session store is still
// resolving the current identity.
func ResolvingSession() SessionState {
	return SessionState{Resolving: true}
}

// AnonymousSession returns the state for a session with no principal. Session
// resolution failures collapse into this state as well, indistinguishable from
// "never logged in".
func AnonymousSession() SessionState {
	return SessionState{}
}

// AuthenticatedSession returns the state for a resolved principal.
func AuthenticatedSession(p *Principal) SessionState {
	return SessionState{Principal: p}
}

// Authenticated reports whether a resolved principal is present.
func (s SessionState) Authenticated() bool {
	return !s.Resolving && s.Principal != nil
}
