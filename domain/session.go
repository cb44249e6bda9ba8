package domain

// SessionState is the authentication state machine value. Exactly one value
// holds at a time, process-wide.
type SessionState int

const (
	// SessionAnonymous means no credentials are held.
	SessionAnonymous SessionState = iota
	// SessionBootstrapping means credentials are held and identity resolution
	// is in flight.
	SessionBootstrapping
	// SessionAuthenticated means a live identity has been resolved.
	SessionAuthenticated
	// SessionFailed means the last login attempt failed.
	SessionFailed
)

func (s SessionState) String() string {
	switch s {
	case SessionAnonymous:
		return "anonymous"
	case SessionBootstrapping:
		return "bootstrapping"
	case SessionAuthenticated:
		return "authenticated"
	case SessionFailed:
		return "failed"
	default:
		return "unknown"
	}
}
