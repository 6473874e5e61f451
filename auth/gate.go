package auth

// Decision is the outcome of the hydration gate for a protected view.
type Decision int

const (
	// Wait means the persisted session has not been read yet; no navigation
	// decision may be taken.
	Wait Decision = iota
	Allow
	RedirectLogin
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	default:
		return "wait"
	}
}

// Decide applies the hydration gate to the session snapshot.
func (s State) Decide() Decision {
	if !s.Mounted {
		return Wait
	}
	if !s.IsAuthenticated {
		return RedirectLogin
	}
	return Allow
}
