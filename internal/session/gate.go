package session

// Decision is the outcome of a gate check for one navigation attempt.
type Decision int

const (
	// Render allows the requested view.
	Render Decision = iota
	// RedirectLogin means no usable token is stored.
	RedirectLogin
	// RedirectDashboard means the user is authenticated but lacks admin
	// rights for an admin-only view.
	RedirectDashboard
)

func (d Decision) String() string {
	switch d {
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect-login"
	case RedirectDashboard:
		return "redirect-dashboard"
	}
	return "unknown"
}

// Gate decides per navigation whether a protected view may render. It holds
// no state of its own: every check re-reads the store, so a logout elsewhere
// takes effect on the next navigation.
type Gate struct {
	store *Store
}

func NewGate(store *Store) *Gate {
	return &Gate{store: store}
}

// Check evaluates the stored credentials against a route's requirement.
func (g *Gate) Check(requiresAdmin bool) Decision {
	sess := g.store.Session()
	if !TokenValid(sess.Token) {
		return RedirectLogin
	}
	if requiresAdmin && !sess.IsAdmin {
		return RedirectDashboard
	}
	return Render
}

// TokenValid reports whether a stored token is usable. Older clients wrote
// the literal strings "null" and "undefined" into storage; treat those as
// absent.
func TokenValid(token string) bool {
	return token != "" && token != "null" && token != "undefined"
}
