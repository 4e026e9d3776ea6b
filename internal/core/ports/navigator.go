package ports

// Navigator is the view-layer surface the session guard steers. The browser
// original redirected between pages; a terminal front end switches screens
// or prints the corresponding notice. Implementations must be cheap and
// must not call back into the guard.
type Navigator interface {
	// ToLogin is fired when an unauthenticated caller hits a gated flow,
	// and after logout.
	ToLogin()
	// ToDashboard is fired when an authenticated caller lacks the required
	// role: a reduced-privilege landing, distinct from the login surface.
	ToDashboard()
	// Refresh is fired after bootstrap settles so the view can re-render
	// whatever depends on the session state.
	Refresh()
}
