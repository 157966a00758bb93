package domain

// Profile carries the fields the presentation layer renders on the
// settings screen.
type Profile struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Session is the read-only view of the session store. Profile is nil
// whenever LoggedIn is false.
type Session struct {
	LoggedIn bool     `json:"loggedIn"`
	Profile  *Profile `json:"profile,omitempty"`
}
