package events

// Credentials is the single admin login for the management view.
// The check is a plain comparison in process.
type Credentials struct {
	Username string
	Password string
}

// Authenticate reports whether username and password match.
func (c Credentials) Authenticate(username, password string) bool {
	if c.Username == "" {
		return false
	}
	return username == c.Username && password == c.Password
}
