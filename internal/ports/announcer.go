package ports

// Announcer tells the operator where the server can be reached.
type Announcer interface {
	Announce(url string) error
}
