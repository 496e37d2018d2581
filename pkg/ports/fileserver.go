package ports

// FileServer abstracts the transient loopback HTTP listener that serves the
// outputs tree during a capture batch. Start/Shutdown follow an
// acquire-then-guaranteed-release discipline: a batch must call Shutdown when
// done so concurrent batches do not contend for the port.
type FileServer interface {
	// Start begins listening. It returns once the listener is accepting
	// connections.
	Start() error

	// BaseURL returns the root URL of the served tree, e.g.
	// "http://127.0.0.1:4141".
	BaseURL() string

	// Shutdown stops the listener and releases the port.
	Shutdown() error
}
