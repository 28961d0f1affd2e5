package storefront

// User identifies the authenticated visitor.
type User struct {
	ID       string
	Username string
}

// Session reports the current authentication state. CurrentUser returns nil
// while the visitor is anonymous; AccessToken returns the bearer token the
// remote adapter should send (empty when anonymous).
type Session interface {
	CurrentUser() *User
	AccessToken() string
}

// Notifier is the user-facing notification surface. The stores call it for
// failures the visitor should see, such as a cart add that was rejected.
type Notifier interface {
	Notify(message string)
}

// NopNotifier discards every notification.
type NopNotifier struct{}

func (NopNotifier) Notify(string) {}
