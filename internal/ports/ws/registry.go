package ws

import "github.com/google/uuid"

// registry binds session tokens to live connections. Tokens are the
// durable identity: a reconnect rebinds the token to a new connection
// without touching any game state. The registry is only ever touched
// from the dispatcher goroutine, so it needs no locking.
type registry struct {
	clients map[string]*client
}

func newRegistry() *registry {
	return &registry{clients: make(map[string]*client)}
}

// mint returns a fresh unguessable session token.
func (r *registry) mint() string {
	return uuid.NewString()
}

// bind associates a token with a connection, replacing any previous
// binding.
func (r *registry) bind(token string, c *client) {
	r.clients[token] = c
}

// rebind reports whether the token was known and, if so, binds it to
// the new connection. Unknown tokens are left untouched.
func (r *registry) rebind(token string, c *client) bool {
	if _, ok := r.clients[token]; !ok {
		return false
	}
	r.clients[token] = c
	return true
}

// lookup returns the connection bound to a token.
func (r *registry) lookup(token string) (*client, bool) {
	c, ok := r.clients[token]
	return c, ok
}
