package redis

const (
	// KeyPrefixSession is the prefix for anonymous session keys
	KeyPrefixSession = "bang:session:"
)

// SessionKey returns the Redis key for an anonymous session by ID
func SessionKey(id string) string {
	return KeyPrefixSession + id
}
