package preferences

// Store is a small string key-value store for client side preferences.
type Store interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}

const (
	LastSignupEmailKey = "last_signup_email"
	LastSignupAtKey    = "last_signup_at"
)
