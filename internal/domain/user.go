package domain

// User is a registered account. PasswordHash holds the bcrypt hash, never plaintext,
// and is never serialized to clients.
type User struct {
	ID           string `json:"_id"`
	UserName     string `json:"userName"`
	PasswordHash string `json:"-"`
	EmailAddress string `json:"emailAddress"`
}
