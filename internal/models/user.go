package models

// UserRecord is everything stored per user. The username is the key of
// Document.Users, not a field, and is the sole identity credential:
// there is no password in the default scheme. Credential holds a
// bcrypt hash only when the password-backed authenticator is in use;
// documents written without it keep the legacy layout byte-for-byte.
type UserRecord struct {
	Joined     Date   `json:"joined"`
	Credential string `json:"credential,omitempty"`
}

// PublicUser is the user shape returned to clients.
type PublicUser struct {
	Username string `json:"username"`
	Joined   Date   `json:"joined"`
}
