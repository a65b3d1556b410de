package auth

import (
	"github.com/google/uuid"
)

// User is the identity attached to an issued token. There is no user
// store: the sample login derives the user from the submitted email.
type User struct {
	ID    uuid.UUID
	Email string
}
