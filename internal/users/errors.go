package users

import (
	"fmt"

	"github.com/chatci/chatci/internal/shared"
)

var (
	// ErrDuplicateUser is returned when adding an email that is already registered.
	ErrDuplicateUser = fmt.Errorf("users: duplicate user: %w", shared.ErrConflict)
	// ErrUserNotFound is returned when no user is registered under an email.
	ErrUserNotFound = fmt.Errorf("users: user not found: %w", shared.ErrNotFound)
	// ErrNoUsers is returned by List when the registry holds no users.
	ErrNoUsers = fmt.Errorf("users: no users registered: %w", shared.ErrEmpty)
)
