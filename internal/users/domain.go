package users

// Well-known role labels. Roles form an open set; any other label is accepted.
const (
	RoleStudent       = "Student"
	RoleTeacher       = "Teacher"
	RoleAdministrator = "Administrator"
)

// Status is the rendered access state of a user.
type Status string

const (
	// StatusActive marks a user that may use the system.
	StatusActive Status = "Active"
	// StatusBlocked marks a user whose access has been blocked.
	StatusBlocked Status = "Blocked"
)

// User holds the identity and access flag of one registered user.
// Identity fields are fixed at creation; only the blocked flag changes.
type User struct {
	name    string
	email   string
	role    string
	blocked bool
}

func newUser(name, email, role string) *User {
	return &User{name: name, email: email, role: role}
}

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the identity key.
func (u *User) Email() string { return u.email }

// Role returns the role label.
func (u *User) Role() string { return u.role }

// Blocked reports whether the user is blocked.
func (u *User) Blocked() bool { return u.blocked }

// Block marks the user as blocked. Blocking twice is a no-op.
func (u *User) Block() { u.blocked = true }

// Unblock returns the user to the active state.
func (u *User) Unblock() { u.blocked = false }

// Status reports the access state derived from the blocked flag.
func (u *User) Status() Status {
	if u.blocked {
		return StatusBlocked
	}
	return StatusActive
}

// Entry is a read-only snapshot of a user as returned by the registry.
type Entry struct {
	Name   string
	Email  string
	Role   string
	Status Status
}

func (u *User) entry() Entry {
	return Entry{Name: u.name, Email: u.email, Role: u.role, Status: u.Status()}
}
