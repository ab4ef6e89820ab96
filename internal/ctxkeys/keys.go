// Package ctxkeys defines typed context keys shared between middleware and handlers.
// Both packages import this one for context key types, avoiding an import cycle.
package ctxkeys

// Key is a typed string used as context key to prevent collisions.
type Key string

const (
	UserID   Key = "userID"
	UserRole Key = "userRole"
)

// RoleLevel maps role names to permission levels. Staff can print documents
// and view history; admin additionally manages the vehicle master and users.
var RoleLevel = map[string]int{
	"staff": 1,
	"admin": 2,
}
