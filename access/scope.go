// Package access resolves the read filter every dashboard list and
// export query runs under: superusers see all rows, everyone else only
// rows whose user_id matches their own. Booking lists are always scoped
// by the booking's user_id, never by the item owner's.
package access

import "gorm.io/gorm"

type Scope struct {
	UserID string
	All    bool
}

// Resolve maps a session's user id and superuser flag to a Scope.
// Callers with no profile row must pass isSuperuser=false (fail closed).
func Resolve(userID string, isSuperuser bool) Scope {
	return Scope{UserID: userID, All: isSuperuser}
}

// Apply is a GORM scope: chain it with db.Scopes(scope.Apply) so that
// dashboards and exports filter with the exact same condition.
func (s Scope) Apply(db *gorm.DB) *gorm.DB {
	if s.All {
		return db
	}
	return db.Where("user_id = ?", s.UserID)
}

// Allows reports whether a row owned by ownerID is visible under the
// scope. Used for single-row ownership checks on update/delete.
func (s Scope) Allows(ownerID string) bool {
	return s.All || ownerID == s.UserID
}
