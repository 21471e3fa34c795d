package domain

// Identity is the authenticated caller of a request.
// Role is taken from the session token, so role changes apply on next login.
type Identity struct {
	UserID string
	Role   Role
	User   *User
}

// IsAdmin reports whether the caller holds the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// Owns reports whether the caller is the given owner.
func (i *Identity) Owns(ownerID string) bool {
	return i != nil && i.UserID != "" && i.UserID == ownerID
}
