package models

// Permissions is the singleton admin configuration document. A user is an
// administrator when their auth subject id appears in AdminUserIDs.
type Permissions struct {
	AdminUserIDs []string `firestore:"adminUserIds" json:"adminUserIds"`
}

// IsAdminUser reports whether the given auth subject is listed.
func (p Permissions) IsAdminUser(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range p.AdminUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
