package auth

// CanAccess decides whether an authenticated identity may operate on a
// record owned by ownerID: admins always may, everyone else only on their
// own records. No other conditions apply.
//
// Handlers must establish that the record exists (and report not-found)
// before consulting this policy, so that non-owners cannot probe for
// record existence through differing responses.
func CanAccess(claims *Claims, ownerID string) bool {
	if claims == nil {
		return false
	}
	return claims.Role == RoleAdmin || claims.Subject == ownerID
}
