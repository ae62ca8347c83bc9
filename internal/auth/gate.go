package auth

// Gate checks a presented token against a declared set of acceptable
// roles. It is a small value object composed into the HTTP middleware
// chain by the api package; configuration lives in the value, not in
// closures. A Gate holds no mutable state and is safe for concurrent use.
type Gate struct {
	tokens *TokenService
	roles  []Role
}

// NewGate creates a Gate accepting the given roles. An empty role list
// means any authenticated identity passes.
func NewGate(tokens *TokenService, roles ...Role) Gate {
	return Gate{tokens: tokens, roles: roles}
}

// Check verifies the token and enforces the role restriction.
//
// Token failures surface as ErrTokenExpired or ErrTokenInvalid (both mean
// unauthenticated to the caller). A valid token whose role is not in the
// accepted set yields ErrForbidden alongside the claims, so callers can
// still log the rejected identity.
func (g Gate) Check(tokenString string) (*Claims, error) {
	claims, err := g.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	if len(g.roles) == 0 {
		return claims, nil
	}

	for _, r := range g.roles {
		if claims.Role == r {
			return claims, nil
		}
	}

	return claims, ErrForbidden
}
