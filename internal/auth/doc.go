// Package auth provides authentication and authorisation for taskgate.
//
// It implements a 2-tier role model (user → admin) with:
//   - Argon2id password hashing (OWASP recommended parameters)
//   - Signed, time-bounded HS256 access tokens carrying subject and role
//   - A role gate composed into the HTTP middleware chain
//   - An ownership policy applied to individual task records
//
// The token model is deliberately stateless: any verifier holding the
// shared secret can validate a token without a database round-trip, and
// the bounded lifetime limits the exposure of a leaked token without
// revocation infrastructure. Claims are trusted once signature and expiry
// pass; the role is not re-checked against the database per request.
package auth
