package bitbucket

import "encoding/base64"

// User holds the credentials for a Bitbucket account: the username and
// an HTTP access token (or password) used for Basic auth.
type User struct {
	Username string
	Token    string
}

// AuthenticatedUser wraps a User together with its precomputed
// Basic-auth token.
type AuthenticatedUser struct {
	User      User
	AuthToken string
}

// Authenticate derives the Basic-auth token for the user. It performs
// no I/O and no credential validation; a bad token surfaces later as an
// AuthError from the first request.
func Authenticate(u User) AuthenticatedUser {
	raw := u.Username + ":" + u.Token
	return AuthenticatedUser{
		User:      u,
		AuthToken: base64.StdEncoding.EncodeToString([]byte(raw)),
	}
}
