package bitbucket

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by option validation and decoding. They are
// always wrapped with the offending value; match with errors.Is.
var (
	// ErrInvalidStateFilter is returned by CheckPRState before any
	// request is made when the state filter is not one of
	// ALL/OPEN/DECLINED/MERGED.
	ErrInvalidStateFilter = errors.New("invalid pull request state filter")

	// ErrInvalidReviewStatus is returned while decoding a reviewer
	// whose status string starts with something other than A/U/N.
	ErrInvalidReviewStatus = errors.New("invalid review status")

	// ErrInvalidPullRequestState is returned by the strict state parse
	// for anything other than OPEN/DECLINED/MERGED.
	ErrInvalidPullRequestState = errors.New("invalid pull request state")
)

// AuthError indicates the server rejected the credentials (HTTP 401).
type AuthError struct {
	BaseURL string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf(
		"authentication failed (401): check your username and token for %s",
		e.BaseURL,
	)
}

// IsAuthError reports whether err (or any error in its chain) is an AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}
