package bitbucket

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	auth := Authenticate(User{Username: "alice", Token: "s3cret"})

	require.Equal(t, "alice", auth.User.Username)
	require.Equal(t,
		base64.StdEncoding.EncodeToString([]byte("alice:s3cret")),
		auth.AuthToken,
	)

	decoded, err := base64.StdEncoding.DecodeString(auth.AuthToken)
	require.NoError(t, err)
	require.Equal(t, "alice:s3cret", string(decoded))
}
