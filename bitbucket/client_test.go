package bitbucket

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientSendsBasicAuthHeader(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"values":[],"isLastPage":true}`))
		},
	))
	defer ts.Close()

	auth := Authenticate(User{Username: "alice", Token: "tok"})
	client := NewClient(ts.URL+"/", auth)

	_, err := client.FetchUserPullRequests(context.Background(), Options{})
	require.NoError(t, err)

	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("alice:tok"))
	require.Equal(t, expected, gotAuth)
}

func TestClientReportsAuthError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		},
	))
	defer ts.Close()

	client := NewClient(ts.URL, Authenticate(User{Username: "alice", Token: "bad"}))

	_, err := client.FetchUserPullRequests(context.Background(), Options{})
	require.Error(t, err)
	require.True(t, IsAuthError(err))

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, ts.URL, authErr.BaseURL)
}

func TestClientParsesErrorEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(
				`{"errors":[{"message":"Repository api does not exist.",` +
					`"exceptionName":"NoSuchRepositoryException"}]}`,
			))
		},
	))
	defer ts.Close()

	client := NewClient(ts.URL, Authenticate(User{Username: "alice", Token: "tok"}))

	_, err := client.FetchRepoPullRequests(
		context.Background(),
		Repository{ProjectKey: "PROJ", Slug: "api"},
		Options{},
	)
	require.Error(t, err)
	require.False(t, IsAuthError(err))
	require.Contains(t, err.Error(), "Repository api does not exist.")
	require.Contains(t, err.Error(), "404")
}

func TestClientFailsOnMalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"values": [`))
		},
	))
	defer ts.Close()

	client := NewClient(ts.URL, Authenticate(User{Username: "alice", Token: "tok"}))

	_, err := client.FetchUserPullRequests(context.Background(), Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unmarshaling response")
}
