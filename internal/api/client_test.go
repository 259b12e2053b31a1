package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, zerolog.Nop()), srv
}

func TestFetchPostFound(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/post/42", r.URL.Path)
		json.NewEncoder(w).Encode(Post{ID: "42", Title: "hello", Author: Author{Username: "bob"}})
	})
	defer srv.Close()

	post, err := c.FetchPost(context.Background(), "42")
	require.NoError(t, err)
	require.NotNil(t, post)
	require.Equal(t, "hello", post.Title)
	require.Equal(t, "bob", post.Author.Username)
}

func TestFetchPostFalsyBody(t *testing.T) {
	// the backend answers false/null/"" for absent resources, never a 404
	for _, body := range []string{"false", "null", `""`, ""} {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})
		post, err := c.FetchPost(context.Background(), "42")
		srv.Close()
		require.NoError(t, err, "body %q", body)
		require.Nil(t, post, "body %q must read as absent", body)
	}
}

func TestSavePostSendsToken(t *testing.T) {
	var got map[string]string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/post/42/edit", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		json.NewDecoder(r.Body).Decode(&got)
	})
	defer srv.Close()

	require.NoError(t, c.SavePost(context.Background(), "42", "t", "b", "tok"))
	require.Equal(t, map[string]string{"title": "t", "body": "b", "token": "tok"}, got)
}

func TestDeletePostRequiresSuccessMarker(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.Write([]byte(`"Success"`))
	})
	defer srv.Close()
	require.NoError(t, c.DeletePost(context.Background(), "42", "tok"))

	c2, srv2 := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"nope"`))
	})
	defer srv2.Close()
	require.Error(t, c2.DeletePost(context.Background(), "42", "tok"))
}

func TestLoginRejectedIsNilNil(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("false"))
	})
	defer srv.Close()

	user, err := c.Login(context.Background(), "bob", "wrong")
	require.NoError(t, err, "a rejected login is not a transport failure")
	require.Nil(t, user)
}

func TestLoginAccepted(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		require.Equal(t, "bob", creds["username"])
		json.NewEncoder(w).Encode(User{Username: "bob", Token: "tok"})
	})
	defer srv.Close()

	user, err := c.Login(context.Background(), "bob", "pw")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "tok", user.Token)
}

func TestSearchRequestShape(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		require.Equal(t, "dogs", body["searchTerm"])
		json.NewEncoder(w).Encode([]Post{{ID: "1"}, {ID: "2"}})
	})
	defer srv.Close()

	results, err := c.Search(context.Background(), "dogs")
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestNonSuccessStatusIsStatusError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	_, err := c.FetchPost(context.Background(), "42")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestContextCancelAborts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
	defer srv.Close()

	_, err := c.FetchPost(ctx, "42")
	require.Error(t, err)
	require.True(t, errors.Is(err, context.Canceled))
}
