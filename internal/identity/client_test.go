package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"granazap/internal/config"

	"github.com/stretchr/testify/suite"
)

type IdentityClientTestSuite struct {
	suite.Suite
}

func TestIdentityClientSuite(t *testing.T) {
	suite.Run(t, new(IdentityClientTestSuite))
}

func (s *IdentityClientTestSuite) newClient(baseURL string, timeout time.Duration) *Client {
	return NewClient(&config.IdentityConfig{
		BaseURL:        baseURL,
		APIKey:         "anon-key",
		RequestTimeout: timeout,
		ResetRedirect:  "https://app.example.com/resetar-senha",
	})
}

func (s *IdentityClientTestSuite) TestSignIn_Success() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/auth/v1/token", r.URL.Path)
		s.Equal("password", r.URL.Query().Get("grant_type"))
		s.Equal("anon-key", r.Header.Get("apikey"))

		var body map[string]string
		s.NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("maria@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token": "tok-1",
			"token_type": "bearer",
			"expires_in": 3600,
			"user": {"id":"2b1f3c04-1111-4222-8333-444455556666","email":"maria@example.com"}
		}`))
	}))
	defer server.Close()

	client := s.newClient(server.URL, 2*time.Second)
	session, err := client.SignIn(context.Background(), "maria@example.com", "secret")

	s.NoError(err)
	s.Equal("tok-1", session.AccessToken)
	s.Equal("maria@example.com", session.User.Email)
}

func (s *IdentityClientTestSuite) TestSignIn_BadCredentials() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := s.newClient(server.URL, 2*time.Second)
	_, err := client.SignIn(context.Background(), "maria@example.com", "wrong")

	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *IdentityClientTestSuite) TestSignOut_SendsBearer() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/auth/v1/logout", r.URL.Path)
		s.Equal("Bearer tok-1", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := s.newClient(server.URL, 2*time.Second)
	s.NoError(client.SignOut(context.Background(), "tok-1"))
}

func (s *IdentityClientTestSuite) TestSignOut_RequiresToken() {
	client := s.newClient("http://localhost:0", 2*time.Second)
	s.ErrorIs(client.SignOut(context.Background(), ""), ErrSessionRequired)
}

func (s *IdentityClientTestSuite) TestGetUser() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.Equal("/auth/v1/user", r.URL.Path)
		w.Write([]byte(`{
			"id": "2b1f3c04-1111-4222-8333-444455556666",
			"email": "maria@example.com",
			"user_metadata": {"full_name": "Maria Silva", "phone": "556294537736"}
		}`))
	}))
	defer server.Close()

	client := s.newClient(server.URL, 2*time.Second)
	user, err := client.GetUser(context.Background(), "tok-1")

	s.NoError(err)
	s.Equal("maria@example.com", user.Email)
	s.Equal("Maria Silva", user.FullName())
	s.Equal("556294537736", user.MetadataPhone())
}

func (s *IdentityClientTestSuite) TestUpdatePassword() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPut, r.Method)
		s.Equal("/auth/v1/user", r.URL.Path)
		s.Equal("Bearer tok-1", r.Header.Get("Authorization"))

		var body map[string]string
		s.NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("new-secret", body["password"])

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := s.newClient(server.URL, 2*time.Second)
	s.NoError(client.UpdatePassword(context.Background(), "tok-1", "new-secret"))
}

func (s *IdentityClientTestSuite) TestRequestPasswordReset_CarriesRedirect() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/auth/v1/recover", r.URL.Path)
		s.Equal("https://app.example.com/resetar-senha", r.URL.Query().Get("redirect_to"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := s.newClient(server.URL, 2*time.Second)
	s.NoError(client.RequestPasswordReset(context.Background(), "maria@example.com"))
}

func (s *IdentityClientTestSuite) TestDeadlineMiss_ReturnsTypedError() {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := s.newClient(server.URL, 50*time.Millisecond)
	_, err := client.GetUser(context.Background(), "tok-1")

	s.Error(err)
	s.True(IsDeadline(err))

	var de *DeadlineError
	s.ErrorAs(err, &de)
	s.Equal("get_user", de.Operation)
}
