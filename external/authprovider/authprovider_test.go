package authprovider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/lifeline-bd/lifeline-api/external/authprovider"
)

var userID = uuid.MustParse("5f1f7c0e-3f4a-4a55-9a0e-111111111111")

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestSignIn(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon", r.Header.Get("apikey"))

		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_grant"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"access_token":  "access",
			"refresh_token": "refresh",
			"token_type":    "bearer",
			"expires_in":    3600,
			"user":          map[string]interface{}{"id": userID, "email": body["email"]},
		})
	}))
	defer ts.Close()

	c := authprovider.New(ts.URL, "anon")

	session, err := c.SignIn(context.Background(), "donor@example.com", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "access", session.AccessToken)
	assert.Equal(t, "refresh", session.RefreshToken)
	assert.Equal(t, userID, session.User.ID)
	assert.Equal(t, "donor@example.com", session.User.Email)

	_, err = c.SignIn(context.Background(), "donor@example.com", "wrong")
	assert.Equal(t, authprovider.ErrInvalidCredentials, err)
}

func TestSignUp(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)

		switch body["email"] {
		case "taken@example.com":
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"msg": "User already registered"})
		case "session@example.com":
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"access_token": "access",
				"user":         map[string]interface{}{"id": userID, "email": body["email"]},
			})
		default:
			writeJSON(w, http.StatusOK, map[string]interface{}{"id": userID, "email": body["email"]})
		}
	}))
	defer ts.Close()

	c := authprovider.New(ts.URL, "anon")

	user, err := c.SignUp(context.Background(), "new@example.com", "secret", map[string]interface{}{"role": "donor"})
	assert.NoError(t, err)
	assert.Equal(t, userID, user.ID)

	user, err = c.SignUp(context.Background(), "session@example.com", "secret", nil)
	assert.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "session@example.com", user.Email)

	_, err = c.SignUp(context.Background(), "taken@example.com", "secret", nil)
	assert.Equal(t, authprovider.ErrUserExists, err)
}

func TestGetUser(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "invalid JWT"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"id": userID, "email": "donor@example.com"})
	}))
	defer ts.Close()

	c := authprovider.New(ts.URL, "anon")

	user, err := c.GetUser(context.Background(), "good")
	assert.NoError(t, err)
	assert.Equal(t, userID, user.ID)

	_, err = c.GetUser(context.Background(), "bad")
	assert.Equal(t, authprovider.ErrInvalidToken, err)
}
