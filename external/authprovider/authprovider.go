package authprovider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const logPrefix = "authprovider"

var (
	ErrInvalidCredentials = fmt.Errorf("invalid login credentials")
	ErrInvalidToken       = fmt.Errorf("invalid access token")
	ErrUserExists         = fmt.Errorf("user already registered")
)

type User struct {
	ID           uuid.UUID              `json:"id"`
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
}

type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

type errorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
	Message     string `json:"msg"`
}

func (e errorResponse) String() string {
	for _, s := range []string{e.Description, e.Message, e.Error} {
		if s != "" {
			return s
		}
	}
	return "unknown error"
}

// Provider - interface of the hosted identity provider
type Provider interface {
	SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) (User, error)
	SignIn(ctx context.Context, email, password string) (Session, error)
	GetUser(ctx context.Context, accessToken string) (User, error)
}

type Client struct {
	httpClient *resty.Client
}

func New(baseURL, anonKey string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("apikey", anonKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{httpClient: client}
}

func (c *Client) SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) (User, error) {
	var result struct {
		User
		Session *User `json:"user"`
	}
	var failure errorResponse

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"email":    email,
			"password": password,
			"data":     metadata,
		}).
		SetResult(&result).
		SetError(&failure).
		Post("/auth/v1/signup")
	if err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Error("sign up")
		return User{}, err
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated:
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if failure.String() == "User already registered" {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("sign up rejected: %s", failure)
	default:
		return User{}, fmt.Errorf("sign up failed with status %d: %s", resp.StatusCode(), failure)
	}

	// the provider returns a session when email confirmation is disabled
	if result.Session != nil {
		return *result.Session, nil
	}
	return result.User, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	var session Session
	var failure errorResponse

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{
			"email":    email,
			"password": password,
		}).
		SetResult(&session).
		SetError(&failure).
		Post("/auth/v1/token")
	if err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Error("sign in")
		return Session{}, err
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return session, nil
	case http.StatusBadRequest, http.StatusUnauthorized:
		return Session{}, ErrInvalidCredentials
	default:
		return Session{}, fmt.Errorf("sign in failed with status %d: %s", resp.StatusCode(), failure)
	}
}

func (c *Client) GetUser(ctx context.Context, accessToken string) (User, error) {
	var user User

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&user).
		Get("/auth/v1/user")
	if err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Error("get user")
		return User{}, err
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return user, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return User{}, ErrInvalidToken
	default:
		return User{}, fmt.Errorf("get user failed with status %d", resp.StatusCode())
	}
}
