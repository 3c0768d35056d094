package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

const logPrefix = "mailer"

type Message struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// Mailer - interface for sending transactional emails
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

type Client struct {
	httpClient *resty.Client
	from       string
}

func New(baseURL, apiKey, from string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: client,
		from:       from,
	}
}

func (c *Client) Send(ctx context.Context, m Message) error {
	if len(m.To) == 0 {
		return fmt.Errorf("no recipient")
	}

	var result struct {
		ID string `json:"id"`
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"from":    c.from,
			"to":      m.To,
			"subject": m.Subject,
			"text":    m.Text,
		}).
		SetResult(&result).
		Post("/emails")
	if err != nil {
		return err
	}

	if resp.IsError() {
		return fmt.Errorf("send email failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"id":     result.ID,
		"to":     m.To,
	}).Info("email sent")

	return nil
}

// LogMailer writes emails to the log instead of delivering them
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, m Message) error {
	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"to":      m.To,
		"subject": m.Subject,
	}).Info("mock email")
	return nil
}
