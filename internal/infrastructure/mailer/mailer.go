// Package mailer sends transactional mail through the provider's HTTP
// API.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"text/template"
	"time"

	jsoniter "github.com/json-iterator/go"

	"harbour-market/internal/domain/entity"
	"harbour-market/pkg/httpx"
	"harbour-market/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const logFieldMaxLen = 2048

type apiKeyAuthenticator struct {
	key string
}

func (a apiKeyAuthenticator) Authenticate(context.Context) error { return nil }
func (a apiKeyAuthenticator) BearerToken() string                { return a.key }

type Client struct {
	baseURL    string
	from       string
	httpClient *http.Client
}

func NewClient(baseURL, from, apiKey string, timeout time.Duration) *Client {
	transport := httpx.NewLoggingRoundTripper(
		httpx.NewAuthBearerRoundTripper(http.DefaultTransport, apiKeyAuthenticator{key: apiKey}),
		httpx.WithLogFieldMaxLen(logFieldMaxLen),
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
	)

	return &Client{
		baseURL: baseURL,
		from:    from,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (c *Client) Send(ctx context.Context, msg entity.EmailMessage) error {
	subject, body, err := render(msg)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      msg.To,
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, logFieldMaxLen))
		return fmt.Errorf("mail provider replied %d: %s", resp.StatusCode, respBody)
	}

	return nil
}

func render(msg entity.EmailMessage) (subject, body string, err error) {
	var subjectTmpl, bodyTmpl *template.Template

	switch msg.Kind {
	case entity.EmailKindBidOutcome:
		subjectTmpl, bodyTmpl = bidOutcomeSubject, bidOutcomeBody
	case entity.EmailKindQuoteAnswer:
		subjectTmpl, bodyTmpl = quoteAnswerSubject, quoteAnswerBody
	default:
		return "", "", fmt.Errorf("unknown email kind %q", msg.Kind)
	}

	var subjectBuf, bodyBuf bytes.Buffer

	if err = subjectTmpl.Execute(&subjectBuf, msg); err != nil {
		return "", "", fmt.Errorf("subjectTmpl.Execute: %w", err)
	}

	if err = bodyTmpl.Execute(&bodyBuf, msg); err != nil {
		return "", "", fmt.Errorf("bodyTmpl.Execute: %w", err)
	}

	return subjectBuf.String(), bodyBuf.String(), nil
}
