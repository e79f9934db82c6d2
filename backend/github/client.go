package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"portfolio/backend/models"
)

const (
	defaultGraphQLURL = "https://api.github.com/graphql"
	defaultUserAgent  = "portfolio-backend/0.1"
)

// ErrNoToken is returned when a fetch is attempted without a configured
// GitHub token.
var ErrNoToken = errors.New("github: GITHUB_TOKEN not configured")

// ErrNoCalendar is returned when the API responds successfully but the
// expected contribution calendar is missing from the payload.
var ErrNoCalendar = errors.New("github: no contribution data found")

// StatusError reports a non-2xx response from the GraphQL endpoint.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github: API returned %d", e.StatusCode)
}

const contributionsQuery = `
query($username: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $username) {
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            contributionCount
            date
          }
        }
      }
    }
  }
}`

type Client struct {
	client  *http.Client
	baseURL string
	token   string
}

func NewClient(token string) *Client {
	return &Client{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultGraphQLURL,
		token:   token,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a fake server.
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

// Authenticated reports whether a token is configured. Callers use this to
// decide between degraded mode and a real fetch without issuing a request.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

type graphQLRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type graphQLResponse struct {
	Data struct {
		User struct {
			ContributionsCollection struct {
				ContributionCalendar *models.ContributionCalendar `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// FetchContributions queries the contribution calendar for the given user
// over [from, to].
func (c *Client) FetchContributions(ctx context.Context, username string, from, to time.Time) (models.ContributionCalendar, error) {
	if c.token == "" {
		return models.EmptyCalendar(), ErrNoToken
	}

	body, err := json.Marshal(graphQLRequest{
		Query: contributionsQuery,
		Variables: map[string]string{
			"username": username,
			"from":     from.Format(time.RFC3339),
			"to":       to.Format(time.RFC3339),
		},
	})
	if err != nil {
		return models.EmptyCalendar(), fmt.Errorf("github: marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return models.EmptyCalendar(), fmt.Errorf("github: new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return models.EmptyCalendar(), fmt.Errorf("github: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.EmptyCalendar(), &StatusError{StatusCode: resp.StatusCode}
	}

	var parsed graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return models.EmptyCalendar(), fmt.Errorf("github: decode response: %w", err)
	}

	if len(parsed.Errors) > 0 {
		return models.EmptyCalendar(), fmt.Errorf("github: graphql error: %s", parsed.Errors[0].Message)
	}

	calendar := parsed.Data.User.ContributionsCollection.ContributionCalendar
	if calendar == nil {
		return models.EmptyCalendar(), ErrNoCalendar
	}

	return *calendar, nil
}
