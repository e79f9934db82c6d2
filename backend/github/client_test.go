package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testFrom = time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	testTo   = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
)

const calendarJSON = `{
  "data": {
    "user": {
      "contributionsCollection": {
        "contributionCalendar": {
          "totalContributions": 42,
          "weeks": [
            {"contributionDays": [
              {"contributionCount": 3, "date": "2025-08-25"},
              {"contributionCount": 0, "date": "2025-08-26"}
            ]}
          ]
        }
      }
    }
  }
}`

func TestFetchContributionsParsesCalendar(t *testing.T) {
	var gotAuth string
	var gotBody graphQLRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(calendarJSON))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-token", server.URL)
	calendar, err := client.FetchContributions(context.Background(), "niggo", testFrom, testTo)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "niggo", gotBody.Variables["username"])
	assert.Equal(t, testFrom.Format(time.RFC3339), gotBody.Variables["from"])
	assert.Equal(t, testTo.Format(time.RFC3339), gotBody.Variables["to"])

	assert.Equal(t, 42, calendar.TotalContributions)
	require.Len(t, calendar.Weeks, 1)
	require.Len(t, calendar.Weeks[0].ContributionDays, 2)
	assert.Equal(t, 3, calendar.Weeks[0].ContributionDays[0].ContributionCount)
	assert.Equal(t, "2025-08-25", calendar.Weeks[0].ContributionDays[0].Date)
}

func TestFetchContributionsWithoutTokenSkipsRequest(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewClientWithBaseURL("", server.URL)
	assert.False(t, client.Authenticated())

	_, err := client.FetchContributions(context.Background(), "niggo", testFrom, testTo)
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Equal(t, 0, requests)
}

func TestFetchContributionsNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-token", server.URL)
	_, err := client.FetchContributions(context.Background(), "niggo", testFrom, testTo)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}

func TestFetchContributionsGraphQLError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": [{"message": "rate limited"}]}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-token", server.URL)
	_, err := client.FetchContributions(context.Background(), "niggo", testFrom, testTo)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestFetchContributionsMissingCalendar(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"user": null}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-token", server.URL)
	_, err := client.FetchContributions(context.Background(), "niggo", testFrom, testTo)

	assert.ErrorIs(t, err, ErrNoCalendar)
}

func TestFetchContributionsMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-token", server.URL)
	_, err := client.FetchContributions(context.Background(), "niggo", testFrom, testTo)

	require.Error(t, err)
}
