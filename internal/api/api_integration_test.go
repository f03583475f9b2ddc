// internal/api/api_integration_test.go
package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "demobank/internal"
)

// newTestServer builds a fresh application (fresh in-memory state with the
// demo seed data) and an httptest server in front of its HTTP handler.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	t.Setenv("SESSION_SECRET", "integration-test-secret")

	testApp := app.NewApplication()
	require.NoError(t, testApp.Initialize(context.Background()))

	ts := httptest.NewServer(testApp.HTTPHandler)
	t.Cleanup(ts.Close)
	t.Cleanup(func() {
		_ = testApp.Shutdown(context.Background())
	})
	return ts
}

// newClient returns an HTTP client with a cookie jar so the session cookie
// set on login is carried on subsequent requests.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func makeRequest(t *testing.T, client *http.Client, method, url string, body io.Reader) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, string(respBody)
}

func login(t *testing.T, client *http.Client, baseURL, username, password string) (*http.Response, string) {
	t.Helper()
	body := fmt.Sprintf(`{"username": %q, "password": %q}`, username, password)
	return makeRequest(t, client, "POST", baseURL+"/api/login", strings.NewReader(body))
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, body := makeRequest(t, newClient(t), "GET", ts.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"status":"ok"`)
	assert.Contains(t, body, `"uptime"`)
}

func TestLoginFlow(t *testing.T) {
	ts := newTestServer(t)

	t.Run("InvalidCredentials", func(t *testing.T) {
		client := newClient(t)
		resp, body := login(t, client, ts.URL, "alice", "wrong")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, body, "Invalid credentials")
	})

	t.Run("UnknownUser", func(t *testing.T) {
		client := newClient(t)
		resp, body := login(t, client, ts.URL, "mallory", "password123")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, body, "Invalid credentials")
	})

	t.Run("SuccessfulLoginAndMe", func(t *testing.T) {
		client := newClient(t)
		resp, body := login(t, client, ts.URL, "alice", "password123")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var loginResp map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(body), &loginResp))
		assert.Equal(t, float64(1), loginResp["id"])
		assert.Equal(t, "alice", loginResp["username"])
		assert.Equal(t, "Alice Doe", loginResp["name"])

		respMe, bodyMe := makeRequest(t, client, "GET", ts.URL+"/api/me", nil)
		assert.Equal(t, http.StatusOK, respMe.StatusCode)
		assert.Contains(t, bodyMe, `"username":"alice"`)
	})

	t.Run("LogoutEndsSession", func(t *testing.T) {
		client := newClient(t)
		resp, _ := login(t, client, ts.URL, "alice", "password123")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		respOut, bodyOut := makeRequest(t, client, "POST", ts.URL+"/api/logout", nil)
		assert.Equal(t, http.StatusOK, respOut.StatusCode)
		assert.Contains(t, bodyOut, `"ok":true`)

		respMe, _ := makeRequest(t, client, "GET", ts.URL+"/api/me", nil)
		assert.Equal(t, http.StatusUnauthorized, respMe.StatusCode)
	})

	t.Run("UnauthenticatedRequestsGet401", func(t *testing.T) {
		client := newClient(t)
		for _, path := range []string{"/api/me", "/api/accounts", "/api/transfers"} {
			resp, body := makeRequest(t, client, "GET", ts.URL+path, nil)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "GET %s", path)
			assert.Contains(t, body, "Unauthorized")
		}
		resp, _ := makeRequest(t, client, "POST", ts.URL+"/api/transfer", strings.NewReader(`{}`))
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAccountsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	client := newClient(t)
	resp, _ := login(t, client, ts.URL, "alice", "password123")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respAcc, body := makeRequest(t, client, "GET", ts.URL+"/api/accounts", nil)
	require.Equal(t, http.StatusOK, respAcc.StatusCode)

	var accounts []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &accounts))
	require.Len(t, accounts, 2, "alice must only see her own accounts")

	assert.Equal(t, float64(1001), accounts[0]["id"])
	assert.Equal(t, "CHECKING", accounts[0]["type"])
	assert.Equal(t, float64(1002), accounts[1]["id"])
	assert.Equal(t, "SAVINGS", accounts[1]["type"])
	for _, a := range accounts {
		assert.Equal(t, float64(1), a["userId"])
	}
}

func TestTransferEndpoint(t *testing.T) {
	t.Run("SuccessfulTransfer", func(t *testing.T) {
		ts := newTestServer(t)
		client := newClient(t)
		resp, _ := login(t, client, ts.URL, "alice", "password123")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		respTr, body := makeRequest(t, client, "POST", ts.URL+"/api/transfer",
			strings.NewReader(`{"fromAccountId": 1001, "toAccountId": 2001, "amount": 200}`))
		require.Equal(t, http.StatusOK, respTr.StatusCode)

		var transferResp map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(body), &transferResp))
		assert.Equal(t, "SUCCESS", transferResp["status"])

		transfer := transferResp["transfer"].(map[string]interface{})
		assert.Equal(t, float64(1), transfer["id"])
		assert.Equal(t, float64(1001), transfer["fromAccountId"])
		assert.Equal(t, float64(2001), transfer["toAccountId"])

		// Balance must reflect the debit.
		_, accBody := makeRequest(t, client, "GET", ts.URL+"/api/accounts", nil)
		var accounts []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(accBody), &accounts))
		assert.Equal(t, "800", fmt.Sprint(accounts[0]["balance"]))
	})

	t.Run("StringAmountIsAccepted", func(t *testing.T) {
		ts := newTestServer(t)
		client := newClient(t)
		resp, _ := login(t, client, ts.URL, "alice", "password123")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		respTr, _ := makeRequest(t, client, "POST", ts.URL+"/api/transfer",
			strings.NewReader(`{"fromAccountId": 1001, "toAccountId": 2001, "amount": "50.25"}`))
		assert.Equal(t, http.StatusOK, respTr.StatusCode)
	})

	t.Run("ValidationFailures", func(t *testing.T) {
		ts := newTestServer(t)
		client := newClient(t)
		resp, _ := login(t, client, ts.URL, "alice", "password123")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		cases := []struct {
			name    string
			payload string
			message string
		}{
			{"NonNumericAmount", `{"fromAccountId": 1001, "toAccountId": 2001, "amount": "abc"}`, "Invalid transfer data"},
			{"ZeroAmount", `{"fromAccountId": 1001, "toAccountId": 2001, "amount": 0}`, "Invalid transfer data"},
			{"NegativeAmount", `{"fromAccountId": 1001, "toAccountId": 2001, "amount": -5}`, "Invalid transfer data"},
			{"MissingAmount", `{"fromAccountId": 1001, "toAccountId": 2001}`, "Invalid transfer data"},
			{"MissingFromAccount", `{"toAccountId": 2001, "amount": 10}`, "Invalid transfer data"},
			{"SourceNotOwned", `{"fromAccountId": 2001, "toAccountId": 1001, "amount": 10}`, "From account not found or not owned by user"},
			{"SourceMissing", `{"fromAccountId": 9999, "toAccountId": 2001, "amount": 10}`, "From account not found or not owned by user"},
			{"DestinationMissing", `{"fromAccountId": 1001, "toAccountId": 9999, "amount": 10}`, "To account not found"},
			{"InsufficientFunds", `{"fromAccountId": 1001, "toAccountId": 2001, "amount": 10000}`, "Insufficient funds"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				respTr, body := makeRequest(t, client, "POST", ts.URL+"/api/transfer", strings.NewReader(tc.payload))
				assert.Equal(t, http.StatusBadRequest, respTr.StatusCode)
				assert.Contains(t, body, tc.message)
			})
		}

		// None of the failures may have moved money.
		_, accBody := makeRequest(t, client, "GET", ts.URL+"/api/accounts", nil)
		var accounts []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(accBody), &accounts))
		assert.Equal(t, "1000", fmt.Sprint(accounts[0]["balance"]))
	})
}

func TestTransfersHistoryEndpoint(t *testing.T) {
	ts := newTestServer(t)

	alice := newClient(t)
	resp, _ := login(t, alice, ts.URL, "alice", "password123")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respTr, _ := makeRequest(t, alice, "POST", ts.URL+"/api/transfer",
		strings.NewReader(`{"fromAccountId": 1001, "toAccountId": 2001, "amount": 200}`))
	require.Equal(t, http.StatusOK, respTr.StatusCode)

	// Both sides of the transfer see it in their history.
	_, aliceBody := makeRequest(t, alice, "GET", ts.URL+"/api/transfers", nil)
	var aliceTransfers []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(aliceBody), &aliceTransfers))
	require.Len(t, aliceTransfers, 1)
	assert.Equal(t, float64(1), aliceTransfers[0]["id"])

	bob := newClient(t)
	resp, _ = login(t, bob, ts.URL, "bob", "password123")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, bobBody := makeRequest(t, bob, "GET", ts.URL+"/api/transfers", nil)
	var bobTransfers []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(bobBody), &bobTransfers))
	require.Len(t, bobTransfers, 1)
	assert.Equal(t, float64(2001), bobTransfers[0]["toAccountId"])
}
