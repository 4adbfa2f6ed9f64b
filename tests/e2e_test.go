package tests

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type smartBudgetContainer struct {
	testcontainers.Container
	URI string
}

func setupSmartBudget(ctx context.Context, t *testing.T) (*smartBudgetContainer, error) {
	natPort := nat.Port("8080/tcp")

	req := testcontainers.ContainerRequest{
		FromDockerfile: testcontainers.FromDockerfile{
			Context:    "../",
			Dockerfile: "Dockerfile",
		},
		ExposedPorts: []string{string(natPort)},
		Env: map[string]string{
			"PORT":           "8080",
			"GIN_MODE":       "release",
			"DATABASE_URL":   "sqlite::memory:",
			"SESSION_SECRET": "test-session-secret",
			"TOKEN_SECRET":   "test-token-secret",
			"TEST_MODE":      "true",
		},
		WaitingFor: wait.ForHTTP("/login/").
			WithPort(natPort).
			WithStatusCodeMatcher(func(status int) bool {
				return status == 200
			}).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	var sbC *smartBudgetContainer
	if container != nil {
		sbC = &smartBudgetContainer{Container: container}
	}
	if err != nil {
		return sbC, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return sbC, err
	}

	mappedPort, err := container.MappedPort(ctx, natPort)
	if err != nil {
		return sbC, err
	}

	sbC.URI = fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
	return sbC, nil
}

func postForm(t *testing.T, client *http.Client, uri string, form url.Values) *http.Response {
	t.Helper()
	resp, err := client.PostForm(uri, form)
	require.NoError(t, err)
	return resp
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestE2E_RegisterLoginTransfer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	sbC, err := setupSmartBudget(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, sbC)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	// register; TEST_MODE auto-verifies so login works immediately
	resp := postForm(t, client, sbC.URI+"/register/", url.Values{
		"username":  {"alice"},
		"email":     {"alice@example.com"},
		"password1": {"correct horse"},
		"password2": {"correct horse"},
	})
	body := bodyString(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Check your inbox")

	resp = postForm(t, client, sbC.URI+"/login/", url.Values{
		"email":    {"alice@example.com"},
		"password": {"correct horse"},
	})
	body = bodyString(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Hello, alice")

	// two accounts: ids 1 and 2 in a fresh database
	resp = postForm(t, client, sbC.URI+"/accounts/create/", url.Values{
		"name":    {"Cash"},
		"balance": {"100.00"},
	})
	bodyString(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postForm(t, client, sbC.URI+"/accounts/create/", url.Values{
		"name":    {"Card"},
		"balance": {"50.00"},
	})
	bodyString(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postForm(t, client, sbC.URI+"/transfer/", url.Values{
		"from_account": {"1"},
		"to_account":   {"2"},
		"amount":       {"30.00"},
		"comment":      {"rent"},
	})
	bodyString(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Get(sbC.URI + "/accounts/")
	require.NoError(t, err)
	body = bodyString(t, resp)
	assert.Contains(t, body, "70.00")
	assert.Contains(t, body, "80.00")

	// insufficient funds leaves balances untouched
	resp = postForm(t, client, sbC.URI+"/transfer/", url.Values{
		"from_account": {"1"},
		"to_account":   {"2"},
		"amount":       {"1000.00"},
	})
	body = bodyString(t, resp)
	assert.Contains(t, body, "Insufficient funds")

	resp, err = client.Get(sbC.URI + "/accounts/")
	require.NoError(t, err)
	body = bodyString(t, resp)
	assert.Contains(t, body, "70.00")
	assert.Contains(t, body, "80.00")
	assert.False(t, strings.Contains(body, "-930.00"))
}

func TestE2E_AnonymousRedirectedToLogin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	sbC, err := setupSmartBudget(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, sbC)

	client := &http.Client{}
	resp, err := client.Get(sbC.URI + "/")
	require.NoError(t, err)
	body := bodyString(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Login")
}
