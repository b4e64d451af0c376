package routes

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bramble/app/config"
	"bramble/app/repositories"
	"bramble/app/seed"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	adminEmail    = "a@x.com"
	adminPassword = "changeme123"
)

// setupTestApp seeds an in-memory store with the admin account and the
// first post, and serves the full router over httptest.
func setupTestApp(t *testing.T) (*httptest.Server, *badger.DB) {
	t.Helper()

	db, err := repositories.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		AdminName:     "Administrator",
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
	}
	users := repositories.NewBadgerUserRepository(db)
	posts := repositories.NewBadgerPostRepository(db)
	require.NoError(t, seed.Run(cfg, users, posts, zap.NewNop()))

	router, err := Setup(db, zap.NewNop())
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, db
}

// newClient returns an HTTP client with a cookie jar, so sessions survive
// across requests.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func get(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func postForm(t *testing.T, client *http.Client, url string, form url.Values) (int, string) {
	t.Helper()
	resp, err := client.PostForm(url, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func login(t *testing.T, client *http.Client, base, email, password string) string {
	t.Helper()
	_, body := postForm(t, client, base+"/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	return body
}

func register(t *testing.T, client *http.Client, base, name, email, password string) string {
	t.Helper()
	_, body := postForm(t, client, base+"/register", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	})
	return body
}

func loggedIn(body string) bool {
	return strings.Contains(body, "Log Out")
}
