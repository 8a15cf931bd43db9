package app

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritu748888/boxcourt/internal/api"
	"github.com/ritu748888/boxcourt/internal/models"
	"github.com/ritu748888/boxcourt/internal/router"
	"github.com/ritu748888/boxcourt/internal/session"
)

type fixture struct {
	app   *App
	store *session.Store
	out   *bytes.Buffer
}

func newFixture(t *testing.T, handler http.Handler) *fixture {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := api.NewClient(srv.URL, 5*time.Second, logger)
	require.NoError(t, err)

	store, err := session.NewStore(t.TempDir())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := New(client, store, logger, strings.NewReader(""), out)
	a.loadSession()
	return &fixture{app: a, store: store, out: out}
}

func fakeService(t *testing.T) (*gin.Engine, *atomic.Int32) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	requests := &atomic.Int32{}
	r.Use(func(c *gin.Context) { requests.Add(1) })

	r.GET("/api/venues/", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{{"id": 1, "name": "Arena A", "city": "Pune", "rating": 4.2, "courts_count": 3}})
	})
	r.POST("/api/users/login/", func(c *gin.Context) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
			return
		}
		if body.Email == "admin@test.com" && body.Password == "admin123" {
			c.JSON(http.StatusOK, gin.H{
				"status":  "Login successful",
				"user":    gin.H{"id": 1, "email": "admin@test.com"},
				"user_id": 1,
				"token":   "tok-xyz",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
	})
	r.GET("/api/bookings/upcoming/", func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
			return
		}
		c.JSON(http.StatusOK, []gin.H{})
	})
	return r, requests
}

func nextResult(t *testing.T, a *App) taskResult {
	t.Helper()
	select {
	case res := <-a.results:
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for fetch result")
		return taskResult{}
	}
}

func TestUnknownRouteRendersNavigationOnly(t *testing.T) {
	r, _ := fakeService(t)
	f := newFixture(t, r)

	f.out.Reset()
	f.app.navigate("#whatever")

	out := f.out.String()
	assert.Contains(t, out, "== Box Cricket ==")
	assert.NotContains(t, out, "Book Box Cricket Courts")
	assert.NotContains(t, out, "Loading")
	assert.Nil(t, f.app.view)
}

func TestVenuesRouteRendersCards(t *testing.T) {
	r, _ := fakeService(t)
	f := newFixture(t, r)

	f.app.navigate("#venues")
	f.app.handleResult(nextResult(t, f.app))

	out := f.out.String()
	assert.Contains(t, out, "Arena A")
	assert.Contains(t, out, "Pune")
	assert.Contains(t, out, "4.2/5.0")
	assert.Contains(t, out, "3 courts available")
}

func TestLoginSuccessNavigatesToVenues(t *testing.T) {
	r, _ := fakeService(t)
	f := newFixture(t, r)

	f.app.navigate("#login")
	f.app.handleLine("login admin@test.com admin123")
	f.app.handleResult(nextResult(t, f.app))

	assert.Equal(t, router.RouteVenues, f.app.route)
	assert.True(t, f.app.session.LoggedIn())

	sess, err := f.store.Load()
	require.NoError(t, err)
	require.NotNil(t, sess.User)
	assert.Equal(t, "admin@test.com", sess.User.Email)
	assert.Equal(t, int64(1), sess.UserID)

	// The venues mount kicked off its own fetch.
	f.app.handleResult(nextResult(t, f.app))
	assert.Contains(t, f.out.String(), "Arena A")
}

func TestLoginFailureStaysOnLogin(t *testing.T) {
	r, _ := fakeService(t)
	f := newFixture(t, r)

	f.app.navigate("#login")
	f.app.handleLine("login admin@test.com nope")
	f.app.handleResult(nextResult(t, f.app))

	assert.Equal(t, router.RouteLogin, f.app.route)
	assert.False(t, f.app.session.LoggedIn())
	assert.Contains(t, f.out.String(), "Invalid credentials")
}

func TestBookingsGatedWithoutSession(t *testing.T) {
	r, requests := fakeService(t)
	f := newFixture(t, r)

	f.out.Reset()
	f.app.navigate("#bookings")

	assert.Nil(t, f.app.view)
	assert.Contains(t, f.out.String(), "== Box Cricket ==")
	assert.Equal(t, int32(0), requests.Load())
}

func TestBookingsUnauthorizedMessage(t *testing.T) {
	r, _ := fakeService(t)
	f := newFixture(t, r)
	// A stored user with no token mounts the view; the service then 401s.
	require.NoError(t, f.store.Save(&models.User{ID: 1, Email: "admin@test.com"}, 1, ""))
	f.app.loadSession()

	f.app.navigate("#bookings")
	f.app.handleResult(nextResult(t, f.app))

	assert.Contains(t, f.out.String(), "Please log in to view bookings")
	assert.True(t, f.app.session.LoggedIn())
}

func TestLoginSuppressedWithSession(t *testing.T) {
	r, _ := fakeService(t)
	f := newFixture(t, r)
	require.NoError(t, f.store.Save(&models.User{ID: 1, Email: "admin@test.com"}, 1, "tok"))
	f.app.loadSession()

	f.out.Reset()
	f.app.navigate("#login")

	assert.Nil(t, f.app.view)
	assert.NotContains(t, f.out.String(), "Login to Box Cricket Booking")
}

func TestStaleFetchResultIsDropped(t *testing.T) {
	r, _ := fakeService(t)
	f := newFixture(t, r)

	f.app.navigate("#venues")
	// Navigating away before the response arrives supersedes the fetch.
	f.app.navigate("#home")

	res := nextResult(t, f.app)
	f.out.Reset()
	f.app.handleResult(res)

	assert.Empty(t, f.out.String())
	assert.Equal(t, router.RouteHome, f.app.route)
}

func TestLogoutClearsSessionAndGoesHome(t *testing.T) {
	r, _ := fakeService(t)
	f := newFixture(t, r)
	require.NoError(t, f.store.Save(&models.User{ID: 1, Email: "admin@test.com"}, 1, "tok"))
	f.app.loadSession()

	f.app.handleLine("logout")

	assert.Equal(t, router.RouteHome, f.app.route)
	assert.False(t, f.app.session.LoggedIn())

	sess, err := f.store.Load()
	require.NoError(t, err)
	assert.False(t, sess.LoggedIn())
}

func TestQuitCommand(t *testing.T) {
	r, _ := fakeService(t)
	f := newFixture(t, r)
	assert.True(t, f.app.handleLine("quit"))
	assert.False(t, f.app.handleLine("#home"))
}
