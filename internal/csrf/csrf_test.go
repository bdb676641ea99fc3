package csrf

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.Issue("session-1")
	require.NoError(t, err)

	assert.NoError(t, m.Verify("session-1", token))
	assert.ErrorIs(t, m.Verify("session-2", token), ErrInvalidToken)
	assert.ErrorIs(t, m.Verify("session-1", ""), ErrInvalidToken)
	assert.ErrorIs(t, NewManager("other", time.Hour).Verify("session-1", token), ErrInvalidToken)
}

func TestVerifyExpired(t *testing.T) {
	m := NewManager("secret", time.Minute)
	issued := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, err := m.Issue("s")
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(2 * time.Minute) }
	assert.ErrorIs(t, m.Verify("s", token), ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewManager("secret", time.Hour)

	r := gin.New()
	guard := m.Middleware(
		func(c *gin.Context) string { return c.GetHeader("X-Session") },
		func(c *gin.Context, err error) { c.String(http.StatusBadRequest, err.Error()) },
	)
	r.GET("/form", guard, func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/form", guard, func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/form", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	post := func(token string) int {
		body := url.Values{FieldName: {token}}.Encode()
		req := httptest.NewRequest(http.MethodPost, "/form", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("X-Session", "s1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	token, err := m.Issue("s1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, post(token))
	assert.Equal(t, http.StatusBadRequest, post(""))

	other, err := m.Issue("s2")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, post(other))

	req := httptest.NewRequest(http.MethodPost, "/form", nil)
	req.Header.Set("X-Session", "s1")
	req.Header.Set(HeaderName, token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}
