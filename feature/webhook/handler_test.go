package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLoader struct {
	ids []string
	err error
}

func (f *fakeLoader) LoadCheckout(_ context.Context, id string) error {
	f.ids = append(f.ids, id)
	return f.err
}

func setupTestApp(loader *fakeLoader) *fiber.App {
	app := fiber.New()
	handler := NewHandler(loader, zap.NewNop())
	handler.RegisterRoutes(app)
	return app
}

func postJSON(app *fiber.App, t *testing.T, body string) map[string]any {
	t.Helper()
	req := httptest.NewRequest("POST", "/load-checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	return got
}

func TestHandleLoadCheckout(t *testing.T) {
	loader := &fakeLoader{}
	app := setupTestApp(loader)

	got := postJSON(app, t, `{"ID": "chk-1"}`)
	assert.Equal(t, "received", got["status"])
	assert.Equal(t, []string{"chk-1"}, loader.ids)
}

// The marketplace retries on non-200, so failures are acknowledged anyway.
func TestHandleLoadCheckoutAlwaysAcknowledges(t *testing.T) {
	loader := &fakeLoader{err: errors.New("upstream down")}
	app := setupTestApp(loader)

	got := postJSON(app, t, `{"ID": "chk-1"}`)
	assert.Equal(t, "received", got["status"])
}

func TestHandleLoadCheckoutBadPayload(t *testing.T) {
	loader := &fakeLoader{}
	app := setupTestApp(loader)

	got := postJSON(app, t, `not json`)
	assert.Equal(t, "received", got["status"])
	assert.Empty(t, loader.ids)

	got = postJSON(app, t, `{"other": 1}`)
	assert.Equal(t, "received", got["status"])
	assert.Empty(t, loader.ids)
}

func TestHandleHealth(t *testing.T) {
	app := setupTestApp(&fakeLoader{})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))
}
