package rest

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutordesk/internal/formulas"
)

func newToolsApp() *fiber.App {
	app := fiber.New()
	h := &Handlers{}
	h.registerTools(app.Group("/api"))
	return app
}

func TestGenerateQR(t *testing.T) {
	app := newToolsApp()

	t.Run("encodes the payload as a PNG of the requested size", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/tools/qr?data=hello&size=256", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

		img, err := png.Decode(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
		assert.Equal(t, 256, img.Bounds().Dy())
	})

	t.Run("rejects missing data", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/tools/qr", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects out-of-range size", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/tools/qr?data=x&size=9999", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestSearchFormulas(t *testing.T) {
	app := newToolsApp()

	req := httptest.NewRequest("GET", "/api/tools/formulas?q=pythagorean", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var results []formulas.Formula
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&results))
	require.NotEmpty(t, results)
	for _, f := range results {
		assert.Contains(t, f.Name, "Pythagorean")
	}
}

func TestFormulaTopics(t *testing.T) {
	app := newToolsApp()

	req := httptest.NewRequest("GET", "/api/tools/formulas/topics", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var topics []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&topics))
	assert.Contains(t, topics, "algebra")
}

func TestScrapePDFLinksRejectsBadURL(t *testing.T) {
	app := newToolsApp()

	for _, body := range []string{
		`{}`,
		`{"url":"not a url"}`,
		`{"url":"ftp://files.example.com/notes"}`,
	} {
		req := httptest.NewRequest("POST", "/api/tools/pdf-links", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "body %s", body)
		io.Copy(io.Discard, resp.Body)
	}
}
