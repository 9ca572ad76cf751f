package extraction

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SecteurA/CloudMenu3-sub001/internal/llm"
)

func setupExtractRouter(client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/functions/extract-menu-image", NewHandler(newTestService(client)).Extract)
	return r
}

func postExtract(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/functions/extract-menu-image", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExtractEndpointSuccess(t *testing.T) {
	srv := serveImage(t, []byte("jpeg-bytes"), "image/jpeg")
	r := setupExtractRouter(&fakeVisionClient{reply: modelReply})

	w := postExtract(t, r, gin.H{"imageUrl": srv.URL + "/menu.jpg", "menuId": "m1"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Categories []struct {
				Name  string           `json:"name"`
				Items []map[string]any `json:"items"`
			} `json:"categories"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Categories, 1)
	assert.Equal(t, "Pizzas", resp.Data.Categories[0].Name)
	assert.NotEmpty(t, resp.Data.Categories[0].Items)
}

func TestExtractEndpointMissingFields(t *testing.T) {
	r := setupExtractRouter(&fakeVisionClient{})

	w := postExtract(t, r, gin.H{"imageUrl": "https://x/menu.jpg"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postExtract(t, r, gin.H{"menuId": "m1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractEndpointRateLimitExhaustion(t *testing.T) {
	srv := serveImage(t, []byte("jpeg-bytes"), "image/jpeg")
	r := setupExtractRouter(&fakeVisionClient{
		err: &llm.APIError{StatusCode: http.StatusTooManyRequests, Body: "rate_limit_error"},
	})

	w := postExtract(t, r, gin.H{"imageUrl": srv.URL, "menuId": "m1"})

	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Rate limit exceeded", resp["error"])
	assert.NotEmpty(t, resp["suggestion"])
}

func TestExtractEndpointCredentialFailure(t *testing.T) {
	srv := serveImage(t, []byte("jpeg-bytes"), "image/jpeg")
	r := setupExtractRouter(&fakeVisionClient{
		err: &llm.APIError{StatusCode: http.StatusUnauthorized, Body: "authentication_error"},
	})

	w := postExtract(t, r, gin.H{"imageUrl": srv.URL, "menuId": "m1"})

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["suggestion"], "API key")
}

func TestExtractEndpointTimeout(t *testing.T) {
	srv := serveImage(t, []byte("jpeg-bytes"), "image/jpeg")
	r := setupExtractRouter(&fakeVisionClient{err: llm.ErrTimeout})

	w := postExtract(t, r, gin.H{"imageUrl": srv.URL, "menuId": "m1"})

	assert.Equal(t, http.StatusRequestTimeout, w.Code)
}

func TestExtractEndpointParseFailureIncludesRawOutput(t *testing.T) {
	srv := serveImage(t, []byte("jpeg-bytes"), "image/jpeg")
	raw := "the image does not look like a menu"
	r := setupExtractRouter(&fakeVisionClient{reply: raw})

	w := postExtract(t, r, gin.H{"imageUrl": srv.URL, "menuId": "m1"})

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, raw, resp["rawOutput"])
}
