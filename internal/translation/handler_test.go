package translation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SecteurA/CloudMenu3-sub001/internal/auth"
	"github.com/SecteurA/CloudMenu3-sub001/internal/middleware"
)

func setupTranslateRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/functions/translate-menu", middleware.AuthMiddleware(), NewHandler(svc).Translate)
	return r
}

func postTranslate(t *testing.T, r *gin.Engine, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/functions/translate-menu", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTranslateEndpointRequiresBearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupTranslateRouter(NewService(&fakeClient{}, seededRepo()))

	w := postTranslate(t, r, "", gin.H{"menuId": "m1", "targetLanguage": "en"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTranslateEndpointLanguageAlreadyExists(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := seededRepo()
	repo.languages["m1en"] = true
	client := &fakeClient{replies: []string{"unused"}}
	r := setupTranslateRouter(NewService(client, repo))

	token, err := auth.GenerateToken("owner-1", "owner@example.com")
	require.NoError(t, err)

	w := postTranslate(t, r, token, gin.H{
		"menuId":         "m1",
		"targetLanguage": "en",
		"languageName":   "English",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Language already exists", resp["message"])
	assert.Zero(t, client.calls)
}

func TestTranslateEndpointSuccessBody(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := seededRepo()
	client := &fakeClient{replies: []string{`"Roman Trattoria"`, batchReply}}
	r := setupTranslateRouter(NewService(client, repo))

	token, err := auth.GenerateToken("owner-1", "owner@example.com")
	require.NoError(t, err)

	w := postTranslate(t, r, token, gin.H{
		"menuId":         "m1",
		"targetLanguage": "en",
		"languageName":   "English",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success         bool   `json:"success"`
		MenuTitle       string `json:"menuTitle"`
		CategoriesCount int    `json:"categoriesCount"`
		ItemsCount      int    `json:"itemsCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Roman Trattoria", resp.MenuTitle)
	assert.Equal(t, 1, resp.CategoriesCount)
	assert.Equal(t, 2, resp.ItemsCount)
}

func TestTranslateEndpointOwnershipFailureIs500(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := setupTranslateRouter(NewService(&fakeClient{}, seededRepo()))

	token, err := auth.GenerateToken("intruder", "x@example.com")
	require.NoError(t, err)

	w := postTranslate(t, r, token, gin.H{"menuId": "m1", "targetLanguage": "en"})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Menu not found or access denied")
}
