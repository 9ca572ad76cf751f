package translation

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type translateRequest struct {
	MenuID         string `json:"menuId"`
	TargetLanguage string `json:"targetLanguage"`
	LanguageName   string `json:"languageName"`
}

// Translate runs the translation pipeline for an owned menu. Every failure
// surfaces as 500 {error}; ownership failures and missing menus share the
// same message so callers cannot probe for menu existence.
func (h *Handler) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.Translate(
		c.Request.Context(),
		c.GetString("userID"),
		req.MenuID,
		req.TargetLanguage,
		req.LanguageName,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.AlreadyExists {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Language already exists",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Menu translated successfully",
		"menuTitle":       result.MenuTitle,
		"categoriesCount": result.CategoriesCount,
		"itemsCount":      result.ItemsCount,
	})
}
