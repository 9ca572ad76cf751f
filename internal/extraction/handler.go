package extraction

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SecteurA/CloudMenu3-sub001/internal/llm"
	"github.com/SecteurA/CloudMenu3-sub001/internal/menu"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type extractRequest struct {
	ImageURL string `json:"imageUrl"`
	MenuID   string `json:"menuId"`
}

// Extract digitizes a menu photo synchronously and returns the parsed
// document without persisting anything.
func (h *Handler) Extract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMissingInput.Error()})
		return
	}

	doc, err := h.service.Extract(c.Request.Context(), req.ImageURL, req.MenuID)
	if err != nil {
		writeExtractionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    doc,
	})
}

// writeExtractionError maps the pipeline failure taxonomy onto HTTP.
func writeExtractionError(c *gin.Context, err error) {
	var (
		fetchErr *FetchError
		parseErr *ParseError
		apiErr   *llm.APIError
	)

	switch {
	case errors.Is(err, ErrMissingInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, ErrImageTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Image is too large",
			"details": err.Error(),
		})

	case errors.As(err, &fetchErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to fetch image",
			"details": fetchErr.Error(),
		})

	case errors.Is(err, llm.ErrTimeout):
		c.JSON(http.StatusRequestTimeout, gin.H{
			"error":   "Model request timed out",
			"details": "The extraction did not complete within the time limit. Try a smaller or sharper photo.",
		})

	case errors.Is(err, llm.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":      "Rate limit exceeded",
			"details":    "The model API refused every attempt with HTTP 429.",
			"suggestion": "Wait a moment and try again, or review the account's usage quota.",
		})

	case errors.As(err, &apiErr):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Model API error",
			"details":    apiErr.Error(),
			"suggestion": apiErr.Suggestion(),
		})

	case errors.As(err, &parseErr):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Could not parse model output",
			"details":   parseErr.Error(),
			"rawOutput": parseErr.Raw,
		})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal error",
			"details": err.Error(),
		})
	}
}

type enqueueRequest struct {
	ImageURL string `json:"imageUrl"`
}

// Enqueue registers a background digitization job for an owned menu.
func (h *Handler) Enqueue(c *gin.Context) {
	var req enqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMissingInput.Error()})
		return
	}

	jobID, err := h.service.Enqueue(
		c.Request.Context(),
		c.GetString("userID"),
		c.Param("id"),
		req.ImageURL,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, menu.ErrMenuNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"job_id":  jobID,
		"status":  StatusPending,
		"message": "Extraction queued. Poll the status endpoint for progress.",
	})
}

// Status reports the latest extraction job state for a menu.
func (h *Handler) Status(c *gin.Context) {
	if _, err := h.service.menus.GetOwnedMenu(
		c.Request.Context(), c.Param("id"), c.GetString("userID"),
	); err != nil {
		if errors.Is(err, menu.ErrMenuNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status, jobErr, err := h.service.jobs.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"error":  jobErr,
	})
}
