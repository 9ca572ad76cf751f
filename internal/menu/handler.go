package menu

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createMenuRequest struct {
	Name            string `json:"name" binding:"required"`
	DefaultLanguage string `json:"defaultLanguage"`
}

func (h *Handler) CreateMenu(c *gin.Context) {
	var req createMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	m, err := h.service.CreateMenu(
		c.Request.Context(),
		c.GetString("userID"),
		req.Name,
		req.DefaultLanguage,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, m)
}

func (h *Handler) ListMyMenus(c *gin.Context) {
	menus, err := h.service.ListMyMenus(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if menus == nil {
		menus = []*Menu{}
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

func (h *Handler) GetMenu(c *gin.Context) {
	m, categories, err := h.service.GetMenuDetail(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
	)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrMenuNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"menu":       m,
		"categories": categories,
	})
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

func (h *Handler) AddCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	cat := &Category{
		MenuID:      c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Position:    req.Position,
	}

	if err := h.service.AddCategory(c.Request.Context(), c.GetString("userID"), cat); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrMenuNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cat)
}

type createItemRequest struct {
	CategoryID   string   `json:"categoryId" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Price        string   `json:"price"`
	Allergens    []string `json:"allergens"`
	IsVegetarian bool     `json:"is_vegetarian"`
	IsVegan      bool     `json:"is_vegan"`
	IsGlutenFree bool     `json:"is_gluten_free"`
	Position     int      `json:"position"`
}

func (h *Handler) AddItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "categoryId and name are required"})
		return
	}

	price := decimal.Zero
	if req.Price != "" {
		var err error
		price, err = decimal.NewFromString(req.Price)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a decimal number"})
			return
		}
	}

	item := &MenuItem{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        price,
		Allergens:    req.Allergens,
		IsVegetarian: req.IsVegetarian,
		IsVegan:      req.IsVegan,
		IsGlutenFree: req.IsGlutenFree,
		Position:     req.Position,
	}

	if err := h.service.AddItem(c.Request.Context(), c.GetString("userID"), c.Param("id"), item); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrMenuNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UploadPhoto receives a menu photo, stores it and returns its public URL.
func (h *Handler) UploadPhoto(c *gin.Context) {
	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo is required"})
		return
	}
	defer file.Close()

	url, err := h.service.UploadPhoto(
		c.Request.Context(),
		c.GetString("userID"),
		c.Param("id"),
		file,
		header.Filename,
	)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrMenuNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"imageUrl": url,
		"message":  "Photo uploaded. Use it with the extraction endpoint to digitize the menu.",
	})
}
