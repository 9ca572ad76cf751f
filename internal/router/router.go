package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SecteurA/CloudMenu3-sub001/internal/auth"
	"github.com/SecteurA/CloudMenu3-sub001/internal/extraction"
	"github.com/SecteurA/CloudMenu3-sub001/internal/menu"
	"github.com/SecteurA/CloudMenu3-sub001/internal/middleware"
	"github.com/SecteurA/CloudMenu3-sub001/internal/translation"
)

type Handlers struct {
	Auth        *auth.Handler
	Menu        *menu.Handler
	Extraction  *extraction.Handler
	Translation *translation.Handler
}

// New wires every route. The permissive CORS set mirrors what the
// browser front-end expects: any origin, the standard verb list, and the
// fixed allowed-headers list (OPTIONS preflight is answered by the
// middleware).
func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// Paths the browser front-end already calls.
	functions := r.Group("/functions")
	{
		functions.POST("/extract-menu-image", h.Extraction.Extract)

		protected := functions.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/translate-menu", h.Translation.Translate)
		}
	}

	menus := r.Group("/menus")
	menus.Use(middleware.AuthMiddleware())
	{
		menus.POST("", h.Menu.CreateMenu)
		menus.GET("", h.Menu.ListMyMenus)
		menus.GET("/:id", h.Menu.GetMenu)
		menus.POST("/:id/categories", h.Menu.AddCategory)
		menus.POST("/:id/items", h.Menu.AddItem)
		menus.POST("/:id/photo", h.Menu.UploadPhoto)
		menus.POST("/:id/extractions", h.Extraction.Enqueue)
		menus.GET("/:id/extractions/status", h.Extraction.Status)
	}

	return r
}
