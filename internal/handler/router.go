package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/handler/api"
	"laundry-backoffice/internal/handler/httperr"
	"laundry-backoffice/internal/handler/middleware"
	"laundry-backoffice/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Password *api.PasswordHandler
	User     *api.UserHandler
	Company  *api.CompanyHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, nil, "Resource not found")
	})
	engine.NoMethod(func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusMethodNotAllowed, nil, "Method not allowed")
	})

	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := authMiddleware.RequireRole(user.RoleAdmin)
	adminOrDirector := authMiddleware.RequireRole(user.RoleAdmin, user.RoleDirector)

	auth := engine.Group("/auth")
	{
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register-admin", Handler: h.Auth.RegisterAdmin},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/reset/request", Handler: h.Password.RequestReset},
			{Method: http.MethodPost, Path: "/password/set", Handler: h.Password.SetPassword},
		})

		authRequired := auth.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
		})
	}

	users := engine.Group("/users")
	users.Use(authMiddleware.RequireAuth())
	{
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "", Handler: h.User.List},
			{Method: http.MethodPost, Path: "", Handler: h.User.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.User.Get},
			{Method: http.MethodPost, Path: "/:id/invite", Handler: h.Password.Invite},
		})
	}

	// Director-of checks need the company row, so they live in the query layer
	companies := engine.Group("/companies")
	companies.Use(authMiddleware.RequireAuth())
	{
		addRoutes(companies, []route{
			{Method: http.MethodGet, Path: "/mine", Handler: h.Company.ListMine, Mw: []gin.HandlerFunc{adminOrDirector}},
			{Method: http.MethodGet, Path: "", Handler: h.Company.ListAll, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodPost, Path: "", Handler: h.Company.Create, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Company.Get},
			{Method: http.MethodGet, Path: "/:id/units", Handler: h.Company.ListUnits},
			{Method: http.MethodPost, Path: "/:id/units", Handler: h.Company.CreateUnit},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
