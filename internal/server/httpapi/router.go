package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/userdeck/internal/common"
	"github.com/dmitrijs2005/userdeck/internal/logging"
	"github.com/dmitrijs2005/userdeck/internal/server/directory"
)

// NewRouter assembles middleware and mounts the directory API under basePath.
//
//	POST   {basePath}/login
//	GET    {basePath}/users?page=N
//	PUT    {basePath}/users/:id
//	PATCH  {basePath}/users/:id
//	DELETE {basePath}/users/:id
func NewRouter(svc *directory.Service, logger logging.Logger, basePath string, allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	if len(allowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type",
		common.AuthorizationHeaderName, common.RequestIDHeaderName, common.APIKeyHeaderName}
	corsConfig.ExposeHeaders = []string{common.RequestIDHeaderName}
	r.Use(cors.New(corsConfig))

	h := NewHandler(svc, logger)
	authMiddleware := AuthRequired(svc)

	api := r.Group(basePath)
	{
		api.POST("/login", h.Login)

		users := api.Group("/users", authMiddleware)
		users.GET("", h.List)
		users.PUT("/:id", h.Update)
		users.PATCH("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	})

	return r
}
