package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/ecuabus/user-api/internal/api/http"
	"github.com/ecuabus/user-api/internal/api/http/middleware"
	usershttp "github.com/ecuabus/user-api/internal/users/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Users       *usershttp.Handler
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/ecuabus")
	api.Use(middleware.RequestIDMiddleware())

	dep.Users.Register(api)

	return r
}
