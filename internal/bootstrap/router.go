package bootstrap

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/harjas-romana/cs-projects-api/config"
	httpapi "github.com/harjas-romana/cs-projects-api/internal/api/http"
	"github.com/harjas-romana/cs-projects-api/internal/api/http/middleware"
	projectshttp "github.com/harjas-romana/cs-projects-api/internal/projects/http"
	"github.com/harjas-romana/cs-projects-api/internal/projects/repository"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Developer   config.DeveloperConfig
	DB          *firestore.Client
	Collection  string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())

	// The API is consumed from browser frontends; allow any origin.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-Id")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	metaHandler := httpapi.NewMetaHandler(dep.Version, dep.Developer)
	metaHandler.RegisterRoutes(r)

	projectRepo := repository.New(dep.DB, dep.Collection)
	projectsGroup := r.Group("/projects")
	projectshttp.New(projectRepo).Register(projectsGroup)

	return r
}
