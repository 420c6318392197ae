package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harjas-romana/cs-projects-api/config"
)

type InfoResponse struct {
	Name               string `json:"name"`
	RegistrationNumber string `json:"registration_number"`
	College            string `json:"college"`
	Note               string `json:"note"`
}

// MetaHandler serves the welcome and developer-info endpoints.
type MetaHandler struct {
	version string
	dev     config.DeveloperConfig
}

func NewMetaHandler(version string, dev config.DeveloperConfig) *MetaHandler {
	return &MetaHandler{version: version, dev: dev}
}

func (h *MetaHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to CS Projects API",
		"version": h.version,
		"author":  h.dev.Name,
		"college": h.dev.College,
		"endpoints": []string{
			"GET /info",
			"GET /projects",
			"POST /projects",
			"GET /projects/{id}",
			"PUT /projects/{id}",
			"DELETE /projects/{id}",
		},
	})
}

func (h *MetaHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, InfoResponse{
		Name:               h.dev.Name,
		RegistrationNumber: h.dev.Registration,
		College:            h.dev.College,
		Note:               h.dev.Note,
	})
}

func (h *MetaHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/info", h.Info)
}
