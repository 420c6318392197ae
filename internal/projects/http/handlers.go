package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harjas-romana/cs-projects-api/internal/projects/domain"
)

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  fieldErrors(err),
		})
		return
	}

	p, err := h.store.Create(c.Request.Context(), domain.Project{
		Title:               req.Title,
		Description:         req.Description,
		ProgrammingLanguage: domain.Language(req.ProgrammingLanguage),
		DifficultyLevel:     domain.Difficulty(req.DifficultyLevel),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Project created successfully",
		"project": p,
	})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Projects retrieved successfully",
		"count":    len(items),
		"projects": items,
	})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")

	p, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondLookupError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project retrieved successfully",
		"project": p,
	})
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  fieldErrors(err),
		})
		return
	}

	patch := req.patch()
	if patch.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No valid fields provided"})
		return
	}

	p, err := h.store.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondLookupError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project updated successfully",
		"project": p,
	})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	p, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondLookupError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Project deleted successfully",
		"deleted_project": p,
	})
}

func (h *Handler) respondLookupError(c *gin.Context, id string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": fmt.Sprintf("Project '%s' not found", id),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
}
