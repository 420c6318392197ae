package http

import (
	"context"

	"github.com/harjas-romana/cs-projects-api/internal/projects/domain"
)

// ProjectStore is the persistence surface the handlers need. The Firestore
// repository satisfies it; tests use an in-memory fake.
type ProjectStore interface {
	Create(ctx context.Context, p domain.Project) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id string) (*domain.Project, error)
}

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	store ProjectStore
}

func New(store ProjectStore) *Handler {
	return &Handler{store: store}
}

type createReq struct {
	Title               string `json:"title" binding:"required,min=3,max=200"`
	Description         string `json:"description" binding:"required,min=10,max=2000"`
	ProgrammingLanguage string `json:"programming_language" binding:"required,max=50,proglang"`
	DifficultyLevel     string `json:"difficulty_level" binding:"required,difficulty"`
}

// updateReq mirrors createReq with every field optional. Absent fields stay
// nil and are never written to the store; unknown extra fields in the body
// are dropped by the JSON decoder without error.
type updateReq struct {
	Title               *string `json:"title" binding:"omitempty,min=3,max=200"`
	Description         *string `json:"description" binding:"omitempty,min=10,max=2000"`
	ProgrammingLanguage *string `json:"programming_language" binding:"omitempty,max=50,proglang"`
	DifficultyLevel     *string `json:"difficulty_level" binding:"omitempty,difficulty"`
}

func (r updateReq) patch() domain.ProjectPatch {
	var p domain.ProjectPatch
	p.Title = r.Title
	p.Description = r.Description
	if r.ProgrammingLanguage != nil {
		lang := domain.Language(*r.ProgrammingLanguage)
		p.ProgrammingLanguage = &lang
	}
	if r.DifficultyLevel != nil {
		level := domain.Difficulty(*r.DifficultyLevel)
		p.DifficultyLevel = &level
	}
	return p
}
