package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/harjas-romana/cs-projects-api/internal/projects/domain"
)

// ProjectRepository provides Firestore persistence for projects.
type ProjectRepository struct {
	client     *firestore.Client
	collection string
}

// NewProjectRepository creates a new project repository over the given
// Firestore client and collection name.
func NewProjectRepository(client *firestore.Client, collection string) *ProjectRepository {
	return &ProjectRepository{client: client, collection: collection}
}

// New is an alias for NewProjectRepository.
func New(client *firestore.Client, collection string) *ProjectRepository {
	return NewProjectRepository(client, collection)
}

func (r *ProjectRepository) col() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}

// Create inserts a new project. Firestore assigns the document ID; CreatedAt
// is stamped here and never touched again.
func (r *ProjectRepository) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	p.ID = ""
	p.CreatedAt = time.Now().UTC()

	ref, _, err := r.col().Add(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	p.ID = ref.ID
	return &p, nil
}

// List returns every project in the collection, newest first.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	docs, err := r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	out := make([]domain.Project, 0, len(docs))
	for _, doc := range docs {
		p, err := fromDoc(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

// GetByID returns the project stored under the given document ID.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return fromDoc(doc)
}

// Update merges the supplied fields into the stored document and returns the
// record as persisted. Fields absent from the patch are left untouched.
func (r *ProjectRepository) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	ref := r.col().Doc(id)

	updates := make([]firestore.Update, 0, 4)
	if patch.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *patch.Title})
	}
	if patch.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *patch.Description})
	}
	if patch.ProgrammingLanguage != nil {
		updates = append(updates, firestore.Update{Path: "programming_language", Value: *patch.ProgrammingLanguage})
	}
	if patch.DifficultyLevel != nil {
		updates = append(updates, firestore.Update{Path: "difficulty_level", Value: *patch.DifficultyLevel})
	}

	if _, err := ref.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	doc, err := ref.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read project: %w", err)
	}
	return fromDoc(doc)
}

// Delete removes the document and returns the record as it was stored.
func (r *ProjectRepository) Delete(ctx context.Context, id string) (*domain.Project, error) {
	ref := r.col().Doc(id)

	doc, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	p, err := fromDoc(doc)
	if err != nil {
		return nil, err
	}

	if _, err := ref.Delete(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}
	return p, nil
}

func fromDoc(doc *firestore.DocumentSnapshot) (*domain.Project, error) {
	var p domain.Project
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode project %s: %w", doc.Ref.ID, err)
	}
	p.ID = doc.Ref.ID
	return &p, nil
}
