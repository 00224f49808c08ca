package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Konaisya/construction-company/internal/entity"
	"github.com/Konaisya/construction-company/internal/repository"
	"gorm.io/gorm"
)

// ProjectService owns the project aggregate: the project row, its attribute
// assignments and its image gallery.
type ProjectService struct {
	db         *gorm.DB
	projects   *repository.Repository[entity.Project]
	categories *repository.Repository[entity.Category]
	cities     *repository.Repository[entity.City]
	attributes *repository.Repository[entity.Attribute]
	units      *repository.Repository[entity.Unit]
	projAttrs  *repository.Repository[entity.ProjectAttribute]
	images     *repository.Repository[entity.ProjectImage]
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{
		db:         db,
		projects:   repository.New[entity.Project](db),
		categories: repository.New[entity.Category](db),
		cities:     repository.New[entity.City](db),
		attributes: repository.New[entity.Attribute](db),
		units:      repository.New[entity.Unit](db),
		projAttrs:  repository.New[entity.ProjectAttribute](db),
		images:     repository.New[entity.ProjectImage](db),
	}
}

// AttributeAssignment is one incoming attribute-value pair on a project.
type AttributeAssignment struct {
	IDAttribute uint   `json:"id_attribute" binding:"required"`
	Value       string `json:"value" binding:"required"`
	IDUnit      *uint  `json:"id_unit"`
}

type CreateProjectInput struct {
	Name        string                `json:"name" binding:"required"`
	Slug        string                `json:"slug" binding:"required"`
	Description string                `json:"description"`
	IsDone      bool                  `json:"is_done"`
	IDCategory  uint                  `json:"id_category" binding:"required"`
	IDCity      uint                  `json:"id_city" binding:"required"`
	Attributes  []AttributeAssignment `json:"attributes"`
}

type UpdateProjectInput struct {
	Name        *string               `json:"name"`
	Slug        *string               `json:"slug"`
	MainImage   *string               `json:"main_image"`
	Description *string               `json:"description"`
	IsDone      *bool                 `json:"is_done"`
	IDCategory  *uint                 `json:"id_category"`
	IDCity      *uint                 `json:"id_city"`
	Attributes  []AttributeAssignment `json:"attributes"`
}

func (s *ProjectService) Get(ctx context.Context, id uint) (*entity.Project, error) {
	project, err := s.projects.FindOne(ctx, repository.Filter{"id": id})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return project, err
}

// GetAll lists projects matching the scalar filter. When both idAttribute
// and attributeValue are supplied the list is narrowed to projects carrying
// that exact attribute-value pair.
func (s *ProjectService) GetAll(ctx context.Context, filter repository.Filter, idAttribute *uint, attributeValue *string) ([]ProjectView, error) {
	q := s.db.WithContext(ctx).Model(&entity.Project{})
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}
	if idAttribute != nil && attributeValue != nil {
		q = q.Joins("JOIN project_attributes pa ON pa.id_project = projects.id").
			Where("pa.id_attribute = ? AND pa.value = ?", *idAttribute, *attributeValue)
	}
	var projects []entity.Project
	if err := q.Find(&projects).Error; err != nil {
		return nil, err
	}
	views := make([]ProjectView, 0, len(projects))
	for _, project := range projects {
		view, err := s.view(ctx, project)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *ProjectService) GetView(ctx context.Context, id uint) (*ProjectView, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *project)
}

// view assembles the fan-out read: category, city, image gallery and the
// attribute assignments resolved to attribute and unit rows.
func (s *ProjectService) view(ctx context.Context, project entity.Project) (*ProjectView, error) {
	category, err := s.categories.FindOne(ctx, repository.Filter{"id": project.IDCategory})
	if err != nil {
		return nil, fmt.Errorf("%w: project %d references missing category %d", ErrFailed, project.ID, project.IDCategory)
	}
	city, err := s.cities.FindOne(ctx, repository.Filter{"id": project.IDCity})
	if err != nil {
		return nil, fmt.Errorf("%w: project %d references missing city %d", ErrFailed, project.ID, project.IDCity)
	}
	images, err := s.images.FindAll(ctx, repository.Filter{"id_project": project.ID})
	if err != nil {
		return nil, err
	}
	assignments, err := s.projAttrs.FindAll(ctx, repository.Filter{"id_project": project.ID})
	if err != nil {
		return nil, err
	}
	attrs := make([]ProjectAttributeView, 0, len(assignments))
	for _, assignment := range assignments {
		attribute, err := s.attributes.FindOne(ctx, repository.Filter{"id": assignment.IDAttribute})
		if err != nil {
			return nil, fmt.Errorf("%w: project %d references missing attribute %d", ErrFailed, project.ID, assignment.IDAttribute)
		}
		var unit *entity.Unit
		if assignment.IDUnit != nil {
			unit, err = s.units.FindOne(ctx, repository.Filter{"id": *assignment.IDUnit})
			if err != nil {
				return nil, fmt.Errorf("%w: project %d references missing unit %d", ErrFailed, project.ID, *assignment.IDUnit)
			}
		}
		attrs = append(attrs, ProjectAttributeView{Attribute: *attribute, Value: assignment.Value, Unit: unit})
	}
	return &ProjectView{Project: project, Category: *category, City: *city, Attributes: attrs, Images: images}, nil
}

// Create persists the project row and attaches the supplied attribute
// assignments in one transaction. A duplicated attribute id within the
// payload collapses to its last occurrence.
func (s *ProjectService) Create(ctx context.Context, in CreateProjectInput) (*entity.Project, error) {
	project := &entity.Project{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		IsDone:      in.IsDone,
		IDCategory:  in.IDCategory,
		IDCity:      in.IDCity,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.New[entity.Project](tx).Add(ctx, project); err != nil {
			return fmt.Errorf("%w: %v", ErrFailed, err)
		}
		projAttrs := repository.New[entity.ProjectAttribute](tx)
		for _, assignment := range dedupeAssignments(in.Attributes) {
			row := &entity.ProjectAttribute{
				IDProject:   project.ID,
				IDAttribute: assignment.IDAttribute,
				Value:       assignment.Value,
				IDUnit:      assignment.IDUnit,
			}
			if err := projAttrs.Add(ctx, row); err != nil {
				return fmt.Errorf("%w: %v", ErrFailed, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// Update applies the sparse field update, then reconciles the attribute list
// when one is supplied: assignments matching an existing (project, attribute)
// pair update that row in place, new attribute ids insert a row, and
// existing rows not mentioned are left untouched.
func (s *ProjectService) Update(ctx context.Context, id uint, in UpdateProjectInput) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	changes := map[string]any{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Slug != nil {
		changes["slug"] = *in.Slug
	}
	if in.MainImage != nil {
		changes["main_image"] = *in.MainImage
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}
	if in.IsDone != nil {
		changes["is_done"] = *in.IsDone
	}
	if in.IDCategory != nil {
		changes["id_category"] = *in.IDCategory
	}
	if in.IDCity != nil {
		changes["id_city"] = *in.IDCity
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(changes) > 0 {
			if _, err := repository.New[entity.Project](tx).Update(ctx, id, changes); err != nil {
				return fmt.Errorf("%w: %v", ErrFailed, err)
			}
		}
		if in.Attributes == nil {
			return nil
		}
		projAttrs := repository.New[entity.ProjectAttribute](tx)
		existing, err := projAttrs.FindAll(ctx, repository.Filter{"id_project": id})
		if err != nil {
			return err
		}
		byAttribute := make(map[uint]entity.ProjectAttribute, len(existing))
		for _, row := range existing {
			byAttribute[row.IDAttribute] = row
		}
		for _, assignment := range dedupeAssignments(in.Attributes) {
			if _, ok := byAttribute[assignment.IDAttribute]; ok {
				err = projAttrs.UpdateByFilter(ctx,
					repository.Filter{"id_project": id, "id_attribute": assignment.IDAttribute},
					map[string]any{"value": assignment.Value, "id_unit": assignment.IDUnit})
			} else {
				err = projAttrs.Add(ctx, &entity.ProjectAttribute{
					IDProject:   id,
					IDAttribute: assignment.IDAttribute,
					Value:       assignment.Value,
					IDUnit:      assignment.IDUnit,
				})
			}
			if err != nil {
				return fmt.Errorf("%w: %v", ErrFailed, err)
			}
		}
		return nil
	})
}

// dedupeAssignments collapses repeated attribute ids, last occurrence wins,
// preserving first-seen order.
func dedupeAssignments(assignments []AttributeAssignment) []AttributeAssignment {
	seen := make(map[uint]int, len(assignments))
	out := make([]AttributeAssignment, 0, len(assignments))
	for _, assignment := range assignments {
		if i, ok := seen[assignment.IDAttribute]; ok {
			out[i] = assignment
			continue
		}
		seen[assignment.IDAttribute] = len(out)
		out = append(out, assignment)
	}
	return out
}

// Delete removes the project's attribute and image rows before the project
// itself. Stored image files are the caller's concern; Images exposes the
// gallery so handlers can clean up the file store first.
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.New[entity.ProjectAttribute](tx).DeleteByFilter(ctx, repository.Filter{"id_project": id}); err != nil {
			return err
		}
		if err := repository.New[entity.ProjectImage](tx).DeleteByFilter(ctx, repository.Filter{"id_project": id}); err != nil {
			return err
		}
		return repository.New[entity.Project](tx).Delete(ctx, id)
	})
}

func (s *ProjectService) Images(ctx context.Context, idProject uint) ([]entity.ProjectImage, error) {
	return s.images.FindAll(ctx, repository.Filter{"id_project": idProject})
}

func (s *ProjectService) Image(ctx context.Context, id uint) (*entity.ProjectImage, error) {
	image, err := s.images.FindOne(ctx, repository.Filter{"id": id})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return image, err
}

func (s *ProjectService) AddImage(ctx context.Context, idProject uint, filename string) (*entity.ProjectImage, error) {
	image := &entity.ProjectImage{IDProject: idProject, Image: filename}
	if err := s.images.Add(ctx, image); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailed, err)
	}
	return image, nil
}

func (s *ProjectService) DeleteImage(ctx context.Context, id uint) error {
	err := s.images.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
