package service

import "github.com/Konaisya/construction-company/internal/entity"

// ShortProject is the trimmed project projection embedded into order reads.
type ShortProject struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	MainImage   string `json:"main_image"`
	Description string `json:"description"`
	IsDone      bool   `json:"is_done"`
}

func shortProject(p entity.Project) ShortProject {
	return ShortProject{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		MainImage:   p.MainImage,
		Description: p.Description,
		IsDone:      p.IsDone,
	}
}

// OrderView is an order denormalized with its user and project.
type OrderView struct {
	entity.Order
	User    entity.User  `json:"user"`
	Project ShortProject `json:"project"`
}

// ProjectAttributeView resolves an attribute assignment to the attribute's
// name and, when set, the unit's display fields.
type ProjectAttributeView struct {
	Attribute entity.Attribute `json:"attribute"`
	Value     string           `json:"value"`
	Unit      *entity.Unit     `json:"unit"`
}

// ProjectView is the full fan-out read of a project: its category, city,
// image gallery and resolved attribute assignments.
type ProjectView struct {
	entity.Project
	Category   entity.Category        `json:"category"`
	City       entity.City            `json:"city"`
	Attributes []ProjectAttributeView `json:"attributes"`
	Images     []entity.ProjectImage  `json:"images"`
}
