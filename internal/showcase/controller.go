// Package showcase holds the view controller shared by the terminal and
// web surfaces.
package showcase

import (
	"context"

	"github.com/idilsaglam/showcase/internal/model"
)

// Source returns the projects of one category. Any error is a failed fetch.
type Source interface {
	Projects(ctx context.Context, category model.Category) ([]model.Project, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, category model.Category) ([]model.Project, error)

func (f SourceFunc) Projects(ctx context.Context, category model.Category) ([]model.Project, error) {
	return f(ctx, category)
}

// Request is the fetch a transition asks for.
type Request struct {
	Category model.Category
}

// Controller is the selected category, the last fetched list and the
// request status. The zero value is not usable; call New.
type Controller struct {
	category model.Category
	projects []model.Project
	status   model.Status
}

// New returns a controller in the initial state.
func New(category model.Category) *Controller {
	if category.Index() < 0 {
		category = model.DefaultCategory
	}
	return &Controller{category: category, status: model.StatusInitial}
}

func (c *Controller) Category() model.Category { return c.category }
func (c *Controller) Status() model.Status     { return c.status }

// Projects is the last successful list. It is only meaningful while the
// status is success; a failure keeps the previous list around.
func (c *Controller) Projects() []model.Project { return c.projects }

// Select stores category. Every selection is a change event and reports
// that a fetch is due, including re-selecting the current category.
func (c *Controller) Select(category model.Category) bool {
	if category.Index() < 0 {
		return false
	}
	c.category = category
	return true
}

// Begin enters inProgress and returns the request to issue.
func (c *Controller) Begin() Request {
	c.status = model.StatusInProgress
	return Request{Category: c.category}
}

// Retry re-issues the fetch for the current category.
func (c *Controller) Retry() Request { return c.Begin() }

// Resolve stores a fetched list and enters success. The list replaces the
// previous one wholesale.
func (c *Controller) Resolve(projects []model.Project) {
	if projects == nil {
		projects = []model.Project{}
	}
	c.projects = projects
	c.status = model.StatusSuccess
}

// Fail enters failure. No error detail is kept.
func (c *Controller) Fail() {
	c.status = model.StatusFailure
}

// Fetch runs Begin, calls src and settles the status. The source error is
// returned for logging only.
func (c *Controller) Fetch(ctx context.Context, src Source) error {
	req := c.Begin()
	projects, err := src.Projects(ctx, req.Category)
	if err != nil {
		c.Fail()
		return err
	}
	c.Resolve(projects)
	return nil
}
