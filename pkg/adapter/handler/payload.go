package handler

import (
	"fmt"

	"todo-go-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// todoPayload is the JSON body of create and replace requests.
// An id in the body is ignored.
type todoPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Done        *bool   `json:"done"`
}

func (p todoPayload) validate() error {
	if p.Title == nil {
		return model.NewValidationError(
			model.NewInvalidParamError("title", errors.New("field required")),
		)
	}
	return nil
}

func (p todoPayload) done() bool {
	return p.Done != nil && *p.Done
}

func (p todoPayload) createInput() (model.CreateTodoInput, error) {
	if err := p.validate(); err != nil {
		return model.CreateTodoInput{}, err
	}
	return model.CreateTodoInput{
		Title:       *p.Title,
		Description: p.Description,
		Done:        p.done(),
	}, nil
}

func (p todoPayload) updateInput(id int) (model.UpdateTodoInput, error) {
	if err := p.validate(); err != nil {
		return model.UpdateTodoInput{}, err
	}
	return model.UpdateTodoInput{
		ID:          id,
		Title:       *p.Title,
		Description: p.Description,
		Done:        p.done(),
	}, nil
}

// patchPayload is the optional JSON body of partial updates.
type patchPayload struct {
	Title       *string              `json:"title"`
	Description model.OptionalString `json:"description"`
	Done        *bool                `json:"done"`
}

// mergeQuery overrides body fields with query parameters that are present.
func (p *patchPayload) mergeQuery(c echo.Context) error {
	q := c.QueryParams()
	if q.Has("title") {
		title := q.Get("title")
		p.Title = &title
	}
	if q.Has("description") {
		p.Description = model.NewOptionalString(q.Get("description"))
	}
	if q.Has("done") {
		var done bool
		if err := echo.QueryParamsBinder(c).Bool("done", &done).BindError(); err != nil {
			return model.NewValidationError(
				model.NewInvalidParamError("done", errors.New("must be a boolean")),
			)
		}
		p.Done = &done
	}
	return nil
}

func (p patchPayload) patchInput(id int) model.PatchTodoInput {
	return model.PatchTodoInput{
		ID:          id,
		Title:       p.Title,
		Description: p.Description,
		Done:        p.Done,
	}
}

// bindBody decodes the request body and reports failures as validation errors.
func bindBody(c echo.Context, dst interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return model.NewValidationError(errors.New(fmt.Sprint(he.Message)))
		}
		return model.NewValidationError(err)
	}
	return nil
}

// bindID reads the :id path parameter.
func bindID(c echo.Context) (int, error) {
	var id int
	if err := echo.PathParamsBinder(c).MustInt("id", &id).BindError(); err != nil {
		return 0, model.NewValidationError(
			model.NewInvalidParamError("id", errors.New("must be an integer")),
		)
	}
	return id, nil
}

// bindPagination reads skip and limit, falling back to the defaults.
func bindPagination(c echo.Context) (model.Pagination, error) {
	page := model.NewPagination()
	err := echo.QueryParamsBinder(c).
		Int("skip", &page.Skip).
		Int("limit", &page.Limit).
		BindError()
	if err != nil {
		var be *echo.BindingError
		if errors.As(err, &be) && len(be.Field) > 0 {
			return page, model.NewValidationError(
				model.NewInvalidParamError(be.Field, errors.New("must be an integer")),
			)
		}
		return page, model.NewValidationError(err)
	}
	return page, nil
}
