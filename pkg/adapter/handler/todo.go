package handler

import (
	"net/http"

	"todo-go-backend/pkg/adapter/controller"
	"todo-go-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Todo serves the /todos endpoints.
type Todo struct {
	controller controller.Controller
	logger     *zap.SugaredLogger
}

// NewTodo creates the todo handlers.
func NewTodo(ctrl controller.Controller, logger *zap.SugaredLogger) *Todo {
	return &Todo{controller: ctrl, logger: logger}
}

func (h *Todo) fail(c echo.Context, err error) error {
	if status, _ := StatusOf(err); status >= http.StatusInternalServerError {
		h.logger.Errorw("todo request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"kind", model.ErrorKind(err),
			"error", err,
		)
	}
	return HandleError(c, err)
}

// Create handles POST /todos/.
func (h *Todo) Create(c echo.Context) error {
	var p todoPayload
	if err := bindBody(c, &p); err != nil {
		return h.fail(c, err)
	}
	input, err := p.createInput()
	if err != nil {
		return h.fail(c, err)
	}

	todo, err := h.controller.Todo.Create(c.Request().Context(), input)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, todo)
}

// List handles GET /todos/?skip=&limit=.
func (h *Todo) List(c echo.Context) error {
	page, err := bindPagination(c)
	if err != nil {
		return h.fail(c, err)
	}

	todos, err := h.controller.Todo.List(c.Request().Context(), page)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// Get handles GET /todos/:id.
func (h *Todo) Get(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return h.fail(c, err)
	}

	todo, err := h.controller.Todo.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, todo)
}

// Replace handles PUT /todos/:id.
func (h *Todo) Replace(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var p todoPayload
	if err := bindBody(c, &p); err != nil {
		return h.fail(c, err)
	}
	input, err := p.updateInput(id)
	if err != nil {
		return h.fail(c, err)
	}

	todo, err := h.controller.Todo.Update(c.Request().Context(), input)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, todo)
}

// Patch handles PATCH /todos/:id. Fields come from the JSON body and/or the
// query string; query values win.
func (h *Todo) Patch(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var p patchPayload
	if err := bindBody(c, &p); err != nil {
		return h.fail(c, err)
	}
	if err := p.mergeQuery(c); err != nil {
		return h.fail(c, err)
	}

	todo, err := h.controller.Todo.Patch(c.Request().Context(), p.patchInput(id))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, todo)
}

// Delete handles DELETE /todos/:id.
func (h *Todo) Delete(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.controller.Todo.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
