package controller

import (
	"context"
	"todo-go-backend/pkg/entity/model"
	usecase "todo-go-backend/pkg/usecase/usecase/todo"
)

type Todo interface {
	Get(ctx context.Context, id int) (*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	Update(ctx context.Context, input model.UpdateTodoInput) (*model.Todo, error)
	Patch(ctx context.Context, input model.PatchTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, page model.Pagination) ([]*model.Todo, error)
}

type todoController struct {
	todoUseCase usecase.Todo
}

// Create new todo controller

func NewTodoController(tu usecase.Todo) Todo {
	return &todoController{todoUseCase: tu}
}

func (tc *todoController) Get(ctx context.Context, id int) (*model.Todo, error) {
	return tc.todoUseCase.Get(ctx, id)
}

func (tc *todoController) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	return tc.todoUseCase.Create(ctx, input)
}

func (tc *todoController) Update(
	ctx context.Context,
	input model.UpdateTodoInput,
) (*model.Todo, error) {
	return tc.todoUseCase.Update(ctx, input)
}

func (tc *todoController) Patch(
	ctx context.Context,
	input model.PatchTodoInput,
) (*model.Todo, error) {
	return tc.todoUseCase.Patch(ctx, input)
}

func (tc *todoController) Delete(ctx context.Context, id int) error {
	return tc.todoUseCase.Delete(ctx, id)
}

func (tc *todoController) List(
	ctx context.Context,
	page model.Pagination,
) ([]*model.Todo, error) {
	return tc.todoUseCase.List(ctx, page)
}
