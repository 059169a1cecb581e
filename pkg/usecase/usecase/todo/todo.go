package usecase

import (
	"context"
	"todo-go-backend/pkg/entity/model"
	"todo-go-backend/pkg/usecase/repository"
)

type todoUseCase struct {
	todoRepository repository.Todo
}

type Todo interface {
	Get(ctx context.Context, id int) (*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	Update(ctx context.Context, input model.UpdateTodoInput) (*model.Todo, error)
	Patch(ctx context.Context, input model.PatchTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, page model.Pagination) ([]*model.Todo, error)
}

// This function creates new todo use case
func NewTodoUseCase(r repository.Todo) Todo {
	return &todoUseCase{todoRepository: r}
}

func (t *todoUseCase) Get(ctx context.Context, id int) (*model.Todo, error) {
	return t.todoRepository.Get(ctx, id)
}

func (t *todoUseCase) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	if err := ValidateCreateTodoInput(input); err != nil {
		return nil, err
	}
	return t.todoRepository.Create(ctx, input)
}

func (t *todoUseCase) Update(
	ctx context.Context,
	input model.UpdateTodoInput,
) (*model.Todo, error) {
	if err := ValidateUpdateTodoInput(input); err != nil {
		return nil, err
	}
	return t.todoRepository.Update(ctx, input)
}

// Patch still reaches the repository without fields so that a missing todo is reported.
func (t *todoUseCase) Patch(
	ctx context.Context,
	input model.PatchTodoInput,
) (*model.Todo, error) {
	if err := ValidatePatchTodoInput(input); err != nil {
		return nil, err
	}
	return t.todoRepository.Patch(ctx, input)
}

func (t *todoUseCase) Delete(ctx context.Context, id int) error {
	return t.todoRepository.Delete(ctx, id)
}

func (t *todoUseCase) List(
	ctx context.Context,
	page model.Pagination,
) ([]*model.Todo, error) {
	if err := ValidatePagination(page); err != nil {
		return nil, err
	}
	return t.todoRepository.List(ctx, page)
}
