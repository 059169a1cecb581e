//go:generate mockgen -source=todo.go -destination=./mocks/todo_repository_mock.go -package=mocks
package repository

import (
	"context"
	"todo-go-backend/pkg/entity/model"
)

// Todo is an interface of repository
type Todo interface {
	Get(ctx context.Context, id int) (*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	Update(ctx context.Context, input model.UpdateTodoInput) (*model.Todo, error)
	Patch(ctx context.Context, input model.PatchTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, page model.Pagination) ([]*model.Todo, error)
	Count(ctx context.Context) (int, error)
}
