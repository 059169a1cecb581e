package registry

import (
	"todo-go-backend/pkg/adapter/controller"
	todorepository "todo-go-backend/pkg/adapter/repository/todorepository"
	usecase "todo-go-backend/pkg/usecase/usecase/todo"
)

func (r *registry) NewTodoController() controller.Todo {
	repo := todorepository.NewTodoRepository(r.store)
	u := usecase.NewTodoUseCase(repo)

	return controller.NewTodoController(u)
}
