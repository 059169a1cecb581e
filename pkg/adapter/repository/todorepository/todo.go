package todorepository

import (
	"database/sql"

	"todo-go-backend/pkg/entity/model"
	"todo-go-backend/pkg/infrastructure/datastore"
	ur "todo-go-backend/pkg/usecase/repository"
)

type todoRepository struct {
	store *datastore.Store
}

// NewTodoRepository returns a repository running one statement per call.
func NewTodoRepository(store *datastore.Store) ur.Todo {
	return &todoRepository{store}
}

// todoRow is the store's native representation of a todo.
type todoRow struct {
	ID          int64
	Title       string
	Description sql.NullString
	Done        bool
}

// scanArgs must follow datastore.TodoTable column order.
func (r *todoRow) scanArgs() []any {
	return []any{&r.ID, &r.Title, &r.Description, &r.Done}
}

func (r *todoRow) toModel() *model.Todo {
	t := &model.Todo{
		ID:    int(r.ID),
		Title: r.Title,
		Done:  r.Done,
	}
	if r.Description.Valid {
		d := r.Description.String
		t.Description = &d
	}
	return t
}

// descriptionValue maps a nullable description to a driver value.
func descriptionValue(d *string) any {
	if d == nil {
		return nil
	}
	return *d
}
