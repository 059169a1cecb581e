package registry

import (
	"todo-go-backend/pkg/adapter/controller"
	"todo-go-backend/pkg/infrastructure/datastore"
)

type registry struct {
	store *datastore.Store
}

// Registry is an interface of registry
type Registry interface {
	NewController() controller.Controller
}

// New registers entire controller with dependencies
func New(store *datastore.Store) Registry {
	return &registry{store: store}
}

// NewController generates controllers
func (r *registry) NewController() controller.Controller {
	return controller.Controller{
		Todo: r.NewTodoController(),
	}
}
