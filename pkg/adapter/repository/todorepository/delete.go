package todorepository

import (
	"context"

	"todo-go-backend/pkg/entity/model"
	"todo-go-backend/pkg/infrastructure/datastore"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *todoRepository) Delete(ctx context.Context, id int) error {
	err := r.store.Conn(ctx, func(conn entsql.Conn) error {
		del := r.store.Builder().
			Delete(datastore.TodoTableName).
			Where(entsql.EQ(datastore.TodoColumnID, id))
		return r.execMatched(ctx, conn, del, id)
	})
	if err != nil {
		if model.IsNotFoundError(err) {
			return err
		}
		return model.NewDBError(err)
	}
	return nil
}
