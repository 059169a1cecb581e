package todorepository

import (
	"context"
	"database/sql"

	"todo-go-backend/pkg/entity/model"
	"todo-go-backend/pkg/infrastructure/datastore"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *todoRepository) Update(
	ctx context.Context,
	input model.UpdateTodoInput,
) (*model.Todo, error) {
	err := r.store.Conn(ctx, func(conn entsql.Conn) error {
		update := r.store.Builder().
			Update(datastore.TodoTableName).
			Set(datastore.TodoColumnTitle, input.Title).
			Set(datastore.TodoColumnDone, input.Done).
			Where(entsql.EQ(datastore.TodoColumnID, input.ID))
		setDescription(update, input.Description)

		return r.execMatched(ctx, conn, update, input.ID)
	})
	if err != nil {
		if model.IsNotFoundError(err) {
			return nil, err
		}
		return nil, model.NewDBError(err)
	}

	return &model.Todo{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Done:        input.Done,
	}, nil
}

// Patch writes only the supplied fields and returns the row as stored afterwards.
func (r *todoRepository) Patch(
	ctx context.Context,
	input model.PatchTodoInput,
) (*model.Todo, error) {
	var res *model.Todo
	err := r.store.Conn(ctx, func(conn entsql.Conn) error {
		if !input.IsEmpty() {
			update := r.store.Builder().
				Update(datastore.TodoTableName).
				Where(entsql.EQ(datastore.TodoColumnID, input.ID))
			if input.Title != nil {
				update.Set(datastore.TodoColumnTitle, *input.Title)
			}
			if input.Description.Set {
				setDescription(update, input.Description.Value)
			}
			if input.Done != nil {
				update.Set(datastore.TodoColumnDone, *input.Done)
			}
			if err := r.execMatched(ctx, conn, update, input.ID); err != nil {
				return err
			}
		}

		current, err := r.get(ctx, conn, input.ID)
		res = current
		return err
	})
	if err != nil {
		if model.IsNotFoundError(err) {
			return nil, err
		}
		return nil, model.NewDBError(err)
	}
	return res, nil
}

// execMatched runs a single-row statement and reports a NotFoundError when
// no row matched id. mysql counts matched rather than changed rows because
// NewDSN enables ClientFoundRows.
func (r *todoRepository) execMatched(ctx context.Context, conn entsql.Conn, q entsql.Querier, id int) error {
	query, args := q.Query()
	var res sql.Result
	if err := conn.Exec(ctx, query, args, &res); err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.NewNotFoundError(nil, id)
	}
	return nil
}

func setDescription(u *entsql.UpdateBuilder, d *string) {
	if d == nil {
		u.SetNull(datastore.TodoColumnDescription)
		return
	}
	u.Set(datastore.TodoColumnDescription, *d)
}
