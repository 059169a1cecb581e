package todorepository

import (
	"context"
	"database/sql"

	"todo-go-backend/pkg/entity/model"
	"todo-go-backend/pkg/infrastructure/datastore"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

func (r *todoRepository) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	var id int64
	err := r.store.Conn(ctx, func(conn entsql.Conn) error {
		insert := r.store.Builder().
			Insert(datastore.TodoTableName).
			Columns(datastore.TodoColumnTitle, datastore.TodoColumnDescription, datastore.TodoColumnDone).
			Values(input.Title, descriptionValue(input.Description), input.Done)

		// pgx does not report LastInsertId.
		if r.store.Dialect() == dialect.Postgres {
			query, args := insert.Returning(datastore.TodoColumnID).Query()
			var rows entsql.Rows
			if err := conn.Query(ctx, query, args, &rows); err != nil {
				return err
			}
			defer rows.Close()
			if !rows.Next() {
				if err := rows.Err(); err != nil {
					return err
				}
				return sql.ErrNoRows
			}
			if err := rows.Scan(&id); err != nil {
				return err
			}
			return rows.Err()
		}

		query, args := insert.Query()
		var res sql.Result
		if err := conn.Exec(ctx, query, args, &res); err != nil {
			return err
		}
		lastID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		id = lastID
		return nil
	})
	if err != nil {
		return nil, model.NewDBError(err)
	}

	return &model.Todo{
		ID:          int(id),
		Title:       input.Title,
		Description: input.Description,
		Done:        input.Done,
	}, nil
}
