package todorepository

import (
	"context"

	"todo-go-backend/pkg/entity/model"
	"todo-go-backend/pkg/infrastructure/datastore"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *todoRepository) Get(ctx context.Context, id int) (*model.Todo, error) {
	var res *model.Todo
	err := r.store.Conn(ctx, func(conn entsql.Conn) error {
		t, err := r.get(ctx, conn, id)
		res = t
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

// get selects one row on an already acquired connection.
func (r *todoRepository) get(ctx context.Context, conn entsql.Conn, id int) (*model.Todo, error) {
	query, args := r.store.Builder().
		Select(datastore.TodoTable.ColumnNames()...).
		From(entsql.Table(datastore.TodoTableName)).
		Where(entsql.EQ(datastore.TodoColumnID, id)).
		Query()

	var rows entsql.Rows
	if err := conn.Query(ctx, query, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, model.NewNotFoundError(nil, id)
	}
	var row todoRow
	if err := rows.Scan(row.scanArgs()...); err != nil {
		return nil, err
	}
	return row.toModel(), rows.Err()
}

func (r *todoRepository) List(
	ctx context.Context,
	page model.Pagination,
) ([]*model.Todo, error) {
	todos := make([]*model.Todo, 0)
	err := r.store.Conn(ctx, func(conn entsql.Conn) error {
		query, args := r.store.Builder().
			Select(datastore.TodoTable.ColumnNames()...).
			From(entsql.Table(datastore.TodoTableName)).
			OrderBy(datastore.TodoColumnID).
			Limit(page.Limit).
			Offset(page.Skip).
			Query()

		var rows entsql.Rows
		if err := conn.Query(ctx, query, args, &rows); err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var row todoRow
			if err := rows.Scan(row.scanArgs()...); err != nil {
				return err
			}
			todos = append(todos, row.toModel())
		}
		return rows.Err()
	})
	if err != nil {
		return nil, model.NewDBError(err)
	}

	return todos, nil
}

func (r *todoRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.store.Conn(ctx, func(conn entsql.Conn) error {
		query, args := r.store.Builder().
			Select(entsql.Count("*")).
			From(entsql.Table(datastore.TodoTableName)).
			Query()

		var rows entsql.Rows
		if err := conn.Query(ctx, query, args, &rows); err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			if err := rows.Scan(&count); err != nil {
				return err
			}
		}
		return rows.Err()
	})
	if err != nil {
		return 0, model.NewDBError(err)
	}

	return count, nil
}
