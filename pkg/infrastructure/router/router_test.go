package router_test

import (
	"net/http"
	"testing"

	"todo-go-backend/pkg/infrastructure/datastore"
	"todo-go-backend/pkg/infrastructure/router"
	"todo-go-backend/testutil"
	"todo-go-backend/testutil/e2e"

	"github.com/gavv/httpexpect/v2"
)

func teardownTodos(t *testing.T, store *datastore.Store) {
	testutil.DropTodo(t, store)
}

func TestTodo_Scenario(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{Teardown: teardownTodos})
	defer teardown()

	created := expect.POST("/todos/").
		WithJSON(map[string]interface{}{"title": "Buy milk"}).
		Expect().
		Status(http.StatusCreated).
		JSON().Object()
	created.IsEqual(map[string]interface{}{
		"id":          1,
		"title":       "Buy milk",
		"description": nil,
		"done":        false,
	})

	expect.GET("/todos/1").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		IsEqual(created.Raw())

	expect.PATCH("/todos/1").
		WithQuery("done", "true").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		IsEqual(map[string]interface{}{
			"id":          1,
			"title":       "Buy milk",
			"description": nil,
			"done":        true,
		})

	expect.DELETE("/todos/1").
		Expect().
		Status(http.StatusNoContent).
		Body().IsEmpty()

	expect.GET("/todos/1").
		Expect().
		Status(http.StatusNotFound).
		JSON().Object().
		IsEqual(map[string]interface{}{"detail": "Todo not found"})
}

func TestTodo_Create(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{Teardown: teardownTodos})
	defer teardown()

	tests := []struct {
		name   string
		act    func() *httpexpect.Response
		assert func(t *testing.T, got *httpexpect.Response)
	}{
		{
			name: "It should create a todo with every field and ignore a supplied id",
			act: func() *httpexpect.Response {
				return expect.POST("/todos/").WithJSON(map[string]interface{}{
					"id":          999,
					"title":       "Write report",
					"description": "quarterly",
					"done":        true,
				}).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				obj := got.Status(http.StatusCreated).JSON().Object()
				obj.Value("id").Number().NotEqual(999)
				obj.Value("title").String().IsEqual("Write report")
				obj.Value("description").String().IsEqual("quarterly")
				obj.Value("done").Boolean().IsTrue()
			},
		},
		{
			name: "It should accept the collection path without a trailing slash",
			act: func() *httpexpect.Response {
				return expect.POST("/todos").WithJSON(map[string]interface{}{"title": "no slash"}).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusCreated)
			},
		},
		{
			name: "It should reject a missing title",
			act: func() *httpexpect.Response {
				return expect.POST("/todos/").WithJSON(map[string]interface{}{"description": "x"}).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusBadRequest).
					JSON().Object().Value("detail").String().IsEqual("title: field required")
			},
		},
		{
			name: "It should reject a title of the wrong type",
			act: func() *httpexpect.Response {
				return expect.POST("/todos/").WithJSON(map[string]interface{}{"title": 12}).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusBadRequest)
			},
		},
		{
			name: "It should reject malformed JSON",
			act: func() *httpexpect.Response {
				return expect.POST("/todos/").
					WithHeader("Content-Type", "application/json").
					WithText(`{"title":`).
					Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusBadRequest)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.assert(t, tt.act())
		})
	}
}

func TestTodo_List(t *testing.T) {
	expect, store, teardown := e2e.Setup(t, e2e.SetupOption{Teardown: teardownTodos})
	defer teardown()

	expect.GET("/todos/").
		WithQuery("skip", 0).
		WithQuery("limit", 100).
		Expect().
		Status(http.StatusOK).
		JSON().Array().IsEmpty()

	for _, title := range []string{"a", "b", "c", "d"} {
		expect.POST("/todos/").WithJSON(map[string]interface{}{"title": title}).
			Expect().Status(http.StatusCreated)
	}

	all := expect.GET("/todos/").Expect().Status(http.StatusOK).JSON().Array()
	all.Length().IsEqual(4)
	all.Value(0).Object().Value("title").String().IsEqual("a")

	window := expect.GET("/todos").
		WithQuery("skip", 1).
		WithQuery("limit", 2).
		Expect().
		Status(http.StatusOK).
		JSON().Array()
	window.Length().IsEqual(2)
	window.Value(0).Object().Value("title").String().IsEqual("b")
	window.Value(1).Object().Value("title").String().IsEqual("c")

	expect.GET("/todos/").WithQuery("limit", "many").
		Expect().Status(http.StatusBadRequest)
	expect.GET("/todos/").WithQuery("skip", -1).
		Expect().Status(http.StatusBadRequest)

	testutil.DropTodo(t, store)
	expect.GET("/todos/").Expect().Status(http.StatusOK).JSON().Array().IsEmpty()
}

func TestTodo_Get(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{Teardown: teardownTodos})
	defer teardown()

	created := expect.POST("/todos/").
		WithJSON(map[string]interface{}{"title": "Buy milk", "description": "2 litres"}).
		Expect().Status(http.StatusCreated).JSON().Object()
	id := int(created.Value("id").Number().Raw())

	expect.GET("/todos/{id}", id).
		Expect().Status(http.StatusOK).
		JSON().Object().IsEqual(created.Raw())

	expect.GET("/todos/{id}", id+1).
		Expect().Status(http.StatusNotFound).
		JSON().Object().Value("detail").String().IsEqual("Todo not found")

	expect.GET("/todos/abc").
		Expect().Status(http.StatusBadRequest)
}

func TestTodo_NonPositiveID(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{Teardown: teardownTodos})
	defer teardown()

	expect.POST("/todos/").WithJSON(map[string]interface{}{"title": "Buy milk"}).
		Expect().Status(http.StatusCreated)

	notFound := map[string]interface{}{"detail": "Todo not found"}
	for _, id := range []int{0, -1} {
		expect.GET("/todos/{id}", id).
			Expect().Status(http.StatusNotFound).
			JSON().Object().IsEqual(notFound)
		expect.PUT("/todos/{id}", id).WithJSON(map[string]interface{}{"title": "x"}).
			Expect().Status(http.StatusNotFound).
			JSON().Object().IsEqual(notFound)
		expect.PATCH("/todos/{id}", id).WithQuery("done", "true").
			Expect().Status(http.StatusNotFound).
			JSON().Object().IsEqual(notFound)
		expect.DELETE("/todos/{id}", id).
			Expect().Status(http.StatusNotFound).
			JSON().Object().IsEqual(notFound)
	}

	expect.GET("/todos/").Expect().Status(http.StatusOK).JSON().Array().Length().IsEqual(1)
}

func TestTodo_Replace(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{Teardown: teardownTodos})
	defer teardown()

	id := int(expect.POST("/todos/").
		WithJSON(map[string]interface{}{"title": "draft", "description": "old", "done": true}).
		Expect().Status(http.StatusCreated).
		JSON().Object().Value("id").Number().Raw())

	body := map[string]interface{}{"id": 12345, "title": "final"}
	want := map[string]interface{}{"id": id, "title": "final", "description": nil, "done": false}

	// Replacing twice with the same body yields the same state.
	for i := 0; i < 2; i++ {
		expect.PUT("/todos/{id}", id).WithJSON(body).
			Expect().Status(http.StatusOK).
			JSON().Object().IsEqual(want)
		expect.GET("/todos/{id}", id).
			Expect().Status(http.StatusOK).
			JSON().Object().IsEqual(want)
	}

	expect.PUT("/todos/{id}", id+1).WithJSON(body).
		Expect().Status(http.StatusNotFound).
		JSON().Object().Value("detail").String().IsEqual("Todo not found")

	expect.PUT("/todos/{id}", id).WithJSON(map[string]interface{}{"done": true}).
		Expect().Status(http.StatusBadRequest)
}

func TestTodo_Patch(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{Teardown: teardownTodos})
	defer teardown()

	stored := map[string]interface{}{"title": "Buy milk", "description": "2 litres", "done": false}
	id := int(expect.POST("/todos/").WithJSON(stored).
		Expect().Status(http.StatusCreated).
		JSON().Object().Value("id").Number().Raw())
	stored["id"] = id

	tests := []struct {
		name   string
		act    func() *httpexpect.Response
		assert func(t *testing.T, got *httpexpect.Response)
	}{
		{
			name: "It should leave the record unchanged without fields",
			act: func() *httpexpect.Response {
				return expect.PATCH("/todos/{id}", id).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusOK).JSON().Object().IsEqual(stored)
			},
		},
		{
			name: "It should only set done from a JSON body",
			act: func() *httpexpect.Response {
				return expect.PATCH("/todos/{id}", id).
					WithJSON(map[string]interface{}{"done": true}).
					Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				obj := got.Status(http.StatusOK).JSON().Object()
				obj.Value("title").String().IsEqual("Buy milk")
				obj.Value("description").String().IsEqual("2 litres")
				obj.Value("done").Boolean().IsTrue()
			},
		},
		{
			name: "It should let query parameters override the body",
			act: func() *httpexpect.Response {
				return expect.PATCH("/todos/{id}", id).
					WithQuery("title", "Buy oat milk").
					WithJSON(map[string]interface{}{"title": "ignored"}).
					Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				obj := got.Status(http.StatusOK).JSON().Object()
				obj.Value("title").String().IsEqual("Buy oat milk")
				obj.Value("description").String().IsEqual("2 litres")
			},
		},
		{
			name: "It should clear the description on explicit null",
			act: func() *httpexpect.Response {
				return expect.PATCH("/todos/{id}", id).
					WithJSON(map[string]interface{}{"description": nil}).
					Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				obj := got.Status(http.StatusOK).JSON().Object()
				obj.Value("description").IsNull()
				obj.Value("title").String().IsEqual("Buy oat milk")
			},
		},
		{
			name: "It should reject a non boolean done",
			act: func() *httpexpect.Response {
				return expect.PATCH("/todos/{id}", id).WithQuery("done", "maybe").Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusBadRequest)
			},
		},
		{
			name: "It should report a missing todo",
			act: func() *httpexpect.Response {
				return expect.PATCH("/todos/{id}", id+1).WithQuery("done", "true").Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusNotFound).
					JSON().Object().Value("detail").String().IsEqual("Todo not found")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.assert(t, tt.act())
		})
	}
}

func TestTodo_Delete(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{Teardown: teardownTodos})
	defer teardown()

	id := int(expect.POST("/todos/").WithJSON(map[string]interface{}{"title": "temp"}).
		Expect().Status(http.StatusCreated).
		JSON().Object().Value("id").Number().Raw())

	expect.DELETE("/todos/{id}", id).Expect().Status(http.StatusNoContent).Body().IsEmpty()
	expect.GET("/todos/{id}", id).Expect().Status(http.StatusNotFound)
	expect.DELETE("/todos/{id}", id).
		Expect().Status(http.StatusNotFound).
		JSON().Object().Value("detail").String().IsEqual("Todo not found")
}

func TestRouter_Ambient(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{})
	defer teardown()

	expect.GET(router.HealthCheckPath).
		Expect().Status(http.StatusOK).
		Text().IsEqual("ok")

	resp := expect.GET("/todos/").Expect().Status(http.StatusOK)
	resp.Header("X-Request-Id").NotEmpty()

	expect.GET("/nowhere").
		Expect().Status(http.StatusNotFound).
		JSON().Object().ContainsKey("detail")

	preflight := expect.OPTIONS("/todos/").
		WithHeader("Origin", "http://frontend.test").
		WithHeader("Access-Control-Request-Method", http.MethodPatch).
		WithHeader("Access-Control-Request-Headers", "X-Custom").
		Expect().
		Status(http.StatusNoContent)
	preflight.Header("Access-Control-Allow-Origin").IsEqual("http://frontend.test")
	preflight.Header("Access-Control-Allow-Credentials").IsEqual("true")
	preflight.Header("Access-Control-Allow-Headers").IsEqual("X-Custom")
}
