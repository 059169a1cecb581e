package e2e

import (
	"net/http"
	"testing"

	"todo-go-backend/config"
	"todo-go-backend/pkg/adapter/handler"
	"todo-go-backend/pkg/infrastructure/datastore"
	"todo-go-backend/pkg/infrastructure/logger"
	"todo-go-backend/pkg/infrastructure/router"
	"todo-go-backend/pkg/registry"
	"todo-go-backend/testutil"

	"github.com/gavv/httpexpect/v2"
)

// SetupOption is an option of Setup. Teardown defaults to testutil.DropAll.
type SetupOption struct {
	Teardown func(t *testing.T, store *datastore.Store)
	CORS     router.CORSOptions
}

// Setup wires the whole app on a fresh sqlite store and returns an
// httpexpect client bound to it without opening a port.
func Setup(t *testing.T, option SetupOption) (*httpexpect.Expect, *datastore.Store, func()) {
	t.Helper()

	store := testutil.NewStore(t)
	ctrl := registry.New(store).NewController()
	log := logger.NewNop()

	cors := option.CORS
	if len(cors.AllowOrigins) == 0 {
		testutil.ReadConfigE2E()
		cors = router.CORSOptions{
			AllowOrigins:     config.C.CORS.AllowOrigins,
			AllowMethods:     config.C.CORS.AllowMethods,
			AllowHeaders:     config.C.CORS.AllowHeaders,
			AllowCredentials: config.C.CORS.AllowCredentials,
		}
	}

	e := router.New(handler.NewTodo(ctrl, log), router.Options{
		CORS:       cors,
		Logger:     log,
		SkipLogger: true,
	})

	expect := httpexpect.WithConfig(httpexpect.Config{
		BaseURL: "http://example.com",
		Client: &http.Client{
			Transport: httpexpect.NewBinder(e),
			Jar:       httpexpect.NewCookieJar(),
		},
		Reporter: httpexpect.NewAssertReporter(t),
		Printers: []httpexpect.Printer{
			httpexpect.NewCompactPrinter(t),
		},
	})

	teardown := option.Teardown
	if teardown == nil {
		teardown = testutil.DropAll
	}
	return expect, store, func() {
		teardown(t, store)
	}
}
