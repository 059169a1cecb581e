package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-go-backend/config"
	"todo-go-backend/pkg/adapter/controller"
	"todo-go-backend/pkg/adapter/handler"
	"todo-go-backend/pkg/adapter/repository/todorepository"
	"todo-go-backend/pkg/infrastructure/datastore"
	"todo-go-backend/pkg/infrastructure/logger"
	"todo-go-backend/pkg/infrastructure/router"
	"todo-go-backend/pkg/infrastructure/scheduler"
	"todo-go-backend/pkg/registry"

	"go.uber.org/zap"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	lg := logger.New(config.C.Log.Level)
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := newStore(ctx)
	defer store.Close()

	ctrl := newController(store)

	e := router.New(handler.NewTodo(ctrl, lg), router.Options{
		CORS: router.CORSOptions{
			AllowOrigins:     config.C.CORS.AllowOrigins,
			AllowMethods:     config.C.CORS.AllowMethods,
			AllowHeaders:     config.C.CORS.AllowHeaders,
			AllowCredentials: config.C.CORS.AllowCredentials,
		},
		Logger: lg,
	})

	sched := scheduler.NewScheduler(store, todorepository.NewTodoRepository(store), lg)
	if err := sched.Start(ctx, config.C.Cron.HealthCheckSchedule); err != nil {
		lg.Fatalw("failed to start scheduler", "error", err)
	}
	defer sched.Stop()

	go func() {
		lg.Infow("starting server", "app", config.C.AppName, "env", config.C.AppEnv, "address", config.C.Server.Address)
		if err := e.Start(":" + config.C.Server.Address); err != nil && err != http.ErrServerClosed {
			lg.Errorw("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdown(e.Shutdown, lg)
}

func shutdown(fn func(context.Context) error, lg *zap.SugaredLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := fn(ctx); err != nil {
		lg.Errorw("failed to shut down server", "error", err)
	}
}

func newStore(ctx context.Context) *datastore.Store {
	store, err := datastore.NewStore()
	if err != nil {
		log.Fatalf("Failed to open db connection: %v", err)
	}
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("failed creating schema resources: %v", err)
	}
	return store
}

func newController(store *datastore.Store) controller.Controller {
	r := registry.New(store)
	return r.NewController()
}
