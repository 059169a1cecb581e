package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"todo-go-backend/config"
	"todo-go-backend/pkg/adapter/repository/todorepository"
	"todo-go-backend/pkg/infrastructure/datastore"
	"todo-go-backend/pkg/infrastructure/logger"
	"todo-go-backend/pkg/infrastructure/scheduler"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	store, err := datastore.NewStore()
	if err != nil {
		log.Fatalf("failed to open db connection: %v", err)
	}
	defer store.Close()

	lg := logger.New(config.C.Log.Level)
	defer lg.Sync()

	sched := scheduler.NewScheduler(store, todorepository.NewTodoRepository(store), lg)

	report, err := sched.RunHealthCheck(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "health check failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf(
		"Store health check succeeded. Checked at: %s, todos: %d, latency: %s\n",
		report.CheckedAt.Format("2006-01-02 15:04:05"),
		report.Todos,
		report.Latency,
	)
}
