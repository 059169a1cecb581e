package main

import (
	"context"
	"log"

	"todo-go-backend/config"
	"todo-go-backend/pkg/infrastructure/datastore"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	store, err := datastore.NewStore()
	if err != nil {
		log.Fatalf("failed opening %s store: %v", config.C.Database.Driver, err)
	}
	defer store.Close()
	createDBSchema(store)
}

func createDBSchema(store *datastore.Store) {
	if err := store.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("failed creating schema resources: %v", err)
	}
	log.Printf("schema ready on %s", store.Dialect())
}
