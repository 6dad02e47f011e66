// Package wire provides dependency injection for the foia application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/foia/internal/adapters/sqlite"
	"github.com/example/foia/internal/app"
	"github.com/example/foia/internal/config"
	"github.com/example/foia/internal/db"
	"github.com/example/foia/internal/letter"
	"github.com/example/foia/internal/ports/primary"
	"github.com/example/foia/internal/store"
)

var (
	requestService primary.RequestService
	once           sync.Once
)

// RequestService returns the singleton RequestService instance.
func RequestService() primary.RequestService {
	once.Do(initServices)
	return requestService
}

// Sender returns the letterhead sender built from the requester profile.
// A missing or unreadable profile yields placeholder fields.
func Sender() letter.Sender {
	dir, err := config.DefaultDir()
	if err != nil {
		return letter.Sender{}
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return letter.Sender{}
	}
	return letter.Sender{
		Name:         cfg.Name,
		Address:      cfg.Address,
		CityStateZip: cfg.CityStateZip,
		Email:        cfg.Email,
		Phone:        cfg.Phone,
	}
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	blobs := sqlite.NewBlobStore(database)
	requests := store.NewRequests(blobs)

	requestService = app.NewRequestService(requests, Sender())
}
