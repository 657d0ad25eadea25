// Package wire provides dependency injection for the mdcombine application.
// It creates singleton services with lazy initialization.
package wire

import (
	"os"
	"sync"

	cliadapter "github.com/example/mdcombine/internal/adapters/cli"
	"github.com/example/mdcombine/internal/adapters/filesystem"
	"github.com/example/mdcombine/internal/app"
	"github.com/example/mdcombine/internal/ports/primary"
)

var (
	combineService primary.CombineService
	once           sync.Once
)

// CombineService returns the singleton CombineService instance.
func CombineService() primary.CombineService {
	once.Do(initServices)
	return combineService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	store := filesystem.NewDocumentAdapter()
	progress := cliadapter.NewProgressAdapter(os.Stdout)

	combineService = app.NewCombineService(store, progress)
}
