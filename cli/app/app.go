// Package app holds the application handle passed to template operations.
package app

import (
	"github.com/zeroclickinfo/duckgen/cli/repository"
)

// App gives templates access to the application environment.
type App struct {
	repo    *repository.Repository
	workDir string
}

// New creates an application handle.
func New(repo *repository.Repository, workDir string) *App {
	return &App{repo: repo, workDir: workDir}
}

// Repository returns the instant answer repository being worked on.
func (app *App) Repository() *repository.Repository {
	return app.repo
}

// WorkDir returns the directory duckgen was invoked from.
func (app *App) WorkDir() string {
	return app.workDir
}
