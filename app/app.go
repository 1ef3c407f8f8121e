package app

import (
	"github.com/mbolis/quick-forms/config"
	"github.com/mbolis/quick-forms/store"
)

type App struct {
	*store.Store
	config.Config
}
