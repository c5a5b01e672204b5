package dirload

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/replicatedhq/dirload/pkg/config"
	"github.com/replicatedhq/dirload/pkg/crawl"
	"github.com/replicatedhq/dirload/pkg/fs"
	"github.com/replicatedhq/dirload/pkg/loader"
	"github.com/replicatedhq/dirload/pkg/logger"
	"github.com/replicatedhq/dirload/pkg/ui"
	"github.com/spf13/viper"
	"go.uber.org/dig"
)

func buildInjector(v *viper.Viper) (*dig.Container, error) {
	providers := []interface{}{
		func() *viper.Viper { return v },
		logger.FromViper,
		ui.FromViper,
		fs.FromViper,
		config.OptionsFromViper,

		loader.NewRegistry,
		func(r *loader.Registry) loader.Loader { return r },
		crawl.NewCrawler,

		NewApp,
	}

	container := dig.New()

	for _, provider := range providers {
		err := container.Provide(provider)
		if err != nil {
			return nil, errors.Wrap(err, "register providers")
		}
	}

	return container, nil
}

// Get builds an App from the global viper instance
func Get() (*App, error) {
	return GetFromViper(viper.GetViper())
}

// GetFromViper builds an App from v
func GetFromViper(v *viper.Viper) (*App, error) {
	// who injects the injectors?
	debug := log.With(level.Debug(logger.FromViper(v)), "component", "injector", "phase", "instance.get")

	debug.Log("event", "injector.build")
	injector, err := buildInjector(v)
	if err != nil {
		debug.Log("event", "injector.build.fail", "error", err)
		return nil, errors.Wrap(err, "build injector")
	}

	var app *App

	debug.Log("event", "injector.invoke")
	errorWhenConstructingApp := injector.Invoke(func(a *App) {
		debug.Log("event", "injector.invoke.resolve")
		app = a
	})

	if errorWhenConstructingApp != nil {
		debug.Log("event", "injector.invoke.fail", "err", errorWhenConstructingApp)
		return nil, errors.Wrap(errorWhenConstructingApp, "resolve dependencies")
	}
	return app, nil
}
