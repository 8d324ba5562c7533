package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/khanhnv2901/crowdrisk/internal/application"
)

// AppContext carries the state shared by every command invocation.
type AppContext struct {
	Logger   *zap.SugaredLogger
	Config   *CLIConfig
	Services *application.Container
}

type appContextKey struct{}

var globalAppContext *AppContext

func storeAppContext(cmd *cobra.Command, appCtx *AppContext) {
	globalAppContext = appCtx
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, appContextKey{}, appCtx))
}

func getAppContext(cmd *cobra.Command) *AppContext {
	if cmd != nil && cmd.Context() != nil {
		if appCtx, ok := cmd.Context().Value(appContextKey{}).(*AppContext); ok {
			return appCtx
		}
	}
	if globalAppContext != nil {
		return globalAppContext
	}
	return &AppContext{Logger: zap.NewNop().Sugar(), Config: cliConfig}
}

// services opens the entry store on first use; analyzer commands never touch it.
func (a *AppContext) services() (*application.Container, error) {
	if a.Services != nil {
		return a.Services, nil
	}
	container, err := application.NewContainer(a.Config.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	a.Services = container
	a.Logger.Debugf("database=%s opened", a.Config.DatabasePath)
	return container, nil
}

func (a *AppContext) close() error {
	if a == nil || a.Services == nil {
		return nil
	}
	err := a.Services.Close()
	a.Services = nil
	return err
}
