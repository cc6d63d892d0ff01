package logger

import (
	"context"
	"testing"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/foodmarket/internal/config"
)

func TestModuleProvidesLogger(t *testing.T) {
	var resolved *zap.Logger
	app := fx.New(
		fx.Supply(&config.Config{LogLevel: "warn"}),
		Module,
		fx.Populate(&resolved),
	)
	t.Cleanup(func() { _ = app.Stop(context.Background()) })
	if err := app.Err(); err != nil {
		t.Fatalf("fx app failed: %v", err)
	}
	if resolved == nil {
		t.Fatal("expected logger to be populated")
	}
}

func TestModuleFailsOnBadLevel(t *testing.T) {
	app := fx.New(
		fx.Supply(&config.Config{LogLevel: "loud"}),
		Module,
		fx.Invoke(func(*zap.Logger) {}),
	)
	if app.Err() == nil {
		t.Fatal("expected fx app error for invalid level")
	}
}
