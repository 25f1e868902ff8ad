package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"employee-tracker/config"
	"employee-tracker/internal/app/service"
	"employee-tracker/internal/delivery/cli"
	"employee-tracker/internal/delivery/cli/flows"
	"employee-tracker/internal/delivery/cli/prompt"
	"employee-tracker/internal/repository/sqlrepo"
	"employee-tracker/pkg/workerpool"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := sqlrepo.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("connect to database", zap.String("driver", cfg.Driver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("close database", zap.Error(err))
		}
	}()
	fmt.Println("Connected to the Employee Tracker database.")

	// two workers: add/update flows fetch roles and employees side by side
	pool := workerpool.NewWorkerPool(2, 8)
	defer pool.Close()

	handler := &cli.Handler{
		Env: flows.Env{
			Prompt:      prompt.PromptUI{},
			Out:         os.Stdout,
			Departments: service.NewDepartmentService(sqlrepo.NewDepartmentRepo(db)),
			Roles:       service.NewRoleService(sqlrepo.NewRoleRepo(db)),
			Employees:   service.NewEmployeeService(sqlrepo.NewEmployeeRepo(db)),
			Async:       service.NewAsyncService(pool),
		},
		Log: logger,
	}
	handler.Register()

	if err := handler.Run(ctx); err != nil {
		logger.Error("session ended", zap.Error(err))
	}
}

// newLogger writes human-readable lines to stderr so they do not mix with the
// tables on stdout.
func newLogger(level string) (*zap.Logger, error) {
	var cfg zap.Config
	if level == "debug" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.Sampling = nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
