package main

import (
	"go-employee-directory/internal/app"
	"go-employee-directory/internal/config"
	"go-employee-directory/internal/department"
	"go-employee-directory/internal/employee"
	"go-employee-directory/internal/job"
	"go-employee-directory/internal/office"
	"go-employee-directory/internal/shared/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// commandDeps holds what the commands need from the outside world, so tests
// can run them against a mock service.
type commandDeps struct {
	LoadConfig  func() (config.Config, error)
	OpenService func(cfg config.Config) (employee.Service, func(), error)
}

func defaultDeps() *commandDeps {
	return &commandDeps{
		LoadConfig:  config.Load,
		OpenService: openService,
	}
}

// openService connects to the stores the way the API does. Logs go to stderr
// so they never mix with command output.
func openService(cfg config.Config) (employee.Service, func(), error) {
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, nil, err
	}
	zap.ReplaceGlobals(log)

	db, rdb, closeStores, err := app.ConnectStores(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		closeStores()
		_ = log.Sync()
	}

	svc := employee.NewService(employee.NewRepository(db), employee.Lookups{
		Departments: department.NewRepository(db),
		Jobs:        job.NewRepository(db),
		Offices:     office.NewRepository(db),
	}, rdb, cfg.PageSize, log)

	return svc, cleanup, nil
}

func newRootCommand(deps *commandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Query the employee directory",
		Long: `Query the employee directory.

Connection settings come from the same environment variables as the API
(DB_HOST, DB_USER, DB_PASSWORD, DB_NAME, DB_PORT, DB_SSLMODE, REDIS_ADDR,
EMPLOYEE_PAGE_SIZE), read from .env when present.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newEmployeesCommand(deps))

	return cmd
}
