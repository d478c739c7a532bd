package main

import (
	"fmt"

	"go-employee-directory/internal/employee"
	"go-employee-directory/internal/shared/response"

	"github.com/spf13/cobra"
)

type filterFlags struct {
	query  string
	status string
	job    string
	office string
	output string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "Match first name, last name or department (case-insensitive)")
	cmd.Flags().StringVar(&f.status, "status", "", "ACTIVE, INACTIVE or TERMINATED (default: any)")
	cmd.Flags().StringVar(&f.job, "job", "", "Exact job title, case-insensitive (default: any)")
	cmd.Flags().StringVar(&f.office, "office", "", "Exact office name, case-insensitive (default: any)")
	cmd.Flags().StringVarP(&f.output, "output", "o", string(outputTable), "Output format: table, json, yaml")
}

func (f *filterFlags) filter() (employee.Filter, error) {
	filter, err := employee.NewFilter(f.query, f.status, f.job, f.office)
	if err != nil {
		return employee.Filter{}, fmt.Errorf("--status %q: %w", f.status, err)
	}
	return filter, nil
}

func newEmployeesCommand(deps *commandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Short:   "List and count employees",
		Aliases: []string{"employee", "emp"},
	}

	cmd.AddCommand(newEmployeesListCommand(deps))
	cmd.AddCommand(newEmployeesCountCommand(deps))

	return cmd
}

func newEmployeesListCommand(deps *commandDeps) *cobra.Command {
	var (
		flags filterFlags
		page  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show one page of matching employees, newest first",
		Example: `  directory employees list
  directory employees list --query smith --status ACTIVE
  directory employees list --office Berlin --page 2 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(flags.output)
			if err != nil {
				return err
			}
			if page < 1 || page > employee.MaxPage {
				return fmt.Errorf("--page must be between 1 and %d, got %d", employee.MaxPage, page)
			}
			filter, err := flags.filter()
			if err != nil {
				return err
			}

			cfg, err := deps.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			svc, cleanup, err := deps.OpenService(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.SearchEmployees(cmd.Context(), filter, page)
			if err != nil {
				return err
			}
			return writePage(cmd.OutOrStdout(), format, res)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number, starting at 1")

	return cmd
}

func newEmployeesCountCommand(deps *commandDeps) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count matching employees",
		Example: `  directory employees count --status TERMINATED
  directory employees count --job engineer -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(flags.output)
			if err != nil {
				return err
			}
			filter, err := flags.filter()
			if err != nil {
				return err
			}

			cfg, err := deps.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			svc, cleanup, err := deps.OpenService(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			total, err := svc.CountEmployees(cmd.Context(), filter)
			if err != nil {
				return err
			}
			pageSize := svc.PageSize()
			return writeCount(cmd.OutOrStdout(), format, employee.EmployeeCountResponse{
				Count:      total,
				TotalPages: response.TotalPages(total, pageSize),
				PageSize:   pageSize,
			})
		},
	}

	flags.register(cmd)

	return cmd
}
