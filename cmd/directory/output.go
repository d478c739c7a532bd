package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"go-employee-directory/internal/employee"

	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
)

func parseOutputFormat(v string) (outputFormat, error) {
	switch f := outputFormat(v); f {
	case outputTable, outputJSON, outputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", v)
	}
}

func encode(w io.Writer, format outputFormat, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	}
	return fmt.Errorf("format %q is not an encoding", format)
}

func writePage(w io.Writer, format outputFormat, page employee.EmployeePageResponse) error {
	if format != outputTable {
		return encode(w, format, page)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tSTATUS\tJOB\tDEPARTMENT\tOFFICE\tLINE MANAGER")
	for _, e := range page.Items {
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.FirstName, e.LastName, e.Email, e.Status,
			jobTitle(e), departmentName(e), officeName(e), lineManagerName(e),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\npage %d of %d (%d employees)\n", page.Page, page.TotalPages, page.Total)
	return err
}

func writeCount(w io.Writer, format outputFormat, count employee.EmployeeCountResponse) error {
	if format != outputTable {
		return encode(w, format, count)
	}
	_, err := fmt.Fprintf(w, "%d employees, %d pages of %d\n", count.Count, count.TotalPages, count.PageSize)
	return err
}

func jobTitle(e employee.EmployeeResponse) string {
	if e.Job == nil {
		return "-"
	}
	return e.Job.Title
}

func departmentName(e employee.EmployeeResponse) string {
	if e.Department == nil {
		return "-"
	}
	return e.Department.Name
}

func officeName(e employee.EmployeeResponse) string {
	if e.Office == nil {
		return "-"
	}
	return e.Office.Name
}

func lineManagerName(e employee.EmployeeResponse) string {
	if e.LineManager == nil {
		return "-"
	}
	return e.LineManager.FirstName + " " + e.LineManager.LastName
}
