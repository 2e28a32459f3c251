package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"shelve/internal/report"
)

var countPrinter = message.NewPrinter(language.English)

func writeSummary(out io.Writer, rep *report.Report) {
	if rep.DryRun {
		fmt.Fprintln(out, "Dry run: nothing was moved.")
	}

	verb := "moved"
	if rep.DryRun {
		verb = "would move"
	}

	rows := rep.Rows()
	if rep.Total() == 0 {
		fmt.Fprintln(out, "No files were moved.")
	} else if isTerminal(out) {
		headers := []string{"Category", "Files"}
		tableRows := make([][]string, 0, len(rows))
		for _, row := range rows {
			tableRows = append(tableRows, []string{row.Category, countPrinter.Sprintf("%d", row.Moved)})
		}
		footer := []string{"Total", countPrinter.Sprintf("%d", rep.Total())}
		fmt.Fprintln(out, renderTable(headers, tableRows, footer, []columnAlignment{alignLeft, alignRight}))
	} else {
		for _, row := range rows {
			fmt.Fprintf(out, "%s: %s file(s) %s\n", row.Category, countPrinter.Sprintf("%d", row.Moved), verb)
		}
		fmt.Fprintf(out, "Total: %s file(s) %s\n", countPrinter.Sprintf("%d", rep.Total()), verb)
	}

	if rep.Renamed > 0 {
		fmt.Fprintf(out, "%s file(s) renamed to avoid collisions\n", countPrinter.Sprintf("%d", rep.Renamed))
	}
	for _, failure := range rep.Failures {
		fmt.Fprintf(out, "Failed: %s (%s)\n", failure.Name, failure.Err)
	}
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
