package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shelve/internal/category"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show the built-in category table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := category.Default()
			out := cmd.OutOrStdout()

			if isTerminal(out) {
				rows := make([][]string, 0, 8)
				for _, name := range table.Names() {
					exts := table.Extensions(name)
					label := strings.Join(exts, " ")
					if name == category.Fallback {
						label = "(everything else)"
					}
					rows = append(rows, []string{name, label})
				}
				fmt.Fprintln(out, renderTable([]string{"Category", "Extensions"}, rows, nil, []columnAlignment{alignLeft, alignLeft}))
				return nil
			}

			for _, name := range table.Names() {
				if name == category.Fallback {
					fmt.Fprintf(out, "%s: (everything else)\n", name)
					continue
				}
				fmt.Fprintf(out, "%s: %s\n", name, strings.Join(table.Extensions(name), " "))
			}
			return nil
		},
	}
}
