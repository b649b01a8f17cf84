package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newTopicsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List practice topics",
		Long: `List the built-in topics and any loaded with --topics.

Topics with a pool size are drilled with spaced repetition. The rest use
generated questions and are not available to 'mathflow drill'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			section, _ := cmd.Flags().GetString("section")
			topics, err := a.topicsIn(section)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-16s  %-22s  %-14s  %4s  %s\n",
				"ID", "Name", "Section", "Pool", "Description")
			fmt.Fprintln(out, strings.Repeat("─", 90))

			drillable := 0
			for _, t := range topics {
				pool := "-"
				if t.SRS() {
					pool = strconv.Itoa(len(t.BuildPool()))
					drillable++
				}
				fmt.Fprintf(out, "%-16s  %-22s  %-14s  %4s  %s\n",
					t.ID, t.Name, t.Section, pool, t.Description)
			}

			fmt.Fprintf(out, "\n%d topics, %d with fact pools\n", len(topics), drillable)
			return nil
		},
	}
	cmd.Flags().String("section", "", "Filter by section (addition, subtraction, multiplication, memory)")
	return cmd
}
