package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathflow/internal/store"
)

func newResetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all review cards, activity and streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			out := cmd.OutOrStdout()

			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				fmt.Fprint(out, "This erases all progress. Type 'yes' to continue: ")
				scanner := bufio.NewScanner(cmd.InOrStdin())
				if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "yes" {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			kv, err := a.open()
			if err != nil {
				return err
			}
			if err := kv.Delete(cmd.Context(), store.AllKeys()...); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			a.logger.Info("progress reset")
			fmt.Fprintln(out, "All progress erased.")
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
