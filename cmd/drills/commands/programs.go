package commands

import (
	"github.com/spf13/cobra"

	"drills/internal/domain"
)

func arithCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arith",
		Short: "Add and subtract two digit sequences read from stdin",
		Long: `Reads two lines, each a sequence of decimal digits such as "1 2 3",
and prints their sum and their difference. A negative difference prints n/a.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, appCtx.Arith)
		},
	}
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Print the first even value within three sigma above the mean",
		Long: `Reads a count n followed by n integers and prints the first non-zero
even value that is at least the mean and within three standard deviations of
it, or 0 when none qualifies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, appCtx.Search)
		},
	}
}

func sortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Bubble sort a fixed number of integers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, appCtx.Sort)
		},
	}
}

func run(cmd *cobra.Command, p domain.Program) error {
	return p.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}
