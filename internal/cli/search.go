package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/luckasRanarison/three-style/internal/commutator"
	"github.com/luckasRanarison/three-style/internal/move"
	"github.com/luckasRanarison/three-style/internal/sticker"
)

var (
	searchCorners []string
	searchEdges   []string
	searchGen     string
	searchDepth   int
	searchRaw     bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search commutators for the given three-cycle",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVarP(&searchCorners, "corners", "c", nil, "three corner names, e.g. UFR,ULF,DFL")
	searchCmd.Flags().StringSliceVarP(&searchEdges, "edges", "e", nil, "three edge names, e.g. UF,UB,LF")
	searchCmd.Flags().StringVarP(&searchGen, "gen", "g", "", "allowed move kinds as a letter string, e.g. URFDLB")
	searchCmd.Flags().IntVarP(&searchDepth, "depth", "d", 4, "maximum setup-move depth")
	searchCmd.Flags().BoolVarP(&searchRaw, "raw", "r", false, "print the unreduced expansion instead of the reduced one")
	searchCmd.MarkFlagsMutuallyExclusive("corners", "edges")
	searchCmd.MarkFlagsOneRequired("corners", "edges")
}

func parseGen(gen string) ([]move.Kind, error) {
	kinds := make([]move.Kind, 0, len(gen))
	for _, r := range gen {
		k, err := move.ParseKind(string(r))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func runSearch(cmd *cobra.Command, _ []string) error {
	gen, err := parseGen(searchGen)
	if err != nil {
		return err
	}

	start := time.Now()
	var results []commutator.Commutator

	switch {
	case len(searchCorners) > 0:
		if len(searchCorners) != 3 {
			return fmt.Errorf("--corners requires exactly 3 names")
		}
		corners := make([]sticker.Corner, 3)
		for i, name := range searchCorners {
			c, err := sticker.ParseCorner(name)
			if err != nil {
				return err
			}
			corners[i] = c
		}
		cycle := commutator.NewCycle(corners[0], corners[1], corners[2])
		results = commutator.FindCornerCommutators(cycle, gen, searchDepth)
	case len(searchEdges) > 0:
		if len(searchEdges) != 3 {
			return fmt.Errorf("--edges requires exactly 3 names")
		}
		edges := make([]sticker.Edge, 3)
		for i, name := range searchEdges {
			e, err := sticker.ParseEdge(name)
			if err != nil {
				return err
			}
			edges[i] = e
		}
		cycle := commutator.NewCycle(edges[0], edges[1], edges[2])
		results = commutator.FindEdgeCommutators(cycle, gen, searchDepth)
	}

	elapsed := time.Since(start)
	printResults(cmd, results, elapsed)
	return nil
}

func printResults(cmd *cobra.Command, results []commutator.Commutator, elapsed time.Duration) {
	out := cmd.OutOrStdout()

	for _, c := range results {
		expansion := c.Expand()
		if !searchRaw {
			expansion = expansion.Reduce()
		}
		fmt.Fprintf(out, "%s: %s (%d)\n", c, expansion, expansion.Len())
	}

	if len(results) > 0 {
		plural := ""
		if len(results) > 1 {
			plural = "s"
		}
		fmt.Fprintf(out, "\nFound %d result%s in %.2fs.\n", len(results), plural, elapsed.Seconds())
	} else {
		fmt.Fprintln(out, "No result found.")
	}
}
