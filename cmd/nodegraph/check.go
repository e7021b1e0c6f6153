package main

import (
	"fmt"
	"os"

	"github.com/meikuraledutech/nodegraph"
	"github.com/meikuraledutech/nodegraph/internal/ui"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate graph documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				g, err := checkFile(path)
				if err != nil {
					failed++
					fmt.Printf("  %s %s\n", ui.StatusIcon(false), path)
					ui.Bad.Printf("      %v\n", err)
					continue
				}
				fmt.Printf("  %s %s %s\n", ui.StatusIcon(true), path,
					ui.Subtle.Sprintf("(%d nodes, %d edges)", len(g.Nodes), len(g.Edges)))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents invalid", failed, len(args))
			}
			return nil
		},
	}
}

func checkFile(path string) (nodegraph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nodegraph.Graph{}, err
	}
	return nodegraph.ParseDocument(data)
}
