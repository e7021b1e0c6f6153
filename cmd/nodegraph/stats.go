package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/meikuraledutech/nodegraph"
	"github.com/meikuraledutech/nodegraph/internal/ui"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "List stored documents with their sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			store, closer, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			ui.Banner("stored documents")

			names, err := store.ListGraphs(ctx)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Println("  No documents stored yet.")
				return nil
			}

			var rows [][]string
			for _, name := range names {
				g, err := store.GetGraph(ctx, name)
				if err != nil {
					rows = append(rows, []string{name, "-", "-", "-", ui.Bad.Sprint("invalid")})
					continue
				}
				if g == nil {
					continue
				}
				limits := fmt.Sprintf("%d/%d", g.Config.MaxNodes, g.Config.MaxEdges)
				rows = append(rows, []string{name, strconv.Itoa(len(g.Nodes)), strconv.Itoa(len(g.Edges)), limits, kinds(g.Nodes)})
			}
			ui.Table([]string{"NAME", "NODES", "EDGES", "LIMITS", "KINDS"}, rows)
			fmt.Println()
			ui.Subtle.Printf("  %d documents in %s store\n", len(names), cfg.Store.Backend)
			return nil
		},
	}
}

// kinds summarizes node kinds as "Kind ×n", most frequent first.
func kinds(nodes []nodegraph.Node) string {
	counts := make(map[string]int)
	for _, n := range nodes {
		k := n.Kind
		if k == "" {
			k = "untyped"
		}
		counts[k]++
	}
	names := make([]string, 0, len(counts))
	for k := range counts {
		names = append(names, k)
	}
	slices.SortFunc(names, func(a, b string) int {
		if d := counts[b] - counts[a]; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})

	parts := make([]string, len(names))
	for i, k := range names {
		parts[i] = fmt.Sprintf("%s ×%d", ui.Title(k), counts[k])
	}
	return strings.Join(parts, ", ")
}
