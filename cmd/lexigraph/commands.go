package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agenthands/lexigraph/internal/core"
	"github.com/agenthands/lexigraph/internal/core/model"
	"github.com/agenthands/lexigraph/internal/driver"
	"github.com/agenthands/lexigraph/internal/server"
)

var distance int

var distantSynonymsCmd = &cobra.Command{
	Use:   "distant-synonyms [node-id]",
	Short: "Find nodes at an exact distance that are synonym-equivalent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc *core.Service) error {
			results, err := svc.DistantSynonyms(ctx, args[0], distance)
			if err != nil {
				return err
			}
			return printJSON(map[string]any{"distant_synonyms": results})
		})
	},
}

var distantAntonymsCmd = &cobra.Command{
	Use:   "distant-antonyms [node-id]",
	Short: "Find nodes at an exact distance that are antonym-equivalent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc *core.Service) error {
			results, err := svc.DistantAntonyms(ctx, args[0], distance)
			if err != nil {
				return err
			}
			return printJSON(map[string]any{"distant_antonyms": results})
		})
	},
}

var shortestPathCmd = &cobra.Command{
	Use:   "shortest-path [id1] [id2]",
	Short: "Find the shortest path between two nodes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc *core.Service) error {
			path, err := svc.ShortestPath(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(map[string]any{"path": path})
		})
	},
}

var similarNodesCmd = &cobra.Command{
	Use:   "similar-nodes [node-id]",
	Short: "Find nodes sharing a parent or child via the same edge type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc *core.Service) error {
			found, err := svc.SimilarNodes(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(map[string]any{"similar_nodes": found})
		})
	},
}

var existsCmd = &cobra.Command{
	Use:   "exists [node-id]",
	Short: "Check whether a node exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc *core.Service) error {
			ok, err := svc.Exists(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(map[string]any{"id": args[0], "exists": ok})
		})
	},
}

func refListCommand(use, short, key string, query func(svc *core.Service) func(context.Context, string) ([]model.NodeRef, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(ctx context.Context, svc *core.Service) error {
				results, err := query(svc)(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(map[string]any{key: results})
			})
		},
	}
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show whole-graph statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc *core.Service) error {
			stats, err := svc.Stats(ctx)
			if err != nil {
				return err
			}
			return printJSON(stats)
		})
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the query operations over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		store, err := driver.NewMemgraphStore(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, logger)
		if err != nil {
			return fmt.Errorf("connecting to graph store: %w", err)
		}
		defer store.Close(ctx)

		if err := store.EnsureIndexes(ctx); err != nil {
			return err
		}

		svc := core.NewService(store, logger, core.Options{
			MaxTreeDepth:  cfg.Search.MaxTreeDepth,
			FrontierFetch: cfg.Search.FrontierFetch,
		})
		srv := server.New(svc, logger)
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Info("starting server", zap.String("addr", addr))
		return srv.SetupRouter().Run(addr)
	},
}

func init() {
	distantSynonymsCmd.Flags().IntVar(&distance, "distance", 1, "exact hop distance from the node")
	distantAntonymsCmd.Flags().IntVar(&distance, "distance", 1, "exact hop distance from the node")

	rootCmd.AddCommand(
		distantSynonymsCmd,
		distantAntonymsCmd,
		shortestPathCmd,
		similarNodesCmd,
		existsCmd,
		refListCommand("neighbors [node-id]", "List a node's undirected neighbors", "neighbors",
			func(svc *core.Service) func(context.Context, string) ([]model.NodeRef, error) { return svc.Neighbors }),
		refListCommand("successors [node-id]", "List a node's successors", "successors",
			func(svc *core.Service) func(context.Context, string) ([]model.NodeRef, error) { return svc.Successors }),
		refListCommand("predecessors [node-id]", "List a node's predecessors", "predecessors",
			func(svc *core.Service) func(context.Context, string) ([]model.NodeRef, error) { return svc.Predecessors }),
		refListCommand("grandchildren [node-id]", "List nodes two forward hops away", "grandchildren",
			func(svc *core.Service) func(context.Context, string) ([]model.NodeRef, error) { return svc.Grandchildren }),
		refListCommand("grandparents [node-id]", "List nodes two backward hops away", "grandparents",
			func(svc *core.Service) func(context.Context, string) ([]model.NodeRef, error) { return svc.Grandparents }),
		statsCmd,
		serveCmd,
	)
}
