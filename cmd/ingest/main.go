package main

import (
	"context"
	"fmt"
	"os"

	"github.com/LucasRomanSaad/stoicChatBOT/internal/bootstrap"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/config"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/database"

	"github.com/fatih/color"
)

// Knowledge base maintenance CLI. Runs the same pipeline as the HTTP
// endpoints without starting the server.
func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("Unable to connect to database: %v", err)
		os.Exit(1)
	}
	if err := database.Migrate(gormDB); err != nil {
		color.Red("Unable to migrate database: %v", err)
		os.Exit(1)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	ctx := context.Background()

	switch os.Args[1] {
	case "ingest":
		runIngest(ctx, container)
	case "cleanup":
		runCleanup(ctx, container)
	case "stats":
		runStats(ctx, container)
	default:
		color.Red("Unknown command: %s", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: ingest <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  ingest   Process new and changed PDFs into the vector index")
	fmt.Println("  cleanup  Delete all indexed chunks and reset the manifest")
	fmt.Println("  stats    Show index size and recent ingestion runs")
}

func runIngest(ctx context.Context, c *bootstrap.Container) {
	color.Cyan("Starting ingestion pass...")

	resp, err := c.IngestionService.Ingest(ctx)
	if err != nil {
		color.Red("Ingestion failed: %v", err)
		os.Exit(1)
	}

	color.Green("✔ %s", resp.Message)
	for _, f := range resp.ProcessedFiles {
		color.Green("  processed: %s", f)
	}
	for _, f := range resp.SkippedFiles {
		color.Yellow("  skipped:   %s (unchanged)", f)
	}
	fmt.Printf("Total chunks indexed this pass: %d\n", resp.TotalChunks)
}

func runCleanup(ctx context.Context, c *bootstrap.Container) {
	color.Cyan("Cleaning up knowledge base...")

	resp, err := c.IngestionService.Cleanup(ctx)
	if err != nil {
		color.Red("Cleanup failed: %v", err)
		os.Exit(1)
	}

	if resp.CleanupSuccessful {
		color.Green("✔ Deleted %d chunks, manifest reset", resp.DocumentsDeleted)
	} else {
		color.Yellow("Cleanup incomplete: %d chunks remaining, manifest reset: %v", resp.DocumentsRemaining, resp.ManifestReset)
	}
}

func runStats(ctx context.Context, c *bootstrap.Container) {
	resp, err := c.RetrievalService.Stats(ctx)
	if err != nil {
		color.Red("Failed to load stats: %v", err)
		os.Exit(1)
	}

	color.Cyan("Knowledge base")
	fmt.Printf("  total chunks: %d\n", resp.TotalDocuments)
	for title, count := range resp.DocumentsBySource {
		fmt.Printf("  %-40s %d\n", title, count)
	}

	if len(resp.RecentRuns) > 0 {
		color.Cyan("Recent ingestion runs")
		for _, run := range resp.RecentRuns {
			fmt.Printf("  %s  processed=%d skipped=%d chunks=%d\n",
				run.CreatedAt.Format("2006-01-02 15:04:05"),
				len(run.ProcessedFiles), len(run.SkippedFiles), run.TotalChunks)
		}
	}
}
