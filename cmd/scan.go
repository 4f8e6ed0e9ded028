package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jellygate/library"
)

var streamableOnly bool

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the Jellyfin library for movies already on streaming",
	Long: `Walk the Jellyfin movie library, extract TMDB IDs from file paths, and
report which movies are currently streamable on an allow-listed service.
Requires the jellyfin section of the config to be enabled.`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&streamableOnly, "streamable-only", false, "only show movies available on streaming")
}

func runScan(cmd *cobra.Command, args []string) error {
	if jellyfinClient == nil {
		return fmt.Errorf("scan requires jellyfin to be enabled in the config")
	}

	scanner, err := library.NewScanner(jellyfinClient, tmdbClient, tmdbClient, cfg.Providers, cfg.TMDB.Region, logger)
	if err != nil {
		return err
	}

	logger.Info().Str("region", cfg.TMDB.Region).Msg("Scanning library")

	ctx := context.Background()
	results, err := scanner.Scan(ctx)
	if err != nil {
		return err
	}

	library.SortByName(results)

	for _, result := range results {
		if streamableOnly && !result.Streamable() {
			continue
		}

		title := result.Title
		if title == "" {
			title = result.Name
		}
		fmt.Println(title)

		switch {
		case result.TMDBID == "":
			fmt.Println("\tNo TMDB ID in library path")
		case result.Err != nil:
			fmt.Printf("\tLookup failed: %v\n", result.Err)
		case result.Streamable():
			fmt.Println("\tStreaming on:")
			for _, provider := range result.Providers {
				fmt.Printf("\t\t- %s\n", provider)
			}
		default:
			fmt.Println("\tNot on any allow-listed streaming service")
		}
		fmt.Println()
	}

	summary := library.Summarize(results)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%d movies scanned: %d streamable, %d without TMDB ID, %d lookup failures\n",
		summary.Total, summary.Streamable, summary.Untagged, summary.Failed)

	return nil
}
