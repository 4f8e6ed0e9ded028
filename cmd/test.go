package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connections to TMDB, Jellyseerr and Jellyfin",
	Long:  `Verify that every configured upstream service is reachable with the configured credentials.`,
	RunE:  runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	fmt.Printf("Testing connection to TMDB at %s...\n", cfg.TMDB.URL)
	if err := tmdbClient.TestConnection(ctx); err != nil {
		return err
	}
	fmt.Println("✓ TMDB connection successful!")

	fmt.Printf("\nTesting connection to Jellyseerr at %s...\n", cfg.Jellyseerr.URL)
	if err := jellyseerrClient.TestConnection(ctx); err != nil {
		return err
	}
	fmt.Println("✓ Jellyseerr connection successful!")

	if jellyfinClient != nil {
		fmt.Printf("\nTesting connection to Jellyfin at %s...\n", cfg.Jellyfin.URL)
		info, err := jellyfinClient.SystemInfo(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Found Jellyfin server named '%s' on local address '%s'.\n", info.ServerName, info.LocalAddress)
	} else {
		fmt.Println("\nJellyfin integration: Disabled")
	}

	fmt.Printf("\nDecision settings:\n")
	fmt.Printf("- Region: %s\n", cfg.TMDB.Region)
	fmt.Printf("- Allow-listed providers: %d\n", len(cfg.Providers))
	for _, provider := range cfg.Providers {
		fmt.Printf("  • %s\n", provider)
	}
	fmt.Printf("- On lookup failure: %s\n", cfg.Policy.OnLookupFailure)
	if cfg.Policy.Rule != "" {
		fmt.Printf("- Verdict rule: %s\n", cfg.Policy.Rule)
	}

	return nil
}
