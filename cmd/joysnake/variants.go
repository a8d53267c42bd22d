package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/joysnake/internal/config"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List variant presets",
	Long:  `Shows the variant presets that --variant accepts.`,
	Args:  cobra.NoArgs,
	Run:   runVariants,
}

func runVariants(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	variants := config.AllVariants()

	fmt.Fprintln(out, "Available variants:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxLen := len("Name")
	for _, v := range variants {
		maxLen = max(maxLen, len(v))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "Name", "Rules")
	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "----", "-----")
	for _, v := range variants {
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, v, v.Description())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'joysnake play --variant <name>' to play one.")
}
