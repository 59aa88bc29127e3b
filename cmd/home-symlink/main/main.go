package main

import (
	"fmt"
	"os"

	homesymlink "github.com/arthur-debert/home-symlink/cmd/home-symlink"
	"github.com/arthur-debert/home-symlink/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	rootCmd := homesymlink.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		registry := styles.Default().Build(lipgloss.NewRenderer(os.Stderr))
		fmt.Fprintln(os.Stderr, registry.Render(styles.Error, fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
