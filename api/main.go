package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title Bowling Catalog API
// @version 1.0
// @description Product catalog of bowling balls: browse, search and maintain products and manufacturers.
// @host localhost:8080
// @BasePath /
func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "catalog",
	Short:         "Bowling ball catalog service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
