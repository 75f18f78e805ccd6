package main

import (
	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/bowling-catalog/internal/config"
	"github.com/rogerio-castellano/bowling-catalog/internal/logger"
	"github.com/rogerio-castellano/bowling-catalog/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create indexes and load the stock catalog into an empty store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log := logger.Setup(cfg.AppEnv)

		store, closeStore, err := openStore(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer closeStore()

		_, err = seed.Run(cmd.Context(), store, log)
		return err
	},
}
