package cmd

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mohsinali45213/folio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Server.Port = port
		}

		dbPath := cfg.Server.DBPath
		if !filepath.IsAbs(dbPath) {
			dbPath = filepath.Join(dataDir, dbPath)
		}
		db, err := server.OpenDB(dbPath)
		if err != nil {
			return err
		}

		srv := server.New(cfg.Server, db, services, cache, client, cfg.Appwrite.BucketID)
		return srv.Listen(context.Background())
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
