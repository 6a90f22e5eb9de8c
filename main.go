package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/studieren/blogly/config"
	"github.com/studieren/blogly/gormtool"
	"gorm.io/gorm"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "blogly",
	Short: "Blogly - users, posts and tags over a small HTML interface",
	Long: `Blogly serves a server-rendered blog: users write posts, posts carry tags.

Configuration comes from environment variables, optionally seeded from an
env file (see --env-file). DB_DRIVER selects sqlite (default) or postgres.`,
	SilenceUsage: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create any missing tables and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer closeDB(db)

		if err := gormtool.Migrate(db); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "migrated %s database\n", cfg.DBDriver)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Env file to load before reading the environment")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func openDB(cfg config.Config) (*gorm.DB, error) {
	db, err := gormtool.Open(gormtool.Options{
		Driver:       cfg.DBDriver,
		DSN:          cfg.DatabaseURL,
		Echo:         cfg.DBEcho,
		MaxOpenConns: cfg.DBMaxOpenConns,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
