package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"journal-in-go/pkg/authenticator"
	"journal-in-go/pkg/config"
	"journal-in-go/pkg/db"
	"journal-in-go/pkg/journal"
	"journal-in-go/pkg/render"
	"journal-in-go/pkg/server"
	"journal-in-go/pkg/server/endpoints"
	gormstore "journal-in-go/pkg/server/store/gorm"
	"journal-in-go/pkg/session"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the journal application server",
	Long: `Run the journal application server.

Running the server requires the DATABASE_URL environment variable. The
operator credentials and session secrets fall back to development defaults
unless set; see 'journalctl configuration show'.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Bad configuration:", err)
			os.Exit(1)
		}

		if cfg.DatabaseURL == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		if cmd.Flags().Changed("bind-address") {
			cfg.BindAddress, _ = cmd.Flags().GetString("bind-address")
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		conn, err := db.Connect(db.Config{URL: cfg.DatabaseURL, Debug: cfg.Debug})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		s := server.NewServer(
			cfg,
			conn,
			journal.New(gormstore.NewEntriesStore(conn), render.New()),
			authenticator.NewGate(cfg.AuthUsername, cfg.AuthPassword),
			session.NewManager(cfg.SessionSecret, cfg.AuthSecret),
		)

		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s...\n", cfg.Addr())
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().IntP("port", "p", 5000, "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", "0.0.0.0", "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
