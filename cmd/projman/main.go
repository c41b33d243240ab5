package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/XeryusTC/projman/internal/app"
	"github.com/XeryusTC/projman/internal/web"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	flagAddr    string
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "projman",
	Short: "Personal GTD-style task and project manager",
	Long: `projman serves a personal task/project management API: an inlist
for quick captures, an action list, and named projects. Every user gets
a protected default "Actions" project at registration.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Close()

		server := web.NewServer(application.DB)
		log.Printf("projman %s listening on %s", version, flagAddr)
		return http.ListenAndServe(flagAddr, server.Handler())
	},
}

var adduserCmd = &cobra.Command{
	Use:   "adduser <email> <password> [name]",
	Short: "Create a user account",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Close()

		name := ""
		if len(args) == 3 {
			name = args[2]
		}

		user, err := application.DB.CreateUser(args[0], name, args[1])
		if err != nil {
			return err
		}

		fmt.Printf("created user %s (id %d)\n", user.Email, user.ID)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("projman v%s\n", version)
	},
}

func newApp() (*app.App, error) {
	cfg := app.DefaultConfig()
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
		cfg.DBPath = filepath.Join(flagDataDir, "projman.db")
	}
	return app.New(cfg)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "",
		"data directory (default ~/.local/share/projman)")
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "listen address")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(adduserCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
