// Package cli implements the regctl commands, the terminal front end
// to the registros server.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/angulartv/regisstros/internal/client"

	"github.com/spf13/cobra"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "regctl",
	Short: "regctl - manage your overtime ledger from the terminal",
	Long: `regctl records overtime, used hours, family days, memos and shift
changes against a registros server, and shows balances and a month
calendar. Log in once with "regctl login"; the session token is kept
under your user config directory.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultServer := os.Getenv("REGCTL_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer, "Base URL of the registros server")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(memoCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(secretCmd)
}

func tokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, "regctl", "token"), nil
}

func saveToken(token string) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

func loadToken() string {
	path, err := tokenPath()
	if err != nil {
		return ""
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func clearToken() {
	if path, err := tokenPath(); err == nil {
		_ = os.Remove(path)
	}
}

// newClient builds a client with the stored session token, if any.
func newClient() *client.Client {
	return client.New(serverURL, client.WithToken(loadToken()))
}

// exitAuth is the uniform handling of an expired session: point at the
// login flow rather than reporting a data error.
func exitAuth() {
	fmt.Fprintln(os.Stderr, "session expired or missing - run `regctl login` first")
	os.Exit(1)
}
