package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the server and store the session token",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	password := os.Getenv("REGCTL_PASSWORD")
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimSpace(line)
	}

	c := newClient()
	token, err := c.Login(cmd.Context(), password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := saveToken(token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}

	fmt.Println("Logged in.")
	return nil
}
