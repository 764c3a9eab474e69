package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Invalidate the current session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	c := newClient()
	// revoke server-side; the local token is dropped either way
	_ = c.Logout(cmd.Context())
	clearToken()
	fmt.Println("Logged out.")
	return nil
}
