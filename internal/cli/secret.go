package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/angulartv/regisstros/internal/util"

	"github.com/spf13/cobra"
)

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Hash a shared secret for the server's auth.password config key",
	Args:  cobra.NoArgs,
	RunE:  runSecret,
}

func runSecret(cmd *cobra.Command, args []string) error {
	fmt.Fprint(os.Stderr, "Secret: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return fmt.Errorf("read secret: %w", err)
	}

	hashed, err := util.HashSecret(strings.TrimSpace(line))
	if err != nil {
		return err
	}
	fmt.Println(hashed)
	return nil
}
