package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/angulartv/regisstros/internal/client"

	"github.com/spf13/cobra"
)

var rmYes bool

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an entry permanently",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	c := newClient()
	col, err := c.Load(cmd.Context())
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			exitAuth()
		}
		return err
	}

	e, ok := col.Find(uint(id))
	if !ok {
		return fmt.Errorf("entry %d not found", id)
	}

	// deletion is the only mutation that asks first; there is no undo
	if !rmYes {
		fmt.Printf("Delete entry %d (%s %s)? [y/N] ", e.ID, e.Date, e.Type)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if !strings.EqualFold(strings.TrimSpace(line), "y") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := c.Delete(cmd.Context(), uint(id)); err != nil {
		return err
	}

	fmt.Printf("Deleted entry %d.\n", id)
	return nil
}
