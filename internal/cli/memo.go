package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/angulartv/regisstros/internal/client"

	"github.com/spf13/cobra"
)

var memoCmd = &cobra.Command{
	Use:   "memo <id>",
	Short: "Toggle the memo-done flag of an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runMemo,
}

func runMemo(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	c := newClient()
	if _, err := c.Load(cmd.Context()); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			exitAuth()
		}
		return err
	}

	updated, err := c.ToggleMemo(cmd.Context(), uint(id))
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return fmt.Errorf("entry %d not found", id)
		}
		return err
	}

	if !updated.RequiresMemo {
		fmt.Printf("Entry %d does not require a memo.\n", id)
		return nil
	}
	if updated.MemoDone {
		fmt.Printf("Entry %d: memo marked done.\n", id)
	} else {
		fmt.Printf("Entry %d: memo marked pending.\n", id)
	}
	return nil
}
