package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/angulartv/regisstros/internal/client"
	"github.com/angulartv/regisstros/internal/ledger"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit fields of an existing entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().String("date", "", "New date YYYY-MM-DD")
	editCmd.Flags().String("hours", "", "New hours value")
	editCmd.Flags().String("type", "", "New type")
	editCmd.Flags().String("note", "", "New note")
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	// updates always carry the full field set; flags overlay the
	// current values
	if v, _ := cmd.Flags().GetString("date"); v != "" {
		e.Date = v
	}
	if v, _ := cmd.Flags().GetString("hours"); v != "" {
		e.Hours = ledger.ParseHours(v)
	}
	if v, _ := cmd.Flags().GetString("type"); v != "" {
		t := ledger.Type(v)
		if !t.Valid() {
			return fmt.Errorf("unknown type %q", v)
		}
		e.Type = t
	}
	if cmd.Flags().Changed("note") {
		e.Note, _ = cmd.Flags().GetString("note")
	}

	updated, err := c.Update(cmd.Context(), e)
	if err != nil {
		return err
	}

	fmt.Printf("Updated entry %d (%s %s).\n", updated.ID, updated.Date, updated.Type)
	return nil
}
