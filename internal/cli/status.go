package cli

import (
	"errors"
	"fmt"

	"github.com/angulartv/regisstros/internal/client"
	"github.com/angulartv/regisstros/internal/ledger"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the balance cards",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	c := newClient()
	if _, err := c.Load(cmd.Context()); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			exitAuth()
		}
		return err
	}

	t := c.Totals()
	fmt.Printf("Available hours:   %s h\n", ledger.FormatHours(t.Net))
	fmt.Printf("Accumulated hours: %s h\n", ledger.FormatHours(t.TotalExtra))
	fmt.Printf("Used hours:        %s h\n", ledger.FormatHours(t.TotalUsed))
	fmt.Printf("Family days:       %d\n", t.FamiliarDays)
	fmt.Printf("Pending memos:     %d\n", t.PendingMemos)
	return nil
}
