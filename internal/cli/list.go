package cli

import (
	"errors"
	"fmt"

	"github.com/angulartv/regisstros/internal/client"
	"github.com/angulartv/regisstros/internal/ledger"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List ledger entries, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	c := newClient()
	col, err := c.Load(cmd.Context())
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			exitAuth()
		}
		return err
	}

	printEntries(col.Entries())
	return nil
}

func printEntries(entries []ledger.Entry) {
	if len(entries) == 0 {
		fmt.Println("No entries.")
		return
	}

	fmt.Printf("%-5s %-11s %-9s %7s  %-6s %s\n", "ID", "DATE", "TYPE", "HOURS", "MEMO", "NOTE")
	for _, e := range entries {
		fmt.Printf("%-5d %-11s %-9s %7s  %-6s %s\n",
			e.ID, e.Date, e.Type, hoursCell(e), memoCell(e), e.Note)
	}
}

func hoursCell(e ledger.Entry) string {
	switch e.Type {
	case ledger.TypeExtra:
		return "+" + ledger.FormatHours(e.Hours)
	case ledger.TypeUse:
		return "-" + ledger.FormatHours(e.Hours)
	case ledger.TypeFamiliar:
		return ledger.FormatHours(e.Hours)
	}
	return ""
}

func memoCell(e ledger.Entry) string {
	if !e.RequiresMemo {
		return ""
	}
	if e.MemoDone {
		return "done"
	}
	return "owed"
}
