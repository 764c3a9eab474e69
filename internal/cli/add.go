package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/angulartv/regisstros/internal/client"
	"github.com/angulartv/regisstros/internal/ledger"

	"github.com/spf13/cobra"
)

var (
	addDate  string
	addHours string
	addType  string
	addNote  string
	addMemo  bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new entry",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Entry date YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addHours, "hours", "2", "Hours, quarter-hour steps (extra/use/familiar)")
	addCmd.Flags().StringVar(&addType, "type", "extra", "Entry type: extra, use, familiar, memo, change")
	addCmd.Flags().StringVar(&addNote, "note", "", "Free-text note")
	addCmd.Flags().BoolVar(&addMemo, "memo", false, "Mark the entry as owing a memo")
}

func runAdd(cmd *cobra.Command, args []string) error {
	date := addDate
	if date == "" {
		date = ledger.DayKeyOf(time.Now()).String()
	}

	e, err := ledger.Draft{
		Date:         date,
		Hours:        addHours,
		Type:         addType,
		Note:         addNote,
		RequiresMemo: addMemo,
	}.Normalize()
	if err != nil {
		return err
	}
	if !e.Type.Valid() {
		return fmt.Errorf("unknown type %q", addType)
	}

	// advisory only: the server persists zero-hour entries as sent
	if e.Type.CountsHours() && e.Hours <= 0 {
		return fmt.Errorf("type %s needs hours > 0", e.Type)
	}

	c := newClient()
	if _, err := c.Load(cmd.Context()); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			exitAuth()
		}
		return err
	}

	created, err := c.Create(cmd.Context(), e)
	if err != nil {
		return err
	}

	fmt.Printf("Created entry %d (%s %s).\n", created.ID, created.Date, created.Type)
	return nil
}
