package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/angulartv/regisstros/internal/client"
	"github.com/angulartv/regisstros/internal/ledger"

	"github.com/spf13/cobra"
)

var moveMonth string

var moveCmd = &cobra.Command{
	Use:   "move <id> <day>",
	Short: "Move an entry to another day of the displayed month",
	Long: `Move reassigns an entry to a day number, combined with the displayed
month (current by default, or --month YYYY-MM). Moving an entry onto
its own day is a no-op.`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

func init() {
	moveCmd.Flags().StringVar(&moveMonth, "month", "", "Displayed month YYYY-MM (default current)")
}

func runMove(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}
	day, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid day %q", args[1])
	}

	year, month := displayedMonth(moveMonth)
	if day < 1 || day > ledger.DaysIn(year, month) {
		return fmt.Errorf("day %d out of range for %04d-%02d", day, year, int(month))
	}

	c := newClient()
	if _, err := c.Load(cmd.Context()); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			exitAuth()
		}
		return err
	}

	target := ledger.DayKey{Year: year, Month: month, Day: day}
	updated, moved, err := c.Reassign(cmd.Context(), uint(id), target)
	if err != nil {
		return err
	}
	if !moved {
		fmt.Println("Nothing to do.")
		return nil
	}

	fmt.Printf("Moved entry %d to %s.\n", updated.ID, updated.Date)
	return nil
}

// displayedMonth resolves the --month flag, falling back to now.
func displayedMonth(flag string) (int, time.Month) {
	if flag != "" {
		if t, err := time.Parse("2006-01", flag); err == nil {
			return t.Year(), t.Month()
		}
	}
	now := time.Now()
	return now.Year(), now.Month()
}
