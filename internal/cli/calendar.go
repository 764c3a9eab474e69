package cli

import (
	"errors"
	"fmt"

	"github.com/angulartv/regisstros/internal/client"
	"github.com/angulartv/regisstros/internal/ledger"

	"github.com/spf13/cobra"
)

var calMonth string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show a month with its entries bucketed per day",
	Args:  cobra.NoArgs,
	RunE:  runCalendar,
}

func init() {
	calendarCmd.Flags().StringVar(&calMonth, "month", "", "Month YYYY-MM (default current)")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	c := newClient()
	col, err := c.Load(cmd.Context())
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			exitAuth()
		}
		return err
	}

	year, month := displayedMonth(calMonth)
	fmt.Printf("%s %d\n", month, year)

	for day, bucket := range ledger.Month(col.Entries(), year, month) {
		if len(bucket) == 0 {
			continue
		}
		fmt.Printf("%3d", day)
		for i, e := range bucket {
			if i > 0 {
				fmt.Printf("%3s", "")
			}
			fmt.Printf("  #%d %s%s\n", e.ID, dayLabel(e), memoMark(e))
		}
	}
	return nil
}

func dayLabel(e ledger.Entry) string {
	switch e.Type {
	case ledger.TypeExtra:
		return "+" + ledger.FormatHours(e.Hours) + "h"
	case ledger.TypeUse:
		return "-" + ledger.FormatHours(e.Hours) + "h"
	case ledger.TypeFamiliar:
		return "fam"
	case ledger.TypeMemo:
		return "memo"
	default:
		return "change"
	}
}

func memoMark(e ledger.Entry) string {
	if !e.RequiresMemo {
		return ""
	}
	if e.MemoDone {
		return " [memo done]"
	}
	return " [memo owed]"
}
