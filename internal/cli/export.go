package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/angulartv/regisstros/internal/client"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger as CSV",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	c := newClient()
	if _, err := c.Load(cmd.Context()); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			exitAuth()
		}
		return err
	}

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if err := c.ExportCSV(out); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
