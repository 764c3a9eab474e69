package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/angulartv/regisstros/internal/client"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Bulk-create entries from a CSV file",
	Long: `Import parses a CSV file with a header row and creates one entry per
row with a date. Rows without a date are skipped. Each row is an
independent create, so an interrupted import keeps what already made
it; the summary reports the created count.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	c := newClient()
	if _, err := c.Load(cmd.Context()); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			exitAuth()
		}
		return err
	}

	res, err := c.Import(cmd.Context(), f)

	var partial *client.PartialImportError
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		exitAuth()
	case errors.As(err, &partial):
		fmt.Printf("Imported %d entries, %d failed.\n", partial.Created, partial.Failed)
		os.Exit(1)
	case err != nil:
		return err
	}

	fmt.Printf("Imported %d entries.\n", len(res.Created))
	return nil
}
