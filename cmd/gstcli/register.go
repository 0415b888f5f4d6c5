package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"gstpro/internal/export"
)

var registerFormat string

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Export the invoice register as CSV or XLSX",
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerID, err := parseOwner()
		if err != nil {
			return err
		}

		svc, db, err := newInvoiceService(appConfig)
		if err != nil {
			return err
		}
		defer db.Close()

		invoices, _, err := svc.List(cmd.Context(), ownerID, 0, 10000)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		switch registerFormat {
		case "csv":
			err = export.WriteCSV(&buf, invoices)
		case "xlsx":
			err = export.WriteXLSX(&buf, invoices)
		default:
			return fmt.Errorf("unknown format %q (want csv or xlsx)", registerFormat)
		}
		if err != nil {
			return err
		}
		return writeOutput(buf.Bytes(), "register."+registerFormat)
	},
}

func init() {
	registerCmd.Flags().StringVar(&ownerFlag, "owner", "", "owner account UUID")
	registerCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output file path (- for stdout)")
	registerCmd.Flags().StringVar(&registerFormat, "format", "csv", "output format: csv or xlsx")
	_ = registerCmd.MarkFlagRequired("owner")
	rootCmd.AddCommand(registerCmd)
}
