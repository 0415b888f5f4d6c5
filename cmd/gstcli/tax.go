package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"gstpro/internal/tax"
)

var (
	taxSellerState string
	taxBuyerState  string
	taxSubtotal    string
	taxRate        string
)

var taxCmd = &cobra.Command{
	Use:   "tax",
	Short: "Compute the GST split for a line amount",
	RunE: func(cmd *cobra.Command, args []string) error {
		subtotal, err := decimal.NewFromString(taxSubtotal)
		if err != nil {
			return fmt.Errorf("invalid subtotal %q: %w", taxSubtotal, err)
		}
		rate, err := decimal.NewFromString(taxRate)
		if err != nil {
			return fmt.Errorf("invalid rate %q: %w", taxRate, err)
		}

		taxType := tax.Jurisdiction(taxSellerState, taxBuyerState)
		line := tax.ComputeLine(subtotal, rate, taxType)

		fmt.Printf("Tax type: %s\n", taxType)
		fmt.Printf("Taxable:  %s\n", tax.Round2(subtotal))
		fmt.Printf("CGST:     %s\n", tax.Round2(line.CGST))
		fmt.Printf("SGST:     %s\n", tax.Round2(line.SGST))
		fmt.Printf("IGST:     %s\n", tax.Round2(line.IGST))
		fmt.Printf("Total:    %s\n", tax.Round2(subtotal.Add(line.TaxAmount)))
		return nil
	},
}

func init() {
	taxCmd.Flags().StringVar(&taxSellerState, "seller-state", "", "seller state name")
	taxCmd.Flags().StringVar(&taxBuyerState, "buyer-state", "", "buyer state name")
	taxCmd.Flags().StringVar(&taxSubtotal, "subtotal", "0", "taxable amount")
	taxCmd.Flags().StringVar(&taxRate, "rate", "0", "GST rate percent")
	_ = taxCmd.MarkFlagRequired("seller-state")
	_ = taxCmd.MarkFlagRequired("buyer-state")
	rootCmd.AddCommand(taxCmd)
}
