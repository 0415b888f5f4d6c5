package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gstpro/internal/gst"
)

var validateService bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate GST identifiers",
}

var validateGSTINCmd = &cobra.Command{
	Use:   "gstin <value>",
	Short: "Validate a GSTIN",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := gst.ValidateGSTIN(args[0], "India"); err != nil {
			return err
		}
		state, _ := gst.StateFromGSTIN(args[0])
		fmt.Printf("valid GSTIN (PAN %s, state %s)\n", gst.PANFromGSTIN(args[0]), state)
		return nil
	},
}

var validateHSNCmd = &cobra.Command{
	Use:   "hsn <code>",
	Short: "Validate an HSN or SAC code",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expected exactly one code")
		}
		if err := gst.ValidateHSNSAC(args[0], validateService); err != nil {
			return err
		}
		kind := "HSN"
		if validateService {
			kind = "SAC"
		}
		fmt.Printf("valid %s code\n", kind)
		return nil
	},
}

func init() {
	validateHSNCmd.Flags().BoolVar(&validateService, "service", false, "treat the code as a service SAC")
	validateCmd.AddCommand(validateGSTINCmd, validateHSNCmd)
	rootCmd.AddCommand(validateCmd)
}
