// Command councilctl is the operator tool for the council backend: schema
// migrations and bearer tokens for devices.
//
// Usage:
//
//	councilctl migrate up|down|status
//	councilctl token issue --user <uuid> --role ADMIN|PRESIDENT|COUNCILOR
//	councilctl version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "councilctl",
	Short:         "Operator tool for the council session backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
