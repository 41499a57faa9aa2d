package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/GetwithitMan/gwi-pos-sub001/cmd/http"
	systemcmd "github.com/GetwithitMan/gwi-pos-sub001/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "gwi-pos",
	Short: "GWI POS tip accounting service.",
	Long: `Tip accounting subsystem of the GWI point-of-sale product.
It recalculates tip allocations when the facts behind them change and
reverses distributed tips when payments are voided or refunded.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
