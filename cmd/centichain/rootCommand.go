package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mgharebaghi/cc-transaction/pkg/ledger"
	"github.com/mgharebaghi/cc-transaction/pkg/utils"
)

var logger *zap.Logger

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "centichain",
	Short: "centichain transaction client",
	Long:  `Builds, signs and submits Centichain transactions.`,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("Something went terribly wrong: %v", err)
		os.Exit(-1)
	}
}

var (
	options struct {
		nodeURL string
		feeRate string
		strict  bool
	}
)

func init() {
	logger, _ = zap.NewDevelopment(zap.AddStacktrace(zapcore.FatalLevel))

	// environment defaults (CENTICHAIN_NODE_URL, CENTICHAIN_HTTP_TIMEOUT)
	cfg, err := ledger.ConfigFromEnv()
	utils.FatalOnError(err)

	sendCommand.Flags().StringVarP(&options.nodeURL, "url", "", cfg.NodeURL, "centichain node url")
	sendCommand.Flags().StringVarP(&options.feeRate, "fee-rate", "", "0.01", "fee as a fraction of the sent value")
	sendCommand.Flags().BoolVarP(&options.strict, "strict", "", false, "reject underfunded requests locally")
}
