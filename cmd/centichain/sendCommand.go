package cmd

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mgharebaghi/cc-transaction/pkg/coinselection"
	"github.com/mgharebaghi/cc-transaction/pkg/ledger"
	"github.com/mgharebaghi/cc-transaction/pkg/pipeline"
	"github.com/mgharebaghi/cc-transaction/pkg/signer"
	"github.com/mgharebaghi/cc-transaction/pkg/utils"
)

// sendCommand represents the command for sending a transaction
var sendCommand = &cobra.Command{
	Use:   "send <sender> <private> <recipient> <value>",
	Short: "Builds, signs and submits a transfer",
	Long:  `Builds, signs and submits a transfer of <value> from <sender> to <recipient>.`,
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := ledger.ConfigFromEnv()
		if err != nil {
			return err
		}
		cfg.NodeURL = options.nodeURL

		client, err := ledger.NewHTTPClient(cfg, logger)
		if err != nil {
			return err
		}

		feeRate, err := decimal.NewFromString(options.feeRate)
		if err != nil {
			return err
		}

		random := utils.CryptoSource{}
		opts := []pipeline.Option{pipeline.WithFeeRate(feeRate)}
		if options.strict {
			opts = append(opts, pipeline.WithSelector(coinselection.StrictSelector{Random: random}))
		}

		p := pipeline.New(client, signer.Ed25519Signer{}, random, logger, opts...)
		result, err := p.Send(cmd.Context(), pipeline.SendRequest{
			Sender:    args[0],
			Private:   args[1],
			Recipient: args[2],
			Value:     args[3],
		})
		if err != nil {
			return err
		}

		logger.Info("transaction accepted",
			zap.String("hash", result.Hash),
			zap.String("description", result.Description))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sendCommand)
}
