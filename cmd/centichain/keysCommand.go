package cmd

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"github.com/spf13/cobra"
)

// keysCommand represents the command for generating a keypair
var keysCommand = &cobra.Command{
	Use:   "keys",
	Short: "Generates a fresh keypair",
	Long:  `Generates a fresh ed25519 keypair and prints both halves in their canonical base58 form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		public, private, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return err
		}

		fmt.Printf("address: %s\n", base58.Encode(public))
		fmt.Printf("private: %s\n", base58.Encode(private.Seed()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(keysCommand)
}
