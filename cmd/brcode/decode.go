package main

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mkadit/brcode"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newDecodeCommand(a *app) *cobra.Command {
	var withFields bool

	cmd := &cobra.Command{
		Use:   "decode PAYLOAD",
		Short: "Verify a PIX payload and print its content as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decoded, err := brcode.Decode(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("payload decoded",
				zap.String("txid", decoded.TransactionID),
				zap.String("crc", decoded.CRC),
			)

			var v interface{} = decoded
			if !withFields {
				v = decoded.Request()
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		},
	}
	cmd.Flags().BoolVar(&withFields, "fields", false, "include the raw TLV field tree and checksum")
	return cmd
}
