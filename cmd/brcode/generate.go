package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mkadit/brcode"
	"github.com/mkadit/brcode/internal/qr"
)

type generateFlags struct {
	key         string
	keyType     string
	name        string
	city        string
	amount      string
	txid        string
	description string
	png         string
	size        int
	terminal    bool
	strict      bool
}

func newGenerateCommand(a *app) *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a static PIX payload, optionally rendering it as a QR code",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.key, "key", a.cfg.PixKey, "merchant PIX key")
	flags.StringVar(&f.keyType, "key-type", a.cfg.KeyType, "key kind to check the key against (cpf, cnpj, email, phone, random)")
	flags.StringVar(&f.name, "name", a.cfg.MerchantName, "merchant name, truncated to 25 characters")
	flags.StringVar(&f.city, "city", a.cfg.MerchantCity, "merchant city, truncated to 15 characters")
	flags.StringVar(&f.amount, "amount", "0", "amount in BRL, e.g. 10.50; 0 lets the payer choose")
	flags.StringVar(&f.txid, "txid", "", "transaction id; generated when empty")
	flags.StringVar(&f.description, "description", "", "optional description shown to the payer")
	flags.StringVar(&f.png, "png", "", "write the QR code PNG to this path")
	flags.IntVar(&f.size, "size", a.cfg.QRSize, "PNG size in pixels")
	flags.BoolVar(&f.terminal, "terminal", false, "also draw the QR code in the terminal")
	flags.BoolVar(&f.strict, "strict", false, "reject requests that exceed PIX field limits instead of truncating")

	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, f *generateFlags) error {
	var opts []brcode.Option
	if f.strict {
		opts = append(opts, brcode.WithValidation())
	}

	b := brcode.NewBuilder(opts...)
	defer b.Release()

	if f.keyType != "" {
		kind, ok := brcode.ParseKeyType(f.keyType)
		if !ok {
			return fmt.Errorf("unknown key type %q", f.keyType)
		}
		b.TypedKey(f.key, kind)
	} else {
		b.Key(f.key)
	}

	payload, err := b.
		Merchant(f.name, f.city).
		AmountString(f.amount).
		TransactionID(f.txid).
		Description(f.description).
		Build()
	if err != nil {
		return err
	}

	a.log.Info("payload generated",
		zap.String("txid", payload.TransactionID()),
		zap.String("crc", payload.CRC()),
		zap.Int("length", len(payload.String())),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, payload.String())

	renderer := qr.NewRenderer(f.size)
	if f.terminal {
		art, err := renderer.ASCII(payload.String())
		if err != nil {
			return err
		}
		fmt.Fprint(out, art)
	}
	if f.png != "" {
		if err := renderer.WriteFile(f.png, payload.String()); err != nil {
			return err
		}
		a.log.Info("qr code written", zap.String("path", f.png), zap.Int("size", f.size))
	}
	return nil
}
