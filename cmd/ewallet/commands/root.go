package commands

import (
	"github.com/spf13/cobra"

	"ewallet/internal/app"
)

var (
	prompt   string
	currency string
)

// Execute builds the root command and runs the interactive shell.
func Execute() error {
	root := &cobra.Command{
		Use:   "ewallet",
		Short: "Interactive e-wallet ledger CLI",
		Long: "ewallet is an interactive ledger for a small set of named accounts.\n" +
			"Users register, log in to a single active session, and move funds\n" +
			"between in-memory wallets. State lives for the process lifetime only.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LoadConfig()
			if cmd.Flags().Changed("prompt") {
				cfg.Prompt = prompt
			}
			if cmd.Flags().Changed("currency") {
				cfg.Currency = currency
			}
			cfg.In = cmd.InOrStdin()
			cfg.Out = cmd.OutOrStdout()

			return app.NewWire(cfg).Shell.Run()
		},
	}

	root.Flags().StringVar(&prompt, "prompt", "", `shell prompt (default "> ")`)
	root.Flags().StringVar(&currency, "currency", "", `currency prefix for amounts (default "Rp")`)
	return root.Execute()
}
