package cmd

import (
	"os"

	"github.com/corey/ridecheck/internal/app"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
		Long:  "Shows the catalog source and what it contains.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gate, err := opts.openGate(app.Config{})
			if err != nil {
				return err
			}
			p := opts.printer(cmd)
			env := os.Getenv(catalogEnv)
			if env == "" {
				env = "(unset)"
			}
			p.printf("%s\n", p.paint(colorBold, "ridecheck config"))
			p.printf("  Catalog:      %s\n", gate.Source())
			p.printf("  $%s: %s\n", catalogEnv, env)
			p.printf("  Attractions:  %d\n", len(gate.Catalog().Attractions()))
			p.printf("  Profiles:     %d\n", len(gate.Catalog().Profiles()))
			return nil
		},
	}
}
