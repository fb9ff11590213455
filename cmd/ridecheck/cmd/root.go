package cmd

import (
	"os"

	"github.com/corey/ridecheck/internal/app"
	"github.com/spf13/cobra"
)

// catalogEnv names the environment fallback for --catalog.
const catalogEnv = "RIDECHECK_CATALOG"

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	catalog string
	color   string
	noColor bool
}

// catalogPath returns --catalog, falling back to $RIDECHECK_CATALOG.
// Empty means the embedded catalog.
func (o *rootOptions) catalogPath() string {
	if o.catalog != "" {
		return o.catalog
	}
	return os.Getenv(catalogEnv)
}

// openGate loads the configured catalog.
func (o *rootOptions) openGate(cfg app.Config) (*app.Gate, error) {
	cfg.CatalogPath = o.catalogPath()
	return app.New(cfg)
}

// printer returns an output helper for cmd's stdout.
func (o *rootOptions) printer(cmd *cobra.Command) *printer {
	w := cmd.OutOrStdout()
	return &printer{w: w, color: resolveColor(o.color, o.noColor, w)}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "ridecheck",
		Short:         "Attraction eligibility checks",
		Long:          "Decides whether a visitor's age, weight and height fit an attraction's profile.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.catalog, "catalog", "", "YAML catalog file (default: $"+catalogEnv+" or embedded catalog)")
	pf.StringVar(&opts.color, "color", "auto", "color output: auto, always, never")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable color output")

	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newValidateCmd(opts))
	root.AddCommand(newProfilesCmd(opts))
	root.AddCommand(newAttractionsCmd(opts))
	root.AddCommand(newGateCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
