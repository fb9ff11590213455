package cmd

import (
	"github.com/corey/ridecheck/internal/app"
	"github.com/spf13/cobra"
)

func newProfilesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List visitor profiles and their ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gate, err := opts.openGate(app.Config{})
			if err != nil {
				return err
			}
			p := opts.printer(cmd)
			profiles := gate.Catalog().Profiles()
			p.printf("%s\n", p.paint(colorBold, "Profiles"))
			for _, pr := range profiles {
				p.printf("%s", p.formatProfile(pr))
			}
			return nil
		},
	}
}
