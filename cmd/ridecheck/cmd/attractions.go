package cmd

import (
	"fmt"

	"github.com/corey/ridecheck/internal/app"
	"github.com/spf13/cobra"
)

func newAttractionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "attractions",
		Short: "List catalog attractions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gate, err := opts.openGate(app.Config{})
			if err != nil {
				return err
			}
			p := opts.printer(cmd)
			list := gate.Catalog().Attractions()
			p.printf("%s %s\n", p.paint(colorBold, "Attractions"), p.paint(colorGray, fmt.Sprintf("(%d)", len(list))))
			for _, a := range list {
				p.printf("  %-24s %s\n", a.Name, p.paint(colorCyan, a.Profile.Name()))
			}
			return nil
		},
	}
}
