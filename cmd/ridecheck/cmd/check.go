package cmd

import (
	"strings"

	"github.com/corey/ridecheck/internal/app"
	"github.com/corey/ridecheck/internal/domain/access"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var v access.Visitor
	cmd := &cobra.Command{
		Use:   "check <attraction>",
		Short: "Check whether a visitor may ride an attraction",
		Long: "Compares the visitor's age, weight and height with the attraction's profile.\n" +
			"Exit status: 0 allowed, 1 denied, 2 error.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, strings.Join(args, " "), v)
		},
	}
	f := cmd.Flags()
	f.StringVar(&v.Name, "name", "", "visitor name")
	f.IntVar(&v.Age, "age", 0, "visitor age in years")
	f.IntVar(&v.Weight, "weight", 0, "visitor weight in kg")
	f.IntVar(&v.Height, "height", 0, "visitor height in cm")
	cmd.MarkFlagRequired("age")
	cmd.MarkFlagRequired("weight")
	cmd.MarkFlagRequired("height")
	return cmd
}

func runCheck(cmd *cobra.Command, opts *rootOptions, name string, v access.Visitor) error {
	gate, err := opts.openGate(app.Config{})
	if err != nil {
		return err
	}
	vd, err := gate.Check(name, v)
	if err != nil {
		return err
	}
	a, _ := gate.Catalog().Lookup(name)

	p := opts.printer(cmd)
	p.printf("%s", p.formatVerdict(a, v, vd))
	if !vd.Allowed {
		return errDenied
	}
	return nil
}
