package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/corey/ridecheck/internal/app"
	"github.com/corey/ridecheck/internal/domain/limits"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <profile> <measure> <value>",
		Short: "Validate a value against a profile's field",
		Long: "Assigns the value to the profile's range-constrained field (age, weight or height).\n" +
			"Reports a type error for non-integers and a range error for out-of-bounds values.\n" +
			"Exit status: 0 valid, 1 rejected, 2 error.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, args[0], args[1], args[2])
		},
	}
}

func runValidate(cmd *cobra.Command, opts *rootOptions, profileName, measureName, raw string) error {
	gate, err := opts.openGate(app.Config{})
	if err != nil {
		return err
	}
	profile := findProfile(gate, profileName)
	if profile == nil {
		return fmt.Errorf("unknown profile %q", profileName)
	}
	m := limits.MeasureFromName(measureName)
	if m < 0 {
		return fmt.Errorf("unknown measure %q (want age, weight or height)", measureName)
	}

	// Text that does not parse as an integer is handed over as-is so the
	// field reports the type error itself. Integer text too large for int
	// is still an integer, just outside every range.
	var value any = raw
	n, numErr := strconv.Atoi(strings.TrimSpace(raw))
	switch {
	case numErr == nil:
		value = n
		err = profile.NewRecord().Set(m, value)
	case errors.Is(numErr, strconv.ErrRange):
		value = strings.TrimSpace(raw)
		err = &limits.FieldError{Field: m.String(), Value: value, Err: limits.ErrOutOfRange}
		if !profile.Range(m).IsSet() {
			err = &limits.FieldError{Field: m.String(), Err: limits.ErrUnsetRange}
		}
	default:
		err = profile.NewRecord().Set(m, value)
	}

	p := opts.printer(cmd)
	switch {
	case err == nil:
		p.printf("%s %s=%v fits %s %s\n", p.paint(colorGreen, "✓"), m, value,
			profile.Name(), p.paint(colorGray, "("+profile.Range(m).String()+")"))
		return nil
	case errors.Is(err, limits.ErrNotInteger):
		p.printf("%s %s %q: %s\n", p.paint(colorRed, "✗"), m, raw, p.paint(colorYellow, "type error: "+limits.ErrNotInteger.Error()))
	case errors.Is(err, limits.ErrOutOfRange):
		p.printf("%s %s %v: %s %s\n", p.paint(colorRed, "✗"), m, value,
			p.paint(colorYellow, "range error: "+limits.ErrOutOfRange.Error()),
			p.paint(colorGray, "("+profile.Name()+" "+profile.Range(m).String()+")"))
	default:
		return err
	}
	return errDenied
}

func findProfile(gate *app.Gate, name string) *limits.Profile {
	for _, p := range gate.Catalog().Profiles() {
		if strings.EqualFold(p.Name(), strings.TrimSpace(name)) {
			return p
		}
	}
	return nil
}
