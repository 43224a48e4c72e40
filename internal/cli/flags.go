package cli

import (
	"github.com/spf13/pflag"
)

// addDateFlag registers the shared --date flag. An empty value means today;
// commands pass it through so the service layer resolves the current date
// from its clock.
func addDateFlag(fs *pflag.FlagSet, target *string, usage string) {
	fs.StringVar(target, "date", "", usage)
}

// addMinutesFlag registers an optional --minutes flag and returns a getter
// that yields nil when the flag was not set, so defaults stay with the
// service layer.
func addMinutesFlag(fs *pflag.FlagSet, usage string) func() *int {
	var minutes int
	fs.IntVar(&minutes, "minutes", 0, usage)
	return func() *int {
		if !fs.Changed("minutes") {
			return nil
		}
		return &minutes
	}
}

// optionalStr returns a pointer to the flag value only when the flag was
// explicitly set on the command line.
func optionalStr(fs *pflag.FlagSet, name string, value *string) *string {
	if !fs.Changed(name) {
		return nil
	}
	return value
}

// optionalInt returns a pointer to the flag value only when the flag was
// explicitly set on the command line.
func optionalInt(fs *pflag.FlagSet, name string, value *int) *int {
	if !fs.Changed(name) {
		return nil
	}
	return value
}

// optionalBool returns a pointer to the flag value only when the flag was
// explicitly set on the command line.
func optionalBool(fs *pflag.FlagSet, name string, value *bool) *bool {
	if !fs.Changed(name) {
		return nil
	}
	return value
}
