package cli

import (
	"bytes"

	"github.com/spf13/pflag"
)

// executeCommand runs the root command with the given args and captures
// its combined output. Flag values are reset first so tests do not leak
// state into each other.
func executeCommand(args ...string) (string, error) {
	for _, c := range RootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}

	buf := new(bytes.Buffer)
	RootCmd.SetOut(buf)
	RootCmd.SetErr(buf)
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()
	return buf.String(), err
}
