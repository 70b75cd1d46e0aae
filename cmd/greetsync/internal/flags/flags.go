// Package flags reads the persistent flags shared by every greetsync command.
package flags

import (
	"context"

	"github.com/spf13/cobra"
)

const (
	Dir        = "dir"
	Field      = "field"
	Greetings  = "greetings"
	Quiet      = "quiet"
	Debug      = "debug"
	Perf       = "perf"
	PerfOutDir = "perf-out-dir"
)

// Common holds the values of the root command's persistent flags.
type Common struct {
	Dir           string
	Field         string
	GreetingsPath string
	Quiet         bool
	Debug         bool
}

func ReadCommon(cmd *cobra.Command) (Common, error) {
	var common Common
	var err error

	if common.Dir, err = cmd.Flags().GetString(Dir); err != nil {
		return Common{}, err
	}
	if common.Field, err = cmd.Flags().GetString(Field); err != nil {
		return Common{}, err
	}
	if common.GreetingsPath, err = cmd.Flags().GetString(Greetings); err != nil {
		return Common{}, err
	}
	if common.Quiet, err = cmd.Flags().GetBool(Quiet); err != nil {
		return Common{}, err
	}
	if common.Debug, err = cmd.Flags().GetBool(Debug); err != nil {
		return Common{}, err
	}
	return common, nil
}

// OptionalBool returns false for flags the command does not define, so subcommand RunE
// functions can be reused by the root command.
func OptionalBool(cmd *cobra.Command, name string) (bool, error) {
	if cmd.Flags().Lookup(name) == nil {
		return false, nil
	}
	return cmd.Flags().GetBool(name)
}

func Context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
