package greetsync

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zamoon6/greetsync/cmd/greetsync/check"
	"github.com/zamoon6/greetsync/cmd/greetsync/internal/flags"
	"github.com/zamoon6/greetsync/cmd/greetsync/update"
	"github.com/zamoon6/greetsync/cmd/greetsync/version"
	"github.com/zamoon6/greetsync/internal/constants"
	"github.com/zamoon6/greetsync/internal/environment"
	"github.com/zamoon6/greetsync/internal/i18n"
)

func Command() *cobra.Command {
	env := environment.MustLoad()

	rootCmd := &cobra.Command{
		Use:          constants.CommandName,
		Short:        i18n.T("app.description"),
		Version:      environment.AppVersion(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         update.RunE,
	}
	cobra.MousetrapHelpText = "" // allow the app to run in windows by clicking the exe

	persistent := rootCmd.PersistentFlags()
	persistent.StringP(flags.Dir, "D", env.TranslationsDir, i18n.T("cmd.flag.dir"))
	persistent.String(flags.Field, env.MessagesField, i18n.T("cmd.flag.field"))
	persistent.StringP(flags.Greetings, "g", env.GreetingsFile, i18n.T("cmd.flag.greetings"))
	persistent.BoolP(flags.Quiet, "q", false, i18n.T("cmd.flag.quiet"))
	persistent.BoolP(flags.Debug, "d", false, i18n.T("cmd.flag.debug"))
	persistent.Bool(flags.Perf, false, i18n.T("cmd.flag.perf"))
	persistent.String(flags.PerfOutDir, "", i18n.T("cmd.flag.perf_out_dir"))

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.AddCommand(update.Command())
	rootCmd.AddCommand(check.Command())
	rootCmd.AddCommand(version.Command())

	translateDefaultHelpFacilities(rootCmd)
	fixFlagUsageAlignment(rootCmd)

	return rootCmd
}

func translateDefaultHelpFacilities(rootCmd *cobra.Command) {
	subcommands := rootCmd.Commands()
	allCommands := make([]*cobra.Command, 0, len(subcommands)+1)
	allCommands = append(allCommands, rootCmd)
	allCommands = append(allCommands, subcommands...)

	for _, cmd := range allCommands {
		cmd.InitDefaultHelpFlag()
		cmd.Flags().Lookup("help").Usage = i18n.T("cmd.help.template", i18n.Tvars{
			Data: &i18n.TData{"command": cmd.Name()},
		})
	}

	rootCmd.InitDefaultHelpCmd()
	helpCmd, _, e := rootCmd.Find([]string{"help"})

	if e == nil {
		helpCmd.Short = i18n.T("cmd.help.usage.short")
		helpCmd.Long = i18n.T("cmd.help.usage.long", i18n.Tvars{
			Data: &i18n.TData{"appName": rootCmd.Name()},
		})
		helpCmd.Run = func(c *cobra.Command, args []string) {
			cmd, _, e := c.Root().Find(args)
			if cmd == nil || e != nil {
				c.PrintErrln(i18n.T("cmd.help.error", i18n.Tvars{
					Data: &i18n.TData{"topic": fmt.Sprintf("%#q", args)},
				}) + "\n")
				cobra.CheckErr(c.Root().Usage())
			} else {
				cmd.InitDefaultHelpFlag()    // make possible 'help' flag to be shown
				cmd.InitDefaultVersionFlag() // make possible 'version' flag to be shown
				cobra.CheckErr(cmd.Help())
			}
		}
	}
}

func fixFlagUsageAlignment(rootCmd *cobra.Command) {
	width, _, _ := term.GetSize(int(os.Stdout.Fd()))
	usageTemplate := rootCmd.UsageTemplate()
	usageTemplate = strings.ReplaceAll(usageTemplate, ".FlagUsages", fmt.Sprintf(".FlagUsagesWrapped %d", width))
	rootCmd.SetUsageTemplate(usageTemplate)
}

// Execute runs the command tree with args (os.Args[1:] when nil).
func Execute(ctx context.Context, args []string) error {
	cmd := Command()
	if args != nil {
		cmd.SetArgs(args)
	}
	return cmd.ExecuteContext(ctx)
}
