package cmd

import (
	"github.com/gnames/gnlineage/pkg/config"
	"github.com/spf13/cobra"
)

// flagFunc converts a flag into config options, if the flag is set.
type flagFunc func(cmd *cobra.Command) []config.Option

// flagOptions collects options from all flags that were given.
// Persistent flags are looked up through cmd.Flags() as well.
func flagOptions(cmd *cobra.Command) []config.Option {
	fns := []flagFunc{
		dumpDirFlag, namesFlag, nodesFlag, quietFlag,
		shortFlag, commonFlag, formatFlag, portFlag,
	}
	var res []config.Option
	for _, fn := range fns {
		res = append(res, fn(cmd)...)
	}
	return res
}

func stringFlag(
	cmd *cobra.Command,
	name string,
	opt func(string) config.Option,
) []config.Option {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return nil
	}
	return []config.Option{opt(f.Value.String())}
}

func boolFlag(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return false
	}
	b, _ := cmd.Flags().GetBool(name)
	return b
}

func dumpDirFlag(cmd *cobra.Command) []config.Option {
	return stringFlag(cmd, "dump-dir", config.OptDumpDir)
}

func namesFlag(cmd *cobra.Command) []config.Option {
	return stringFlag(cmd, "names", config.OptDumpNamesFile)
}

func nodesFlag(cmd *cobra.Command) []config.Option {
	return stringFlag(cmd, "nodes", config.OptDumpNodesFile)
}

func formatFlag(cmd *cobra.Command) []config.Option {
	return stringFlag(cmd, "format", config.OptOutputFormat)
}

func quietFlag(cmd *cobra.Command) []config.Option {
	if boolFlag(cmd, "quiet") {
		return []config.Option{config.OptWithProgress(false)}
	}
	return nil
}

func shortFlag(cmd *cobra.Command) []config.Option {
	if boolFlag(cmd, "short") {
		return []config.Option{config.OptLineageShort(true)}
	}
	return nil
}

func commonFlag(cmd *cobra.Command) []config.Option {
	if boolFlag(cmd, "common") {
		return []config.Option{config.OptLineageWithCommon(true)}
	}
	return nil
}

func portFlag(cmd *cobra.Command) []config.Option {
	f := cmd.Flags().Lookup("port")
	if f == nil || !f.Changed {
		return nil
	}
	port, _ := cmd.Flags().GetInt("port")
	return []config.Option{config.OptServerPort(port)}
}
