package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"

	"github.com/Vilsol/hexd/config"
	"github.com/Vilsol/hexd/dump"
	"github.com/Vilsol/hexd/utils"
)

var rootCmd = &cobra.Command{
	Use:           "hexd [file]",
	Short:         "hexd renders a file or stdin as offset, hex/binary and printable columns",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := log.ParseLevel(viper.GetString("log.level"))

		if err != nil {
			panic(err)
		}

		log.SetFormatter(&log.TextFormatter{
			ForceColors: viper.GetBool("log.colors"),
		})
		log.SetOutput(os.Stderr)
		log.SetLevel(level)
	},
	RunE: runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	mode := dump.ModeHex
	if viper.GetBool("dump.upper") {
		mode = dump.ModeHexUpper
	}
	if viper.GetBool("dump.binary") {
		mode = dump.ModeBinary
	}

	opts := dump.Resolve(mode,
		viper.GetString("dump.cols"),
		viper.GetString("dump.groupsize"),
		viper.GetString("dump.len"),
	)

	if unprintable := viper.GetString("dump.unprintable"); unprintable != "" {
		opts.Unprintable = unprintable[0]
	}

	name := utils.Stdin
	if len(args) > 0 {
		name = args[0]
	}

	data, err := utils.ReadInput(name)
	if err != nil {
		return err
	}

	dumper, err := dump.New(data, opts)
	if err != nil {
		return err
	}

	_, err = dumper.WriteTo(cmd.OutOrStdout())
	return err
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log", "info", "The log level to output")
	rootCmd.PersistentFlags().Bool("colors", true, "Log output with colors")

	rootCmd.Flags().BoolP("upper", "u", false, "Use upper-case hex digits")
	rootCmd.Flags().BoolP("binary", "b", false, "Binary digit dump, overrides -u")
	rootCmd.Flags().StringP("cols", "c", "", "Octets per line (default 16, 6 in binary mode)")
	rootCmd.Flags().StringP("groupsize", "g", "", "Octets per group (default 2, 1 in binary mode)")
	rootCmd.Flags().StringP("len", "l", "", "Stop after this many octets")
	rootCmd.Flags().String("unprintable", ".", "Character shown for non-printable octets")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log"))
	_ = viper.BindPFlag("log.colors", rootCmd.PersistentFlags().Lookup("colors"))
	_ = viper.BindPFlag("dump.upper", rootCmd.Flags().Lookup("upper"))
	_ = viper.BindPFlag("dump.binary", rootCmd.Flags().Lookup("binary"))
	_ = viper.BindPFlag("dump.cols", rootCmd.Flags().Lookup("cols"))
	_ = viper.BindPFlag("dump.groupsize", rootCmd.Flags().Lookup("groupsize"))
	_ = viper.BindPFlag("dump.len", rootCmd.Flags().Lookup("len"))
	_ = viper.BindPFlag("dump.unprintable", rootCmd.Flags().Lookup("unprintable"))

	config.InitializeConfig()
}
