// Package cmd provides the root command and CLI setup for zrank.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"zrank.dev/pkg/zrank/internal/adapter"
	"zrank.dev/pkg/zrank/internal/controller"
	"zrank.dev/pkg/zrank/internal/domain"
	m "zrank.dev/pkg/zrank/internal/model"
)

var dirFSAdapter adapter.DirFSAdapter
var scoreSource adapter.ScoreSourceAdapter
var workflow domain.Workflow
var ui controller.UI

// formatFlag selects the output format of the ranking.
var formatFlag string

// verboseFlag switches logging to debug level.
var verboseFlag bool

var errMissingHome = errors.New(homeEnvVar + " is not set")

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdin) && controller.IsTTY(os.Stderr))
	dirFSAdapter = adapter.NewLocalDirFSAdapter()
	scoreSource = adapter.NewLocalScoreSourceAdapter(viper.GetString(rankerCommandConfigKey))
	workflow = domain.NewWorkflow(scoreSource, dirFSAdapter, ui)
}

const rootLongDescription = `zrank lists the directories under $HOME/sandbox and $HOME ordered by
their zoxide frecency score, most relevant first.

Each line is the score (one decimal, right aligned in six columns) followed by
the absolute path. Directories zoxide does not track score 0.0.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "zrank",
		Short:        "Rank sandbox and home directories by zoxide frecency",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			home, err := resolveHome()
			if err != nil {
				return err
			}

			format, err := controller.ParseFormat(viper.GetString(formatConfigKey))
			if err != nil {
				return err
			}

			return workflow.Rank(cmd.Context(), domain.RankArgs{
				Roots:  domain.DefaultRoots(home),
				Format: format,
			})
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(
		&formatFlag, formatFlagName, "f",
		viper.GetString(formatConfigKey),
		fmt.Sprintf("output format (%s)", formatNames()),
	)
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "write debug logs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveHome returns the user's home directory from the environment.
func resolveHome() (m.Path, error) {
	home, ok := os.LookupEnv(homeEnvVar)
	if !ok || strings.TrimSpace(home) == "" {
		return "", errMissingHome
	}

	return m.Path(home), nil
}

func formatNames() string {
	formats := controller.Formats()

	names := make([]string, 0, len(formats))
	for _, format := range formats {
		names = append(names, string(format))
	}

	return strings.Join(names, "|")
}
