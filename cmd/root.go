package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "insight",
		Short:         "Ask a hosted assistant business questions and chart the answers",
		Long:          "insight sends a natural-language business question to a hosted OpenAI assistant, interprets the reply into a chart and renders it in the terminal, with optional export to a TOML report file.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAskCmd(app),
		newDemoCmd(app),
	)

	return rootCmd
}
