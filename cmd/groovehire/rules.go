package main

import (
	"github.com/spf13/cobra"

	"github.com/groovehire/backend/internal/service/simulator"
)

func newRulesCmd() *cobra.Command {
	var rulesFile string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the active rulebook as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rulesFile == "" {
				cfg, err := setup()
				if err != nil {
					return err
				}
				rulesFile = cfg.Chat.RulesFile
			}
			sim, err := loadSimulator(rulesFile)
			if err != nil {
				return err
			}
			return simulator.EncodeRulebook(cmd.OutOrStdout(), sim)
		},
	}
	cmd.Flags().StringVar(&rulesFile, "file", "", "rulebook to print (defaults to CHAT_RULES_FILE, then the built-in table)")
	return cmd
}
