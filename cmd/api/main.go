package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskboard/core/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskboard",
		Short: "TaskBoard API Server",
		Long:  `TaskBoard is a kanban-style task board backend: users own boards, boards contain ordered lists, lists contain positionable cards.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewUserCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
