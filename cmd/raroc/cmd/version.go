package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the raroc CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("raroc version %s\n", version)
		fmt.Println("A RAROC pricing engine for commercial term loans")
		fmt.Println("https://github.com/rustyeddy/raroc")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
