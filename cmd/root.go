package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "go-struct-accessors",
	Short: "go-struct-accessors generates getter and setter methods for tagged struct fields in your program source code",
	Long:  "go-struct-accessors generates getter and setter methods for tagged struct fields in your program source code",
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
