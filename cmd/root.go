package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stemstation",
	Short: "StemStation chart tools",
	Long:  `Builds, inspects and serves StemStation chart JSON from MIDI stems.`,
}

func Execute() {
	// .env is optional; already-set variables win over it
	godotenv.Load()
	cobra.CheckErr(rootCmd.Execute())
}
