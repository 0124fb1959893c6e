package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vx9/stemstation/publish"
)

func init() {
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish <chartJson>",
	Short: "Publishes a chart to S3",
	Long:  `Uploads a chart JSON to the CHART_BUCKET S3 bucket`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key, err := publish.Chart(args[0])
		cobra.CheckErr(err)
		fmt.Printf("Published %v as %v\n", args[0], key)
	},
}
