package export

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"vid2doc/internal/app"
	"vid2doc/internal/app/converter/export"
)

var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "output", "o", "", "path of the excel file to write")

	Cmd.MarkFlagRequired("output")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the conversion history to excel",
	Long: `Export the conversion history to excel

- Every recorded conversion is exported, successes and failures alike`,
	Run: func(cmd *cobra.Command, args []string) {
		db := app.OpenHistoryDAO()
		defer db.Close()

		transcriptions, err := db.GetAll()
		if err != nil {
			log.Fatal(err)
		}

		if err := export.ToExcel(transcriptions, outputFilePath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
	},
}
