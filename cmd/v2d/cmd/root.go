package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"vid2doc/cmd/v2d/cmd/convert"
	"vid2doc/cmd/v2d/cmd/export"
	"vid2doc/cmd/v2d/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "v2d",
	Short: "Convert video files into transcript documents",
	Long: `Convert video files into transcript documents.

- Point v2d at a video file or a folder of videos
- Audio is extracted with ffmpeg and transcribed with whisper
- The transcript is grouped into fixed-length time blocks and written
  as docx, txt or pdf next to each input
- Processed files are recorded to a local sqlite history`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
