package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "queryfilterd",
	Short: "Demo server for the queryfilter toolkit",
	Long: `queryfilterd serves an in-memory product catalog and applies the
queryfilter mini-language to it, end to end: query string in,
filtered, sorted, paged JSON out.

Examples:
  queryfilterd serve
  curl 'localhost:8080/products?filter=price:between:10,100&sort=price:desc&limit=5'`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is the normal case, not an error.
		_ = godotenv.Load()
		setupLogging()
	},
}

func setupLogging() {
	level, err := zerolog.ParseLevel(os.Getenv("QUERYFILTER_LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
