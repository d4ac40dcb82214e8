package cmd

import (
	"github.com/spf13/cobra"

	"github.com/curaious/ttv/internal/config"
	"github.com/curaious/ttv/internal/mockapi"
	"github.com/curaious/ttv/internal/telemetry"
)

var mockServerAddr string

var mockServerCmd = &cobra.Command{
	Use:   "mock-server",
	Short: "Start a local stub of the Text-to-Voice API",
	Long: `Start a local stub of the Text-to-Voice API.

Point the other commands at it with ELEVENLABS_BASE_URL, e.g.:

  ttv mock-server &
  ELEVENLABS_BASE_URL=http://127.0.0.1:8642 ELEVENLABS_API_KEY=dev ttv design -d "A calm, deep narrator"`,
	Run: func(cmd *cobra.Command, args []string) {
		conf := config.ReadConfig()

		shutdownTelemetry := telemetry.NewProvider(conf.OTEL_EXPORTER_OTLP_ENDPOINT)
		defer shutdownTelemetry()

		addr := conf.TTV_MOCK_ADDR
		if mockServerAddr != "" {
			addr = mockServerAddr
		}

		s := mockapi.New(addr)
		s.Start()
	},
}

// Register the "mock-server" command
func init() {
	mockServerCmd.Flags().StringVar(&mockServerAddr, "addr", "", "listen address (defaults to TTV_MOCK_ADDR or 127.0.0.1:8642)")
	rootCmd.AddCommand(mockServerCmd)
}
