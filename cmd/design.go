package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/curaious/ttv/internal/config"
	"github.com/curaious/ttv/internal/telemetry"
	"github.com/curaious/ttv/pkg/ttv"
)

var designFlags struct {
	description  string
	model        string
	text         string
	autoText     bool
	loudness     float64
	seed         uint
	guidance     uint
	quality      float64
	outputFormat string
	outDir       string
}

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Design a voice from a text description and list the generated previews",
	Run: func(cmd *cobra.Command, args []string) {
		conf := config.ReadConfig()
		if conf.ELEVENLABS_API_KEY == "" {
			log.Fatalln("ELEVENLABS_API_KEY is not set")
		}

		shutdownTelemetry := telemetry.NewProvider(conf.OTEL_EXPORTER_OTLP_ENDPOINT)
		defer shutdownTelemetry()

		client, err := newTTVClient(conf)
		if err != nil {
			log.Fatalln(err)
		}

		req := client.DesignVoice(designFlags.description)
		if cmd.Flags().Changed("model") {
			req = req.Model(designFlags.model)
		}
		if cmd.Flags().Changed("text") {
			req = req.Text(designFlags.text)
		}
		if cmd.Flags().Changed("auto-text") {
			req = req.AutoGenerateText(designFlags.autoText)
		}
		if cmd.Flags().Changed("loudness") {
			req = req.Loudness(designFlags.loudness)
		}
		if cmd.Flags().Changed("seed") {
			req = req.Seed(designFlags.seed)
		}
		if cmd.Flags().Changed("guidance-scale") {
			req = req.GuidanceScale(designFlags.guidance)
		}
		if cmd.Flags().Changed("quality") {
			req = req.Quality(designFlags.quality)
		}
		if cmd.Flags().Changed("output-format") {
			req = req.OutputFormat(designFlags.outputFormat)
		}

		res, err := req.Execute(context.Background())
		if err != nil {
			log.Fatalln(err)
		}

		if designFlags.outDir != "" {
			if err := os.MkdirAll(designFlags.outDir, 0o755); err != nil {
				log.Fatalln(err)
			}
		}

		fmt.Printf("Preview text: %s\n\n", res.Text)
		for i, preview := range res.Previews {
			fmt.Printf("%d. %s (%s, %.2fs)\n", i+1, preview.GeneratedVoiceID, preview.MediaType, preview.DurationSecs)

			if designFlags.outDir == "" {
				continue
			}

			audio, err := preview.Audio()
			if err != nil {
				slog.Warn("Unable to decode preview audio", slog.String("generated_voice_id", preview.GeneratedVoiceID), slog.Any("error", err))
				continue
			}
			if len(audio) == 0 {
				continue
			}

			name := filepath.Join(designFlags.outDir, fmt.Sprintf("preview_%d_%s%s", i+1, preview.GeneratedVoiceID, audioExt(preview.MediaType)))
			if err := os.WriteFile(name, audio, 0o644); err != nil {
				log.Fatalln(err)
			}
			fmt.Printf("   saved %s\n", name)
		}

		fmt.Println("\nPersist one with: ttv create --name <name> --description <description> --generated-voice-id <id>")
	},
}

// newTTVClient builds the shared client for CLI commands: traced transport,
// bounded requests, base URL override so commands can target the mock server.
func newTTVClient(conf *config.Config) (*ttv.Client, error) {
	opts := []ttv.Option{
		ttv.WithHTTPClient(&http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   60 * time.Second,
		}),
	}
	if conf.ELEVENLABS_BASE_URL != "" {
		opts = append(opts, ttv.WithBaseURL(conf.ELEVENLABS_BASE_URL))
	}

	return ttv.New(conf.ELEVENLABS_API_KEY, opts...)
}

func audioExt(mediaType string) string {
	switch mediaType {
	case "audio/mpeg":
		return ".mp3"
	case "audio/ogg":
		return ".ogg"
	case "audio/wav":
		return ".wav"
	default:
		return ".bin"
	}
}

func init() {
	designCmd.Flags().StringVarP(&designFlags.description, "description", "d", "", "voice description, e.g. \"A calm, deep narrator\" (required)")
	designCmd.Flags().StringVar(&designFlags.model, "model", "", "design model id")
	designCmd.Flags().StringVar(&designFlags.text, "text", "", "preview text, 100-1000 characters")
	designCmd.Flags().BoolVar(&designFlags.autoText, "auto-text", false, "let the service write the preview text")
	designCmd.Flags().Float64Var(&designFlags.loudness, "loudness", 0, "output loudness, -1 to 1")
	designCmd.Flags().UintVar(&designFlags.seed, "seed", 0, "generation seed for reproducible previews")
	designCmd.Flags().UintVar(&designFlags.guidance, "guidance-scale", 0, "how literally to follow the description, 0 to 100")
	designCmd.Flags().Float64Var(&designFlags.quality, "quality", 0, "output quality, -1 to 1")
	designCmd.Flags().StringVar(&designFlags.outputFormat, "output-format", "", "preview audio format, e.g. mp3_44100_128")
	designCmd.Flags().StringVarP(&designFlags.outDir, "out", "o", "", "directory to save preview audio into")

	if err := designCmd.MarkFlagRequired("description"); err != nil {
		log.Fatalln(err)
	}

	rootCmd.AddCommand(designCmd)
}
