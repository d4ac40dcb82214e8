package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/curaious/ttv/internal/config"
	"github.com/curaious/ttv/internal/telemetry"
)

var createFlags struct {
	name             string
	description      string
	generatedVoiceID string
	labels           []string
	playedIDs        []string
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Persist a designed voice preview as a permanent voice",
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

		req := client.CreateVoice(createFlags.name, createFlags.description, createFlags.generatedVoiceID)

		if len(createFlags.labels) > 0 {
			labels := map[string]string{}
			for _, kv := range createFlags.labels {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					log.Fatalf("invalid --label %q, want key=value", kv)
				}
				labels[k] = v
			}
			req = req.Labels(labels)
		}

		if len(createFlags.playedIDs) > 0 {
			req = req.PlayedNotSelectedVoiceIDs(createFlags.playedIDs)
		}

		voice, err := req.Execute(context.Background())
		if err != nil {
			log.Fatalln(err)
		}

		fmt.Printf("Voice created: %s\n", voice.VoiceID)
		if voice.Category != nil {
			fmt.Printf("Category: %s\n", *voice.Category)
		}
		fmt.Printf("Ready for synthesis: %t\n", voice.IsReady())
	},
}

func init() {
	createCmd.Flags().StringVarP(&createFlags.name, "name", "n", "", "name for the new voice (required)")
	createCmd.Flags().StringVarP(&createFlags.description, "description", "d", "", "description for the new voice (required)")
	createCmd.Flags().StringVarP(&createFlags.generatedVoiceID, "generated-voice-id", "g", "", "preview id from a design call (required)")
	createCmd.Flags().StringArrayVar(&createFlags.labels, "label", nil, "metadata label as key=value, repeatable")
	createCmd.Flags().StringSliceVar(&createFlags.playedIDs, "played-not-selected", nil, "preview ids that were auditioned but not chosen")

	for _, flag := range []string{"name", "description", "generated-voice-id"} {
		if err := createCmd.MarkFlagRequired(flag); err != nil {
			log.Fatalln(err)
		}
	}

	rootCmd.AddCommand(createCmd)
}
