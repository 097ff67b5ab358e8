package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"solat-assistant/config"
	"solat-assistant/di"
	"solat-assistant/models"
	services "solat-assistant/service"
	"solat-assistant/util"
	"solat-assistant/voice"
)

const replyPrefix = "BOT: "

var noFuzzyFlag bool

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "solat-assistant",
		Short:         "Malay voice assistant for Selangor prayer times",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVar(&noFuzzyFlag, "no-fuzzy", false, "Disable fuzzy matching in the corrector and resolvers")

	rootCmd.AddCommand(newServeCmd(), newAskCmd(), newReplCmd(), newPlotCmd())
	return rootCmd
}

func loadContainer(ctx context.Context) (*di.Container, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if noFuzzyFlag {
		cfg.FuzzyEnabled = false
	}
	return di.NewContainer(ctx, cfg), nil
}

func newServeCmd() *cobra.Command {
	var (
		warm     bool
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the assistant over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := loadContainer(ctx)
			if err != nil {
				return err
			}
			if warm {
				c.PrayerTimesRefresherService.RefreshAllZones(ctx)
			}
			if interval > 0 {
				c.PrayerTimesRefresherService.StartPeriodicJob(ctx, interval)
			}
			if c.VoiceBridge != nil {
				go func() {
					if err := c.VoiceBridge.Start(ctx); err != nil {
						log.Error().Err(err).Msg("Voice bridge stopped")
					}
				}()
			}
			return c.AssistantHttpServer.Start(ctx)
		},
	}
	cmd.Flags().BoolVar(&warm, "warm", true, "Cache this week's prayer times for every zone before serving")
	cmd.Flags().DurationVar(&interval, "refresh-interval", 6*time.Hour, "Cache refresh interval, 0 to disable")
	return cmd
}

func newAskCmd() *cobra.Command {
	var (
		transcript string
		latestDir  string
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "ask [text...]",
		Short: "Answer one question given as text, a transcript file, or the newest recording",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			text, err := askInput(ctx, args, transcript, latestDir, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			c, err := loadContainer(ctx)
			if err != nil {
				return err
			}
			return runAsk(ctx, c.AssistantService, text, verbose, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&transcript, "transcript", "t", "", "Audio file whose .txt transcript should be answered")
	cmd.Flags().StringVar(&latestDir, "latest", "", "Answer the newest .ogg recording in this directory")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print the corrected text and resolved intent")
	return cmd
}

// askInput picks the question from the arguments, a transcript, or the newest recording.
func askInput(ctx context.Context, args []string, transcript, latestDir string, out io.Writer) (string, error) {
	if latestDir != "" {
		path, err := voice.LatestAudio(latestDir, ".ogg")
		if err != nil {
			return "", err
		}
		fmt.Fprintln(out, "Using:", path)
		transcript = path
	}
	if transcript != "" {
		return voice.NewTranscriptFileTranscriber().Transcribe(ctx, transcript)
	}
	if len(args) == 0 {
		return "", fmt.Errorf("give a question, --transcript or --latest")
	}
	return strings.Join(args, " "), nil
}

type responder interface {
	Respond(ctx context.Context, raw string) services.Response
}

func runAsk(ctx context.Context, a responder, text string, verbose bool, out io.Writer) error {
	resp := a.Respond(ctx, text)
	if verbose {
		fmt.Fprintln(out, "STT RAW :", text)
		fmt.Fprintln(out, "STT FIX :", resp.Corrected)
		if resp.Intent != nil {
			intent, err := json.Marshal(resp.Intent)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "INTENT  :", string(intent))
		}
	}
	return voice.NewWriterSpeaker(out, replyPrefix).Speak(ctx, resp.Reply)
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Type questions interactively (exit to quit)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := loadContainer(ctx)
			if err != nil {
				return err
			}
			return runRepl(ctx, c.AssistantService, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runRepl(ctx context.Context, a responder, in io.Reader, out io.Writer) error {
	speaker := voice.NewWriterSpeaker(out, replyPrefix)
	fmt.Fprintln(out, "Type mode (exit to quit)")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		q := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(q) {
		case "exit", "quit":
			return nil
		}
		if err := speaker.Speak(ctx, a.Respond(ctx, q).Reply); err != nil {
			return err
		}
	}
}

func newPlotCmd() *cobra.Command {
	var (
		zone string
		out  string
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render this week's prayer times for a zone as an HTML chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := loadContainer(ctx)
			if err != nil {
				return err
			}
			rows, err := c.PrayerTimeService.GetWeek(ctx, models.Zone(strings.ToUpper(zone)))
			if err != nil {
				return err
			}
			for _, row := range rows {
				util.PrintPrayerTimeRow(cmd.OutOrStdout(), row)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create HTML file: %w", err)
			}
			defer f.Close()
			if err := util.PlotWeeklyTimes(models.Zone(strings.ToUpper(zone)), rows, f); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Weekly chart generated:", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&zone, "zone", "z", string(models.DefaultZone), "e-Solat zone code")
	cmd.Flags().StringVarP(&out, "out", "o", "waktu_solat.html", "Output HTML file")
	return cmd
}
