package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"streamresolve/client"
	"streamresolve/internal/config"
)

var (
	flagConfig  string
	flagProxy   string
	flagTimeout time.Duration
	flagBest    bool
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:   "streamresolve <url|video-id>",
	Short: "Resolve a video reference into playable stream URLs",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to YAML config file")
	rootCmd.Flags().StringVar(&flagProxy, "proxy", "", "proxy URL for outbound requests")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "per-attempt request timeout (default 12s)")
	rootCmd.Flags().BoolVar(&flagBest, "best", false, "print only the best stream URL")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "verbose logging")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagProxy != "" {
		cfg.Proxy = flagProxy
	}

	logger, err := newLogger(cfg.LogLevel, flagDebug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	timeout := cfg.RequestTimeout()
	if flagTimeout > 0 {
		timeout = flagTimeout
	}

	c := client.New(client.Config{
		ProxyURL:       cfg.Proxy,
		RequestTimeout: timeout,
		Logger:         logger,
	})

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	result, err := c.Extract(ctx, args[0])
	if err != nil {
		return err
	}

	if flagBest {
		if result.Best == nil {
			return client.ErrNoPlayableFormats
		}
		fmt.Println(result.Best.URL)
		return nil
	}

	fmt.Printf("Title: %s\n", result.Title)
	if result.DurationSec > 0 {
		fmt.Printf("Duration: %ds\n", result.DurationSec)
	}
	fmt.Printf("Found %d streams:\n", len(result.Streams))
	for _, s := range result.Streams {
		marker := " "
		if result.Best != nil && s.Itag == result.Best.Itag && s.URL == result.Best.URL {
			marker = "*"
		}
		fmt.Printf("%s [%d] %s %d kbps audio=%t video=%t - %s\n",
			marker, s.Itag, s.QualityLabel, s.Bitrate/1000, s.HasAudio, s.HasVideo, s.MimeType)
	}
	if result.Best != nil {
		fmt.Printf("Best: %s\n", result.Best.URL)
	}
	return nil
}

func newLogger(level string, debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.WarnLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
