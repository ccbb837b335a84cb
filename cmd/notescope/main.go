package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/litetravel/notescope/pkg/config"
	"github.com/litetravel/notescope/pkg/content"
	"github.com/litetravel/notescope/pkg/domain"
	"github.com/litetravel/notescope/pkg/llm"
	"github.com/litetravel/notescope/pkg/pipeline"
	"github.com/litetravel/notescope/pkg/source"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"notescope.yml" description:"config file"`

	Source   string `short:"s" long:"source" default:"mock" description:"data source to fetch from (mock, feed)"`
	Keyword  string `short:"k" long:"keyword" description:"search keyword"`
	City     string `short:"c" long:"city" description:"filter by city"`
	Limit    int    `short:"n" long:"limit" default:"10" description:"maximum notes to fetch"`
	Template string `short:"t" long:"template" description:"prompt template name, selected by content type when empty"`

	Title   string `long:"title" description:"analyze a single ad-hoc note with this title"`
	Content string `long:"content" description:"analyze a single ad-hoc note with this content"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] failed to load config: %v", err)
		os.Exit(1)
	}

	var secrets []string
	if cfg.LLM.APIKey != "" {
		secrets = append(secrets, cfg.LLM.APIKey)
	}
	setupLog(opts.Debug, secrets...)

	log.Printf("[INFO] starting notescope version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, opts Opts) error {
	provider := llm.NewOpenAIProvider(cfg.LLM)

	p := pipeline.New(pipeline.Config{
		Provider: provider,
		Cleaner: content.NewCleaner(content.CleanerConfig{
			RemoveEmoji:    *cfg.Cleaner.RemoveEmoji,
			RemoveAds:      *cfg.Cleaner.RemoveAds,
			RemoveHashtags: cfg.Cleaner.RemoveHashtags,
			MinLength:      cfg.Cleaner.MinLength,
		}),
		Concurrency: cfg.Pipeline.Concurrency,
	})

	registerSources(p, cfg)

	// single ad-hoc note mode
	if opts.Content != "" {
		note := domain.Note{
			ID:        "adhoc-1",
			Source:    domain.SourceMock,
			Title:     opts.Title,
			Content:   opts.Content,
			City:      opts.City,
			CrawlTime: time.Now(),
		}
		note.ContentType = source.InferContentType(note.Title, note.Content, nil)
		result := p.ProcessNote(ctx, note, opts.Template)
		return printJSON(result)
	}

	batch, err := p.FetchAndProcess(ctx, domain.SourceType(opts.Source), opts.Keyword, opts.City, opts.Limit, opts.Template)
	if err != nil {
		return fmt.Errorf("fetch and process: %w", err)
	}
	return printJSON(batch)
}

func registerSources(p *pipeline.Pipeline, cfg *config.Config) {
	p.RegisterSource(source.NewMockSource())

	if len(cfg.Feeds) > 0 {
		var extractor *content.Extractor
		if cfg.Extraction.Enabled {
			extractor = content.NewExtractor(cfg.Extraction.Timeout, cfg.Extraction.UserAgent, cfg.Extraction.MinTextLength)
		}
		p.RegisterSource(source.NewFeedSource(cfg.Feeds, cfg.Extraction.Timeout, cfg.Extraction.UserAgent, extractor))
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
