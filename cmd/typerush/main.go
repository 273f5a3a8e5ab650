// Package main provides the CLI entrypoint for typerush.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typerush/internal/config"
	"github.com/verte-zerg/typerush/internal/generator"
	"github.com/verte-zerg/typerush/internal/logging"
	"github.com/verte-zerg/typerush/internal/model"
	"github.com/verte-zerg/typerush/internal/sound"
	"github.com/verte-zerg/typerush/internal/stats"
	"github.com/verte-zerg/typerush/internal/textgen"
	"github.com/verte-zerg/typerush/internal/tui"
	"github.com/verte-zerg/typerush/internal/wordlist"
)

const soundVolumeDB = -1.0

var (
	practiceLang        string
	practiceDuration    int
	practiceLineSize    int
	practiceTopic       string
	practiceDifficulty  string
	practiceComplexity  string
	practiceTextFile    string
	practiceSound       bool
	practiceSeed        int64
	practicePartialWord string
	practiceModel       string
	practiceImage       bool
	practiceOffline     bool

	outputJSON bool
	debugLog   bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typerush",
		Short:         "Timed typing-speed trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	addTextFlags(rootCmd)
	rootCmd.Flags().StringVar(&practiceLang, "lang", config.DefaultLang, "vocabulary language code")
	rootCmd.Flags().IntVar(&practiceLineSize, "line-size", config.DefaultLineSize, "words per line")
	rootCmd.Flags().StringVar(&practiceTextFile, "text-file", "", "read the seed text from a file instead of generating it")
	rootCmd.Flags().BoolVar(&practiceSound, "sound", true, "play keystroke sounds")
	rootCmd.Flags().Int64Var(&practiceSeed, "seed", 0, "random seed for filler words (0: time based)")
	rootCmd.Flags().StringVar(&practicePartialWord, "partial-word", config.DefaultPartialWord, "scoring of an unfinished word at time-out: discard|score")
	rootCmd.Flags().BoolVar(&practiceImage, "image", false, "generate a topic image")
	rootCmd.Flags().BoolVar(&outputJSON, "json", false, "print the result as JSON after exit")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newTextCmd())

	return rootCmd
}

func addTextFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&practiceDuration, "duration", config.DefaultDuration, "test duration in seconds")
	cmd.Flags().StringVar(&practiceTopic, "topic", config.DefaultTopic, "topic of the generated text")
	cmd.Flags().StringVar(&practiceDifficulty, "difficulty", config.DefaultDifficulty, "sentence structure: beginner|intermediate|advanced")
	cmd.Flags().StringVar(&practiceComplexity, "complexity", config.DefaultComplexity, "word complexity: simple|medium|complex")
	cmd.Flags().StringVar(&practiceModel, "model", config.DefaultModel, "OpenAI model used for text generation")
	cmd.Flags().BoolVar(&practiceOffline, "offline", false, "never call remote text generation")
}

// resolveConfig layers defaults, the config file, the environment and
// changed flags, in increasing precedence.
func resolveConfig(cmd *cobra.Command) (model.Config, config.Environment, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, config.Environment{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.Defaults()
	fileCfg.Practice.Apply(&cfg)

	config.LoadDotenv()
	env, err := config.ApplyEnv(&cfg)
	if err != nil {
		return model.Config{}, config.Environment{}, err
	}

	applyFlag(cmd, "lang", &cfg.Lang, practiceLang)
	applyFlag(cmd, "duration", &cfg.Duration, practiceDuration)
	applyFlag(cmd, "line-size", &cfg.LineSize, practiceLineSize)
	applyFlag(cmd, "topic", &cfg.Topic, practiceTopic)
	applyFlag(cmd, "difficulty", &cfg.Difficulty, practiceDifficulty)
	applyFlag(cmd, "complexity", &cfg.Complexity, practiceComplexity)
	applyFlag(cmd, "text-file", &cfg.TextFile, practiceTextFile)
	applyFlag(cmd, "sound", &cfg.Sound, practiceSound)
	applyFlag(cmd, "seed", &cfg.Seed, practiceSeed)
	applyFlag(cmd, "partial-word", &cfg.PartialWord, practicePartialWord)
	applyFlag(cmd, "model", &cfg.Model, practiceModel)
	applyFlag(cmd, "image", &cfg.Image, practiceImage)
	applyFlag(cmd, "offline", &cfg.Offline, practiceOffline)

	if err := config.Validate(cfg); err != nil {
		return model.Config{}, config.Environment{}, err
	}
	return cfg, env, nil
}

func applyFlag[T any](cmd *cobra.Command, name string, target *T, value T) {
	flag := cmd.Flags().Lookup(name)
	if flag == nil || !flag.Changed {
		return
	}
	*target = value
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, env, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(config.DefaultLogPath(), debugLog)
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
	}()

	words, err := wordlist.Load(cfg.Lang, config.DefaultWordListDir())
	if err != nil {
		return wordListLoadError(cfg.Lang, err)
	}
	vocab := generator.NewVocabulary(words)
	gen, rnd := newGenerators(cfg.Seed)
	text, images := buildProviders(cfg, env.OpenAIKey, words, rnd, logger)

	var player sound.Player
	if cfg.Sound {
		spk, err := sound.NewSpeaker(soundVolumeDB)
		if err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer spk.Close()
			player = spk
		}
	}

	m := tui.NewModel(tui.Options{
		Config:    cfg,
		Vocab:     vocab,
		Gen:       gen,
		Text:      text,
		Images:    images,
		Sound:     sound.NewSubscriber(player, cfg.Sound, logger),
		Logger:    logger,
		SkipSetup: cmd.Flags().Changed("topic") || cfg.TextFile != "",
	})
	logger.Info("starting", "lang", cfg.Lang, "vocabulary", vocab.Len(), "duration", cfg.Duration)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	done, ok := final.(*tui.Model)
	if !ok {
		return nil
	}
	result, ok := done.LastResult()
	if !ok {
		return nil
	}
	return printResult(cmd.OutOrStdout(), result)
}

func newGenerators(seed int64) (*generator.Generator, *rand.Rand) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return generator.NewWithSeed(seed), rand.New(rand.NewSource(seed + 1))
}

// buildProviders picks the seed text chain: a text file, the OpenAI
// Responses API, or local filler. Remote failures fall back to filler.
func buildProviders(cfg model.Config, apiKey string, words []string, rnd *rand.Rand, logger *slog.Logger) (textgen.Provider, textgen.ImageProvider) {
	filler := textgen.NewFiller(words, rnd, textgen.FillerWords)
	if cfg.TextFile != "" {
		return textgen.File{Path: cfg.TextFile}, textgen.NoImage{}
	}
	if cfg.Offline {
		return filler, textgen.NoImage{}
	}

	remote, err := textgen.NewOpenAI(apiKey, cfg.Model, logger)
	if err != nil {
		logger.Warn("remote text generation unavailable, using filler text", "error", err)
		return filler, textgen.NoImage{}
	}
	var images textgen.ImageProvider = textgen.NoImage{}
	if cfg.Image {
		if img, err := textgen.NewOpenAIImages(apiKey); err == nil {
			images = img
		}
	}
	return textgen.WithFallback(remote, filler, logger), images
}

func printResult(w io.Writer, result model.Result) error {
	if outputJSON {
		return stats.WriteJSON(w, result)
	}
	return stats.RenderResult(w, result, stats.SparklineWidthFor(os.Stdout))
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available vocabulary languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	langs, err := wordlist.Langs(config.DefaultWordListDir())
	if err != nil {
		return err
	}
	for _, lang := range langs {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newTextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Print generated seed text without starting a test",
		Args:  cobra.NoArgs,
		RunE:  runTextCmd,
	}
	addTextFlags(cmd)
	return cmd
}

func runTextCmd(cmd *cobra.Command, _ []string) error {
	cfg, env, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	color := term.IsTerminal(int(os.Stderr.Fd()))
	logger := logging.New(os.Stderr, debugLog, color)

	words, err := wordlist.Load(cfg.Lang, config.DefaultWordListDir())
	if err != nil {
		return wordListLoadError(cfg.Lang, err)
	}
	_, rnd := newGenerators(cfg.Seed)
	provider, _ := buildProviders(cfg, env.OpenAIKey, words, rnd, logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()
	req := textgen.NewRequest(cfg.Topic, cfg.Difficulty, cfg.Complexity, cfg.Duration)
	text, err := provider.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to generate text: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typerush configuration
# Uncomment a value to enable it. Environment variables (TYPERUSH_*) and
# CLI flags override config values.

[practice]
# lang = %q               # Vocabulary language code
# duration = %d           # Test duration in seconds
# line-size = %d          # Words per line
# topic = %q  # Topic of the generated text
# difficulty = %q   # beginner | intermediate | advanced
# complexity = %q       # simple | medium | complex
# text-file = ""          # Use a local file as seed text
# sound = true            # Keystroke sounds
# partial-word = %q   # discard | score
# model = %q    # OpenAI model for text generation
# image = false           # Generate a topic image
# offline = false         # Never call remote text generation
`,
		config.DefaultLang,
		config.DefaultDuration,
		config.DefaultLineSize,
		config.DefaultTopic,
		config.DefaultDifficulty,
		config.DefaultComplexity,
		config.DefaultPartialWord,
		config.DefaultModel,
	)
}

func wordListLoadError(lang string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", filepath.Join(config.DefaultWordListDir(), lang+".txt")),
		"Run: typerush langs",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}
