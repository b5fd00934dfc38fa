// Package cmd provides the reel command line. Settings come from, in
// increasing priority: the config files, the --config file, then flags.
package cmd

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/llehouerou/reel/internal/app"
	"github.com/llehouerou/reel/internal/config"
	"github.com/llehouerou/reel/internal/deck"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/icons"
	"github.com/llehouerou/reel/internal/logging"
	"github.com/llehouerou/reel/internal/state"
)

// flagValues holds the root command flags.
type flagValues struct {
	configFile   string
	itemsPerView int
	gap          int
	autoplay     bool
	interval     time.Duration
	transition   time.Duration
	start        int
	noResume     bool
	logLevel     string
}

var flags flagValues

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "reel [deck]",
	Short: "Browse a deck of cards in an endless carousel",
	Long: `reel shows the items of a YAML deck as cards in a carousel that loops
forever in both directions. Editing the deck file reloads it; the last item
viewed is remembered per deck.

Keys:
  h/l, left/right   previous/next item
  g/G, home/end     first/last item
  1-9               jump to item
  a, space          start/stop autoplay, pause/resume autoplay
  r                 reload the deck
  ?                 help
  q                 quit`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "extra config file read after $XDG_CONFIG_HOME/reel/config.toml and ./config.toml")
	pf.StringVarP(&flags.logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")

	f := rootCmd.Flags()
	f.IntVarP(&flags.itemsPerView, "items-per-view", "n", 0, "items shown on wide terminals")
	f.IntVar(&flags.gap, "gap", 0, "columns between cards")
	f.BoolVar(&flags.autoplay, "autoplay", false, "advance automatically")
	f.DurationVar(&flags.interval, "interval", 0, "autoplay interval (e.g. 5s)")
	f.DurationVar(&flags.transition, "transition", 0, "transition duration (e.g. 500ms)")
	f.IntVar(&flags.start, "start", 0, "item to start on, counting from 1 (disables resume)")
	f.BoolVar(&flags.noResume, "no-resume", false, "start on the first item instead of the last one viewed")
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cfg *config.Config, fs *pflag.FlagSet, v flagValues) {
	if fs.Changed("items-per-view") {
		cfg.Carousel.ItemsPerView = v.itemsPerView
	}
	if fs.Changed("gap") {
		gap := v.gap
		cfg.Carousel.Gap = &gap
	}
	if fs.Changed("autoplay") {
		cfg.Carousel.Autoplay = v.autoplay
	}
	if fs.Changed("interval") {
		cfg.Carousel.IntervalMs = int(v.interval.Milliseconds())
	}
	if fs.Changed("transition") {
		cfg.Carousel.TransitionMs = int(v.transition.Milliseconds())
	}
	if fs.Changed("no-resume") {
		cfg.NoResume = v.noResume
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = v.logLevel
	}
}

// resolveDeck returns the deck path from the arguments or the config.
func resolveDeck(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return config.ExpandPath(args[0]), nil
	}
	if cfg.Deck != "" {
		return cfg.Deck, nil
	}
	return "", errors.New("no deck given: pass a deck file or set deck in config.toml")
}

// appOptions builds the application options for a loaded deck.
func appOptions(cfg *config.Config, fs *pflag.FlagSet, v flagValues, d *deck.Deck) (app.Options, error) {
	opts := app.Options{
		Deck:     d,
		Carousel: cfg.CarouselOptions(),
		Resume:   !cfg.NoResume,
	}
	if fs.Changed("start") {
		if v.start < 1 || v.start > d.Len() {
			return opts, fmt.Errorf("--start %d: deck has items 1 to %d", v.start, d.Len())
		}
		opts.Carousel.StartIndex = v.start - 1
		opts.Resume = false
	}
	return opts, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadWithFile(flags.configFile)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	applyFlags(cfg, cmd.Flags(), flags)
	return cfg, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	deckPath, err := resolveDeck(cfg, args)
	if err != nil {
		return err
	}
	icons.Init(cfg.Icons)

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	logPath, err := logging.LogPath()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	logger, closeLog, err := logging.OpenFile(logPath, level)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpLogOpen, logPath, err))
	}
	defer closeLog()

	d, err := deck.Load(deckPath)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpDeckLoad, deckPath, err))
	}

	opts, err := appOptions(cfg, cmd.Flags(), flags, d)
	if err != nil {
		return err
	}

	stateMgr, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer func() {
		if err := stateMgr.Close(); err != nil {
			logger.Error("close state", "error", err)
		}
	}()
	opts.State = stateMgr

	watcher, err := deck.Watch(d.Path, deck.DefaultDebounce)
	if err != nil {
		// Live reload is optional; 'r' still reloads by hand.
		logger.Warn("watch deck", "deck", d.Path, "error", err)
	} else {
		opts.Watcher = watcher
		defer watcher.Close()
	}
	opts.Logger = logger

	logger.Info("starting", "deck", d.Path, "items", d.Len(), "log_level", level.String())

	p := tea.NewProgram(app.New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}
