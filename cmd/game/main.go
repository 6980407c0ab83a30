package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/overworld/internal/application/game"
	"github.com/younwookim/overworld/internal/application/replay"
	"github.com/younwookim/overworld/internal/application/scene"
	"github.com/younwookim/overworld/internal/application/scene/boot"
	"github.com/younwookim/overworld/internal/application/scene/playing"
	"github.com/younwookim/overworld/internal/application/scene/splash"
	"github.com/younwookim/overworld/internal/application/system"
	"github.com/younwookim/overworld/internal/infrastructure/auth"
	"github.com/younwookim/overworld/internal/infrastructure/config"
	"github.com/younwookim/overworld/internal/infrastructure/logging"
	"github.com/younwookim/overworld/internal/infrastructure/render"
	"github.com/younwookim/overworld/internal/infrastructure/storage"
	"github.com/younwookim/overworld/internal/infrastructure/watch"
)

// options are the command line flags
type options struct {
	configDir string
	stage     string
	token     string
	skipAuth  bool
	record    string
	replay    string
	verify    string
	logFile   string
	debug     bool
	watch     bool
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	var opts options
	fset := flag.NewFlagSet("overworld", flag.ContinueOnError)
	fset.SetOutput(errOut)

	fset.StringVar(&opts.configDir, "config", "", "Config directory (default: embedded configs)")
	fset.StringVar(&opts.stage, "stage", "demo", "Stage to load from stages/")
	fset.StringVar(&opts.token, "token", "", "Store an access token before starting")
	fset.BoolVar(&opts.skipAuth, "skip-auth", false, "Start without validating a token")
	fset.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&opts.replay, "replay", "", "Play back a recorded input file")
	fset.StringVar(&opts.verify, "verify", "", "Run a recording headless and print the outcome")
	fset.StringVar(&opts.logFile, "log-file", "", "Also write logs to this file, rotated")
	fset.BoolVar(&opts.debug, "debug", false, "Debug logging and on-screen state")
	fset.BoolVar(&opts.watch, "watch", false, "Reload the sprite sheet when it changes (needs -config)")

	if err := fset.Parse(args); err != nil {
		return options{}, err
	}
	if opts.record != "" && opts.replay != "" {
		return options{}, errors.New("-record and -replay cannot be combined")
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logging.New(logging.Options{FilePath: opts.logFile, Debug: opts.debug})

	if err := run(opts, log); err != nil {
		log.Errorw("game stopped", "error", err)
		logging.Sync(log)
		os.Exit(1)
	}
	logging.Sync(log)
}

func newLoader(configDir string) (*config.Loader, error) {
	if configDir != "" {
		return config.NewLoader(configDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func run(opts options, log *zap.SugaredLogger) error {
	loader, err := newLoader(opts.configDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	stageCfg, err := loader.LoadStage(opts.stage)
	if err != nil {
		return fmt.Errorf("failed to load stage: %w", err)
	}
	stage, err := system.LoadStage(stageCfg)
	if err != nil {
		return fmt.Errorf("failed to build stage: %w", err)
	}
	log.Infow("stage loaded", "stage", stageCfg.ID, "name", stageCfg.Name, "width", stage.Width, "height", stage.Height)

	if opts.verify != "" {
		data, err := replay.LoadReplay(opts.verify)
		if err != nil {
			return err
		}
		return printSimulation(os.Stdout, Simulate(*data, cfg, stage))
	}

	playingOpts := playing.Options{
		RecordPath: opts.record,
		Debug:      opts.debug,
		Log:        log.Named("playing"),
	}
	if opts.record != "" {
		playingOpts.Recorder = replay.NewRecorder(stageCfg.ID)
	}
	if opts.replay != "" {
		data, err := replay.LoadReplay(opts.replay)
		if err != nil {
			return err
		}
		if data.Stage != stageCfg.ID {
			log.Warnw("replay was recorded on another stage", "recorded", data.Stage, "loaded", stageCfg.ID)
		}
		playingOpts.Replayer = replay.NewReplayer(*data)
	}

	cell := cfg.Player.Sprite.CellSize
	if sheetPath := cfg.Player.Sprite.Sheet; sheetPath != "" {
		sheet, err := render.LoadSheet(loader.FS(), sheetPath, cell)
		if err != nil {
			return err
		}
		playingOpts.Sheet = sheet

		if opts.watch {
			w, err := startWatcher(opts.configDir, sheetPath)
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()
			playingOpts.Watcher = w
			playingOpts.LoadSheet = func(path string) (*ebiten.Image, error) {
				return render.LoadSheet(os.DirFS(filepath.Dir(path)), filepath.Base(path), cell)
			}
			log.Infow("watching sprite sheet", "file", sheetPath)
		}
	} else if opts.watch {
		log.Warnw("-watch ignored: no sprite sheet configured")
	}

	store, validator := newAuth(cfg.Auth, opts, log)
	if opts.token != "" {
		if err := store.Save(opts.token); err != nil {
			return err
		}
	}

	newPlaying := func() (scene.Scene, error) {
		return playing.New(cfg, stageCfg, stage, playingOpts)
	}
	var newBoot func() scene.Scene
	newBoot = func() scene.Scene {
		next := boot.Next{
			Playing: newPlaying,
			Denied: func(reason string) scene.Scene {
				return splash.New(reason, newBoot, nil)
			},
		}
		return boot.New(store, validator, cfg.Auth.Timeout(), next, log.Named("boot"))
	}

	d := cfg.Display
	g := game.New(newBoot(), d.ScreenWidth, d.ScreenHeight, d.Framerate, log)
	defer g.Close()

	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.Framerate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func startWatcher(configDir, sheetPath string) (*watch.Watcher, error) {
	if configDir == "" {
		return nil, errors.New("-watch needs -config: embedded sheets cannot change")
	}
	w, err := watch.NewWatcher(filepath.Join(configDir, sheetPath))
	if err != nil {
		return nil, err
	}
	return w, nil
}

// newAuth picks the token store and validator for the flags
func newAuth(cfg *config.AuthConfig, opts options, log *zap.SugaredLogger) (storage.TokenStore, auth.Validator) {
	if opts.skipAuth {
		log.Infow("token check skipped")
		return storage.NewMemoryStore("offline"), auth.AllowAll{}
	}

	validator := auth.NewHTTPValidator(cfg.BaseURL, cfg.Timeout())

	store, err := storage.OpenGData(cfg.AppName)
	if err != nil {
		log.Warnw("token storage unavailable, token will not persist", "error", err)
		return storage.NewMemoryStore(""), validator
	}
	return store, validator
}
