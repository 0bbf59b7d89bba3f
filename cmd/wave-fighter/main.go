package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/wave-fighter/catalog"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/input"
	"github.com/lixenwraith/wave-fighter/manifest"
	"github.com/lixenwraith/wave-fighter/network"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/physics"
	"github.com/lixenwraith/wave-fighter/render"
	"github.com/lixenwraith/wave-fighter/render/renderers"
	"github.com/lixenwraith/wave-fighter/service"
	"github.com/lixenwraith/wave-fighter/system"
	"github.com/lixenwraith/wave-fighter/vmath"
)

const (
	logDir      = "logs"
	logFileName = "wave-fighter.log"
)

var (
	configFlag    = flag.String("config", "", "Catalog YAML overriding the stock weapon, enemy and loot tables")
	keymapFlag    = flag.String("keymap", "", "Keymap YAML overriding the default bindings")
	debugFlag     = flag.Bool("debug", false, "Write logs to "+filepath.Join(logDir, logFileName))
	seedFlag      = flag.Uint64("seed", 0, "Simulation random seed, 0 picks one from the clock")
	telemetryFlag = flag.String("telemetry", "", "Spectator HTTP/WebSocket listen address, empty disables")
	netConfigFlag = flag.String("telemetry-config", "", "Telemetry server YAML (limits, timeouts), -telemetry overrides its address")
	muteFlag      = flag.Bool("mute", false, "Start with audio disabled")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wave-fighter: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging routes the standard logger to a file in debug mode and discards it otherwise
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func run() error {
	cat := catalog.Default()
	if *configFlag != "" {
		loaded, err := catalog.LoadFile(*configFlag)
		if err != nil {
			return errors.Wrap(err, "load catalog")
		}
		cat = loaded
	}

	keys, err := loadKeys(*keymapFlag)
	if err != nil {
		return err
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	world := engine.NewWorld()
	presenter := render.NewTerminalPresenter()
	world.Resources.Catalog = cat
	world.Resources.Rand = vmath.NewFastRand(seed)
	world.Resources.Raycaster = physics.DefaultArena()
	world.Resources.Presenter = presenter
	world.Resources.Game.State.RunID = uuid.NewString()
	system.SpawnPlayer(world)

	log.Printf("run %s seed %d", world.Resources.Game.State.RunID, seed)

	manifest.RegisterSystems()
	if err := manifest.BuildSystems(world); err != nil {
		return err
	}

	netCfg := network.DefaultConfig()
	if *netConfigFlag != "" {
		if netCfg, err = network.LoadConfig(*netConfigFlag); err != nil {
			return err
		}
	}
	if *telemetryFlag != "" {
		netCfg.Address = *telemetryFlag
	}
	manifest.RegisterServices(manifest.ServiceOptions{Muted: *muteFlag, Network: netCfg})

	hub := service.NewHub()
	if err := manifest.BuildServices(hub); err != nil {
		return err
	}
	// Services may add systems, so they initialize before the scheduler registers handlers
	if err := hub.InitAll(world); err != nil {
		return errors.Wrap(err, "init services")
	}

	scheduler := engine.NewClockScheduler(world, parameter.GameUpdateInterval)
	if svc, ok := service.Lookup[*network.Service](hub, "network"); ok && svc.Server() != nil {
		svc.Server().SetPauser(scheduler)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	if err := hub.StartAll(); err != nil {
		return errors.Wrap(err, "start services")
	}
	defer hub.StopAll()

	scheduler.Start()
	defer scheduler.Stop()

	compositor := render.NewCompositor(screen)
	renderers.RegisterDefaults(compositor, presenter)

	frontendLoop(screen, world, scheduler, input.NewMapper(keys), compositor)

	if svc, ok := service.Lookup[*network.Service](hub, "network"); ok && svc.Server() != nil {
		log.Printf("closing telemetry with %d spectators", svc.Server().PeerCount())
	}
	return nil
}

// loadKeys merges an optional keymap file over the defaults
func loadKeys(path string) (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if path == "" {
		return keys, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read keymap")
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(keys, override), nil
}

// frontendLoop pumps terminal events into the mapper and renders at the frame rate until quit
func frontendLoop(screen tcell.Screen, world *engine.World, clock *engine.ClockScheduler, mapper *input.Mapper, compositor *render.Compositor) {
	events := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() { screen.ChannelEvents(events, quit) })

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				compositor.Resize()
			case *tcell.EventKey:
				in := mapper.HandleKey(ev)
				switch in.Type {
				case input.IntentQuit:
					return
				case input.IntentToggleMute:
					muted := world.Resources.Audio.ToggleMute()
					log.Printf("audio muted: %v", muted)
				case input.IntentTogglePause:
					// Held keys must not resume as still pressed
					mapper.Release()
					clock.TogglePause()
				case input.IntentRestart:
					mapper.Release()
					world.RunSafe(func() {
						world.PushEvent(event.EventGameReset, nil)
					})
					clock.Resume()
				}
			}

		case now := <-ticker.C:
			if !clock.Paused() {
				world.RunSafe(func() {
					mapper.Apply(world, now)
				})
			}
			compositor.RenderFrame(world)
		}
	}
}
