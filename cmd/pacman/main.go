package main

import (
	"flag"

	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"pacman/internal/game"
	"pacman/internal/maze"
	"pacman/internal/ui"
)

func main() {
	levelPath := flag.String("level", "", "YAML level file (default: built-in layout)")
	configPath := flag.String("config", "", "YAML gameplay config file")
	watch := flag.Bool("watch", false, "reload the level file when it changes")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := game.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = game.LoadConfig(*configPath); err != nil {
			log.WithError(err).Fatal("loading config")
		}
	}

	buildSession := func() (*game.Session, error) {
		m := maze.Default()
		if *levelPath != "" {
			var err error
			if m, err = maze.LoadFile(*levelPath); err != nil {
				return nil, err
			}
		}
		return game.NewSession(m, cfg)
	}

	s, err := buildSession()
	if err != nil {
		log.WithError(err).Fatal("starting session")
	}
	u := ui.New(s)

	if *watch && *levelPath != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			log.WithError(err).Warn("level watching disabled")
		} else {
			defer watcher.Close()
			if err := watcher.Add(*levelPath); err != nil {
				log.WithError(err).Warn("level watching disabled")
			} else {
				go watchLevel(watcher, u, buildSession)
			}
		}
	}

	ebiten.SetWindowTitle("Pacman (Go + Ebiten)")
	ebiten.SetWindowSize(u.ScreenWidth(), u.ScreenHeight())
	if err := ebiten.RunGame(u); err != nil {
		log.Fatal(err)
	}
}

// watchLevel rebuilds the session whenever the level file is rewritten and
// swaps it into the running UI.
func watchLevel(watcher *fsnotify.Watcher, u *ui.UI, build func() (*game.Session, error)) {
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			s, err := build()
			if err != nil {
				log.WithError(err).Error("level reload failed")
				continue
			}
			u.Swap(s)
			log.WithField("file", ev.Name).Info("level reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("level watcher")
		}
	}
}
