// Command demo exercises the logging facility: it emits one record per level
// (including an emoji-bearing one) and, when given a config file, keeps
// watching it for changes until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tidylog/logger"
	"tidylog/logger/cfgfile"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	name := flag.String("name", "demo", "logger name")
	dir := flag.String("dir", "logs", "log directory")
	level := flag.String("level", "debug", "minimum level (debug, info, warning, error, critical)")
	save := flag.Bool("save", false, "also write a rotating log file")
	cfgPath := flag.String("config", "", "YAML config file; overrides the other flags and is watched for changes")
	flag.Parse()

	defer logger.Shutdown()

	var (
		log *slog.Logger
		err error
	)
	if *cfgPath != "" {
		log, err = cfgfile.Apply(*cfgPath)
	} else {
		log, err = logger.New(*name, *dir, *level, *save)
	}
	if err != nil {
		return err
	}

	log.Debug("resolving upstream", "target", "example.org")
	log.Info("service ready 🚀", "port", 8080)
	log.Warn("disk space low", "free_mb", 412)
	log.Error("request failed", "err", fmt.Errorf("upstream timeout"))
	log.Log(context.Background(), logger.LevelCritical, "shutting down")

	if *cfgPath == "" {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("watching config", "path", *cfgPath)
	if err := cfgfile.Watch(ctx, *cfgPath); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
