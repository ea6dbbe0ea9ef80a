// Command nixnet inspects NI-XNET hardware and databases and records bus
// traffic.
//
//	nixnet [-config nixnet.toml] interfaces
//	nixnet aliases
//	nixnet dump <database>
//	nixnet monitor -db <database> -cluster <cluster> -intf CAN1 [-for 10s]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"go.uber.org/zap"

	nixnet "github.com/LoveWonYoung/nixnet"
	"github.com/LoveWonYoung/nixnet/config"
	"github.com/LoveWonYoung/nixnet/database"
	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/logrecorder"
	"github.com/LoveWonYoung/nixnet/session"
	"github.com/LoveWonYoung/nixnet/status"
	"github.com/LoveWonYoung/nixnet/system"
)

func main() {
	configPath := flag.String("config", "nixnet.toml", "Path to the TOML configuration")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}
	if err := run(*configPath, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: nixnet [-config file] <command> [args]")
	fmt.Fprintln(os.Stderr, "  interfaces                     list installed interfaces")
	fmt.Fprintln(os.Stderr, "  aliases                        list database aliases")
	fmt.Fprintln(os.Stderr, "  dump <database>                print clusters, frames and signals")
	fmt.Fprintln(os.Stderr, "  monitor -db D -cluster C -intf I [-for d]")
	fmt.Fprintln(os.Stderr, "                                 record frames received on an interface")
	flag.PrintDefaults()
}

func run(configPath, cmd string, args []string) error {
	cfg, err := config.Load(osfs.New(filepath.Dir(configPath)), filepath.Base(configPath), nil)
	if err != nil {
		return err
	}
	logger, err := cfg.Logging.Build()
	if err != nil {
		return err
	}
	defer logger.Sync()
	status.SetLogger(logger)
	driver.SetLogger(logger.Named("driver"))
	session.SetLogger(logger.Named("session"))

	env, err := nixnet.Load(cfg.Driver.Library, cfg.Driver.StatusBufferSize)
	if err != nil {
		return err
	}
	if cfg.Resources.ReportLeaks {
		defer env.ReportLeaks()
	}
	for _, a := range cfg.Aliases {
		if err := database.AddAlias(env, a.Name, a.Path, a.BaudRate); err != nil {
			return fmt.Errorf("alias %s: %w", a.Name, err)
		}
		logger.Debug("alias registered", zap.String("alias", a.Name), zap.String("path", a.Path))
	}

	switch cmd {
	case "interfaces":
		return listInterfaces(env)
	case "aliases":
		return listAliases(env)
	case "dump":
		if len(args) != 1 {
			return fmt.Errorf("dump needs a database: %w", status.ErrInvalidArgument)
		}
		return dump(env, args[0])
	case "monitor":
		return monitor(env, cfg, logger, args)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, status.ErrInvalidArgument)
	}
}

func listInterfaces(env *nixnet.Env) error {
	sys, err := system.Open(env)
	if err != nil {
		return err
	}
	defer sys.Close()

	v, err := sys.Version()
	if err != nil {
		return err
	}
	fmt.Printf("NI-XNET %s\n", v)
	intfs, err := sys.Interfaces().Items()
	if err != nil {
		return err
	}
	for _, i := range intfs {
		name, err := i.Name()
		if err != nil {
			return err
		}
		proto, err := i.Protocol()
		if err != nil {
			return err
		}
		port, err := i.PortNumber()
		if err != nil {
			return err
		}
		fmt.Printf("%-8s %-8s port %d\n", name, proto, port)
	}
	return nil
}

func listAliases(env *nixnet.Env) error {
	aliases, err := database.Aliases(env, "")
	if err != nil {
		return err
	}
	for _, a := range aliases {
		fmt.Printf("%-16s %s\n", a.Name, a.Path)
	}
	return nil
}

func dump(env *nixnet.Env, name string) error {
	db, err := database.Open(env, name)
	if err != nil {
		return err
	}
	defer db.Close()

	clusters, err := db.Clusters().Items()
	if err != nil {
		return err
	}
	for _, c := range clusters {
		cname, err := c.Name()
		if err != nil {
			return err
		}
		proto, err := c.Protocol()
		if err != nil {
			return err
		}
		baud, err := c.BaudRate()
		if err != nil {
			return err
		}
		fmt.Printf("cluster %s (%s, %d bit/s)\n", cname, proto, baud)

		fs, err := c.Frames().Items()
		if err != nil {
			return err
		}
		for _, f := range fs {
			if err := dumpFrame(f); err != nil {
				return err
			}
		}
	}
	return nil
}

func dumpFrame(f *database.Frame) error {
	name, err := f.Name()
	if err != nil {
		return err
	}
	id, err := f.ID()
	if err != nil {
		return err
	}
	n, err := f.PayloadLength()
	if err != nil {
		return err
	}
	fmt.Printf("  frame %-24s 0x%03X len %d\n", name, id, n)

	sigs, err := f.Signals().Items()
	if err != nil {
		return err
	}
	for _, s := range sigs {
		sname, err := s.Name()
		if err != nil {
			return err
		}
		start, err := s.StartBit()
		if err != nil {
			return err
		}
		bits, err := s.NumBits()
		if err != nil {
			return err
		}
		unit, err := s.Unit()
		if err != nil {
			return err
		}
		fmt.Printf("    signal %-22s bit %d+%d %s\n", sname, start, bits, unit)
	}
	return nil
}

func monitor(env *nixnet.Env, cfg config.Config, logger *zap.Logger, args []string) error {
	fset := flag.NewFlagSet("monitor", flag.ContinueOnError)
	db := fset.String("db", "", "Database alias or path")
	cluster := fset.String("cluster", "", "Cluster in the database")
	intf := fset.String("intf", "CAN1", "Interface to listen on")
	duration := fset.Duration("for", 0, "Stop after this long (0 runs until interrupted)")
	if err := fset.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	s, err := session.New(env, session.Options{
		Database:  *db,
		Cluster:   *cluster,
		Interface: *intf,
		Mode:      session.ModeFrameInStream,
	})
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Start(session.ScopeNormal); err != nil {
		return err
	}

	rec, err := logrecorder.New(osfs.New(cfg.Recorder.Dir), logrecorder.Options{
		Name:   cfg.Recorder.Name,
		Rotate: cfg.Recorder.Rotate.Duration(),
	})
	if err != nil {
		return err
	}
	defer rec.Close()
	logger.Info("recording", zap.String("interface", *intf), zap.String("file", rec.Path()))

	rx := session.NewReceiver(s, session.ReceiverConfig{})
	rx.Start(ctx)
	started := time.Now()
	err = rec.Run(ctx, rx.Frames())
	rx.Stop()

	logger.Info("recording stopped",
		zap.Uint64("frames", rec.Count()),
		zap.Uint64("dropped", rx.Dropped()),
		zap.Duration("elapsed", time.Since(started)))
	if err != nil && ctx.Err() == nil {
		return err
	}
	return rx.Err()
}
