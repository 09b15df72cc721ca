package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/AreebaxIrfan/translation-buddy/htdocs"
	"github.com/AreebaxIrfan/translation-buddy/pkg/services/session"
	"github.com/AreebaxIrfan/translation-buddy/pkg/services/stores"
	"github.com/AreebaxIrfan/translation-buddy/pkg/services/translate"
	"github.com/AreebaxIrfan/translation-buddy/pkg/settings"
	"github.com/AreebaxIrfan/translation-buddy/pkg/utils/zlog"
	"github.com/AreebaxIrfan/translation-buddy/pkg/web"
)

func main() {
	app := &cli.App{
		Name:    strings.ToLower(settings.Name),
		Usage:   "English-Urdu translation chat bot",
		Version: settings.Version(),
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "usage", Usage: "show config environment variables"},
		},
		Before: func(c *cli.Context) error {
			setupLogger()
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.Bool("usage") {
				return settings.Usage()
			}
			return serve(c.Context)
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the web chat server",
				Action: func(c *cli.Context) error { return serve(c.Context) },
			},
			{
				Name:   "check",
				Usage:  "run the start-up checks and exit",
				Action: func(c *cli.Context) error { return check(c.Context) },
			},
			{
				Name:   "chat",
				Usage:  "chat on the terminal",
				Action: func(c *cli.Context) error { return chat(c.Context) },
			},
			{
				Name:   "history",
				Usage:  "print the persisted translation history",
				Action: func(c *cli.Context) error { return history() },
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger() {
	var zlogger *zap.Logger
	if settings.InDevelop() {
		zlogger, _ = zap.NewDevelopment()
	} else {
		zlogger, _ = zap.NewProduction()
	}
	zlog.Set(zlogger.Sugar())
}

func serve(ctx context.Context) error {
	srv := web.New(web.Config{
		Addr:       settings.Current.HTTPListen,
		Debug:      settings.InDevelop(),
		DocHandler: http.FileServer(http.FS(htdocs.FS())),
	})

	idleClosed := make(chan struct{})
	go func() {
		quit := make(chan os.Signal, 2)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		zlog.Get().Info("shutting down server...")
		if err := srv.Stop(ctx); err != nil {
			zlog.Get().Infow("server shutdown fail", "err", err)
		}
		close(idleClosed)
	}()

	if err := srv.Serve(ctx); err != nil {
		return err
	}

	<-idleClosed
	return nil
}

func check(ctx context.Context) error {
	var failed bool
	for _, c := range session.Preflight(translate.NewProber()) {
		if err := c.Run(ctx); err != nil {
			failed = true
			fmt.Printf("%-12s fail: %s\n", c.Name, err)
			continue
		}
		fmt.Printf("%-12s ok\n", c.Name)
	}
	if _, err := translate.NewPair(); err != nil {
		failed = true
		fmt.Printf("%-12s fail: %s\n", "translators", err)
	} else {
		fmt.Printf("%-12s ok\n", "translators")
	}
	if failed {
		return cli.Exit("some checks failed", 1)
	}
	return nil
}

func chat(ctx context.Context) error {
	sess := session.New(session.Config{})
	msg, err := sess.Start(ctx)
	fmt.Println(msg)
	if err != nil {
		return cli.Exit("", 1)
	}

	in := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "/exit" || line == "/quit" {
			break
		}
		if line != "" {
			fmt.Println(sess.Turn(ctx, line))
		}
		fmt.Print("> ")
	}
	return in.Err()
}

func history() error {
	entries := stores.SgtHistory().Load()
	if len(entries) == 0 {
		fmt.Println("No translation history available.")
		return nil
	}
	for _, line := range entries.Lines() {
		fmt.Println(line)
	}
	return nil
}
