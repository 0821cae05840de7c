package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/StounhandJ/vidsaver/internal/catalog"
	"github.com/StounhandJ/vidsaver/internal/common"
	"github.com/StounhandJ/vidsaver/internal/config"
	"github.com/StounhandJ/vidsaver/internal/fetcher"
	"github.com/StounhandJ/vidsaver/internal/handlers"
	tgintake "github.com/StounhandJ/vidsaver/internal/intake/telegram"
	"github.com/StounhandJ/vidsaver/internal/media"
	"github.com/StounhandJ/vidsaver/internal/resolver"
	"github.com/StounhandJ/vidsaver/internal/resolver/fastapi"
	"github.com/StounhandJ/vidsaver/internal/resolver/tikwm"
	"github.com/StounhandJ/vidsaver/internal/resolver/youtube"
	"github.com/StounhandJ/vidsaver/internal/securestore"
	"github.com/StounhandJ/vidsaver/internal/share"
	"github.com/StounhandJ/vidsaver/internal/store"
	"github.com/StounhandJ/vidsaver/internal/utils"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/urfave/cli/v3"
)

var cfg config.Config

func main() {
	//------ Configuration ------//
	if err := config.LoadConfig(&cfg); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	flags, err := config.ParseFlags(&cfg.Application)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//---------------//

	cmd := &cli.Command{
		Name:  "vidsaver",
		Usage: "save social media videos locally",
		Flags: flags,
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "resolve a link (or shared text containing one) and download the video",
				ArgsUsage: "<url or shared text>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Usage: "directory to store videos in, remembered after the first run",
					},
				},
				Action: getAction,
			},
			{
				Name:   "list",
				Usage:  "show saved videos, newest first",
				Action: listAction,
			},
			{
				Name:      "remove",
				Usage:     "delete a saved video and its catalog entry",
				ArgsUsage: "<id>",
				Action:    removeAction,
			},
			{
				Name:   "serve",
				Usage:  "run the share intake server and the telegram bot",
				Action: serveAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildService wires the whole pipeline from the loaded configuration.
// The returned folder is nil when a plain library directory is configured.
func buildService(ctx context.Context) (*handlers.Service, *store.Folder, error) {
	utils.InitLogger(cfg.Application.LogLevel)

	//------ HTTP client for outgoing requests ------//
	client := http.Client{}

	if cfg.Application.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.Application.ProxyURL)
		if err != nil {
			return nil, nil, fmt.Errorf("bad proxy url: %w", err)
		}

		client.Transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL),
		}
	}
	//---------------//

	//------ Encrypted state and catalog ------//
	secStore, err := securestore.NewFileStore(stateDir(), cfg.Application.Passphrase)
	if err != nil {
		return nil, nil, err
	}

	cat := catalog.New(secStore)
	//---------------//

	//------ Storage strategy ------//
	var (
		committer store.Committer
		folder    *store.Folder
	)

	if cfg.Application.LibraryDir != "" {
		committer, err = store.NewLibrary(cfg.Application.LibraryDir)
		if err != nil {
			return nil, nil, err
		}
	} else {
		folder = store.NewFolder(secStore)
		committer = folder
	}
	//---------------//

	svc := handlers.NewService(
		[]resolver.IResolver{
			tikwm.New(&client),
			youtube.New(&client),
			// Catch-all backend resolver, registered last.
			fastapi.New(&client, cfg.Application.APIURL),
		},
		fetcher.New(&client, cfg.Application.TempDir),
		committer,
		cat,
		cfg.Application.PermissiveURLs,
	)

	return svc, folder, nil
}

func stateDir() string {
	if cfg.Application.StateDir != "" {
		return cfg.Application.StateDir
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}

	return filepath.Join(base, "vidsaver")
}

func getAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return errors.New("usage: vidsaver get <url or shared text>")
	}

	svc, folder, err := buildService(ctx)
	if err != nil {
		return err
	}

	// The folder strategy needs a grant before the first download.
	if folder != nil {
		if _, err := folder.EnsurePermission(ctx, c.String("dir")); err != nil {
			if errors.Is(err, common.ErrPermissionRequired) {
				return errors.New("no storage folder set up yet, rerun with --dir <directory>")
			}

			return err
		}
	}

	md, err := svc.Resolve(ctx, c.Args().First())
	if err != nil {
		return err
	}

	fmt.Printf("%s by %s (%s)\n", md.Title, md.Author, utils.FormatSecondsToMMSS(md.Duration))

	video, err := svc.Download(ctx, md, func(p media.Progress) {
		if p.TotalBytes > 0 {
			fmt.Printf("\r%3.0f%% of %s", p.Percentage, utils.FormatFileSize(p.TotalBytes))
		} else {
			fmt.Printf("\r%s", utils.FormatFileSize(p.DownloadedBytes))
		}
	})
	fmt.Println()

	if err != nil {
		return err
	}

	fmt.Printf("saved to %s (%s)\n", video.LocalURI, utils.FormatFileSize(video.FileSize))

	return nil
}

func listAction(ctx context.Context, c *cli.Command) error {
	svc, _, err := buildService(ctx)
	if err != nil {
		return err
	}

	videos, err := svc.List(ctx)
	if err != nil {
		return err
	}

	if len(videos) == 0 {
		fmt.Println("nothing saved yet")

		return nil
	}

	for _, v := range videos {
		fmt.Printf("%s\n  %s (%s, %s)\n", v.ID, v.Title, v.Platform, utils.FormatFileSize(v.FileSize))
	}

	return nil
}

func removeAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return errors.New("usage: vidsaver remove <id>")
	}

	svc, _, err := buildService(ctx)
	if err != nil {
		return err
	}

	if err := svc.Remove(ctx, c.Args().First()); err != nil {
		return err
	}

	fmt.Println("removed")

	return nil
}

func serveAction(ctx context.Context, c *cli.Command) error {
	svc, _, err := buildService(ctx)
	if err != nil {
		return err
	}

	//------ Share intake server ------//
	addr := cfg.Application.ShareAddr
	if addr == "" {
		addr = ":8787"
	}

	shareServer := share.NewServer(svc)

	go func() {
		utils.Log.Fatal(shareServer.ListenAndServe(addr))
	}()
	//---------------//

	//------ Telegram bot ------//
	if cfg.Application.TGBotToken != "" {
		utils.Log.Info("connecting the telegram bot")

		bot, err := telego.NewBot(cfg.Application.TGBotToken, telego.WithDefaultLogger(cfg.Application.LogLevel == "debug", true))
		if err != nil {
			return err
		}

		updates, err := bot.UpdatesViaLongPolling(ctx, nil)
		if err != nil {
			return err
		}

		bh, err := th.NewBotHandler(bot, updates)
		if err != nil {
			return err
		}

		handler := tgintake.NewHandler(svc)
		handler.SetupRoutes(bh)

		user, err := bot.GetMe(ctx)
		if err != nil {
			return err
		}

		go func() {
			utils.Log.Infof("telegram bot id=%d username=@%s", user.ID, user.Username)
			utils.Log.Fatal(bh.Start())
		}()
	}
	//---------------//

	//------ Wait for shutdown ------//
	utils.Log.Info("everything is up")

	cSignal := make(chan os.Signal, 2)
	signal.Notify(cSignal, os.Interrupt, syscall.SIGTERM)
	<-cSignal

	return shareServer.Shutdown()
}
