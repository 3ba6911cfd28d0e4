package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ctmBot/internal/app"
	"ctmBot/internal/domain"
	"ctmBot/internal/infrastructure/cache"
	"ctmBot/internal/infrastructure/config"
	"ctmBot/internal/infrastructure/persistence/sqlite"
	twitchinfra "ctmBot/internal/infrastructure/platform/twitch"
	"ctmBot/internal/infrastructure/words"
	discordadapter "ctmBot/internal/interface/adapters/discord"
	twitchadapter "ctmBot/internal/interface/adapters/twitch"
	"ctmBot/internal/interface/outs"
	"ctmBot/internal/logging"
	"ctmBot/internal/usecase/channels"
	"ctmBot/internal/usecase/commands"
	"ctmBot/internal/usecase/handle_message"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:           "bot",
		Short:         "Twitch and Discord command bot",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), envFiles)
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load (default .env)")

	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Connect to the chat networks and serve commands",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), envFiles)
		},
	})
	root.AddCommand(newCommandsCommand(&envFiles))

	return root
}

func newCommandsCommand(envFiles *[]string) *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List the registered chat commands",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*envFiles...)
			if err != nil {
				return err
			}
			reg, err := commands.NewBuiltinRegistry(commands.Deps{})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tALIASES\tSCOPE\tUSAGE\tDESCRIPTION")

			if platform != "" {
				p, ok := domain.ParsePlatform(platform)
				if !ok {
					return fmt.Errorf("unknown platform %q", platform)
				}
				for _, def := range reg.Definitions(p) {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", def.Name, strings.Join(def.Aliases, ","),
						def.Scope, cfg.CommandPrefix+def.Usage, def.Description)
				}
				return w.Flush()
			}

			for _, d := range commands.Catalog(reg, cfg.CommandPrefix) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.Name, strings.Join(d.Aliases, ","),
					d.Scope, d.Usage, d.Description)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&platform, "platform", "", "only list commands for twitch or discord")
	return cmd
}

func run(parent context.Context, envFiles []string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---------- 1) Config and logging ----------

	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if !cfg.TwitchEnabled() && !cfg.DiscordEnabled() {
		return fmt.Errorf("no chat network configured: set TWITCH_BOT_* or DISCORD_TOKEN")
	}

	// ---------- 2) Storage and cache ----------

	store, err := sqlite.NewStore(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	kv := cache.NewMemory(cache.DefaultCleanupInterval)

	// ---------- 3) Adapters ----------

	var (
		twitchAd  *twitchadapter.Adapter
		discordAd *discordadapter.Adapter
	)
	if cfg.TwitchEnabled() {
		twitchAd = twitchadapter.NewAdapter(twitchadapter.Config{
			Username:       cfg.TwitchUsername,
			OAuthToken:     cfg.TwitchToken,
			Channels:       cfg.TwitchChannels,
			MessagesPer30s: cfg.TwitchMessagesPer30s,
		}, log.Named("twitch"))
	} else {
		log.Warn("twitch disabled: TWITCH_BOT_USERNAME, TWITCH_BOT_ACCESS_TOKEN or TWITCH_BOT_CHANNELS missing")
	}
	if cfg.DiscordEnabled() {
		discordAd = discordadapter.NewAdapter(discordadapter.Config{
			Token:           cfg.DiscordToken,
			ModeratorRoleID: cfg.DiscordModeratorRoleID,
		}, log.Named("discord"))
	} else {
		log.Warn("discord disabled: DISCORD_TOKEN missing")
	}

	// ---------- 4) Command registry ----------

	deps := commands.Deps{
		Cache:           kv,
		StrictCooldowns: cfg.CooldownStrict,
		Edges:           store,
		TwitchChannels:  store,
		Words:           words.NewSource(nil).Word,
		HomeGuildID:     cfg.DiscordGuildID,
		Log:             log.Named("commands"),
	}
	if discordAd != nil {
		deps.Guilds = discordAd
	}

	registry, err := commands.NewBuiltinRegistry(deps)
	if err != nil {
		return fmt.Errorf("building command registry: %w", err)
	}

	// ---------- 5) Dispatch ----------

	multiOut := outs.NewMultiSender()
	resolver := commands.NewResolver(cfg.CommandPrefix)
	dispatcher := commands.NewDispatcher(resolver, registry, multiOut, log.Named("dispatcher"))
	uc := handle_message.NewInteractor(dispatcher, log.Named("events"))

	manager := app.NewPlatformManager(app.ManagerConfig{
		Context:  ctx,
		MultiOut: multiOut,
		Log:      log.Named("platforms"),
	})

	// ---------- 6) Start networks ----------

	log.Info("starting bot", zap.String("prefix", cfg.CommandPrefix))

	if twitchAd != nil {
		twitchAd.SetHandler(uc.Handle)
		if err := manager.Enable(domain.PlatformTwitch, twitchAd); err != nil {
			return err
		}

		var directory domain.TwitchChannelDirectory
		if cfg.HelixEnabled() {
			dir, err := twitchinfra.NewHelixChannelDirectory(cfg.TwitchClientId, cfg.TwitchApiToken)
			if err != nil {
				log.Warn("helix directory unavailable", zap.Error(err))
			} else {
				directory = dir
			}
		}
		syncer := channels.NewSyncer(store, directory, log.Named("channels"))
		if err := syncer.MarkJoined(ctx, twitchAd.Channels()); err != nil {
			log.Warn("recording joined twitch channels failed", zap.Error(err))
		}
		defer func() {
			if err := syncer.MarkLeft(context.Background()); err != nil {
				log.Warn("recording left twitch channels failed", zap.Error(err))
			}
		}()
	}
	if discordAd != nil {
		discordAd.SetHandler(uc.Handle)
		if err := manager.Enable(domain.PlatformDiscord, discordAd); err != nil {
			return err
		}
	}

	<-ctx.Done()

	manager.Shutdown()
	uc.Wait()

	log.Info("bot stopped")
	return nil
}
