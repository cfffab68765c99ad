// Command debatesync watches a debate round from the terminal: it logs in (or
// resumes a stored session), polls the round's waiting room, mirrors the
// notification feed, and exits once the round goes active.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/rdjleague/debatesync/clients"
	"github.com/rdjleague/debatesync/clients/league_api_client"
	"github.com/rdjleague/debatesync/internal/allocation"
	"github.com/rdjleague/debatesync/internal/models"
	"github.com/rdjleague/debatesync/internal/notify"
	"github.com/rdjleague/debatesync/internal/roundsync"
	"github.com/rdjleague/debatesync/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	var (
		configPath = flag.String("config", "", "path to YAML config file")
		roundID    = flag.Int("round", 0, "round ID to watch")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *roundID <= 0 {
		log.Fatal().Msg("a positive -round ID is required")
	}

	store, err := session.Open(cfg.SessionDB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open session store")
	}
	defer store.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := authenticate(ctx, cfg, store)
	if err != nil {
		log.Fatal().Err(err).Msg("authentication failed")
	}

	if err := watch(ctx, cfg, client, *roundID); err != nil {
		log.Fatal().Err(err).Msg("watch ended with error")
	}
}

// authenticate resumes the stored session or logs in with LEAGUE_USERNAME /
// LEAGUE_PASSWORD, then refreshes the cached admin flag from the server.
func authenticate(ctx context.Context, cfg *Config, store *session.Store) (*league_api_client.LeagueAPIClient, error) {
	gate := session.NewGate(store)

	if gate.Check(false) == session.RedirectLogin {
		username := os.Getenv("LEAGUE_USERNAME")
		password := os.Getenv("LEAGUE_PASSWORD")
		if username == "" || password == "" {
			return nil, fmt.Errorf("no stored session; set LEAGUE_USERNAME and LEAGUE_PASSWORD")
		}

		client := league_api_client.NewLeagueAPIClient(cfg.BaseURL)
		resp, err := client.Login(ctx, username, password)
		if err != nil {
			return nil, err
		}
		if err := store.SaveSession(session.Session{
			Token:    resp.Token,
			IsAdmin:  resp.IsAdmin,
			Username: resp.Username,
		}); err != nil {
			return nil, err
		}
		log.Info().Str("username", resp.Username).Msg("logged in")
		return client, nil
	}

	sess := store.Session()
	client := league_api_client.NewAuthenticatedClient(cfg.BaseURL, sess.Token)

	me, err := client.Me(ctx)
	if err != nil {
		// A rejected token means the stored session is dead; clear it so the
		// next run falls through to login.
		if clients.IsUnauthorized(err) {
			_ = store.Clear()
			return nil, fmt.Errorf("stored session expired, run again to log in: %w", err)
		}
		log.Warn().Err(err).Msg("could not verify admin status, using cached flag")
		return client, nil
	}

	sess.IsAdmin = me.IsAdmin()
	sess.Username = me.Username
	if err := store.SaveSession(sess); err != nil {
		return nil, err
	}
	log.Info().Str("username", sess.Username).Bool("is_admin", sess.IsAdmin).Msg("session resumed")
	return client, nil
}

// watch runs the round poller and notification synchronizer until the round
// goes active, polling stalls, or the user interrupts.
func watch(ctx context.Context, cfg *Config, client *league_api_client.LeagueAPIClient, roundID int) error {
	round, err := client.GetRound(ctx, roundID)
	if err != nil {
		return fmt.Errorf("failed to fetch round %d: %w", roundID, err)
	}
	fmt.Printf("Watching round %d (%s, %s)\n", round.ID, round.Format, round.Status)

	notifier := notify.NewSynchronizer(client, notify.Config{
		CountInterval:   cfg.NotificationCountInterval(),
		RefreshInterval: cfg.NotificationRefreshInterval(),
	})
	notifier.OnError = func(err error) {
		fmt.Printf("! %v\n", err)
	}
	if err := notifier.Start(ctx); err != nil {
		return err
	}
	defer notifier.Stop()

	printNotifications(notifier.Notifications())

	done := make(chan error, 1)
	poller := roundsync.NewPoller(client, roundID, roundsync.Config{
		PollInterval:           cfg.RoundPollInterval(),
		MaxBackoff:             cfg.RoundMaxBackoff(),
		MaxConsecutiveFailures: cfg.Round.MaxConsecutiveFailures,
	})
	poller.OnActive = func() {
		done <- nil
	}
	poller.OnStall = func(err error) {
		done <- err
	}
	if err := poller.Start(ctx); err != nil {
		return err
	}
	defer poller.Stop()

	ticker := time.NewTicker(cfg.RoundPollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-done:
			if err != nil {
				return err
			}
			fmt.Println("Round is active!")
			return nil
		case <-ticker.C:
			printSnapshot(poller.Snapshot(), round.Format, round.MaxAdjudicators)
		}
	}
}

func printNotifications(notifications []models.Notification) {
	for _, n := range notifications {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Printf("%s [%s] %s (%s)\n", marker, n.Type, n.Message, humanize.Time(n.CreatedAt))
	}
}

func printSnapshot(snap roundsync.Snapshot, format models.RoundFormat, maxAdjudicators int) {
	fmt.Printf("-- %d participants, status %s\n", len(snap.Participants), snap.Status)
	for _, p := range snap.Participants {
		ready := ""
		if p.IsReady {
			ready = " (ready)"
		}
		role := p.Role
		if role == "" {
			role = "unassigned"
		}
		fmt.Printf("   %-20s %s%s\n", p.Username, role, ready)
	}

	allocs := make([]models.Allocation, 0, len(snap.Participants))
	for _, p := range snap.Participants {
		if p.Role != "" && p.Role != models.RoleSpectator {
			allocs = append(allocs, models.Allocation{UserID: p.ID, Role: p.Role})
		}
	}
	avail := allocation.AvailableRoles(format, allocs, maxAdjudicators)
	fmt.Printf("   open debater roles: %d, open adjudicator roles: %d, can start: %v\n",
		len(avail.DebaterRoles), len(avail.AdjudicatorRoles), allocation.CanStart(format, allocs))
}
