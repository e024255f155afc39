package main

import (
	"chatterbox/client"
	"chatterbox/domain"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg Config

	root := &cobra.Command{
		Use:           "chatterbox",
		Short:         "Terminal client of a chatterbox server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			// Flags win over the environment
			if !cmd.Flags().Changed("server") {
				cfg.ServerURL = loaded.ServerURL
			}
			if !cmd.Flags().Changed("username") {
				cfg.Username = loaded.Username
			}
			if !cmd.Flags().Changed("password") {
				cfg.Password = loaded.Password
			}
			cfg.Timeout = loaded.Timeout
			cfg.LogLevel = loaded.LogLevel
			cfg.Colours = loaded.Colours
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&cfg.ServerURL, "server", "s", "", "server base URL")
	root.PersistentFlags().StringVarP(&cfg.Username, "username", "u", "", "account username")
	root.PersistentFlags().StringVarP(&cfg.Password, "password", "p", "", "account password")

	root.AddCommand(
		&cobra.Command{
			Use:   "register",
			Short: "Create an account and print its identity",
			RunE: func(cmd *cobra.Command, _ []string) error {
				api := client.NewAPIClient(cfg.ServerURL, cfg.Timeout)
				session, err := api.Register(cmd.Context(), cfg.Username, cfg.Password)
				if err != nil {
					return err
				}
				newPrinter(cfg.Colours).session("Registered", session)
				return nil
			},
		},
		&cobra.Command{
			Use:   "login",
			Short: "Check credentials and print the bearer token",
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, session, err := login(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				newPrinter(cfg.Colours).session("Logged in", session)
				return nil
			},
		},
		&cobra.Command{
			Use:   "who",
			Short: "List contacts and who is online",
			RunE: func(cmd *cobra.Command, _ []string) error {
				api, _, err := login(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				users, err := api.Users(cmd.Context())
				if err != nil {
					return err
				}
				online, err := api.Presence(cmd.Context())
				if err != nil {
					return err
				}
				newPrinter(cfg.Colours).who(os.Stdout, users, online)
				return nil
			},
		},
		&cobra.Command{
			Use:   "search <username> <query>",
			Short: "Search the conversation with a contact",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				api, session, err := login(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				peer, err := resolvePeer(cmd.Context(), api, args[0])
				if err != nil {
					return err
				}
				messages, err := api.Search(cmd.Context(), peer.ID, joinArgs(args[1:]))
				if err != nil {
					return err
				}
				p := newPrinter(cfg.Colours)
				for _, m := range messages {
					p.message(session.User.ID, m)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "chat <username>",
			Short: "Open an interactive conversation",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				api, session, err := login(ctx, cfg)
				if err != nil {
					return err
				}
				return runChat(ctx, cfg, logs.GetLoggerFromString(cfg.LogLevel), api, session, args[0], os.Stdin, os.Stdout)
			},
		},
	)
	return root
}

func login(ctx context.Context, cfg Config) (*client.APIClient, client.Session, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, client.Session{}, fmt.Errorf("username and password are required (flags or CHATTERBOX_USERNAME/CHATTERBOX_PASSWORD)")
	}
	api := client.NewAPIClient(cfg.ServerURL, cfg.Timeout)
	session, err := api.Login(ctx, cfg.Username, cfg.Password)
	if err != nil {
		return nil, client.Session{}, fmt.Errorf("login failed: %w", err)
	}
	return api, session, nil
}

// resolvePeer finds a contact by username, or by identity as a fallback.
func resolvePeer(ctx context.Context, api *client.APIClient, name string) (domain.Participant, error) {
	users, err := api.Users(ctx)
	if err != nil {
		return domain.Participant{}, err
	}
	for _, u := range users {
		if u.Username == name || u.ID.String() == name {
			return u, nil
		}
	}
	return domain.Participant{}, fmt.Errorf("no contact named %q", name)
}
