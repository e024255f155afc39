package main

import (
	"bufio"
	"chatterbox/client"
	"chatterbox/domain"
	"chatterbox/domain/event"
	"chatterbox/session"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const chatHelp = "commands: /who, /search <query>, /switch <username>, /quit"

// runChat drives a conversation controller from line-based input.
// Every line typed counts as a keystroke before it is sent.
func runChat(ctx context.Context, cfg Config, log *slog.Logger, api *client.APIClient,
	me client.Session, peerName string, in io.Reader, out io.Writer) error {
	peer, err := resolvePeer(ctx, api, peerName)
	if err != nil {
		return err
	}

	p := printer{out: out, colours: cfg.Colours}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var controller *session.Controller
	push := client.NewPushClient(log, cfg.PushURL(), me.User.ID, func(env event.Envelope) {
		controller.HandleEvent(env)
	})
	controller = session.NewController(log, me.User, api, push, nil, session.DefaultIdleWindow)
	defer controller.Close()

	view := newChatView(p, me.User.ID)
	controller.OnChange(view.render)
	push.OnConnected(func(up bool) {
		if up {
			p.info("connected")
		} else if ctx.Err() == nil {
			p.warn("disconnected, reconnecting...")
		}
	})

	pushDone := make(chan error, 1)
	go func() { pushDone <- push.Run(ctx) }()

	controller.SelectPeer(ctx, peer)
	p.info(chatHelp)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return <-pushDone
		case err := <-pushDone:
			return err
		case line, ok := <-lines:
			if !ok {
				cancel()
				return <-pushDone
			}
			if quit := handleLine(ctx, p, api, controller, me.User.ID, strings.TrimSpace(line)); quit {
				cancel()
				return <-pushDone
			}
		}
	}
}

func handleLine(ctx context.Context, p printer, api *client.APIClient, controller *session.Controller,
	self domain.Identity, line string) bool {
	switch {
	case line == "":
		return false
	case line == "/quit":
		return true
	case line == "/who":
		online := controller.View().Online
		names := make([]string, 0, len(online))
		for _, id := range online {
			names = append(names, id.String())
		}
		p.info("online: %s", strings.Join(names, ", "))
	case strings.HasPrefix(line, "/search "):
		v := controller.View()
		if v.Peer.ID == "" {
			p.warn("no conversation selected")
			return false
		}
		messages, err := api.Search(ctx, v.Peer.ID, strings.TrimPrefix(line, "/search "))
		if err != nil {
			p.warn("search failed: %v", err)
			return false
		}
		p.info("%d match(es)", len(messages))
		for _, m := range messages {
			p.message(self, m)
		}
	case strings.HasPrefix(line, "/switch "):
		peer, err := resolvePeer(ctx, api, strings.TrimSpace(strings.TrimPrefix(line, "/switch ")))
		if err != nil {
			p.warn("%v", err)
			return false
		}
		controller.SelectPeer(ctx, peer)
	case strings.HasPrefix(line, "/"):
		p.info(chatHelp)
	default:
		err := controller.Keystroke()
		if err == nil {
			_, err = controller.Send(ctx, line)
		}
		if err != nil {
			switch {
			case errors.Is(err, session.ErrPeerOffline):
				p.warn("%s is offline, message not sent", controller.View().Peer.Username)
			case errors.Is(err, session.ErrNoPeerSelected):
				p.warn("no conversation selected")
			default:
				p.warn("%v", fmt.Errorf("send: %w", err))
			}
		}
	}
	return false
}
