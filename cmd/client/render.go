package main

import (
	"chatterbox/client"
	"chatterbox/domain"
	"chatterbox/session"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type printer struct {
	out     io.Writer
	colours bool
}

func newPrinter(colours bool) printer {
	return printer{out: os.Stdout, colours: colours}
}

func (p printer) style(s color.Style, text string) string {
	if !p.colours {
		return text
	}
	return s.Render(text)
}

func (p printer) info(format string, args ...any) {
	fmt.Fprintln(p.out, p.style(color.New(color.FgGray), fmt.Sprintf(format, args...)))
}

func (p printer) warn(format string, args ...any) {
	fmt.Fprintln(p.out, p.style(color.New(color.FgYellow), fmt.Sprintf(format, args...)))
}

func (p printer) session(title string, s client.Session) {
	fmt.Fprintf(p.out, "%s %s (%s)\n", p.style(color.New(color.FgGreen, color.OpBold), title), s.User.Username, s.User.ID)
	fmt.Fprintf(p.out, "token: %s\n", s.Token)
}

func (p printer) message(self domain.Identity, m domain.Message) {
	at := m.CreatedAt.Local().Format("15:04:05")
	author := m.Sender.Username
	if author == "" {
		author = m.Sender.ID.String()
	}
	name := p.style(color.New(color.FgCyan, color.OpBold), author)
	if m.Sender.ID == self {
		name = p.style(color.New(color.FgGreen, color.OpBold), "me")
	}
	marker := ""
	if m.Provisional {
		marker = p.style(color.New(color.FgGray), " *")
	}
	fmt.Fprintf(p.out, "[%s] %s: %s%s\n", at, name, m.Content, marker)
}

// who renders the contact list with the online ones first.
func (p printer) who(w io.Writer, users []domain.Participant, online []domain.Identity) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Username", "ID", "Status"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")

	isOnline, isOffline := lo.FilterReject(users, func(u domain.Participant, _ int) bool {
		return lo.Contains(online, u.ID)
	})
	for _, u := range isOnline {
		table.Append([]string{u.Username, u.ID.String(), p.style(color.New(color.FgGreen), string(domain.StatusOnline))})
	}
	for _, u := range isOffline {
		table.Append([]string{u.Username, u.ID.String(), p.style(color.New(color.FgGray), string(domain.StatusOffline))})
	}
	table.Render()
}

// chatView prints the incremental difference between two session views.
// OnChange callbacks may come from several goroutines.
type chatView struct {
	mu         sync.Mutex
	p          printer
	self       domain.Identity
	generation uint64
	printed    int
	phase      session.Phase
	typing     bool
	peerOnline *bool
	lastError  string
}

func newChatView(p printer, self domain.Identity) *chatView {
	return &chatView{p: p, self: self}
}

func (c *chatView) render(v session.View) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v.Generation != c.generation {
		c.generation = v.Generation
		c.printed = 0
		c.typing = false
		c.peerOnline = nil
		c.lastError = ""
		if v.Peer.ID != "" {
			c.p.info("── conversation with %s ──", v.Peer.Username)
		}
	}
	if v.Phase != c.phase {
		c.phase = v.Phase
		if v.Phase == session.PhaseLoading {
			c.p.info("loading history...")
		}
	}
	if c.peerOnline == nil || *c.peerOnline != v.PeerOnline {
		online := v.PeerOnline
		c.peerOnline = &online
		if v.Peer.ID != "" {
			c.p.info("%s is %s", v.Peer.Username, lo.Ternary(online, domain.StatusOnline, domain.StatusOffline))
		}
	}
	if v.LastError != "" && v.LastError != c.lastError {
		c.p.warn("%s", v.LastError)
	}
	c.lastError = v.LastError

	if v.Phase == session.PhaseReady && len(v.Messages) > c.printed {
		for _, m := range v.Messages[c.printed:] {
			c.p.message(c.self, m)
		}
		c.printed = len(v.Messages)
	}
	if v.PeerTyping != c.typing {
		c.typing = v.PeerTyping
		if v.PeerTyping {
			c.p.info("%s is typing...", v.Peer.Username)
		}
	}
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
