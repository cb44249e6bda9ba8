// Command skillspot is a terminal client for the SkillSpot marketplace:
// session management, conversation list and a live chat view over the
// push channel.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"skillspot/api"
	"skillspot/channel"
	"skillspot/domain"
	"skillspot/domain/event"
	"skillspot/internal"
	"skillspot/navigation"
	"skillspot/projection"
	"skillspot/repositories"
	"skillspot/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
	exitUsage   = 3
)

const usage = `usage: skillspot <command> [flags]

commands:
  login          -email -password
  register       -email -password -first-name -last-name -type
  logout
  whoami
  conversations
  chat           -conversation <id>
  notifications
  unread
`

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "skillspot: %v\n", err)
	}
	os.Exit(code)
}

// app bundles the service objects constructed once at process start. No
// ambient globals: everything is passed by reference from here.
type app struct {
	config    internal.Config
	session   *services.SessionController
	guard     *navigation.Guard
	messaging *services.MessagingSession
	channel   *channel.Manager
	feed      *services.NotificationFeed
	unread    *projection.UnreadAggregator
}

func run() (int, error) {
	// 1. Load configuration from .env and environment variables.
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log, err := internal.NewLogger(config.LogLevel)
	if err != nil {
		return exitConfig, err
	}

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the local state store holding the persisted session.
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return exitRuntime, fmt.Errorf("open state store: %w", err)
	}
	defer db.Close()

	// 4. Wire the service objects.
	credentials := repositories.NewCredentialRepository(db)
	client := api.NewClient(config.APIBaseURL, config.HTTPTimeout, credentials, log)
	session := services.NewSessionController(api.NewAuthAPI(client), credentials, log)
	channelManager := channel.NewManager(config.WSBaseURL, credentials, channel.NewWebsocketDialer(), log)
	messaging := services.NewMessagingSession(api.NewMessagingAPI(client), channelManager, log)
	feed := services.NewNotificationFeed(api.NewNotificationAPI(client), log)

	a := &app{
		config:    config,
		session:   session,
		guard:     navigation.NewGuard(session),
		messaging: messaging,
		channel:   channelManager,
		feed:      feed,
		unread:    projection.NewUnreadAggregator(messaging, feed),
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		return exitUsage, nil
	}
	return a.dispatch(ctx, os.Args[1], os.Args[2:])
}

func (a *app) dispatch(ctx context.Context, command string, args []string) (int, error) {
	switch command {
	case "login":
		return a.cmdLogin(ctx, args)
	case "register":
		return a.cmdRegister(ctx, args)
	case "logout":
		a.session.Logout(ctx)
		color.Green.Println("Logged out.")
		return exitOK, nil
	case "whoami":
		return a.cmdWhoami(ctx)
	case "conversations":
		return a.cmdConversations(ctx)
	case "chat":
		return a.cmdChat(ctx, args)
	case "notifications":
		return a.cmdNotifications(ctx)
	case "unread":
		return a.cmdUnread(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		return exitUsage, fmt.Errorf("unknown command %q", command)
	}
}

// requireAuth consults the navigation guard the way a route transition
// would; anonymous visitors are pointed at the login command.
func (a *app) requireAuth(ctx context.Context, path string) error {
	decision := a.guard.Decide(ctx, navigation.Route{Path: path, RequiresAuth: true})
	if !decision.Allow {
		return fmt.Errorf("not signed in (run 'skillspot login', then retry %s)", path)
	}
	return nil
}

func (a *app) cmdLogin(ctx context.Context, args []string) (int, error) {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return exitUsage, err
	}

	if decision := a.guard.Decide(ctx, navigation.Route{Path: "/login", RequiresGuest: true}); !decision.Allow {
		color.Yellow.Println("Already signed in.")
		return exitOK, nil
	}
	if err := a.session.Login(ctx, *email, *password); err != nil {
		return exitRuntime, err
	}
	identity, _ := a.session.Identity()
	color.Green.Printf("Signed in as %s (%s)\n", identity.Email, identity.UserType)
	return exitOK, nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) (int, error) {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	userType := fs.String("type", string(domain.UserTypeClient), "client, provider or both")
	if err := fs.Parse(args); err != nil {
		return exitUsage, err
	}

	req := api.RegisterRequest{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
		UserType:  domain.UserType(*userType),
	}
	if err := a.session.Register(ctx, req); err != nil {
		return exitRuntime, err
	}
	identity, _ := a.session.Identity()
	color.Green.Printf("Welcome, %s %s!\n", identity.FirstName, identity.LastName)
	return exitOK, nil
}

func (a *app) cmdWhoami(ctx context.Context) (int, error) {
	if err := a.requireAuth(ctx, "/profile"); err != nil {
		return exitRuntime, err
	}
	identity, _ := a.session.Identity()
	fmt.Printf("%s %s <%s> [%s] since %s\n",
		identity.FirstName, identity.LastName, identity.Email,
		identity.UserType, identity.DateJoined.Format("2006-01-02"))
	return exitOK, nil
}

func (a *app) cmdConversations(ctx context.Context) (int, error) {
	if err := a.requireAuth(ctx, "/messages"); err != nil {
		return exitRuntime, err
	}
	if err := a.messaging.LoadConversations(ctx); err != nil {
		return exitRuntime, err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "With", "Job", "Unread", "Last Message"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, c := range a.messaging.Conversations() {
		with, preview := "-", "-"
		if c.OtherParticipant != nil {
			with = c.OtherParticipant.Name
		}
		if c.LastMessage != nil {
			preview = truncate(c.LastMessage.Content, 48)
		}
		table.Append([]string{string(c.ID), with, c.JobTitle, fmt.Sprintf("%d", c.UnreadCount), preview})
	}
	table.Render()
	return exitOK, nil
}

func (a *app) cmdChat(ctx context.Context, args []string) (int, error) {
	fs := flag.NewFlagSet("chat", flag.ContinueOnError)
	conversation := fs.String("conversation", "", "conversation id")
	if err := fs.Parse(args); err != nil {
		return exitUsage, err
	}
	if *conversation == "" {
		return exitUsage, fmt.Errorf("missing -conversation")
	}
	if err := a.requireAuth(ctx, "/messages/"+*conversation); err != nil {
		return exitRuntime, err
	}

	identity, _ := a.session.Identity()

	// Drain the channel event stream; pushed messages show up live.
	go func() {
		for e := range a.channel.Events() {
			a.messaging.Consume(e)
			switch evt := e.(type) {
			case event.MessageReceived:
				printMessage(evt.Message, identity.ID)
			case event.ChannelErrored:
				color.Red.Println("-- channel lost, messages fall back to direct send --")
			}
		}
	}()

	if err := a.messaging.OpenConversation(ctx, domain.ConversationID(*conversation), true); err != nil {
		return exitRuntime, err
	}
	for _, m := range a.messaging.Messages() {
		printMessage(m, identity.ID)
	}
	color.Gray.Println("-- type a message, /quit to leave --")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" {
			break
		}
		if a.channel.State() == domain.ChannelOpen {
			if err := a.messaging.SendViaChannel(line); err == nil {
				continue
			}
		}
		// No live channel: persist over the request path, echo immediately.
		if message, err := a.messaging.SendViaRequest(ctx, line); err != nil {
			color.Red.Printf("send failed: %v\n", err)
		} else {
			printMessage(message, identity.ID)
		}
	}
	a.channel.Deactivate()
	return exitOK, nil
}

func (a *app) cmdNotifications(ctx context.Context) (int, error) {
	if err := a.requireAuth(ctx, "/notifications"); err != nil {
		return exitRuntime, err
	}
	if err := a.feed.Load(ctx, 1, a.config.PageSize); err != nil {
		return exitRuntime, err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"", "When", "Title", "Message"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, n := range a.feed.Items() {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		table.Append([]string{marker, n.CreatedAt.Format(time.DateTime), n.Title, truncate(n.Message, 60)})
	}
	table.Render()
	return exitOK, nil
}

func (a *app) cmdUnread(ctx context.Context) (int, error) {
	if err := a.requireAuth(ctx, "/dashboard"); err != nil {
		return exitRuntime, err
	}
	if err := a.messaging.LoadConversations(ctx); err != nil {
		return exitRuntime, err
	}
	if err := a.feed.Load(ctx, 1, a.config.PageSize); err != nil {
		return exitRuntime, err
	}
	fmt.Printf("%d unread\n", a.unread.Total())
	return exitOK, nil
}

func printMessage(m domain.Message, selfID string) {
	stamp := m.CreatedAt.Format(time.TimeOnly)
	if m.SenderID == selfID {
		color.Cyan.Printf("[%s] you: %s\n", stamp, m.Content)
		return
	}
	color.White.Printf("[%s] %s: %s\n", stamp, senderLabel(m), m.Content)
}

func senderLabel(m domain.Message) string {
	if m.SenderEmail != "" {
		return m.SenderEmail
	}
	return m.SenderID
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
