// engage-demo exercises the Engage XML API client against a live account.
//
// Usage:
//
//	engage-demo -endpoint https://api1.silverpop.com/XMLAPI -user name -list 85628 [-email a@b.c]
//
// The password is read from $ENGAGE_PASSWORD or prompted for. Settings can
// also come from a YAML file via -config; flags win over file values.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"golang.org/x/term"

	"github.com/engagekit/go-engage/client"
	englog "github.com/engagekit/go-engage/internal/log"
	"github.com/engagekit/go-engage/xmlapi"
	"github.com/engagekit/go-engage/xmlapi/transport"
)

// fileConfig mirrors the -config YAML file. Values are expanded against
// the environment, so entries like password: $ENGAGE_PASSWORD work.
type fileConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	SessionID string `yaml:"sessionid"`
	ListID    int    `yaml:"list_id"`
}

func loadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func main() {
	endpoint := flag.String("endpoint", "", "Engage XML API endpoint URL")
	user := flag.String("user", "", "Username for authentication")
	sessionID := flag.String("sessionid", "", "Reuse an existing session token instead of logging in")
	configPath := flag.String("config", "", "YAML config file (flags win over file values)")
	listID := flag.Int("list", 0, "Database or list id to query")
	email := flag.String("email", "", "Recipient email to look up (requires -list)")
	timeout := flag.Duration("timeout", 60*time.Second, "HTTP request timeout")
	insecure := flag.Bool("insecure", false, "Skip TLS certificate verification")
	logLevel := flag.String("loglevel", "", "Log level: debug, info, warn, error (empty = no logging)")
	jsonLog := flag.Bool("jsonlog", false, "Emit logs as JSON instead of text")
	logFile := flag.String("logfile", "", "Write logs to a rotating file instead of stderr")
	flag.Parse()

	// Merge the config file underneath the flags.
	if *configPath != "" {
		fc, err := loadConfigFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if *endpoint == "" {
			*endpoint = fc.Endpoint
		}
		if *user == "" {
			*user = fc.Username
		}
		if *sessionID == "" {
			*sessionID = fc.SessionID
		}
		if *listID == 0 {
			*listID = fc.ListID
		}
		if fc.Password != "" {
			os.Setenv("ENGAGE_PASSWORD", fc.Password)
		}
	}

	if *endpoint == "" || (*user == "" && *sessionID == "") {
		fmt.Fprintln(os.Stderr, "Usage: engage-demo -endpoint url -user name [-list id] [-email addr]")
		fmt.Fprintln(os.Stderr, "   OR: engage-demo -endpoint url -sessionid token [-list id] [-email addr]")
		os.Exit(1)
	}

	// Read password unless a session token is being reused.
	password := os.Getenv("ENGAGE_PASSWORD")
	if password == "" && *sessionID == "" {
		fmt.Print("Password: ")
		passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
			os.Exit(1)
		}
		password = string(passwordBytes)
	}

	// Configure structured logging if requested. The redacting handler
	// keeps tokens and credentials out of the output.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if *logLevel != "" {
		var level slog.Level
		switch strings.ToLower(*logLevel) {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			fmt.Fprintf(os.Stderr, "Invalid log level '%s'. Valid values: debug, info, warn, error\n", *logLevel)
			os.Exit(1)
		}

		var out io.Writer = os.Stderr
		if *logFile != "" {
			rf, err := englog.NewRotatingFile(*logFile, 10<<20, 3)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
				os.Exit(1)
			}
			defer rf.Close()
			out = rf
		}

		opts := &slog.HandlerOptions{Level: level}
		var handler slog.Handler
		if *jsonLog {
			handler = slog.NewJSONHandler(out, opts)
		} else {
			handler = slog.NewTextHandler(out, opts)
		}
		logger = slog.New(englog.NewRedactingHandler(handler))
	}

	ctx := context.Background()

	fmt.Printf("Connecting to %s...\n", *endpoint)
	c, err := client.Connect(ctx, xmlapi.Config{
		Endpoint:  *endpoint,
		Username:  *user,
		Password:  password,
		SessionID: *sessionID,
		Transport: transport.NewHTTPTransport(
			transport.WithTimeout(*timeout),
			transport.WithInsecureSkipVerify(*insecure),
		),
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := c.Logout(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logout failed: %v\n", err)
		}
	}()
	fmt.Println("Connected!")

	// Look up one recipient when asked to.
	if *email != "" {
		if *listID == 0 {
			fmt.Fprintln(os.Stderr, "Error: -email requires -list")
			os.Exit(1)
		}

		fmt.Printf("\n=== Recipient %s in list %d ===\n", *email, *listID)
		result, err := c.SelectRecipientData(ctx, *listID, *email)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error selecting recipient: %v\n", err)
			os.Exit(1)
		}
		for _, p := range result.Get("COLUMNS").Pairs() {
			fmt.Printf("  %s = %s\n", p.Key, p.Val.Text())
		}
	}

	// Always show what is on the calendar.
	fmt.Println("\n=== Scheduled mailings ===")
	mailings, err := c.GetScheduledMailingsForOrg(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing scheduled mailings: %v\n", err)
		os.Exit(1)
	}
	if len(mailings) == 0 {
		fmt.Println("  (none)")
	}
	for _, m := range mailings {
		fmt.Printf("  [%s] %s scheduled %s\n",
			m.Get("MailingId").Text(),
			m.Get("MailingName").Text(),
			m.Get("ScheduledTS").Text())
	}
}
