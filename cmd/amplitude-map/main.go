package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	amplitude "github.com/Tap30/amplitude-go"
	"github.com/Tap30/amplitude-go/adapters"
	"github.com/google/uuid"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "amplitude-map: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("amplitude-map", flag.ContinueOnError)
	eventPath := fs.String("event", "-", "normalized page event as JSON, - for stdin")
	credentialsPath := fs.String("credentials", "", "YAML file with the destination credentials")
	apiKey := fs.String("api-key", "", "API key used when no credentials file is given")
	sample := fs.Bool("sample", false, "map a generated sample event instead of reading one")
	send := fs.Bool("send", false, "deliver the request after printing it")
	timeout := fs.Duration("timeout", 10*time.Second, "delivery timeout")
	logLevel := fs.String("log-level", "warn", "debug, info, warn, error or none")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := adapters.NewTextSlogLoggerAdapter(adapters.ParseLogLevel(*logLevel), os.Stderr)

	credentials := map[string]string{}
	if *credentialsPath != "" {
		loaded, err := amplitude.LoadCredentials(*credentialsPath)
		if err != nil {
			return fmt.Errorf("load credentials: %w", err)
		}
		credentials = loaded
	} else if *apiKey != "" {
		credentials[amplitude.CredentialAPIKey] = *apiKey
	}

	var event *amplitude.Event
	if *sample {
		event = sampleEvent()
	} else {
		read, err := readEvent(*eventPath, stdin)
		if err != nil {
			return err
		}
		event = read
	}

	processor := amplitude.NewEventProcessor(amplitude.WithLogger(logger))
	req, err := processor.Page(event, credentials)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(req); err != nil {
		return err
	}

	if !*send {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	resp, err := adapters.NewNetHTTPAdapter().Send(ctx, req)
	if err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("delivery rejected with status %d", resp.Status)
	}
	logger.Info("Delivered %d events to %s", len(req.Data.Events), req.URL)
	return nil
}

func readEvent(path string, stdin io.Reader) (*amplitude.Event, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var event amplitude.Event
	if err := json.NewDecoder(r).Decode(&event); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no event given")
		}
		return nil, fmt.Errorf("invalid event: %w", err)
	}
	return &event, nil
}

// sampleEvent is the first page view of a returning visitor.
func sampleEvent() *amplitude.Event {
	now := time.Now()
	return &amplitude.Event{
		UUID:         uuid.NewString(),
		SessionStart: true,
		Session: amplitude.Session{
			SessionID:         fmt.Sprint(now.Unix()),
			PreviousSessionID: fmt.Sprint(now.Add(-24 * time.Hour).Unix()),
			SessionStart:      true,
		},
		Identify: amplitude.Identify{
			AnonymousID: uuid.NewString(),
			EdgeeID:     uuid.NewString(),
		},
		Client: amplitude.Client{
			UserAgent:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_3) AppleWebKit/605.1.15",
			Locale:         "en-US",
			IP:             "203.0.113.7",
			OSName:         "Mac OS X",
			OSVersion:      "14.3",
			UserAgentModel: "Macintosh",
		},
		Page: &amplitude.Page{Referrer: "https://www.example.com/blog"},
	}
}
