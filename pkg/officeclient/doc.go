// Package officeclient provides the primary entry point for constructing a
// back-office API client that implements the backoffice.Client interface.
//
// It layers endpoint normalisation, the HTTP transport, the in-flight
// request registry and the notification channel on top of the entity
// interfaces and types defined in the backoffice package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/ashishkumar1990/laywer-client/pkg/backoffice"
//	  "github.com/ashishkumar1990/laywer-client/pkg/officeclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // "/api" is appended to the endpoint.
//	  cli, err := officeclient.New(ctx, &backoffice.Config{APIEndpoint: "https://office.example.com"})
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  // The session cookie set by login is sent with every later call.
//	  _, err = cli.Auth().Login(ctx, &backoffice.LoginRequest{Email: "ann@office.example", Password: "..."})
//	  if err != nil { log.Fatal(err) }
//
//	  counts, err := cli.Dashboard(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = counts
//	}
//
// # Busy state and notifications
//
// Loader() reports whether any request is in flight and lets callers
// subscribe to busy transitions. Notifications() returns the single-slot
// channel failures are shown on, unless Config.Notifier was supplied.
//
// # Environment
//
// NewFromEnv reads the OFFICE_* variables and, when OFFICE_NATS_URL is set,
// also publishes every notification to NATS.
package officeclient
