// Package backoffice provides types, interfaces, and helpers for working with
// the law-office back-office REST API.
//
// # Overview
//
// The backoffice package defines the entity types (User, Company, CaseType,
// WorkTracker), the resource client interfaces (UsersClient,
// CompaniesClient, ...), the Outcome of a classified call, and the
// interceptor chain every request passes through. A concrete
// implementation is provided by the officeclient package, which wires the
// transport, the in-flight registry, and the notification channel.
//
// Getting a client
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
//	  cli, err := officeclient.New(ctx, &backoffice.Config{APIEndpoint: "https://office.example.com"})
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  users, err := cli.Users().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = users
//	}
//
// # Failures and notifications
//
// Non-2xx responses are classified into a *FailureError carrying the status
// code and a displayable message. The same message is pushed as an error
// Notification to the configured Notifier, so callers may simply return the
// error without translating status codes themselves.
package backoffice
