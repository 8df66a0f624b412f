package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-user-mgmt/internal/adapter"
	"github.com/MKhiriev/go-user-mgmt/internal/logger"
	"github.com/MKhiriev/go-user-mgmt/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// Command-line client for the user-management server. Exchanges the given
// credentials for a bearer token, then performs one operation:
//
//	usermgmt-client -op list
//	usermgmt-client -op create -name Ann -email ann@x.com
//	usermgmt-client -op update -id 1 -name Anna -email anna@x.com
//	usermgmt-client -op get -id 1
//	usermgmt-client -op delete -id 1
func main() {
	printBuildInfo()

	serverURL := flag.String("s", "http://localhost:8080", "server base URL")
	username := flag.String("username", "", "username to authenticate with")
	secret := flag.String("secret", "", "secret to authenticate with")
	operation := flag.String("op", "list", "operation: list, get, create, update, delete")
	id := flag.Int("id", 0, "user id for get, update, delete")
	name := flag.String("name", "", "user name for create and update")
	email := flag.String("email", "", "user email for create and update")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	flag.Parse()

	log := logger.NewLogger("user-mgmt-client")

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: *serverURL,
		Timeout: *timeout,
	})

	if _, err := serverAdapter.IssueToken(ctx, models.AuthRequest{Username: *username, Secret: *secret}); err != nil {
		log.Fatal().Err(err).Msg("authentication failed")
	}

	var (
		result any
		err    error
	)

	switch *operation {
	case "list":
		result, err = serverAdapter.ListUsers(ctx)
	case "get":
		result, err = serverAdapter.GetUser(ctx, *id)
	case "create":
		result, err = serverAdapter.CreateUser(ctx, models.CreateUserRequest{Name: *name, Email: *email})
	case "update":
		result, err = serverAdapter.UpdateUser(ctx, *id, models.UpdateUserRequest{Name: *name, Email: *email})
	case "delete":
		err = serverAdapter.DeleteUser(ctx, *id)
	default:
		log.Fatal().Str("op", *operation).Msg("unknown operation")
	}
	if err != nil {
		log.Fatal().Err(err).Str("op", *operation).Msg("operation failed")
	}

	if result != nil {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			log.Fatal().Err(err).Msg("encode result")
		}
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
