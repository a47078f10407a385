package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/opendesk-labs/opendesk/internal/adapter"
	"github.com/opendesk-labs/opendesk/internal/config"
	"github.com/opendesk-labs/opendesk/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const requestTimeout = 15 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("deskctl")
	effective, err := config.GetEffectiveConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving configuration")
	}

	config.LogResolution(log, effective)

	switch command := flag.Arg(0); command {
	case "", "config":
		printResolvedConfig(effective)
	case "version":
		client := newAPIClient(effective, log)
		version, err := client.ServerVersion(context.Background())
		if err != nil {
			log.Fatal().Err(err).Msg("error getting server version")
		}
		fmt.Printf("Server version: %s\n", version)
	case "customers":
		client := newAPIClient(effective, log)
		customers, err := client.ListCustomers(context.Background())
		if err != nil {
			log.Fatal().Err(err).Msg("error listing customers")
		}
		for _, c := range customers {
			fmt.Printf("%s\t%s\t%s\n", c.ID, c.Name, c.Email)
		}
	case "orders":
		client := newAPIClient(effective, log)
		orders, err := client.ListOrders(context.Background())
		if err != nil {
			log.Fatal().Err(err).Msg("error listing orders")
		}
		for _, o := range orders {
			fmt.Printf("%s\t%s\t%s\t%d %s\n", o.ID, o.Number, o.Status, o.TotalCents, o.Currency)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (expected: config, version, customers, orders)\n", command)
		os.Exit(2)
	}
}

func newAPIClient(effective *config.EffectiveConfig, log *logger.Logger) adapter.APIClient {
	client, err := adapter.NewHTTPAPIClient(effective, requestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}
	return client
}

// printResolvedConfig prints the resolved runtime view: environment,
// tenant, feature flags, and per-key decision sources. Values of tunables
// and URLs are intentionally left out.
func printResolvedConfig(effective *config.EffectiveConfig) {
	fmt.Printf("Environment: %s\n", effective.Environment)
	if effective.Tenant != "" {
		fmt.Printf("Tenant: %s\n", effective.Tenant)
	} else {
		fmt.Println("Tenant: (none)")
	}

	features := make([]string, 0, len(effective.Features))
	for name := range effective.Features {
		features = append(features, name)
	}
	sort.Strings(features)
	for _, name := range features {
		fmt.Printf("Feature %s: %t\n", name, effective.Features[name])
	}

	keys := make([]string, 0, len(effective.Sources))
	for key := range effective.Sources {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Source %s: %s\n", key, effective.Sources[key])
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
