// circlectl is a small operator tool for the Circle developer-controlled
// wallets API: health checks, entity key inspection, and generating the
// per-request values (ciphertext, idempotency key) for manual calls.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/cyphera/circle-w3s/client/circle"
	httpClient "github.com/cyphera/circle-w3s/client/http"
	"github.com/cyphera/circle-w3s/config"
	"github.com/cyphera/circle-w3s/idempotency"
	"github.com/cyphera/circle-w3s/logger"
)

const usage = `Usage: circlectl [flags] <command>

Commands:
  ping              check that the API is reachable
  public-key        print the entity public key
  ciphertext        print a fresh entity secret ciphertext
  idempotency-key   print a fresh idempotency key
  wallets           list wallets as JSON

Flags:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.LookupEnv, os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, lookup func(string) (string, bool), stdout io.Writer) error {
	var (
		envFile     string
		configFile  string
		walletSetID string
		blockchain  string
		pageSize    int
	)

	flagSet := pflag.NewFlagSet("circlectl", pflag.ContinueOnError)
	flagSet.StringVar(&envFile, "env-file", ".env", "dotenv file to read (missing is fine)")
	flagSet.StringVar(&configFile, "config", "", "YAML configuration file")
	flagSet.StringVar(&walletSetID, "wallet-set", "", "wallets: only this wallet set")
	flagSet.StringVar(&blockchain, "blockchain", "", "wallets: only this blockchain")
	flagSet.IntVar(&pageSize, "page-size", 0, "wallets: page size")
	flagSet.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return fmt.Errorf("expected exactly one command")
	}
	command := flagSet.Arg(0)

	// Needs no configuration.
	if command == "idempotency-key" {
		_, err := fmt.Fprintln(stdout, idempotency.NewKey())
		return err
	}

	cfg, err := config.Load(ctx, config.LoadOptions{ConfigFile: configFile, EnvFile: envFile, Lookup: lookup})
	if err != nil {
		return err
	}

	if _, err := logger.Init(cfg.LoggerConfig()); err != nil {
		return fmt.Errorf("failed to initialise logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("Loaded configuration", zap.Stringer("config", cfg))

	client, err := circle.NewCircleClient(cfg.APIKey, nil,
		circle.WithBaseURL(cfg.BaseURL),
		circle.WithHTTPOptions(httpClient.WithTimeout(cfg.Timeout), httpClient.WithLogger(logger.L())))
	if err != nil {
		return err
	}

	switch command {
	case "ping":
		resp, err := client.Ping(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, resp.Message)
		return err

	case "public-key":
		key, err := client.GetPublicKey(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(stdout, key)
		return err

	case "ciphertext":
		writer, err := circle.NewCircleClientFromConfig(ctx, cfg, circle.WithHTTPOptions(httpClient.WithLogger(logger.L())))
		if err != nil {
			return err
		}
		ciphertext, err := writer.Secrets().Ciphertext()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, ciphertext)
		return err

	case "wallets":
		params := &circle.ListWalletsParams{}
		if walletSetID != "" {
			params.WalletSetID = &walletSetID
		}
		if blockchain != "" {
			params.Blockchain = &blockchain
		}
		if pageSize > 0 {
			params.PageSize = &pageSize
		}

		wallets, err := client.ListWallets(ctx, params)
		if err != nil {
			return err
		}
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(wallets)

	default:
		flagSet.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}
