package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/pubkeyConverter"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-shard-wallets-go/config"
	"github.com/multiversx/mx-chain-shard-wallets-go/core"
	"github.com/multiversx/mx-chain-shard-wallets-go/interaction"
	"github.com/multiversx/mx-chain-shard-wallets-go/io"
	"github.com/multiversx/mx-chain-shard-wallets-go/issuance"
	"github.com/urfave/cli"
)

var (
	helpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`
	proxyURL = cli.StringFlag{
		Name:  "proxy",
		Usage: "The gateway URL used to query nonces and send transactions",
		Value: "https://devnet-gateway.multiversx.com",
	}
	chainID = cli.StringFlag{
		Name:  "chain-id",
		Usage: "The chain ID set on the issuance transactions",
		Value: "D",
	}
	walletsDir = cli.StringFlag{
		Name:  "wallets-dir",
		Usage: "The directory holding the accounts file and the shard wallets",
		Value: "devnet_wallets",
	}
	accountsFile = cli.StringFlag{
		Name:  "accounts-file",
		Usage: "The name of the accounts file inside the wallets directory",
		Value: "accounts_info.json",
	}
	configFile = cli.StringFlag{
		Name:  "config",
		Usage: "The TOML file holding the token issuance parameters. Built-in defaults are used when empty",
		Value: "",
	}
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level.",
		Value: "*:INFO",
	}

	log = logger.GetOrCreate("main")
)

// The resulting binary issues ESDT tokens from every account listed in the accounts file written by the
// shard wallets tool
func main() {
	app := cli.NewApp()
	cli.AppHelpTemplate = helpTemplate
	app.Name = "Token Issuer Tool"
	app.Version = "v1.0.0"
	app.Usage = "This binary will issue ESDT tokens from every account of the accounts_info.json file"
	app.Flags = []cli.Flag{
		proxyURL,
		chainID,
		walletsDir,
		accountsFile,
		configFile,
		logLevel,
	}
	app.Authors = []cli.Author{
		{
			Name:  "The MultiversX Team",
			Email: "contact@multiversx.com",
		},
	}

	app.Action = func(c *cli.Context) error {
		return issueTokens(c)
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func issueTokens(c *cli.Context) error {
	startTime := time.Now()
	err := logger.SetLogLevel(c.GlobalString(logLevel.Name))
	if err != nil {
		return err
	}

	cfg, err := loadIssuanceConfig(c.GlobalString(configFile.Name))
	if err != nil {
		return err
	}

	accounts, err := io.LoadAccounts(c.GlobalString(walletsDir.Name), c.GlobalString(accountsFile.Name))
	if err != nil {
		return err
	}

	converter, err := pubkeyConverter.NewBech32PubkeyConverter(core.AddressLen, core.AddressHRP)
	if err != nil {
		return err
	}

	keyPairGenerator, err := interaction.NewKeyPairGenerator(converter)
	if err != nil {
		return err
	}

	proxy, err := interaction.CreateProxy(c.GlobalString(proxyURL.Name))
	if err != nil {
		return err
	}

	gateway, err := interaction.NewGateway(proxy)
	if err != nil {
		return err
	}

	issuer, err := issuance.NewTokenIssuer(issuance.ArgTokenIssuer{
		Gateway:            gateway,
		TxSigner:           interaction.NewTxSigner(),
		KeyPairGenerator:   keyPairGenerator,
		WalletFilesHandler: interaction.NewWalletFilesHandler(),
		Waiter:             core.NewContextWaiter(),
		ChainID:            c.GlobalString(chainID.Name),
		Config:             cfg,
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info("starting token issuance",
		"network", config.NetworkName(c.GlobalString(chainID.Name)),
		"num accounts", len(accounts),
		"tokens per account", cfg.Token.TokensPerAccount,
	)

	result, err := issuer.Run(ctx, accounts)
	if err != nil {
		return fmt.Errorf("%w after %d sent transactions", err, result.NumTransactions)
	}

	log.Info("done", "elapsed time", time.Since(startTime))

	return nil
}

func loadIssuanceConfig(path string) (config.IssuanceConfig, error) {
	if len(path) == 0 {
		return config.DefaultIssuanceConfig(), nil
	}

	cfg, err := config.LoadIssuanceConfig(path)
	if err != nil {
		return config.IssuanceConfig{}, err
	}

	log.Info("loaded issuance config", "file", path)

	return cfg, nil
}
