package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/multiversx/mx-chain-core-go/core/pubkeyConverter"
	"github.com/multiversx/mx-chain-go/sharding"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-shard-wallets-go/balance"
	"github.com/multiversx/mx-chain-shard-wallets-go/check"
	"github.com/multiversx/mx-chain-shard-wallets-go/common"
	"github.com/multiversx/mx-chain-shard-wallets-go/config"
	"github.com/multiversx/mx-chain-shard-wallets-go/core"
	"github.com/multiversx/mx-chain-shard-wallets-go/data"
	"github.com/multiversx/mx-chain-shard-wallets-go/funding"
	"github.com/multiversx/mx-chain-shard-wallets-go/generate"
	"github.com/multiversx/mx-chain-shard-wallets-go/interaction"
	"github.com/multiversx/mx-chain-shard-wallets-go/io"
	"github.com/multiversx/mx-chain-shard-wallets-go/orchestrator"
	"github.com/urfave/cli"
	"golang.org/x/term"
)

const envFileName = ".env"

type walletsRunner interface {
	Run(ctx context.Context) error
}

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

	errNotATerminal  = errors.New("stdin is not a terminal, set WALLET_PASSWORD or run the tool interactively")
	errEmptyPassword = errors.New("password cannot be empty")

	log = logger.GetOrCreate("main")
)

// The resulting binary generates wallets until every shard holds the same number of accounts, funds them from
// the funding wallet, queries their balances and writes the accounts file used by the token issuer
func main() {
	err := godotenv.Load(envFileName)
	if err != nil && !os.IsNotExist(err) {
		fmt.Println(err.Error())
		os.Exit(1)
	}

	app := cli.NewApp()
	cli.AppHelpTemplate = helpTemplate
	app.Name = "Shard Wallets Tool"
	app.Version = "v1.0.0"
	app.Usage = "This binary will generate and fund the same number of wallets in every shard and write the " +
		"accounts_info.json file"
	app.Flags = []cli.Flag{
		proxyURL,
		chainID,
		numShards,
		gasLimit,
		gasPrice,
		fundingAmount,
		transactionDelay,
		balanceQueryDelay,
		balanceRetryDelay,
		balanceQueryRetries,
		postFundingWait,
		outputDir,
		numAccountsPerShard,
		walletPassword,
		fundingWalletPem,
		accountsInfoFile,
		maxGenerationAttempts,
		logLevel,
	}
	app.Authors = []cli.Author{
		{
			Name:  "The MultiversX Team",
			Email: "contact@multiversx.com",
		},
	}

	app.Action = func(c *cli.Context) error {
		return run(c)
	}

	err = app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	startTime := time.Now()
	err := logger.SetLogLevel(c.GlobalString(logLevel.Name))
	if err != nil {
		return err
	}

	cfg, err := readWalletConfig(c)
	if err != nil {
		return err
	}

	err = config.CheckWalletConfig(cfg)
	if err != nil {
		return err
	}

	detach, err := core.AttachExecutionLog(cfg.OutputDir, startTime)
	if err != nil {
		return err
	}
	defer detach()

	log.Info("starting shard wallets tool",
		"network", config.NetworkName(cfg.Network.ChainID),
		"proxy", cfg.Network.ProxyURL,
		"num shards", cfg.Network.NumShards,
		"num accounts per shard", cfg.NumAccountsPerShard,
		"output dir", cfg.OutputDir,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runner, err := createOrchestrator(cfg)
	if err != nil {
		return err
	}

	err = runner.Run(ctx)
	if err != nil {
		return err
	}

	log.Info("done", "elapsed time", time.Since(startTime))

	return nil
}

func readWalletConfig(c *cli.Context) (config.WalletConfig, error) {
	cfg := config.WalletConfig{
		OutputDir:             c.GlobalString(outputDir.Name),
		NumAccountsPerShard:   uint32(c.GlobalUint(numAccountsPerShard.Name)),
		Password:              c.GlobalString(walletPassword.Name),
		FundingWalletPem:      c.GlobalString(fundingWalletPem.Name),
		AccountsInfoFile:      c.GlobalString(accountsInfoFile.Name),
		MaxGenerationAttempts: c.GlobalUint64(maxGenerationAttempts.Name),
		Network: config.NetworkConfig{
			ProxyURL:            c.GlobalString(proxyURL.Name),
			ChainID:             c.GlobalString(chainID.Name),
			NumShards:           uint32(c.GlobalUint(numShards.Name)),
			GasLimit:            c.GlobalUint64(gasLimit.Name),
			GasPrice:            c.GlobalUint64(gasPrice.Name),
			FundingAmount:       c.GlobalString(fundingAmount.Name),
			TransactionDelay:    seconds(c.GlobalUint(transactionDelay.Name)),
			BalanceQueryDelay:   seconds(c.GlobalUint(balanceQueryDelay.Name)),
			BalanceRetryDelay:   seconds(c.GlobalUint(balanceRetryDelay.Name)),
			BalanceQueryRetries: uint32(c.GlobalUint(balanceQueryRetries.Name)),
			PostFundingWait:     seconds(c.GlobalUint(postFundingWait.Name)),
		},
	}

	if len(cfg.Password) > 0 {
		return cfg, nil
	}

	password, err := promptForPassword()
	if err != nil {
		return config.WalletConfig{}, err
	}
	cfg.Password = password

	return cfg, nil
}

func promptForPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errNotATerminal
	}

	fmt.Fprint(os.Stderr, "Enter the password for the generated wallets: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(fd)
	if err != nil {
		return "", fmt.Errorf("%w while reading the password", err)
	}
	if len(raw) == 0 {
		return "", errEmptyPassword
	}

	return string(raw), nil
}

func createOrchestrator(cfg config.WalletConfig) (walletsRunner, error) {
	converter, err := pubkeyConverter.NewBech32PubkeyConverter(core.AddressLen, core.AddressHRP)
	if err != nil {
		return nil, err
	}

	shardCoordinator, err := sharding.NewMultiShardCoordinator(cfg.Network.NumShards, 0)
	if err != nil {
		return nil, err
	}

	keyPairGenerator, err := interaction.NewKeyPairGenerator(converter)
	if err != nil {
		return nil, err
	}

	walletFilesHandler := interaction.NewWalletFilesHandler()
	fundingKeyPair, err := loadFundingKeyPair(cfg.FundingWalletPem, walletFilesHandler, keyPairGenerator)
	if err != nil {
		return nil, err
	}

	proxy, err := interaction.CreateProxy(cfg.Network.ProxyURL)
	if err != nil {
		return nil, err
	}

	gateway, err := interaction.NewGateway(proxy)
	if err != nil {
		return nil, err
	}

	walletGenerator, err := generate.NewWalletGenerator(generate.ArgWalletGenerator{
		KeyPairGenerator:   keyPairGenerator,
		ShardCoordinator:   shardCoordinator,
		WalletFilesHandler: walletFilesHandler,
		OutputDirectory:    cfg.OutputDir,
		Password:           cfg.Password,
	})
	if err != nil {
		return nil, err
	}

	accountsGenerator, err := generate.NewShardAccountsGenerator(generate.ArgShardAccountsGenerator{
		AccountGenerator:    walletGenerator,
		NumShards:           cfg.Network.NumShards,
		NumAccountsPerShard: cfg.NumAccountsPerShard,
		MaxAttempts:         cfg.MaxGenerationAttempts,
	})
	if err != nil {
		return nil, err
	}

	accountsChecker, err := check.NewShardAccountsChecker(shardCoordinator, converter, cfg.NumAccountsPerShard)
	if err != nil {
		return nil, err
	}

	fundingManager, err := funding.NewFundingManager(funding.ArgFundingManager{
		Gateway:        gateway,
		TxSigner:       interaction.NewTxSigner(),
		FundingKeyPair: fundingKeyPair,
		Config:         cfg.Network,
	})
	if err != nil {
		return nil, err
	}

	waiter := core.NewContextWaiter()
	balancePoller, err := balance.NewBalancePoller(balance.ArgBalancePoller{
		Gateway:    gateway,
		Waiter:     waiter,
		NumRetries: cfg.Network.BalanceQueryRetries,
		RetryDelay: cfg.Network.BalanceRetryDelay,
	})
	if err != nil {
		return nil, err
	}

	accountsWriter, err := io.NewAccountsWriter(cfg.OutputDir, cfg.AccountsInfoFile)
	if err != nil {
		return nil, err
	}

	runner, err := orchestrator.NewOrchestrator(orchestrator.ArgOrchestrator{
		AccountsGenerator: accountsGenerator,
		AccountsChecker:   accountsChecker,
		FundingHandler:    fundingManager,
		BalanceHandler:    balancePoller,
		AccountsWriter:    accountsWriter,
		Waiter:            waiter,
		Config:            cfg,
	})
	if err != nil {
		return nil, err
	}

	return runner, nil
}

func loadFundingKeyPair(
	pemFile string,
	walletFilesHandler common.WalletFilesHandler,
	keyPairGenerator common.KeyPairGenerator,
) (*data.KeyPair, error) {
	privateKey, err := walletFilesHandler.LoadPem(pemFile)
	if err != nil {
		return nil, fmt.Errorf("%w while loading the funding wallet %s", err, pemFile)
	}

	keyPair, err := keyPairGenerator.KeyPairFromPrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	log.Info("loaded funding wallet", "address", keyPair.Address, "file", pemFile)

	return keyPair, nil
}

func seconds(value uint) time.Duration {
	return time.Duration(value) * time.Second
}
