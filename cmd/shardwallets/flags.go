package main

import "github.com/urfave/cli"

var (
	proxyURL = cli.StringFlag{
		Name:   "proxy",
		Usage:  "The gateway URL used to query accounts and send transactions",
		Value:  "https://devnet-gateway.multiversx.com",
		EnvVar: "PROXY_URL",
	}
	chainID = cli.StringFlag{
		Name:   "chain-id",
		Usage:  "The chain ID set on the funding transactions",
		Value:  "D",
		EnvVar: "CHAIN_ID",
	}
	numShards = cli.UintFlag{
		Name:   "num-shards",
		Usage:  "The number of shards of the network",
		Value:  3,
		EnvVar: "NUM_SHARDS",
	}
	gasLimit = cli.Uint64Flag{
		Name:   "gas-limit",
		Usage:  "The gas limit of a funding transaction",
		Value:  50000,
		EnvVar: "GAS_LIMIT",
	}
	gasPrice = cli.Uint64Flag{
		Name:   "gas-price",
		Usage:  "The gas price of a funding transaction",
		Value:  1000000000,
		EnvVar: "GAS_PRICE",
	}
	fundingAmount = cli.StringFlag{
		Name:   "funding-amount",
		Usage:  "The amount sent to every generated account, in the smallest denomination",
		Value:  "100000000000000000",
		EnvVar: "FUNDING_AMOUNT",
	}
	transactionDelay = cli.UintFlag{
		Name:   "transaction-delay",
		Usage:  "Seconds to wait after every funding transaction",
		Value:  3,
		EnvVar: "TRANSACTION_DELAY",
	}
	balanceQueryDelay = cli.UintFlag{
		Name:   "balance-query-delay",
		Usage:  "Seconds to wait between the balance queries of two accounts",
		Value:  2,
		EnvVar: "BALANCE_QUERY_DELAY",
	}
	balanceRetryDelay = cli.UintFlag{
		Name:   "balance-retry-delay",
		Usage:  "Seconds to wait before retrying a failed balance query",
		Value:  2,
		EnvVar: "BALANCE_RETRY_DELAY",
	}
	balanceQueryRetries = cli.UintFlag{
		Name:   "balance-query-retries",
		Usage:  "Maximum number of attempts for a balance query",
		Value:  3,
		EnvVar: "BALANCE_QUERY_RETRIES",
	}
	postFundingWait = cli.UintFlag{
		Name:   "post-funding-wait",
		Usage:  "Seconds to wait after the funding phase, before querying balances",
		Value:  30,
		EnvVar: "POST_FUNDING_WAIT",
	}
	outputDir = cli.StringFlag{
		Name:   "output-dir",
		Usage:  "The directory where the wallets, the accounts file and the execution log are written",
		Value:  "devnet_wallets",
		EnvVar: "OUTPUT_DIR",
	}
	numAccountsPerShard = cli.UintFlag{
		Name:   "num-accounts-per-shard",
		Usage:  "The number of accounts generated in every shard",
		Value:  3,
		EnvVar: "NUM_ACCOUNTS_PER_SHARD",
	}
	walletPassword = cli.StringFlag{
		Name:   "wallet-password",
		Usage:  "The password of the generated keystore files. Prompted for when empty",
		EnvVar: "WALLET_PASSWORD",
	}
	fundingWalletPem = cli.StringFlag{
		Name:   "funding-wallet-pem",
		Usage:  "The PEM file of the wallet funding the generated accounts",
		Value:  "funding_wallet.pem",
		EnvVar: "FUNDING_WALLET_PEM",
	}
	accountsInfoFile = cli.StringFlag{
		Name:   "accounts-info-file",
		Usage:  "The name of the accounts file written in the output directory",
		Value:  "accounts_info.json",
		EnvVar: "ACCOUNTS_INFO_FILE",
	}
	maxGenerationAttempts = cli.Uint64Flag{
		Name:   "max-generation-attempts",
		Usage:  "Maximum number of generated wallets, accepted and discarded, before giving up",
		Value:  10000,
		EnvVar: "MAX_GENERATION_ATTEMPTS",
	}
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level.",
		Value:  "*:INFO",
		EnvVar: "LOG_LEVEL",
	}
)
