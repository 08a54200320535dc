package check

import (
	"fmt"
	"os"

	mxCore "github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-shard-wallets-go/common"
	"github.com/multiversx/mx-chain-shard-wallets-go/data"
)

var log = logger.GetOrCreate("check")

type shardAccountsChecker struct {
	shardCoordinator    common.ShardCoordinator
	pubKeyConverter     mxCore.PubkeyConverter
	numAccountsPerShard uint32
}

// NewShardAccountsChecker creates a new shard accounts checker
func NewShardAccountsChecker(
	shardCoordinator common.ShardCoordinator,
	pubKeyConverter mxCore.PubkeyConverter,
	numAccountsPerShard uint32,
) (*shardAccountsChecker, error) {
	if check.IfNil(shardCoordinator) {
		return nil, ErrNilShardCoordinator
	}
	if check.IfNil(pubKeyConverter) {
		return nil, ErrNilPubKeyConverter
	}
	if numAccountsPerShard == 0 {
		return nil, fmt.Errorf("%w for numAccountsPerShard", ErrZeroValue)
	}

	return &shardAccountsChecker{
		shardCoordinator:    shardCoordinator,
		pubKeyConverter:     pubKeyConverter,
		numAccountsPerShard: numAccountsPerShard,
	}, nil
}

// CheckShardAccounts will check that every shard holds exactly the configured number of accounts, that
// every account lives in the shard of its address and that its wallet files are on disk
func (sac *shardAccountsChecker) CheckShardAccounts(accounts *data.ShardAccounts) error {
	if accounts == nil {
		return ErrNilShardAccounts
	}

	numShards := sac.shardCoordinator.NumberOfShards()
	for _, shard := range accounts.Shards() {
		if shard >= numShards {
			return fmt.Errorf("%w %d, number of shards %d", ErrUnexpectedShard, shard, numShards)
		}
	}

	seen := make(map[string]struct{})
	for shard := uint32(0); shard < numShards; shard++ {
		shardAccounts := accounts.AccountsInShard(shard)
		if uint32(len(shardAccounts)) != sac.numAccountsPerShard {
			return fmt.Errorf("%w for %s, expected %d, found %d",
				ErrQuotaMismatch, data.ShardLabel(shard), sac.numAccountsPerShard, len(shardAccounts))
		}

		for _, account := range shardAccounts {
			err := sac.checkAccount(shard, account)
			if err != nil {
				return err
			}

			_, found := seen[account.Address]
			if found {
				return fmt.Errorf("%w %s", ErrDuplicatedAddress, account.Address)
			}
			seen[account.Address] = struct{}{}
		}
	}

	log.Info("checked accounts",
		"num shards", numShards,
		"num accounts per shard", sac.numAccountsPerShard,
		"total accounts", len(seen),
	)

	return nil
}

func (sac *shardAccountsChecker) checkAccount(shard uint32, account *data.Account) error {
	pubKey, err := sac.pubKeyConverter.Decode(account.Address)
	if err != nil {
		return fmt.Errorf("%w for address %s", err, account.Address)
	}

	computedShard := sac.shardCoordinator.ComputeId(pubKey)
	if account.Shard != shard || computedShard != shard {
		return fmt.Errorf("%w for address %s, listed in %s, recorded %d, computed %d",
			ErrShardMismatch, account.Address, data.ShardLabel(shard), account.Shard, computedShard)
	}

	for _, filePath := range []string{account.WalletFile, account.PemFile} {
		_, err = os.Stat(filePath)
		if err != nil {
			return fmt.Errorf("%w %s for address %s", ErrMissingFile, filePath, account.Address)
		}
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (sac *shardAccountsChecker) IsInterfaceNil() bool {
	return sac == nil
}
