package generate

import (
	"fmt"
	"strings"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-shard-wallets-go/data"
)

// ArgShardAccountsGenerator is the argument used to create a shard accounts generator
type ArgShardAccountsGenerator struct {
	AccountGenerator    AccountGenerator
	NumShards           uint32
	NumAccountsPerShard uint32
	MaxAttempts         uint64
}

type shardAccountsGenerator struct {
	accountGenerator    AccountGenerator
	numShards           uint32
	numAccountsPerShard uint32
	maxAttempts         uint64
}

// NewShardAccountsGenerator will create a generator that keeps drawing wallets until every shard holds
// the configured number of accounts
func NewShardAccountsGenerator(arg ArgShardAccountsGenerator) (*shardAccountsGenerator, error) {
	if check.IfNil(arg.AccountGenerator) {
		return nil, ErrNilAccountGenerator
	}
	if arg.NumShards == 0 {
		return nil, fmt.Errorf("%w for NumShards", ErrInvalidValue)
	}
	if arg.NumAccountsPerShard == 0 {
		return nil, fmt.Errorf("%w for NumAccountsPerShard", ErrInvalidValue)
	}
	minAttempts := uint64(arg.NumShards) * uint64(arg.NumAccountsPerShard)
	if arg.MaxAttempts < minAttempts {
		return nil, fmt.Errorf("%w for MaxAttempts, minimum %d, provided %d", ErrInvalidValue, minAttempts, arg.MaxAttempts)
	}

	return &shardAccountsGenerator{
		accountGenerator:    arg.AccountGenerator,
		numShards:           arg.NumShards,
		numAccountsPerShard: arg.NumAccountsPerShard,
		maxAttempts:         arg.MaxAttempts,
	}, nil
}

// GenerateAccounts draws candidates until every shard quota is met. Candidates landing in an already
// full shard are discarded and their files removed
func (sag *shardAccountsGenerator) GenerateAccounts() (*data.GenerationResult, error) {
	needed := make([]uint32, sag.numShards)
	for shard := range needed {
		needed[shard] = sag.numAccountsPerShard
	}
	remaining := uint64(sag.numShards) * uint64(sag.numAccountsPerShard)

	result := &data.GenerationResult{
		Accounts: data.NewShardAccounts(sag.numShards),
	}

	for remaining > 0 {
		if result.Attempts >= sag.maxAttempts {
			return nil, fmt.Errorf("%w after %d attempts, missing accounts: %s",
				ErrUnreachableQuota, result.Attempts, formatMissing(needed))
		}

		result.Attempts++
		account, err := sag.accountGenerator.GenerateAccount()
		if err != nil {
			return nil, err
		}

		if account.Shard >= sag.numShards || needed[account.Shard] == 0 {
			result.Discarded++
			sag.discard(account)
			continue
		}

		result.Accounts.Add(account)
		result.Accepted++
		needed[account.Shard]--
		remaining--
		log.Info("accepted account", "shard", account.Shard, "address", account.Address,
			"remaining in shard", needed[account.Shard])

		if needed[account.Shard] == 0 {
			log.Info("shard completed", "shard", account.Shard, "num accounts", sag.numAccountsPerShard)
		}
	}

	log.Info("accounts generation finished",
		"accepted", result.Accepted,
		"discarded", result.Discarded,
		"attempts", result.Attempts,
	)

	return result, nil
}

func (sag *shardAccountsGenerator) discard(account *data.Account) {
	log.Debug("discarded account", "shard", account.Shard, "address", account.Address)

	err := sag.accountGenerator.RemoveAccountFiles(account)
	if err != nil {
		log.Warn("could not remove the files of a discarded account",
			"address", account.Address, "error", err)
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (sag *shardAccountsGenerator) IsInterfaceNil() bool {
	return sag == nil
}

func formatMissing(needed []uint32) string {
	parts := make([]string, 0, len(needed))
	for shard, missing := range needed {
		if missing == 0 {
			continue
		}

		parts = append(parts, fmt.Sprintf("%s=%d", data.ShardLabel(uint32(shard)), missing))
	}

	return strings.Join(parts, ", ")
}
