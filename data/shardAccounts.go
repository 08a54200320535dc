package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const shardLabelPrefix = "shard_"

// ShardAccounts maps every shard to the ordered list of its accepted accounts
type ShardAccounts struct {
	accounts map[uint32][]*Account
}

// NewShardAccounts creates an empty list for every shard in [0, numShards)
func NewShardAccounts(numShards uint32) *ShardAccounts {
	sa := &ShardAccounts{
		accounts: make(map[uint32][]*Account, numShards),
	}
	for shard := uint32(0); shard < numShards; shard++ {
		sa.accounts[shard] = make([]*Account, 0)
	}

	return sa
}

// ShardLabel returns the label used for the provided shard in files and directories
func ShardLabel(shard uint32) string {
	return fmt.Sprintf("%s%d", shardLabelPrefix, shard)
}

// ParseShardLabel returns the shard encoded in the provided label
func ParseShardLabel(label string) (uint32, error) {
	if !strings.HasPrefix(label, shardLabelPrefix) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidShardLabel, label)
	}

	shard, err := strconv.ParseUint(strings.TrimPrefix(label, shardLabelPrefix), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidShardLabel, label)
	}

	return uint32(shard), nil
}

// Add appends the account to its shard list
func (sa *ShardAccounts) Add(account *Account) {
	sa.accounts[account.Shard] = append(sa.accounts[account.Shard], account)
}

// Shards returns the known shards in ascending order
func (sa *ShardAccounts) Shards() []uint32 {
	shards := make([]uint32, 0, len(sa.accounts))
	for shard := range sa.accounts {
		shards = append(shards, shard)
	}
	sort.Slice(shards, func(i, j int) bool {
		return shards[i] < shards[j]
	})

	return shards
}

// AccountsInShard returns the accounts of the provided shard
func (sa *ShardAccounts) AccountsInShard(shard uint32) []*Account {
	return sa.accounts[shard]
}

// All returns every account, shard by shard, in insertion order
func (sa *ShardAccounts) All() []*Account {
	all := make([]*Account, 0, sa.NumAccounts())
	for _, shard := range sa.Shards() {
		all = append(all, sa.accounts[shard]...)
	}

	return all
}

// NumAccounts returns the total number of accounts
func (sa *ShardAccounts) NumAccounts() int {
	num := 0
	for _, accounts := range sa.accounts {
		num += len(accounts)
	}

	return num
}

// MarshalJSON writes the accounts as an object keyed by shard label, in ascending shard order
func (sa *ShardAccounts) MarshalJSON() ([]byte, error) {
	buff := bytes.NewBufferString("{")
	for i, shard := range sa.Shards() {
		if i > 0 {
			buff.WriteString(",")
		}

		label, _ := json.Marshal(ShardLabel(shard))
		accounts, err := json.Marshal(sa.accounts[shard])
		if err != nil {
			return nil, err
		}

		buff.Write(label)
		buff.WriteString(":")
		buff.Write(accounts)
	}
	buff.WriteString("}")

	return buff.Bytes(), nil
}

// UnmarshalJSON reads an object keyed by shard label
func (sa *ShardAccounts) UnmarshalJSON(buff []byte) error {
	raw := make(map[string][]*Account)
	err := json.Unmarshal(buff, &raw)
	if err != nil {
		return err
	}

	sa.accounts = make(map[uint32][]*Account, len(raw))
	for label, accounts := range raw {
		shard, errParse := ParseShardLabel(label)
		if errParse != nil {
			return errParse
		}
		if accounts == nil {
			accounts = make([]*Account, 0)
		}

		sa.accounts[shard] = accounts
	}

	return nil
}
