package io

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-shard-wallets-go/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accountsFileName = "accounts_info.json"

func TestNewAccountsWriter(t *testing.T) {
	t.Parallel()

	t.Run("empty output directory should error", func(t *testing.T) {
		t.Parallel()

		aw, err := NewAccountsWriter("", accountsFileName)
		assert.True(t, check.IfNil(aw))
		assert.True(t, errors.Is(err, ErrEmptyValue))
	})
	t.Run("empty file name should error", func(t *testing.T) {
		t.Parallel()

		aw, err := NewAccountsWriter(t.TempDir(), "")
		assert.True(t, check.IfNil(aw))
		assert.True(t, errors.Is(err, ErrEmptyValue))
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		aw, err := NewAccountsWriter(dir, accountsFileName)
		assert.False(t, check.IfNil(aw))
		assert.Nil(t, err)
		assert.Equal(t, filepath.Join(dir, accountsFileName), aw.FilePath())
	})
}

func TestAccountsWriter_WriteAccounts(t *testing.T) {
	t.Parallel()

	t.Run("nil accounts should error", func(t *testing.T) {
		t.Parallel()

		aw, _ := NewAccountsWriter(t.TempDir(), accountsFileName)
		assert.Equal(t, ErrNilAccounts, aw.WriteAccounts(nil))
	})
	t.Run("should write indented json keyed by shard label", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		aw, _ := NewAccountsWriter(dir, accountsFileName)

		accounts := data.NewShardAccounts(2)
		accounts.Add(&data.Account{
			Mnemonic: []string{"a", "b"},
			Address:  "erd1first",
			Shard:    1,
			Balance:  "0.1000",
		})
		require.Nil(t, aw.WriteAccounts(accounts))

		buff, err := os.ReadFile(aw.FilePath())
		require.Nil(t, err)
		content := string(buff)
		assert.True(t, strings.HasPrefix(content, "{\n    \"shard_0\": []"))
		assert.True(t, strings.Contains(content, "\"address\": \"erd1first\""))

		raw := make(map[string][]*data.Account)
		require.Nil(t, json.Unmarshal(buff, &raw))
		assert.Len(t, raw["shard_0"], 0)
		require.Len(t, raw["shard_1"], 1)
		assert.Equal(t, "0.1000", raw["shard_1"][0].Balance)
	})
	t.Run("second write should replace the file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		aw, _ := NewAccountsWriter(dir, accountsFileName)

		accounts := data.NewShardAccounts(1)
		accounts.Add(&data.Account{Address: "erd1first", Balance: "0"})
		require.Nil(t, aw.WriteAccounts(accounts))
		require.Nil(t, aw.WriteAccounts(data.NewShardAccounts(1)))

		buff, err := os.ReadFile(aw.FilePath())
		require.Nil(t, err)
		assert.False(t, strings.Contains(string(buff), "erd1first"))
	})
}
