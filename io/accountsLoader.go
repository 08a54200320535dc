package io

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/multiversx/mx-chain-shard-wallets-go/data"
)

// CheckWalletsDirectory checks that the wallets directory exists and holds the accounts file
func CheckWalletsDirectory(baseDirectory string, fileName string) error {
	info, err := os.Stat(baseDirectory)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w %s", ErrMissingWalletsDirectory, baseDirectory)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, baseDirectory)
	}

	_, err = os.Stat(filepath.Join(baseDirectory, fileName))
	if err != nil {
		return fmt.Errorf("%w %s in %s", ErrMissingAccountsFile, fileName, baseDirectory)
	}

	return nil
}

// LoadAccounts reads the accounts file from the wallets directory and returns every account in shard order
// with its PEM path resolved against the wallets directory
func LoadAccounts(baseDirectory string, fileName string) ([]*data.IssuerAccount, error) {
	err := CheckWalletsDirectory(baseDirectory, fileName)
	if err != nil {
		return nil, err
	}

	buff, err := os.ReadFile(filepath.Join(baseDirectory, fileName))
	if err != nil {
		return nil, err
	}

	shardAccounts := &data.ShardAccounts{}
	err = json.Unmarshal(buff, shardAccounts)
	if err != nil {
		return nil, fmt.Errorf("%w while parsing %s", err, fileName)
	}

	accounts := make([]*data.IssuerAccount, 0, shardAccounts.NumAccounts())
	for _, account := range shardAccounts.All() {
		pemFile := ResolvePemPath(baseDirectory, account.PemFile)
		_, err = os.Stat(pemFile)
		if err != nil {
			return nil, fmt.Errorf("%w %s for address %s", ErrMissingPemFile, pemFile, account.Address)
		}

		accounts = append(accounts, &data.IssuerAccount{
			Address: account.Address,
			PemFile: pemFile,
		})
	}

	log.Info("loaded accounts", "file", filepath.Join(baseDirectory, fileName), "num accounts", len(accounts))

	return accounts, nil
}

// ResolvePemPath maps a PEM path recorded in the accounts file to a path under the wallets directory.
// Recorded paths may use backslashes and usually start with the wallets directory name itself
func ResolvePemPath(baseDirectory string, recordedPath string) string {
	normalized := strings.ReplaceAll(recordedPath, "\\", "/")
	if filepath.IsAbs(normalized) {
		return filepath.Clean(normalized)
	}

	normalized = strings.TrimPrefix(normalized, "./")
	basePrefix := filepath.ToSlash(filepath.Clean(baseDirectory)) + "/"
	baseNamePrefix := filepath.Base(baseDirectory) + "/"
	switch {
	case strings.HasPrefix(normalized, basePrefix):
		normalized = strings.TrimPrefix(normalized, basePrefix)
	case strings.HasPrefix(normalized, baseNamePrefix):
		normalized = strings.TrimPrefix(normalized, baseNamePrefix)
	}

	return filepath.Join(baseDirectory, filepath.FromSlash(normalized))
}
