package io

import (
	"fmt"
	"path/filepath"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-shard-wallets-go/core"
	"github.com/multiversx/mx-chain-shard-wallets-go/data"
)

var log = logger.GetOrCreate("io")

type accountsWriter struct {
	outputDirectory string
	fileName        string
	createHandler   func(outputDirectory string, fileName string) (FileHandler, error)
}

// NewAccountsWriter creates a writer for the accounts file. Every write replaces the previous content
func NewAccountsWriter(outputDirectory string, fileName string) (*accountsWriter, error) {
	if len(outputDirectory) == 0 {
		return nil, fmt.Errorf("%w for outputDirectory", ErrEmptyValue)
	}
	if len(fileName) == 0 {
		return nil, fmt.Errorf("%w for fileName", ErrEmptyValue)
	}

	return &accountsWriter{
		outputDirectory: outputDirectory,
		fileName:        fileName,
		createHandler: func(outputDirectory string, fileName string) (FileHandler, error) {
			return core.NewFileHandler(outputDirectory, fileName)
		},
	}, nil
}

// WriteAccounts writes the accounts grouped by shard label as indented JSON
func (aw *accountsWriter) WriteAccounts(accounts *data.ShardAccounts) error {
	if accounts == nil {
		return ErrNilAccounts
	}

	handler, err := aw.createHandler(aw.outputDirectory, aw.fileName)
	if err != nil {
		return err
	}
	defer handler.Close()

	err = handler.WriteObjectInFile(accounts)
	if err != nil {
		return err
	}

	log.Info("accounts file saved",
		"file", filepath.Join(aw.outputDirectory, aw.fileName),
		"num accounts", accounts.NumAccounts(),
	)

	return nil
}

// FilePath returns the path of the accounts file
func (aw *accountsWriter) FilePath() string {
	return filepath.Join(aw.outputDirectory, aw.fileName)
}

// IsInterfaceNil returns true if there is no value under the interface
func (aw *accountsWriter) IsInterfaceNil() bool {
	return aw == nil
}
