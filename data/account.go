package data

// Account holds a generated wallet: its mnemonic, address, shard, files on disk and the last known balance
type Account struct {
	Mnemonic   []string `json:"mnemonic"`
	Address    string   `json:"address"`
	Shard      uint32   `json:"shard"`
	WalletFile string   `json:"wallet_file"`
	PemFile    string   `json:"pem_file"`
	Balance    string   `json:"balance"`
}

// KeyPair holds freshly derived key material
type KeyPair struct {
	Mnemonic   []string
	PrivateKey []byte
	PublicKey  []byte
	Address    string
}

// AccountState is the on-chain state of an account as returned by the gateway
type AccountState struct {
	Address string
	Nonce   uint64
	Balance string
}

// GenerationResult sums up a generation run
type GenerationResult struct {
	Accounts  *ShardAccounts
	Accepted  uint64
	Discarded uint64
	Attempts  uint64
}
