package data

// IssuerAccount is an account loaded from the accounts file, ready to sign issuance transactions
type IssuerAccount struct {
	Address string
	PemFile string
}

// IssuanceResult sums up a token issuance run
type IssuanceResult struct {
	NumAccounts       int
	NumFailedAccounts int
	NumTransactions   int
	TxHashes          []string
}
