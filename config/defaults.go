package config

// ESDTSystemSCAddress is the address of the system smart contract handling ESDT issuance
const ESDTSystemSCAddress = "erd1qqqqqqqqqqqqqqqpqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqzllls8a5w6u"

// DefaultIssuanceConfig returns the issuance parameters used when no config file is provided
func DefaultIssuanceConfig() IssuanceConfig {
	return IssuanceConfig{
		Token: TokenConfig{
			NamePrefix:       "WinterToken",
			Ticker:           "WINTER",
			InitialSupply:    "10000000000000000", // 100 million tokens with 8 decimals
			NumDecimals:      8,
			TokensPerAccount: 3,
			Properties: TokenPropertiesConfig{
				CanFreeze:          true,
				CanWipe:            true,
				CanPause:           true,
				CanMint:            true,
				CanBurn:            true,
				CanChangeOwner:     true,
				CanUpgrade:         true,
				CanAddSpecialRoles: true,
			},
		},
		Transactions: TransactionsConfig{
			IssuanceCost:    "50000000000000000", // 0.05 EGLD
			GasLimit:        60000000,
			GasPrice:        1000000000,
			SystemSCAddress: ESDTSystemSCAddress,
		},
		Pacing: PacingConfig{
			BatchSize:             5,
			BatchDelayInSeconds:   6,
			AccountDelayInSeconds: 20,
		},
	}
}
