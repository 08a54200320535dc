package issuance

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"

	"github.com/multiversx/mx-chain-shard-wallets-go/config"
	"github.com/multiversx/mx-chain-shard-wallets-go/core"
)

const issueFunction = "issue"
const dataSeparator = "@"

// IssueArgs holds the fields of an ESDT issue call
type IssueArgs struct {
	Name       string
	Ticker     string
	Supply     *big.Int
	Decimals   uint64
	Properties config.TokenPropertiesConfig
}

type tokenProperty struct {
	name  string
	value bool
}

// IssueTokenData returns the transaction data field of an ESDT issue call
func IssueTokenData(args IssueArgs) string {
	parts := []string{
		issueFunction,
		hex.EncodeToString([]byte(args.Name)),
		hex.EncodeToString([]byte(args.Ticker)),
		core.EvenHex(args.Supply),
		core.EvenHex(big.NewInt(0).SetUint64(args.Decimals)),
	}

	for _, property := range orderedProperties(args.Properties) {
		parts = append(parts,
			hex.EncodeToString([]byte(property.name)),
			hex.EncodeToString([]byte(strconv.FormatBool(property.value))),
		)
	}

	return strings.Join(parts, dataSeparator)
}

func orderedProperties(properties config.TokenPropertiesConfig) []tokenProperty {
	return []tokenProperty{
		{name: "canFreeze", value: properties.CanFreeze},
		{name: "canWipe", value: properties.CanWipe},
		{name: "canPause", value: properties.CanPause},
		{name: "canMint", value: properties.CanMint},
		{name: "canBurn", value: properties.CanBurn},
		{name: "canChangeOwner", value: properties.CanChangeOwner},
		{name: "canUpgrade", value: properties.CanUpgrade},
		{name: "canAddSpecialRoles", value: properties.CanAddSpecialRoles},
	}
}
