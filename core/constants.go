package core

// AddressLen is the length in bytes of an account public key
const AddressLen = 32

// AddressHRP is the human readable part used when encoding addresses as bech32
const AddressHRP = "erd"

// EGLDDecimals is the number of decimals of the native token
const EGLDDecimals = 18

// BalanceDisplayDecimals is the number of decimals kept when displaying a balance
const BalanceDisplayDecimals = 4

// WalletFilePrefix prefixes every generated wallet file name
const WalletFilePrefix = "wallet_"

// WalletNameAddressChars is the number of leading address characters used in wallet file names
const WalletNameAddressChars = 8

// KeystoreFileExtension is the extension of the password protected wallet file
const KeystoreFileExtension = ".json"

// PemFileExtension is the extension of the exported key file
const PemFileExtension = ".pem"

// TransactionVersion is the version set on all built transactions
const TransactionVersion = 2

// DevnetChainID is the chain ID of the devnet
const DevnetChainID = "D"

// TestnetChainID is the chain ID of the testnet
const TestnetChainID = "T"

// MainnetChainID is the chain ID of the mainnet
const MainnetChainID = "1"
