package interaction

import (
	"errors"
	"strings"
	"testing"

	"github.com/multiversx/mx-chain-core-go/core/pubkeyConverter"
	"github.com/multiversx/mx-chain-shard-wallets-go/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createKeyPairGenerator(t *testing.T) *keyPairGenerator {
	converter, err := pubkeyConverter.NewBech32PubkeyConverter(core.AddressLen, core.AddressHRP)
	require.Nil(t, err)

	kpg, err := NewKeyPairGenerator(converter)
	require.Nil(t, err)

	return kpg
}

func TestNewKeyPairGenerator(t *testing.T) {
	t.Parallel()

	kpg, err := NewKeyPairGenerator(nil)
	assert.True(t, kpg.IsInterfaceNil())
	assert.Equal(t, ErrNilPubKeyConverter, err)

	kpg = createKeyPairGenerator(t)
	assert.False(t, kpg.IsInterfaceNil())
}

func TestKeyPairGenerator_GenerateKeyPair(t *testing.T) {
	t.Parallel()

	kpg := createKeyPairGenerator(t)

	keyPair, err := kpg.GenerateKeyPair()
	require.Nil(t, err)
	assert.Equal(t, 24, len(keyPair.Mnemonic))
	assert.Equal(t, seedLen, len(keyPair.PrivateKey))
	assert.Equal(t, core.AddressLen, len(keyPair.PublicKey))
	assert.True(t, strings.HasPrefix(keyPair.Address, "erd1"))

	other, err := kpg.GenerateKeyPair()
	require.Nil(t, err)
	assert.NotEqual(t, keyPair.Address, other.Address)
}

func TestKeyPairGenerator_KeyPairFromPrivateKey(t *testing.T) {
	t.Parallel()

	kpg := createKeyPairGenerator(t)
	keyPair, err := kpg.GenerateKeyPair()
	require.Nil(t, err)

	t.Run("seed form", func(t *testing.T) {
		t.Parallel()

		derived, err := kpg.KeyPairFromPrivateKey(keyPair.PrivateKey)
		require.Nil(t, err)
		assert.Equal(t, keyPair.Address, derived.Address)
		assert.Equal(t, keyPair.PublicKey, derived.PublicKey)
	})
	t.Run("seed and public key form", func(t *testing.T) {
		t.Parallel()

		sk := append(append([]byte{}, keyPair.PrivateKey...), keyPair.PublicKey...)
		derived, err := kpg.KeyPairFromPrivateKey(sk)
		require.Nil(t, err)
		assert.Equal(t, keyPair.Address, derived.Address)
		assert.Equal(t, keyPair.PrivateKey, derived.PrivateKey)
	})
	t.Run("invalid length should error", func(t *testing.T) {
		t.Parallel()

		derived, err := kpg.KeyPairFromPrivateKey([]byte("short"))
		assert.Nil(t, derived)
		assert.True(t, errors.Is(err, ErrInvalidPrivateKey))
	})
}
