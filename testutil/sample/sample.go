package sample

import (
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// AccAddress returns a sample account address
func AccAddress() string {
	return Address().String()
}

// Address returns a sample account address backed by a fresh ed25519 key
func Address() sdk.AccAddress {
	pk := ed25519.GenPrivKey().PubKey()
	return sdk.AccAddress(pk.Address())
}

// MintMetadata returns bank metadata for a mint whose display unit has the given decimals
func MintMetadata(base string, display string, decimals uint32) banktypes.Metadata {
	return banktypes.Metadata{
		Base:    base,
		Display: display,
		Name:    display,
		Symbol:  display,
		DenomUnits: []*banktypes.DenomUnit{
			{Denom: base, Exponent: 0},
			{Denom: display, Exponent: decimals},
		},
	}
}
