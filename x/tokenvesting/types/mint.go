package types

import (
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// MintDecimals returns the exponent of the display unit of a denom, which is
// the number of decimals transfers of that denom are checked against.
func MintDecimals(md banktypes.Metadata) uint32 {
	var decimals uint32
	for _, unit := range md.DenomUnits {
		if unit == nil {
			continue
		}
		if unit.Denom == md.Display {
			return unit.Exponent
		}
		if unit.Exponent > decimals {
			decimals = unit.Exponent
		}
	}
	return decimals
}
