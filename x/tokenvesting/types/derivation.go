package types

import (
	"bytes"

	errorsmod "cosmossdk.io/errors"
	"filippo.io/edwards25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// MaxSeeds bounds the seed tuple, the bump byte included.
	MaxSeeds = 16
	// MaxSeedLength bounds every individual seed.
	MaxSeedLength = 64
)

// CreateProgramAddress derives the module-owned address for seeds and bump.
// The hash is chained one seed at a time, so distinct seed tuples never
// concatenate into the same preimage. Addresses that decode as a point on the
// ed25519 curve are rejected: some key pair could sign for them.
func CreateProgramAddress(seeds [][]byte, bump uint8) (sdk.AccAddress, error) {
	if err := validateSeeds(seeds); err != nil {
		return nil, err
	}
	addr, ok := deriveOffCurve(seeds, bump)
	if !ok {
		return nil, errorsmod.Wrapf(ErrInvalidSeeds, "bump %d yields an on-curve address", bump)
	}
	return addr, nil
}

// FindProgramAddress returns the address for the highest bump that lands off
// the curve, together with that bump.
func FindProgramAddress(seeds [][]byte) (sdk.AccAddress, uint8, error) {
	if err := validateSeeds(seeds); err != nil {
		return nil, 0, err
	}
	for bump := 255; bump >= 0; bump-- {
		if addr, ok := deriveOffCurve(seeds, uint8(bump)); ok {
			return addr, uint8(bump), nil
		}
	}
	return nil, 0, errorsmod.Wrap(ErrInvalidSeeds, "unable to find a viable bump")
}

func validateSeeds(seeds [][]byte) error {
	if len(seeds) == 0 {
		return errorsmod.Wrap(ErrInvalidSeeds, "at least one seed is required")
	}
	if len(seeds)+1 > MaxSeeds {
		return errorsmod.Wrapf(ErrInvalidSeeds, "%d seeds exceed the limit of %d", len(seeds), MaxSeeds-1)
	}
	for i, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return errorsmod.Wrapf(ErrInvalidSeeds, "seed %d is %d bytes, max %d", i, len(seed), MaxSeedLength)
		}
	}
	return nil
}

func deriveOffCurve(seeds [][]byte, bump uint8) (sdk.AccAddress, bool) {
	keys := make([][]byte, 0, len(seeds)+1)
	keys = append(keys, seeds...)
	keys = append(keys, []byte{bump})

	addr := address.Module(ModuleName, keys...)
	if isOnCurve(addr) {
		return nil, false
	}
	return sdk.AccAddress(addr), true
}

// VerifyBump checks that seeds and a stored bump reproduce expected.
func VerifyBump(seeds [][]byte, bump uint8, expected sdk.AccAddress) error {
	addr, err := CreateProgramAddress(seeds, bump)
	if err != nil {
		return errorsmod.Wrapf(ErrSeedsConstraintViolated, "stored bump %d: %s", bump, err)
	}
	if !addr.Equals(expected) {
		return errorsmod.Wrapf(ErrSeedsConstraintViolated, "seeds with bump %d derive %s, expected %s", bump, addr, expected)
	}
	return nil
}

func isOnCurve(b []byte) bool {
	if len(b) != 32 {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}

// VestingAccountSeeds are the seeds of a company's vesting record.
func VestingAccountSeeds(companyName string) [][]byte {
	return [][]byte{[]byte(companyName)}
}

// TreasurySeeds are the seeds of a company's custody account and its signing authority.
func TreasurySeeds(companyName string) [][]byte {
	return [][]byte{[]byte(TreasurySeed), []byte(companyName)}
}

// EmployeeAccountSeeds are the seeds of a beneficiary's schedule under a vesting record.
func EmployeeAccountSeeds(beneficiary, vestingAccount sdk.AccAddress) [][]byte {
	return [][]byte{[]byte(EmployeeSeed), beneficiary.Bytes(), vestingAccount.Bytes()}
}

// Authority is the signing capability of a derived address. It carries no
// secret: anyone holding the seeds and bump can rebuild it, and it only ever
// signs for the address those seeds derive.
type Authority struct {
	seeds   [][]byte
	bump    uint8
	address sdk.AccAddress
}

// NewAuthority rebuilds the authority for seeds and bump.
func NewAuthority(seeds [][]byte, bump uint8) (Authority, error) {
	addr, err := CreateProgramAddress(seeds, bump)
	if err != nil {
		return Authority{}, errorsmod.Wrapf(ErrInvalidAuthority, "cannot derive authority: %s", err)
	}
	copied := make([][]byte, len(seeds))
	for i, seed := range seeds {
		copied[i] = bytes.Clone(seed)
	}
	return Authority{seeds: copied, bump: bump, address: addr}, nil
}

// Address is the account this authority signs for.
func (a Authority) Address() sdk.AccAddress {
	return a.address
}

func (a Authority) Bump() uint8 {
	return a.bump
}

// Verify re-derives the authority and checks that it signs for signer.
func (a Authority) Verify(signer sdk.AccAddress) error {
	if len(a.seeds) == 0 {
		return errorsmod.Wrap(ErrInvalidAuthority, "empty authority")
	}
	addr, err := CreateProgramAddress(a.seeds, a.bump)
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidAuthority, "%s", err)
	}
	if !addr.Equals(a.address) || !addr.Equals(signer) {
		return errorsmod.Wrapf(ErrInvalidAuthority, "authority %s cannot sign for %s", addr, signer)
	}
	return nil
}
