package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// VestingAccount is the escrow descriptor of one company's grant program.
// All fields are fixed at creation.
type VestingAccount struct {
	CompanyName          string         `json:"company_name"`
	Owner                sdk.AccAddress `json:"owner"`
	Mint                 string         `json:"mint"`
	TreasuryTokenAccount sdk.AccAddress `json:"treasury_token_account"`
	TreasuryBump         uint8          `json:"treasury_bump"`
	Bump                 uint8          `json:"bump"`
}

// Address re-derives the record's own address from its company name and stored bump.
func (v VestingAccount) Address() (sdk.AccAddress, error) {
	addr, err := CreateProgramAddress(VestingAccountSeeds(v.CompanyName), v.Bump)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrSeedsConstraintViolated, "vesting account %q: %s", v.CompanyName, err)
	}
	return addr, nil
}

// TreasuryAuthority rebuilds the signing authority of the custody account.
func (v VestingAccount) TreasuryAuthority() (Authority, error) {
	authority, err := NewAuthority(TreasurySeeds(v.CompanyName), v.TreasuryBump)
	if err != nil {
		return Authority{}, errorsmod.Wrapf(ErrSeedsConstraintViolated, "treasury bump %d: %s", v.TreasuryBump, err)
	}
	if !authority.Address().Equals(v.TreasuryTokenAccount) {
		return Authority{}, errorsmod.Wrapf(ErrSeedsConstraintViolated,
			"treasury bump %d derives %s, record holds %s", v.TreasuryBump, authority.Address(), v.TreasuryTokenAccount)
	}
	return authority, nil
}

// Validate performs the stateless checks every stored vesting record must pass.
func (v VestingAccount) Validate() error {
	if err := ValidateCompanyName(v.CompanyName); err != nil {
		return err
	}
	if err := sdk.VerifyAddressFormat(v.Owner); err != nil {
		return errorsmod.Wrapf(ErrInvalidRecord, "owner: %s", err)
	}
	if err := sdk.ValidateDenom(v.Mint); err != nil {
		return errorsmod.Wrapf(ErrInvalidRecord, "mint: %s", err)
	}
	if _, err := v.TreasuryAuthority(); err != nil {
		return err
	}
	return nil
}

func (v VestingAccount) String() string {
	return fmt.Sprintf("VestingAccount{company=%q owner=%s mint=%s treasury=%s treasury_bump=%d bump=%d}",
		v.CompanyName, v.Owner, v.Mint, v.TreasuryTokenAccount, v.TreasuryBump, v.Bump)
}

// ValidateCompanyName enforces the name bounds shared by messages and records.
func ValidateCompanyName(name string) error {
	if len(name) == 0 {
		return errorsmod.Wrap(ErrInvalidCompanyName, "company name cannot be empty")
	}
	if len(name) > MaxCompanyNameLength {
		return errorsmod.Wrapf(ErrInvalidCompanyName, "company name is %d bytes, max %d", len(name), MaxCompanyNameLength)
	}
	return nil
}
