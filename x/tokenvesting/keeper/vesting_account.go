package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/tokenvesting/x/tokenvesting/types"
)

// SetVestingAccount stores a vesting record under its derived address.
func (k Keeper) SetVestingAccount(ctx context.Context, addr sdk.AccAddress, va types.VestingAccount) error {
	return k.vestingAccounts.Set(ctx, addr, va)
}

// GetVestingAccount returns the record stored at addr.
func (k Keeper) GetVestingAccount(ctx context.Context, addr sdk.AccAddress) (types.VestingAccount, bool) {
	va, err := k.vestingAccounts.Get(ctx, addr)
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			k.Logger().Error("failed to read vesting account", "address", addr.String(), "error", err)
		}
		return types.VestingAccount{}, false
	}
	return va, true
}

// HasVestingAccount reports whether a vesting record occupies addr.
func (k Keeper) HasVestingAccount(ctx context.Context, addr sdk.AccAddress) (bool, error) {
	return k.vestingAccounts.Has(ctx, addr)
}

// VestingAccountAt loads the record at addr and checks that its company name
// and stored bump still derive addr.
func (k Keeper) VestingAccountAt(ctx context.Context, addr sdk.AccAddress) (types.VestingAccount, error) {
	va, found := k.GetVestingAccount(ctx, addr)
	if !found {
		return types.VestingAccount{}, errorsmod.Wrapf(types.ErrVestingAccountNotFound, "no vesting account at %s", addr)
	}
	if err := types.VerifyBump(types.VestingAccountSeeds(va.CompanyName), va.Bump, addr); err != nil {
		return types.VestingAccount{}, err
	}
	return va, nil
}

// VestingAccountByCompany resolves a company's vesting record by its canonical address.
func (k Keeper) VestingAccountByCompany(ctx context.Context, companyName string) (sdk.AccAddress, types.VestingAccount, error) {
	addr, _, err := types.FindProgramAddress(types.VestingAccountSeeds(companyName))
	if err != nil {
		return nil, types.VestingAccount{}, err
	}
	va, err := k.VestingAccountAt(ctx, addr)
	if err != nil {
		return nil, types.VestingAccount{}, err
	}
	return addr, va, nil
}

// GetAllVestingAccounts returns every stored vesting record in key order.
func (k Keeper) GetAllVestingAccounts(ctx context.Context) ([]types.VestingAccount, error) {
	iter, err := k.vestingAccounts.Iterate(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	return iter.Values()
}
