package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/tokenvesting/x/tokenvesting/types"
)

// SetEmployeeAccount stores a schedule under its derived address and indexes
// it under its vesting record.
func (k Keeper) SetEmployeeAccount(ctx context.Context, addr sdk.AccAddress, ea types.EmployeeAccount) error {
	if err := k.employeeAccounts.Set(ctx, addr, ea); err != nil {
		return err
	}
	return k.employeesByVesting.Set(ctx, collections.Join([]byte(ea.VestingAccount), []byte(addr)))
}

// GetEmployeeAccount returns the schedule stored at addr.
func (k Keeper) GetEmployeeAccount(ctx context.Context, addr sdk.AccAddress) (types.EmployeeAccount, bool) {
	ea, err := k.employeeAccounts.Get(ctx, addr)
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			k.Logger().Error("failed to read employee account", "address", addr.String(), "error", err)
		}
		return types.EmployeeAccount{}, false
	}
	return ea, true
}

// EmployeeAccountOf resolves the schedule of beneficiary under vestingAddr and
// checks that its stored relations and bump derive the address it was found at.
func (k Keeper) EmployeeAccountOf(ctx context.Context, beneficiary, vestingAddr sdk.AccAddress) (sdk.AccAddress, types.EmployeeAccount, error) {
	addr, _, err := types.FindProgramAddress(types.EmployeeAccountSeeds(beneficiary, vestingAddr))
	if err != nil {
		return nil, types.EmployeeAccount{}, err
	}
	ea, found := k.GetEmployeeAccount(ctx, addr)
	if !found {
		return nil, types.EmployeeAccount{}, errorsmod.Wrapf(types.ErrEmployeeAccountNotFound,
			"no employee account for %s under %s", beneficiary, vestingAddr)
	}
	if err := types.VerifyBump(types.EmployeeAccountSeeds(ea.Beneficiary, ea.VestingAccount), ea.Bump, addr); err != nil {
		return nil, types.EmployeeAccount{}, err
	}
	return addr, ea, nil
}

// GetAllEmployeeAccounts returns every stored schedule in key order.
func (k Keeper) GetAllEmployeeAccounts(ctx context.Context) ([]types.EmployeeAccount, error) {
	iter, err := k.employeeAccounts.Iterate(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	return iter.Values()
}

// EmployeeAccountAddresses lists the schedule addresses indexed under vestingAddr.
func (k Keeper) EmployeeAccountAddresses(ctx context.Context, vestingAddr sdk.AccAddress) ([]sdk.AccAddress, error) {
	rng := collections.NewPrefixedPairRange[[]byte, []byte](vestingAddr)
	iter, err := k.employeesByVesting.Iterate(ctx, rng)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	keys, err := iter.Keys()
	if err != nil {
		return nil, err
	}
	addrs := make([]sdk.AccAddress, 0, len(keys))
	for _, key := range keys {
		addrs = append(addrs, sdk.AccAddress(key.K2()))
	}
	return addrs, nil
}
