package keeper

import (
	"context"
	"fmt"
	stdmath "math"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/tokenvesting/x/tokenvesting/calculations"
	"github.com/productscience/tokenvesting/x/tokenvesting/types"
)

// ClaimResult is the outcome of a successful claim.
type ClaimResult struct {
	VestingAccount  sdk.AccAddress
	EmployeeAccount sdk.AccAddress
	Treasury        sdk.AccAddress
	Amount          uint64
	TotalWithdrawn  uint64
}

// Claim pays beneficiary the vested, unwithdrawn part of its schedule under
// companyName as of now. It writes through ctx as it goes, so callers that
// need all-or-nothing semantics must pass a cache context and discard it on error.
func (k Keeper) Claim(ctx context.Context, beneficiary sdk.AccAddress, companyName string, now int64) (ClaimResult, error) {
	vestingAddr, va, err := k.VestingAccountByCompany(ctx, companyName)
	if err != nil {
		return ClaimResult{}, err
	}
	employeeAddr, ea, err := k.EmployeeAccountOf(ctx, beneficiary, vestingAddr)
	if err != nil {
		return ClaimResult{}, err
	}
	if !ea.Beneficiary.Equals(beneficiary) {
		return ClaimResult{}, errorsmod.Wrapf(types.ErrUnauthorized, "schedule belongs to %s, not %s", ea.Beneficiary, beneficiary)
	}
	if !ea.VestingAccount.Equals(vestingAddr) {
		return ClaimResult{}, errorsmod.Wrapf(types.ErrUnauthorized, "schedule is held under %s, not %s", ea.VestingAccount, vestingAddr)
	}
	authority, err := va.TreasuryAuthority()
	if err != nil {
		return ClaimResult{}, err
	}

	k.Logger().Debug("evaluating claim",
		"employee_account", employeeAddr.String(),
		"now", now,
		"start", ea.StartTime,
		"cliff", ea.CliffTime,
		"end", ea.EndTime,
		"total", ea.TotalAmount,
		"withdrawn", ea.TotalWithdrawn,
	)
	claimable, err := claimableAt(ea, now)
	if err != nil {
		return ClaimResult{}, err
	}

	decimals, err := k.MintDecimals(ctx, va.Mint)
	if err != nil {
		return ClaimResult{}, err
	}
	k.ensureAccount(ctx, beneficiary)
	err = k.TransferChecked(ctx, TransferRequest{
		From:      va.TreasuryTokenAccount,
		To:        beneficiary,
		Mint:      va.Mint,
		Amount:    claimable,
		Decimals:  decimals,
		Authority: authority,
		Memo:      fmt.Sprintf("vesting_claim:%s", companyName),
	})
	if err != nil {
		return ClaimResult{}, err
	}

	if ea.TotalWithdrawn > stdmath.MaxUint64-claimable {
		return ClaimResult{}, errorsmod.Wrapf(types.ErrCalculationOverflow, "withdrawn %d plus %d", ea.TotalWithdrawn, claimable)
	}
	ea.TotalWithdrawn += claimable
	if err := k.SetEmployeeAccount(ctx, employeeAddr, ea); err != nil {
		return ClaimResult{}, err
	}

	return ClaimResult{
		VestingAccount:  vestingAddr,
		EmployeeAccount: employeeAddr,
		Treasury:        va.TreasuryTokenAccount,
		Amount:          claimable,
		TotalWithdrawn:  ea.TotalWithdrawn,
	}, nil
}

// claimableAt applies the claim gates in order: cliff, period sanity, start,
// then a positive unwithdrawn remainder.
func claimableAt(ea types.EmployeeAccount, now int64) (uint64, error) {
	if now < ea.CliffTime {
		return 0, errorsmod.Wrapf(types.ErrClaimNotAvailableYet, "cliff at %d, now %d", ea.CliffTime, now)
	}
	if _, err := calculations.VestingDuration(ea.StartTime, ea.EndTime); err != nil {
		return 0, err
	}
	if now < ea.StartTime {
		return 0, errorsmod.Wrapf(types.ErrNothingToClaim, "vesting starts at %d, now %d", ea.StartTime, now)
	}
	vested, err := calculations.VestedAmount(now, ea.StartTime, ea.EndTime, ea.TotalAmount)
	if err != nil {
		return 0, err
	}
	claimable := calculations.ClaimableAmount(vested, ea.TotalWithdrawn)
	if claimable == 0 {
		return 0, errorsmod.Wrapf(types.ErrNothingToClaim, "vested %d, already withdrawn %d", vested, ea.TotalWithdrawn)
	}
	return claimable, nil
}
