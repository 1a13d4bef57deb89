package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/tokenvesting/x/tokenvesting/types"
)

func (k msgServer) CreateEmployeeAccount(goCtx context.Context, msg *types.MsgCreateEmployeeAccount) (*types.MsgCreateEmployeeAccountResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	owner, _ := sdk.AccAddressFromBech32(msg.Owner)
	beneficiary, _ := sdk.AccAddressFromBech32(msg.Beneficiary)
	vestingAddr, _ := sdk.AccAddressFromBech32(msg.VestingAccount)

	va, err := k.VestingAccountAt(ctx, vestingAddr)
	if err != nil {
		return nil, err
	}
	if !va.Owner.Equals(owner) {
		return nil, errorsmod.Wrapf(types.ErrUnauthorized, "%s does not own vesting account %q", owner, va.CompanyName)
	}

	ea := types.EmployeeAccount{
		Beneficiary:    beneficiary,
		StartTime:      msg.StartTime,
		EndTime:        msg.EndTime,
		CliffTime:      msg.CliffTime,
		VestingAccount: vestingAddr,
		TotalAmount:    msg.TotalAmount,
		TotalWithdrawn: 0,
	}
	if k.GetParams(ctx).EnforceScheduleOrder {
		if err := ea.ValidateOrder(); err != nil {
			return nil, err
		}
	}

	employeeAddr, bump, err := types.FindProgramAddress(types.EmployeeAccountSeeds(beneficiary, vestingAddr))
	if err != nil {
		return nil, err
	}
	if _, found := k.GetEmployeeAccount(ctx, employeeAddr); found {
		return nil, errorsmod.Wrapf(types.ErrAccountAlreadyExists, "employee account for %s under %q already exists", beneficiary, va.CompanyName)
	}
	ea.Bump = bump

	if err := k.SetEmployeeAccount(ctx, employeeAddr, ea); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeCreateEmployeeAccount,
			sdk.NewAttribute(types.AttributeKeyCompanyName, va.CompanyName),
			sdk.NewAttribute(types.AttributeKeyBeneficiary, msg.Beneficiary),
			sdk.NewAttribute(types.AttributeKeyEmployeeAccount, employeeAddr.String()),
			sdk.NewAttribute(types.AttributeKeyStartTime, strconv.FormatInt(msg.StartTime, 10)),
			sdk.NewAttribute(types.AttributeKeyEndTime, strconv.FormatInt(msg.EndTime, 10)),
			sdk.NewAttribute(types.AttributeKeyCliffTime, strconv.FormatInt(msg.CliffTime, 10)),
			sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(msg.TotalAmount, 10)),
		),
	})

	k.Logger().Info("employee account created",
		"company", va.CompanyName,
		"beneficiary", msg.Beneficiary,
		"employee_account", employeeAddr.String(),
		"total_amount", msg.TotalAmount,
	)

	return &types.MsgCreateEmployeeAccountResponse{EmployeeAccount: employeeAddr.String()}, nil
}
