package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/tokenvesting/x/tokenvesting/types"
)

func (k msgServer) DepositTreasury(goCtx context.Context, msg *types.MsgDepositTreasury) (*types.MsgDepositTreasuryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	depositor, _ := sdk.AccAddressFromBech32(msg.Depositor)

	_, va, err := k.VestingAccountByCompany(ctx, msg.CompanyName)
	if err != nil {
		return nil, err
	}

	coins := sdk.NewCoins(sdk.NewCoin(va.Mint, math.NewIntFromUint64(msg.Amount)))
	if err := k.bankKeeper.SendCoins(ctx, depositor, va.TreasuryTokenAccount, coins); err != nil {
		return nil, errorsmod.Wrapf(err, "failed to fund treasury of %q", msg.CompanyName)
	}
	k.logTransaction(va.TreasuryTokenAccount.String(), msg.Depositor, va.Mint, msg.Amount, "vesting_deposit:"+msg.CompanyName)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeDepositTreasury,
			sdk.NewAttribute(types.AttributeKeyCompanyName, msg.CompanyName),
			sdk.NewAttribute(types.AttributeKeyDepositor, msg.Depositor),
			sdk.NewAttribute(types.AttributeKeyTreasury, va.TreasuryTokenAccount.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(msg.Amount, 10)),
		),
	})

	return &types.MsgDepositTreasuryResponse{TreasuryTokenAccount: va.TreasuryTokenAccount.String()}, nil
}
