package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/tokenvesting/x/tokenvesting/types"
)

func (k msgServer) CreateVestingAccount(goCtx context.Context, msg *types.MsgCreateVestingAccount) (*types.MsgCreateVestingAccountResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	owner, _ := sdk.AccAddressFromBech32(msg.Signer)

	if _, err := k.MintDecimals(ctx, msg.Mint); err != nil {
		return nil, err
	}

	vestingAddr, bump, err := types.FindProgramAddress(types.VestingAccountSeeds(msg.CompanyName))
	if err != nil {
		return nil, err
	}
	exists, err := k.HasVestingAccount(ctx, vestingAddr)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errorsmod.Wrapf(types.ErrAccountAlreadyExists, "vesting account for %q already exists at %s", msg.CompanyName, vestingAddr)
	}

	treasuryAddr, treasuryBump, err := types.FindProgramAddress(types.TreasurySeeds(msg.CompanyName))
	if err != nil {
		return nil, err
	}
	k.ensureAccount(ctx, treasuryAddr)

	va := types.VestingAccount{
		CompanyName:          msg.CompanyName,
		Owner:                owner,
		Mint:                 msg.Mint,
		TreasuryTokenAccount: treasuryAddr,
		TreasuryBump:         treasuryBump,
		Bump:                 bump,
	}
	if err := k.SetVestingAccount(ctx, vestingAddr, va); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeCreateVestingAccount,
			sdk.NewAttribute(types.AttributeKeyCompanyName, msg.CompanyName),
			sdk.NewAttribute(types.AttributeKeyOwner, msg.Signer),
			sdk.NewAttribute(types.AttributeKeyMint, msg.Mint),
			sdk.NewAttribute(types.AttributeKeyVestingAccount, vestingAddr.String()),
			sdk.NewAttribute(types.AttributeKeyTreasury, treasuryAddr.String()),
		),
	})

	k.Logger().Info("vesting account created",
		"company", msg.CompanyName,
		"owner", msg.Signer,
		"vesting_account", vestingAddr.String(),
		"treasury", treasuryAddr.String(),
		"bump", bump,
	)

	return &types.MsgCreateVestingAccountResponse{
		VestingAccount:       vestingAddr.String(),
		TreasuryTokenAccount: treasuryAddr.String(),
	}, nil
}
