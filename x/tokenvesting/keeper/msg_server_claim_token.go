package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/tokenvesting/x/tokenvesting/types"
)

func (k msgServer) ClaimToken(goCtx context.Context, msg *types.MsgClaimToken) (*types.MsgClaimTokenResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	beneficiary, _ := sdk.AccAddressFromBech32(msg.Beneficiary)

	cacheCtx, write := ctx.CacheContext()
	result, err := k.Claim(cacheCtx, beneficiary, msg.CompanyName, ctx.BlockTime().Unix())
	if err != nil {
		k.Logger().Info("claim rejected",
			"beneficiary", msg.Beneficiary,
			"company", msg.CompanyName,
			"error", err,
		)
		return nil, err
	}
	write()

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeClaimToken,
			sdk.NewAttribute(types.AttributeKeyCompanyName, msg.CompanyName),
			sdk.NewAttribute(types.AttributeKeyBeneficiary, msg.Beneficiary),
			sdk.NewAttribute(types.AttributeKeyEmployeeAccount, result.EmployeeAccount.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(result.Amount, 10)),
			sdk.NewAttribute(types.AttributeKeyTotalWithdrawn, strconv.FormatUint(result.TotalWithdrawn, 10)),
		),
	})

	k.Logger().Info("tokens claimed",
		"beneficiary", msg.Beneficiary,
		"company", msg.CompanyName,
		"amount", result.Amount,
		"total_withdrawn", result.TotalWithdrawn,
	)

	return &types.MsgClaimTokenResponse{
		Amount:         result.Amount,
		TotalWithdrawn: result.TotalWithdrawn,
	}, nil
}
