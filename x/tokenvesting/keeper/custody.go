package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/tokenvesting/x/tokenvesting/types"
)

// TransferRequest moves Amount of Mint out of a module-owned custody account.
// Decimals must match the mint's registered display exponent.
type TransferRequest struct {
	From      sdk.AccAddress
	To        sdk.AccAddress
	Mint      string
	Amount    uint64
	Decimals  uint32
	Authority types.Authority
	Memo      string
}

// TransferChecked performs a decimals-checked transfer signed by a derived
// authority. Nothing is moved unless the authority signs for From, the mint
// is registered with the expected decimals and the custody balance covers Amount.
func (k Keeper) TransferChecked(ctx context.Context, req TransferRequest) error {
	if err := req.Authority.Verify(req.From); err != nil {
		return err
	}

	decimals, err := k.MintDecimals(ctx, req.Mint)
	if err != nil {
		return err
	}
	if decimals != req.Decimals {
		return errorsmod.Wrapf(types.ErrMintMismatch, "mint %s has %d decimals, transfer expects %d", req.Mint, decimals, req.Decimals)
	}

	amount := math.NewIntFromUint64(req.Amount)
	spendable := k.bankKeeper.SpendableCoin(ctx, req.From, req.Mint)
	if spendable.Amount.LT(amount) {
		return errorsmod.Wrapf(types.ErrInsufficientCustodyBalance, "custody %s holds %s, need %s%s",
			req.From, spendable, amount, req.Mint)
	}

	coins := sdk.NewCoins(sdk.NewCoin(req.Mint, amount))
	if err := k.bankKeeper.SendCoins(ctx, req.From, req.To, coins); err != nil {
		k.Logger().Error("custody transfer failed", "from", req.From.String(), "to", req.To.String(), "amount", req.Amount, "denom", req.Mint, "error", err)
		return errorsmod.Wrapf(err, "transfer from custody %s", req.From)
	}
	k.logTransaction(req.To.String(), req.From.String(), req.Mint, req.Amount, req.Memo)
	return nil
}

// MintDecimals reads the decimals of a registered mint.
func (k Keeper) MintDecimals(ctx context.Context, mint string) (uint32, error) {
	md, found := k.bankKeeper.GetDenomMetaData(ctx, mint)
	if !found {
		return 0, errorsmod.Wrapf(types.ErrMintNotFound, "mint %s has no metadata", mint)
	}
	return types.MintDecimals(md), nil
}

// ensureAccount provisions addr in the account keeper when it does not exist yet.
func (k Keeper) ensureAccount(ctx context.Context, addr sdk.AccAddress) {
	if k.accountKeeper.HasAccount(ctx, addr) {
		return
	}
	acc := k.accountKeeper.NewAccountWithAddress(ctx, addr)
	k.accountKeeper.SetAccount(ctx, acc)
	k.Logger().Info("Provisioned account", "address", addr.String())
}

func (k Keeper) logTransaction(to string, from string, mint string, amount uint64, memo string) {
	k.Logger().Info("TransactionAudit", "type", "debit", "account", to, "counteraccount", from, "amount", amount, "denom", mint, "memo", memo)
	k.Logger().Info("TransactionAudit", "type", "credit", "account", from, "counteraccount", to, "amount", amount, "denom", mint, "memo", memo)
}
