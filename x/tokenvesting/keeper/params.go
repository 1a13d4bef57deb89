package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/productscience/tokenvesting/x/tokenvesting/types"
)

// GetParams get all parameters as types.Params
func (k Keeper) GetParams(ctx context.Context) types.Params {
	params, err := k.params.Get(ctx)
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			k.Logger().Error("failed to read params", "error", err)
		}
		return types.DefaultParams()
	}
	return params
}

// SetParams set the params
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return errorsmod.Wrapf(err, "invalid parameters")
	}
	if err := k.params.Set(ctx, params); err != nil {
		return errorsmod.Wrapf(err, "failed to store parameters")
	}

	k.Logger().Info(
		"module parameters updated",
		"enforce_schedule_order", params.EnforceScheduleOrder,
	)

	return nil
}
