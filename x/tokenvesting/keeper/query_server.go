package keeper

import (
	"context"
	"errors"
	"math/big"

	"cosmossdk.io/collections"
	"cosmossdk.io/store/prefix"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/tokenvesting/x/tokenvesting/calculations"
	"github.com/productscience/tokenvesting/x/tokenvesting/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryParamsResponse{Params: k.GetParams(ctx)}, nil
}

func (k Keeper) VestingAccount(c context.Context, req *types.QueryVestingAccountRequest) (*types.QueryVestingAccountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if err := types.ValidateCompanyName(req.CompanyName); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	ctx := sdk.UnwrapSDKContext(c)

	addr, va, err := k.VestingAccountByCompany(ctx, req.CompanyName)
	if err != nil {
		return nil, toStatus(err)
	}

	return &types.QueryVestingAccountResponse{Address: addr.String(), VestingAccount: va}, nil
}

func (k Keeper) EmployeeAccount(c context.Context, req *types.QueryEmployeeAccountRequest) (*types.QueryEmployeeAccountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	addr, ea, err := k.lookupEmployeeAccount(ctx, req.Beneficiary, req.CompanyName)
	if err != nil {
		return nil, err
	}

	return &types.QueryEmployeeAccountResponse{Address: addr.String(), EmployeeAccount: ea}, nil
}

func (k Keeper) EmployeeAccounts(c context.Context, req *types.QueryEmployeeAccountsRequest) (*types.QueryEmployeeAccountsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if err := types.ValidateCompanyName(req.CompanyName); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	ctx := sdk.UnwrapSDKContext(c)

	vestingAddr, _, err := k.VestingAccountByCompany(ctx, req.CompanyName)
	if err != nil {
		return nil, toStatus(err)
	}

	indexPrefix, err := employeeIndexPrefix(vestingAddr)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	store := runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
	indexStore := prefix.NewStore(store, indexPrefix)

	var employees []types.EmployeeAccount
	pageRes, err := query.Paginate(indexStore, req.Pagination, func(key []byte, _ []byte) error {
		ea, found := k.GetEmployeeAccount(ctx, key)
		if !found {
			return errorsmod.Wrapf(types.ErrEmployeeAccountNotFound, "indexed employee account %s is missing", sdk.AccAddress(key))
		}
		employees = append(employees, ea)
		return nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryEmployeeAccountsResponse{EmployeeAccounts: employees, Pagination: pageRes}, nil
}

func (k Keeper) Claimable(c context.Context, req *types.QueryClaimableRequest) (*types.QueryClaimableResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	_, ea, err := k.lookupEmployeeAccount(ctx, req.Beneficiary, req.CompanyName)
	if err != nil {
		return nil, err
	}
	_, va, err := k.VestingAccountByCompany(ctx, req.CompanyName)
	if err != nil {
		return nil, toStatus(err)
	}

	now := ctx.BlockTime().Unix()
	state := calculations.StateAt(now, ea.StartTime, ea.EndTime, ea.CliffTime)

	var vested, claimable uint64
	if _, err := calculations.VestingDuration(ea.StartTime, ea.EndTime); err == nil && now >= ea.StartTime {
		vested, err = calculations.VestedAmount(now, ea.StartTime, ea.EndTime, ea.TotalAmount)
		if err != nil {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
	}
	if state != calculations.Ineligible {
		claimable = calculations.ClaimableAmount(vested, ea.TotalWithdrawn)
	}

	decimals, err := k.MintDecimals(ctx, va.Mint)
	if err != nil {
		return nil, toStatus(err)
	}

	return &types.QueryClaimableResponse{
		Time:             now,
		State:            state.String(),
		Vested:           vested,
		Withdrawn:        ea.TotalWithdrawn,
		Claimable:        claimable,
		Decimals:         decimals,
		ClaimableDisplay: displayAmount(claimable, decimals),
	}, nil
}

func (k Keeper) lookupEmployeeAccount(ctx context.Context, beneficiary string, companyName string) (sdk.AccAddress, types.EmployeeAccount, error) {
	beneficiaryAddr, err := sdk.AccAddressFromBech32(beneficiary)
	if err != nil {
		return nil, types.EmployeeAccount{}, status.Errorf(codes.InvalidArgument, "invalid beneficiary address: %s", err)
	}
	if err := types.ValidateCompanyName(companyName); err != nil {
		return nil, types.EmployeeAccount{}, status.Error(codes.InvalidArgument, err.Error())
	}
	vestingAddr, _, err := k.VestingAccountByCompany(ctx, companyName)
	if err != nil {
		return nil, types.EmployeeAccount{}, toStatus(err)
	}
	addr, ea, err := k.EmployeeAccountOf(ctx, beneficiaryAddr, vestingAddr)
	if err != nil {
		return nil, types.EmployeeAccount{}, toStatus(err)
	}
	return addr, ea, nil
}

// employeeIndexPrefix is the raw key prefix of every index entry under vestingAddr.
func employeeIndexPrefix(vestingAddr sdk.AccAddress) ([]byte, error) {
	keyCodec := collections.BytesKey
	encoded := make([]byte, keyCodec.SizeNonTerminal(vestingAddr))
	if _, err := keyCodec.EncodeNonTerminal(encoded, vestingAddr); err != nil {
		return nil, err
	}
	base := types.EmployeesByVestingPrefix.Bytes()
	out := make([]byte, 0, len(base)+len(encoded))
	out = append(out, base...)
	return append(out, encoded...), nil
}

// displayAmount renders amount in whole tokens of a mint with the given decimals.
func displayAmount(amount uint64, decimals uint32) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -int32(decimals)).StringFixed(int32(decimals))
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, types.ErrVestingAccountNotFound), errors.Is(err, types.ErrEmployeeAccountNotFound),
		errors.Is(err, types.ErrMintNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, types.ErrSeedsConstraintViolated):
		return status.Error(codes.DataLoss, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
