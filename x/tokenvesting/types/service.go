package types

import "context"

// MsgServer is the transaction surface of the module.
type MsgServer interface {
	CreateVestingAccount(context.Context, *MsgCreateVestingAccount) (*MsgCreateVestingAccountResponse, error)
	CreateEmployeeAccount(context.Context, *MsgCreateEmployeeAccount) (*MsgCreateEmployeeAccountResponse, error)
	DepositTreasury(context.Context, *MsgDepositTreasury) (*MsgDepositTreasuryResponse, error)
	ClaimToken(context.Context, *MsgClaimToken) (*MsgClaimTokenResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// QueryServer is the read surface of the module.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	VestingAccount(context.Context, *QueryVestingAccountRequest) (*QueryVestingAccountResponse, error)
	EmployeeAccount(context.Context, *QueryEmployeeAccountRequest) (*QueryEmployeeAccountResponse, error)
	EmployeeAccounts(context.Context, *QueryEmployeeAccountsRequest) (*QueryEmployeeAccountsResponse, error)
	Claimable(context.Context, *QueryClaimableRequest) (*QueryClaimableResponse, error)
}
