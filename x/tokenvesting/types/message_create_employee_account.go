package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgCreateEmployeeAccount adds a beneficiary schedule under a vesting record.
// The time triple is not ordered here; see Params.EnforceScheduleOrder.
type MsgCreateEmployeeAccount struct {
	Owner          string `json:"owner"`
	Beneficiary    string `json:"beneficiary"`
	VestingAccount string `json:"vesting_account"`
	StartTime      int64  `json:"start_time"`
	EndTime        int64  `json:"end_time"`
	CliffTime      int64  `json:"cliff_time"`
	TotalAmount    uint64 `json:"total_amount"`
}

type MsgCreateEmployeeAccountResponse struct {
	EmployeeAccount string `json:"employee_account"`
}

func NewMsgCreateEmployeeAccount(owner, beneficiary, vestingAccount string, startTime, endTime, cliffTime int64, totalAmount uint64) *MsgCreateEmployeeAccount {
	return &MsgCreateEmployeeAccount{
		Owner:          owner,
		Beneficiary:    beneficiary,
		VestingAccount: vestingAccount,
		StartTime:      startTime,
		EndTime:        endTime,
		CliffTime:      cliffTime,
		TotalAmount:    totalAmount,
	}
}

func (msg *MsgCreateEmployeeAccount) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid owner address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Beneficiary); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid beneficiary address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.VestingAccount); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid vesting account address (%s)", err)
	}
	return nil
}

func (msg *MsgCreateEmployeeAccount) GetSigners() []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}
