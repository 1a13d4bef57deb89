package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgClaimToken pays the beneficiary everything vested and not yet withdrawn.
type MsgClaimToken struct {
	Beneficiary string `json:"beneficiary"`
	CompanyName string `json:"company_name"`
}

type MsgClaimTokenResponse struct {
	Amount         uint64 `json:"amount"`
	TotalWithdrawn uint64 `json:"total_withdrawn"`
}

func NewMsgClaimToken(beneficiary string, companyName string) *MsgClaimToken {
	return &MsgClaimToken{Beneficiary: beneficiary, CompanyName: companyName}
}

func (msg *MsgClaimToken) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Beneficiary); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid beneficiary address (%s)", err)
	}
	return ValidateCompanyName(msg.CompanyName)
}

func (msg *MsgClaimToken) GetSigners() []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(msg.Beneficiary)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}
