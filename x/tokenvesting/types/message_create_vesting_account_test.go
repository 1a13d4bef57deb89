package types

import (
	"strings"
	"testing"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"github.com/productscience/tokenvesting/testutil/sample"
)

func TestMsgCreateVestingAccount_ValidateBasic(t *testing.T) {
	tests := []struct {
		name string
		msg  MsgCreateVestingAccount
		err  error
	}{
		{
			name: "invalid address",
			msg: MsgCreateVestingAccount{
				Signer:      "invalid_address",
				CompanyName: "acme",
				Mint:        "uvest",
			},
			err: sdkerrors.ErrInvalidAddress,
		}, {
			name: "empty company name",
			msg: MsgCreateVestingAccount{
				Signer: sample.AccAddress(),
				Mint:   "uvest",
			},
			err: ErrInvalidCompanyName,
		}, {
			name: "company name too long",
			msg: MsgCreateVestingAccount{
				Signer:      sample.AccAddress(),
				CompanyName: strings.Repeat("a", MaxCompanyNameLength+1),
				Mint:        "uvest",
			},
			err: ErrInvalidCompanyName,
		}, {
			name: "invalid mint",
			msg: MsgCreateVestingAccount{
				Signer:      sample.AccAddress(),
				CompanyName: "acme",
				Mint:        "1!",
			},
			err: sdkerrors.ErrInvalidRequest,
		}, {
			name: "valid",
			msg: MsgCreateVestingAccount{
				Signer:      sample.AccAddress(),
				CompanyName: strings.Repeat("a", MaxCompanyNameLength),
				Mint:        "uvest",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
		})
	}
}
