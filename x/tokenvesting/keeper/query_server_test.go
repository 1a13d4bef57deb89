package keeper_test

import (
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/productscience/tokenvesting/testutil/sample"
	"github.com/productscience/tokenvesting/x/tokenvesting/types"
)

func (suite *KeeperTestSuite) TestQueryParams() {
	resp, err := suite.keeper.Params(suite.ctx, &types.QueryParamsRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(types.DefaultParams(), resp.Params)

	_, err = suite.keeper.Params(suite.ctx, nil)
	suite.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (suite *KeeperTestSuite) TestQueryVestingAccount() {
	suite.createVestingAccount(0)

	resp, err := suite.keeper.VestingAccount(suite.ctx, &types.QueryVestingAccountRequest{CompanyName: testCompany})
	suite.Require().NoError(err)
	suite.Require().Equal(suite.vestingAddr.String(), resp.Address)
	suite.Require().Equal(suite.owner, resp.VestingAccount.Owner)

	_, err = suite.keeper.VestingAccount(suite.ctx, &types.QueryVestingAccountRequest{CompanyName: "nobody"})
	suite.Require().Equal(codes.NotFound, status.Code(err))

	_, err = suite.keeper.VestingAccount(suite.ctx, &types.QueryVestingAccountRequest{})
	suite.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (suite *KeeperTestSuite) TestQueryEmployeeAccount() {
	suite.createVestingAccount(0)
	employeeAddr := suite.createEmployeeAccount(suite.beneficiary, 0, 1000, 100, 1000)

	resp, err := suite.keeper.EmployeeAccount(suite.ctx, &types.QueryEmployeeAccountRequest{
		Beneficiary: suite.beneficiary.String(),
		CompanyName: testCompany,
	})
	suite.Require().NoError(err)
	suite.Require().Equal(employeeAddr.String(), resp.Address)
	suite.Require().Equal(uint64(1000), resp.EmployeeAccount.TotalAmount)

	_, err = suite.keeper.EmployeeAccount(suite.ctx, &types.QueryEmployeeAccountRequest{
		Beneficiary: sample.AccAddress(),
		CompanyName: testCompany,
	})
	suite.Require().Equal(codes.NotFound, status.Code(err))

	_, err = suite.keeper.EmployeeAccount(suite.ctx, &types.QueryEmployeeAccountRequest{
		Beneficiary: "invalid_address",
		CompanyName: testCompany,
	})
	suite.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (suite *KeeperTestSuite) TestQueryEmployeeAccounts() {
	suite.createVestingAccount(0)
	for i := 0; i < 5; i++ {
		suite.createEmployeeAccount(sample.Address(), 0, 1000, 100, uint64(100*(i+1)))
	}

	// schedules of another company stay out of the listing
	other := sample.Address()
	_, err := suite.msgServer.CreateVestingAccount(suite.ctx, types.NewMsgCreateVestingAccount(other.String(), "globex", testMint))
	suite.Require().NoError(err)
	otherVesting, _, err := types.FindProgramAddress(types.VestingAccountSeeds("globex"))
	suite.Require().NoError(err)
	_, err = suite.msgServer.CreateEmployeeAccount(suite.ctx, types.NewMsgCreateEmployeeAccount(
		other.String(), sample.AccAddress(), otherVesting.String(), 0, 1000, 100, 1000))
	suite.Require().NoError(err)

	seen := map[string]struct{}{}
	var nextKey []byte
	for page := 0; page < 3; page++ {
		resp, err := suite.keeper.EmployeeAccounts(suite.ctx, &types.QueryEmployeeAccountsRequest{
			CompanyName: testCompany,
			Pagination:  &query.PageRequest{Key: nextKey, Limit: 2, CountTotal: page == 0},
		})
		suite.Require().NoError(err)
		if page == 0 {
			suite.Require().Equal(uint64(5), resp.Pagination.Total)
		}
		for _, ea := range resp.EmployeeAccounts {
			suite.Require().Equal(suite.vestingAddr, ea.VestingAccount)
			seen[ea.Beneficiary.String()] = struct{}{}
		}
		nextKey = resp.Pagination.NextKey
	}
	suite.Require().Len(seen, 5)
	suite.Require().Nil(nextKey)
}

func (suite *KeeperTestSuite) TestQueryClaimable() {
	suite.createVestingAccount(1000)
	suite.createEmployeeAccount(suite.beneficiary, 0, 1000, 100, 1000)
	req := &types.QueryClaimableRequest{Beneficiary: suite.beneficiary.String(), CompanyName: testCompany}

	resp, err := suite.keeper.Claimable(suite.at(50), req)
	suite.Require().NoError(err)
	suite.Require().Equal("ineligible", resp.State)
	suite.Require().Equal(uint64(50), resp.Vested)
	suite.Require().Equal(uint64(0), resp.Claimable)

	resp, err = suite.keeper.Claimable(suite.at(500), req)
	suite.Require().NoError(err)
	suite.Require().Equal("partially_vested", resp.State)
	suite.Require().Equal(int64(500), resp.Time)
	suite.Require().Equal(uint64(500), resp.Vested)
	suite.Require().Equal(uint64(500), resp.Claimable)
	suite.Require().Equal(uint32(6), resp.Decimals)
	suite.Require().Equal("0.000500", resp.ClaimableDisplay)

	_, err = suite.claim(500)
	suite.Require().NoError(err)

	resp, err = suite.keeper.Claimable(suite.at(2000), req)
	suite.Require().NoError(err)
	suite.Require().Equal("fully_vested", resp.State)
	suite.Require().Equal(uint64(1000), resp.Vested)
	suite.Require().Equal(uint64(500), resp.Withdrawn)
	suite.Require().Equal(uint64(500), resp.Claimable)
}
