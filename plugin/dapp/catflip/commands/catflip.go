// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"math"
	"os"

	"github.com/33cn/chain33/rpc/jsonclient"
	rpctypes "github.com/33cn/chain33/rpc/types"
	"github.com/33cn/chain33/types"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd catflip client command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catflip",
		Short: "Catflip wagering game management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		InitializeCmd(),
		FundVaultCmd(),
		BetCmd(),
		FulfillCmd(),
		RefundCmd(),
		PauseCmd(),
		LimitsCmd(),
		EdgeCmd(),
		OracleCmd(),
		VaultCmd(),
		RoundCmd(),
		RoundsCmd(),
		LayoutCmd(),
	)
	return cmd
}

// InitializeCmd 创建金库
func InitializeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the house vault, signer becomes the authority",
		Run:   initialize,
	}
	cmd.Flags().StringP("profile", "p", "", "house profile toml file")
	cmd.Flags().StringP("min", "m", "", "minimum bet in coins")
	cmd.Flags().Int32P("exposure", "e", 0, "max exposure per bet in basis points")
	cmd.Flags().Int32P("edge", "g", 0, "house edge in basis points")
	cmd.Flags().StringP("oracle", "o", "", "hex encoded secp256k1 VRF oracle public key")
	return cmd
}

func initialize(cmd *cobra.Command, args []string) {
	profilePath, _ := cmd.Flags().GetString("profile")
	profile := &HouseProfile{}
	if profilePath != "" {
		var err error
		profile, err = LoadHouseProfile(profilePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
	}
	if cmd.Flags().Changed("min") {
		profile.MinBet, _ = cmd.Flags().GetString("min")
	}
	if cmd.Flags().Changed("exposure") {
		profile.MaxExposureBps, _ = cmd.Flags().GetInt32("exposure")
	}
	if cmd.Flags().Changed("edge") {
		profile.HouseEdgeBps, _ = cmd.Flags().GetInt32("edge")
	}
	if cmd.Flags().Changed("oracle") {
		profile.OraclePubKey, _ = cmd.Flags().GetString("oracle")
	}
	payload, err := profile.Payload()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	createTx(cmd, ct.NameInitializeAction, payload)
}

// FundVaultCmd 庄家注资
func FundVaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund",
		Short: "Move coins from the catflip exec account into the vault",
		Run:   fundVault,
	}
	cmd.Flags().StringP("amount", "a", "", "amount in coins")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func fundVault(cmd *cobra.Command, args []string) {
	amount, ok := amountFlag(cmd)
	if !ok {
		return
	}
	createTx(cmd, ct.NameFundVaultAction, &ct.CatflipFundVault{Amount: amount})
}

// BetCmd 下注
func BetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bet",
		Short: "Place a bet, the round stays pending until the oracle answers",
		Run:   bet,
	}
	cmd.Flags().StringP("amount", "a", "", "stake in coins")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func bet(cmd *cobra.Command, args []string) {
	amount, ok := amountFlag(cmd)
	if !ok {
		return
	}
	createTx(cmd, ct.NameBetAction, &ct.CatflipBet{Amount: amount})
}

// FulfillCmd 提交 vrf 证明开奖
func FulfillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fulfill",
		Short: "Settle a pending round with a VRF proof",
		Run:   fulfill,
	}
	cmd.Flags().StringP("round", "r", "", "round id")
	cmd.MarkFlagRequired("round")
	cmd.Flags().StringP("proof", "f", "", "hex encoded VRF proof")
	cmd.MarkFlagRequired("proof")
	return cmd
}

func fulfill(cmd *cobra.Command, args []string) {
	roundID, _ := cmd.Flags().GetString("round")
	proof, _ := cmd.Flags().GetString("proof")
	createTx(cmd, ct.NameFulfillRandomnessAction, &ct.CatflipFulfillRandomness{RoundId: roundID, Proof: proof})
}

// RefundCmd 超时退款
func RefundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refund",
		Short: "Refund a round the oracle never answered",
		Run:   refund,
	}
	cmd.Flags().StringP("round", "r", "", "round id")
	cmd.MarkFlagRequired("round")
	return cmd
}

func refund(cmd *cobra.Command, args []string) {
	roundID, _ := cmd.Flags().GetString("round")
	createTx(cmd, ct.NameRefundTimeoutAction, &ct.CatflipRefundTimeout{RoundId: roundID})
}

// PauseCmd 暂停/恢复
func PauseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pause",
		Short: "Pause or resume betting",
		Run:   pause,
	}
	cmd.Flags().BoolP("resume", "r", false, "resume instead of pause")
	return cmd
}

func pause(cmd *cobra.Command, args []string) {
	resume, _ := cmd.Flags().GetBool("resume")
	createTx(cmd, ct.NameSetPauseAction, &ct.CatflipSetPause{IsPaused: !resume})
}

// LimitsCmd 调整限额
func LimitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Update minimum bet and max exposure",
		Run:   limits,
	}
	cmd.Flags().StringP("min", "m", "", "minimum bet in coins")
	cmd.MarkFlagRequired("min")
	cmd.Flags().Int32P("exposure", "e", 0, "max exposure per bet in basis points")
	cmd.MarkFlagRequired("exposure")
	return cmd
}

func limits(cmd *cobra.Command, args []string) {
	minStr, _ := cmd.Flags().GetString("min")
	exposure, _ := cmd.Flags().GetInt32("exposure")
	minBet, err := ParseCoins(minStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	createTx(cmd, ct.NameSetLimitsAction, &ct.CatflipSetLimits{MinBet: minBet, MaxExposureBps: exposure})
}

// EdgeCmd 调整抽水
func EdgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edge",
		Short: "Update the house edge",
		Run:   edge,
	}
	cmd.Flags().Int32P("bps", "b", 0, "house edge in basis points")
	cmd.MarkFlagRequired("bps")
	return cmd
}

func edge(cmd *cobra.Command, args []string) {
	bps, _ := cmd.Flags().GetInt32("bps")
	createTx(cmd, ct.NameSetEdgeAction, &ct.CatflipSetEdge{HouseEdgeBps: bps})
}

// OracleCmd 更换预言机公钥
func OracleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oracle",
		Short: "Rotate the oracle VRF public key",
		Run:   oracle,
	}
	cmd.Flags().StringP("key", "k", "", "hex encoded secp256k1 VRF public key")
	cmd.MarkFlagRequired("key")
	return cmd
}

func oracle(cmd *cobra.Command, args []string) {
	key, _ := cmd.Flags().GetString("key")
	createTx(cmd, ct.NameSetOracleAction, &ct.CatflipSetOracle{OraclePubKey: key})
}

// VaultCmd 查询金库
func VaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vault",
		Short: "Show the vault and its available balance",
		Run:   showVault,
	}
}

func showVault(cmd *cobra.Command, args []string) {
	var res ct.ReplyCatflipVault
	query(cmd, ct.FuncNameGetVault, &types.ReqNil{}, &res)
}

// RoundCmd 查询单局
func RoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Show a bet round by id",
		Run:   showRound,
	}
	cmd.Flags().StringP("round", "r", "", "round id")
	cmd.MarkFlagRequired("round")
	cmd.Flags().BoolP("layout", "l", false, "dump the fixed width round account image instead")
	return cmd
}

func showRound(cmd *cobra.Command, args []string) {
	roundID, _ := cmd.Flags().GetString("round")
	req := &ct.ReqCatflipRound{RoundId: roundID}
	layout, _ := cmd.Flags().GetBool("layout")
	if layout {
		var res ct.ReplyCatflipLayout
		queryWithCb(cmd, ct.FuncNameGetBetRoundLayout, req, &res, layoutCb(BetRoundFields))
		return
	}
	var res ct.BetRound
	query(cmd, ct.FuncNameGetBetRound, req, &res)
}

// RoundsCmd 按状态列出
func RoundsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rounds",
		Short: "List rounds by status, optionally filtered by player",
		Run:   listRounds,
	}
	cmd.Flags().Int32P("status", "s", ct.RoundStatusPending, "1:pending 2:won 3:lost 4:refunded")
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.Flags().Int64P("index", "i", 0, "start index, 0 for the first page")
	cmd.Flags().Int32P("count", "c", 0, "page size")
	cmd.Flags().Int32P("direction", "d", 0, "0:desc 1:asc")
	return cmd
}

func listRounds(cmd *cobra.Command, args []string) {
	status, _ := cmd.Flags().GetInt32("status")
	addr, _ := cmd.Flags().GetString("addr")
	index, _ := cmd.Flags().GetInt64("index")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	req := &ct.ReqCatflipRoundList{
		Player:    addr,
		Status:    status,
		Index:     index,
		Count:     count,
		Direction: direction,
	}
	var res ct.ReplyCatflipRoundList
	query(cmd, ct.FuncNameListBetRounds, req, &res)
}

// LayoutCmd 金库定长布局
func LayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Dump the fixed width vault account image",
		Run:   showLayout,
	}
}

func showLayout(cmd *cobra.Command, args []string) {
	var res ct.ReplyCatflipLayout
	queryWithCb(cmd, ct.FuncNameGetVaultLayout, &types.ReqNil{}, &res, layoutCb(VaultFields))
}

func execName(cmd *cobra.Command) string {
	paraName, _ := cmd.Flags().GetString("paraName")
	return paraName + ct.CatflipX
}

func createTx(cmd *cobra.Command, action string, payload types.Message) {
	params := &rpctypes.CreateTxIn{
		Execer:     execName(cmd),
		ActionName: action,
		Payload:    types.MustPBToJSON(payload),
	}
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, nil)
	ctx.RunWithoutMarshal()
}

func query(cmd *cobra.Command, funcName string, req types.Message, res interface{}) {
	queryWithCb(cmd, funcName, req, res, nil)
}

func queryWithCb(cmd *cobra.Command, funcName string, req types.Message, res interface{}, cb jsonclient.Callback) {
	params := rpctypes.Query4Jrpc{
		Execer:   execName(cmd),
		FuncName: funcName,
		Payload:  types.MustPBToJSON(req),
	}
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, res)
	if cb != nil {
		ctx.SetResultCb(cb)
	}
	ctx.Run()
}

func layoutCb(decode LayoutDecoder) jsonclient.Callback {
	return func(res interface{}) (interface{}, error) {
		return ParseLayout(res.(*ct.ReplyCatflipLayout).GetData(), decode)
	}
}

func amountFlag(cmd *cobra.Command) (int64, bool) {
	s, _ := cmd.Flags().GetString("amount")
	amount, err := ParseCoins(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 0, false
	}
	return amount, true
}

var (
	coinPrecision = decimal.NewFromInt(ct.CoinPrecision)
	maxUnits      = decimal.NewFromInt(math.MaxInt64)
)

// ParseCoins 把以币为单位的十进制字符串换算成最小单位，不允许截断
func ParseCoins(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(types.ErrAmount, "parse %q: %v", s, err)
	}
	if d.Sign() <= 0 {
		return 0, errors.Wrapf(types.ErrAmount, "amount %s must be positive", s)
	}
	units := d.Mul(coinPrecision)
	if !units.Equal(units.Truncate(0)) {
		return 0, errors.Wrapf(types.ErrAmount, "amount %s has more than 8 decimals", s)
	}
	if units.GreaterThan(maxUnits) {
		return 0, errors.Wrapf(ct.ErrMathOverflow, "amount %s", s)
	}
	return units.IntPart(), nil
}

// FormatCoins 最小单位转回币
func FormatCoins(units int64) string {
	return decimal.New(units, 0).Div(coinPrecision).String()
}
