// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/33cn/chain33/rpc/jsonclient"
	rpctypes "github.com/33cn/chain33/rpc/types"
	"github.com/33cn/chain33/types"
	cfcmd "github.com/catflip-labs/catflip/plugin/dapp/catflip/commands"
	qt "github.com/catflip-labs/catflip/plugin/dapp/quickflip/types"
	"github.com/spf13/cobra"
)

// Cmd quickflip client command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quickflip",
		Short: "Single transaction coin flip",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		InitializeCmd(),
		FundVaultCmd(),
		BetCmd(),
		VaultCmd(),
		FlipsCmd(),
	)
	return cmd
}

// InitializeCmd 创建金库
func InitializeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the vault with a minimum bet",
		Run:   initialize,
	}
	cmd.Flags().StringP("min", "m", "", "minimum bet in coins")
	cmd.MarkFlagRequired("min")
	return cmd
}

func initialize(cmd *cobra.Command, args []string) {
	minStr, _ := cmd.Flags().GetString("min")
	minBet, err := cfcmd.ParseCoins(minStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	createTx(cmd, qt.NameInitializeAction, &qt.QuickflipInitialize{MinBet: minBet})
}

// FundVaultCmd 注资
func FundVaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund",
		Short: "Move coins from the quickflip exec account into the vault",
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
	createTx(cmd, qt.NameFundVaultAction, &qt.QuickflipFundVault{Amount: amount})
}

// BetCmd 下注
func BetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bet",
		Short: "Bet and settle in the same transaction",
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
	createTx(cmd, qt.NameBetAction, &qt.QuickflipBet{Amount: amount})
}

// VaultCmd 查询金库
func VaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Show the vault",
		Run:   showVault,
	}
	cmd.Flags().BoolP("layout", "l", false, "dump the 57 byte account image instead")
	return cmd
}

func showVault(cmd *cobra.Command, args []string) {
	layout, _ := cmd.Flags().GetBool("layout")
	if layout {
		var res qt.ReplyQuickflipLayout
		queryWithCb(cmd, qt.FuncNameGetVaultLayout, &types.ReqNil{}, &res, parseVaultLayout)
		return
	}
	var res qt.ReplyQuickflipVault
	query(cmd, qt.FuncNameGetVault, &types.ReqNil{}, &res)
}

// FlipsCmd 开奖历史
func FlipsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flips",
		Short: "List settled flips",
		Run:   listFlips,
	}
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.Flags().Int64P("index", "i", 0, "start index, 0 for the first page")
	cmd.Flags().Int32P("count", "c", 0, "page size")
	cmd.Flags().Int32P("direction", "d", 0, "0:desc 1:asc")
	return cmd
}

func listFlips(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	index, _ := cmd.Flags().GetInt64("index")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	req := &qt.ReqQuickflipFlips{Player: addr, Index: index, Count: count, Direction: direction}
	var res qt.ReplyQuickflipFlips
	query(cmd, qt.FuncNameListFlips, req, &res)
}

func execName(cmd *cobra.Command) string {
	paraName, _ := cmd.Flags().GetString("paraName")
	return paraName + qt.QuickflipX
}

func amountFlag(cmd *cobra.Command) (int64, bool) {
	s, _ := cmd.Flags().GetString("amount")
	amount, err := cfcmd.ParseCoins(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 0, false
	}
	return amount, true
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

func parseVaultLayout(res interface{}) (interface{}, error) {
	return cfcmd.ParseLayout(res.(*qt.ReplyQuickflipLayout).GetData(), cfcmd.MinimalVaultFields)
}
