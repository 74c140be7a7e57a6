// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types quickflip 即时开奖玩法
package types

import (
	"reflect"

	"github.com/33cn/chain33/types"
)

var (
	actionName = map[string]int32{
		NameInitializeAction: TyInitializeAction,
		NameBetAction:        TyBetAction,
		NameFundVaultAction:  TyFundVaultAction,
	}
	logMap = map[int64]*types.LogInfo{
		TyLogQuickflipInitialize: {Ty: reflect.TypeOf(ReceiptQuickflipVault{}), Name: "LogQuickflipInitialize"},
		TyLogQuickflipBet:        {Ty: reflect.TypeOf(ReceiptQuickflipBet{}), Name: "LogQuickflipBet"},
		TyLogQuickflipFund:       {Ty: reflect.TypeOf(ReceiptQuickflipVault{}), Name: "LogQuickflipFund"},
	}
)

func init() {
	types.AllowUserExec = append(types.AllowUserExec, ExecerQuickflip)
	types.RegFork(QuickflipX, InitFork)
	types.RegExec(QuickflipX, InitExecutor)
}

// InitFork init
func InitFork(cfg *types.Chain33Config) {
	cfg.RegisterDappFork(QuickflipX, "Enable", 0)
}

// InitExecutor init Executor
func InitExecutor(cfg *types.Chain33Config) {
	types.RegistorExecutor(QuickflipX, NewType(cfg))
}

// QuickflipType quickflip executor type
type QuickflipType struct {
	types.ExecTypeBase
}

// NewType new type
func NewType(cfg *types.Chain33Config) *QuickflipType {
	c := &QuickflipType{}
	c.SetChild(c)
	c.SetConfig(cfg)
	return c
}

// GetName 获取执行器名称
func (q *QuickflipType) GetName() string {
	return QuickflipX
}

// GetPayload get payload
func (q *QuickflipType) GetPayload() types.Message {
	return &QuickflipAction{}
}

// GetTypeMap get type map
func (q *QuickflipType) GetTypeMap() map[string]int32 {
	return actionName
}

// GetLogMap get log map
func (q *QuickflipType) GetLogMap() map[int64]*types.LogInfo {
	return logMap
}
