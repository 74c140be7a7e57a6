// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types catflip 执行器的数据结构、错误码与赔付计算
package types

import (
	"reflect"

	log "github.com/33cn/chain33/common/log/log15"
	"github.com/33cn/chain33/types"
)

var tlog = log.New("module", "catflip.types")

var (
	actionName = map[string]int32{
		NameInitializeAction:        TyInitializeAction,
		NameFundVaultAction:         TyFundVaultAction,
		NameBetAction:               TyBetAction,
		NameFulfillRandomnessAction: TyFulfillRandomnessAction,
		NameRefundTimeoutAction:     TyRefundTimeoutAction,
		NameSetPauseAction:          TySetPauseAction,
		NameSetLimitsAction:         TySetLimitsAction,
		NameSetEdgeAction:           TySetEdgeAction,
		NameSetOracleAction:         TySetOracleAction,
	}
	logMap = map[int64]*types.LogInfo{
		TyLogCatflipInitialize:  {Ty: reflect.TypeOf(ReceiptCatflipVault{}), Name: "LogCatflipInitialize"},
		TyLogCatflipVaultUpdate: {Ty: reflect.TypeOf(ReceiptCatflipVault{}), Name: "LogCatflipVaultUpdate"},
		TyLogCatflipFund:        {Ty: reflect.TypeOf(ReceiptCatflipVault{}), Name: "LogCatflipFund"},
		TyLogCatflipBet:         {Ty: reflect.TypeOf(ReceiptCatflipRound{}), Name: "LogCatflipBet"},
		TyLogCatflipSettle:      {Ty: reflect.TypeOf(ReceiptCatflipRound{}), Name: "LogCatflipSettle"},
		TyLogCatflipRefund:      {Ty: reflect.TypeOf(ReceiptCatflipRound{}), Name: "LogCatflipRefund"},
	}
)

func init() {
	types.AllowUserExec = append(types.AllowUserExec, ExecerCatflip)
	types.RegFork(CatflipX, InitFork)
	types.RegExec(CatflipX, InitExecutor)
}

// InitFork init
func InitFork(cfg *types.Chain33Config) {
	cfg.RegisterDappFork(CatflipX, "Enable", 0)
}

// InitExecutor init Executor
func InitExecutor(cfg *types.Chain33Config) {
	types.RegistorExecutor(CatflipX, NewType(cfg))
}

// CatflipType catflip executor type
type CatflipType struct {
	types.ExecTypeBase
}

// NewType new type
func NewType(cfg *types.Chain33Config) *CatflipType {
	c := &CatflipType{}
	c.SetChild(c)
	c.SetConfig(cfg)
	return c
}

// GetName 获取执行器名称
func (c *CatflipType) GetName() string {
	return CatflipX
}

// GetPayload get payload
func (c *CatflipType) GetPayload() types.Message {
	return &CatflipAction{}
}

// GetTypeMap get type map
func (c *CatflipType) GetTypeMap() map[string]int32 {
	return actionName
}

// GetLogMap get log map
func (c *CatflipType) GetLogMap() map[int64]*types.LogInfo {
	return logMap
}

// CreateRawBetTx 构造下注交易
func CreateRawBetTx(cfg *types.Chain33Config, parm *CatflipRawBetTx) (*types.Transaction, error) {
	if parm == nil || parm.Amount <= 0 {
		tlog.Error("CreateRawBetTx", "parm", parm)
		return nil, types.ErrInvalidParam
	}
	action := &CatflipAction{
		Ty:    TyBetAction,
		Value: &CatflipAction_Bet{Bet: &CatflipBet{Amount: parm.Amount}},
	}
	return createRawTx(cfg, action, parm.Fee)
}

// CreateRawFulfillTx 构造开奖交易，proof 由预言机生成
func CreateRawFulfillTx(cfg *types.Chain33Config, parm *CatflipRawFulfillTx) (*types.Transaction, error) {
	if parm == nil || parm.RoundId == "" || parm.Proof == "" {
		tlog.Error("CreateRawFulfillTx", "parm", parm)
		return nil, types.ErrInvalidParam
	}
	action := &CatflipAction{
		Ty: TyFulfillRandomnessAction,
		Value: &CatflipAction_FulfillRandomness{FulfillRandomness: &CatflipFulfillRandomness{
			RoundId: parm.RoundId,
			Proof:   parm.Proof,
		}},
	}
	return createRawTx(cfg, action, parm.Fee)
}

// CreateRawRefundTx 构造超时退款交易
func CreateRawRefundTx(cfg *types.Chain33Config, parm *CatflipRawRefundTx) (*types.Transaction, error) {
	if parm == nil || parm.RoundId == "" {
		tlog.Error("CreateRawRefundTx", "parm", parm)
		return nil, types.ErrInvalidParam
	}
	action := &CatflipAction{
		Ty:    TyRefundTimeoutAction,
		Value: &CatflipAction_RefundTimeout{RefundTimeout: &CatflipRefundTimeout{RoundId: parm.RoundId}},
	}
	return createRawTx(cfg, action, parm.Fee)
}

func createRawTx(cfg *types.Chain33Config, action *CatflipAction, fee int64) (*types.Transaction, error) {
	tx, err := types.CreateFormatTx(cfg, cfg.ExecName(CatflipX), types.Encode(action))
	if err != nil {
		return nil, err
	}
	if fee > tx.Fee {
		tx.Fee = fee
	}
	return tx, nil
}
