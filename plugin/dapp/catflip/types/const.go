// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// action ty
const (
	TyInitializeAction = iota + 1
	TyFundVaultAction
	TyBetAction
	TyFulfillRandomnessAction
	TyRefundTimeoutAction
	TySetPauseAction
	TySetLimitsAction
	TySetEdgeAction
	TySetOracleAction
)

// action name
const (
	NameInitializeAction        = "Initialize"
	NameFundVaultAction         = "FundVault"
	NameBetAction               = "Bet"
	NameFulfillRandomnessAction = "FulfillRandomness"
	NameRefundTimeoutAction     = "RefundTimeout"
	NameSetPauseAction          = "SetPause"
	NameSetLimitsAction         = "SetLimits"
	NameSetEdgeAction           = "SetEdge"
	NameSetOracleAction         = "SetOracle"
)

// log ty
const (
	TyLogCatflipInitialize = iota + 1501
	TyLogCatflipVaultUpdate
	TyLogCatflipFund
	TyLogCatflipBet
	TyLogCatflipSettle
	TyLogCatflipRefund
)

// query func name
const (
	FuncNameGetVault       = "GetVault"
	FuncNameGetBetRound    = "GetBetRound"
	FuncNameListBetRounds  = "ListBetRounds"
	FuncNameGetVaultLayout = "GetVaultLayout"
	// FuncNameGetBetRoundLayout 单局定长布局
	FuncNameGetBetRoundLayout = "GetBetRoundLayout"
)

// round status: Pending 1 -> Won 2 | Lost 3 | Refunded 4
const (
	RoundStatusPending = iota + 1
	RoundStatusWon
	RoundStatusLost
	RoundStatusRefunded
)

const (
	// BpsDenominator 万分比分母
	BpsDenominator = 10000
	// DefaultTimeoutBlocks 下注后超过该高度差未开奖，玩家可申请退款
	DefaultTimeoutBlocks = 150
	// DefaultListCount 列表查询默认条数
	DefaultListCount = 20
	// MaxListCount 列表查询最大条数
	MaxListCount = 100
)

const (
	// CatflipX 执行器名
	CatflipX = "catflip"
	// VaultSuffix 金库地址 = ExecAddress(execName + VaultSuffix)
	VaultSuffix = "-vault"
)

var (
	// ExecerCatflip execer bytes
	ExecerCatflip = []byte(CatflipX)
)

// CoinPrecision 1 coin = 1e8 base units
const CoinPrecision int64 = 1e8
