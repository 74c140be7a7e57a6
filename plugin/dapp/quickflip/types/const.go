// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// action ty
const (
	TyInitializeAction = iota + 1
	TyBetAction
	TyFundVaultAction
)

// action name
const (
	NameInitializeAction = "Initialize"
	NameBetAction        = "Bet"
	NameFundVaultAction  = "FundVault"
)

// log ty
const (
	TyLogQuickflipInitialize = iota + 1521
	TyLogQuickflipBet
	TyLogQuickflipFund
)

// query func name
const (
	FuncNameGetVault       = "GetVault"
	FuncNameGetVaultLayout = "GetVaultLayout"
	FuncNameListFlips      = "ListFlips"
)

const (
	// QuickflipX 执行器名
	QuickflipX = "quickflip"
	// VaultSuffix 金库地址 = ExecAddress(execName + VaultSuffix)
	VaultSuffix = "-vault"
)

var (
	// ExecerQuickflip execer bytes
	ExecerQuickflip = []byte(QuickflipX)
)
