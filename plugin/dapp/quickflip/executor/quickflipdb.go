// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/common"
	dbm "github.com/33cn/chain33/common/db"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
	qt "github.com/catflip-labs/catflip/plugin/dapp/quickflip/types"
)

// Action 一笔交易的执行上下文
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	tx           *types.Transaction
	txhash       []byte
	fromaddr     string
	height       int64
	index        int
	execaddr     string
	vaultaddr    string
	q            *Quickflip
}

// NewAction new action
func NewAction(q *Quickflip, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: q.GetCoinsAccount(),
		db:           q.GetStateDB(),
		tx:           tx,
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		height:       q.GetHeight(),
		index:        index,
		execaddr:     drivers.ExecAddress(string(tx.Execer)),
		vaultaddr:    vaultAddress(string(tx.Execer)),
		q:            q,
	}
}

// GetIndex 本交易在链上的全局序号
func (action *Action) GetIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

// Initialize 创建金库
func (action *Action) Initialize(init *qt.QuickflipInitialize) (*types.Receipt, error) {
	if _, err := readVault(action.db); err == nil {
		return nil, ct.ErrVaultAlreadyInitialized
	}
	if init.GetMinBet() < 0 {
		return nil, types.ErrAmount
	}
	vault := &qt.QuickflipVault{
		IsInitialized: true,
		Authority:     action.fromaddr,
		MinBet:        init.GetMinBet(),
	}
	qlog.Info("Initialize", "authority", vault.Authority, "minBet", vault.MinBet)
	return action.vaultReceipt(vault, qt.TyLogQuickflipInitialize, qt.NameInitializeAction, 0, nil, nil), nil
}

// FundVault 管理员注资
func (action *Action) FundVault(fund *qt.QuickflipFundVault) (*types.Receipt, error) {
	vault, err := readVault(action.db)
	if err != nil {
		return nil, err
	}
	if vault.GetAuthority() != action.fromaddr {
		return nil, ct.ErrUnauthorized
	}
	if fund.GetAmount() <= 0 {
		return nil, types.ErrAmount
	}
	receipt, err := action.coinsAccount.ExecTransfer(action.fromaddr, action.vaultaddr, action.execaddr, fund.GetAmount())
	if err != nil {
		qlog.Error("FundVault.ExecTransfer", "addr", action.fromaddr, "amount", fund.GetAmount(), "err", err)
		return nil, err
	}
	return action.vaultReceipt(vault, qt.TyLogQuickflipFund, qt.NameFundVaultAction, fund.GetAmount(), receipt.KV, receipt.Logs), nil
}

// Bet 下注并立即开奖：seed%100 < 49 为赢，赢家得到 amount*196/100
func (action *Action) Bet(bet *qt.QuickflipBet) (*types.Receipt, error) {
	vault, err := readVault(action.db)
	if err != nil {
		return nil, err
	}
	amount := bet.GetAmount()
	if amount <= 0 {
		return nil, types.ErrAmount
	}
	if amount < vault.GetMinBet() {
		qlog.Error("Bet", "amount", amount, "minBet", vault.GetMinBet(), "err", ct.ErrBetBelowMinimum)
		return nil, ct.ErrBetBelowMinimum
	}
	seed, err := action.drawSeed()
	if err != nil {
		return nil, err
	}
	isWinner := qt.IsDirectWin(seed)
	var payout int64
	if isWinner {
		payout, err = ct.CalcDirectPayout(amount)
		if err != nil {
			return nil, err
		}
		// 筹码先入金库再支付
		available, err := ct.SafeAddInt64(action.vaultBalance(), amount)
		if err != nil {
			return nil, err
		}
		if available < payout {
			qlog.Error("Bet", "available", available, "payout", payout, "err", ct.ErrInsufficientFunds)
			return nil, ct.ErrInsufficientFunds
		}
	}
	totalVolume, err := ct.SafeAddInt64(vault.GetTotalVolume(), amount)
	if err != nil {
		return nil, err
	}
	totalBets, err := ct.SafeAddInt64(vault.GetTotalBets(), 1)
	if err != nil {
		return nil, err
	}
	totalWins := vault.GetTotalWins()
	if isWinner {
		totalWins++
	}

	receipt, err := action.coinsAccount.ExecTransfer(action.fromaddr, action.vaultaddr, action.execaddr, amount)
	if err != nil {
		qlog.Error("Bet.ExecTransfer", "addr", action.fromaddr, "amount", amount, "err", err)
		return nil, err
	}
	kv := receipt.KV
	logs := receipt.Logs
	if isWinner {
		receipt, err = action.coinsAccount.ExecTransfer(action.vaultaddr, action.fromaddr, action.execaddr, payout)
		if err != nil {
			qlog.Error("Bet.Payout", "to", action.fromaddr, "amount", payout, "err", err)
			return nil, err
		}
		kv = append(kv, receipt.KV...)
		logs = append(logs, receipt.Logs...)
	}
	vault.TotalVolume = totalVolume
	vault.TotalBets = totalBets
	vault.TotalWins = totalWins
	kv = append(kv, action.saveVault(vault)...)

	r := &qt.ReceiptQuickflipBet{
		Player:   action.fromaddr,
		Amount:   amount,
		IsWinner: isWinner,
		Payout:   payout,
		Seed:     seed,
		Height:   action.height,
		Index:    action.GetIndex(),
		TxHash:   common.ToHex(action.txhash),
		Vault:    vault,
	}
	qlog.Debug("Bet", "player", action.fromaddr, "amount", amount, "seed", seed, "isWinner", isWinner)
	logs = append(logs, &types.ReceiptLog{Ty: qt.TyLogQuickflipBet, Log: types.Encode(r)})
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) drawSeed() (uint64, error) {
	randHash, err := entropySource(action.q, action.tx)
	if err != nil {
		qlog.Error("drawSeed", "randExec", subCfg.RandExec, "err", err)
		return 0, err
	}
	if len(randHash) == 0 {
		return 0, qt.ErrRandomnessUnavailable
	}
	seed := qt.FlipSeed(randHash, action.fromaddr, action.GetIndex())
	if subCfg.FoldPlayerEntropy {
		seed = qt.FoldPlayerEntropy(seed, action.fromaddr)
	}
	return seed, nil
}

func (action *Action) vaultBalance() int64 {
	return action.coinsAccount.LoadExecAccount(action.vaultaddr, action.execaddr).GetBalance()
}

func (action *Action) vaultReceipt(vault *qt.QuickflipVault, logTy int32, name string, amount int64,
	kv []*types.KeyValue, logs []*types.ReceiptLog) *types.Receipt {
	kv = append(kv, action.saveVault(vault)...)
	r := &qt.ReceiptQuickflipVault{Vault: vault, Action: name, Amount: amount}
	logs = append(logs, &types.ReceiptLog{Ty: logTy, Log: types.Encode(r)})
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}
}

func (action *Action) saveVault(vault *qt.QuickflipVault) []*types.KeyValue {
	value := types.Encode(vault)
	_ = action.db.Set(vaultKey(), value)
	return []*types.KeyValue{{Key: vaultKey(), Value: value}}
}

func readVault(db dbm.KV) (*qt.QuickflipVault, error) {
	data, err := db.Get(vaultKey())
	if err != nil || len(data) == 0 {
		return nil, ct.ErrVaultUninitialized
	}
	var vault qt.QuickflipVault
	if err := types.Decode(data, &vault); err != nil {
		return nil, err
	}
	if !vault.IsInitialized {
		return nil, ct.ErrVaultUninitialized
	}
	return &vault, nil
}
