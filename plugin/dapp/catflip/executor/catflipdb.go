// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/hex"
	"fmt"

	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/common"
	dbm "github.com/33cn/chain33/common/db"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
)

/*
 一局的状态变化:
   Bet -> Pending(1)
   FulfillRandomness -> Won(2) | Lost(3)
   RefundTimeout -> Refunded(4)，状态库中的记录被清空

 下注时先校验全部条件，再做资金划转，任何一步失败都不会留下部分修改。
 玩家的筹码在 Bet 时直接转入金库地址，开奖赢了由金库支付 potentialPayout。
*/

// Action 一笔交易的执行上下文
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	index        int
	execaddr     string
	vaultaddr    string
}

// NewAction new action
func NewAction(c *Catflip, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: c.GetCoinsAccount(),
		db:           c.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    c.GetBlockTime(),
		height:       c.GetHeight(),
		index:        index,
		execaddr:     drivers.ExecAddress(string(tx.Execer)),
		vaultaddr:    vaultAddress(string(tx.Execer)),
	}
}

// RoundID 一个玩家在一个高度只能有一局
func RoundID(player string, height int64) string {
	return fmt.Sprintf("%s-%d", player, height)
}

// GetIndex 本交易在链上的全局序号
func (action *Action) GetIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

// Initialize 创建金库，签名者成为管理员
func (action *Action) Initialize(init *ct.CatflipInitialize) (*types.Receipt, error) {
	if _, err := readVault(action.db); err == nil {
		clog.Error("Initialize", "err", ct.ErrVaultAlreadyInitialized)
		return nil, ct.ErrVaultAlreadyInitialized
	}
	if init.GetMinBet() < 0 {
		return nil, types.ErrAmount
	}
	if err := checkLimits(init.GetMaxExposureBps(), init.GetHouseEdgeBps()); err != nil {
		return nil, err
	}
	pubKey, err := decodeOracleKey(init.GetOraclePubKey())
	if err != nil {
		return nil, err
	}
	vault := &ct.Vault{
		Authority:      action.fromaddr,
		MinBet:         init.GetMinBet(),
		MaxExposureBps: init.GetMaxExposureBps(),
		HouseEdgeBps:   init.GetHouseEdgeBps(),
		OraclePubKey:   pubKey,
	}
	clog.Info("Initialize", "authority", vault.Authority, "minBet", vault.MinBet,
		"maxExposureBps", vault.MaxExposureBps, "houseEdgeBps", vault.HouseEdgeBps)
	return action.vaultReceipt(vault, ct.TyLogCatflipInitialize, ct.NameInitializeAction, 0, nil, nil), nil
}

// FundVault 管理员向金库注资
func (action *Action) FundVault(fund *ct.CatflipFundVault) (*types.Receipt, error) {
	vault, err := action.readAuthorizedVault()
	if err != nil {
		return nil, err
	}
	if fund.GetAmount() <= 0 {
		return nil, types.ErrAmount
	}
	receipt, err := action.coinsAccount.ExecTransfer(action.fromaddr, action.vaultaddr, action.execaddr, fund.GetAmount())
	if err != nil {
		clog.Error("FundVault.ExecTransfer", "addr", action.fromaddr, "execaddr", action.execaddr,
			"amount", fund.GetAmount(), "err", err)
		return nil, err
	}
	return action.vaultReceipt(vault, ct.TyLogCatflipFund, ct.NameFundVaultAction, fund.GetAmount(), receipt.KV, receipt.Logs), nil
}

// Bet 下注，筹码转入金库，等待预言机开奖
func (action *Action) Bet(bet *ct.CatflipBet) (*types.Receipt, error) {
	vault, err := readVault(action.db)
	if err != nil {
		return nil, err
	}
	if vault.GetIsPaused() {
		return nil, ct.ErrGamePaused
	}
	amount := bet.GetAmount()
	if amount <= 0 {
		return nil, types.ErrAmount
	}
	if amount < vault.GetMinBet() {
		clog.Error("Bet", "amount", amount, "minBet", vault.GetMinBet(), "err", ct.ErrBetBelowMinimum)
		return nil, ct.ErrBetBelowMinimum
	}
	balance := action.vaultBalance()
	maxBet, err := ct.CalcMaxBet(balance, vault.GetMaxExposureBps())
	if err != nil {
		return nil, err
	}
	if amount > maxBet {
		clog.Error("Bet", "amount", amount, "maxBet", maxBet, "err", ct.ErrBetExceedsMaxExposure)
		return nil, ct.ErrBetExceedsMaxExposure
	}
	potentialPayout, err := ct.CalcPotentialPayout(amount, vault.GetHouseEdgeBps())
	if err != nil {
		return nil, err
	}
	if balance < potentialPayout {
		clog.Error("Bet", "balance", balance, "potentialPayout", potentialPayout, "err", ct.ErrInsufficientVaultBalance)
		return nil, ct.ErrInsufficientVaultBalance
	}
	roundID := RoundID(action.fromaddr, action.height)
	if _, err := readRound(action.db, roundID); err == nil {
		return nil, ct.ErrBetRoundExists
	}
	totalVolume, err := ct.SafeAddInt64(vault.GetTotalVolume(), amount)
	if err != nil {
		return nil, err
	}
	totalBets, err := ct.SafeAddInt64(vault.GetTotalBets(), 1)
	if err != nil {
		return nil, err
	}

	receipt, err := action.coinsAccount.ExecTransfer(action.fromaddr, action.vaultaddr, action.execaddr, amount)
	if err != nil {
		clog.Error("Bet.ExecTransfer", "addr", action.fromaddr, "execaddr", action.execaddr, "amount", amount, "err", err)
		return nil, err
	}
	vault.TotalVolume = totalVolume
	vault.TotalBets = totalBets

	round := &ct.BetRound{
		RoundId:         roundID,
		Player:          action.fromaddr,
		Stake:           amount,
		PotentialPayout: potentialPayout,
		Timestamp:       action.blocktime,
		Height:          action.height,
		RandomnessSeed:  ct.RoundSeed(action.txhash),
		Status:          ct.RoundStatusPending,
		BetTxHash:       common.ToHex(action.txhash),
		Index:           action.GetIndex(),
	}
	clog.Debug("Bet", "roundId", roundID, "stake", amount, "potentialPayout", potentialPayout)

	kv := append(receipt.KV, action.saveVault(vault)...)
	kv = append(kv, action.saveRound(round)...)
	logs := append(receipt.Logs, action.roundLog(ct.TyLogCatflipBet, round, 0, 0))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// FulfillRandomness 任何人都可以提交预言机的 VRF 证明完成开奖
func (action *Action) FulfillRandomness(fulfill *ct.CatflipFulfillRandomness) (*types.Receipt, error) {
	vault, err := readVault(action.db)
	if err != nil {
		return nil, err
	}
	round, err := readRound(action.db, fulfill.GetRoundId())
	if err != nil {
		return nil, err
	}
	if round.GetIsSettled() {
		clog.Error("FulfillRandomness", "roundId", round.RoundId, "err", ct.ErrBetAlreadySettled)
		return nil, ct.ErrBetAlreadySettled
	}
	proof, err := hex.DecodeString(trimHexPrefix(fulfill.GetProof()))
	if err != nil {
		return nil, ct.ErrInvalidVrfProof
	}
	out, err := ct.VerifyRandomness(vault.GetOraclePubKey(), round.GetRandomnessSeed(), proof)
	if err != nil {
		clog.Error("FulfillRandomness", "roundId", round.RoundId, "err", err)
		return nil, err
	}
	isWinner := ct.IsWinningOutput(out)

	var kv []*types.KeyValue
	var logs []*types.ReceiptLog
	status := int32(ct.RoundStatusLost)
	if isWinner {
		payout := round.GetPotentialPayout()
		if action.vaultBalance() < payout {
			clog.Error("FulfillRandomness", "roundId", round.RoundId, "payout", payout, "err", ct.ErrInsufficientVaultBalance)
			return nil, ct.ErrInsufficientVaultBalance
		}
		totalWins, err := ct.SafeAddInt64(vault.GetTotalWins(), 1)
		if err != nil {
			return nil, err
		}
		totalPayout, err := ct.SafeAddInt64(vault.GetTotalPayout(), payout)
		if err != nil {
			return nil, err
		}
		if payout > 0 {
			receipt, err := action.coinsAccount.ExecTransfer(action.vaultaddr, round.Player, action.execaddr, payout)
			if err != nil {
				clog.Error("FulfillRandomness.ExecTransfer", "to", round.Player, "amount", payout, "err", err)
				return nil, err
			}
			kv = append(kv, receipt.KV...)
			logs = append(logs, receipt.Logs...)
		}
		vault.TotalWins = totalWins
		vault.TotalPayout = totalPayout
		round.Payout = payout
		status = ct.RoundStatusWon
		kv = append(kv, action.saveVault(vault)...)
	}

	prevStatus, prevIndex := round.Status, round.Index
	round.IsSettled = true
	round.IsWinner = isWinner
	round.Status = status
	round.CloseTxHash = common.ToHex(action.txhash)
	round.Index = action.GetIndex()
	clog.Debug("FulfillRandomness", "roundId", round.RoundId, "isWinner", isWinner, "payout", round.Payout)

	kv = append(kv, action.saveRound(round)...)
	logs = append(logs, action.roundLog(ct.TyLogCatflipSettle, round, prevStatus, prevIndex))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// RefundTimeout 超时未开奖，玩家取回筹码，记录被清除
func (action *Action) RefundTimeout(refund *ct.CatflipRefundTimeout) (*types.Receipt, error) {
	vault, err := readVault(action.db)
	if err != nil {
		return nil, err
	}
	round, err := readRound(action.db, refund.GetRoundId())
	if err != nil {
		return nil, err
	}
	if round.GetPlayer() != action.fromaddr {
		clog.Error("RefundTimeout", "roundId", round.RoundId, "from", action.fromaddr, "err", ct.ErrUnauthorized)
		return nil, ct.ErrUnauthorized
	}
	if round.GetIsSettled() {
		return nil, ct.ErrBetAlreadySettled
	}
	if action.height <= round.GetHeight()+subCfg.TimeoutBlocks {
		clog.Error("RefundTimeout", "roundId", round.RoundId, "height", action.height, "betHeight", round.GetHeight(),
			"err", ct.ErrBetNotTimedOut)
		return nil, ct.ErrBetNotTimedOut
	}
	totalRefunds, err := ct.SafeAddInt64(vault.GetTotalRefunds(), round.GetStake())
	if err != nil {
		return nil, err
	}
	receipt, err := action.coinsAccount.ExecTransfer(action.vaultaddr, round.Player, action.execaddr, round.GetStake())
	if err != nil {
		clog.Error("RefundTimeout.ExecTransfer", "to", round.Player, "amount", round.GetStake(), "err", err)
		return nil, err
	}
	vault.TotalRefunds = totalRefunds

	prevStatus, prevIndex := round.Status, round.Index
	round.Status = ct.RoundStatusRefunded
	round.CloseTxHash = common.ToHex(action.txhash)
	round.Index = action.GetIndex()

	kv := append(receipt.KV, action.saveVault(vault)...)
	kv = append(kv, action.closeRound(round.RoundId)...)
	logs := append(receipt.Logs, action.roundLog(ct.TyLogCatflipRefund, round, prevStatus, prevIndex))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// SetPause 暂停或恢复下注，开奖与退款不受影响
func (action *Action) SetPause(pause *ct.CatflipSetPause) (*types.Receipt, error) {
	vault, err := action.readAuthorizedVault()
	if err != nil {
		return nil, err
	}
	vault.IsPaused = pause.GetIsPaused()
	return action.vaultReceipt(vault, ct.TyLogCatflipVaultUpdate, ct.NameSetPauseAction, 0, nil, nil), nil
}

// SetLimits 修改最小下注与最大敞口
func (action *Action) SetLimits(limits *ct.CatflipSetLimits) (*types.Receipt, error) {
	vault, err := action.readAuthorizedVault()
	if err != nil {
		return nil, err
	}
	if limits.GetMinBet() < 0 {
		return nil, types.ErrAmount
	}
	if err := ct.CheckBps(limits.GetMaxExposureBps()); err != nil {
		return nil, err
	}
	vault.MinBet = limits.GetMinBet()
	vault.MaxExposureBps = limits.GetMaxExposureBps()
	return action.vaultReceipt(vault, ct.TyLogCatflipVaultUpdate, ct.NameSetLimitsAction, 0, nil, nil), nil
}

// SetEdge 修改庄家优势，只影响之后的下注
func (action *Action) SetEdge(edge *ct.CatflipSetEdge) (*types.Receipt, error) {
	vault, err := action.readAuthorizedVault()
	if err != nil {
		return nil, err
	}
	if err := ct.CheckBps(edge.GetHouseEdgeBps()); err != nil {
		return nil, err
	}
	vault.HouseEdgeBps = edge.GetHouseEdgeBps()
	return action.vaultReceipt(vault, ct.TyLogCatflipVaultUpdate, ct.NameSetEdgeAction, 0, nil, nil), nil
}

// SetOracle 更换预言机公钥，未开奖的局需要新预言机重新出证明
func (action *Action) SetOracle(oracle *ct.CatflipSetOracle) (*types.Receipt, error) {
	vault, err := action.readAuthorizedVault()
	if err != nil {
		return nil, err
	}
	pubKey, err := decodeOracleKey(oracle.GetOraclePubKey())
	if err != nil {
		return nil, err
	}
	vault.OraclePubKey = pubKey
	return action.vaultReceipt(vault, ct.TyLogCatflipVaultUpdate, ct.NameSetOracleAction, 0, nil, nil), nil
}

func (action *Action) readAuthorizedVault() (*ct.Vault, error) {
	vault, err := readVault(action.db)
	if err != nil {
		return nil, err
	}
	if vault.GetAuthority() != action.fromaddr {
		clog.Error("readAuthorizedVault", "from", action.fromaddr, "authority", vault.GetAuthority(), "err", ct.ErrUnauthorized)
		return nil, ct.ErrUnauthorized
	}
	return vault, nil
}

func (action *Action) vaultBalance() int64 {
	return action.coinsAccount.LoadExecAccount(action.vaultaddr, action.execaddr).GetBalance()
}

func (action *Action) vaultReceipt(vault *ct.Vault, logTy int32, name string, amount int64,
	kv []*types.KeyValue, logs []*types.ReceiptLog) *types.Receipt {
	kv = append(kv, action.saveVault(vault)...)
	r := &ct.ReceiptCatflipVault{Vault: vault, Action: name, Amount: amount}
	logs = append(logs, &types.ReceiptLog{Ty: logTy, Log: types.Encode(r)})
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}
}

func (action *Action) roundLog(logTy int32, round *ct.BetRound, prevStatus int32, prevIndex int64) *types.ReceiptLog {
	r := &ct.ReceiptCatflipRound{
		RoundId:    round.RoundId,
		Player:     round.Player,
		Status:     round.Status,
		PrevStatus: prevStatus,
		Stake:      round.Stake,
		Payout:     round.Payout,
		IsWinner:   round.IsWinner,
		Index:      round.Index,
		PrevIndex:  prevIndex,
		Round:      round,
	}
	return &types.ReceiptLog{Ty: logTy, Log: types.Encode(r)}
}

// 同时写入状态库缓存，同一区块内后续交易可以读到
func (action *Action) saveVault(vault *ct.Vault) []*types.KeyValue {
	value := types.Encode(vault)
	_ = action.db.Set(vaultKey(), value)
	return []*types.KeyValue{{Key: vaultKey(), Value: value}}
}

func (action *Action) saveRound(round *ct.BetRound) []*types.KeyValue {
	value := types.Encode(round)
	_ = action.db.Set(roundKey(round.RoundId), value)
	return []*types.KeyValue{{Key: roundKey(round.RoundId), Value: value}}
}

func (action *Action) closeRound(roundID string) []*types.KeyValue {
	_ = action.db.Set(roundKey(roundID), nil)
	return []*types.KeyValue{{Key: roundKey(roundID), Value: nil}}
}

func checkLimits(maxExposureBps, houseEdgeBps int32) error {
	if err := ct.CheckBps(maxExposureBps); err != nil {
		return err
	}
	return ct.CheckBps(houseEdgeBps)
}

func decodeOracleKey(hexKey string) ([]byte, error) {
	pubKey, err := hex.DecodeString(trimHexPrefix(hexKey))
	if err != nil {
		return nil, ct.ErrInvalidOracleKey
	}
	if _, err := ct.ParseOraclePubKey(pubKey); err != nil {
		return nil, err
	}
	return pubKey, nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func readVault(db dbm.KV) (*ct.Vault, error) {
	data, err := db.Get(vaultKey())
	if err != nil || len(data) == 0 {
		return nil, ct.ErrVaultUninitialized
	}
	var vault ct.Vault
	if err := types.Decode(data, &vault); err != nil {
		clog.Error("readVault", "decode err", err)
		return nil, err
	}
	return &vault, nil
}

func readRound(db dbm.KV, roundID string) (*ct.BetRound, error) {
	if roundID == "" {
		return nil, types.ErrInvalidParam
	}
	data, err := db.Get(roundKey(roundID))
	if err != nil || len(data) == 0 {
		return nil, ct.ErrBetRoundNotFound
	}
	var round ct.BetRound
	if err := types.Decode(data, &round); err != nil {
		clog.Error("readRound", "roundId", roundID, "decode err", err)
		return nil, err
	}
	return &round, nil
}
