// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/chain33/client"
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/crypto"
	"github.com/33cn/chain33/common/db"
	vrf "github.com/33cn/chain33/common/vrf/secp256k1"
	"github.com/33cn/chain33/queue"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	"github.com/33cn/chain33/util"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCfg = types.NewChain33Config(types.GetDefaultCfgstring())
	coin    = ct.CoinPrecision
)

func init() {
	Init(driverName, testCfg, nil)
}

type testEnv struct {
	t         *testing.T
	dir       string
	ldb       db.DB
	localDB   db.KVDB
	api       client.QueueProtocolAPI
	height    int64
	blocktime int64

	oracle    *vrf.PrivateKey
	oraclePub string

	authority     string
	authorityPriv crypto.PrivKey
	player        string
	playerPriv    crypto.PrivKey
}

func newTestEnv(t *testing.T) *testEnv {
	q := queue.New("testcatflip")
	q.SetConfig(testCfg)
	api, err := client.New(q.Client(), nil)
	require.Nil(t, err)
	dir, ldb, localDB := util.CreateTestDB()
	priv, pub := vrf.GenerateKey()
	env := &testEnv{
		t:         t,
		dir:       dir,
		ldb:       ldb,
		localDB:   localDB,
		api:       api,
		height:    10,
		blocktime: 1656569131,
		oracle:    priv.(*vrf.PrivateKey),
		oraclePub: common.ToHex(ct.MarshalOraclePubKey(pub.(*vrf.PublicKey))),
	}
	env.authority, env.authorityPriv = util.Genaddress()
	env.player, env.playerPriv = util.Genaddress()
	env.deposit(env.authority, 10000*coin)
	env.deposit(env.player, 1000*coin)
	return env
}

func (env *testEnv) close() {
	util.CloseTestDB(env.dir, env.ldb)
}

func (env *testEnv) newExec() *Catflip {
	c := newCatflip().(*Catflip)
	c.SetAPI(env.api)
	c.SetStateDB(env.ldb)
	c.SetLocalDB(env.localDB)
	c.SetEnv(env.height, env.blocktime, 0)
	return c
}

func (env *testEnv) execAddr() string {
	return drivers.ExecAddress(driverName)
}

func (env *testEnv) deposit(addr string, amount int64) {
	acc := env.newExec().GetCoinsAccount()
	acc.SaveExecAccount(env.execAddr(), &types.Account{Addr: addr, Balance: amount})
}

func (env *testEnv) balance(addr string) int64 {
	return env.newExec().GetCoinsAccount().LoadExecAccount(addr, env.execAddr()).GetBalance()
}

func (env *testEnv) vaultBalance() int64 {
	return env.balance(vaultAddress(driverName))
}

func (env *testEnv) createTx(action string, payload types.Message, priv crypto.PrivKey) *types.Transaction {
	ety := types.LoadExecutorType(driverName)
	tx, err := ety.CreateTransaction(action, payload)
	require.Nil(env.t, err)
	tx, err = types.FormatTx(testCfg, driverName, tx)
	require.Nil(env.t, err)
	tx.Sign(int32(types.SECP256K1), priv)
	return tx
}

// exec runs the tx through Exec and ExecLocal and persists both kv sets.
func (env *testEnv) exec(action string, payload types.Message, priv crypto.PrivKey) (*types.Receipt, *types.Transaction, error) {
	tx := env.createTx(action, payload, priv)
	c := env.newExec()
	if err := c.CheckTx(tx, 0); err != nil {
		return nil, tx, err
	}
	receipt, err := c.Exec(tx, 0)
	if err != nil {
		return nil, tx, err
	}
	util.SaveKVList(env.ldb, receipt.KV)
	set, err := c.ExecLocal(tx, &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}, 0)
	require.Nil(env.t, err)
	util.SaveKVList(env.ldb, set.KV)
	return receipt, tx, nil
}

func (env *testEnv) initVault(minBet int64, maxExposureBps, houseEdgeBps int32) {
	_, _, err := env.exec(ct.NameInitializeAction, &ct.CatflipInitialize{
		MinBet:         minBet,
		MaxExposureBps: maxExposureBps,
		HouseEdgeBps:   houseEdgeBps,
		OraclePubKey:   env.oraclePub,
	}, env.authorityPriv)
	require.Nil(env.t, err)
}

func (env *testEnv) fund(amount int64) {
	_, _, err := env.exec(ct.NameFundVaultAction, &ct.CatflipFundVault{Amount: amount}, env.authorityPriv)
	require.Nil(env.t, err)
}

func (env *testEnv) vault() *ct.ReplyCatflipVault {
	msg, err := env.newExec().Query_GetVault(&types.ReqNil{})
	require.Nil(env.t, err)
	return msg.(*ct.ReplyCatflipVault)
}

func (env *testEnv) bet(amount int64) (*ct.BetRound, error) {
	_, _, err := env.exec(ct.NameBetAction, &ct.CatflipBet{Amount: amount}, env.playerPriv)
	if err != nil {
		return nil, err
	}
	return readRound(env.ldb, RoundID(env.player, env.height))
}

func (env *testEnv) proof(round *ct.BetRound) (string, bool) {
	out, proof := env.oracle.Evaluate(round.RandomnessSeed)
	return common.ToHex(proof), ct.IsWinningOutput(out)
}

func (env *testEnv) fulfill(round *ct.BetRound, proof string, priv crypto.PrivKey) (*types.Receipt, error) {
	receipt, _, err := env.exec(ct.NameFulfillRandomnessAction,
		&ct.CatflipFulfillRandomness{RoundId: round.RoundId, Proof: proof}, priv)
	return receipt, err
}

// betUntil places bets at increasing heights until the oracle outcome matches want.
func (env *testEnv) betUntil(amount int64, want bool) (*ct.BetRound, string) {
	for i := 0; i < 64; i++ {
		env.height++
		round, err := env.bet(amount)
		require.Nil(env.t, err)
		proof, win := env.proof(round)
		if win == want {
			return round, proof
		}
		_, err = env.fulfill(round, proof, env.authorityPriv)
		require.Nil(env.t, err)
	}
	env.t.Fatal("no matching outcome")
	return nil, ""
}

func TestInitialize(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()

	_, _, err := env.exec(ct.NameBetAction, &ct.CatflipBet{Amount: coin}, env.playerPriv)
	assert.Equal(t, ct.ErrVaultUninitialized, err)

	_, _, err = env.exec(ct.NameInitializeAction, &ct.CatflipInitialize{MinBet: coin, MaxExposureBps: 20000,
		OraclePubKey: env.oraclePub}, env.authorityPriv)
	assert.Equal(t, ct.ErrInvalidBps, err)
	_, _, err = env.exec(ct.NameInitializeAction, &ct.CatflipInitialize{MinBet: coin, MaxExposureBps: 500,
		OraclePubKey: "0x0102"}, env.authorityPriv)
	assert.Equal(t, ct.ErrInvalidOracleKey, err)

	env.initVault(coin, 500, 200)
	reply := env.vault()
	assert.Equal(t, env.authority, reply.Vault.Authority)
	assert.Equal(t, coin, reply.Vault.MinBet)
	assert.Equal(t, int32(500), reply.Vault.MaxExposureBps)
	assert.Equal(t, int32(200), reply.Vault.HouseEdgeBps)
	assert.False(t, reply.Vault.IsPaused)
	assert.Equal(t, int64(0), reply.Vault.TotalBets)
	assert.Equal(t, vaultAddress(driverName), reply.VaultAddr)

	_, _, err = env.exec(ct.NameInitializeAction, &ct.CatflipInitialize{MinBet: 1, OraclePubKey: env.oraclePub}, env.playerPriv)
	assert.Equal(t, ct.ErrVaultAlreadyInitialized, err)
}

func TestCheckTxMissingSignature(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()

	tx := env.createTx(ct.NameBetAction, &ct.CatflipBet{Amount: coin}, env.playerPriv)
	tx.Signature = nil
	assert.Equal(t, ct.ErrMissingSignature, env.newExec().CheckTx(tx, 0))
}

func TestFundVault(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(coin, 500, 200)

	_, _, err := env.exec(ct.NameFundVaultAction, &ct.CatflipFundVault{Amount: coin}, env.playerPriv)
	assert.Equal(t, ct.ErrUnauthorized, err)
	_, _, err = env.exec(ct.NameFundVaultAction, &ct.CatflipFundVault{Amount: 0}, env.authorityPriv)
	assert.Equal(t, types.ErrAmount, err)
	_, _, err = env.exec(ct.NameFundVaultAction, &ct.CatflipFundVault{Amount: 20000 * coin}, env.authorityPriv)
	assert.Equal(t, types.ErrNoBalance, err)

	env.fund(1000 * coin)
	assert.Equal(t, 1000*coin, env.vaultBalance())
	assert.Equal(t, 9000*coin, env.balance(env.authority))
	assert.Equal(t, 1000*coin, env.vault().Balance)
}

func TestBetLimits(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(coin, 500, 200)
	env.fund(1000 * coin)

	_, err := env.bet(coin / 2)
	assert.Equal(t, ct.ErrBetBelowMinimum, err)

	// max bet = 1000 * 5% = 50
	_, err = env.bet(51 * coin)
	assert.Equal(t, ct.ErrBetExceedsMaxExposure, err)

	round, err := env.bet(50 * coin)
	require.Nil(t, err)
	assert.Equal(t, 50*coin, round.Stake)
	assert.Equal(t, 98*coin, round.PotentialPayout)
	assert.False(t, round.IsSettled)
	assert.Equal(t, int32(ct.RoundStatusPending), round.Status)
	assert.Equal(t, env.height, round.Height)
	assert.Equal(t, env.blocktime, round.Timestamp)
	assert.Len(t, round.RandomnessSeed, 32)

	// one round per player per height
	_, err = env.bet(coin)
	assert.Equal(t, ct.ErrBetRoundExists, err)

	assert.Equal(t, 1050*coin, env.vaultBalance())
	assert.Equal(t, 950*coin, env.balance(env.player))
	vault := env.vault().Vault
	assert.Equal(t, int64(1), vault.TotalBets)
	assert.Equal(t, 50*coin, vault.TotalVolume)
}

func TestBetAndSettleOnce(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(1000, 5000, 0)
	env.fund(10000)

	_, err := env.bet(500)
	assert.Equal(t, ct.ErrBetBelowMinimum, err)
	_, err = env.bet(5001)
	assert.Equal(t, ct.ErrBetExceedsMaxExposure, err)

	round, err := env.bet(1000)
	require.Nil(t, err)
	assert.Equal(t, int64(2000), round.PotentialPayout)

	proof, _ := env.proof(round)
	_, err = env.fulfill(round, proof, env.authorityPriv)
	require.Nil(t, err)
	_, err = env.fulfill(round, proof, env.authorityPriv)
	assert.Equal(t, ct.ErrBetAlreadySettled, err)
}

func TestBetInsufficientVaultBalance(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	// 100% exposure and no edge: payout is twice the stake
	env.initVault(1, 10000, 0)
	env.fund(10 * coin)

	_, err := env.bet(6 * coin)
	assert.Equal(t, ct.ErrInsufficientVaultBalance, err)
	assert.Equal(t, 10*coin, env.vaultBalance())
	assert.Equal(t, 1000*coin, env.balance(env.player))

	_, err = env.bet(5 * coin)
	assert.Nil(t, err)
}

func TestBetPaused(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(coin, 500, 200)
	env.fund(1000 * coin)

	_, _, err := env.exec(ct.NameSetPauseAction, &ct.CatflipSetPause{IsPaused: true}, env.playerPriv)
	assert.Equal(t, ct.ErrUnauthorized, err)
	_, _, err = env.exec(ct.NameSetPauseAction, &ct.CatflipSetPause{IsPaused: true}, env.authorityPriv)
	require.Nil(t, err)
	_, err = env.bet(coin)
	assert.Equal(t, ct.ErrGamePaused, err)

	_, _, err = env.exec(ct.NameSetPauseAction, &ct.CatflipSetPause{IsPaused: false}, env.authorityPriv)
	require.Nil(t, err)
	_, err = env.bet(coin)
	assert.Nil(t, err)
}

func TestFulfillWin(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(coin, 500, 200)
	env.fund(1000 * coin)

	before := env.vault().Vault
	round, proof := env.betUntil(10*coin, true)
	playerBefore := env.balance(env.player)
	vaultBefore := env.vaultBalance()

	// anyone may relay the oracle proof
	receipt, err := env.fulfill(round, proof, env.playerPriv)
	require.Nil(t, err)
	assert.Equal(t, int32(ct.TyLogCatflipSettle), receipt.Logs[len(receipt.Logs)-1].Ty)

	settled, err := readRound(env.ldb, round.RoundId)
	require.Nil(t, err)
	assert.True(t, settled.IsSettled)
	assert.True(t, settled.IsWinner)
	assert.Equal(t, int32(ct.RoundStatusWon), settled.Status)
	assert.Equal(t, int64(1960000000), settled.Payout)
	assert.Equal(t, playerBefore+1960000000, env.balance(env.player))
	assert.Equal(t, vaultBefore-1960000000, env.vaultBalance())

	vault := env.vault().Vault
	assert.Equal(t, before.TotalWins+1, vault.TotalWins)
	assert.True(t, vault.TotalWins <= vault.TotalBets)

	_, err = env.fulfill(round, proof, env.playerPriv)
	assert.Equal(t, ct.ErrBetAlreadySettled, err)
}

func TestFulfillWinVaultShortfall(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(coin, 500, 200)
	env.fund(1000 * coin)

	round, proof := env.betUntil(10*coin, true)
	require.True(t, round.PotentialPayout > round.Stake)
	// 金库只够退还本金，不够支付奖金
	env.deposit(vaultAddress(driverName), round.Stake)
	playerBefore := env.balance(env.player)
	winsBefore := env.vault().Vault.TotalWins

	_, err := env.fulfill(round, proof, env.authorityPriv)
	assert.Equal(t, ct.ErrInsufficientVaultBalance, err)
	assert.Equal(t, round.Stake, env.vaultBalance())
	assert.Equal(t, playerBefore, env.balance(env.player))
	assert.Equal(t, winsBefore, env.vault().Vault.TotalWins)
	stored, err := readRound(env.ldb, round.RoundId)
	require.Nil(t, err)
	assert.False(t, stored.IsSettled)
	assert.Equal(t, int32(ct.RoundStatusPending), stored.Status)

	env.height = round.Height + ct.DefaultTimeoutBlocks + 1
	_, _, err = env.exec(ct.NameRefundTimeoutAction, &ct.CatflipRefundTimeout{RoundId: round.RoundId}, env.playerPriv)
	require.Nil(t, err)
	assert.Equal(t, playerBefore+round.Stake, env.balance(env.player))
	assert.Equal(t, int64(0), env.vaultBalance())
	_, err = readRound(env.ldb, round.RoundId)
	assert.Equal(t, ct.ErrBetRoundNotFound, err)
}

func TestFulfillLoss(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(coin, 500, 200)
	env.fund(1000 * coin)

	round, proof := env.betUntil(10*coin, false)
	playerBefore := env.balance(env.player)
	vaultBefore := env.vaultBalance()
	winsBefore := env.vault().Vault.TotalWins

	_, err := env.fulfill(round, proof, env.authorityPriv)
	require.Nil(t, err)
	settled, err := readRound(env.ldb, round.RoundId)
	require.Nil(t, err)
	assert.True(t, settled.IsSettled)
	assert.False(t, settled.IsWinner)
	assert.Equal(t, int32(ct.RoundStatusLost), settled.Status)
	assert.Equal(t, playerBefore, env.balance(env.player))
	assert.Equal(t, vaultBefore, env.vaultBalance())
	assert.Equal(t, winsBefore, env.vault().Vault.TotalWins)
}

func TestFulfillInvalidProof(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(coin, 500, 200)
	env.fund(1000 * coin)

	round, err := env.bet(coin)
	require.Nil(t, err)

	// proof over a different seed
	_, proof := env.oracle.Evaluate([]byte("not the seed"))
	_, err = env.fulfill(round, common.ToHex(proof), env.authorityPriv)
	assert.Equal(t, ct.ErrInvalidVrfProof, err)

	// proof from a key that is not registered
	other, _ := vrf.GenerateKey()
	_, proof = other.Evaluate(round.RandomnessSeed)
	_, err = env.fulfill(round, common.ToHex(proof), env.authorityPriv)
	assert.Equal(t, ct.ErrInvalidVrfProof, err)

	_, err = env.fulfill(&ct.BetRound{RoundId: "missing-1"}, common.ToHex(proof), env.authorityPriv)
	assert.Equal(t, ct.ErrBetRoundNotFound, err)

	still, err := readRound(env.ldb, round.RoundId)
	require.Nil(t, err)
	assert.False(t, still.IsSettled)
}

func TestSetOracle(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(coin, 500, 200)
	env.fund(1000 * coin)
	round, err := env.bet(coin)
	require.Nil(t, err)

	priv, pub := vrf.GenerateKey()
	newPub := common.ToHex(ct.MarshalOraclePubKey(pub.(*vrf.PublicKey)))
	_, _, err = env.exec(ct.NameSetOracleAction, &ct.CatflipSetOracle{OraclePubKey: newPub}, env.playerPriv)
	assert.Equal(t, ct.ErrUnauthorized, err)
	_, _, err = env.exec(ct.NameSetOracleAction, &ct.CatflipSetOracle{OraclePubKey: newPub}, env.authorityPriv)
	require.Nil(t, err)

	oldProof, _ := env.proof(round)
	_, err = env.fulfill(round, oldProof, env.authorityPriv)
	assert.Equal(t, ct.ErrInvalidVrfProof, err)

	_, proof := priv.Evaluate(round.RandomnessSeed)
	_, err = env.fulfill(round, common.ToHex(proof), env.authorityPriv)
	assert.Nil(t, err)
}

func TestRefundTimeout(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(coin, 500, 200)
	env.fund(1000 * coin)

	betHeight := env.height
	round, err := env.bet(10 * coin)
	require.Nil(t, err)
	refund := &ct.CatflipRefundTimeout{RoundId: round.RoundId}

	env.height = betHeight + ct.DefaultTimeoutBlocks
	_, _, err = env.exec(ct.NameRefundTimeoutAction, refund, env.playerPriv)
	assert.Equal(t, ct.ErrBetNotTimedOut, err)

	env.height = betHeight + ct.DefaultTimeoutBlocks + 1
	_, _, err = env.exec(ct.NameRefundTimeoutAction, refund, env.authorityPriv)
	assert.Equal(t, ct.ErrUnauthorized, err)

	_, _, err = env.exec(ct.NameRefundTimeoutAction, refund, env.playerPriv)
	require.Nil(t, err)
	assert.Equal(t, 1000*coin, env.balance(env.player))
	assert.Equal(t, 1000*coin, env.vaultBalance())
	assert.Equal(t, 10*coin, env.vault().Vault.TotalRefunds)

	_, err = readRound(env.ldb, round.RoundId)
	assert.Equal(t, ct.ErrBetRoundNotFound, err)
	_, _, err = env.exec(ct.NameRefundTimeoutAction, refund, env.playerPriv)
	assert.Equal(t, ct.ErrBetRoundNotFound, err)

	msg, err := env.newExec().Query_ListBetRounds(&ct.ReqCatflipRoundList{Status: ct.RoundStatusRefunded, Player: env.player})
	require.Nil(t, err)
	rounds := msg.(*ct.ReplyCatflipRoundList).Rounds
	require.Len(t, rounds, 1)
	assert.Equal(t, round.RoundId, rounds[0].RoundId)
}

func TestRefundTimeoutRollback(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(coin, 500, 200)
	env.fund(1000 * coin)

	round, err := env.bet(coin)
	require.Nil(t, err)
	env.height = round.Height + ct.DefaultTimeoutBlocks + 1

	c := env.newExec()
	tx := env.createTx(ct.NameRefundTimeoutAction, &ct.CatflipRefundTimeout{RoundId: round.RoundId}, env.playerPriv)
	receipt, err := c.Exec(tx, 2)
	require.Nil(t, err)
	util.SaveKVList(env.ldb, receipt.KV)
	rdata := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	set, err := c.ExecLocal(tx, rdata, 2)
	require.Nil(t, err)
	util.SaveKVList(env.ldb, set.KV)

	msg, err := c.Query_ListBetRounds(&ct.ReqCatflipRoundList{Status: ct.RoundStatusPending, Player: env.player})
	require.Nil(t, err)
	assert.Len(t, msg.(*ct.ReplyCatflipRoundList).Rounds, 0)
	msg, err = c.Query_ListBetRounds(&ct.ReqCatflipRoundList{Status: ct.RoundStatusRefunded, Player: env.player})
	require.Nil(t, err)
	require.Len(t, msg.(*ct.ReplyCatflipRoundList).Rounds, 1)
	assert.NotEqual(t, round.Index, msg.(*ct.ReplyCatflipRoundList).Rounds[0].Index)

	set, err = c.ExecDelLocal(tx, rdata, 2)
	require.Nil(t, err)
	util.SaveKVList(env.ldb, set.KV)

	msg, err = c.Query_ListBetRounds(&ct.ReqCatflipRoundList{Status: ct.RoundStatusRefunded})
	require.Nil(t, err)
	assert.Len(t, msg.(*ct.ReplyCatflipRoundList).Rounds, 0)
	msg, err = c.Query_ListBetRounds(&ct.ReqCatflipRoundList{Status: ct.RoundStatusPending, Player: env.player})
	require.Nil(t, err)
	rounds := msg.(*ct.ReplyCatflipRoundList).Rounds
	require.Len(t, rounds, 1)
	assert.Equal(t, round.RoundId, rounds[0].RoundId)
	assert.Equal(t, round.Index, rounds[0].Index)
	assert.False(t, rounds[0].IsSettled)
	assert.Equal(t, int32(ct.RoundStatusPending), rounds[0].Status)
}

func TestRefundAfterSettle(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(coin, 500, 200)
	env.fund(1000 * coin)

	round, err := env.bet(coin)
	require.Nil(t, err)
	proof, _ := env.proof(round)
	_, err = env.fulfill(round, proof, env.authorityPriv)
	require.Nil(t, err)

	env.height += ct.DefaultTimeoutBlocks + 1
	_, _, err = env.exec(ct.NameRefundTimeoutAction, &ct.CatflipRefundTimeout{RoundId: round.RoundId}, env.playerPriv)
	assert.Equal(t, ct.ErrBetAlreadySettled, err)
}

func TestSetLimitsAndEdge(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(coin, 500, 200)
	env.fund(1000 * coin)

	_, _, err := env.exec(ct.NameSetLimitsAction, &ct.CatflipSetLimits{MinBet: 2 * coin, MaxExposureBps: 10001}, env.authorityPriv)
	assert.Equal(t, ct.ErrInvalidBps, err)
	_, _, err = env.exec(ct.NameSetLimitsAction, &ct.CatflipSetLimits{MinBet: 2 * coin, MaxExposureBps: 1000}, env.playerPriv)
	assert.Equal(t, ct.ErrUnauthorized, err)
	_, _, err = env.exec(ct.NameSetLimitsAction, &ct.CatflipSetLimits{MinBet: 2 * coin, MaxExposureBps: 1000}, env.authorityPriv)
	require.Nil(t, err)

	_, _, err = env.exec(ct.NameSetEdgeAction, &ct.CatflipSetEdge{HouseEdgeBps: 500}, env.authorityPriv)
	require.Nil(t, err)

	vault := env.vault().Vault
	assert.Equal(t, 2*coin, vault.MinBet)
	assert.Equal(t, int32(1000), vault.MaxExposureBps)
	assert.Equal(t, int32(500), vault.HouseEdgeBps)

	_, err = env.bet(coin)
	assert.Equal(t, ct.ErrBetBelowMinimum, err)
	// max bet is now 10% of 1000
	round, err := env.bet(100 * coin)
	require.Nil(t, err)
	assert.Equal(t, 190*coin, round.PotentialPayout)
}

func TestListBetRoundsAndRollback(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(coin, 500, 200)
	env.fund(1000 * coin)

	round, err := env.bet(coin)
	require.Nil(t, err)

	c := env.newExec()
	msg, err := c.Query_ListBetRounds(&ct.ReqCatflipRoundList{Status: ct.RoundStatusPending})
	require.Nil(t, err)
	require.Len(t, msg.(*ct.ReplyCatflipRoundList).Rounds, 1)

	proof, win := env.proof(round)
	tx := env.createTx(ct.NameFulfillRandomnessAction, &ct.CatflipFulfillRandomness{RoundId: round.RoundId, Proof: proof}, env.authorityPriv)
	receipt, err := c.Exec(tx, 1)
	require.Nil(t, err)
	util.SaveKVList(env.ldb, receipt.KV)
	rdata := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	set, err := c.ExecLocal(tx, rdata, 1)
	require.Nil(t, err)
	util.SaveKVList(env.ldb, set.KV)

	status := int32(ct.RoundStatusLost)
	if win {
		status = ct.RoundStatusWon
	}
	msg, err = c.Query_ListBetRounds(&ct.ReqCatflipRoundList{Status: ct.RoundStatusPending})
	require.Nil(t, err)
	assert.Len(t, msg.(*ct.ReplyCatflipRoundList).Rounds, 0)
	msg, err = c.Query_ListBetRounds(&ct.ReqCatflipRoundList{Status: status, Player: env.player})
	require.Nil(t, err)
	require.Len(t, msg.(*ct.ReplyCatflipRoundList).Rounds, 1)
	assert.True(t, msg.(*ct.ReplyCatflipRoundList).Rounds[0].IsSettled)

	set, err = c.ExecDelLocal(tx, rdata, 1)
	require.Nil(t, err)
	util.SaveKVList(env.ldb, set.KV)
	msg, err = c.Query_ListBetRounds(&ct.ReqCatflipRoundList{Status: status})
	require.Nil(t, err)
	assert.Len(t, msg.(*ct.ReplyCatflipRoundList).Rounds, 0)
	msg, err = c.Query_ListBetRounds(&ct.ReqCatflipRoundList{Status: ct.RoundStatusPending, Player: env.player})
	require.Nil(t, err)
	rounds := msg.(*ct.ReplyCatflipRoundList).Rounds
	require.Len(t, rounds, 1)
	assert.False(t, rounds[0].IsSettled)
	assert.Equal(t, round.Index, rounds[0].Index)

	_, err = c.Query_ListBetRounds(&ct.ReqCatflipRoundList{Status: 9})
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestListBetRoundsCount(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(coin, 500, 200)
	env.fund(1000 * coin)
	for i := 0; i < 3; i++ {
		env.height++
		_, err := env.bet(coin)
		require.Nil(t, err)
	}
	oldCfg := subCfg
	defer func() { subCfg = oldCfg }()
	subCfg.DefaultCount = 1
	subCfg.MaxCount = 2

	c := env.newExec()
	list := func(count int32) []*ct.BetRound {
		msg, err := c.Query_ListBetRounds(&ct.ReqCatflipRoundList{Status: ct.RoundStatusPending, Count: count})
		require.Nil(t, err)
		return msg.(*ct.ReplyCatflipRoundList).Rounds
	}
	assert.Len(t, list(0), 1)
	assert.Len(t, list(2), 2)
	// 超过上限按上限截断，不退回默认值
	assert.Len(t, list(100), 2)
}

func TestQueryVaultLayout(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(coin, 500, 200)

	msg, err := env.newExec().Query(ct.FuncNameGetVaultLayout, types.Encode(&types.ReqNil{}))
	require.Nil(t, err)
	data, err := common.FromHex(msg.(*ct.ReplyCatflipLayout).Data)
	require.Nil(t, err)
	img, err := ct.DecodeVault(data)
	require.Nil(t, err)
	assert.Equal(t, ct.IdentityOf(env.authority), img.Authority)
	assert.Equal(t, uint64(coin), img.MinBet)
	assert.Equal(t, uint16(500), img.MaxExposureBps)

	msg, err = env.newExec().Query(ct.FuncNameGetBetRound, types.Encode(&ct.ReqCatflipRound{RoundId: "nobody-1"}))
	assert.Nil(t, msg)
	assert.Equal(t, ct.ErrBetRoundNotFound, err)
}

func TestQueryBetRoundLayout(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	env.initVault(coin, 500, 200)
	env.fund(1000 * coin)

	round, err := env.bet(10 * coin)
	require.Nil(t, err)
	req := types.Encode(&ct.ReqCatflipRound{RoundId: round.RoundId})

	msg, err := env.newExec().Query(ct.FuncNameGetBetRoundLayout, req)
	require.Nil(t, err)
	data, err := common.FromHex(msg.(*ct.ReplyCatflipLayout).Data)
	require.Nil(t, err)
	assert.Len(t, data, ct.BetRoundSize)
	img, err := ct.DecodeBetRound(data)
	require.Nil(t, err)
	assert.Equal(t, ct.IdentityOf(env.player), img.Player)
	assert.Equal(t, uint64(10*coin), img.Stake)
	assert.Equal(t, uint64(round.PotentialPayout), img.PotentialPayout)
	assert.Equal(t, uint64(env.height), img.Slot)
	assert.Equal(t, env.blocktime, img.Timestamp)
	assert.Equal(t, round.RandomnessSeed, img.RandomnessSeed[:])
	assert.False(t, img.IsSettled)

	proof, win := env.proof(round)
	_, err = env.fulfill(round, proof, env.authorityPriv)
	require.Nil(t, err)
	msg, err = env.newExec().Query(ct.FuncNameGetBetRoundLayout, req)
	require.Nil(t, err)
	data, err = common.FromHex(msg.(*ct.ReplyCatflipLayout).Data)
	require.Nil(t, err)
	img, err = ct.DecodeBetRound(data)
	require.Nil(t, err)
	assert.True(t, img.IsSettled)
	assert.Equal(t, win, img.IsWinner)

	_, err = env.newExec().Query(ct.FuncNameGetBetRoundLayout, types.Encode(&ct.ReqCatflipRound{RoundId: "nobody-1"}))
	assert.Equal(t, ct.ErrBetRoundNotFound, err)
}
