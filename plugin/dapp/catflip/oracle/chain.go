// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"context"

	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/crypto"
	"github.com/33cn/chain33/rpc/jsonclient"
	rpctypes "github.com/33cn/chain33/rpc/types"
	"github.com/33cn/chain33/types"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
	"github.com/pkg/errors"
)

// Chain 预言机需要的链上接口
type Chain interface {
	PendingRounds(ctx context.Context, index int64, count int32) ([]*ct.BetRound, error)
	Vault(ctx context.Context) (*ct.Vault, error)
	SubmitFulfill(ctx context.Context, roundID, proof string) (string, error)
}

// RPCChain 通过 chain33 jsonrpc 访问节点
type RPCChain struct {
	client   *jsonclient.JSONClient
	execName string
	fee      int64
	signer   crypto.PrivKey
}

// NewRPCChain new chain client
func NewRPCChain(cfg ChainConfig, signer crypto.PrivKey) (*RPCChain, error) {
	client, err := jsonclient.NewJSONClient(cfg.RPCAddr)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", cfg.RPCAddr)
	}
	return &RPCChain{
		client:   client,
		execName: cfg.ParaName + ct.CatflipX,
		fee:      cfg.Fee,
		signer:   signer,
	}, nil
}

// PendingRounds 按下注顺序返回待开奖的局
func (c *RPCChain) PendingRounds(ctx context.Context, index int64, count int32) ([]*ct.BetRound, error) {
	req := &ct.ReqCatflipRoundList{
		Status:    ct.RoundStatusPending,
		Index:     index,
		Count:     count,
		Direction: 1,
	}
	var reply ct.ReplyCatflipRoundList
	if err := c.query(ct.FuncNameListBetRounds, req, &reply); err != nil {
		return nil, err
	}
	return reply.Rounds, nil
}

// Vault current vault
func (c *RPCChain) Vault(ctx context.Context) (*ct.Vault, error) {
	var reply ct.ReplyCatflipVault
	if err := c.query(ct.FuncNameGetVault, &types.ReqNil{}, &reply); err != nil {
		return nil, err
	}
	return reply.Vault, nil
}

func (c *RPCChain) query(funcName string, req, reply types.Message) error {
	params := rpctypes.Query4Jrpc{
		Execer:   c.execName,
		FuncName: funcName,
		Payload:  types.MustPBToJSON(req),
	}
	if err := c.client.Call("Chain33.Query", params, reply); err != nil {
		return errors.Wrap(err, funcName)
	}
	return nil
}

// SubmitFulfill 构造、签名并发送开奖交易，返回交易哈希
func (c *RPCChain) SubmitFulfill(ctx context.Context, roundID, proof string) (string, error) {
	params := &rpctypes.CreateTxIn{
		Execer:     c.execName,
		ActionName: ct.NameFulfillRandomnessAction,
		Payload:    types.MustPBToJSON(&ct.CatflipFulfillRandomness{RoundId: roundID, Proof: proof}),
	}
	var rawHex string
	if err := c.client.Call("Chain33.CreateTransaction", params, &rawHex); err != nil {
		return "", errors.Wrap(err, "CreateTransaction")
	}
	tx, err := signRawTx(rawHex, c.fee, c.signer)
	if err != nil {
		return "", err
	}
	var hash string
	send := rpctypes.RawParm{Data: common.ToHex(types.Encode(tx))}
	if err := c.client.Call("Chain33.SendTransaction", send, &hash); err != nil {
		return "", errors.Wrap(err, "SendTransaction")
	}
	return hash, nil
}

func signRawTx(rawHex string, fee int64, signer crypto.PrivKey) (*types.Transaction, error) {
	data, err := common.FromHex(rawHex)
	if err != nil {
		return nil, errors.Wrap(err, "decode raw tx")
	}
	var tx types.Transaction
	if err := types.Decode(data, &tx); err != nil {
		return nil, errors.Wrap(err, "decode raw tx")
	}
	if fee > tx.Fee {
		tx.Fee = fee
	}
	tx.Sign(int32(types.SECP256K1), signer)
	return &tx, nil
}
