// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"context"

	"github.com/33cn/chain33/types"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
)

func (c *channelClient) bet(ctx context.Context, parm *ct.CatflipRawBetTx) (*types.UnsignTx, error) {
	tx, err := ct.CreateRawBetTx(c.GetConfig(), parm)
	if err != nil {
		return nil, err
	}
	return &types.UnsignTx{Data: types.Encode(tx)}, nil
}

func (c *channelClient) fulfill(ctx context.Context, parm *ct.CatflipRawFulfillTx) (*types.UnsignTx, error) {
	tx, err := ct.CreateRawFulfillTx(c.GetConfig(), parm)
	if err != nil {
		return nil, err
	}
	return &types.UnsignTx{Data: types.Encode(tx)}, nil
}

func (c *channelClient) refund(ctx context.Context, parm *ct.CatflipRawRefundTx) (*types.UnsignTx, error) {
	tx, err := ct.CreateRawRefundTx(c.GetConfig(), parm)
	if err != nil {
		return nil, err
	}
	return &types.UnsignTx{Data: types.Encode(tx)}, nil
}
