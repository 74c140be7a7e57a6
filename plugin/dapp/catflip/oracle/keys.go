// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/crypto"
	vrf "github.com/33cn/chain33/common/vrf/secp256k1"
	"github.com/33cn/chain33/types"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// ParseVrfKey hex 编码的 secp256k1 标量，不足 32 字节左补零
func ParseVrfKey(s string) (*vrf.PrivateKey, error) {
	b, err := common.FromHex(s)
	if err != nil {
		return nil, errors.Wrap(err, "vrf key")
	}
	if len(b) == 0 || len(b) > 32 {
		return nil, errors.New("vrf key must be 1..32 bytes")
	}
	key, err := ethcrypto.ToECDSA(ethcommon.LeftPadBytes(b, 32))
	if err != nil {
		return nil, errors.Wrap(err, "vrf key")
	}
	return &vrf.PrivateKey{PrivateKey: key}, nil
}

// VrfPublicKey 预言机公钥，Initialize / SetOracle 里使用
func VrfPublicKey(key *vrf.PrivateKey) *vrf.PublicKey {
	return &vrf.PublicKey{PublicKey: &key.PublicKey}
}

// ParseSignKey hex 编码的 secp256k1 私钥
func ParseSignKey(s string) (crypto.PrivKey, error) {
	b, err := common.FromHex(s)
	if err != nil {
		return nil, errors.Wrap(err, "sign key")
	}
	c, err := crypto.New(types.GetSignName("", types.SECP256K1))
	if err != nil {
		return nil, err
	}
	priv, err := c.PrivKeyFromBytes(b)
	if err != nil {
		return nil, errors.Wrap(err, "sign key")
	}
	return priv, nil
}

// MarshalVrfPublicKey 04||X||Y hex
func MarshalVrfPublicKey(key *vrf.PrivateKey) string {
	return common.ToHex(ct.MarshalOraclePubKey(VrfPublicKey(key)))
}
