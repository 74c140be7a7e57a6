// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/chain33/common"
	vrf "github.com/33cn/chain33/common/vrf/secp256k1"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// RoundSeed 每局的随机种子由下注交易哈希决定，下注时即固定，预言机无法选择
func RoundSeed(betTxHash []byte) []byte {
	return common.Sha256(betTxHash)
}

// ParseOraclePubKey 解析未压缩格式(65字节)的 secp256k1 公钥
func ParseOraclePubKey(data []byte) (*vrf.PublicKey, error) {
	pub, err := ethcrypto.UnmarshalPubkey(data)
	if err != nil {
		return nil, ErrInvalidOracleKey
	}
	return &vrf.PublicKey{PublicKey: pub}, nil
}

// MarshalOraclePubKey 公钥编码为未压缩格式 04||X||Y
func MarshalOraclePubKey(pub *vrf.PublicKey) []byte {
	return ethcrypto.FromECDSAPub(pub.PublicKey)
}

// VerifyRandomness checks the oracle's VRF proof for seed and returns the
// 32 byte output.
func VerifyRandomness(oraclePubKey, seed, proof []byte) ([32]byte, error) {
	pub, err := ParseOraclePubKey(oraclePubKey)
	if err != nil {
		return [32]byte{}, err
	}
	out, err := pub.ProofToHash(seed, proof)
	if err != nil {
		tlog.Debug("VerifyRandomness", "err", err)
		return [32]byte{}, ErrInvalidVrfProof
	}
	return out, nil
}

// IsWinningOutput 随机数最后一个字节为偶数则玩家胜
func IsWinningOutput(out [32]byte) bool {
	return out[31]%2 == 0
}
