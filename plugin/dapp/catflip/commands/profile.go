// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/BurntSushi/toml"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
	"github.com/pkg/errors"
)

// HouseProfile 庄家参数文件
//
//	minBet = "0.5"
//	maxExposureBps = 500
//	houseEdgeBps = 200
//	oraclePubKey = "04..."
type HouseProfile struct {
	MinBet         string `toml:"minBet"`
	MaxExposureBps int32  `toml:"maxExposureBps"`
	HouseEdgeBps   int32  `toml:"houseEdgeBps"`
	OraclePubKey   string `toml:"oraclePubKey"`
}

// LoadHouseProfile read a house profile toml
func LoadHouseProfile(path string) (*HouseProfile, error) {
	profile := &HouseProfile{}
	if _, err := toml.DecodeFile(path, profile); err != nil {
		return nil, errors.Wrapf(err, "decode house profile %s", path)
	}
	return profile, nil
}

// Payload 转换成 Initialize 参数，基点在链上再校验一次
func (p *HouseProfile) Payload() (*ct.CatflipInitialize, error) {
	if p.MinBet == "" {
		return nil, errors.New("house profile: minBet is required")
	}
	minBet, err := ParseCoins(p.MinBet)
	if err != nil {
		return nil, err
	}
	if err := ct.CheckBps(p.MaxExposureBps); err != nil {
		return nil, errors.Wrap(err, "maxExposureBps")
	}
	if err := ct.CheckBps(p.HouseEdgeBps); err != nil {
		return nil, errors.Wrap(err, "houseEdgeBps")
	}
	if p.OraclePubKey == "" {
		return nil, errors.New("house profile: oraclePubKey is required")
	}
	return &ct.CatflipInitialize{
		MinBet:         minBet,
		MaxExposureBps: p.MaxExposureBps,
		HouseEdgeBps:   p.HouseEdgeBps,
		OraclePubKey:   p.OraclePubKey,
	}, nil
}
