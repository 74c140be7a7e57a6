// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/chain33/common"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
	"github.com/pkg/errors"
)

// LayoutDecoder 把定长布局解码成可读字段
type LayoutDecoder func(data []byte) (interface{}, error)

// LayoutView 布局原文及解码结果
type LayoutView struct {
	Data   string      `json:"data"`
	Size   int         `json:"size"`
	Fields interface{} `json:"fields"`
}

type minimalVaultFields struct {
	IsInitialized bool   `json:"isInitialized"`
	Authority     string `json:"authority"`
	MinBet        string `json:"minBet"`
	TotalBets     uint64 `json:"totalBets"`
	TotalVolume   string `json:"totalVolume"`
}

type vaultFields struct {
	Authority      string `json:"authority"`
	Bump           uint8  `json:"bump"`
	IsPaused       bool   `json:"isPaused"`
	MinBet         string `json:"minBet"`
	MaxExposureBps uint16 `json:"maxExposureBps"`
	HouseEdgeBps   uint16 `json:"houseEdgeBps"`
	TotalVolume    string `json:"totalVolume"`
	TotalBets      uint64 `json:"totalBets"`
	TotalWins      uint64 `json:"totalWins"`
}

type betRoundFields struct {
	Player          string `json:"player"`
	Stake           string `json:"stake"`
	PotentialPayout string `json:"potentialPayout"`
	Timestamp       int64  `json:"timestamp"`
	Slot            uint64 `json:"slot"`
	RandomnessSeed  string `json:"randomnessSeed"`
	IsSettled       bool   `json:"isSettled"`
	IsWinner        bool   `json:"isWinner"`
	Bump            uint8  `json:"bump"`
}

// ParseLayout 解码查询返回的 hex 布局
func ParseLayout(hexData string, decode LayoutDecoder) (*LayoutView, error) {
	data, err := common.FromHex(hexData)
	if err != nil {
		return nil, errors.Wrap(err, "layout hex")
	}
	fields, err := decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %d byte layout", len(data))
	}
	return &LayoutView{Data: hexData, Size: len(data), Fields: fields}, nil
}

// MinimalVaultFields 57 字节金库
func MinimalVaultFields(data []byte) (interface{}, error) {
	v, err := ct.DecodeMinimalVault(data)
	if err != nil {
		return nil, err
	}
	return &minimalVaultFields{
		IsInitialized: v.IsInitialized,
		Authority:     common.ToHex(v.Authority[:]),
		MinBet:        FormatCoins(int64(v.MinBet)),
		TotalBets:     v.TotalBets,
		TotalVolume:   FormatCoins(int64(v.TotalVolume)),
	}, nil
}

// VaultFields 两阶段金库
func VaultFields(data []byte) (interface{}, error) {
	v, err := ct.DecodeVault(data)
	if err != nil {
		return nil, err
	}
	return &vaultFields{
		Authority:      common.ToHex(v.Authority[:]),
		Bump:           v.Bump,
		IsPaused:       v.IsPaused,
		MinBet:         FormatCoins(int64(v.MinBet)),
		MaxExposureBps: v.MaxExposureBps,
		HouseEdgeBps:   v.HouseEdgeBps,
		TotalVolume:    FormatCoins(int64(v.TotalVolume)),
		TotalBets:      v.TotalBets,
		TotalWins:      v.TotalWins,
	}, nil
}

// BetRoundFields 单局
func BetRoundFields(data []byte) (interface{}, error) {
	r, err := ct.DecodeBetRound(data)
	if err != nil {
		return nil, err
	}
	return &betRoundFields{
		Player:          common.ToHex(r.Player[:]),
		Stake:           FormatCoins(int64(r.Stake)),
		PotentialPayout: FormatCoins(int64(r.PotentialPayout)),
		Timestamp:       r.Timestamp,
		Slot:            r.Slot,
		RandomnessSeed:  common.ToHex(r.RandomnessSeed[:]),
		IsSettled:       r.IsSettled,
		IsWinner:        r.IsWinner,
		Bump:            r.Bump,
	}, nil
}
