// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"encoding/binary"

	"github.com/33cn/chain33/common"
)

// Fixed width little-endian images of the records, byte compatible with
// clients that read the account layouts directly.
const (
	MinimalVaultSize = 1 + 32 + 8 + 8 + 8
	VaultSize        = 8 + 32 + 1 + 1 + 8 + 2 + 2 + 8 + 8 + 8 + 32
	BetRoundSize     = 8 + 32 + 8 + 8 + 8 + 8 + 32 + 1 + 1 + 1 + 16

	// bump has no meaning on chain33, always written as the canonical value
	canonicalBump = 255
)

var (
	vaultDiscriminator    = discriminator("Vault")
	betRoundDiscriminator = discriminator("BetRound")
)

func discriminator(name string) []byte {
	return common.Sha256([]byte("account:" + name))[:8]
}

// IdentityOf maps a chain33 address to the 32 byte identity slot.
func IdentityOf(addr string) [32]byte {
	var id [32]byte
	if addr == "" {
		return id
	}
	copy(id[:], common.Sha256([]byte(addr)))
	return id
}

// MinimalVaultImage 直接结算版本金库
type MinimalVaultImage struct {
	IsInitialized bool
	Authority     [32]byte
	MinBet        uint64
	TotalBets     uint64
	TotalVolume   uint64
}

// VaultImage 两阶段版本金库
type VaultImage struct {
	Authority      [32]byte
	Bump           uint8
	IsPaused       bool
	MinBet         uint64
	MaxExposureBps uint16
	HouseEdgeBps   uint16
	TotalVolume    uint64
	TotalBets      uint64
	TotalWins      uint64
}

// BetRoundImage 下注记录
type BetRoundImage struct {
	Player          [32]byte
	Stake           uint64
	PotentialPayout uint64
	Timestamp       int64
	Slot            uint64
	RandomnessSeed  [32]byte
	IsSettled       bool
	IsWinner        bool
	Bump            uint8
}

// NewVaultImage converts a stored vault.
func NewVaultImage(v *Vault) (*VaultImage, error) {
	if err := CheckBps(v.GetMaxExposureBps()); err != nil {
		return nil, err
	}
	if err := CheckBps(v.GetHouseEdgeBps()); err != nil {
		return nil, err
	}
	return &VaultImage{
		Authority:      IdentityOf(v.GetAuthority()),
		Bump:           canonicalBump,
		IsPaused:       v.GetIsPaused(),
		MinBet:         uint64(v.GetMinBet()),
		MaxExposureBps: uint16(v.GetMaxExposureBps()),
		HouseEdgeBps:   uint16(v.GetHouseEdgeBps()),
		TotalVolume:    uint64(v.GetTotalVolume()),
		TotalBets:      uint64(v.GetTotalBets()),
		TotalWins:      uint64(v.GetTotalWins()),
	}, nil
}

// NewBetRoundImage converts a stored round.
func NewBetRoundImage(r *BetRound) *BetRoundImage {
	img := &BetRoundImage{
		Player:          IdentityOf(r.GetPlayer()),
		Stake:           uint64(r.GetStake()),
		PotentialPayout: uint64(r.GetPotentialPayout()),
		Timestamp:       r.GetTimestamp(),
		Slot:            uint64(r.GetHeight()),
		IsSettled:       r.GetIsSettled(),
		IsWinner:        r.GetIsWinner(),
		Bump:            canonicalBump,
	}
	copy(img.RandomnessSeed[:], r.GetRandomnessSeed())
	return img
}

// Encode 57 字节
func (v *MinimalVaultImage) Encode() []byte {
	buf := make([]byte, 0, MinimalVaultSize)
	buf = append(buf, boolByte(v.IsInitialized))
	buf = append(buf, v.Authority[:]...)
	buf = binary.LittleEndian.AppendUint64(buf, v.MinBet)
	buf = binary.LittleEndian.AppendUint64(buf, v.TotalBets)
	buf = binary.LittleEndian.AppendUint64(buf, v.TotalVolume)
	return buf
}

// DecodeMinimalVault parses a 57 byte image.
func DecodeMinimalVault(data []byte) (*MinimalVaultImage, error) {
	if len(data) != MinimalVaultSize {
		return nil, ErrInvalidLayout
	}
	v := &MinimalVaultImage{IsInitialized: data[0] != 0}
	copy(v.Authority[:], data[1:33])
	v.MinBet = binary.LittleEndian.Uint64(data[33:41])
	v.TotalBets = binary.LittleEndian.Uint64(data[41:49])
	v.TotalVolume = binary.LittleEndian.Uint64(data[49:57])
	return v, nil
}

// Encode discriminator + fields + 32 bytes reserved
func (v *VaultImage) Encode() []byte {
	buf := make([]byte, 0, VaultSize)
	buf = append(buf, vaultDiscriminator...)
	buf = append(buf, v.Authority[:]...)
	buf = append(buf, v.Bump, boolByte(v.IsPaused))
	buf = binary.LittleEndian.AppendUint64(buf, v.MinBet)
	buf = binary.LittleEndian.AppendUint16(buf, v.MaxExposureBps)
	buf = binary.LittleEndian.AppendUint16(buf, v.HouseEdgeBps)
	buf = binary.LittleEndian.AppendUint64(buf, v.TotalVolume)
	buf = binary.LittleEndian.AppendUint64(buf, v.TotalBets)
	buf = binary.LittleEndian.AppendUint64(buf, v.TotalWins)
	return append(buf, make([]byte, 32)...)
}

// DecodeVault parses a full vault image.
func DecodeVault(data []byte) (*VaultImage, error) {
	if len(data) != VaultSize || !bytes.Equal(data[:8], vaultDiscriminator) {
		return nil, ErrInvalidLayout
	}
	v := &VaultImage{}
	p := data[8:]
	copy(v.Authority[:], p[:32])
	v.Bump = p[32]
	v.IsPaused = p[33] != 0
	v.MinBet = binary.LittleEndian.Uint64(p[34:42])
	v.MaxExposureBps = binary.LittleEndian.Uint16(p[42:44])
	v.HouseEdgeBps = binary.LittleEndian.Uint16(p[44:46])
	v.TotalVolume = binary.LittleEndian.Uint64(p[46:54])
	v.TotalBets = binary.LittleEndian.Uint64(p[54:62])
	v.TotalWins = binary.LittleEndian.Uint64(p[62:70])
	return v, nil
}

// Encode discriminator + fields + 16 bytes reserved
func (r *BetRoundImage) Encode() []byte {
	buf := make([]byte, 0, BetRoundSize)
	buf = append(buf, betRoundDiscriminator...)
	buf = append(buf, r.Player[:]...)
	buf = binary.LittleEndian.AppendUint64(buf, r.Stake)
	buf = binary.LittleEndian.AppendUint64(buf, r.PotentialPayout)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(r.Timestamp))
	buf = binary.LittleEndian.AppendUint64(buf, r.Slot)
	buf = append(buf, r.RandomnessSeed[:]...)
	buf = append(buf, boolByte(r.IsSettled), boolByte(r.IsWinner), r.Bump)
	return append(buf, make([]byte, 16)...)
}

// DecodeBetRound parses a bet round image.
func DecodeBetRound(data []byte) (*BetRoundImage, error) {
	if len(data) != BetRoundSize || !bytes.Equal(data[:8], betRoundDiscriminator) {
		return nil, ErrInvalidLayout
	}
	r := &BetRoundImage{}
	p := data[8:]
	copy(r.Player[:], p[:32])
	r.Stake = binary.LittleEndian.Uint64(p[32:40])
	r.PotentialPayout = binary.LittleEndian.Uint64(p[40:48])
	r.Timestamp = int64(binary.LittleEndian.Uint64(p[48:56]))
	r.Slot = binary.LittleEndian.Uint64(p[56:64])
	copy(r.RandomnessSeed[:], p[64:96])
	r.IsSettled = p[96] != 0
	r.IsWinner = p[97] != 0
	r.Bump = p[98]
	return r, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
