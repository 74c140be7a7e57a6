// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"math"

	"github.com/33cn/chain33/types"
	gmath "github.com/ethereum/go-ethereum/common/math"
)

// 直接结算版本的胜率与赔率: 49% 胜率, 1.96 倍返还
const (
	DirectWinThreshold = 49
	DirectPayoutNum    = 196
	DirectPayoutDen    = 100
)

// CheckBps bps 必须在 [0, 10000]
func CheckBps(bps int32) error {
	if bps < 0 || bps > BpsDenominator {
		return ErrInvalidBps
	}
	return nil
}

// CalcMaxBet balance * maxExposureBps / 10000
func CalcMaxBet(balance int64, maxExposureBps int32) (int64, error) {
	if balance < 0 {
		return 0, types.ErrAmount
	}
	if err := CheckBps(maxExposureBps); err != nil {
		return 0, err
	}
	return mulDiv(uint64(balance), uint64(maxExposureBps), BpsDenominator)
}

// CalcPotentialPayout amount * 2 * (10000 - houseEdgeBps) / 10000
func CalcPotentialPayout(amount int64, houseEdgeBps int32) (int64, error) {
	if amount < 0 {
		return 0, types.ErrAmount
	}
	if err := CheckBps(houseEdgeBps); err != nil {
		return 0, err
	}
	doubled, overflow := gmath.SafeMul(uint64(amount), 2)
	if overflow {
		return 0, ErrMathOverflow
	}
	return mulDiv(doubled, uint64(BpsDenominator-houseEdgeBps), BpsDenominator)
}

// CalcDirectPayout amount * 196 / 100
func CalcDirectPayout(amount int64) (int64, error) {
	if amount < 0 {
		return 0, types.ErrAmount
	}
	return mulDiv(uint64(amount), DirectPayoutNum, DirectPayoutDen)
}

// SafeAddInt64 两个非负数相加，溢出返回 ErrMathOverflow
func SafeAddInt64(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, types.ErrAmount
	}
	sum, overflow := gmath.SafeAdd(uint64(a), uint64(b))
	if overflow || sum > math.MaxInt64 {
		return 0, ErrMathOverflow
	}
	return int64(sum), nil
}

// multiply first, the product must fit before the division truncates
func mulDiv(a, b, den uint64) (int64, error) {
	product, overflow := gmath.SafeMul(a, b)
	if overflow {
		return 0, ErrMathOverflow
	}
	result := product / den
	if result > math.MaxInt64 {
		return 0, ErrMathOverflow
	}
	return int64(result), nil
}
