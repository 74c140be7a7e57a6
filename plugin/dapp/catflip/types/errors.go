// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrMissingSignature         = errors.New("ErrMissingSignature")
	ErrVaultAlreadyInitialized  = errors.New("ErrVaultAlreadyInitialized")
	ErrVaultUninitialized       = errors.New("ErrVaultUninitialized")
	ErrGamePaused               = errors.New("ErrGamePaused")
	ErrBetBelowMinimum          = errors.New("ErrBetBelowMinimum")
	ErrBetExceedsMaxExposure    = errors.New("ErrBetExceedsMaxExposure")
	ErrInsufficientVaultBalance = errors.New("ErrInsufficientVaultBalance")
	ErrInsufficientFunds        = errors.New("ErrInsufficientFunds")
	ErrBetAlreadySettled        = errors.New("ErrBetAlreadySettled")
	ErrBetNotTimedOut           = errors.New("ErrBetNotTimedOut")
	ErrUnauthorized             = errors.New("ErrUnauthorized")
	ErrMathOverflow             = errors.New("ErrMathOverflow")
	ErrBetRoundNotFound         = errors.New("ErrBetRoundNotFound")
	ErrBetRoundExists           = errors.New("ErrBetRoundExists")
	ErrInvalidBps               = errors.New("ErrInvalidBps")
	ErrInvalidOracleKey         = errors.New("ErrInvalidOracleKey")
	ErrInvalidVrfProof          = errors.New("ErrInvalidVrfProof")
	ErrInvalidLayout            = errors.New("ErrInvalidLayout")
)
