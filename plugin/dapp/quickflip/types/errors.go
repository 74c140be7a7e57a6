// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// ErrRandomnessUnavailable 没有配置随机数执行器，下注一律拒绝
var ErrRandomnessUnavailable = errors.New("ErrRandomnessUnavailable")
