// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plugin 注册 catflip 与 quickflip 两个 dapp
package plugin

import (
	_ "github.com/catflip-labs/catflip/plugin/dapp/catflip"   //auto gen
	_ "github.com/catflip-labs/catflip/plugin/dapp/quickflip" //auto gen
)
