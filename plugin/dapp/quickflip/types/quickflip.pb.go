// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Message definitions mirror proto/quickflip.proto. Keep both in step when
// adding fields.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// QuickflipVault 单阶段玩法的金库
type QuickflipVault struct {
	IsInitialized bool   `protobuf:"varint,1,opt,name=isInitialized,proto3" json:"isInitialized,omitempty"`
	Authority     string `protobuf:"bytes,2,opt,name=authority,proto3" json:"authority,omitempty"`
	MinBet        int64  `protobuf:"varint,3,opt,name=minBet,proto3" json:"minBet,omitempty"`
	TotalBets     int64  `protobuf:"varint,4,opt,name=totalBets,proto3" json:"totalBets,omitempty"`
	TotalVolume   int64  `protobuf:"varint,5,opt,name=totalVolume,proto3" json:"totalVolume,omitempty"`
	TotalWins     int64  `protobuf:"varint,6,opt,name=totalWins,proto3" json:"totalWins,omitempty"`
}

func (m *QuickflipVault) Reset()         { *m = QuickflipVault{} }
func (m *QuickflipVault) String() string { return proto.CompactTextString(m) }
func (*QuickflipVault) ProtoMessage()    {}

func (m *QuickflipVault) GetIsInitialized() bool {
	if m != nil {
		return m.IsInitialized
	}
	return false
}

func (m *QuickflipVault) GetAuthority() string {
	if m != nil {
		return m.Authority
	}
	return ""
}

func (m *QuickflipVault) GetMinBet() int64 {
	if m != nil {
		return m.MinBet
	}
	return 0
}

func (m *QuickflipVault) GetTotalBets() int64 {
	if m != nil {
		return m.TotalBets
	}
	return 0
}

func (m *QuickflipVault) GetTotalVolume() int64 {
	if m != nil {
		return m.TotalVolume
	}
	return 0
}

func (m *QuickflipVault) GetTotalWins() int64 {
	if m != nil {
		return m.TotalWins
	}
	return 0
}

type QuickflipAction struct {
	// Types that are valid to be assigned to Value:
	//	*QuickflipAction_Initialize
	//	*QuickflipAction_Bet
	//	*QuickflipAction_FundVault
	Value isQuickflipAction_Value `protobuf_oneof:"value"`
	Ty    int32                   `protobuf:"varint,10,opt,name=ty,proto3" json:"ty,omitempty"`
}

func (m *QuickflipAction) Reset()         { *m = QuickflipAction{} }
func (m *QuickflipAction) String() string { return proto.CompactTextString(m) }
func (*QuickflipAction) ProtoMessage()    {}

type isQuickflipAction_Value interface {
	isQuickflipAction_Value()
}

type QuickflipAction_Initialize struct {
	Initialize *QuickflipInitialize `protobuf:"bytes,1,opt,name=initialize,proto3,oneof"`
}

type QuickflipAction_Bet struct {
	Bet *QuickflipBet `protobuf:"bytes,2,opt,name=bet,proto3,oneof"`
}

type QuickflipAction_FundVault struct {
	FundVault *QuickflipFundVault `protobuf:"bytes,3,opt,name=fundVault,proto3,oneof"`
}

func (*QuickflipAction_Initialize) isQuickflipAction_Value() {}

func (*QuickflipAction_Bet) isQuickflipAction_Value() {}

func (*QuickflipAction_FundVault) isQuickflipAction_Value() {}

func (m *QuickflipAction) GetValue() isQuickflipAction_Value {
	if m != nil {
		return m.Value
	}
	return nil
}

func (m *QuickflipAction) GetInitialize() *QuickflipInitialize {
	if x, ok := m.GetValue().(*QuickflipAction_Initialize); ok {
		return x.Initialize
	}
	return nil
}

func (m *QuickflipAction) GetBet() *QuickflipBet {
	if x, ok := m.GetValue().(*QuickflipAction_Bet); ok {
		return x.Bet
	}
	return nil
}

func (m *QuickflipAction) GetFundVault() *QuickflipFundVault {
	if x, ok := m.GetValue().(*QuickflipAction_FundVault); ok {
		return x.FundVault
	}
	return nil
}

func (m *QuickflipAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*QuickflipAction) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*QuickflipAction_Initialize)(nil),
		(*QuickflipAction_Bet)(nil),
		(*QuickflipAction_FundVault)(nil),
	}
}

type QuickflipInitialize struct {
	MinBet int64 `protobuf:"varint,1,opt,name=minBet,proto3" json:"minBet,omitempty"`
}

func (m *QuickflipInitialize) Reset()         { *m = QuickflipInitialize{} }
func (m *QuickflipInitialize) String() string { return proto.CompactTextString(m) }
func (*QuickflipInitialize) ProtoMessage()    {}

func (m *QuickflipInitialize) GetMinBet() int64 {
	if m != nil {
		return m.MinBet
	}
	return 0
}

type QuickflipBet struct {
	Amount int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *QuickflipBet) Reset()         { *m = QuickflipBet{} }
func (m *QuickflipBet) String() string { return proto.CompactTextString(m) }
func (*QuickflipBet) ProtoMessage()    {}

func (m *QuickflipBet) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type QuickflipFundVault struct {
	Amount int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *QuickflipFundVault) Reset()         { *m = QuickflipFundVault{} }
func (m *QuickflipFundVault) String() string { return proto.CompactTextString(m) }
func (*QuickflipFundVault) ProtoMessage()    {}

func (m *QuickflipFundVault) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type ReceiptQuickflipVault struct {
	Vault  *QuickflipVault `protobuf:"bytes,1,opt,name=vault,proto3" json:"vault,omitempty"`
	Action string          `protobuf:"bytes,2,opt,name=action,proto3" json:"action,omitempty"`
	Amount int64           `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ReceiptQuickflipVault) Reset()         { *m = ReceiptQuickflipVault{} }
func (m *ReceiptQuickflipVault) String() string { return proto.CompactTextString(m) }
func (*ReceiptQuickflipVault) ProtoMessage()    {}

func (m *ReceiptQuickflipVault) GetVault() *QuickflipVault {
	if m != nil {
		return m.Vault
	}
	return nil
}

func (m *ReceiptQuickflipVault) GetAction() string {
	if m != nil {
		return m.Action
	}
	return ""
}

func (m *ReceiptQuickflipVault) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type ReceiptQuickflipBet struct {
	Player   string          `protobuf:"bytes,1,opt,name=player,proto3" json:"player,omitempty"`
	Amount   int64           `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	IsWinner bool            `protobuf:"varint,3,opt,name=isWinner,proto3" json:"isWinner,omitempty"`
	Payout   int64           `protobuf:"varint,4,opt,name=payout,proto3" json:"payout,omitempty"`
	Seed     uint64          `protobuf:"varint,5,opt,name=seed,proto3" json:"seed,omitempty"`
	Height   int64           `protobuf:"varint,6,opt,name=height,proto3" json:"height,omitempty"`
	Index    int64           `protobuf:"varint,7,opt,name=index,proto3" json:"index,omitempty"`
	TxHash   string          `protobuf:"bytes,8,opt,name=txHash,proto3" json:"txHash,omitempty"`
	Vault    *QuickflipVault `protobuf:"bytes,9,opt,name=vault,proto3" json:"vault,omitempty"`
}

func (m *ReceiptQuickflipBet) Reset()         { *m = ReceiptQuickflipBet{} }
func (m *ReceiptQuickflipBet) String() string { return proto.CompactTextString(m) }
func (*ReceiptQuickflipBet) ProtoMessage()    {}

func (m *ReceiptQuickflipBet) GetPlayer() string {
	if m != nil {
		return m.Player
	}
	return ""
}

func (m *ReceiptQuickflipBet) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *ReceiptQuickflipBet) GetIsWinner() bool {
	if m != nil {
		return m.IsWinner
	}
	return false
}

func (m *ReceiptQuickflipBet) GetPayout() int64 {
	if m != nil {
		return m.Payout
	}
	return 0
}

func (m *ReceiptQuickflipBet) GetSeed() uint64 {
	if m != nil {
		return m.Seed
	}
	return 0
}

func (m *ReceiptQuickflipBet) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

func (m *ReceiptQuickflipBet) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

func (m *ReceiptQuickflipBet) GetTxHash() string {
	if m != nil {
		return m.TxHash
	}
	return ""
}

func (m *ReceiptQuickflipBet) GetVault() *QuickflipVault {
	if m != nil {
		return m.Vault
	}
	return nil
}

type ReqQuickflipFlips struct {
	Player    string `protobuf:"bytes,1,opt,name=player,proto3" json:"player,omitempty"`
	Index     int64  `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
	Count     int32  `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,4,opt,name=direction,proto3" json:"direction,omitempty"`
}

func (m *ReqQuickflipFlips) Reset()         { *m = ReqQuickflipFlips{} }
func (m *ReqQuickflipFlips) String() string { return proto.CompactTextString(m) }
func (*ReqQuickflipFlips) ProtoMessage()    {}

func (m *ReqQuickflipFlips) GetPlayer() string {
	if m != nil {
		return m.Player
	}
	return ""
}

func (m *ReqQuickflipFlips) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

func (m *ReqQuickflipFlips) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

func (m *ReqQuickflipFlips) GetDirection() int32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

type ReplyQuickflipFlips struct {
	Flips []*ReceiptQuickflipBet `protobuf:"bytes,1,rep,name=flips,proto3" json:"flips,omitempty"`
}

func (m *ReplyQuickflipFlips) Reset()         { *m = ReplyQuickflipFlips{} }
func (m *ReplyQuickflipFlips) String() string { return proto.CompactTextString(m) }
func (*ReplyQuickflipFlips) ProtoMessage()    {}

func (m *ReplyQuickflipFlips) GetFlips() []*ReceiptQuickflipBet {
	if m != nil {
		return m.Flips
	}
	return nil
}

type ReplyQuickflipVault struct {
	Vault     *QuickflipVault `protobuf:"bytes,1,opt,name=vault,proto3" json:"vault,omitempty"`
	Balance   int64           `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
	VaultAddr string          `protobuf:"bytes,3,opt,name=vaultAddr,proto3" json:"vaultAddr,omitempty"`
}

func (m *ReplyQuickflipVault) Reset()         { *m = ReplyQuickflipVault{} }
func (m *ReplyQuickflipVault) String() string { return proto.CompactTextString(m) }
func (*ReplyQuickflipVault) ProtoMessage()    {}

func (m *ReplyQuickflipVault) GetVault() *QuickflipVault {
	if m != nil {
		return m.Vault
	}
	return nil
}

func (m *ReplyQuickflipVault) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

func (m *ReplyQuickflipVault) GetVaultAddr() string {
	if m != nil {
		return m.VaultAddr
	}
	return ""
}

type ReplyQuickflipLayout struct {
	Data string `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ReplyQuickflipLayout) Reset()         { *m = ReplyQuickflipLayout{} }
func (m *ReplyQuickflipLayout) String() string { return proto.CompactTextString(m) }
func (*ReplyQuickflipLayout) ProtoMessage()    {}

func (m *ReplyQuickflipLayout) GetData() string {
	if m != nil {
		return m.Data
	}
	return ""
}
