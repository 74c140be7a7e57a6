// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Message definitions mirror proto/catflip.proto. Keep both in step when
// adding fields.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// Vault 庄家金库，全局唯一
type Vault struct {
	Authority      string `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority,omitempty"`
	IsPaused       bool   `protobuf:"varint,2,opt,name=isPaused,proto3" json:"isPaused,omitempty"`
	MinBet         int64  `protobuf:"varint,3,opt,name=minBet,proto3" json:"minBet,omitempty"`
	MaxExposureBps int32  `protobuf:"varint,4,opt,name=maxExposureBps,proto3" json:"maxExposureBps,omitempty"`
	HouseEdgeBps   int32  `protobuf:"varint,5,opt,name=houseEdgeBps,proto3" json:"houseEdgeBps,omitempty"`
	TotalVolume    int64  `protobuf:"varint,6,opt,name=totalVolume,proto3" json:"totalVolume,omitempty"`
	TotalBets      int64  `protobuf:"varint,7,opt,name=totalBets,proto3" json:"totalBets,omitempty"`
	TotalWins      int64  `protobuf:"varint,8,opt,name=totalWins,proto3" json:"totalWins,omitempty"`
	OraclePubKey   []byte `protobuf:"bytes,9,opt,name=oraclePubKey,proto3" json:"oraclePubKey,omitempty"`
	TotalPayout    int64  `protobuf:"varint,10,opt,name=totalPayout,proto3" json:"totalPayout,omitempty"`
	TotalRefunds   int64  `protobuf:"varint,11,opt,name=totalRefunds,proto3" json:"totalRefunds,omitempty"`
}

func (m *Vault) Reset()         { *m = Vault{} }
func (m *Vault) String() string { return proto.CompactTextString(m) }
func (*Vault) ProtoMessage()    {}

func (m *Vault) GetAuthority() string {
	if m != nil {
		return m.Authority
	}
	return ""
}

func (m *Vault) GetIsPaused() bool {
	if m != nil {
		return m.IsPaused
	}
	return false
}

func (m *Vault) GetMinBet() int64 {
	if m != nil {
		return m.MinBet
	}
	return 0
}

func (m *Vault) GetMaxExposureBps() int32 {
	if m != nil {
		return m.MaxExposureBps
	}
	return 0
}

func (m *Vault) GetHouseEdgeBps() int32 {
	if m != nil {
		return m.HouseEdgeBps
	}
	return 0
}

func (m *Vault) GetTotalVolume() int64 {
	if m != nil {
		return m.TotalVolume
	}
	return 0
}

func (m *Vault) GetTotalBets() int64 {
	if m != nil {
		return m.TotalBets
	}
	return 0
}

func (m *Vault) GetTotalWins() int64 {
	if m != nil {
		return m.TotalWins
	}
	return 0
}

func (m *Vault) GetOraclePubKey() []byte {
	if m != nil {
		return m.OraclePubKey
	}
	return nil
}

func (m *Vault) GetTotalPayout() int64 {
	if m != nil {
		return m.TotalPayout
	}
	return 0
}

func (m *Vault) GetTotalRefunds() int64 {
	if m != nil {
		return m.TotalRefunds
	}
	return 0
}

// BetRound 一局下注
type BetRound struct {
	RoundId         string `protobuf:"bytes,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Player          string `protobuf:"bytes,2,opt,name=player,proto3" json:"player,omitempty"`
	Stake           int64  `protobuf:"varint,3,opt,name=stake,proto3" json:"stake,omitempty"`
	PotentialPayout int64  `protobuf:"varint,4,opt,name=potentialPayout,proto3" json:"potentialPayout,omitempty"`
	Timestamp       int64  `protobuf:"varint,5,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Height          int64  `protobuf:"varint,6,opt,name=height,proto3" json:"height,omitempty"`
	RandomnessSeed  []byte `protobuf:"bytes,7,opt,name=randomnessSeed,proto3" json:"randomnessSeed,omitempty"`
	IsSettled       bool   `protobuf:"varint,8,opt,name=isSettled,proto3" json:"isSettled,omitempty"`
	IsWinner        bool   `protobuf:"varint,9,opt,name=isWinner,proto3" json:"isWinner,omitempty"`
	Status          int32  `protobuf:"varint,10,opt,name=status,proto3" json:"status,omitempty"`
	BetTxHash       string `protobuf:"bytes,11,opt,name=betTxHash,proto3" json:"betTxHash,omitempty"`
	CloseTxHash     string `protobuf:"bytes,12,opt,name=closeTxHash,proto3" json:"closeTxHash,omitempty"`
	Payout          int64  `protobuf:"varint,13,opt,name=payout,proto3" json:"payout,omitempty"`
	Index           int64  `protobuf:"varint,14,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *BetRound) Reset()         { *m = BetRound{} }
func (m *BetRound) String() string { return proto.CompactTextString(m) }
func (*BetRound) ProtoMessage()    {}

func (m *BetRound) GetRoundId() string {
	if m != nil {
		return m.RoundId
	}
	return ""
}

func (m *BetRound) GetPlayer() string {
	if m != nil {
		return m.Player
	}
	return ""
}

func (m *BetRound) GetStake() int64 {
	if m != nil {
		return m.Stake
	}
	return 0
}

func (m *BetRound) GetPotentialPayout() int64 {
	if m != nil {
		return m.PotentialPayout
	}
	return 0
}

func (m *BetRound) GetTimestamp() int64 {
	if m != nil {
		return m.Timestamp
	}
	return 0
}

func (m *BetRound) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

func (m *BetRound) GetRandomnessSeed() []byte {
	if m != nil {
		return m.RandomnessSeed
	}
	return nil
}

func (m *BetRound) GetIsSettled() bool {
	if m != nil {
		return m.IsSettled
	}
	return false
}

func (m *BetRound) GetIsWinner() bool {
	if m != nil {
		return m.IsWinner
	}
	return false
}

func (m *BetRound) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *BetRound) GetBetTxHash() string {
	if m != nil {
		return m.BetTxHash
	}
	return ""
}

func (m *BetRound) GetCloseTxHash() string {
	if m != nil {
		return m.CloseTxHash
	}
	return ""
}

func (m *BetRound) GetPayout() int64 {
	if m != nil {
		return m.Payout
	}
	return 0
}

func (m *BetRound) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

type CatflipAction struct {
	// Types that are valid to be assigned to Value:
	//	*CatflipAction_Initialize
	//	*CatflipAction_FundVault
	//	*CatflipAction_Bet
	//	*CatflipAction_FulfillRandomness
	//	*CatflipAction_RefundTimeout
	//	*CatflipAction_SetPause
	//	*CatflipAction_SetLimits
	//	*CatflipAction_SetEdge
	//	*CatflipAction_SetOracle
	Value isCatflipAction_Value `protobuf_oneof:"value"`
	Ty    int32                 `protobuf:"varint,10,opt,name=ty,proto3" json:"ty,omitempty"`
}

func (m *CatflipAction) Reset()         { *m = CatflipAction{} }
func (m *CatflipAction) String() string { return proto.CompactTextString(m) }
func (*CatflipAction) ProtoMessage()    {}

type isCatflipAction_Value interface {
	isCatflipAction_Value()
}

type CatflipAction_Initialize struct {
	Initialize *CatflipInitialize `protobuf:"bytes,1,opt,name=initialize,proto3,oneof"`
}

type CatflipAction_FundVault struct {
	FundVault *CatflipFundVault `protobuf:"bytes,2,opt,name=fundVault,proto3,oneof"`
}

type CatflipAction_Bet struct {
	Bet *CatflipBet `protobuf:"bytes,3,opt,name=bet,proto3,oneof"`
}

type CatflipAction_FulfillRandomness struct {
	FulfillRandomness *CatflipFulfillRandomness `protobuf:"bytes,4,opt,name=fulfillRandomness,proto3,oneof"`
}

type CatflipAction_RefundTimeout struct {
	RefundTimeout *CatflipRefundTimeout `protobuf:"bytes,5,opt,name=refundTimeout,proto3,oneof"`
}

type CatflipAction_SetPause struct {
	SetPause *CatflipSetPause `protobuf:"bytes,6,opt,name=setPause,proto3,oneof"`
}

type CatflipAction_SetLimits struct {
	SetLimits *CatflipSetLimits `protobuf:"bytes,7,opt,name=setLimits,proto3,oneof"`
}

type CatflipAction_SetEdge struct {
	SetEdge *CatflipSetEdge `protobuf:"bytes,8,opt,name=setEdge,proto3,oneof"`
}

type CatflipAction_SetOracle struct {
	SetOracle *CatflipSetOracle `protobuf:"bytes,9,opt,name=setOracle,proto3,oneof"`
}

func (*CatflipAction_Initialize) isCatflipAction_Value() {}

func (*CatflipAction_FundVault) isCatflipAction_Value() {}

func (*CatflipAction_Bet) isCatflipAction_Value() {}

func (*CatflipAction_FulfillRandomness) isCatflipAction_Value() {}

func (*CatflipAction_RefundTimeout) isCatflipAction_Value() {}

func (*CatflipAction_SetPause) isCatflipAction_Value() {}

func (*CatflipAction_SetLimits) isCatflipAction_Value() {}

func (*CatflipAction_SetEdge) isCatflipAction_Value() {}

func (*CatflipAction_SetOracle) isCatflipAction_Value() {}

func (m *CatflipAction) GetValue() isCatflipAction_Value {
	if m != nil {
		return m.Value
	}
	return nil
}

func (m *CatflipAction) GetInitialize() *CatflipInitialize {
	if x, ok := m.GetValue().(*CatflipAction_Initialize); ok {
		return x.Initialize
	}
	return nil
}

func (m *CatflipAction) GetFundVault() *CatflipFundVault {
	if x, ok := m.GetValue().(*CatflipAction_FundVault); ok {
		return x.FundVault
	}
	return nil
}

func (m *CatflipAction) GetBet() *CatflipBet {
	if x, ok := m.GetValue().(*CatflipAction_Bet); ok {
		return x.Bet
	}
	return nil
}

func (m *CatflipAction) GetFulfillRandomness() *CatflipFulfillRandomness {
	if x, ok := m.GetValue().(*CatflipAction_FulfillRandomness); ok {
		return x.FulfillRandomness
	}
	return nil
}

func (m *CatflipAction) GetRefundTimeout() *CatflipRefundTimeout {
	if x, ok := m.GetValue().(*CatflipAction_RefundTimeout); ok {
		return x.RefundTimeout
	}
	return nil
}

func (m *CatflipAction) GetSetPause() *CatflipSetPause {
	if x, ok := m.GetValue().(*CatflipAction_SetPause); ok {
		return x.SetPause
	}
	return nil
}

func (m *CatflipAction) GetSetLimits() *CatflipSetLimits {
	if x, ok := m.GetValue().(*CatflipAction_SetLimits); ok {
		return x.SetLimits
	}
	return nil
}

func (m *CatflipAction) GetSetEdge() *CatflipSetEdge {
	if x, ok := m.GetValue().(*CatflipAction_SetEdge); ok {
		return x.SetEdge
	}
	return nil
}

func (m *CatflipAction) GetSetOracle() *CatflipSetOracle {
	if x, ok := m.GetValue().(*CatflipAction_SetOracle); ok {
		return x.SetOracle
	}
	return nil
}

func (m *CatflipAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*CatflipAction) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*CatflipAction_Initialize)(nil),
		(*CatflipAction_FundVault)(nil),
		(*CatflipAction_Bet)(nil),
		(*CatflipAction_FulfillRandomness)(nil),
		(*CatflipAction_RefundTimeout)(nil),
		(*CatflipAction_SetPause)(nil),
		(*CatflipAction_SetLimits)(nil),
		(*CatflipAction_SetEdge)(nil),
		(*CatflipAction_SetOracle)(nil),
	}
}

type CatflipInitialize struct {
	MinBet         int64  `protobuf:"varint,1,opt,name=minBet,proto3" json:"minBet,omitempty"`
	MaxExposureBps int32  `protobuf:"varint,2,opt,name=maxExposureBps,proto3" json:"maxExposureBps,omitempty"`
	HouseEdgeBps   int32  `protobuf:"varint,3,opt,name=houseEdgeBps,proto3" json:"houseEdgeBps,omitempty"`
	// hex encoded uncompressed secp256k1 VRF public key
	OraclePubKey   string `protobuf:"bytes,4,opt,name=oraclePubKey,proto3" json:"oraclePubKey,omitempty"`
}

func (m *CatflipInitialize) Reset()         { *m = CatflipInitialize{} }
func (m *CatflipInitialize) String() string { return proto.CompactTextString(m) }
func (*CatflipInitialize) ProtoMessage()    {}

func (m *CatflipInitialize) GetMinBet() int64 {
	if m != nil {
		return m.MinBet
	}
	return 0
}

func (m *CatflipInitialize) GetMaxExposureBps() int32 {
	if m != nil {
		return m.MaxExposureBps
	}
	return 0
}

func (m *CatflipInitialize) GetHouseEdgeBps() int32 {
	if m != nil {
		return m.HouseEdgeBps
	}
	return 0
}

func (m *CatflipInitialize) GetOraclePubKey() string {
	if m != nil {
		return m.OraclePubKey
	}
	return ""
}

type CatflipFundVault struct {
	Amount int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *CatflipFundVault) Reset()         { *m = CatflipFundVault{} }
func (m *CatflipFundVault) String() string { return proto.CompactTextString(m) }
func (*CatflipFundVault) ProtoMessage()    {}

func (m *CatflipFundVault) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type CatflipBet struct {
	Amount int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *CatflipBet) Reset()         { *m = CatflipBet{} }
func (m *CatflipBet) String() string { return proto.CompactTextString(m) }
func (*CatflipBet) ProtoMessage()    {}

func (m *CatflipBet) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type CatflipFulfillRandomness struct {
	RoundId string `protobuf:"bytes,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	// hex encoded VRF proof over the round seed
	Proof   string `protobuf:"bytes,2,opt,name=proof,proto3" json:"proof,omitempty"`
}

func (m *CatflipFulfillRandomness) Reset()         { *m = CatflipFulfillRandomness{} }
func (m *CatflipFulfillRandomness) String() string { return proto.CompactTextString(m) }
func (*CatflipFulfillRandomness) ProtoMessage()    {}

func (m *CatflipFulfillRandomness) GetRoundId() string {
	if m != nil {
		return m.RoundId
	}
	return ""
}

func (m *CatflipFulfillRandomness) GetProof() string {
	if m != nil {
		return m.Proof
	}
	return ""
}

type CatflipRefundTimeout struct {
	RoundId string `protobuf:"bytes,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
}

func (m *CatflipRefundTimeout) Reset()         { *m = CatflipRefundTimeout{} }
func (m *CatflipRefundTimeout) String() string { return proto.CompactTextString(m) }
func (*CatflipRefundTimeout) ProtoMessage()    {}

func (m *CatflipRefundTimeout) GetRoundId() string {
	if m != nil {
		return m.RoundId
	}
	return ""
}

type CatflipSetPause struct {
	IsPaused bool `protobuf:"varint,1,opt,name=isPaused,proto3" json:"isPaused,omitempty"`
}

func (m *CatflipSetPause) Reset()         { *m = CatflipSetPause{} }
func (m *CatflipSetPause) String() string { return proto.CompactTextString(m) }
func (*CatflipSetPause) ProtoMessage()    {}

func (m *CatflipSetPause) GetIsPaused() bool {
	if m != nil {
		return m.IsPaused
	}
	return false
}

type CatflipSetLimits struct {
	MinBet         int64 `protobuf:"varint,1,opt,name=minBet,proto3" json:"minBet,omitempty"`
	MaxExposureBps int32 `protobuf:"varint,2,opt,name=maxExposureBps,proto3" json:"maxExposureBps,omitempty"`
}

func (m *CatflipSetLimits) Reset()         { *m = CatflipSetLimits{} }
func (m *CatflipSetLimits) String() string { return proto.CompactTextString(m) }
func (*CatflipSetLimits) ProtoMessage()    {}

func (m *CatflipSetLimits) GetMinBet() int64 {
	if m != nil {
		return m.MinBet
	}
	return 0
}

func (m *CatflipSetLimits) GetMaxExposureBps() int32 {
	if m != nil {
		return m.MaxExposureBps
	}
	return 0
}

type CatflipSetEdge struct {
	HouseEdgeBps int32 `protobuf:"varint,1,opt,name=houseEdgeBps,proto3" json:"houseEdgeBps,omitempty"`
}

func (m *CatflipSetEdge) Reset()         { *m = CatflipSetEdge{} }
func (m *CatflipSetEdge) String() string { return proto.CompactTextString(m) }
func (*CatflipSetEdge) ProtoMessage()    {}

func (m *CatflipSetEdge) GetHouseEdgeBps() int32 {
	if m != nil {
		return m.HouseEdgeBps
	}
	return 0
}

type CatflipSetOracle struct {
	OraclePubKey string `protobuf:"bytes,1,opt,name=oraclePubKey,proto3" json:"oraclePubKey,omitempty"`
}

func (m *CatflipSetOracle) Reset()         { *m = CatflipSetOracle{} }
func (m *CatflipSetOracle) String() string { return proto.CompactTextString(m) }
func (*CatflipSetOracle) ProtoMessage()    {}

func (m *CatflipSetOracle) GetOraclePubKey() string {
	if m != nil {
		return m.OraclePubKey
	}
	return ""
}

type ReceiptCatflipVault struct {
	Vault  *Vault `protobuf:"bytes,1,opt,name=vault,proto3" json:"vault,omitempty"`
	Action string `protobuf:"bytes,2,opt,name=action,proto3" json:"action,omitempty"`
	Amount int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ReceiptCatflipVault) Reset()         { *m = ReceiptCatflipVault{} }
func (m *ReceiptCatflipVault) String() string { return proto.CompactTextString(m) }
func (*ReceiptCatflipVault) ProtoMessage()    {}

func (m *ReceiptCatflipVault) GetVault() *Vault {
	if m != nil {
		return m.Vault
	}
	return nil
}

func (m *ReceiptCatflipVault) GetAction() string {
	if m != nil {
		return m.Action
	}
	return ""
}

func (m *ReceiptCatflipVault) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type ReceiptCatflipRound struct {
	RoundId    string    `protobuf:"bytes,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Player     string    `protobuf:"bytes,2,opt,name=player,proto3" json:"player,omitempty"`
	Status     int32     `protobuf:"varint,3,opt,name=status,proto3" json:"status,omitempty"`
	PrevStatus int32     `protobuf:"varint,4,opt,name=prevStatus,proto3" json:"prevStatus,omitempty"`
	Stake      int64     `protobuf:"varint,5,opt,name=stake,proto3" json:"stake,omitempty"`
	Payout     int64     `protobuf:"varint,6,opt,name=payout,proto3" json:"payout,omitempty"`
	IsWinner   bool      `protobuf:"varint,7,opt,name=isWinner,proto3" json:"isWinner,omitempty"`
	Index      int64     `protobuf:"varint,8,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex  int64     `protobuf:"varint,9,opt,name=prevIndex,proto3" json:"prevIndex,omitempty"`
	// round snapshot after the action
	Round      *BetRound `protobuf:"bytes,10,opt,name=round,proto3" json:"round,omitempty"`
}

func (m *ReceiptCatflipRound) Reset()         { *m = ReceiptCatflipRound{} }
func (m *ReceiptCatflipRound) String() string { return proto.CompactTextString(m) }
func (*ReceiptCatflipRound) ProtoMessage()    {}

func (m *ReceiptCatflipRound) GetRoundId() string {
	if m != nil {
		return m.RoundId
	}
	return ""
}

func (m *ReceiptCatflipRound) GetPlayer() string {
	if m != nil {
		return m.Player
	}
	return ""
}

func (m *ReceiptCatflipRound) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *ReceiptCatflipRound) GetPrevStatus() int32 {
	if m != nil {
		return m.PrevStatus
	}
	return 0
}

func (m *ReceiptCatflipRound) GetStake() int64 {
	if m != nil {
		return m.Stake
	}
	return 0
}

func (m *ReceiptCatflipRound) GetPayout() int64 {
	if m != nil {
		return m.Payout
	}
	return 0
}

func (m *ReceiptCatflipRound) GetIsWinner() bool {
	if m != nil {
		return m.IsWinner
	}
	return false
}

func (m *ReceiptCatflipRound) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

func (m *ReceiptCatflipRound) GetPrevIndex() int64 {
	if m != nil {
		return m.PrevIndex
	}
	return 0
}

func (m *ReceiptCatflipRound) GetRound() *BetRound {
	if m != nil {
		return m.Round
	}
	return nil
}

type CatflipRoundRecord struct {
	RoundId string    `protobuf:"bytes,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Index   int64     `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
	Round   *BetRound `protobuf:"bytes,3,opt,name=round,proto3" json:"round,omitempty"`
}

func (m *CatflipRoundRecord) Reset()         { *m = CatflipRoundRecord{} }
func (m *CatflipRoundRecord) String() string { return proto.CompactTextString(m) }
func (*CatflipRoundRecord) ProtoMessage()    {}

func (m *CatflipRoundRecord) GetRoundId() string {
	if m != nil {
		return m.RoundId
	}
	return ""
}

func (m *CatflipRoundRecord) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

func (m *CatflipRoundRecord) GetRound() *BetRound {
	if m != nil {
		return m.Round
	}
	return nil
}

type ReqCatflipRound struct {
	RoundId string `protobuf:"bytes,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
}

func (m *ReqCatflipRound) Reset()         { *m = ReqCatflipRound{} }
func (m *ReqCatflipRound) String() string { return proto.CompactTextString(m) }
func (*ReqCatflipRound) ProtoMessage()    {}

func (m *ReqCatflipRound) GetRoundId() string {
	if m != nil {
		return m.RoundId
	}
	return ""
}

type ReqCatflipRoundList struct {
	Player    string `protobuf:"bytes,1,opt,name=player,proto3" json:"player,omitempty"`
	Status    int32  `protobuf:"varint,2,opt,name=status,proto3" json:"status,omitempty"`
	Index     int64  `protobuf:"varint,3,opt,name=index,proto3" json:"index,omitempty"`
	Count     int32  `protobuf:"varint,4,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,5,opt,name=direction,proto3" json:"direction,omitempty"`
}

func (m *ReqCatflipRoundList) Reset()         { *m = ReqCatflipRoundList{} }
func (m *ReqCatflipRoundList) String() string { return proto.CompactTextString(m) }
func (*ReqCatflipRoundList) ProtoMessage()    {}

func (m *ReqCatflipRoundList) GetPlayer() string {
	if m != nil {
		return m.Player
	}
	return ""
}

func (m *ReqCatflipRoundList) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *ReqCatflipRoundList) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

func (m *ReqCatflipRoundList) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

func (m *ReqCatflipRoundList) GetDirection() int32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

type ReplyCatflipRoundList struct {
	Rounds []*BetRound `protobuf:"bytes,1,rep,name=rounds,proto3" json:"rounds,omitempty"`
}

func (m *ReplyCatflipRoundList) Reset()         { *m = ReplyCatflipRoundList{} }
func (m *ReplyCatflipRoundList) String() string { return proto.CompactTextString(m) }
func (*ReplyCatflipRoundList) ProtoMessage()    {}

func (m *ReplyCatflipRoundList) GetRounds() []*BetRound {
	if m != nil {
		return m.Rounds
	}
	return nil
}

type ReplyCatflipVault struct {
	Vault     *Vault `protobuf:"bytes,1,opt,name=vault,proto3" json:"vault,omitempty"`
	Balance   int64  `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
	VaultAddr string `protobuf:"bytes,3,opt,name=vaultAddr,proto3" json:"vaultAddr,omitempty"`
}

func (m *ReplyCatflipVault) Reset()         { *m = ReplyCatflipVault{} }
func (m *ReplyCatflipVault) String() string { return proto.CompactTextString(m) }
func (*ReplyCatflipVault) ProtoMessage()    {}

func (m *ReplyCatflipVault) GetVault() *Vault {
	if m != nil {
		return m.Vault
	}
	return nil
}

func (m *ReplyCatflipVault) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

func (m *ReplyCatflipVault) GetVaultAddr() string {
	if m != nil {
		return m.VaultAddr
	}
	return ""
}

type ReplyCatflipLayout struct {
	Data string `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ReplyCatflipLayout) Reset()         { *m = ReplyCatflipLayout{} }
func (m *ReplyCatflipLayout) String() string { return proto.CompactTextString(m) }
func (*ReplyCatflipLayout) ProtoMessage()    {}

func (m *ReplyCatflipLayout) GetData() string {
	if m != nil {
		return m.Data
	}
	return ""
}

type CatflipRawBetTx struct {
	Amount int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	Fee    int64 `protobuf:"varint,2,opt,name=fee,proto3" json:"fee,omitempty"`
}

func (m *CatflipRawBetTx) Reset()         { *m = CatflipRawBetTx{} }
func (m *CatflipRawBetTx) String() string { return proto.CompactTextString(m) }
func (*CatflipRawBetTx) ProtoMessage()    {}

func (m *CatflipRawBetTx) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *CatflipRawBetTx) GetFee() int64 {
	if m != nil {
		return m.Fee
	}
	return 0
}

type CatflipRawFulfillTx struct {
	RoundId string `protobuf:"bytes,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Proof   string `protobuf:"bytes,2,opt,name=proof,proto3" json:"proof,omitempty"`
	Fee     int64  `protobuf:"varint,3,opt,name=fee,proto3" json:"fee,omitempty"`
}

func (m *CatflipRawFulfillTx) Reset()         { *m = CatflipRawFulfillTx{} }
func (m *CatflipRawFulfillTx) String() string { return proto.CompactTextString(m) }
func (*CatflipRawFulfillTx) ProtoMessage()    {}

func (m *CatflipRawFulfillTx) GetRoundId() string {
	if m != nil {
		return m.RoundId
	}
	return ""
}

func (m *CatflipRawFulfillTx) GetProof() string {
	if m != nil {
		return m.Proof
	}
	return ""
}

func (m *CatflipRawFulfillTx) GetFee() int64 {
	if m != nil {
		return m.Fee
	}
	return 0
}

type CatflipRawRefundTx struct {
	RoundId string `protobuf:"bytes,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Fee     int64  `protobuf:"varint,2,opt,name=fee,proto3" json:"fee,omitempty"`
}

func (m *CatflipRawRefundTx) Reset()         { *m = CatflipRawRefundTx{} }
func (m *CatflipRawRefundTx) String() string { return proto.CompactTextString(m) }
func (*CatflipRawRefundTx) ProtoMessage()    {}

func (m *CatflipRawRefundTx) GetRoundId() string {
	if m != nil {
		return m.RoundId
	}
	return ""
}

func (m *CatflipRawRefundTx) GetFee() int64 {
	if m != nil {
		return m.Fee
	}
	return 0
}
