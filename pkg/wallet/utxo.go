package wallet

import (
	"fmt"
	"slices"
)

// Outpoint identifies a transaction output.
type Outpoint struct {
	TxID        string
	OutputIndex uint32
}

func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxID, o.OutputIndex)
}

// UTXO is an unspent output owned by the wallet.
type UTXO struct {
	TxID        string `json:"txid"`
	OutputIndex uint32 `json:"output_index"`
	Satoshis    int64  `json:"satoshis"`
}

// Outpoint returns the identity of the output.
func (u UTXO) Outpoint() Outpoint {
	return Outpoint{TxID: u.TxID, OutputIndex: u.OutputIndex}
}

func (u UTXO) String() string {
	return fmt.Sprintf("(%s, %d, %d)", u.TxID, u.OutputIndex, u.Satoshis)
}

// utxoSet keeps UTXOs in insertion order without duplicate outpoints.
type utxoSet struct {
	items []UTXO
	seen  map[Outpoint]struct{}
}

func newUTXOSet() *utxoSet {
	return &utxoSet{seen: make(map[Outpoint]struct{})}
}

// add reports false when an output with the same outpoint is already held.
func (s *utxoSet) add(u UTXO) bool {
	op := u.Outpoint()
	if _, ok := s.seen[op]; ok {
		return false
	}
	s.seen[op] = struct{}{}
	s.items = append(s.items, u)
	return true
}

// remove reports false when no output with the outpoint is held.
func (s *utxoSet) remove(op Outpoint) bool {
	if _, ok := s.seen[op]; !ok {
		return false
	}
	delete(s.seen, op)
	s.items = slices.DeleteFunc(s.items, func(u UTXO) bool { return u.Outpoint() == op })
	return true
}

func (s *utxoSet) snapshot() []UTXO {
	return slices.Clone(s.items)
}

func (s *utxoSet) balance() int64 {
	var total int64
	for _, u := range s.items {
		total += u.Satoshis
	}
	return total
}
