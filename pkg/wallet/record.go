package wallet

import "github.com/4chain-ag/go-hit-simulator/pkg/satoshi"

// Kind tells receive records apart from send records.
type Kind int

const (
	KindReceive Kind = iota + 1
	KindSend
)

func (k Kind) String() string {
	switch k {
	case KindReceive:
		return "receive"
	case KindSend:
		return "send"
	default:
		return "unknown"
	}
}

// Record is one entry of a wallet's clustered transaction history.
// The only implementations are Receive and Send.
type Record interface {
	ID() string
	Kind() Kind
	isRecord()
}

// Receive records a transaction paying Amount (in whole coins) to the wallet.
type Receive struct {
	TxID   string
	Amount float64
}

func (r Receive) ID() string { return r.TxID }
func (Receive) Kind() Kind   { return KindReceive }
func (Receive) isRecord()    {}

// SendOutput is one externally directed payment of a send record.
type SendOutput struct {
	WalletID string
	Amount   float64
}

// Send records a transaction spending the wallet's outputs to other wallets.
type Send struct {
	TxID    string
	Outputs []SendOutput
}

func (s Send) ID() string { return s.TxID }
func (Send) Kind() Kind   { return KindSend }
func (Send) isRecord()    {}

// SpendAmounts returns the satoshi amounts paid to wallets other than ownLabel.
func (s Send) SpendAmounts(ownLabel string) []int64 {
	amounts := make([]int64, 0, len(s.Outputs))
	for _, o := range s.Outputs {
		if o.WalletID == ownLabel {
			continue
		}
		amounts = append(amounts, satoshi.FromCoins(o.Amount))
	}
	return amounts
}
