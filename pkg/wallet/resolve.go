package wallet

import "github.com/4chain-ag/go-hit-simulator/pkg/satoshi"

// Match is the outcome of looking for a received amount among a transaction's outputs.
type Match int

const (
	// MatchNone means no single output carries the amount; it may be spread over several outputs.
	MatchNone Match = iota
	// MatchUnique means exactly one output carries the amount.
	MatchUnique
	// MatchMultiple means several outputs carry the amount and the right one cannot be told by value.
	MatchMultiple
)

func (m Match) String() string {
	switch m {
	case MatchUnique:
		return "unique-match"
	case MatchMultiple:
		return "multiple-match"
	default:
		return "no-match"
	}
}

// Resolution is the result of ResolveReceive. Index is only meaningful for MatchUnique.
type Resolution struct {
	Match Match
	Index uint32
}

// ResolveReceive looks for outputs of tx whose value equals amount satoshis.
func ResolveReceive(tx *DecodedTx, amount int64) Resolution {
	res := Resolution{Match: MatchNone}
	for i, out := range tx.Vout {
		if satoshi.FromCoins(out.Value) != amount {
			continue
		}
		if res.Match == MatchUnique {
			return Resolution{Match: MatchMultiple}
		}
		res = Resolution{Match: MatchUnique, Index: uint32(i)}
	}
	return res
}
