// Package wallet reconstructs the approximate UTXO set of a clustered wallet over time by
// replaying its transaction history one record at a time.
package wallet

import (
	"context"
	"fmt"
	"slices"

	"github.com/4chain-ag/go-hit-simulator/pkg/logging"
	"github.com/4chain-ag/go-hit-simulator/pkg/satoshi"
)

// Option configures a Wallet.
type Option func(*Wallet)

// WithBatchMode makes Advance apply every record up to, but excluding, the next send.
func WithBatchMode(enabled bool) Option {
	return func(w *Wallet) {
		w.batch = enabled
	}
}

// WithMaxTransactions makes construction fail with ErrMaxTransactionsExceeded for wallets
// holding more than max transactions. A nil max means no limit.
func WithMaxTransactions(max *int) Option {
	return func(w *Wallet) {
		w.maxTxs = max
	}
}

// WithLogger sets the logger receiving the wallet's diagnostic output.
func WithLogger(l logging.Logger) Option {
	return func(w *Wallet) {
		if l != nil {
			w.logger = l
		}
	}
}

// StepOutcome summarises an Advance call.
type StepOutcome struct {
	Applied int    // number of records applied
	Last    Kind   // kind of the last record applied
	UTXOs   []UTXO // snapshot of the UTXO set after the last record
}

// Wallet tracks the approximate UTXO set of a wallet as its history is replayed.
//
// A Wallet is not safe for concurrent use. A failed Step leaves the wallet in a partially
// applied state and the caller should stop processing it.
type Wallet struct {
	label    string
	batch    bool
	maxTxs   *int
	records  []Record
	cursor   int
	utxos    *utxoSet
	resolver OutputResolver
	node     NodeService
	logger   logging.Logger
}

// New fetches the history of the wallet labelled label and returns a Wallet positioned before its
// first record. Errors from the history provider, such as ErrWalletNotFound and
// ErrMaxTransactionsExceeded, are returned wrapped.
// Panics if any dependency is nil.
func New(ctx context.Context, label string, deps Dependencies, opts ...Option) (*Wallet, error) {
	if deps.History == nil || deps.Resolver == nil || deps.Node == nil {
		panic("wallet dependencies must not be nil")
	}

	w := &Wallet{
		label:    label,
		utxos:    newUTXOSet(),
		resolver: deps.Resolver,
		node:     deps.Node,
		logger:   logging.Discard(),
	}
	for _, o := range opts {
		o(w)
	}

	records, err := deps.History.WalletTxs(ctx, label, w.maxTxs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history of wallet %s: %w", label, err)
	}
	w.records = records
	w.logger.Debugf("Fetched %d transactions for %s", len(records), label)

	return w, nil
}

// Label returns the wallet label.
func (w *Wallet) Label() string { return w.label }

// NumTxs returns the number of records in the wallet history.
func (w *Wallet) NumTxs() int { return len(w.records) }

// Cursor returns the number of records applied so far.
func (w *Wallet) Cursor() int { return w.cursor }

// HasNext reports whether records remain to be applied.
func (w *Wallet) HasNext() bool { return w.cursor < len(w.records) }

// IsNextSend reports whether the next record to be applied is a send.
// It returns false once the history is exhausted.
func (w *Wallet) IsNextSend() bool {
	return w.HasNext() && w.records[w.cursor].Kind() == KindSend
}

// UTXOs returns a copy of the current UTXO set in the order the outputs were added.
func (w *Wallet) UTXOs() []UTXO { return w.utxos.snapshot() }

// Values returns the satoshi values of the current UTXO set, largest first.
func (w *Wallet) Values() []int64 {
	values := make([]int64, 0, len(w.utxos.items))
	for _, u := range w.utxos.items {
		values = append(values, u.Satoshis)
	}
	slices.Sort(values)
	slices.Reverse(values)
	return values
}

// Balance returns the total value of the current UTXO set.
func (w *Wallet) Balance() int64 { return w.utxos.balance() }

// Advance applies the next record, or in batch mode every record up to the next send.
// A batch always applies at least one record, so a batch starting at a send applies it
// and continues with the records following it.
//
// Returns ErrCurrentTxIsLast when no records remain.
func (w *Wallet) Advance(ctx context.Context) (StepOutcome, error) {
	if !w.HasNext() {
		return StepOutcome{}, ErrCurrentTxIsLast
	}

	var outcome StepOutcome
	for {
		kind, err := w.Step(ctx)
		if err != nil {
			return outcome, err
		}
		outcome.Applied++
		outcome.Last = kind

		if !w.batch || !w.HasNext() || w.IsNextSend() {
			break
		}
	}

	outcome.UTXOs = w.UTXOs()
	return outcome, nil
}

// Step applies exactly one record and reports its kind.
// Returns ErrCurrentTxIsLast when no records remain.
func (w *Wallet) Step(ctx context.Context) (Kind, error) {
	if !w.HasNext() {
		return 0, ErrCurrentTxIsLast
	}

	rec := w.records[w.cursor]
	w.cursor++

	switch r := rec.(type) {
	case Receive:
		return KindReceive, w.applyReceive(ctx, r)
	case Send:
		return KindSend, w.applySend(ctx, r)
	default:
		return 0, fmt.Errorf("%w: %T at position %d", ErrUnrecognizedRecord, rec, w.cursor-1)
	}
}

// DesiredSpend returns the total paid to other wallets by the record applied last.
// Returns ErrCurrentTxNotSend if that record is not a send or nothing has been applied yet.
func (w *Wallet) DesiredSpend() (int64, error) {
	if w.cursor == 0 {
		return 0, fmt.Errorf("%w: no transaction applied yet", ErrCurrentTxNotSend)
	}
	return w.desiredSpendAt(w.cursor - 1)
}

// PendingDesiredSpend returns the total paid to other wallets by the next record to be applied,
// which is the send a batch stops in front of.
// Returns ErrCurrentTxIsLast when the history is exhausted and ErrCurrentTxNotSend when the
// next record is not a send.
func (w *Wallet) PendingDesiredSpend() (int64, error) {
	if !w.HasNext() {
		return 0, ErrCurrentTxIsLast
	}
	return w.desiredSpendAt(w.cursor)
}

func (w *Wallet) desiredSpendAt(i int) (int64, error) {
	send, ok := w.records[i].(Send)
	if !ok {
		return 0, fmt.Errorf("%w: %s is a %s", ErrCurrentTxNotSend, w.records[i].ID(), w.records[i].Kind())
	}
	return satoshi.Sum(send.SpendAmounts(w.label)), nil
}

func (w *Wallet) applyReceive(ctx context.Context, r Receive) error {
	amount := satoshi.FromCoins(r.Amount)
	utxos, err := w.receivedOutputs(ctx, r.TxID, amount)
	if err != nil {
		return err
	}
	w.addAll(utxos)
	return nil
}

// receivedOutputs finds the outputs of txid paid to the wallet. The clustering history only gives
// the total received, so the amount is first matched against single outputs of the decoded
// transaction. Ambiguous or missing matches are settled by the output resolver.
func (w *Wallet) receivedOutputs(ctx context.Context, txid string, amount int64) ([]UTXO, error) {
	w.logger.Debugf("Looking for output amt %d in %s", amount, txid)

	tx, err := w.node.DecodedTx(ctx, txid)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tx %s: %w", txid, err)
	}

	res := ResolveReceive(tx, amount)
	switch res.Match {
	case MatchUnique:
		return []UTXO{{TxID: txid, OutputIndex: res.Index, Satoshis: amount}}, nil

	case MatchMultiple:
		utxos, err := w.resolver.OutputsSentToWallet(ctx, txid, w.label)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve ambiguous outputs of tx %s: %w", txid, err)
		}
		return utxos, nil

	default:
		utxos, err := w.resolver.OutputsSentToWallet(ctx, txid, w.label)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve outputs of tx %s: %w", txid, err)
		}
		var found int64
		for _, u := range utxos {
			found += u.Satoshis
		}
		if found != amount {
			return nil, &OutputNotFoundError{TxID: txid, Amount: amount, Found: found}
		}
		return utxos, nil
	}
}

func (w *Wallet) applySend(ctx context.Context, s Send) error {
	tx, err := w.node.DecodedTx(ctx, s.TxID)
	if err != nil {
		return fmt.Errorf("failed to decode tx %s: %w", s.TxID, err)
	}

	inputs, err := w.spentOutputs(ctx, tx)
	if err != nil {
		return err
	}
	for _, in := range inputs {
		w.logger.Debugf("Attempting to delete this utxo from set due to send: %s", in)
		if !w.utxos.remove(in.Outpoint()) {
			w.logger.Warnf("Missing input %s from wallet %s in tx %s. This indicates incomplete clustering "+
				"analysis or a multi-party transaction such as a CoinJoin. This input will be ignored.", in, w.label, s.TxID)
			continue
		}
		w.logger.Debugf("Deleted this utxo from set due to send: %s", in)
	}

	for _, o := range s.Outputs {
		if o.WalletID == w.label {
			w.logger.Warnf("Send %s lists an output to its own wallet %s; it is not counted as a spend", s.TxID, w.label)
		}
	}

	change := changeOutputs(tx, s.SpendAmounts(w.label))
	w.logger.Debugf("Adding these change utxos due to send: %v", change)
	w.addAll(change)
	return nil
}

// spentOutputs resolves every non-coinbase input of tx to the output it spends.
func (w *Wallet) spentOutputs(ctx context.Context, tx *DecodedTx) ([]UTXO, error) {
	inputs := make([]UTXO, 0, len(tx.Vin))
	for _, vin := range tx.Vin {
		if vin.IsCoinbase() {
			continue
		}

		prev, err := w.node.DecodedTx(ctx, vin.PrevTxID)
		if err != nil {
			return nil, fmt.Errorf("failed to decode tx %s spent by %s: %w", vin.PrevTxID, tx.TxID, err)
		}
		if int(vin.PrevIndex) >= len(prev.Vout) {
			return nil, fmt.Errorf("%w: tx %s has no output %d", ErrOutputNotFound, vin.PrevTxID, vin.PrevIndex)
		}

		inputs = append(inputs, UTXO{
			TxID:        vin.PrevTxID,
			OutputIndex: vin.PrevIndex,
			Satoshis:    satoshi.FromCoins(prev.Vout[vin.PrevIndex].Value),
		})
	}
	return inputs, nil
}

// changeOutputs returns the outputs of tx whose value matches none of the spend amounts.
func changeOutputs(tx *DecodedTx, spends []int64) []UTXO {
	var change []UTXO
	for i, out := range tx.Vout {
		value := satoshi.FromCoins(out.Value)
		if slices.Contains(spends, value) {
			continue
		}
		change = append(change, UTXO{TxID: tx.TxID, OutputIndex: uint32(i), Satoshis: value})
	}
	return change
}

func (w *Wallet) addAll(utxos []UTXO) {
	for _, u := range utxos {
		if !w.utxos.add(u) {
			w.logger.Warnf("Output %s of wallet %s is already in the set; duplicate ignored", u.Outpoint(), w.label)
		}
	}
}
