package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/4chain-ag/go-hit-simulator/pkg/hit"
	"github.com/4chain-ag/go-hit-simulator/pkg/logging"
	"github.com/4chain-ag/go-hit-simulator/pkg/wallet"
	"github.com/google/uuid"
	"k8s.io/utils/ptr"
)

// WalletConfig holds the settings of the wallet history simulation.
type WalletConfig struct {
	// LabelsFile is a JSON array of wallet labels to evaluate.
	LabelsFile string `mapstructure:"labels_file"`

	// MaxWallets caps the number of wallets evaluated. Zero evaluates every wallet.
	MaxWallets int `mapstructure:"max_wallets"`

	// MaxTxsPerWallet skips wallets with a longer history. Zero disables the limit.
	MaxTxsPerWallet int `mapstructure:"max_txs_per_wallet"`

	// ReportFile receives the JSON report when set.
	ReportFile string `mapstructure:"report_file"`
}

// DefaultWalletConfig evaluates the wallets active in block 398159.
var DefaultWalletConfig = WalletConfig{
	LabelsFile:      "data/block_398159_wallets.json",
	MaxWallets:      0,
	MaxTxsPerWallet: 100,
	ReportFile:      "",
}

// WalletStatus tells how far the evaluation of a wallet got.
type WalletStatus string

const (
	WalletEvaluated WalletStatus = "evaluated"
	WalletSkipped   WalletStatus = "skipped"
	WalletAborted   WalletStatus = "aborted"
)

// WalletResult is the evaluation of a single wallet.
type WalletResult struct {
	Label  string       `json:"label"`
	Status WalletStatus `json:"status"`
	Reason string       `json:"reason,omitempty"`
	Tally  Tally        `json:"tally"`

	// Err is the cause of a skip or an abort, kept for errors.Is checks.
	Err error `json:"-"`
}

// Report aggregates a wallet simulation run.
type Report struct {
	RunID      uuid.UUID      `json:"run_id"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Wallets    []WalletResult `json:"wallets"`
	Skipped    int            `json:"skipped"`
	Aborted    int            `json:"aborted"`
	Tally      Tally          `json:"tally"`
}

func (r *Report) add(res WalletResult) {
	r.Wallets = append(r.Wallets, res)
	r.Tally.Add(res.Tally)
	switch res.Status {
	case WalletSkipped:
		r.Skipped++
	case WalletAborted:
		r.Aborted++
	}
}

// WalletSimulator evaluates HIT compliance for the sends found in real wallet histories.
type WalletSimulator struct {
	cfg     WalletConfig
	deps    wallet.Dependencies
	matcher *hit.Matcher
	logger  logging.Logger
	now     func() time.Time
}

// NewWalletSimulator creates a WalletSimulator reading wallet data from deps.
// Panics if any dependency is nil.
func NewWalletSimulator(cfg WalletConfig, deps wallet.Dependencies, matcher *hit.Matcher, logger logging.Logger) *WalletSimulator {
	if deps.History == nil || deps.Resolver == nil || deps.Node == nil {
		panic("wallet simulator dependencies must not be nil")
	}
	if matcher == nil {
		matcher = hit.NewMatcher()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &WalletSimulator{cfg: cfg, deps: deps, matcher: matcher, logger: logger, now: time.Now}
}

// SimulateWallet replays the history of the wallet labelled label and evaluates every send against
// the UTXO set the wallet held right before it.
//
// Wallets that are unknown or too large are reported as skipped, and wallets whose history cannot be
// reconstructed are reported as aborted with the sends evaluated so far. Other failures are returned.
func (s *WalletSimulator) SimulateWallet(ctx context.Context, label string) (WalletResult, error) {
	res := WalletResult{Label: label, Status: WalletEvaluated}

	var maxTxs *int
	if s.cfg.MaxTxsPerWallet > 0 {
		maxTxs = ptr.To(s.cfg.MaxTxsPerWallet)
	}

	w, err := wallet.New(ctx, label, s.deps,
		wallet.WithBatchMode(true),
		wallet.WithMaxTransactions(maxTxs),
		wallet.WithLogger(s.logger),
	)
	switch {
	case errors.Is(err, wallet.ErrWalletNotFound):
		s.logger.Infof("Skipped %s because it's missing from API", label)
		return skipped(res, err), nil
	case errors.Is(err, wallet.ErrMaxTransactionsExceeded):
		s.logger.Infof("Skipped %s because it has too many txs", label)
		return skipped(res, err), nil
	case err != nil:
		return res, err
	}

	for w.HasNext() {
		if _, err := w.Advance(ctx); err != nil {
			if errors.Is(err, wallet.ErrOutputNotFound) {
				s.logger.Warnf("Aborted %s: %v", label, err)
				res.Status = WalletAborted
				res.Reason = err.Error()
				res.Err = err
				return res, nil
			}
			return res, fmt.Errorf("failed to replay wallet %s: %w", label, err)
		}

		// the last batch is not followed by a send
		if !w.IsNextSend() {
			break
		}

		spend, err := w.PendingDesiredSpend()
		if err != nil {
			return res, err
		}
		values := w.Values()
		s.logger.Debugf("UTXOS=%v", w.UTXOs())

		outcome, err := Evaluate(s.matcher, values, spend)
		if err != nil {
			return res, err
		}
		res.Tally.Record(outcome)
	}

	return res, nil
}

func skipped(res WalletResult, err error) WalletResult {
	res.Status = WalletSkipped
	res.Reason = err.Error()
	res.Err = err
	return res
}

// Run evaluates the wallets in order, up to cfg.MaxWallets of them. On failure the report built so far
// is returned along with the error.
func (s *WalletSimulator) Run(ctx context.Context, labels []string) (Report, error) {
	report := Report{RunID: uuid.New(), StartedAt: s.now().UTC()}
	defer func() {
		s.logger.Infof("%s", report.Tally)
		s.logger.Infof("All wallets completed.")
	}()

	for i, label := range labels {
		if s.cfg.MaxWallets > 0 && i == s.cfg.MaxWallets {
			break
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		s.logger.Infof("Evaluating compatibility for wallet %s...", label)
		res, err := s.SimulateWallet(ctx, label)
		if err != nil {
			s.logger.Errorf("Encountered unhandled error: %v", err)
			report.FinishedAt = s.now().UTC()
			return report, err
		}
		report.add(res)
		s.logger.Infof("%s", report.Tally)
	}

	report.FinishedAt = s.now().UTC()
	return report, nil
}
