package application

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/ports"
)

// TxStatus is the lifecycle state of the transaction currently shown to
// the user: idle -> loading -> {success, failed, error}, optionally
// followed by finished.
type TxStatus int

const (
	// TxStatusIdle ...
	TxStatusIdle TxStatus = iota
	// TxStatusLoading ...
	TxStatusLoading
	// TxStatusSuccess ...
	TxStatusSuccess
	// TxStatusFailed ...
	TxStatusFailed
	// TxStatusError ...
	TxStatusError
	// TxStatusFinished ...
	TxStatusFinished
)

// genericTxErrorMessage is what the user sees when a transaction function
// throws; internal detail stays in the logs.
const genericTxErrorMessage = "The transaction could not be completed. Please try again."

// TxUpdate lets a transaction function push intermediate status changes.
type TxUpdate func(status TxStatus, message string)

// TxFunc is a transaction run under the controller's lifecycle.
type TxFunc func(ctx context.Context, update TxUpdate) error

// TxStatusController exposes the per-transaction lifecycle, fee
// estimation and post-tx resynchronization. Fee estimation and resync
// each run behind their own busy flag, decoupled from the main status so
// a slow resync never blocks a new transaction.
type TxStatusController struct {
	mtx sync.Mutex

	status  TxStatus
	message string
	running bool

	dialogOpen   bool
	estimatedFee *decimal.Decimal
	feeLoading   bool

	syncUpdating bool
}

// NewTxStatusController returns a controller in the idle state.
func NewTxStatusController() *TxStatusController {
	return &TxStatusController{status: TxStatusIdle}
}

// RunTransaction drives fn through the transaction lifecycle. It sets
// loading, hands fn a status-update callback, and on failure surfaces a
// generic error message while re-throwing the original error to the
// caller for logging.
func (c *TxStatusController) RunTransaction(ctx context.Context, fn TxFunc) error {
	c.mtx.Lock()
	if c.running {
		c.mtx.Unlock()
		return ErrTransactionInProgress
	}
	c.running = true
	c.status = TxStatusLoading
	c.message = ""
	c.mtx.Unlock()

	defer func() {
		c.mtx.Lock()
		c.running = false
		c.mtx.Unlock()
	}()

	err := fn(ctx, c.update)
	if err != nil {
		c.update(TxStatusError, genericTxErrorMessage)
		return err
	}
	return nil
}

// Finish moves a terminal status to finished, letting the UI dismiss the
// dialog. It is a no-op while the transaction is still running.
func (c *TxStatusController) Finish() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	switch c.status {
	case TxStatusSuccess, TxStatusFailed, TxStatusError:
		c.status = TxStatusFinished
	}
}

// Reset returns the controller to idle for the next transaction.
func (c *TxStatusController) Reset() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.running {
		return
	}
	c.status = TxStatusIdle
	c.message = ""
}

// Status returns the current lifecycle state and its message.
func (c *TxStatusController) Status() (TxStatus, string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.status, c.message
}

// SetDialogOpen tracks the transaction dialog. Closing it clears any
// estimated fee left over from the previous transaction.
func (c *TxStatusController) SetDialogOpen(open bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.dialogOpen = open
	if !open {
		c.estimatedFee = nil
		c.feeLoading = false
	}
}

// GetEstimatedFee estimates the fee of the given payload. It carries its
// own loading flag, independent of the main transaction status, and must
// not be invoked while the dialog is closed. On failure the fee stays
// undefined and the loading flag clears.
func (c *TxStatusController) GetEstimatedFee(
	ctx context.Context, chain ports.ChainClient, payload []byte,
) error {
	c.mtx.Lock()
	if !c.dialogOpen {
		c.mtx.Unlock()
		return ErrDialogClosed
	}
	c.feeLoading = true
	c.mtx.Unlock()

	fee, err := chain.EstimateFee(ctx, payload)

	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.feeLoading = false
	if err != nil {
		c.estimatedFee = nil
		log.WithError(err).Debug("fee estimation failed")
		return err
	}
	c.estimatedFee = &fee
	return nil
}

// EstimatedFee returns the last estimated fee, if defined.
func (c *TxStatusController) EstimatedFee() (decimal.Decimal, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.estimatedFee == nil {
		return decimal.Decimal{}, false
	}
	return *c.estimatedFee, true
}

// IsFeeLoading ...
func (c *TxStatusController) IsFeeLoading() bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.feeLoading
}

// UpdateSynchronization wraps a post-tx chain resync behind its own flag
// so a slow resync does not block a new transaction from starting.
func (c *TxStatusController) UpdateSynchronization(ctx context.Context, resync func(context.Context) error) error {
	c.mtx.Lock()
	c.syncUpdating = true
	c.mtx.Unlock()

	defer func() {
		c.mtx.Lock()
		c.syncUpdating = false
		c.mtx.Unlock()
	}()

	return resync(ctx)
}

// IsSyncUpdating ...
func (c *TxStatusController) IsSyncUpdating() bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.syncUpdating
}

func (c *TxStatusController) update(status TxStatus, message string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.status = status
	c.message = message
}
