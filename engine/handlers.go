package engine

import (
	"math/big"

	"github.com/defuse-protocol/defuse-core/account"
	"github.com/defuse-protocol/defuse-core/defuseerr"
	"github.com/defuse-protocol/defuse-core/inspector"
	"github.com/defuse-protocol/defuse-core/intent"
	"github.com/defuse-protocol/defuse-core/runtime"
	"github.com/defuse-protocol/defuse-core/token"
)

// dispatch routes one intent to its handler. The first error aborts
// the whole batch.
func dispatch(
	store *account.Store,
	rt *runtime.Runtime,
	insp inspector.Inspector,
	cfg runtime.Config,
	signer string,
	it intent.Intent,
) error {
	switch v := it.(type) {
	case intent.AddPublicKey:
		return handleAddPublicKey(store, insp, signer, v)
	case intent.RemovePublicKey:
		return handleRemovePublicKey(store, insp, signer, v)
	case intent.InvalidateNonces:
		return handleInvalidateNonces(store, signer, v)
	case intent.Transfer:
		return handleTransfer(store, insp, signer, v)
	case intent.TokenDiff:
		return handleTokenDiff(store, rt, insp, cfg, signer, v)
	case intent.FtWithdraw:
		return handleFtWithdraw(store, rt, signer, v)
	case intent.NftWithdraw:
		return handleNftWithdraw(store, rt, signer, v)
	case intent.MtWithdraw:
		return handleMtWithdraw(store, rt, signer, v)
	case intent.NativeWithdraw:
		return handleNativeWithdraw(store, rt, cfg, signer, v)
	case intent.MtBatchTransfer:
		return handleMtBatchTransfer(store, signer, v)
	case intent.MtBatchTransferCall:
		return handleMtBatchTransferCall(store, insp, signer, v)
	default:
		return defuseerr.ErrInvalidIntent
	}
}

func handleAddPublicKey(store *account.Store, insp inspector.Inspector, signer string, v intent.AddPublicKey) error {
	if !store.AddPublicKey(signer, v.Key) {
		return defuseerr.ErrPublicKeyExists
	}
	insp.OnPublicKeyAdded(signer, v.Key)
	return nil
}

func handleRemovePublicKey(store *account.Store, insp inspector.Inspector, signer string, v intent.RemovePublicKey) error {
	if !store.RemovePublicKey(signer, v.Key) {
		return defuseerr.ErrPublicKeyNotExist
	}
	insp.OnPublicKeyRemoved(signer, v.Key)
	return nil
}

// handleInvalidateNonces commits each nonce, erroring on the first
// already-used one.
func handleInvalidateNonces(store *account.Store, signer string, v intent.InvalidateNonces) error {
	for _, n := range v.Nonces {
		if !store.CommitNonce(signer, n) {
			return defuseerr.ErrNonceUsed
		}
	}
	return nil
}

// handleTransfer moves balances from signer to receiver; purely
// internal, so it never touches the runtime accumulator.
func handleTransfer(store *account.Store, insp inspector.Inspector, signer string, v intent.Transfer) error {
	for t, amount := range v.Tokens {
		if err := store.Withdraw(signer, t, amount); err != nil {
			return err
		}
		if err := store.Deposit(v.Receiver, t, amount); err != nil {
			return err
		}
	}
	insp.OnTransfer(signer, v)
	return nil
}

// handleTokenDiff is the clearing primitive: each per-token delta is
// applied to the signer's own balance, folded into the runtime
// accumulator, and — for the credit side — taxed by the configured
// fee, which is both credited to the collector and recorded as the
// collector's own implicit negative contribution so the zero-sum
// equation still closes exactly.
func handleTokenDiff(
	store *account.Store,
	rt *runtime.Runtime,
	insp inspector.Inspector,
	cfg runtime.Config,
	signer string,
	v intent.TokenDiff,
) error {
	for t, delta := range v.Deltas {
		switch delta.Sign() {
		case 0:
			continue
		case -1:
			amount, err := delta.Neg().AsAmount()
			if err != nil {
				return err
			}
			if err := store.Withdraw(signer, t, amount); err != nil {
				return err
			}
		case 1:
			amount, err := delta.AsAmount()
			if err != nil {
				return err
			}
			if err := store.Deposit(signer, t, amount); err != nil {
				return err
			}
			if err := applyFee(store, rt, cfg, t, amount); err != nil {
				return err
			}
		}
		if err := rt.AddDelta(t, delta); err != nil {
			return err
		}
	}
	insp.OnTokenDiff(signer, v)
	return nil
}

// applyFee credits cfg.FeePips/1e6 of amount (floor-rounded) to the
// fee collector, optionally splitting a further cfg.ReferralShares
// fraction of that fee to a referral collector, and records both as
// negative contributions consumed from the invariant pool.
func applyFee(store *account.Store, rt *runtime.Runtime, cfg runtime.Config, t token.ID, credited token.Amount) error {
	if cfg.FeePips == 0 || cfg.FeeCollector == "" {
		return nil
	}
	feeBig := new(big.Int).Mul(credited.AsBig(), big.NewInt(int64(cfg.FeePips)))
	feeBig.Div(feeBig, big.NewInt(1_000_000))
	if feeBig.Sign() == 0 {
		return nil
	}
	feeAmount, err := token.AmountFromBig(feeBig)
	if err != nil {
		return err
	}

	referralAmount := token.Amount{}
	if cfg.ReferralShares > 0 && cfg.ReferralCollector != "" {
		refBig := new(big.Int).Mul(feeBig, big.NewInt(int64(cfg.ReferralShares)))
		refBig.Div(refBig, big.NewInt(1_000_000))
		if refBig.Sign() > 0 {
			referralAmount, err = token.AmountFromBig(refBig)
			if err != nil {
				return err
			}
			collectorShare, err := feeAmount.Sub(referralAmount)
			if err != nil {
				return err
			}
			feeAmount = collectorShare
			if err := store.Deposit(cfg.ReferralCollector, t, referralAmount); err != nil {
				return err
			}
			if err := rt.AddDelta(t, token.DeltaFromAmount(referralAmount, true)); err != nil {
				return err
			}
		}
	}

	if err := store.Deposit(cfg.FeeCollector, t, feeAmount); err != nil {
		return err
	}
	if err := rt.AddDelta(t, token.DeltaFromAmount(feeAmount, true)); err != nil {
		return err
	}
	return nil
}

func handleFtWithdraw(store *account.Store, rt *runtime.Runtime, signer string, v intent.FtWithdraw) error {
	t := token.NewNative(v.Token)
	if err := store.Withdraw(signer, t, v.Amount); err != nil {
		return err
	}
	return rt.AddDelta(t, token.DeltaFromAmount(v.Amount, true))
}

func handleNftWithdraw(store *account.Store, rt *runtime.Runtime, signer string, v intent.NftWithdraw) error {
	t := token.NewNonFungible(v.Token, v.Instance)
	one := token.AmountFromUint64(1)
	if err := store.Withdraw(signer, t, one); err != nil {
		return err
	}
	return rt.AddDelta(t, token.DeltaFromAmount(one, true))
}

func handleMtWithdraw(store *account.Store, rt *runtime.Runtime, signer string, v intent.MtWithdraw) error {
	if len(v.Instances) != len(v.Amounts) {
		return defuseerr.ErrInvalidIntent
	}
	for i, instance := range v.Instances {
		t := token.NewMulti(v.Token, instance)
		amount := v.Amounts[i]
		if err := store.Withdraw(signer, t, amount); err != nil {
			return err
		}
		if err := rt.AddDelta(t, token.DeltaFromAmount(amount, true)); err != nil {
			return err
		}
	}
	return nil
}

func handleNativeWithdraw(store *account.Store, rt *runtime.Runtime, cfg runtime.Config, signer string, v intent.NativeWithdraw) error {
	if cfg.WnearID == "" {
		return defuseerr.ErrInvalidIntent
	}
	t := token.NewNative(cfg.WnearID)
	if err := store.Withdraw(signer, t, v.Amount); err != nil {
		return err
	}
	return rt.AddDelta(t, token.DeltaFromAmount(v.Amount, true))
}

func handleMtBatchTransfer(store *account.Store, signer string, v intent.MtBatchTransfer) error {
	if len(v.Instances) != len(v.Amounts) {
		return defuseerr.ErrInvalidIntent
	}
	for i, instance := range v.Instances {
		t := token.NewMulti(v.Token, instance)
		amount := v.Amounts[i]
		if err := store.Withdraw(signer, t, amount); err != nil {
			return err
		}
		if err := store.Deposit(v.Receiver, t, amount); err != nil {
			return err
		}
	}
	return nil
}

func handleMtBatchTransferCall(store *account.Store, insp inspector.Inspector, signer string, v intent.MtBatchTransferCall) error {
	if err := handleMtBatchTransfer(store, signer, intent.MtBatchTransfer{
		Receiver:  v.Receiver,
		Token:     v.Token,
		Instances: v.Instances,
		Amounts:   v.Amounts,
		Memo:      v.Memo,
	}); err != nil {
		return err
	}
	insp.OnCallback(signer, v.Receiver, v.Msg)
	return nil
}
