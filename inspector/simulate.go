package inspector

import (
	"time"

	"github.com/defuse-protocol/defuse-core/intent"
	"github.com/defuse-protocol/defuse-core/signing"
)

// SimulateInspector tracks only what the simulation driver's output
// needs: the earliest deadline across the batch and the list of
// intent hashes that executed, with no event emission at all.
type SimulateInspector struct {
	hasDeadline bool
	minDeadline time.Time
	executed    []ExecutedIntent
}

func NewSimulateInspector() *SimulateInspector {
	return &SimulateInspector{}
}

func (s *SimulateInspector) OnDeadline(deadline time.Time) {
	if !s.hasDeadline || deadline.Before(s.minDeadline) {
		s.minDeadline = deadline
		s.hasDeadline = true
	}
}

func (s *SimulateInspector) OnPublicKeyAdded(string, signing.PublicKey)   {}
func (s *SimulateInspector) OnPublicKeyRemoved(string, signing.PublicKey) {}
func (s *SimulateInspector) OnTransfer(string, intent.Transfer)           {}
func (s *SimulateInspector) OnTokenDiff(string, intent.TokenDiff)         {}

func (s *SimulateInspector) OnIntentExecuted(signer string, hash [32]byte) {
	s.executed = append(s.executed, ExecutedIntent{Signer: signer, Hash: hashHex(hash)})
}

func (s *SimulateInspector) OnCallback(string, string, string) {}

func (s *SimulateInspector) MinDeadline() (time.Time, bool) {
	return s.minDeadline, s.hasDeadline
}

func (s *SimulateInspector) Executed() []ExecutedIntent {
	return s.executed
}
