// Command defusesim runs the read-only simulation driver over a JSON
// batch read from stdin, for solver tooling and integration tests
// that want unmatched-delta feedback without a live HTTP surface.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/defuse-protocol/defuse-core/account"
	"github.com/defuse-protocol/defuse-core/hostenv"
	"github.com/defuse-protocol/defuse-core/payload"
	"github.com/defuse-protocol/defuse-core/runtime"
	"github.com/defuse-protocol/defuse-core/simulate"
	"github.com/defuse-protocol/defuse-core/wire"
)

func main() {
	contractID := flag.String("contract", "intents.near", "verifying_contract this simulation runs against")
	feePips := flag.Uint("fee-pips", 0, "fee rate in parts-per-million")
	feeCollector := flag.String("fee-collector", "", "fee collector account id")
	wnearID := flag.String("wnear", "wrap.near", "wrapped-native token account id")
	flag.Parse()

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		os.Exit(1)
	}

	if err := wire.ValidateBatch(raw); err != nil {
		fmt.Fprintf(os.Stderr, "invalid batch: %v\n", err)
		os.Exit(1)
	}

	var payloads []payload.MultiPayload
	if err := json.Unmarshal(raw, &payloads); err != nil {
		fmt.Fprintf(os.Stderr, "decode batch: %v\n", err)
		os.Exit(1)
	}

	store := account.NewStore()
	env := hostenv.NewSystem(*contractID)
	cfg := runtime.Config{
		WnearID:      *wnearID,
		FeePips:      uint32(*feePips),
		FeeCollector: *feeCollector,
	}

	out, err := simulate.Run(store, env, cfg, payloads)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode output: %v\n", err)
		os.Exit(1)
	}
}
