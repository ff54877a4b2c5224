// Command defuserelay is a minimal HTTP entrypoint that decodes a
// JSON batch, calls engine.ExecuteBatch against an in-memory store,
// and reports the result. It is deliberately thin: access control,
// pause switches, and upgrade machinery belong to the host adapter
// this core does not provide.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/defuse-protocol/defuse-core/account"
	"github.com/defuse-protocol/defuse-core/defuseerr"
	"github.com/defuse-protocol/defuse-core/engine"
	"github.com/defuse-protocol/defuse-core/hostenv"
	"github.com/defuse-protocol/defuse-core/inspector"
	"github.com/defuse-protocol/defuse-core/payload"
	"github.com/defuse-protocol/defuse-core/runtime"
	"github.com/defuse-protocol/defuse-core/wire"
)

func main() {
	addr := flag.String("addr", ":8088", "listen address")
	contractID := flag.String("contract", "intents.near", "verifying_contract this relay runs against")
	feePips := flag.Uint("fee-pips", 0, "fee rate in parts-per-million")
	feeCollector := flag.String("fee-collector", "", "fee collector account id")
	wnearID := flag.String("wnear", "wrap.near", "wrapped-native token account id")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	store := account.NewStore()
	env := hostenv.NewSystem(*contractID)
	cfg := runtime.Config{
		WnearID:      *wnearID,
		FeePips:      uint32(*feePips),
		FeeCollector: *feeCollector,
	}
	eng := engine.New(store, env, cfg, log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/batch", func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
			return
		}
		if err := wire.ValidateBatch(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var payloads []payload.MultiPayload
		if err := json.Unmarshal(raw, &payloads); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		insp := inspector.NewExecuteInspector()
		if err := eng.ExecuteBatch(payloads, insp); err != nil {
			var invariant *runtime.InvariantViolatedError
			if errors.As(err, &invariant) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":            defuseerr.ErrInvalidIntent.Error(),
					"unmatched_deltas": invariant.UnmatchedDeltas,
				})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		events, err := insp.Emit()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"events": events})
	})

	log.Info("defuserelay listening", zap.String("addr", *addr))
	if err := r.Run(*addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
