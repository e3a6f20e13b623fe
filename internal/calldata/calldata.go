package calldata

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/pipeline/chans"
)

const selectorLen = 4

// Runner executes an external command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Result is one successfully generated calldata payload for a token.
type Result struct {
	TokenID uint64
	Data    string
}

// Generator produces migrateNft calldata by delegating to the cast binary.
type Generator struct {
	logger      *logrus.Logger
	runner      Runner
	castBin     string
	functionSig string
	newLoan     common.Address
	factory     common.Address
	selector    []byte
}

func NewGenerator(logger *logrus.Logger, runner Runner, castBin, functionSig string, newLoan, factory common.Address) *Generator {
	return &Generator{
		logger:      logger,
		runner:      runner,
		castBin:     castBin,
		functionSig: functionSig,
		newLoan:     newLoan,
		factory:     factory,
		selector:    crypto.Keccak256([]byte(functionSig))[:selectorLen],
	}
}

// Stream generates calldata for each token ID in order, one invocation at a
// time. Tokens whose generation fails are logged and skipped; the returned
// channel only carries successful results and is closed once the input is
// exhausted.
func (g *Generator) Stream(ctx context.Context, tokenIDs []uint64) <-chan *Result {
	out := make(chan *Result)

	go func() {
		defer close(out)

		for i, tokenID := range tokenIDs {
			logger := g.logger.WithFields(logrus.Fields{
				"token_id": tokenID,
				"progress": fmt.Sprintf("%d/%d", i+1, len(tokenIDs)),
			})
			logger.Info("Generating calldata")

			data, err := g.Generate(ctx, tokenID)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.WithError(err).Error("Failed to generate calldata, skipping token")
				failedGenerations.Inc()
				continue
			}

			if !chans.SendOrDone(ctx, out, &Result{TokenID: tokenID, Data: data}) {
				return
			}
			generatedCalldata.Inc()
		}
	}()

	return out
}

// Generate invokes cast calldata for the given token ID and returns the
// hex-encoded payload. The output must decode as hex and start with the
// migrate function's 4-byte selector.
func (g *Generator) Generate(ctx context.Context, tokenID uint64) (string, error) {
	out, err := g.runner.Run(ctx, g.castBin,
		"calldata",
		g.functionSig,
		strconv.FormatUint(tokenID, 10),
		g.newLoan.Hex(),
		g.factory.Hex(),
	)
	if err != nil {
		return "", fmt.Errorf("run %s calldata: %w", g.castBin, err)
	}

	data := strings.TrimSpace(string(out))
	decoded, err := hexutil.Decode(data)
	if err != nil {
		return "", fmt.Errorf("invalid calldata %q: %w", data, err)
	}
	if len(decoded) < selectorLen || !bytes.Equal(decoded[:selectorLen], g.selector) {
		return "", fmt.Errorf("calldata %q does not start with the %s selector", data, g.functionSig)
	}

	return data, nil
}
