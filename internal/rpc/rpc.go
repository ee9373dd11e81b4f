// Package rpc implements the JSON-RPC tool dispatch table over
// *engine.Engine: a request struct for each tool operation that takes
// parameters (a response struct only where the result is not returned as
// an engine type), and a single map from operation name to handler. Wire framing (stdio
// transport, MCP envelope) is not this package's concern — callers decode
// a request's params into json.RawMessage and hand it to Dispatch.
package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/journal/internal/artifact"
	"github.com/mesh-intelligence/journal/internal/engine"
	"github.com/mesh-intelligence/journal/internal/journalerr"
)

// Handler decodes its own params and returns a JSON-marshalable result.
type Handler func(e *engine.Engine, params json.RawMessage) (any, error)

// Table is the operation-name to Handler map every server exposes.
var Table = map[string]Handler{
	"append":                 handleAppend,
	"amend":                  handleAmend,
	"read":                   handleRead,
	"query":                  handleQuery,
	"search":                 handleSearch,
	"stats":                  handleStats,
	"active":                 handleActive,
	"archive_config":         handleArchiveConfig,
	"activate_config":        handleActivateConfig,
	"diff_config":            handleDiffConfig,
	"preserve_log":           handlePreserveLog,
	"state_snapshot":         handleStateSnapshot,
	"timeline":               handleTimeline,
	"trace_causality":        handleTraceCausality,
	"session_handoff":        handleSessionHandoff,
	"rebuild_artifact_index": handleRebuildArtifactIndex,
	"rebuild_index":          handleRebuildIndex,
	"list_templates":         handleListTemplates,
	"get_template":           handleGetTemplate,
	"help":                   handleHelp,
}

// Dispatch looks up op in Table and invokes it against e, decoding params
// first. An unknown op is an InvalidArgument error so callers get the same
// exit-code/error-kind contract as a malformed request. Every call is
// tagged with a fresh correlation id so a caller's logs (and the engine's)
// can be joined on one request across hook invocations.
func Dispatch(e *engine.Engine, op string, params json.RawMessage) (any, error) {
	requestID := uuid.NewString()
	log := e.Logger.With().Str("request_id", requestID).Str("op", op).Logger()

	h, ok := Table[op]
	if !ok {
		return nil, journalerr.New(journalerr.KindInvalidArgument, fmt.Sprintf("unknown operation %q", op))
	}

	log.Debug().Msg("rpc dispatch")
	result, err := h(e, params)
	if err != nil {
		log.Debug().Err(err).Msg("rpc dispatch failed")
	}
	return result, err
}

func decode(params json.RawMessage, dst any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, dst); err != nil {
		return journalerr.Wrap(journalerr.KindInvalidArgument, "decode params", err)
	}
	return nil
}

// parseArtifactKind maps the wire-level kind string to artifact.Kind.
func parseArtifactKind(s string) (artifact.Kind, error) {
	switch artifact.Kind(s) {
	case artifact.KindConfigs, artifact.KindLogs, artifact.KindSnapshots:
		return artifact.Kind(s), nil
	default:
		return "", journalerr.New(journalerr.KindInvalidArgument, fmt.Sprintf("unknown artifact kind %q", s))
	}
}
