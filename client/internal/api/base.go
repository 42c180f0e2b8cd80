package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wanderlust/travel-client/client/internal/types"
)

// Requester is the part of the REST client the resource calls rely on.
type Requester interface {
	Request(ctx context.Context, method, path string, body any) types.Envelope
	UploadFile(ctx context.Context, path string, fields map[string]string, file types.FilePart) types.Envelope
	Token() string
	AuthKey() string
}

// withQuery appends key/value pairs to path in the given order. Values are
// query-escaped; keys are used as is.
func withQuery(path string, kv ...string) string {
	if len(kv)%2 != 0 {
		panic("api: withQuery needs key/value pairs")
	}
	var b strings.Builder
	b.WriteString(path)
	for i := 0; i < len(kv); i += 2 {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(kv[i])
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv[i+1]))
	}
	return b.String()
}

// list issues a GET and decodes a JSON array. A null payload is an empty list.
// Records that cannot be decoded are dropped; only a payload that is not an
// array fails.
func list[T any](ctx context.Context, r Requester, path, failMsg string) types.Result[[]T] {
	env := r.Request(ctx, http.MethodGet, path, nil)
	if !env.Success {
		return types.Fail[[]T](failMsg, env.Err)
	}
	var out []T
	if err := env.Decode(&out); err != nil {
		var raw []json.RawMessage
		if rerr := env.Decode(&raw); rerr != nil {
			return types.Fail[[]T](failMsg, fmt.Errorf("decode %s: %w", path, err))
		}
		out = decodeEach[T](raw, path)
	}
	if out == nil {
		out = []T{}
	}
	return types.OK(out)
}

// decodeEach decodes array elements one by one, dropping the ones whose
// shape does not fit T.
func decodeEach[T any](raw []json.RawMessage, path string) []T {
	out := make([]T, 0, len(raw))
	skipped := 0
	for _, item := range raw {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			skipped++
			log.Warn().Err(err).Str("path", path).Msg("skipping undecodable record")
			continue
		}
		out = append(out, v)
	}
	if skipped > 0 {
		log.Warn().Str("path", path).Int("skipped", skipped).Int("kept", len(out)).Msg("partial listing decoded")
	}
	return out
}

// write issues a mutating request. The reply is decoded into T on a best-effort
// basis: backends often answer with a plain confirmation string.
func write[T any](ctx context.Context, r Requester, method, path string, body any, failMsg string) types.Result[T] {
	env := r.Request(ctx, method, path, body)
	if !env.Success {
		return types.Fail[T](failMsg, env.Err)
	}
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("reply not decodable into result type")
	}
	return types.OK(out)
}

// backendError returns the "error" field of a failed reply, or fallback.
func backendError(env types.Envelope, fallback string) string {
	if msg, ok := env.Field("error"); ok && msg != "" {
		return msg
	}
	return fallback
}
