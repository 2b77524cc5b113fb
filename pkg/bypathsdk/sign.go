package bypathsdk

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Reserved credential fields. They carry the credentials themselves and are
// excluded from the hashed parameter set to avoid a circular dependency.
const (
	ParamClientKey = "client_key"
	ParamToken     = "token"
)

// SignParams computes the canonical request hash over the application
// parameters: reserved credential fields are excluded, the remaining keys are
// sorted ascending byte-wise, their values concatenated in that order, the
// secret appended, and the whole string digested with SHA-256.
//
// Only key-sort order matters, so the scheme is robust to transport-layer
// parameter reordering.
func SignParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == ParamClientKey || k == ParamToken {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(params[k])
	}
	b.WriteString(secret)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
