package bypathsdk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignParamsGoldenVector(t *testing.T) {
	t.Parallel()

	// params {a:"1", b:"2"} concatenate to "12", secret "SECRET1" appended,
	// so the digest is sha256("12SECRET1").
	params := map[string]string{
		"client_key": "CK1",
		"a":          "1",
		"b":          "2",
	}
	const want = "947e58cd5536b50e98fd67fcf4e35af2e491a976bb914741c988380f051f741b"
	require.Equal(t, want, SignParams(params, "SECRET1"))
}

func TestSignParamsExcludesReservedFields(t *testing.T) {
	t.Parallel()

	base := map[string]string{"a": "1", "b": "2"}
	withCreds := map[string]string{
		"a":            "1",
		"b":            "2",
		ParamClientKey: "CK1",
		ParamToken:     "previous-digest",
	}
	require.Equal(t, SignParams(base, "s"), SignParams(withCreds, "s"))
}

func TestSignParamsSortsByKeyNotInsertionOrder(t *testing.T) {
	t.Parallel()

	// Maps have no order anyway; assert against an explicitly reversed
	// construction to document the contract.
	forward := map[string]string{"alpha": "x", "beta": "y", "gamma": "z"}
	reversed := map[string]string{"gamma": "z", "beta": "y", "alpha": "x"}
	require.Equal(t, SignParams(forward, "s"), SignParams(reversed, "s"))
}

func TestSignParamsSensitivity(t *testing.T) {
	t.Parallel()

	params := map[string]string{"a": "1", "b": "2"}
	digest := SignParams(params, "SECRET1")

	t.Run("value change alters digest", func(t *testing.T) {
		mutated := map[string]string{"a": "1", "b": "3"}
		require.NotEqual(t, digest, SignParams(mutated, "SECRET1"))
	})

	t.Run("secret change alters digest", func(t *testing.T) {
		require.NotEqual(t, digest, SignParams(params, "SECRET2"))
	})

	t.Run("empty parameter set hashes secret alone", func(t *testing.T) {
		const want = "03153249db7ce46b0330ffb1a760b59710531af08ec4d7f8424a6870fae49360"
		require.Equal(t, want, SignParams(map[string]string{}, "SECRET1"))
	})
}
