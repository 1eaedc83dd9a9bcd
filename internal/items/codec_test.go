package items

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBatch(t *testing.T) {
	original := Batch{
		NewMCQ("Which keyword skips to the next iteration?", map[string]string{
			"a": "break", "b": "continue", "c": "return", "d": "goto",
		}, "b"),
	}
	data, err := json.Marshal(original)
	require.NoError(t, err)

	got, err := DecodeBatch(KindMCQ, data)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, original[0], got[0])

	_, err = DecodeBatch(KindTrueFalse, []byte(`{"statement": 1}`))
	assert.Error(t, err)

	_, err = DecodeBatch(Kind("essay"), []byte(`[]`))
	assert.Error(t, err)
}

func TestWriteSheet(t *testing.T) {
	b := Batch{
		NewFillBlank("The _____ statement exits a loop.", "break", "Stops iteration"),
		NewFillBlank("A _____ loop runs at least once.", "do-while", "Post-test loop"),
	}

	var sheet bytes.Buffer
	require.NoError(t, WriteSheet(&sheet, b, false))
	assert.True(t, strings.HasPrefix(sheet.String(), "1. The _____ statement exits a loop.\n   Hint: Stops iteration\n"))
	assert.NotContains(t, sheet.String(), "break\n")

	var key bytes.Buffer
	require.NoError(t, WriteSheet(&key, b, true))
	assert.Equal(t, "1. break\n2. do-while\n", key.String())

	tf := Batch{NewTrueFalse("Loops repeat code.", false, "Loops repeat code, so this is a trap.")}
	key.Reset()
	require.NoError(t, WriteSheet(&key, tf, true))
	assert.Equal(t, "1. False: Loops repeat code, so this is a trap.\n", key.String())

	mcq := Batch{NewMCQ("Which keyword skips an iteration?", map[string]string{
		"a": "break", "b": "continue", "c": "return", "d": "goto",
	}, "b")}
	key.Reset()
	require.NoError(t, WriteSheet(&key, mcq, true))
	assert.Equal(t, "1. b) continue\n", key.String())
}
