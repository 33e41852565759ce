package jsonutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyPrint(t *testing.T) {
	b := &bytes.Buffer{}
	require.NoError(t, PrettyPrint(b, map[string]string{"Resource": "arn:aws:execute-api:us-east-1:111122223333:abcd1234/prod/GET/*"}))
	assert.Equal(t, "{\n\t\"Resource\": \"arn:aws:execute-api:us-east-1:111122223333:abcd1234/prod/GET/*\"\n}\n", b.String())
}

func TestReadRaw(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"type":"TOKEN"}`), 0666))
	raw, err := ReadRaw(good)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"TOKEN"}`, string(raw))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"type":`), 0666))
	_, err = ReadRaw(bad)
	assert.Error(t, err)

	_, err = ReadRaw(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
