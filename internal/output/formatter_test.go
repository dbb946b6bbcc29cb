package output_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/resolvctl/internal/output"
)

type fakeResult struct {
	Value string `json:"value"`
}

func (f fakeResult) WriteTable(w io.Writer) error {
	_, err := io.WriteString(w, "table:"+f.Value)
	return err
}

func (f fakeResult) WritePlain(w io.Writer) error {
	_, err := io.WriteString(w, f.Value+"\n")
	return err
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, output.FormatJSON, fakeResult{Value: "x"}))
	assert.JSONEq(t, `{"value":"x"}`, buf.String())
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, output.FormatTable, fakeResult{Value: "x"}))
	assert.Equal(t, "table:x", buf.String())
}

func TestWrite_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, output.FormatPlain, fakeResult{Value: "x"}))
	assert.Equal(t, "x\n", buf.String())
}

func TestWrite_UnsupportedFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := output.Write(&buf, output.FormatTable, struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support table output")
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := output.Write(&buf, output.Format("xml"), fakeResult{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
