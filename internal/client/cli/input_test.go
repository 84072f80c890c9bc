package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain line", "alice\n", "alice"},
		{"surrounding spaces trimmed", "  alice  \n", "alice"},
		{"partial line before EOF", "alice", "alice"},
		{"empty line", "\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(bufio.NewReader(strings.NewReader(tt.input)), "Username", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Username")
		})
	}
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(bufio.NewReader(strings.NewReader("")), "Username", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetOptionalText(t *testing.T) {
	var out bytes.Buffer

	got, err := GetOptionalText(bufio.NewReader(strings.NewReader("\n")), "Location", "Paris", &out)
	require.NoError(t, err)
	assert.Equal(t, "Paris", got)

	got, err = GetOptionalText(bufio.NewReader(strings.NewReader("Lyon\n")), "Location", "Paris", &out)
	require.NoError(t, err)
	assert.Equal(t, "Lyon", got)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer

	got, err := GetInt(bufio.NewReader(strings.NewReader("42\n")), "Employees", 5, &out)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = GetInt(bufio.NewReader(strings.NewReader("\n")), "Employees", 5, &out)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	_, err = GetInt(bufio.NewReader(strings.NewReader("many\n")), "Employees", 5, &out)
	assert.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Contains(t, out.String(), "Enter password")
}

func TestWipe(t *testing.T) {
	b := []byte("s3cret")
	wipe(b)
	assert.Equal(t, make([]byte, 6), b)
}
