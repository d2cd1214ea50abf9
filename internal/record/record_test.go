package record_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/telemetryco/sensorbuf/internal/record"
)

func TestCodec_RoundTrip(t *testing.T) {
	cases := []record.Record{
		{ID: 0, Value: 0, TS: 0},
		{ID: 1, Value: 21.5, TS: 1_700_000_000},
		{ID: 65535, Value: -40.125, TS: -1},
	}

	var c record.Codec
	for _, want := range cases {
		var buf bytes.Buffer
		require.NoError(t, c.Encode(&buf, want))
		require.Equal(t, record.Size, buf.Len())

		got, err := c.Decode(&buf)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestCodec_Decode_ShortRead(t *testing.T) {
	var c record.Codec
	_, err := c.Decode(bytes.NewReader([]byte{1, 2, 3}))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
