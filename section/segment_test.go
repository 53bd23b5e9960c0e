package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hitman-tools/bin1/format"
)

func TestAppendAndParseSegments(t *testing.T) {
	var buf []byte
	buf = AppendSegment(buf, format.KindRebasedPointers, EncodeOffsetList([]uint32{0x10, 0x20}))
	buf = AppendSegment(buf, format.KindResourceIDs, EncodeOffsetList([]uint32{0x30}))

	segments, err := ParseSegments(buf, 2)
	require.NoError(t, err)
	require.Len(t, segments, 2)
	require.Equal(t, format.KindRebasedPointers, segments[0].Kind)
	require.Equal(t, format.KindResourceIDs, segments[1].Kind)

	offsets, err := DecodeOffsetList(segments[0].Payload)
	require.NoError(t, err)
	require.Equal(t, []uint32{0x10, 0x20}, offsets)
}

func TestParseSegmentsRejectsTruncated(t *testing.T) {
	buf := AppendSegment(nil, format.KindResourceIDs, []byte{1, 2, 3})
	_, err := ParseSegments(buf[:len(buf)-1], 1)
	require.Error(t, err)
}

func TestOffsetListRoundTrip(t *testing.T) {
	offsets := []uint32{0, 8, 16, 0xFFFFFF00}
	payload := EncodeOffsetList(offsets)

	got, err := DecodeOffsetList(payload)
	require.NoError(t, err)
	require.Equal(t, offsets, got)
}

func TestOffsetListEmpty(t *testing.T) {
	payload := EncodeOffsetList(nil)

	got, err := DecodeOffsetList(payload)
	require.NoError(t, err)
	require.Empty(t, got)
}
