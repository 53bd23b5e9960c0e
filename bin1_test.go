package bin1

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hitman-tools/bin1/value"
)

func TestEncodeDecodeStringRoundTrip(t *testing.T) {
	root := value.String{Value: "top level value"}

	data, err := Encode(root)
	require.NoError(t, err)

	got, err := Decode(data, value.ReadString)
	require.NoError(t, err)
	require.Equal(t, "top level value", got)
}
