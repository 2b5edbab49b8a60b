package lib

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonical(t *testing.T) {
	t.Parallel()
	r := &ListKeyVersionsRequest{
		StoreID:   "test_store",
		KeyPrefix: "test_",
		PageSize:  10,
	}
	// Byte-for-byte what a protoc/prost encoder emits for this message.
	want, _ := hex.DecodeString("0a0a746573745f73746f72651205746573745f180a")
	assert.Equal(t, want, r.Marshal())
}

func TestMarshalOmitsUnsetFields(t *testing.T) {
	t.Parallel()
	r := &ListKeyVersionsRequest{StoreID: "s"}
	want, _ := hex.DecodeString("0a0173")
	assert.Equal(t, want, r.Marshal())
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	var tests = []ListKeyVersionsRequest{
		{StoreID: "test_store", KeyPrefix: "test_", PageSize: 10},
		{StoreID: "test_store"},
		{StoreID: "s", PageToken: "next-page"},
		{StoreID: "s", PageSize: -1},
	}
	for _, tst := range tests {
		var got ListKeyVersionsRequest
		require.NoError(t, got.Unmarshal(tst.Marshal()))
		assert.Equal(t, tst, got)
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	t.Parallel()
	// store_id "s" followed by an unknown varint field 9.
	b, _ := hex.DecodeString("0a0173482a")
	var got ListKeyVersionsRequest
	require.NoError(t, got.Unmarshal(b))
	assert.Equal(t, "s", got.StoreID)
}

func TestUnmarshalMalformed(t *testing.T) {
	t.Parallel()
	var tests = [][]byte{
		{0x0a},             // length prefix missing
		{0x0a, 0x05, 0x73}, // truncated string
		{0xff},             // bad tag
	}
	for _, tst := range tests {
		var got ListKeyVersionsRequest
		assert.Error(t, got.Unmarshal(tst))
	}
}
