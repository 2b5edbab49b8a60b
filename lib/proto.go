package lib

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers from the VSS ListKeyVersionsRequest schema.
const (
	fieldStoreID   = 1
	fieldKeyPrefix = 2
	fieldPageSize  = 3
	fieldPageToken = 4
)

// ListKeyVersionsRequest is the body of a listKeyVersions call.
// KeyPrefix, PageSize and PageToken are optional; the zero value means unset.
type ListKeyVersionsRequest struct {
	StoreID   string
	KeyPrefix string
	PageSize  int32
	PageToken string
}

// Marshal serializes the request to protobuf wire format.
func (r *ListKeyVersionsRequest) Marshal() []byte {
	b := protowire.AppendTag(nil, fieldStoreID, protowire.BytesType)
	b = protowire.AppendString(b, r.StoreID)
	if r.KeyPrefix != "" {
		b = protowire.AppendTag(b, fieldKeyPrefix, protowire.BytesType)
		b = protowire.AppendString(b, r.KeyPrefix)
	}
	if r.PageSize != 0 {
		b = protowire.AppendTag(b, fieldPageSize, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(r.PageSize)))
	}
	if r.PageToken != "" {
		b = protowire.AppendTag(b, fieldPageToken, protowire.BytesType)
		b = protowire.AppendString(b, r.PageToken)
	}
	return b
}

// Unmarshal parses a wire-format request, replacing the receiver's contents.
// Unknown fields are skipped.
func (r *ListKeyVersionsRequest) Unmarshal(b []byte) error {
	*r = ListKeyVersionsRequest{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.Wrap(protowire.ParseError(n), "malformed field tag")
		}
		b = b[n:]
		switch {
		case num == fieldStoreID && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(b)
			if m < 0 {
				return errors.Wrap(protowire.ParseError(m), "malformed store_id")
			}
			r.StoreID = v
			n = m
		case num == fieldKeyPrefix && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(b)
			if m < 0 {
				return errors.Wrap(protowire.ParseError(m), "malformed key_prefix")
			}
			r.KeyPrefix = v
			n = m
		case num == fieldPageSize && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return errors.Wrap(protowire.ParseError(m), "malformed page_size")
			}
			r.PageSize = int32(v)
			n = m
		case num == fieldPageToken && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(b)
			if m < 0 {
				return errors.Wrap(protowire.ParseError(m), "malformed page_token")
			}
			r.PageToken = v
			n = m
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return errors.Wrapf(protowire.ParseError(m), "malformed field %d", num)
			}
			n = m
		}
		b = b[n:]
	}
	return nil
}
