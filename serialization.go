package places

import (
	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Rows serialize as their decimal text form: it is the only carrier that is
// lossless at any magnitude (bson.Decimal128 caps at 34 significant digits).

var (
	_ bson.Getter           = Row{}
	_ bson.Setter           = (*Row)(nil)
	_ msgpack.CustomEncoder = Row{}
	_ msgpack.CustomDecoder = (*Row)(nil)
)

// GetBSON implements bson.Getter.
func (r Row) GetBSON() (interface{}, error) {
	return r.String(), nil
}

// SetBSON implements bson.Setter.
func (r *Row) SetBSON(raw bson.Raw) error {
	var s string
	if err := raw.Unmarshal(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return errors.Wrap(err, "decode bson row")
	}
	*r = parsed
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (r Row) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(r.String())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (r *Row) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return errors.Wrap(err, "decode msgpack row")
	}
	*r = parsed
	return nil
}
