// Package near encodes NEAR delegate actions (NEP-366 meta transactions)
// into the prefixed borsh form the signing endpoint expects.
package near

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

// DelegateActionPrefix is the NEP-461 message discriminant for actionable
// delegate actions: 2^30 + 366 + 95. It separates signatures over delegate
// actions from signatures over any other message type and must be written
// bit-exact as a little-endian u32.
const DelegateActionPrefix uint32 = 1<<30 + 461

// DelegateAction is a meta transaction: SenderID authorises Actions on
// ReceiverID, valid until MaxBlockHeight, signed by PublicKey.
type DelegateAction struct {
	SenderID       string
	ReceiverID     string
	Actions        []Action
	Nonce          uint64
	MaxBlockHeight uint64
	PublicKey      PublicKey
}

// SerializeDelegateAction returns the canonical borsh bytes of a, without
// the message prefix. Fields are written in declaration order.
func SerializeDelegateAction(a DelegateAction) ([]byte, error) {
	e := &encoder{}
	if err := e.delegateAction(a); err != nil {
		return nil, fmt.Errorf("failed to encode delegate action: %w", err)
	}
	return e.buf.Bytes(), nil
}

// EncodeDelegateAction returns base64(prefix || borsh(a)), the value sent as
// the unsigned delegate action in signing requests.
func EncodeDelegateAction(a DelegateAction) (string, error) {
	payload, err := SerializeDelegateAction(a)
	if err != nil {
		return "", err
	}

	out := make([]byte, 4, 4+len(payload))
	binary.LittleEndian.PutUint32(out, DelegateActionPrefix)
	out = append(out, payload...)

	return base64.StdEncoding.EncodeToString(out), nil
}

// encoder writes the fixed-width little-endian, length-prefixed borsh
// layout. Only the shapes used by delegate actions are supported.
type encoder struct {
	buf bytes.Buffer
}

func (e *encoder) u8(v uint8) {
	e.buf.WriteByte(v)
}

func (e *encoder) u32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.buf.Write(b[:])
}

func (e *encoder) u64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buf.Write(b[:])
}

func (e *encoder) u128(v Balance) {
	var b [16]byte
	v.putLE(b[:])
	e.buf.Write(b[:])
}

func (e *encoder) bytes(v []byte) {
	e.u32(uint32(len(v)))
	e.buf.Write(v)
}

func (e *encoder) string(v string) {
	e.u32(uint32(len(v)))
	e.buf.WriteString(v)
}

func (e *encoder) publicKey(k PublicKey) error {
	if err := k.validate(); err != nil {
		return err
	}
	e.u8(uint8(k.Type))
	e.buf.Write(k.Data)
	return nil
}

func (e *encoder) action(a Action) error {
	if a == nil {
		return fmt.Errorf("nil action")
	}
	e.u8(a.actionTag())
	return a.encodeFields(e)
}

func (e *encoder) delegateAction(a DelegateAction) error {
	e.string(a.SenderID)
	e.string(a.ReceiverID)

	e.u32(uint32(len(a.Actions)))
	for i, act := range a.Actions {
		if err := e.action(act); err != nil {
			return fmt.Errorf("action %d: %w", i, err)
		}
	}

	e.u64(a.Nonce)
	e.u64(a.MaxBlockHeight)
	return e.publicKey(a.PublicKey)
}
