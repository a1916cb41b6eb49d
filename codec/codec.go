// Package codec provides a stable structured encoding for monetary values,
// suitable for persistence and interchange.
//
// Money travels as a canonical CBOR array with a fixed field order: currency
// code, amount, exponent. The amount is carried as a decimal integer string
// of subunits, which keeps the full 128-bit range intact on any decoder.
package codec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/monet-go/monet"
)

// envelope is the wire form of a monetary value.
type envelope struct {
	_        struct{} `cbor:",toarray"`
	Currency string
	Amount   string
	Exponent int
}

// Codec encodes and decodes monetary values as canonical CBOR.
type Codec struct {
	encoder cbor.EncMode
}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	// We should never fail here if the options are valid, so use panic to
	// keep the function signature for the codec clean.
	options := cbor.CanonicalEncOptions()
	encoder, err := options.EncMode()
	if err != nil {
		panic(err)
	}

	c := Codec{
		encoder: encoder,
	}

	return &c
}

// MarshalMoney encodes money into its stable wire form.
func (c *Codec) MarshalMoney(m monet.Money) ([]byte, error) {
	env := envelope{
		Currency: m.CurrencyCode().String(),
		Amount:   m.Amount().SubunitString(),
		Exponent: monet.UnitScale,
	}
	data, err := c.encoder.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("could not encode money: %w", err)
	}
	return data, nil
}

// UnmarshalMoney decodes money from its stable wire form, re-validating the
// currency code and rescaling the amount if it was encoded at an exponent
// other than [monet.UnitScale].
func (c *Codec) UnmarshalMoney(data []byte) (monet.Money, error) {
	var env envelope
	err := cbor.Unmarshal(data, &env)
	if err != nil {
		return monet.Money{}, fmt.Errorf("could not decode money: %w", err)
	}
	m, err := monet.NewMoney(env.Currency, env.Amount, env.Exponent)
	if err != nil {
		return monet.Money{}, fmt.Errorf("could not decode money: %w", err)
	}
	return m, nil
}
