package classical

import (
	"bytes"
	"fmt"
)

// PaddingStrategy is the pluggable block-padding contract. An
// implementation rounds data up to a multiple of the block length on
// the way in and removes exactly what it added on the way out.
type PaddingStrategy interface {
	// ApplyPadding pads data to a multiple of blockLength and returns
	// a fresh buffer; the input is never mutated.
	ApplyPadding(data []byte, blockLength int) ([]byte, error)

	// StripPadding validates and removes the padding from data,
	// returning a fresh buffer with the original bytes.
	StripPadding(data []byte, blockLength int) ([]byte, error)

	// ValidatePadding checks that the trailing padding bytes of data
	// are well formed for blockLength. The caller must ensure data is
	// non-empty.
	ValidatePadding(data []byte, blockLength int) error
}

// PKCS7 implements PaddingStrategy with block-size-relative byte
// padding: N bytes of value N are appended, where N is the distance to
// the next block boundary. Already-aligned input gets a full extra
// block, so the padding value is never zero and stripping is always
// unambiguous.
type PKCS7 struct{}

func (PKCS7) ApplyPadding(data []byte, blockLength int) ([]byte, error) {
	if err := ValidateData(data, "data"); err != nil {
		return nil, err
	}
	if err := ValidateBlockLength(blockLength); err != nil {
		return nil, err
	}

	// Always in [1, blockLength]: aligned input gets a full block.
	pad := blockLength - len(data)%blockLength

	padded := make([]byte, 0, len(data)+pad)
	padded = append(padded, data...)
	padded = append(padded, bytes.Repeat([]byte{byte(pad)}, pad)...)
	return padded, nil
}

func (p PKCS7) StripPadding(data []byte, blockLength int) ([]byte, error) {
	if err := ValidateData(data, "data"); err != nil {
		return nil, err
	}
	if err := ValidateBlockLength(blockLength); err != nil {
		return nil, err
	}
	if len(data)%blockLength != 0 {
		return nil, &ParameterError{
			Field:   "data",
			Value:   len(data),
			Message: "data length must be a multiple of block length",
		}
	}

	if err := p.ValidatePadding(data, blockLength); err != nil {
		return nil, err
	}

	pad := int(data[len(data)-1])
	unpadded := make([]byte, len(data)-pad)
	copy(unpadded, data[:len(data)-pad])
	return unpadded, nil
}

func (PKCS7) ValidatePadding(data []byte, blockLength int) error {
	pad := data[len(data)-1]
	if pad == 0 || int(pad) > blockLength {
		return &PaddingError{
			Value:   pad,
			Message: fmt.Sprintf("padding value must be greater than 0 and not greater than block length, found %d", pad),
		}
	}

	for _, b := range data[len(data)-int(pad):] {
		if b != pad {
			return &PaddingError{
				Value:   pad,
				Message: "padding content is invalid",
			}
		}
	}
	return nil
}
