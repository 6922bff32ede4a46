package classical

// Input validation helpers shared by the padding and cipher layers

// ValidateBlockLength checks that a block length is usable for byte
// padding: at least 1, and at most 255 so the padding value fits in a
// single byte.
func ValidateBlockLength(blockLength int) error {
	if blockLength <= 0 || blockLength > 255 {
		return &ParameterError{
			Field:   "blockLength",
			Value:   blockLength,
			Message: "block length must be greater than 0 and smaller than 256",
		}
	}
	return nil
}

// ValidateData checks that a data buffer is non-empty.
func ValidateData(data []byte, name string) error {
	if len(data) == 0 {
		return &ParameterError{
			Field:   name,
			Message: "data must not be empty",
		}
	}
	return nil
}
