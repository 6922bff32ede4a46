package classical

import (
	"bytes"
	"testing"
)

func TestPKCS7ApplyPadding(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		blockLength int
		want        []byte
	}{
		{
			name:        "one byte short of boundary",
			data:        []byte{1, 2, 3},
			blockLength: 4,
			want:        []byte{1, 2, 3, 1},
		},
		{
			name:        "aligned input gets a full extra block",
			data:        []byte{1, 2, 3, 4},
			blockLength: 4,
			want:        []byte{1, 2, 3, 4, 4, 4, 4, 4},
		},
		{
			name:        "single byte, large block",
			data:        []byte{7},
			blockLength: 8,
			want:        []byte{7, 7, 7, 7, 7, 7, 7, 7},
		},
		{
			name:        "block length one",
			data:        []byte{1, 2},
			blockLength: 1,
			want:        []byte{1, 2, 1},
		},
	}

	var p PKCS7
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ApplyPadding(tt.data, tt.blockLength)
			if err != nil {
				t.Fatalf("ApplyPadding failed: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ApplyPadding = %v, want %v", got, tt.want)
			}
			if len(got)%tt.blockLength != 0 {
				t.Errorf("padded length %d is not a multiple of %d", len(got), tt.blockLength)
			}
		})
	}
}

func TestPKCS7ApplyPaddingErrors(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		blockLength int
	}{
		{"empty data", nil, 4},
		{"zero block length", []byte{1}, 0},
		{"negative block length", []byte{1}, -1},
		{"block length over 255", []byte{1}, 256},
	}

	var p PKCS7
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.ApplyPadding(tt.data, tt.blockLength); !IsParameterError(err) {
				t.Errorf("ApplyPadding error = %v, want parameter error", err)
			}
		})
	}
}

func TestPKCS7StripPadding(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		blockLength int
		want        []byte
	}{
		{
			name:        "one padding byte",
			data:        []byte{1, 2, 3, 1},
			blockLength: 4,
			want:        []byte{1, 2, 3},
		},
		{
			name:        "full padding block",
			data:        []byte{1, 2, 3, 4, 4, 4, 4, 4},
			blockLength: 4,
			want:        []byte{1, 2, 3, 4},
		},
	}

	var p PKCS7
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.StripPadding(tt.data, tt.blockLength)
			if err != nil {
				t.Fatalf("StripPadding failed: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("StripPadding = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPKCS7StripPaddingErrors(t *testing.T) {
	var p PKCS7

	t.Run("length not a multiple of block length", func(t *testing.T) {
		if _, err := p.StripPadding([]byte{1, 2, 3}, 4); !IsParameterError(err) {
			t.Errorf("StripPadding error = %v, want parameter error", err)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		if _, err := p.StripPadding(nil, 4); !IsParameterError(err) {
			t.Errorf("StripPadding error = %v, want parameter error", err)
		}
	})

	t.Run("bad block length", func(t *testing.T) {
		if _, err := p.StripPadding([]byte{1, 2, 3, 1}, 0); !IsParameterError(err) {
			t.Errorf("StripPadding error = %v, want parameter error", err)
		}
	})
}

func TestPKCS7ValidatePadding(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		blockLength int
		wantErr     bool
	}{
		{"valid single byte", []byte{1, 2, 3, 1}, 4, false},
		{"valid full block", []byte{9, 4, 4, 4, 4}, 4, false},
		{"zero padding value", []byte{1, 2, 3, 0}, 4, true},
		{"value exceeds block length", []byte{1, 2, 3, 5}, 4, true},
		{"inconsistent padding bytes", []byte{1, 2, 3, 3, 2, 3}, 6, true},
	}

	var p PKCS7
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.ValidatePadding(tt.data, tt.blockLength)
			if tt.wantErr {
				if !IsPaddingError(err) {
					t.Errorf("ValidatePadding error = %v, want padding error", err)
				}
			} else if err != nil {
				t.Errorf("ValidatePadding failed: %v", err)
			}
		})
	}
}

func TestPKCS7RoundTrip(t *testing.T) {
	var p PKCS7
	data := []byte("the quick brown fox jumps over the lazy dog")

	for blockLength := 1; blockLength <= 16; blockLength++ {
		padded, err := p.ApplyPadding(data, blockLength)
		if err != nil {
			t.Fatalf("ApplyPadding(block %d) failed: %v", blockLength, err)
		}
		stripped, err := p.StripPadding(padded, blockLength)
		if err != nil {
			t.Fatalf("StripPadding(block %d) failed: %v", blockLength, err)
		}
		if !bytes.Equal(stripped, data) {
			t.Errorf("round trip with block %d = %q, want %q", blockLength, stripped, data)
		}
	}
}

func TestPKCS7DoesNotMutateInput(t *testing.T) {
	var p PKCS7
	data := []byte{1, 2, 3}
	orig := append([]byte(nil), data...)

	padded, err := p.ApplyPadding(data, 4)
	if err != nil {
		t.Fatalf("ApplyPadding failed: %v", err)
	}
	padded[0] = 0xFF

	if !bytes.Equal(data, orig) {
		t.Errorf("input mutated: %v, want %v", data, orig)
	}
}
