package classical

import (
	"fmt"
	"io"
	"os"

	"github.com/absfs/absfs"
	"github.com/google/uuid"
)

// FileCrypter encrypts and decrypts whole files on an absfs filesystem
// with a configured cipher and key. Output files are written to a
// temporary name and renamed into place, so a failed write never
// leaves a partial destination behind.
type FileCrypter struct {
	fs     absfs.FileSystem
	cipher Cipher
	key    []byte
}

// NewFileCrypter creates a FileCrypter over the given filesystem. The
// key is copied, so the caller may reuse or wipe its buffer.
func NewFileCrypter(fs absfs.FileSystem, cipher Cipher, key []byte) (*FileCrypter, error) {
	if fs == nil {
		return nil, &ParameterError{Field: "fs", Message: "filesystem cannot be nil"}
	}
	if cipher == nil {
		return nil, &ParameterError{Field: "cipher", Message: "cipher cannot be nil"}
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	return &FileCrypter{
		fs:     fs,
		cipher: cipher,
		key:    append([]byte(nil), key...),
	}, nil
}

// EncryptFile reads src, encrypts its contents and writes the
// ciphertext to dst.
func (fc *FileCrypter) EncryptFile(src, dst string) error {
	return fc.transform(src, dst, fc.cipher.Encrypt)
}

// DecryptFile reads src, decrypts its contents and writes the
// plaintext to dst.
func (fc *FileCrypter) DecryptFile(src, dst string) error {
	return fc.transform(src, dst, fc.cipher.Decrypt)
}

func (fc *FileCrypter) transform(src, dst string, op func(data, key []byte) ([]byte, error)) error {
	data, err := fc.readFile(src)
	if err != nil {
		return err
	}

	out, err := op(data, fc.key)
	if err != nil {
		return err
	}

	// Unique temp name keeps concurrent writers to the same dst from
	// clobbering each other's partial output.
	tmp := fmt.Sprintf("%s.%s.tmp", dst, uuid.New().String())
	if err := fc.writeFile(tmp, out); err != nil {
		fc.fs.Remove(tmp)
		return err
	}
	if err := fc.fs.Rename(tmp, dst); err != nil {
		fc.fs.Remove(tmp)
		return fmt.Errorf("failed to rename %s to %s: %w", tmp, dst, err)
	}
	return nil
}

func (fc *FileCrypter) readFile(name string) ([]byte, error) {
	f, err := fc.fs.OpenFile(name, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func (fc *FileCrypter) writeFile(name string, data []byte) error {
	f, err := fc.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return f.Close()
}
