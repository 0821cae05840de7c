package securestore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Sealed value layout: salt || nonce || ciphertext.
const (
	saltSize  = 16
	nonceSize = 12
	keySize   = 32
	iterCount = 100000
)

func deriveKey(passphrase string, salt []byte) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, iterCount, keySize, sha256.New)
}

func newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(deriveKey(passphrase, salt))
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}

func encrypt(passphrase string, plaintext []byte) ([]byte, error) {
	buf := make([]byte, saltSize+nonceSize)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, err
	}

	salt, nonce := buf[:saltSize], buf[saltSize:]

	aesgcm, err := newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}

	return aesgcm.Seal(buf, nonce, plaintext, nil), nil
}

func decrypt(passphrase string, sealed []byte) ([]byte, error) {
	if len(sealed) < saltSize+nonceSize {
		return nil, fmt.Errorf("%w: sealed value too short", ErrDecryption)
	}

	salt := sealed[:saltSize]
	nonce := sealed[saltSize : saltSize+nonceSize]

	aesgcm, err := newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesgcm.Open(nil, nonce, sealed[saltSize+nonceSize:], nil)
	if err != nil {
		return nil, ErrDecryption
	}

	return plaintext, nil
}
