package main

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/pbkdf2"
)

func encryptForTest(t *testing.T, plain []byte, secretKey, salt string, pad bool) string {
	t.Helper()

	key := pbkdf2.Key([]byte(secretKey), []byte(salt), 65536, 32, sha256.New)
	block, err := aes.NewCipher(key)
	assert.Nil(t, err)

	if pad {
		n := aes.BlockSize - len(plain)%aes.BlockSize
		plain = append(plain, bytes.Repeat([]byte{byte(n)}, n)...)
	}

	out := make([]byte, len(plain))
	iv := make([]byte, aes.BlockSize)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, plain)

	return base64.StdEncoding.EncodeToString(out)
}

func TestDecryptRoundTrip(t *testing.T) {
	token := encryptForTest(t, []byte("gateway-token"), "key", "salt", true)

	got, err := decrypt(token, "key", "salt")
	assert.Nil(t, err)
	assert.Equal(t, "gateway-token", got)
}

func TestDecryptRejectsMalformedInput(t *testing.T) {
	// A block whose last plaintext byte decodes to a padding length far
	// beyond the message must fail cleanly instead of panicking.
	forged := encryptForTest(t, bytes.Repeat([]byte{0xFF}, aes.BlockSize), "key", "salt", false)

	cases := []struct {
		name      string
		encrypted string
	}{
		{"oversized padding byte", forged},
		{"not base64", "%%%"},
		{"too short", base64.StdEncoding.EncodeToString([]byte("abc"))},
		{"unaligned length", base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{1}, aes.BlockSize+1))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decrypt(tc.encrypted, "key", "salt")
			assert.NotNil(t, err)
		})
	}
}
