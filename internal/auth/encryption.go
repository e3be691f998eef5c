package auth

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength      = 32
	pbkdf2Iteration = 100000
	keyLength       = 32
	// DefaultPassword используется, если ENCRYPTION_PASSWORD не задан.
	DefaultPassword = "default-key"
)

var (
	ErrInvalidFormat   = errors.New("invalid encrypted token format")
	ErrDecryptFailed   = errors.New("failed to decrypt token")
	ErrEmptyPlaintext  = errors.New("token is empty")
	errInvalidPadding  = errors.New("invalid padding")
	errNotBlockAligned = errors.New("ciphertext is not a multiple of the block size")
)

func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, pbkdf2Iteration, keyLength, sha256.New)
}

func passwordOrDefault(password string) string {
	if password == "" {
		return DefaultPassword
	}
	return password
}

// EncryptToken шифрует токен AES-256-CBC. Формат результата: salt:iv:ciphertext в hex.
func EncryptToken(token, password string) (string, error) {
	if token == "" {
		return "", ErrEmptyPlaintext
	}

	salt := make([]byte, saltLength)
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate iv: %w", err)
	}

	block, err := aes.NewCipher(deriveKey(passwordOrDefault(password), salt))
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	plaintext := pkcs7Pad([]byte(token), aes.BlockSize)
	ciphertext := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, plaintext)

	return strings.Join([]string{
		hex.EncodeToString(salt),
		hex.EncodeToString(iv),
		hex.EncodeToString(ciphertext),
	}, ":"), nil
}

// DecryptToken расшифровывает значение, созданное EncryptToken.
func DecryptToken(data, password string) (string, error) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 {
		return "", ErrInvalidFormat
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: salt: %v", ErrInvalidFormat, err)
	}
	iv, err := hex.DecodeString(parts[1])
	if err != nil || len(iv) != aes.BlockSize {
		return "", fmt.Errorf("%w: iv", ErrInvalidFormat)
	}
	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", fmt.Errorf("%w: ciphertext: %v", ErrInvalidFormat, err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: %v", ErrDecryptFailed, errNotBlockAligned)
	}

	block, err := aes.NewCipher(deriveKey(passwordOrDefault(password), salt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	plaintext, err = pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}
	return string(plaintext), nil
}

// IsEncrypted сообщает, похоже ли значение на результат EncryptToken.
func IsEncrypted(value string) bool {
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
		if _, err := hex.DecodeString(p); err != nil {
			return false
		}
	}
	return true
}

// ServerToken возвращает серверный токен из конфигурации, расшифровывая его при необходимости.
// При ошибке расшифровки токен считается отсутствующим.
func ServerToken(value, password string, logger *logrus.Logger) string {
	if value == "" {
		return ""
	}
	if !IsEncrypted(value) {
		return value
	}

	token, err := DecryptToken(value, password)
	if err != nil {
		logger.WithError(err).Error("Failed to decrypt GitHub token")
		return ""
	}
	return token
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, errInvalidPadding
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, errInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}
