package services

import (
	"crypto/subtle"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// KeyVerifier authorizes administrative API calls. The static shared-secret
// implementation below is the deliberate placeholder contract; swapping in a
// real identity provider only means providing another implementation.
type KeyVerifier interface {
	Verify(key string) bool
}

type StaticKeyVerifier struct {
	secret []byte
}

func NewStaticKeyVerifier(secret string) *StaticKeyVerifier {
	return &StaticKeyVerifier{secret: []byte(secret)}
}

func (v *StaticKeyVerifier) Verify(key string) bool {
	if len(v.secret) == 0 || key == "" {
		return false
	}
	return subtle.ConstantTimeCompare(v.secret, []byte(key)) == 1
}

// CredentialVerifier checks the admin username/password pair.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

type BcryptCredentialVerifier struct {
	username     string
	passwordHash string
}

func NewBcryptCredentialVerifier(username, passwordHash string) *BcryptCredentialVerifier {
	return &BcryptCredentialVerifier{username: username, passwordHash: passwordHash}
}

func (v *BcryptCredentialVerifier) Verify(username, password string) bool {
	if v.username == "" || v.passwordHash == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(v.username), []byte(username)) != 1 {
		return false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(password)); err != nil {
		return false
	}
	return true
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}
