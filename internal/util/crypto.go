package util

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

func GenerateNChar(n int) (string, error) {
	id, err := gonanoid.New(n)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GenerateSignatureToken mints the opaque token stored on certificates
// whose security level demands signature verification.
func GenerateSignatureToken() (string, error) {
	return GenerateNChar(32)
}
