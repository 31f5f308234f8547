// Package secretkey generates random URL-safe secret keys for authentication
// QR codes.
//
//	key, err := secretkey.Generate(secretkey.DefaultLength)
package secretkey
