package interfaces

// KeyStore persists the secret key sealed under a passphrase.
type KeyStore interface {
	SaveSecretKey(passphrase string, sk []byte) error
	LoadSecretKey(passphrase string) ([]byte, error)
	HasSecretKey() (bool, error)
}
