package service

// PlainAlgorithm returns values stored in cleartext unchanged.
type PlainAlgorithm struct{}

// NewPlain creates a PlainAlgorithm.
func NewPlain() *PlainAlgorithm {
	return &PlainAlgorithm{}
}

// RequiresKey always returns false.
func (p *PlainAlgorithm) RequiresKey() bool {
	return false
}

// Decrypt returns ciphertext as is. The key is ignored.
func (p *PlainAlgorithm) Decrypt(_, ciphertext []byte) ([]byte, error) {
	return ciphertext, nil
}
