package domain

// Credential is the single identity the portal accepts. PINHash is a bcrypt hash.
type Credential struct {
	CardNumber     string
	PINHash        string
	ExpirationDate string
	HolderName     string
	FaceID         string
}
