package domain

import "context"

type CredentialRepository interface {
	Get(ctx context.Context) (Credential, error)
}
