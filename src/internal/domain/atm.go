package domain

import "context"

type ATM struct {
	ID         string
	Name       string
	Address    string
	DistanceKm float64
}

type ATMRepository interface {
	GetAll(ctx context.Context) ([]ATM, error)
}
