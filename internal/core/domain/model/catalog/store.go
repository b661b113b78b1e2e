package catalog

import (
	"errors"
	"fmt"

	"pizzastore/internal/pkg/errs"
)

var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore")

// Store is a location orders are placed against.
type Store struct {
	id            int64
	address       string
	city          string
	state         string
	isOpen        bool
	reviewScore   float64
	isConstructed bool
}

func NewStore(id int64, address, city, state string, isOpen bool, reviewScore float64) (*Store, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("storeID", fmt.Errorf("%d is not greater than 0", id))
	}
	return &Store{
		id:            id,
		address:       address,
		city:          city,
		state:         state,
		isOpen:        isOpen,
		reviewScore:   reviewScore,
		isConstructed: true,
	}, nil
}

func (s *Store) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreIsNotConstructed
	}
	return nil
}

func (s *Store) ID() int64            { return s.id }
func (s *Store) Address() string      { return s.address }
func (s *Store) City() string         { return s.city }
func (s *Store) State() string        { return s.state }
func (s *Store) IsOpen() bool         { return s.isOpen }
func (s *Store) ReviewScore() float64 { return s.reviewScore }
