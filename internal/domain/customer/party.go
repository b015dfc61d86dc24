// Package customer models who an appointment or purchase is for: a registered
// client account or a walk-in identified only by name (and, for appointments, phone).
package customer

import (
	"errors"
	"strings"
)

var (
	ErrNoParty       = errors.New("neither a registered client nor a walk-in was given")
	ErrBothParties   = errors.New("both a registered client and a walk-in were given")
	ErrWalkInNoName  = errors.New("walk-in name is required")
	ErrInvalidClient = errors.New("client id must be positive")
)

type Kind int

const (
	KindNone Kind = iota
	KindRegistered
	KindWalkIn
)

func (k Kind) String() string {
	switch k {
	case KindRegistered:
		return "registered"
	case KindWalkIn:
		return "walk_in"
	default:
		return "none"
	}
}

// Party is a closed variant: Registered(clientID) | WalkIn(name, phone).
// The zero value is KindNone and never valid.
type Party struct {
	kind     Kind
	clientID uint
	name     string
	phone    string
}

func Registered(clientID uint) Party {
	return Party{kind: KindRegistered, clientID: clientID}
}

func WalkIn(name, phone string) Party {
	return Party{
		kind:  KindWalkIn,
		name:  strings.TrimSpace(name),
		phone: strings.TrimSpace(phone),
	}
}

func (p Party) Kind() Kind { return p.kind }

func (p Party) ClientID() (uint, bool) {
	return p.clientID, p.kind == KindRegistered
}

func (p Party) WalkInName() string  { return p.name }
func (p Party) WalkInPhone() string { return p.phone }

func (p Party) Validate() error {
	switch p.kind {
	case KindRegistered:
		if p.clientID == 0 {
			return ErrInvalidClient
		}
		return nil
	case KindWalkIn:
		if p.name == "" {
			return ErrWalkInNoName
		}
		return nil
	default:
		return ErrNoParty
	}
}

// Columns flattens the variant into the nullable columns it is persisted as.
func (p Party) Columns() (clientID *uint, name, phone *string) {
	switch p.kind {
	case KindRegistered:
		id := p.clientID
		return &id, nil, nil
	case KindWalkIn:
		n := p.name
		if p.phone != "" {
			ph := p.phone
			return nil, &n, &ph
		}
		return nil, &n, nil
	}
	return nil, nil, nil
}

// FromColumns rebuilds the variant from persisted columns, rejecting rows that
// carry both identifications or neither.
func FromColumns(clientID *uint, name, phone *string) (Party, error) {
	hasClient := clientID != nil && *clientID != 0
	hasWalkIn := (name != nil && strings.TrimSpace(*name) != "") ||
		(phone != nil && strings.TrimSpace(*phone) != "")

	switch {
	case hasClient && hasWalkIn:
		return Party{}, ErrBothParties
	case hasClient:
		return Registered(*clientID), nil
	case hasWalkIn:
		p := WalkIn(deref(name), deref(phone))
		return p, p.Validate()
	default:
		return Party{}, ErrNoParty
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
