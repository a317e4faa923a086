// Package transfer models money remittances. Transfers are not dispatched
// with cargo, so they carry no status machine and no departure window.
package transfer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ReferencePrefix starts every transfer reference.
const ReferencePrefix = "TR"

var (
	ErrTransferIsNotConstructed = errors.New("Transfer must be created via NewTransfer constructor")

	// ErrReferenceTaken is returned by stores when a generated reference collides.
	ErrReferenceTaken = errors.New("transfer reference already assigned")

	referencePattern = regexp.MustCompile(`^TR-[A-Z0-9]{5}$`)
)

// Reference is the customer facing transfer code ("TR-9XK2A").
type Reference struct {
	value string
}

// NewReference generates a random reference; the store enforces uniqueness.
func NewReference() (Reference, error) {
	suffix, err := kernel.RandomCodeSuffix()
	if err != nil {
		return Reference{}, err
	}
	return Reference{value: ReferencePrefix + "-" + suffix}, nil
}

func ParseReference(s string) (Reference, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if !referencePattern.MatchString(normalized) {
		return Reference{}, errs.NewValueIsInvalidErrorWithCause(
			"reference", fmt.Errorf("%q does not match %s-XXXXX", s, ReferencePrefix),
		)
	}
	return Reference{value: normalized}, nil
}

func (r Reference) String() string {
	return r.value
}

// Parties describes who sends money to whom and between which places.
type Parties struct {
	SenderName      string
	BeneficiaryName string
	Origin          string
	Destination     string
}

// Transfer is a money remittance accepted at the counter.
type Transfer struct {
	id        kernel.UUID
	reference Reference
	parties   Parties
	amount    kernel.Money
	createdAt time.Time

	isConstructed bool
}

func NewTransfer(id kernel.UUID, ref Reference, parties Parties, amount kernel.Money, createdAt time.Time) (*Transfer, error) {
	t := &Transfer{isConstructed: true}

	var all []error
	if err := id.Validate(); err != nil {
		all = append(all, err)
	}
	if ref.value == "" {
		all = append(all, errs.NewValueIsRequiredError("reference"))
	}
	if strings.TrimSpace(parties.SenderName) == "" {
		all = append(all, errs.NewValueIsRequiredError("senderName"))
	}
	if strings.TrimSpace(parties.BeneficiaryName) == "" {
		all = append(all, errs.NewValueIsRequiredError("beneficiaryName"))
	}
	if strings.TrimSpace(parties.Origin) == "" {
		all = append(all, errs.NewValueIsRequiredError("origin"))
	}
	if strings.TrimSpace(parties.Destination) == "" {
		all = append(all, errs.NewValueIsRequiredError("destination"))
	}
	if err := amount.Validate(); err != nil {
		all = append(all, err)
	} else if amount.Amount() == 0 {
		all = append(all, errs.NewValueIsInvalidErrorWithCause("amount", errors.New("0 is not greater than 0")))
	}
	if createdAt.IsZero() {
		all = append(all, errs.NewValueIsRequiredError("createdAt"))
	}
	if err := errors.Join(all...); err != nil {
		return nil, err
	}

	t.id = id
	t.reference = ref
	t.parties = parties
	t.amount = amount
	t.createdAt = createdAt
	return t, nil
}

func (t *Transfer) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransferIsNotConstructed
	}
	return nil
}

func (t *Transfer) ID() kernel.UUID      { return t.id }
func (t *Transfer) Reference() Reference { return t.reference }
func (t *Transfer) Parties() Parties     { return t.parties }
func (t *Transfer) Amount() kernel.Money { return t.amount }
func (t *Transfer) CreatedAt() time.Time { return t.createdAt }

// SearchFields are the texts matched by operations search.
func (t *Transfer) SearchFields() []string {
	return []string{
		t.reference.value,
		t.parties.SenderName,
		t.parties.BeneficiaryName,
		t.parties.Origin,
		t.parties.Destination,
	}
}
