package favorite

import "fmt"

type Phase int

const (
	Pending Phase = iota
	Confirmed
	RolledBack
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Confirmed:
		return "confirmed"
	case RolledBack:
		return "rolled_back"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Toggle is one optimistic flip of a product's membership.
type Toggle struct {
	ProductID string
	Was       bool
	Phase     Phase
	Err       error
}

func Begin(s Set, productID string) Toggle {
	return Toggle{
		ProductID: productID,
		Was:       s.Has(productID),
		Phase:     Pending,
	}
}

// Target is the membership the toggle asks the remote store for.
func (t Toggle) Target() bool {
	return !t.Was
}

// Settle moves a pending toggle to Confirmed on success or RolledBack on failure.
// Settled toggles are returned unchanged.
func (t Toggle) Settle(err error) Toggle {
	if t.Phase != Pending {
		return t
	}
	if err != nil {
		t.Phase = RolledBack
		t.Err = err
		return t
	}
	t.Phase = Confirmed
	return t
}

// Membership is the value IsFavorite should report while t is the latest toggle.
func (t Toggle) Membership() bool {
	if t.Phase == RolledBack {
		return t.Was
	}
	return t.Target()
}

// Apply is idempotent: applying the same toggle twice yields the same set.
func (s Set) Apply(t Toggle) Set {
	if t.Membership() {
		return s.With(t.ProductID)
	}
	return s.Without(t.ProductID)
}
