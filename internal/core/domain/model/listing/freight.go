package listing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

const (
	MinWeightLbs = 1
	MaxWeightLbs = 80000
	MaxNotesLen  = 2000
)

// ErrFreightIsNotConstructed indicates a zero-value Freight.
var ErrFreightIsNotConstructed = errs.NewValueIsRequiredError("freight must be created via NewFreight")

// Freight is the load being offered. It is immutable once built.
type Freight struct { //nolint:recvcheck //using for validation
	pickup        kernel.Location
	delivery      kernel.Location
	equipmentType string
	weightLbs     int
	rateCents     int64
	availableDate time.Time
	contactName   string
	contactPhone  string
	notes         string

	guard guard.ConstructorGuard
}

// FreightParams groups the inputs of NewFreight.
type FreightParams struct {
	Pickup        kernel.Location
	Delivery      kernel.Location
	EquipmentType string
	WeightLbs     int
	RateCents     int64
	AvailableDate time.Time
	ContactName   string
	ContactPhone  string
	Notes         string
}

// NewFreight validates p. Weight is in pounds and must be within
// [MinWeightLbs, MaxWeightLbs]; the rate is in US cents and must be positive.
func NewFreight(p FreightParams) (Freight, error) {
	f := Freight{
		contactName:  strings.TrimSpace(p.ContactName),
		contactPhone: strings.TrimSpace(p.ContactPhone),
	}

	if err := errors.Join(
		f.setPickup(p.Pickup),
		f.setDelivery(p.Delivery),
		f.setEquipmentType(p.EquipmentType),
		f.setWeight(p.WeightLbs),
		f.setRate(p.RateCents),
		f.setAvailableDate(p.AvailableDate),
		f.setNotes(p.Notes),
	); err != nil {
		return Freight{}, err
	}

	f.guard = guard.NewConstructorGuard()
	return f, nil
}

func (f Freight) Pickup() kernel.Location   { return f.pickup }
func (f Freight) Delivery() kernel.Location { return f.delivery }
func (f Freight) EquipmentType() string     { return f.equipmentType }
func (f Freight) WeightLbs() int            { return f.weightLbs }
func (f Freight) RateCents() int64          { return f.rateCents }
func (f Freight) AvailableDate() time.Time  { return f.availableDate }
func (f Freight) ContactName() string       { return f.contactName }
func (f Freight) ContactPhone() string      { return f.contactPhone }
func (f Freight) Notes() string             { return f.notes }

// Route renders "Dallas, TX to Denver, CO" for notifications.
func (f Freight) Route() string {
	return fmt.Sprintf("%s to %s", f.pickup, f.delivery)
}

// Params returns the inputs that rebuild f.
func (f Freight) Params() FreightParams {
	return FreightParams{
		Pickup:        f.pickup,
		Delivery:      f.delivery,
		EquipmentType: f.equipmentType,
		WeightLbs:     f.weightLbs,
		RateCents:     f.rateCents,
		AvailableDate: f.availableDate,
		ContactName:   f.contactName,
		ContactPhone:  f.contactPhone,
		Notes:         f.notes,
	}
}

func (f Freight) Validate() error {
	return f.guard.Validate(ErrFreightIsNotConstructed)
}

func (f *Freight) setPickup(l kernel.Location) error {
	if err := l.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup", err)
	}
	f.pickup = l
	return nil
}

func (f *Freight) setDelivery(l kernel.Location) error {
	if err := l.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery", err)
	}
	f.delivery = l
	return nil
}

func (f *Freight) setEquipmentType(e string) error {
	e = strings.TrimSpace(e)
	if e == "" {
		return errs.NewValueIsRequiredError("equipment type")
	}
	f.equipmentType = e
	return nil
}

func (f *Freight) setWeight(lbs int) error {
	if lbs < MinWeightLbs || lbs > MaxWeightLbs {
		return errs.NewValueIsOutOfRangeError("weight", lbs, MinWeightLbs, MaxWeightLbs)
	}
	f.weightLbs = lbs
	return nil
}

func (f *Freight) setRate(cents int64) error {
	if cents <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("rate", fmt.Errorf("%d is not greater than 0", cents))
	}
	f.rateCents = cents
	return nil
}

func (f *Freight) setAvailableDate(d time.Time) error {
	if d.IsZero() {
		return errs.NewValueIsRequiredError("available date")
	}
	f.availableDate = d
	return nil
}

func (f *Freight) setNotes(notes string) error {
	notes = strings.TrimSpace(notes)
	if len(notes) > MaxNotesLen {
		return errs.NewValueIsOutOfRangeError("notes length", len(notes), 0, MaxNotesLen)
	}
	f.notes = notes
	return nil
}
