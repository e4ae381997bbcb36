package shipment

import (
	"errors"

	"shipping/internal/pkg/errs"
)

// defaultCountry is assumed when the caller leaves the country blank.
const defaultCountry = "Colombia"

// Address is the delivery destination captured when a shipment is created.
// Street, city, and region are required; detail and postal code are optional.
// Format and locale validation are owned by an external collaborator; the
// domain only enforces presence.
type Address struct {
	street     string
	detail     string
	city       string
	region     string
	postalCode string
	country    string
}

// NewAddress creates an Address with presence validation.
// An empty country falls back to the default.
func NewAddress(street, detail, city, region, postalCode, country string) (Address, error) {
	if err := errors.Join(
		requireText("street", street),
		requireText("city", city),
		requireText("region", region),
	); err != nil {
		return Address{}, err
	}

	if country == "" {
		country = defaultCountry
	}

	return Address{
		street:     street,
		detail:     detail,
		city:       city,
		region:     region,
		postalCode: postalCode,
		country:    country,
	}, nil
}

func requireText(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// Street returns the street line of the address.
func (a Address) Street() string { return a.street }

// Detail returns the optional address detail (apartment, floor, unit).
func (a Address) Detail() string { return a.detail }

// City returns the city name.
func (a Address) City() string { return a.city }

// Region returns the department or state the city belongs to.
func (a Address) Region() string { return a.region }

// PostalCode returns the optional postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the country name.
func (a Address) Country() string { return a.country }

// Validate checks that the address carries its required fields.
func (a Address) Validate() error {
	if a.street == "" || a.city == "" || a.region == "" {
		return errs.NewValueIsRequiredError("address")
	}
	return nil
}
