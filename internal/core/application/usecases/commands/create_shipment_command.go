package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrProductTypeIsRequired = errors.New("product type is required")
)

// CreateShipmentCommand represents a request to register a new shipment for a
// user. All value objects are validated during construction, so a constructed
// command always carries a consistent shipment description.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.ID
	address     shipment.Address
	weight      kernel.Weight
	dimensions  kernel.Dimensions
	productType string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// It validates the owner id, destination address, weight, dimensions and
// product type, joining all violations into one error.
func NewCreateShipmentCommand(
	userID int64,
	street, detail, city, region, postalCode, country string,
	weightKg float64,
	length, width, height float64,
	productType string,
) (CreateShipmentCommand, error) {
	id, idErr := kernel.NewID(userID)
	address, addressErr := shipment.NewAddress(street, detail, city, region, postalCode, country)
	weight, weightErr := kernel.NewWeight(weightKg)
	dimensions, dimensionsErr := kernel.NewDimensions(length, width, height)

	command := CreateShipmentCommand{
		userID:     id,
		address:    address,
		weight:     weight,
		dimensions: dimensions,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		idErr,
		addressErr,
		weightErr,
		dimensionsErr,
		command.setProductType(productType),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c *CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// UserID returns the shipment owner identifier.
func (c *CreateShipmentCommand) UserID() kernel.ID {
	return c.userID
}

// Address returns the destination address.
func (c *CreateShipmentCommand) Address() shipment.Address {
	return c.address
}

// Weight returns the shipment weight.
func (c *CreateShipmentCommand) Weight() kernel.Weight {
	return c.weight
}

// Dimensions returns the shipment dimensions.
func (c *CreateShipmentCommand) Dimensions() kernel.Dimensions {
	return c.dimensions
}

// ProductType returns the declared product type.
func (c *CreateShipmentCommand) ProductType() string {
	return c.productType
}

func (c *CreateShipmentCommand) setProductType(productType string) error {
	if productType == "" {
		return ErrProductTypeIsRequired
	}
	c.productType = productType
	return nil
}
