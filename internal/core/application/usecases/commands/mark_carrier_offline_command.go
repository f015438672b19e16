package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrMarkCarrierOfflineCommandIsNotConstructed = errors.New(
	"MarkCarrierOfflineCommand must be created via NewMarkCarrierOfflineCommand constructor",
)

// MarkCarrierOfflineCommand flags a carrier as offline, either because its
// reports went stale or because the carrier signed off explicitly.
type MarkCarrierOfflineCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkCarrierOfflineCommand creates a command to mark a carrier offline.
func NewMarkCarrierOfflineCommand(carrierID kernel.UUID) (MarkCarrierOfflineCommand, error) {
	command := MarkCarrierOfflineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCarrierID(carrierID); err != nil {
		return MarkCarrierOfflineCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkCarrierOfflineCommand) Validate() error {
	return c.guard.Validate(ErrMarkCarrierOfflineCommandIsNotConstructed)
}

// CarrierID returns the identifier of the carrier going offline.
func (c MarkCarrierOfflineCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c *MarkCarrierOfflineCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}
