package scoped

import (
	"github.com/KirkDiggler/attribute-engine/internal/domain/consumer"
	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
)

func validateEntity(entityID string) error {
	if entityID == "" {
		return atterr.InvalidArgument("entity ID is required")
	}
	return nil
}

func validateKey(key consumer.Key) error {
	if key.IsZero() {
		return atterr.InvalidArgument("consumer key is required")
	}
	return nil
}

func validatePair(key consumer.Key, entityID string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return validateEntity(entityID)
}
