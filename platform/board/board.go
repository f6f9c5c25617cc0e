package board

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/app/notice"
)

//go:embed properties.json
var propertiesJSON []byte

//go:embed messages.json
var messagesJSON []byte

// LoadProperties returns the property catalog new sessions start from, in
// board order.
func LoadProperties() ([]models.Property, error) {
	var properties []models.Property
	if err := json.Unmarshal(propertiesJSON, &properties); err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}
	return properties, nil
}

// LoadMessages returns the templates for rule violations and notices.
func LoadMessages() (notice.Messages, error) {
	var messages notice.Messages
	if err := json.Unmarshal(messagesJSON, &messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return messages, nil
}

func GetById(id string, properties []models.Property) (models.Property, bool) {
	for _, property := range properties {
		if property.ID == id {
			return property, true
		}
	}
	return models.Property{}, false
}
