package utils

import (
	"meetsync/core/constants"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// GeneratePublicID generates the short opaque id used to address an event
// from outside (decoupled from its numeric primary key)
func GeneratePublicID() string {
	id, err := gonanoid.Generate(constants.PublicIDAlphabet, constants.PublicIDLength)
	if err != nil {
		return ""
	}
	return id
}
