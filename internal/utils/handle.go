package utils

import (
	"math/rand"
)

var handleAdjectives = []string{
	"Curious", "Bold", "Silent", "Lucky", "Witty", "Calm",
	"Brave", "Swift", "Mellow", "Sunny", "Cosmic", "Electric",
}

var handleAnimals = []string{
	"Otter", "Fox", "Hedgehog", "Lynx", "Panda", "Falcon",
	"Wolf", "Dolphin", "Badger", "Owl", "Bear", "Hawk",
}

// NewHandle picks a random adjective-animal pair, e.g. "Bold-Otter".
// Collisions between users are allowed.
func NewHandle() string {
	return handleAdjectives[rand.Intn(len(handleAdjectives))] + "-" +
		handleAnimals[rand.Intn(len(handleAnimals))]
}
