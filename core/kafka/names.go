package kafka

import "math/rand"

// Synthetic payloads for the background producer: a readable animal display
// name as the value and a random opaque partitioning key.

var nameAdjectives = []string{
	"agile", "brave", "calm", "clever", "curious", "daring", "eager",
	"fuzzy", "gentle", "happy", "jolly", "keen", "lively", "mellow",
	"nimble", "patient", "quick", "quiet", "sleepy", "spotted", "striped",
	"swift", "tiny", "wild", "witty",
}

var nameAnimals = []string{
	"alpaca", "badger", "beaver", "capybara", "dolphin", "falcon", "ferret",
	"gazelle", "heron", "ibex", "jackal", "koala", "lemur", "lynx",
	"marmot", "narwhal", "ocelot", "otter", "panther", "quokka", "raccoon",
	"stoat", "tapir", "walrus", "wombat",
}

const keyAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomAnimalName returns a two-word display name like "curious otter".
func RandomAnimalName() string {
	adjective := nameAdjectives[rand.Intn(len(nameAdjectives))]
	animal := nameAnimals[rand.Intn(len(nameAnimals))]
	return adjective + " " + animal
}

// RandomKey returns a 16 character alphanumeric partitioning key.
func RandomKey() string {
	key := make([]byte, 16)
	for i := range key {
		key[i] = keyAlphabet[rand.Intn(len(keyAlphabet))]
	}
	return string(key)
}
