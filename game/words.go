package game

import "math/rand"

// The word bank. Left-lane ants carry words starting a-m, right-lane ants
// n-z, so each player only ever races words openable from their keyboard
// half.

const leftHalfMax = 'm'

var wordCategories = map[string][]string{
	"short": {
		"ant", "egg", "dig", "run", "red", "big", "hot", "wet", "fast", "tiny",
		"hill", "nest", "bit", "bug", "ram", "cpu", "net", "key", "tap", "cut",
		"pin", "log", "sum", "map", "bat", "bin", "tag", "car", "cat", "dog",
		"dot", "ear", "fan", "gap", "hen", "ink", "jar", "kit", "lip", "mix",
		"nap", "oak", "pop", "quit", "raw", "sad", "tan", "use", "van", "win",
	},
	"medium": {
		"colony", "worker", "tunnel", "scent", "swarm", "brave", "clever",
		"search", "signal", "forage", "defend", "focused", "binary", "server",
		"method", "buffer", "thread", "script", "hacker", "module", "python",
		"syntax", "packet", "memory", "branch", "object", "pointer",
		"vector", "entity", "sprite", "backup", "socket", "global",
		"static", "random", "kernel", "output", "system", "program", "source",
		"token", "nested", "linked", "assign", "toggle", "export",
	},
	"long": {
		"organized", "determined", "courageous", "resourceful", "perseverance",
		"communication", "coordination", "navigation", "pheromone", "competition",
		"camouflage", "algorithm", "recursion", "framework", "interface",
		"encryption", "debugging", "networking", "cybersecurity", "compilation",
		"multithreading", "optimization", "parallelism", "virtualization",
		"serialization", "decomposition", "inheritance", "polymorphism",
		"asynchronous", "synchronization", "abstraction",
		"deserialization", "normalization", "computerized", "computational",
		"subroutine", "artificial", "concurrency", "transmission", "hyperlinked",
		"cryptography", "binarytree", "hashfunction", "backtracking", "simulating",
		"mathematical", "blockchains", "cryptosystem",
	},
}

var categoryNames = []string{"short", "medium", "long"}

const maxCategoryRedraws = 8

func eligible(word string, fromLeft bool) bool {
	if word == "" {
		return false
	}
	first := word[0]
	if fromLeft {
		return first <= leftHalfMax
	}
	return first > leftHalfMax
}

// PickWord returns a uniformly random word from a random category, filtered
// by the spawn side's first-letter rule. A category may hold no eligible
// words after a table edit; rather than recursing forever we redraw a
// bounded number of times and then scan every category for a fallback.
func PickWord(rng *rand.Rand, fromLeft bool) string {
	for i := 0; i < maxCategoryRedraws; i++ {
		words := wordCategories[categoryNames[rng.Intn(len(categoryNames))]]
		var pool []string
		for _, w := range words {
			if eligible(w, fromLeft) {
				pool = append(pool, w)
			}
		}
		if len(pool) > 0 {
			return pool[rng.Intn(len(pool))]
		}
	}
	var pool []string
	for _, words := range wordCategories {
		for _, w := range words {
			if eligible(w, fromLeft) {
				pool = append(pool, w)
			}
		}
	}
	if len(pool) == 0 {
		// the shipped table always has both halves populated
		return "ant"
	}
	return pool[rng.Intn(len(pool))]
}
