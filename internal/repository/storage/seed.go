package storage

import "github.com/rocketscienceinc/hangman/internal/entity"

func seed(difficulty entity.Difficulty, category entity.Category, pairs ...string) []entity.Word {
	words := make([]entity.Word, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		words = append(words, entity.Word{
			Text:       pairs[i],
			Hint:       pairs[i+1],
			Difficulty: difficulty,
			Category:   category,
		})
	}

	return words
}

var seedWords = concat(
	seed(entity.Easy, entity.Movies,
		"JAWS", "A shark terrorizes a beach town",
		"CARS", "A race car learns humility",
		"UP", "A house lifted by balloons",
		"ROCKY", "A boxer gets a shot at the title",
	),
	seed(entity.Medium, entity.Movies,
		"TITANIC", "An unsinkable ship meets an iceberg",
		"FROZEN", "Let it go",
		"THE MATRIX", "Red pill or blue pill",
		"GLADIATOR", "Are you not entertained",
	),
	seed(entity.Hard, entity.Movies,
		"CASABLANCA", "Here's looking at you, kid",
		"THE GODFATHER", "An offer he can't refuse",
		"INCEPTION", "A dream within a dream",
		"PULP FICTION", "A briefcase nobody opens on screen",
	),
	seed(entity.Easy, entity.Countries,
		"PERU", "Home of Machu Picchu",
		"CHINA", "Its great wall is famous",
		"ITALY", "Shaped like a boot",
		"JAPAN", "Land of the rising sun",
	),
	seed(entity.Medium, entity.Countries,
		"NEW ZEALAND", "Kiwis live here",
		"ARGENTINA", "Tango was born here",
		"PORTUGAL", "Neighbour of Spain on the Atlantic",
		"EGYPT", "Pyramids of Giza",
	),
	seed(entity.Hard, entity.Countries,
		"KYRGYZSTAN", "A Central Asian republic with few vowels",
		"MOZAMBIQUE", "Its flag shows a rifle",
		"SAUDI ARABIA", "Largest country on the Arabian Peninsula",
		"LIECHTENSTEIN", "A doubly landlocked principality",
	),
	seed(entity.Easy, entity.Animals,
		"CAT", "A pet",
		"DOG", "A loyal companion",
		"LION", "King of the jungle",
		"FROG", "It croaks",
	),
	seed(entity.Medium, entity.Animals,
		"GIRAFFE", "Tallest land animal",
		"DOLPHIN", "A clever sea mammal",
		"PENGUIN", "A bird that cannot fly but swims",
		"POLAR BEAR", "White hunter of the Arctic",
	),
	seed(entity.Hard, entity.Animals,
		"AXOLOTL", "A salamander that never grows up",
		"PLATYPUS", "A mammal that lays eggs",
		"NARWHAL", "Unicorn of the sea",
		"KOMODO DRAGON", "The largest living lizard",
	),
)

func concat(groups ...[]entity.Word) []entity.Word {
	var all []entity.Word
	for _, group := range groups {
		all = append(all, group...)
	}

	return all
}
