package defs

// WordTiers определяет встроенные списки слов по уровням сложности.
// Индекс среза — это уровень минус один; уровни выше последнего яруса
// используют последний ярус. Все слова в нижнем регистре, в каждом
// ярусе их больше, чем глубина памяти недавних слов (см. config).
var WordTiers = [][]string{
	{
		"cat", "dog", "sun", "run", "red", "box", "map", "key",
		"ice", "fox", "hat", "pen", "cup", "bed", "car", "bus",
		"sky", "sea", "ant", "owl", "egg", "jam", "leg", "arm",
		"toe", "zip", "web", "bug",
	},
	{
		"apple", "bread", "cloud", "dream", "eagle", "flame", "grape", "house",
		"juice", "knife", "lemon", "mouse", "night", "ocean", "piano", "queen",
		"river", "stone", "tiger", "whale", "zebra", "candle", "forest", "garden",
		"window", "rocket", "silver", "planet",
	},
	{
		"balcony", "caravan", "dolphin", "elephant", "fountain", "gravity", "harvest", "insight",
		"journey", "lantern", "machine", "network", "octopus", "penguin", "quarter", "rainbow",
		"sandwich", "thunder", "umbrella", "volcano", "whisper", "bicycle", "compass", "diagram",
		"evening", "festival", "horizon", "library",
	},
	{
		"adventure", "blueprint", "chemistry", "dangerous", "elaborate", "framework", "generator", "hurricane",
		"important", "jellyfish", "kilometer", "lighthouse", "mechanism", "newspaper", "orchestra", "passenger",
		"quicksand", "raspberry", "telescope", "universal", "vegetable", "waterfall", "xylophone", "yesterday",
		"zookeeper", "algorithm", "butterfly", "wavelength",
	},
	{
		"acceleration", "appreciation", "biodiversity", "celebration", "championship", "civilization",
		"collaboration", "combination", "communication", "concentration", "configuration", "consideration",
		"constellation", "conversation", "determination", "documentation", "encyclopedia", "extraordinary",
		"identification", "imagination", "infrastructure", "investigation", "kaleidoscope", "manufacturing",
		"multiplication", "organization", "refrigerator", "thermometer",
	},
}
