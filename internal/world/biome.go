package world

// Biome classifies a cell by its elevation/moisture pair.
type Biome uint8

// The sixteen biome categories. Beach and Marsh are reserved for
// downstream styling and are not produced by Classify.
const (
	BiomeOcean Biome = iota
	BiomeBeach
	BiomeScorched
	BiomeBare
	BiomeTundra
	BiomeSnow
	BiomeTemperateDesert
	BiomeShrubland
	BiomeTaiga
	BiomeGrassland
	BiomeTemperateDeciduousForest
	BiomeTemperateRainForest
	BiomeSubtropicalDesert
	BiomeTropicalSeasonalForest
	BiomeTropicalRainForest
	BiomeMarsh
)

// Classify maps an elevation/moisture pair to a biome. Elevation below zero
// is ocean; otherwise temperature = 1 - elevation picks a band and the band
// picks a moisture ladder. All comparisons are strict, so boundary values
// take the later branch. Total over all real inputs; out-of-range values
// run through the same thresholds.
func Classify(elevation, moisture float64) Biome {
	if elevation < 0.0 {
		return BiomeOcean
	}
	temperature := 1.0 - elevation
	switch {
	case temperature < 0.2:
		switch {
		case moisture > 0.50:
			return BiomeSnow
		case moisture > 0.33:
			return BiomeTundra
		case moisture > 0.16:
			return BiomeBare
		default:
			return BiomeScorched
		}
	case temperature < 0.4:
		switch {
		case moisture > 0.66:
			return BiomeTaiga
		case moisture > 0.33:
			return BiomeShrubland
		default:
			return BiomeTemperateDesert
		}
	case temperature < 0.7:
		switch {
		case moisture > 0.83:
			return BiomeTemperateRainForest
		case moisture > 0.50:
			return BiomeTemperateDeciduousForest
		case moisture > 0.16:
			return BiomeGrassland
		default:
			return BiomeTemperateDesert
		}
	default:
		switch {
		case moisture > 0.66:
			return BiomeTropicalRainForest
		case moisture > 0.33:
			return BiomeTropicalSeasonalForest
		case moisture > 0.16:
			return BiomeGrassland
		default:
			return BiomeSubtropicalDesert
		}
	}
}

// String returns a human-readable name for the biome.
func (b Biome) String() string {
	switch b {
	case BiomeOcean:
		return "Ocean"
	case BiomeBeach:
		return "Beach"
	case BiomeScorched:
		return "Scorched"
	case BiomeBare:
		return "Bare"
	case BiomeTundra:
		return "Tundra"
	case BiomeSnow:
		return "Snow"
	case BiomeTemperateDesert:
		return "TemperateDesert"
	case BiomeShrubland:
		return "Shrubland"
	case BiomeTaiga:
		return "Taiga"
	case BiomeGrassland:
		return "Grassland"
	case BiomeTemperateDeciduousForest:
		return "TemperateDeciduousForest"
	case BiomeTemperateRainForest:
		return "TemperateRainForest"
	case BiomeSubtropicalDesert:
		return "SubtropicalDesert"
	case BiomeTropicalSeasonalForest:
		return "TropicalSeasonalForest"
	case BiomeTropicalRainForest:
		return "TropicalRainForest"
	case BiomeMarsh:
		return "Marsh"
	default:
		return "Unknown"
	}
}
