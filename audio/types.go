package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundTheme SoundType = iota // Background melody, looped
	SoundClear                  // Row sweep
	SoundLand                   // Piece locked into the board
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundTheme: "theme",
	SoundClear: "clear",
	SoundLand:  "land",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
