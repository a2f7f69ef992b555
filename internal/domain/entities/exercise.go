package entities

// ExerciseMode selects how a sentence is turned into an exercise.
type ExerciseMode string

const (
	ExerciseModeFillBlank       ExerciseMode = "version1" // some words hidden, translation shown
	ExerciseModeOrderTranslated ExerciseMode = "version2" // reorder all words, translation shown
	ExerciseModeOrderBlind      ExerciseMode = "version3" // reorder all words, no translation
)

// Valid reports whether m is a known mode.
func (m ExerciseMode) Valid() bool {
	switch m {
	case ExerciseModeFillBlank, ExerciseModeOrderTranslated, ExerciseModeOrderBlind:
		return true
	default:
		return false
	}
}

// IsOrdering reports whether the whole sentence must be rebuilt.
func (m ExerciseMode) IsOrdering() bool {
	return m == ExerciseModeOrderTranslated || m == ExerciseModeOrderBlind
}

// ShowsTranslation reports whether the translation is displayed as a hint.
func (m ExerciseMode) ShowsTranslation() bool {
	return m != ExerciseModeOrderBlind
}

// Tile is a word in the word bank.
type Tile struct {
	ID   int
	Word string
	Used bool // placed into a blank or the sequence
}

// Blank is a hidden token of a fill-in-blank exercise.
type Blank struct {
	Index    int    // token position in the sentence
	Expected string // hidden word
	Filled   string // word put in by the user, empty when open
	TileID   int    // tile that filled the blank, -1 when open
}

// IsEmpty reports whether no tile fills the blank.
func (b Blank) IsEmpty() bool {
	return b.TileID < 0
}

// Exercise is the board of one English exercise.
type Exercise struct {
	Mode          ExerciseMode
	Sentence      Sentence
	Tiles         []Tile
	Blanks        []Blank // fill-in-blank only, ordered by Index
	Placed        []int   // ordering only, tile ids in placed order
	WrongAttempts int
	Solved        bool
}

// BlankAt returns the position in Blanks of the blank hiding token i.
func (e *Exercise) BlankAt(tokenIndex int) (int, bool) {
	for pos, b := range e.Blanks {
		if b.Index == tokenIndex {
			return pos, true
		}
	}
	return 0, false
}

// PlaceTile moves a bank tile onto the board: into the first open blank in
// fill-in-blank mode, or to the end of the sequence in ordering modes.
// It returns false when nothing changed.
func (e *Exercise) PlaceTile(id int) bool {
	if e.Solved || id < 0 || id >= len(e.Tiles) || e.Tiles[id].Used {
		return false
	}

	if e.Mode.IsOrdering() {
		e.Placed = append(e.Placed, id)
		e.Tiles[id].Used = true
		return true
	}

	for pos := range e.Blanks {
		if e.Blanks[pos].IsEmpty() {
			e.Blanks[pos].Filled = e.Tiles[id].Word
			e.Blanks[pos].TileID = id
			e.Tiles[id].Used = true
			return true
		}
	}
	return false
}

// ClearBlank returns the word in blank pos to the bank.
func (e *Exercise) ClearBlank(pos int) bool {
	if e.Solved || pos < 0 || pos >= len(e.Blanks) || e.Blanks[pos].IsEmpty() {
		return false
	}

	e.Tiles[e.Blanks[pos].TileID].Used = false
	e.Blanks[pos].Filled = ""
	e.Blanks[pos].TileID = -1
	return true
}

// UnplaceTile returns the tile at sequence position pos to the bank.
func (e *Exercise) UnplaceTile(pos int) bool {
	if e.Solved || pos < 0 || pos >= len(e.Placed) {
		return false
	}

	e.Tiles[e.Placed[pos]].Used = false
	e.Placed = append(e.Placed[:pos], e.Placed[pos+1:]...)
	return true
}

// Reset returns every tile to the bank.
func (e *Exercise) Reset() {
	if e.Solved {
		return
	}
	for i := range e.Tiles {
		e.Tiles[i].Used = false
	}
	for i := range e.Blanks {
		e.Blanks[i].Filled = ""
		e.Blanks[i].TileID = -1
	}
	e.Placed = e.Placed[:0]
}

// PlacedWords returns the words of the sequence in placed order.
func (e *Exercise) PlacedWords() []string {
	words := make([]string, 0, len(e.Placed))
	for _, id := range e.Placed {
		words = append(words, e.Tiles[id].Word)
	}
	return words
}

// BankTiles returns the tiles still in the bank.
func (e *Exercise) BankTiles() []Tile {
	out := make([]Tile, 0, len(e.Tiles))
	for _, t := range e.Tiles {
		if !t.Used {
			out = append(out, t)
		}
	}
	return out
}
