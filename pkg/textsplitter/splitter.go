package textsplitter

import "strings"

// defaultSeparators is the priority list the splitter recurses on:
// paragraph break, line break, sentence end, word boundary, and the
// empty separator as a last-resort hard cut.
var defaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// Splitter breaks long text into chunks of at most ChunkSize runes,
// overlapping adjacent chunks by roughly Overlap runes to preserve
// context across boundaries. Splitting is deterministic: fixed input
// and settings always yield the same chunks.
type Splitter struct {
	ChunkSize  int
	Overlap    int
	separators []string
}

func New(chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = 0
	}
	return &Splitter{
		ChunkSize:  chunkSize,
		Overlap:    overlap,
		separators: defaultSeparators,
	}
}

func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return s.split(text, s.separators)
}

func (s *Splitter) split(text string, separators []string) []string {
	// Pick the highest-priority separator present in the text. The
	// empty separator always matches and forces a hard rune cut.
	sep := separators[len(separators)-1]
	var remaining []string
	for i, candidate := range separators {
		if candidate == "" {
			sep = ""
			remaining = nil
			break
		}
		if strings.Contains(text, candidate) {
			sep = candidate
			remaining = separators[i+1:]
			break
		}
	}

	var splits []string
	if sep == "" {
		splits = hardCut(text, s.ChunkSize)
	} else {
		splits = strings.Split(text, sep)
	}

	// Pieces still over the limit recurse with the lower-priority
	// separators; everything else is merged back up to ChunkSize.
	var pieces []string
	for _, piece := range splits {
		if piece == "" {
			continue
		}
		if runeLen(piece) <= s.ChunkSize || len(remaining) == 0 {
			pieces = append(pieces, piece)
		} else {
			pieces = append(pieces, s.split(piece, remaining)...)
		}
	}

	return s.merge(pieces, sep)
}

// merge greedily combines pieces (re-joined with sep) into chunks of at
// most ChunkSize runes. When a chunk is flushed, the next one starts
// with the trailing pieces of the previous chunk totaling at most
// Overlap runes.
func (s *Splitter) merge(pieces []string, sep string) []string {
	sepLen := runeLen(sep)

	var chunks []string
	var window []string
	total := 0

	flush := func() {
		if len(window) == 0 {
			return
		}
		chunk := strings.TrimSpace(strings.Join(window, sep))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}

	for _, piece := range pieces {
		pieceLen := runeLen(piece)

		if total+pieceLen+sepLen*min(len(window), 1) > s.ChunkSize && len(window) > 0 {
			flush()
			// Retain a tail of the window as overlap for the next chunk.
			for len(window) > 0 && (total > s.Overlap || total+pieceLen+sepLen > s.ChunkSize) {
				total -= runeLen(window[0])
				if len(window) > 1 {
					total -= sepLen
				}
				window = window[1:]
			}
		}

		if len(window) > 0 {
			total += sepLen
		}
		window = append(window, piece)
		total += pieceLen
	}
	flush()

	return chunks
}

// hardCut slices text into size-bounded rune windows when no separator
// can produce a shorter split.
func hardCut(text string, size int) []string {
	runes := []rune(text)
	var out []string
	for i := 0; i < len(runes); i += size {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[i:end]))
	}
	return out
}

func runeLen(s string) int {
	return len([]rune(s))
}
